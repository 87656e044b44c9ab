package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/composite-nowcast/internal/nowcast"
	"github.com/i474232898/composite-nowcast/internal/render"
)

type stubSource struct {
	name  string
	value float64
	err   error
}

func (s stubSource) Name() string { return s.name }

func (s stubSource) Fetch(ctx context.Context) (nowcast.Estimate, error) {
	if s.err != nil {
		return nowcast.Estimate{}, s.err
	}
	return nowcast.Estimate{Source: s.name, Value: s.value, Valid: true}, nil
}

func doGet(t *testing.T, gdpnowErr, nyfedErr error, path string) (*http.Response, string) {
	t.Helper()

	app := NewApp(nil, 5*time.Second)
	svc := nowcast.NewService(
		stubSource{name: nowcast.SourceGDPNow, value: 2.0, err: gdpnowErr},
		stubSource{name: nowcast.SourceNYFed, value: 1.5, err: nyfedErr},
		nil,
	)
	RegisterRoutes(app, svc, 5*time.Second)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestHealth(t *testing.T) {
	resp, body := doGet(t, nil, nil, "/health")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"status":"ok"`)
}

func TestIndexPageComplete(t *testing.T) {
	resp, body := doGet(t, nil, nil, "/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))
	assert.Contains(t, body, "Atlanta Fed GDPNow")
	assert.Contains(t, body, "2.00%")
	assert.Contains(t, body, "1.50%")
	assert.Contains(t, body, "Composite Nowcast (Weighted)")
	assert.Contains(t, body, "1.80%")
	assert.Contains(t, body, "Weights: 59.0% GDPNow, 41.0% NY Fed Nowcast")
	assert.NotContains(t, body, render.ErrorText)
}

func TestIndexPageIncomplete(t *testing.T) {
	resp, body := doGet(t, nowcast.ErrValueNotFound, nil, "/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, render.ErrorText)
	assert.NotContains(t, body, render.LabelNYFed, "no partial metrics view")
	assert.NotContains(t, body, "1.50%")
}

func TestNowcastAPI(t *testing.T) {
	resp, body := doGet(t, nil, nil, "/api/v1/nowcast")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Snapshot nowcast.Snapshot `json:"snapshot"`
		View     render.Page      `json:"view"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))

	require.NotNil(t, payload.Snapshot.Composite)
	assert.InDelta(t, 1.795, payload.Snapshot.Composite.Value, 1e-3)
	assert.True(t, payload.Snapshot.GDPNow.Valid)
	assert.True(t, payload.Snapshot.NYFed.Valid)
	assert.Len(t, payload.View.Inputs, 2)
}

func TestNowcastAPIIncomplete(t *testing.T) {
	resp, body := doGet(t, nil, io.ErrUnexpectedEOF, "/api/v1/nowcast")

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, body, `"error":true`)
	assert.Contains(t, body, render.ErrorText)
	assert.NotContains(t, body, `"composite"`)
}

func TestMetricsEndpoint(t *testing.T) {
	// a fetch cycle first so the nowcast series exist
	doGet(t, nil, nil, "/api/v1/nowcast")

	resp, body := doGet(t, nil, nil, "/metrics")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "nowcast_fetch_total")
	assert.Contains(t, body, "nowcast_composite_percent")
}

func TestUnknownRoute(t *testing.T) {
	resp, body := doGet(t, nil, nil, "/nope")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, `"error":true`)
}

func TestWriteTimeoutCoversFetchTimeout(t *testing.T) {
	for _, fetchTimeout := range []time.Duration{5 * time.Second, 45 * time.Second, 3 * time.Minute} {
		app := NewApp(nil, fetchTimeout)

		assert.Greater(t, app.Config().WriteTimeout, fetchTimeout)
	}
}
