package sources

import (
	"context"
	"net/http"

	"github.com/i474232898/composite-nowcast/internal/nowcast"
)

// GDPNowURL is the Atlanta Fed GDPNow landing page.
const GDPNowURL = "https://www.atlantafed.org/cqer/research/gdpnow"

// GDPNowSource implements the nowcast.Source interface for the Atlanta Fed GDPNow page.
type GDPNowSource struct {
	name    string
	url     string
	httpCfg HTTPClientConfig
}

func NewGDPNowSource(client *http.Client, userAgent string) *GDPNowSource {
	return &GDPNowSource{
		name: nowcast.SourceGDPNow,
		url:  GDPNowURL,
		httpCfg: HTTPClientConfig{
			Client:    client,
			UserAgent: userAgent,
		},
	}
}

func (s *GDPNowSource) Name() string {
	return s.name
}

func (s *GDPNowSource) Fetch(ctx context.Context) (nowcast.Estimate, error) {
	page, err := fetchPage(ctx, s.name, s.httpCfg, s.url)
	if err != nil {
		return nowcast.Estimate{}, err
	}

	v, ok := ExtractGDPNow(page)
	if !ok {
		return nowcast.Estimate{}, nowcast.ErrValueNotFound
	}

	return nowcast.Estimate{
		Source: s.name,
		Value:  v,
		Valid:  true,
	}, nil
}
