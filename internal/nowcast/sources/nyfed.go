package sources

import (
	"context"
	"net/http"

	"github.com/i474232898/composite-nowcast/internal/nowcast"
)

// NYFedURL is the New York Fed Staff Nowcast page.
const NYFedURL = "https://www.newyorkfed.org/research/policy/nowcast"

// NYFedSource implements the nowcast.Source interface for the New York Fed Staff Nowcast.
type NYFedSource struct {
	name    string
	url     string
	httpCfg HTTPClientConfig
}

func NewNYFedSource(client *http.Client, userAgent string) *NYFedSource {
	return &NYFedSource{
		name: nowcast.SourceNYFed,
		url:  NYFedURL,
		httpCfg: HTTPClientConfig{
			Client:    client,
			UserAgent: userAgent,
		},
	}
}

func (s *NYFedSource) Name() string {
	return s.name
}

func (s *NYFedSource) Fetch(ctx context.Context) (nowcast.Estimate, error) {
	page, err := fetchPage(ctx, s.name, s.httpCfg, s.url)
	if err != nil {
		return nowcast.Estimate{}, err
	}

	v, ok := ExtractNYFed(page)
	if !ok {
		return nowcast.Estimate{}, nowcast.ErrValueNotFound
	}

	return nowcast.Estimate{
		Source: s.name,
		Value:  v,
		Valid:  true,
	}, nil
}
