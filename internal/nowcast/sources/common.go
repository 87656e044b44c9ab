package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultUserAgent identifies the service to the upstream sites.
const DefaultUserAgent = "composite-nowcast/1.0 (+https://github.com/i474232898/composite-nowcast)"

// HTTPClientConfig bundles the HTTP client and request settings shared by all sources.
type HTTPClientConfig struct {
	Client    *http.Client
	UserAgent string
}

var (
	errServerError  = errors.New("server error")
	errUnexpected   = errors.New("unexpected status code")
	errNoHTTPClient = errors.New("http client not configured")
)

// FetchError reports a failure to retrieve a source page.
type FetchError struct {
	Source string
	URL    string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s (%s): %v", e.Source, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// fetchPage performs a single GET against url and returns the response body.
// There are no retries and nothing is cached between calls.
func fetchPage(
	ctx context.Context,
	source string,
	cfg HTTPClientConfig,
	url string,
) ([]byte, error) {
	wrap := func(err error) error {
		return &FetchError{Source: source, URL: url, Err: err}
	}

	if cfg.Client == nil {
		return nil, wrap(errNoHTTPClient)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, wrap(fmt.Errorf("creating request: %w", err))
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	resp, err := cfg.Client.Do(req)
	if err != nil {
		return nil, wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return nil, wrap(fmt.Errorf("%w: %d", errServerError, resp.StatusCode))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, wrap(fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrap(fmt.Errorf("reading body: %w", err))
	}
	return body, nil
}
