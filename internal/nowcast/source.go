package nowcast

import (
	"context"
	"errors"
)

// ErrValueNotFound is returned by a Source when the page was fetched but the
// expected figure could not be located or parsed.
var ErrValueNotFound = errors.New("nowcast value not found on page")

// Source abstracts a published nowcast (e.g. Atlanta Fed GDPNow, New York Fed Staff Nowcast).
type Source interface {
	Name() string
	Fetch(ctx context.Context) (Estimate, error)
}
