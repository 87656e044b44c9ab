package nowcast

import (
	"time"
)

// Source names used in logs, metrics and the JSON API.
const (
	SourceGDPNow = "gdpnow"
	SourceNYFed  = "nyfed"
)

// Estimate is one source's nowcast, in percent (annualized quarterly GDP growth).
// Valid is false when the value could not be fetched or extracted; Value is
// meaningless in that case.
type Estimate struct {
	Source string  `json:"source"`
	Value  float64 `json:"value"`
	Valid  bool    `json:"valid"`
}

// Composite is the inverse-variance weighted average of both estimates,
// together with the normalized weights that produced it.
type Composite struct {
	Value        float64 `json:"value"`
	GDPNowWeight float64 `json:"gdpnowWeight"`
	NYFedWeight  float64 `json:"nyfedWeight"`
}

// Snapshot is the result of one fetch cycle.
// Composite is set if and only if both estimates are valid.
type Snapshot struct {
	GDPNow    Estimate   `json:"gdpnow"`
	NYFed     Estimate   `json:"nyfed"`
	Composite *Composite `json:"composite,omitempty"`
	FetchedAt time.Time  `json:"fetchedAt"` // always UTC
}

// Complete reports whether both estimates were available and the composite was computed.
func (s Snapshot) Complete() bool {
	return s.Composite != nil
}
