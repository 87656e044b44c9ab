// Package render turns a nowcast snapshot into the user-facing view: either
// the full metrics view or a single error message, never a partial view.
package render

import (
	"fmt"
	"time"

	"github.com/i474232898/composite-nowcast/internal/nowcast"
)

const (
	Title       = "Composite GDP Nowcast"
	Description = "This dashboard combines the Atlanta Fed's GDPNow and the New York Fed's Nowcast using a weighted average based on historical accuracy."
	ErrorText   = "Could not fetch one or both nowcast values. Please check the source websites."
	RMSECaption = "Weights based on RMSE: 1.5 (GDPNow) vs 1.8 (Nowcast)"

	LabelGDPNow    = "Atlanta Fed GDPNow"
	LabelNYFed     = "New York Fed Nowcast"
	LabelComposite = "Composite Nowcast (Weighted)"
)

// Metric is one labeled, formatted figure.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Page is the view model shared by the HTML and text renderers.
// Exactly one of Error or (Inputs, Composite, Captions) is populated.
type Page struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Error       string    `json:"error,omitempty"`
	Inputs      []Metric  `json:"inputs,omitempty"`
	Composite   *Metric   `json:"composite,omitempty"`
	Captions    []string  `json:"captions,omitempty"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Build produces the view for a snapshot.
func Build(snap nowcast.Snapshot) Page {
	p := Page{
		Title:       Title,
		Description: Description,
		FetchedAt:   snap.FetchedAt,
	}

	if !snap.GDPNow.Valid || !snap.NYFed.Valid || snap.Composite == nil {
		p.Error = ErrorText
		return p
	}

	c := snap.Composite
	p.Inputs = []Metric{
		{Label: LabelGDPNow, Value: Percent(snap.GDPNow.Value)},
		{Label: LabelNYFed, Value: Percent(snap.NYFed.Value)},
	}
	p.Composite = &Metric{Label: LabelComposite, Value: Percent(c.Value)}
	p.Captions = []string{
		fmt.Sprintf("Weights: %.1f%% GDPNow, %.1f%% NY Fed Nowcast", c.GDPNowWeight*100, c.NYFedWeight*100),
		RMSECaption,
	}
	return p
}

// Failed reports whether the page shows the error state.
func (p Page) Failed() bool {
	return p.Error != ""
}

// Percent formats a percentage with two decimals, e.g. "2.70%".
func Percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
