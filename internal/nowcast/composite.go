package nowcast

// Historical root-mean-square errors of each source, in percentage points.
const (
	GDPNowRMSE = 1.5
	NYFedRMSE  = 1.8
)

// Weights returns the normalized inverse-variance weights for GDPNow and the
// NY Fed nowcast. They depend only on the RMSE constants and sum to 1.
func Weights() (gdpnow, nyfed float64) {
	w1 := 1 / (GDPNowRMSE * GDPNowRMSE)
	w2 := 1 / (NYFedRMSE * NYFedRMSE)

	total := w1 + w2
	return w1 / total, w2 / total
}

// Compute combines the two nowcasts into their weighted average.
// Callers must only pass values from valid estimates.
func Compute(gdpnow, nyfed float64) Composite {
	w1, w2 := Weights()
	return Composite{
		Value:        w1*gdpnow + w2*nyfed,
		GDPNowWeight: w1,
		NYFedWeight:  w2,
	}
}
