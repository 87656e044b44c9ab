package nowcast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightsSumToOne(t *testing.T) {
	w1, w2 := Weights()

	assert.InDelta(t, 1.0, w1+w2, 1e-12)
	assert.Greater(t, w1, 0.0)
	assert.Less(t, w1, 1.0)
	assert.Greater(t, w2, 0.0)
	assert.Less(t, w2, 1.0)
	// 1/1.5^2 : 1/1.8^2 reduces to 3.24 : 2.25
	assert.InDelta(t, 3.24/5.49, w1, 1e-12)
	assert.InDelta(t, 2.25/5.49, w2, 1e-12)
	assert.Greater(t, w1, w2, "lower RMSE must carry more weight")
}

func TestCompute(t *testing.T) {
	w1, w2 := Weights()

	tests := []struct {
		name    string
		gdpnow  float64
		nyfed   float64
		wantAbt float64
	}{
		{"example", 2.0, 1.5, 1.795},
		{"equal inputs", 2.4, 2.4, 2.4},
		{"zeros", 0, 0, 0},
		{"negative growth", -1.2, 0.6, w1*-1.2 + w2*0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Compute(tt.gdpnow, tt.nyfed)

			assert.Equal(t, w1*tt.gdpnow+w2*tt.nyfed, c.Value)
			assert.InDelta(t, tt.wantAbt, c.Value, 1e-3)
			assert.Equal(t, w1, c.GDPNowWeight)
			assert.Equal(t, w2, c.NYFedWeight)
		})
	}
}

func TestComputeWeightsIndependentOfInputs(t *testing.T) {
	a := Compute(10, -3)
	b := Compute(0.1, 7)

	assert.Equal(t, a.GDPNowWeight, b.GDPNowWeight)
	assert.Equal(t, a.NYFedWeight, b.NYFedWeight)
}
