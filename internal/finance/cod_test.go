package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCODFee(t *testing.T) {
	policy := Policy{
		CODEnabled:   true,
		CODThreshold: 1000,
		CODRate:      0.01,
		CODTaxRate:   0.14,
	}

	tests := []struct {
		name         string
		productPrice float64
		shippingFee  float64
		policy       Policy
		want         float64
	}{
		{
			name:         "DisabledReturnsZero",
			productPrice: 5000,
			shippingFee:  100,
			policy:       Policy{CODThreshold: 1000, CODRate: 0.01},
			want:         0,
		},
		{
			name:         "TotalBelowThreshold",
			productPrice: 500,
			shippingFee:  50,
			policy:       policy,
			want:         0,
		},
		{
			name:         "TotalExactlyAtThreshold",
			productPrice: 950,
			shippingFee:  50,
			policy:       policy,
			want:         0,
		},
		{
			// (1200-1000) * 0.01 * 1.14 = 2.28
			name:         "TaxableAboveThreshold",
			productPrice: 1150,
			shippingFee:  50,
			policy:       policy,
			want:         2.28,
		},
		{
			name:         "RoundedToCents",
			productPrice: 1111,
			shippingFee:  0,
			policy:       policy,
			want:         1.27, // 111 * 0.01 * 1.14 = 1.2654
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CODFee(tt.productPrice, tt.shippingFee, tt.policy)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Above the threshold the fee must never decrease as the order total grows.
func TestCODFee_MonotonicAboveThreshold(t *testing.T) {
	policy := Policy{CODEnabled: true, CODThreshold: 1000, CODRate: 0.01, CODTaxRate: 0.14}

	prev := 0.0
	for total := 1000.0; total <= 3000; total += 37 {
		fee := CODFee(total, 0, policy)
		assert.GreaterOrEqual(t, fee, prev, "total=%v", total)
		prev = fee
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 2.28, Round2(2.2799999))
	assert.Equal(t, 1.27, Round2(1.2654))
	assert.Equal(t, -1.27, Round2(-1.265))
	assert.Equal(t, 0.0, Round2(0))
}
