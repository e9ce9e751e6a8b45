package finance

import "math"

// Round2 rounds a currency amount to cent precision, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CODFee computes the cash-on-delivery surcharge charged by the carrier.
// Only the part of the order total above the policy threshold is taxable:
//
//	fee = (total - threshold) * rate * (1 + taxRate)
//
// Returns 0 when COD is disabled for the policy or the total is at or below
// the threshold.
func CODFee(productPrice, shippingFee float64, p Policy) float64 {
	if !p.CODEnabled {
		return 0
	}
	total := productPrice + shippingFee
	if total <= p.CODThreshold {
		return 0
	}
	taxable := total - p.CODThreshold
	return Round2(taxable * p.CODRate * (1 + p.CODTaxRate))
}
