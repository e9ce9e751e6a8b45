package finance

// GlobalSettings holds the merchant-wide fee configuration. Each fee group is
// gated by its own enable flag.
type GlobalSettings struct {
	EnableInsurance bool    `json:"enableInsurance"`
	InsuranceRate   float64 `json:"insuranceRate"` // percent of (productPrice + shippingFee)

	EnableInspection bool    `json:"enableInspection"`
	InspectionFee    float64 `json:"inspectionFee"`

	EnableReturnShipping bool    `json:"enableReturnShipping"`
	ReturnFee            float64 `json:"returnFee"`

	EnableCOD    bool    `json:"enableCod"`
	CODThreshold float64 `json:"codThreshold"`
	CODRate      float64 `json:"codRate"`
	CODTaxRate   float64 `json:"codTaxRate"`
}

// CompanyOverride is a per-shipping-company fee schedule. When UseCustomFees
// is true, all of its fee groups supersede the global settings together, no
// partial mixing.
type CompanyOverride struct {
	UseCustomFees bool `json:"useCustomFees"`

	InsuranceRate float64 `json:"insuranceRate"`
	InspectionFee float64 `json:"inspectionFee"`

	ReturnFeeEnabled bool    `json:"returnFeeEnabled"`
	ReturnFee        float64 `json:"returnFee"`

	CODEnabled   bool    `json:"codEnabled"`
	CODThreshold float64 `json:"codThreshold"`
	CODRate      float64 `json:"codRate"`
	CODTaxRate   float64 `json:"codTaxRate"`

	// RefundProductPrice controls whether the product price is refunded on a
	// post-collection return handled by this company.
	RefundProductPrice bool `json:"refundProductPrice"`
}

// Policy is the effective fee schedule for one order, after override
// resolution. Disabled fee groups resolve to zero values.
type Policy struct {
	InsuranceRate float64
	InspectionFee float64

	ReturnFeeEnabled bool
	ReturnFee        float64

	CODEnabled   bool
	CODThreshold float64
	CODRate      float64
	CODTaxRate   float64

	RefundProductPrice bool
}

// Resolve computes the effective policy for a shipping company. A company
// with UseCustomFees wins wholesale; otherwise the global settings apply,
// each group gated by its enable flag. A missing company falls back to the
// global settings silently.
func Resolve(company string, global GlobalSettings, overrides map[string]CompanyOverride) Policy {
	if ov, ok := overrides[company]; ok && ov.UseCustomFees {
		return Policy{
			InsuranceRate:      ov.InsuranceRate,
			InspectionFee:      ov.InspectionFee,
			ReturnFeeEnabled:   ov.ReturnFeeEnabled,
			ReturnFee:          ov.ReturnFee,
			CODEnabled:         ov.CODEnabled,
			CODThreshold:       ov.CODThreshold,
			CODRate:            ov.CODRate,
			CODTaxRate:         ov.CODTaxRate,
			RefundProductPrice: ov.RefundProductPrice,
		}
	}

	p := Policy{RefundProductPrice: true}
	if global.EnableInsurance {
		p.InsuranceRate = global.InsuranceRate
	}
	if global.EnableInspection {
		p.InspectionFee = global.InspectionFee
	}
	if global.EnableReturnShipping {
		p.ReturnFeeEnabled = true
		p.ReturnFee = global.ReturnFee
	}
	if global.EnableCOD {
		p.CODEnabled = true
		p.CODThreshold = global.CODThreshold
		p.CODRate = global.CODRate
		p.CODTaxRate = global.CODTaxRate
	}
	return p
}

// InsuranceFee returns the insurance withdrawal for an order, zero when the
// order is not insured or the rate is zero.
func (p Policy) InsuranceFee(productPrice, shippingFee float64, insured bool) float64 {
	if !insured || p.InsuranceRate <= 0 {
		return 0
	}
	return Round2((productPrice + shippingFee) * p.InsuranceRate / 100)
}

// OrderInspectionFee returns the inspection fee applicable to an order, zero
// when the order does not include inspection or the resolved fee is zero.
func (p Policy) OrderInspectionFee(includeInspection bool) float64 {
	if !includeInspection {
		return 0
	}
	return p.InspectionFee
}
