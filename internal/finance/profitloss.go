package finance

// Input is the financial view of an order, everything the profit/loss table
// needs. It must be derivable from stored order fields alone so the result
// can be recomputed identically at any time.
type Input struct {
	Status OrderStatus

	ProductPrice float64
	ProductCost  float64
	ShippingFee  float64

	IsInsured                   bool
	IncludeInspectionFee        bool
	InspectionFeePaidByCustomer bool
}

// Breakdown is a signed profit/loss result. Profit and Loss are both
// non-negative and never both nonzero; Net is always Profit - Loss.
type Breakdown struct {
	Profit float64 `json:"profit"`
	Loss   float64 `json:"loss"`
	Net    float64 `json:"net"`
}

// ProfitLoss maps an order and its resolved fee policy to a profit or loss
// depending on the current status. Pure: no side effects, deterministic.
//
// Statuses before shipment (awaiting call, under review, in progress) and
// canceled orders have no financial outcome yet.
func ProfitLoss(in Input, p Policy) Breakdown {
	insurance := p.InsuranceFee(in.ProductPrice, in.ShippingFee, in.IsInsured)
	inspection := p.OrderInspectionFee(in.IncludeInspectionFee)
	codFee := CODFee(in.ProductPrice, in.ShippingFee, p)

	// Inspection fee recovered from the customer offsets the merchant's cost.
	inspectionCollected := 0.0
	if in.InspectionFeePaidByCustomer {
		inspectionCollected = inspection
	}

	var net float64
	switch in.Status {
	case StatusCollected:
		net = in.ProductPrice - in.ProductCost - insurance - (inspection - inspectionCollected) - codFee

	case StatusReturned, StatusDeliveryFailed:
		net = -(insurance + in.ShippingFee + inspection - inspectionCollected)

	case StatusPartialReturn:
		net = -(insurance + inspection)

	case StatusReturnedAfterReceipt:
		returnFee := 0.0
		if p.ReturnFeeEnabled {
			returnFee = p.ReturnFee
		}
		net = -(in.ProductCost + insurance + in.ShippingFee + inspection + returnFee + codFee - inspectionCollected)

	default:
		return Breakdown{}
	}

	net = Round2(net)
	if net >= 0 {
		return Breakdown{Profit: net, Net: net}
	}
	return Breakdown{Loss: -net, Net: net}
}
