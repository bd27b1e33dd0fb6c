package entities

// DefaultDiagnosticFee is charged on every request at intake.
const DefaultDiagnosticFee = 25

// PaymentStatus tracks whether the final total has been settled.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	}
	return false
}

// CostBreakdown is the billable cost of a request, decomposed into the five
// fee components plus the two derived totals.
//
// TotalEstimated is never assigned directly; Recalculate is the only writer.
// TotalFinal defaults to TotalEstimated the first time it is zero and is
// never silently overwritten afterwards.
type CostBreakdown struct {
	DiagnosticFee  float64       `json:"diagnostic_fee"`
	PartsCost      float64       `json:"parts_cost"`
	LaborCost      float64       `json:"labor_cost"`
	PriorityFee    float64       `json:"priority_fee"`
	ShippingFee    float64       `json:"shipping_fee"`
	TotalEstimated float64       `json:"total_estimated"`
	TotalFinal     float64       `json:"total_final"`
	PaymentStatus  PaymentStatus `json:"payment_status"`
}

// Recalculate recomputes TotalEstimated from the five components. It is
// idempotent and has no side effect beyond the two total fields.
func (c *CostBreakdown) Recalculate() {
	c.TotalEstimated = c.DiagnosticFee + c.PartsCost + c.LaborCost + c.PriorityFee + c.ShippingFee
	if c.TotalFinal == 0 {
		c.TotalFinal = c.TotalEstimated
	}
}
