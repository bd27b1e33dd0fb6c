package entities

import (
	"encoding/json"
	"time"
)

// GatewayPaymentStatus is the provider-side outcome of a payment attempt.
type GatewayPaymentStatus string

const (
	GatewayPaymentPending  GatewayPaymentStatus = "pending"
	GatewayPaymentApproved GatewayPaymentStatus = "approved"
	GatewayPaymentDenied   GatewayPaymentStatus = "denied"
)

// RepairPayment is one recorded gateway payment against a request.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (request_number-index): request_number
//
// Provider payload:
//   - PayloadRaw keeps the original provider body (JSON) for traceability.
//   - Payload is an optional parsed representation, useful for debugging.
type RepairPayment struct {
	ID            string               `json:"id"`
	RequestNumber string               `json:"request_number"`
	Amount        float64              `json:"amount"`
	Date          time.Time            `json:"date"`
	Status        GatewayPaymentStatus `json:"status"`

	PayloadRaw json.RawMessage        `json:"payload_raw,omitempty"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
}
