package entities

import (
	"strings"
	"time"
)

// ShippingStatus is the carrier-handoff sub-state. It evolves independently
// of the main lifecycle; only its cost feeds back into the cost breakdown.

type ShippingStatus string

const (
	ShippingPending   ShippingStatus = "pending"
	ShippingPickedUp  ShippingStatus = "picked_up"
	ShippingInTransit ShippingStatus = "in_transit"
	ShippingDelivered ShippingStatus = "delivered"
	ShippingCancelled ShippingStatus = "cancelled"
)

var shippingTransitions = map[ShippingStatus][]ShippingStatus{
	ShippingPending:   {ShippingPickedUp, ShippingCancelled},
	ShippingPickedUp:  {ShippingInTransit, ShippingCancelled},
	ShippingInTransit: {ShippingDelivered, ShippingCancelled},
	ShippingDelivered: {},
	ShippingCancelled: {},
}

func (s ShippingStatus) Valid() bool {
	_, ok := shippingTransitions[s]
	return ok
}

func (s ShippingStatus) Terminal() bool {
	return s == ShippingDelivered || s == ShippingCancelled
}

func (s ShippingStatus) CanTransitionTo(target ShippingStatus) bool {
	for _, next := range shippingTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// DefaultCarrier is used when shipping is required but no provider hint is
// recognized.
const DefaultCarrier = "aramex"

// carrierHints maps normalized substrings of free-text provider input to
// carrier identifiers.
var carrierHints = []struct {
	hint    string
	carrier string
}{
	{"dhl", "dhl"},
	{"fedex", "fedex"},
	{"federal express", "fedex"},
	{"ups", "ups"},
	{"aramex", "aramex"},
	{"smsa", "smsa"},
}

// InferCarrier resolves a free-text provider hint to a carrier identifier.
// The second return reports whether the hint matched.
func InferCarrier(hint string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(hint))
	if normalized == "" {
		return "", false
	}
	for _, h := range carrierHints {
		if strings.Contains(normalized, h.hint) {
			return h.carrier, true
		}
	}
	return "", false
}

// ShippingRecord is the shipping portion of the request aggregate.
type ShippingRecord struct {
	IsRequired      bool           `json:"is_required"`
	Provider        string         `json:"provider,omitempty"`
	Cost            float64        `json:"cost"`
	TrackingNumber  string         `json:"tracking_number,omitempty"`
	Status          ShippingStatus `json:"status"`
	PickupAddress   string         `json:"pickup_address,omitempty"`
	DeliveryAddress string         `json:"delivery_address,omitempty"`
	Notes           string         `json:"notes,omitempty"`
}

// NewShippingRecord normalizes caller-supplied shipping input at intake.
// The provider is inferred from the free-text hint; when shipping is required
// and no provider is recognized the default carrier is used.
func NewShippingRecord(required bool, providerHint string, cost float64, pickup, delivery string) ShippingRecord {
	rec := ShippingRecord{
		IsRequired:      required,
		Status:          ShippingPending,
		PickupAddress:   strings.TrimSpace(pickup),
		DeliveryAddress: strings.TrimSpace(delivery),
	}
	if !required {
		return rec
	}
	rec.Cost = cost
	if carrier, ok := InferCarrier(providerHint); ok {
		rec.Provider = carrier
	} else {
		rec.Provider = DefaultCarrier
	}
	return rec
}

// ShipmentDetails is the payload handed to the carrier client when a shipment
// is created.
type ShipmentDetails struct {
	RequestNumber   string
	Provider        string
	PickupAddress   string
	DeliveryAddress string
}

// ShipmentConfirmation is what the carrier client reports back; the core only
// persists it.
type ShipmentConfirmation struct {
	TrackingNumber string
	Cost           float64
	ETA            time.Time
}
