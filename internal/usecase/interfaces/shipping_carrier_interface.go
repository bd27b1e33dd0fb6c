package interfaces

import (
	"context"

	"techmend/internal/domain/entities"
)

// IShippingCarrierClient abstracts the carrier network client. The core only
// persists its results; carrier protocol logic never leaks in.
type IShippingCarrierClient interface {
	CreateShipment(ctx context.Context, details entities.ShipmentDetails) (entities.ShipmentConfirmation, error)
	CancelShipment(ctx context.Context, trackingNumber string) error
	TrackShipment(ctx context.Context, trackingNumber string) (entities.ShippingStatus, error)
}
