package interfaces

import (
	"context"

	"techmend/internal/domain/entities"
)

// IRepairPaymentRepository abstracts DynamoDB persistence for RepairPayment.
type IRepairPaymentRepository interface {
	Create(ctx context.Context, p entities.RepairPayment) (entities.RepairPayment, error)
	GetByID(ctx context.Context, id string) (entities.RepairPayment, error)
	ListByRequestNumber(ctx context.Context, requestNumber string) ([]entities.RepairPayment, error)
}
