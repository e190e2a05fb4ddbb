package usecase

import (
	"context"

	"fuelflow/internal/domain/entity"
)

// ProcessTransactionInput is the extracted transaction intent, ready to be
// resolved against the caches.
type ProcessTransactionInput struct {
	CustomerName       string
	DeliveryPersonName string // optional; blank means no delivery person was named
	ProductName        string
	SentUnits          int
	ReceivedUnits      int
	PaymentAmount      *int // nil means full payment is assumed
}

// ProcessTransactionOutput returns the persisted document plus the resolved
// customer's display name for the acknowledgment.
type ProcessTransactionOutput struct {
	Transaction  *entity.Transaction
	CustomerName string
}

// TransactionUsecase assembles and persists one transaction per logged
// delivery or return event. The whole flow is one logical unit: any
// resolution failure aborts before anything is written.
type TransactionUsecase interface {
	Process(ctx context.Context, input *ProcessTransactionInput) (*ProcessTransactionOutput, error)
}
