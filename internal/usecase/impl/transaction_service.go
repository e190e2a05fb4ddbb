package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"fuelflow/internal/domain/entity"
	"fuelflow/internal/domain/repository"
	"fuelflow/internal/infra/cache"
	"fuelflow/internal/usecase"
	"fuelflow/internal/util"

	domainerrors "fuelflow/internal/domain/errors"
)

// transactionListPath is the store collection holding all logged transactions.
const transactionListPath = "transactionList"

// auditActor marks documents written by the chat agent.
const auditActor = "AI_AGENT"

type transactionService struct {
	dir    *cache.Directory
	store  repository.RecordStore
	logger *slog.Logger
}

// NewTransactionService creates the transaction assembler.
func NewTransactionService(dir *cache.Directory, store repository.RecordStore, logger *slog.Logger) usecase.TransactionUsecase {
	return &transactionService{
		dir:    dir,
		store:  store,
		logger: logger,
	}
}

// Process resolves all named participants, computes the totals and persists
// the assembled document. Resolution failures abort before anything is
// written; a write failure is reported, never retried.
func (s *transactionService) Process(ctx context.Context, input *usecase.ProcessTransactionInput) (*usecase.ProcessTransactionOutput, error) {
	customer, err := resolveUnique(ctx, s.dir.Customers, input.CustomerName)
	if err != nil {
		return nil, err
	}

	// The delivery person is an optional participant.
	var deliveryPerson *entity.DeliveryPerson
	if strings.TrimSpace(input.DeliveryPersonName) != "" {
		resolved, err := resolveUnique(ctx, s.dir.DeliveryStaff, input.DeliveryPersonName)
		if err != nil {
			return nil, err
		}
		deliveryPerson = &resolved
	}

	product, err := resolveUnique(ctx, s.dir.Products, input.ProductName)
	if err != nil {
		return nil, err
	}

	total := input.SentUnits * product.Rate
	payment := total
	if input.PaymentAmount != nil {
		payment = *input.PaymentAmount
	}

	status := entity.StatusPending
	if payment >= total {
		status = entity.StatusPaid
	}

	now := time.Now()
	transactionID := util.TransactionID(now)

	data := entity.TransactionData{
		Customer: entity.TransactionCustomer{
			FullName:    customer.FullName,
			PhoneNumber: customer.PhoneNumber,
			UserID:      customer.UserID,
			Address:     customer.PrimaryAddress(),
		},
		Date:          now.Format("02/01/2006"),
		TransactionID: transactionID,
		SelectedProducts: []entity.SelectedProduct{
			{
				ProductData:   product,
				SentUnits:     input.SentUnits,
				ReceivedUnits: input.ReceivedUnits,
				PaymentAmt:    0,
			},
		},
		Payment:      payment,
		Total:        total,
		Status:       status,
		ExtraDetails: "Logged via AI Agent",
	}

	if deliveryPerson != nil {
		data.DeliveryBoyList = []entity.DeliveryEntry{
			{
				FullName: deliveryPerson.FullName,
				UserID:   deliveryPerson.UserID,
				DeliveryDone: []entity.DeliveryDone{
					{
						ProductID:     product.ProductID,
						SentUnits:     input.SentUnits,
						ReceivedUnits: input.ReceivedUnits,
					},
				},
			},
		}
	}

	transaction := &entity.Transaction{
		Data:   data,
		Others: entity.NewAudit(auditActor, now),
	}

	if err := s.store.SetPath(ctx, transactionListPath+"/"+transactionID, transaction); err != nil {
		s.logger.Error("transaction write failed",
			slog.String("transactionId", transactionID),
			slog.String("customer", customer.FullName),
			slog.Any("error", err),
		)

		return nil, &domainerrors.DBWriteError{Err: err}
	}

	s.logger.Info("transaction logged",
		slog.String("transactionId", transactionID),
		slog.String("customer", customer.FullName),
		slog.Int("total", total),
		slog.String("status", status),
	)

	return &usecase.ProcessTransactionOutput{
		Transaction:  transaction,
		CustomerName: customer.FullName,
	}, nil
}
