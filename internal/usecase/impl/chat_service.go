package impl

import (
	"context"
	"fmt"
	"log/slog"

	"fuelflow/internal/domain/entity"
	"fuelflow/internal/domain/intent"
	"fuelflow/internal/domain/repository"
	"fuelflow/internal/domain/service"
	"fuelflow/internal/errors"
	"fuelflow/internal/usecase"

	domainerrors "fuelflow/internal/domain/errors"
)

type chatService struct {
	oracle       service.IntentOracle
	lookup       usecase.LookupUsecase
	transactions usecase.TransactionUsecase
	logger       *slog.Logger
}

// NewChatService creates the intent router.
func NewChatService(
	oracle service.IntentOracle,
	lookup usecase.LookupUsecase,
	transactions usecase.TransactionUsecase,
	logger *slog.Logger,
) usecase.ChatUsecase {
	return &chatService{
		oracle:       oracle,
		lookup:       lookup,
		transactions: transactions,
		logger:       logger,
	}
}

// Handle extracts the intent behind one message and dispatches it. Every
// failure path folds into the reply; callers always get exactly one.
func (s *chatService) Handle(ctx context.Context, message string) *usecase.Reply {
	extracted, err := s.oracle.Extract(ctx, message)
	if err != nil {
		return s.failure(err)
	}

	s.logger.Info("intent extracted", slog.String("intent", extracted.Name()))

	switch it := extracted.(type) {
	case intent.ProcessTransaction:
		return s.handleTransaction(ctx, it)
	case intent.GetCustomerDetails:
		return s.handleLookup(ctx, entity.KindCustomer, it.CustomerName)
	case intent.GetAdminDetails:
		return s.handleLookup(ctx, entity.KindAdmin, it.AdminName)
	case intent.GetDeliveryPersonDetails:
		return s.handleLookup(ctx, entity.KindDeliveryPerson, it.DeliveryPersonName)
	case intent.GetProductDetails:
		return s.handleLookup(ctx, entity.KindProduct, it.ProductName)
	case intent.RefreshMemory:
		if err := s.lookup.RefreshAll(ctx); err != nil {
			return s.failure(err)
		}

		return &usecase.Reply{Response: "Memory refreshed! Please ask me what you need again."}
	case intent.SmallTalk:
		return &usecase.Reply{Response: it.Text}
	default:
		return s.failure(errors.Errorf("unhandled intent %q", extracted.Name()))
	}
}

func (s *chatService) handleLookup(ctx context.Context, kind entity.Kind, name string) *usecase.Reply {
	out, err := s.lookup.Lookup(ctx, &usecase.LookupInput{Kind: kind, Name: name})
	if err != nil {
		return s.failure(err)
	}

	return &usecase.Reply{
		Response:    fmt.Sprintf("%d %s(s) found.", out.Count, kind.Label()),
		ObjectArray: out.Matches,
		Action:      string(domainerrors.ActionClickToRedirect),
	}
}

func (s *chatService) handleTransaction(ctx context.Context, it intent.ProcessTransaction) *usecase.Reply {
	out, err := s.transactions.Process(ctx, &usecase.ProcessTransactionInput{
		CustomerName:       it.CustomerName,
		DeliveryPersonName: it.DeliveryPersonName,
		ProductName:        it.ProductName,
		SentUnits:          it.SentUnits,
		ReceivedUnits:      it.ReceivedUnits,
		PaymentAmount:      it.PaymentAmount,
	})
	if err != nil {
		return s.failure(err)
	}

	return &usecase.Reply{
		Response:    fmt.Sprintf("SUCCESS: Logged entry for %s.", out.CustomerName),
		EntryStatus: "SUCCESS",
		Context:     out.Transaction,
	}
}

// failure maps the error taxonomy to the reply contract. Ambiguity is the
// one non-fatal case: it resurfaces with the candidate list so the caller
// can disambiguate and retry.
func (s *chatService) failure(err error) *usecase.Reply {
	var ambiguous *domainerrors.AmbiguousError
	if errors.As(err, &ambiguous) {
		return &usecase.Reply{
			Response:    ambiguous.Message(),
			ObjectArray: ambiguous.Candidates,
			Action:      string(ambiguous.Action()),
		}
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		s.logger.Warn("chat request rejected",
			slog.String("code", appErr.ErrorCode()),
			slog.Any("error", err),
		)

		return &usecase.Reply{
			Warning: &usecase.Warning{
				Text:   appErr.Message(),
				Action: string(appErr.Action()),
			},
		}
	}

	if errors.Is(err, repository.ErrStoreUnavailable) {
		s.logger.Error("store unreachable", slog.Any("error", err))

		return &usecase.Reply{
			Warning: &usecase.Warning{
				Text:   "DATABASE UNREACHABLE: " + err.Error(),
				Action: string(domainerrors.ActionCallAdmin),
			},
		}
	}

	s.logger.Error("chat request failed", slog.Any("error", err))

	return &usecase.Reply{
		Warning: &usecase.Warning{
			Text:   "SYSTEM ERROR: " + err.Error(),
			Action: string(domainerrors.ActionCallAdmin),
		},
	}
}
