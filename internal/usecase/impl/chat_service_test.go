package impl

import (
	"context"
	"testing"

	"fuelflow/internal/domain/entity"
	"fuelflow/internal/domain/intent"
	"fuelflow/internal/domain/repository"
	"fuelflow/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "fuelflow/internal/domain/errors"
	mockservice "fuelflow/internal/mocks/service"
	mockusecase "fuelflow/internal/mocks/usecase"
)

// chatServiceFixtures holds all test dependencies for chat service tests.
type chatServiceFixtures struct {
	service      usecase.ChatUsecase
	oracle       *mockservice.MockIntentOracle
	lookup       *mockusecase.MockLookupUsecase
	transactions *mockusecase.MockTransactionUsecase
}

func createTestChatService(t *testing.T) chatServiceFixtures {
	oracle := mockservice.NewMockIntentOracle(t)
	lookup := mockusecase.NewMockLookupUsecase(t)
	transactions := mockusecase.NewMockTransactionUsecase(t)

	return chatServiceFixtures{
		service:      NewChatService(oracle, lookup, transactions, newDiscardLogger()),
		oracle:       oracle,
		lookup:       lookup,
		transactions: transactions,
	}
}

func TestChatService_Handle_TransactionSuccess(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	message := "Rakesh took 2 LPG 14KG, Sweta delivered"

	fx.oracle.EXPECT().
		Extract(ctx, message).
		Return(intent.ProcessTransaction{
			CustomerName:       "Rakesh",
			DeliveryPersonName: "Sweta",
			ProductName:        "LPG 14KG",
			SentUnits:          2,
		}, nil)

	logged := &entity.Transaction{}
	fx.transactions.EXPECT().
		Process(ctx, &usecase.ProcessTransactionInput{
			CustomerName:       "Rakesh",
			DeliveryPersonName: "Sweta",
			ProductName:        "LPG 14KG",
			SentUnits:          2,
		}).
		Return(&usecase.ProcessTransactionOutput{
			Transaction:  logged,
			CustomerName: "Rakesh Kumar",
		}, nil)

	reply := fx.service.Handle(ctx, message)
	require.NotNil(t, reply)
	assert.Equal(t, "SUCCESS: Logged entry for Rakesh Kumar.", reply.Response)
	assert.Equal(t, "SUCCESS", reply.EntryStatus)
	assert.Same(t, logged, reply.Context)
	assert.Nil(t, reply.Warning)
}

func TestChatService_Handle_CustomerLookup(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	message := "show me Rakesh's details"

	fx.oracle.EXPECT().
		Extract(ctx, message).
		Return(intent.GetCustomerDetails{CustomerName: "Rakesh"}, nil)

	match := entity.Customer{UserID: "u1", FullName: "Rakesh Kumar"}
	fx.lookup.EXPECT().
		Lookup(ctx, &usecase.LookupInput{Kind: entity.KindCustomer, Name: "Rakesh"}).
		Return(&usecase.LookupOutput{Matches: []any{match}, Count: 1}, nil)

	reply := fx.service.Handle(ctx, message)
	require.NotNil(t, reply)
	assert.Equal(t, "1 Customer(s) found.", reply.Response)
	assert.Equal(t, []any{match}, reply.ObjectArray)
	assert.Equal(t, "click_to_redirect", reply.Action)
}

func TestChatService_Handle_RefreshMemory(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	message := "refresh your memory"

	fx.oracle.EXPECT().
		Extract(ctx, message).
		Return(intent.RefreshMemory{}, nil)
	fx.lookup.EXPECT().
		RefreshAll(ctx).
		Return(nil)

	reply := fx.service.Handle(ctx, message)
	require.NotNil(t, reply)
	assert.Equal(t, "Memory refreshed! Please ask me what you need again.", reply.Response)
}

func TestChatService_Handle_SmallTalk(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	message := "good morning"

	fx.oracle.EXPECT().
		Extract(ctx, message).
		Return(intent.SmallTalk{Text: "Good morning! How can I help?"}, nil)

	reply := fx.service.Handle(ctx, message)
	require.NotNil(t, reply)
	assert.Equal(t, "Good morning! How can I help?", reply.Response)
	assert.Nil(t, reply.Warning)
}

func TestChatService_Handle_OracleUnavailable(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	message := "anything"

	fx.oracle.EXPECT().
		Extract(ctx, message).
		Return(nil, domainerrors.ErrUpstreamUnavailable.WrapMessage("connection refused"))

	reply := fx.service.Handle(ctx, message)
	require.NotNil(t, reply)
	require.NotNil(t, reply.Warning)
	assert.Equal(t, domainerrors.ErrUpstreamUnavailable.Message(), reply.Warning.Text)
	assert.Equal(t, "call_admin", reply.Warning.Action)
}

func TestChatService_Handle_NotFoundBecomesWarning(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	message := "who is Nobody"

	fx.oracle.EXPECT().
		Extract(ctx, message).
		Return(intent.GetCustomerDetails{CustomerName: "Nobody"}, nil)
	fx.lookup.EXPECT().
		Lookup(ctx, &usecase.LookupInput{Kind: entity.KindCustomer, Name: "Nobody"}).
		Return(nil, &domainerrors.NotFoundError{Kind: entity.KindCustomer, Query: "Nobody"})

	reply := fx.service.Handle(ctx, message)
	require.NotNil(t, reply)
	require.NotNil(t, reply.Warning)
	assert.Contains(t, reply.Warning.Text, "No customer named 'Nobody'")
	assert.Equal(t, "refresh_memory", reply.Warning.Action)
	assert.Empty(t, reply.Response)
}

func TestChatService_Handle_AmbiguousResurfacesCandidates(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	message := "log 1 cylinder for Sharma"

	fx.oracle.EXPECT().
		Extract(ctx, message).
		Return(intent.ProcessTransaction{
			CustomerName: "Sharma",
			ProductName:  "LPG 14KG",
			SentUnits:    1,
		}, nil)

	candidates := []any{
		entity.Customer{UserID: "u1", FullName: "Anita Sharma"},
		entity.Customer{UserID: "u2", FullName: "Vikram Sharma"},
	}
	fx.transactions.EXPECT().
		Process(ctx, &usecase.ProcessTransactionInput{
			CustomerName: "Sharma",
			ProductName:  "LPG 14KG",
			SentUnits:    1,
		}).
		Return(nil, &domainerrors.AmbiguousError{
			Kind:       entity.KindCustomer,
			Query:      "Sharma",
			Candidates: candidates,
		})

	reply := fx.service.Handle(ctx, message)
	require.NotNil(t, reply)
	assert.Equal(t, "2 Customer(s) found. Please provide the full name to be specific!", reply.Response)
	assert.Equal(t, candidates, reply.ObjectArray)
	assert.Equal(t, "click_to_redirect", reply.Action)
	assert.Nil(t, reply.Warning)
}

func TestChatService_Handle_StoreUnavailable(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	message := "refresh your memory"

	fx.oracle.EXPECT().
		Extract(ctx, message).
		Return(intent.RefreshMemory{}, nil)
	fx.lookup.EXPECT().
		RefreshAll(ctx).
		Return(errors.Wrap(repository.ErrStoreUnavailable, "refresh customer bucket"))

	reply := fx.service.Handle(ctx, message)
	require.NotNil(t, reply)
	require.NotNil(t, reply.Warning)
	assert.Contains(t, reply.Warning.Text, "DATABASE UNREACHABLE: ")
	assert.Equal(t, "call_admin", reply.Warning.Action)
}

func TestChatService_Handle_WriteFailureBecomesWarning(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	message := "log 1 cylinder for Rakesh"

	fx.oracle.EXPECT().
		Extract(ctx, message).
		Return(intent.ProcessTransaction{
			CustomerName: "Rakesh",
			ProductName:  "LPG 14KG",
			SentUnits:    1,
		}, nil)
	fx.transactions.EXPECT().
		Process(ctx, &usecase.ProcessTransactionInput{
			CustomerName: "Rakesh",
			ProductName:  "LPG 14KG",
			SentUnits:    1,
		}).
		Return(nil, &domainerrors.DBWriteError{Err: errors.New("permission denied")})

	reply := fx.service.Handle(ctx, message)
	require.NotNil(t, reply)
	require.NotNil(t, reply.Warning)
	assert.Equal(t, "DB ERROR: permission denied", reply.Warning.Text)
	assert.Equal(t, "call_admin", reply.Warning.Action)
}

func TestChatService_Handle_UnexpectedErrorBecomesSystemError(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	message := "who is Rakesh"

	fx.oracle.EXPECT().
		Extract(ctx, message).
		Return(intent.GetCustomerDetails{CustomerName: "Rakesh"}, nil)
	fx.lookup.EXPECT().
		Lookup(ctx, &usecase.LookupInput{Kind: entity.KindCustomer, Name: "Rakesh"}).
		Return(nil, errors.New("boom"))

	reply := fx.service.Handle(ctx, message)
	require.NotNil(t, reply)
	require.NotNil(t, reply.Warning)
	assert.Equal(t, "SYSTEM ERROR: boom", reply.Warning.Text)
	assert.Equal(t, "call_admin", reply.Warning.Action)
}
