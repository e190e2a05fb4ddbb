package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fuelflow/internal/delivery/http/validator"
	"fuelflow/internal/domain/entity"
	"fuelflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mockusecase "fuelflow/internal/mocks/usecase"
)

func newTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestChatHandler_Chat_Success(t *testing.T) {
	chat := mockusecase.NewMockChatUsecase(t)
	handler := NewChatHandler(chat, slog.New(slog.NewTextHandler(io.Discard, nil)))

	chat.EXPECT().
		Handle(mock.Anything, "who is Rakesh").
		Return(&usecase.Reply{
			Response:    "1 Customer(s) found.",
			ObjectArray: []any{entity.Customer{UserID: "u1", FullName: "Rakesh Kumar"}},
			Action:      "click_to_redirect",
		})

	c, rec := newTestContext(t, `{"message": "who is Rakesh"}`)
	require.NoError(t, handler.Chat(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "1 Customer(s) found.", body["response"])
	assert.Equal(t, "click_to_redirect", body["action"])
	assert.Len(t, body["objectArray"], 1)
	assert.NotContains(t, body, "warning")
}

func TestChatHandler_Chat_EmptyMessage(t *testing.T) {
	chat := mockusecase.NewMockChatUsecase(t)
	handler := NewChatHandler(chat, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, `{"message": ""}`)
	require.NoError(t, handler.Chat(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	warning, ok := body["warning"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "The chat message is empty.", warning["text"])
}

func TestChatHandler_Chat_MalformedBody(t *testing.T) {
	chat := mockusecase.NewMockChatUsecase(t)
	handler := NewChatHandler(chat, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, `{"message": `)
	require.NoError(t, handler.Chat(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	warning, ok := body["warning"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Could not read the chat message.", warning["text"])
}

func TestHealthHandler_Health(t *testing.T) {
	lookup := mockusecase.NewMockLookupUsecase(t)
	handler := NewHealthHandler(lookup)

	lookup.EXPECT().
		Counts().
		Return(map[entity.Kind]int{
			entity.KindCustomer:       12,
			entity.KindAdmin:          2,
			entity.KindDeliveryPerson: 3,
			entity.KindProduct:        5,
		})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.Health(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, float64(12), body["CUSTOMER"])
	assert.Equal(t, float64(3), body["DELIVERY_BOY"])
}
