package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"fuelflow/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "fuelflow/internal/domain/errors"
)

func newTestErrorContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/chat", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeWarning(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	warning, ok := body["warning"].(map[string]any)
	require.True(t, ok, "reply has no warning object")

	return warning
}

func TestErrorMiddleware_HandleHTTPError_AppError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newTestErrorContext(t)

	m.HandleHTTPError(&domainerrors.NotFoundError{Kind: entity.KindCustomer, Query: "Nobody"}, c)

	assert.Equal(t, http.StatusOK, rec.Code)
	warning := decodeWarning(t, rec)
	assert.Contains(t, warning["text"], "No customer named 'Nobody'")
	assert.Equal(t, "refresh_memory", warning["action"])
}

func TestErrorMiddleware_HandleHTTPError_EchoHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newTestErrorContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "missing"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	warning := decodeWarning(t, rec)
	assert.Equal(t, http.StatusText(http.StatusNotFound), warning["text"])
}

func TestErrorMiddleware_HandleHTTPError_UnknownError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newTestErrorContext(t)

	m.HandleHTTPError(errors.New("boom"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	warning := decodeWarning(t, rec)
	assert.Equal(t, "SYSTEM ERROR: boom", warning["text"])
	assert.Equal(t, "call_admin", warning["action"])
}

func TestErrorMiddleware_HandleHTTPError_CommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newTestErrorContext(t)

	require.NoError(t, c.NoContent(http.StatusAccepted))
	m.HandleHTTPError(errors.New("late failure"), c)

	// The first reply already went out; nothing may be appended.
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}
