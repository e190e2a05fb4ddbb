package middleware

import (
	"log/slog"
	"net/http"

	"fuelflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	domainerrors "fuelflow/internal/domain/errors"
)

// ErrorMiddleware converts any error escaping a handler into the warning
// reply shape. The frontend contract is one well-formed JSON object per
// request; a raw fault must never reach the caller.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.writeReply(c, http.StatusOK, &usecase.Reply{
			Warning: &usecase.Warning{
				Text:   appErr.Message(),
				Action: string(appErr.Action()),
			},
		})

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.writeReply(c, httpErr.Code, &usecase.Reply{
			Warning: &usecase.Warning{
				Text: http.StatusText(httpErr.Code),
			},
		})

		return
	}

	m.logger.Error("unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.writeReply(c, http.StatusOK, &usecase.Reply{
		Warning: &usecase.Warning{
			Text:   "SYSTEM ERROR: " + err.Error(),
			Action: string(domainerrors.ActionCallAdmin),
		},
	})
}

// writeReply emits the reply and records a failed write. At this point the
// connection is the only place left to report to, so the log is the audit
// trail for the one-reply-per-request guarantee.
func (m *ErrorMiddleware) writeReply(c echo.Context, code int, reply *usecase.Reply) {
	if err := c.JSON(code, reply); err != nil {
		m.logger.Error("failed to write error reply",
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
		)
	}
}
