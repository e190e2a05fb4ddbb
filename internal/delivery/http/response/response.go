// Package response emits the chat reply wire shape.
package response

import (
	"net/http"

	"fuelflow/internal/usecase"

	"github.com/labstack/echo/v4"
)

// OK writes the reply. Business failures still travel as HTTP 200 with a
// warning body; the frontend switches on the body, not the status code.
func OK(c echo.Context, reply *usecase.Reply) error {
	return c.JSON(http.StatusOK, reply)
}

// Warning writes a bare warning reply.
func Warning(c echo.Context, text, action string) error {
	return OK(c, &usecase.Reply{
		Warning: &usecase.Warning{
			Text:   text,
			Action: action,
		},
	})
}
