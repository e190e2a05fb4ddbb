// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"

	"fuelflow/internal/delivery/http/response"
	"fuelflow/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ChatHandler holds dependencies for the chat endpoint.
type ChatHandler struct {
	chat   usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler, injected by Fx.
func NewChatHandler(chat usecase.ChatUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		chat:   chat,
		logger: logger,
	}
}

type chatRequest struct {
	Message string `json:"message" validate:"required"`
}

// Chat handles one inbound chat message. Whatever happens inside, the
// caller gets exactly one well-formed reply object.
func (h *ChatHandler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return response.Warning(c, "Could not read the chat message.", "")
	}
	if err := c.Validate(&req); err != nil {
		return response.Warning(c, "The chat message is empty.", "")
	}

	h.logger.Info("message received", slog.Int("length", len(req.Message)))

	reply := h.chat.Handle(c.Request().Context(), req.Message)

	return response.OK(c, reply)
}
