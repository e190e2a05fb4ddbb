package handler

import (
	"net/http"

	"fuelflow/internal/domain/entity"
	"fuelflow/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports service liveness plus per-kind cache counts.
type HealthHandler struct {
	lookup usecase.LookupUsecase
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(lookup usecase.LookupUsecase) *HealthHandler {
	return &HealthHandler{
		lookup: lookup,
	}
}

// Health returns the cached record counts. The uppercase keys are the
// shape the existing dashboard polls.
func (h *HealthHandler) Health(c echo.Context) error {
	counts := h.lookup.Counts()

	return c.JSON(http.StatusOK, map[string]any{
		"status":       "OK",
		"CUSTOMER":     counts[entity.KindCustomer],
		"ADMIN":        counts[entity.KindAdmin],
		"DELIVERY_BOY": counts[entity.KindDeliveryPerson],
		"PRODUCT":      counts[entity.KindProduct],
	})
}
