package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"ratesmart/internal/delivery/api/dto"
	"ratesmart/internal/delivery/api/response"
	"ratesmart/internal/usecase"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves moderator-only operations.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// Reset wipes reviews, products and non-staff businesses.
func (h *AdminHandler) Reset(c echo.Context) error {
	out, err := h.adminUC.Reset(c.Request().Context(), caller(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.ResetResponse{
		Message:    "System reset successfully",
		Reviews:    out.Reviews,
		Products:   out.Products,
		Businesses: out.Businesses,
	})
}
