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

// BusinessHandlerParams holds dependencies for BusinessHandler, injected by Fx.
type BusinessHandlerParams struct {
	fx.In

	BusinessUC usecase.BusinessUsecase
	Logger     *slog.Logger
}

// BusinessHandler serves business profiles.
type BusinessHandler struct {
	businessUC usecase.BusinessUsecase
	logger     *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler.
func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{
		businessUC: params.BusinessUC,
		logger:     params.Logger,
	}
}

func (h *BusinessHandler) List(c echo.Context) error {
	businesses, err := h.businessUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.FromBusinesses(businesses))
}

func (h *BusinessHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.NotFound(c, "BUSINESS_NOT_FOUND", "Business not found")
	}

	business, err := h.businessUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.FromBusiness(business))
}

// Me returns the business behind the bearer token.
func (h *BusinessHandler) Me(c echo.Context) error {
	business, err := h.businessUC.Me(c.Request().Context(), caller(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.FromBusiness(business))
}

func (h *BusinessHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.NotFound(c, "BUSINESS_NOT_FOUND", "Business not found")
	}

	var req dto.UpdateBusinessRequest
	if ok, err := bindAndValidate(c, &req, "business"); !ok {
		return err
	}

	business, err := h.businessUC.Update(c.Request().Context(), caller(c), id, req.ToUpdate())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.FromBusiness(business))
}

func (h *BusinessHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.NotFound(c, "BUSINESS_NOT_FOUND", "Business not found")
	}

	if err := h.businessUC.Delete(c.Request().Context(), caller(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ReviewQR streams the PNG that links customers to the review form.
func (h *BusinessHandler) ReviewQR(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.NotFound(c, "BUSINESS_NOT_FOUND", "Business not found")
	}

	png, err := h.businessUC.ReviewQR(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}
