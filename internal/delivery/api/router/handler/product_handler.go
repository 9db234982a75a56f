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

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the product catalogue.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// List accepts an optional business_id filter.
func (h *ProductHandler) List(c echo.Context) error {
	businessID, ok := queryID(c, "business_id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid business_id")
	}

	products, err := h.productUC.List(c.Request().Context(), businessID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.FromProducts(products))
}

func (h *ProductHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.NotFound(c, "PRODUCT_NOT_FOUND", "Product not found")
	}

	product, err := h.productUC.Get(c.Request().Context(), caller(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.FromProduct(product))
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req dto.CreateProductRequest
	if ok, err := bindAndValidate(c, &req, "product"); !ok {
		return err
	}

	product, err := h.productUC.Create(c.Request().Context(), caller(c), usecase.CreateProductInput{
		BusinessID: req.Business,
		Name:       req.Name,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, dto.FromProduct(product))
}

func (h *ProductHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.NotFound(c, "PRODUCT_NOT_FOUND", "Product not found")
	}

	var req dto.UpdateProductRequest
	if ok, err := bindAndValidate(c, &req, "product"); !ok {
		return err
	}

	product, err := h.productUC.Update(c.Request().Context(), caller(c), id, usecase.UpdateProductInput{
		BusinessID: req.Business,
		Name:       req.Name,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.FromProduct(product))
}

func (h *ProductHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.NotFound(c, "PRODUCT_NOT_FOUND", "Product not found")
	}

	if err := h.productUC.Delete(c.Request().Context(), caller(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
