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

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler serves customer reviews and business replies.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// List accepts optional business_id and product_id filters.
func (h *ReviewHandler) List(c echo.Context) error {
	businessID, ok := queryID(c, "business_id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid business_id")
	}
	productID, ok := queryID(c, "product_id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product_id")
	}

	reviews, err := h.reviewUC.List(c.Request().Context(), usecase.ReviewListFilter{
		BusinessID: businessID,
		ProductID:  productID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.FromReviews(reviews))
}

func (h *ReviewHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.NotFound(c, "REVIEW_NOT_FOUND", "Review not found")
	}

	review, err := h.reviewUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.FromReview(review))
}

// Create is public: customers review without an account.
func (h *ReviewHandler) Create(c echo.Context) error {
	var req dto.CreateReviewRequest
	if ok, err := bindAndValidate(c, &req, "review"); !ok {
		return err
	}

	review, err := h.reviewUC.Create(c.Request().Context(), usecase.CreateReviewInput{
		ProductID:    req.Product,
		CustomerName: req.CustomerName,
		Text:         req.Text,
		Rating:       req.Rating,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, dto.FromReview(review))
}

func (h *ReviewHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.NotFound(c, "REVIEW_NOT_FOUND", "Review not found")
	}

	var req dto.UpdateReviewRequest
	if ok, err := bindAndValidate(c, &req, "review"); !ok {
		return err
	}

	review, err := h.reviewUC.Update(c.Request().Context(), caller(c), id, req.ToUpdate())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.FromReview(review))
}

func (h *ReviewHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.NotFound(c, "REVIEW_NOT_FOUND", "Review not found")
	}

	if err := h.reviewUC.Delete(c.Request().Context(), caller(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
