package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"ratesmart/internal/delivery/api/dto"
	"ratesmart/internal/delivery/web/apiclient"
	"ratesmart/internal/delivery/web/view"
)

const (
	msgBusinessNotFound     = "Business not found"
	msgLoadBusinessesFailed = "Failed to load businesses"
	msgCompleteAllFields    = "Please complete all fields."
	msgReviewFailed         = "Error submitting review. Please try again."
)

type searchData struct {
	Query       string
	Suggestions []dto.Business
	Error       string
}

// Search shows suggestions for q. With find set it jumps to the business
// whose name is exactly q.
func (h *Handler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	ctx := c.Request().Context()

	businesses, err := h.api.ListBusinesses(ctx)
	if err != nil {
		h.log(ctx).Error("Failed to list businesses", "error", err)

		return h.render(c, http.StatusOK, "search", "Search", searchData{Query: query, Error: msgLoadBusinessesFailed})
	}

	if c.QueryParam("find") != "" {
		if match, ok := view.FindExact(businesses, query); ok {
			return c.Redirect(http.StatusFound, "/profile/"+match.ID.String())
		}

		return h.render(c, http.StatusOK, "search", "Search", searchData{Query: query, Error: msgBusinessNotFound})
	}

	return h.render(c, http.StatusOK, "search", "Search", searchData{
		Query:       query,
		Suggestions: view.Suggest(businesses, query),
	})
}

type profileData struct {
	Business     dto.Business
	Products     []dto.Product
	Reviews      []dto.Review
	Average      string
	Distribution []view.DistributionRow
}

func newProfileData(business dto.Business, products []dto.Product, reviews []dto.Review) profileData {
	return profileData{
		Business:     business,
		Products:     products,
		Reviews:      reviews,
		Average:      view.FormatAverage(reviews, "N/A"),
		Distribution: view.Distribution(reviews),
	}
}

func (h *Handler) Profile(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return h.render(c, http.StatusNotFound, "not_found", msgBusinessNotFound, nil)
	}

	ctx := c.Request().Context()

	var (
		business *dto.Business
		products []dto.Product
		reviews  []dto.Review
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		business, err = h.api.GetBusiness(gctx, id)

		return err
	})
	g.Go(func() (err error) {
		products, err = h.api.ListProducts(gctx, id)

		return err
	})
	g.Go(func() (err error) {
		reviews, err = h.api.ListReviews(gctx, id)

		return err
	})
	if err := g.Wait(); err != nil {
		if apiclient.IsNotFound(err) {
			return h.render(c, http.StatusNotFound, "not_found", msgBusinessNotFound, nil)
		}
		h.log(ctx).Error("Failed to load profile", "error", err, "business_id", id)

		return h.render(c, http.StatusBadGateway, "not_found", "Failed to load business", nil)
	}

	return h.render(c, http.StatusOK, "profile", business.Name, newProfileData(*business, products, reviews))
}

// QR proxies the review QR code so the browser never talks to the api.
func (h *Handler) QR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.ErrNotFound
	}

	png, err := h.api.BusinessQR(c.Request().Context(), id)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return echo.ErrNotFound
		}

		return echo.NewHTTPError(http.StatusBadGateway, "QR code unavailable")
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}

type reviewForm struct {
	Business     string `form:"business"`
	Product      string `form:"product"`
	CustomerName string `form:"customer_name"`
	Text         string `form:"text"`
	Rating       string `form:"rating"`
}

type reviewData struct {
	Query      string
	Matches    []dto.Business
	Selected   *dto.Business
	Products   []dto.Product
	Form       reviewForm
	Ratings    []int
	Error      string
	NoMatches  bool
	Searchable bool
}

// reviewPage loads what the review form needs: search matches for query and,
// once a business is chosen, its products.
func (h *Handler) reviewPage(c echo.Context, query string, businessID uuid.UUID, form reviewForm) (reviewData, error) {
	ctx := c.Request().Context()
	data := reviewData{Query: query, Form: form, Ratings: []int{5, 4, 3, 2, 1}}

	if businessID != uuid.Nil {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			business, err := h.api.GetBusiness(gctx, businessID)
			data.Selected = business

			return err
		})
		g.Go(func() error {
			products, err := h.api.ListProducts(gctx, businessID)
			data.Products = products

			return err
		})
		if err := g.Wait(); err != nil {
			return data, err
		}
		data.Form.Business = businessID.String()

		return data, nil
	}

	data.Searchable = true
	if strings.TrimSpace(query) == "" {
		return data, nil
	}

	businesses, err := h.api.ListBusinesses(ctx)
	if err != nil {
		return data, err
	}
	data.Matches = view.FilterBusinesses(businesses, query)
	data.NoMatches = len(data.Matches) == 0

	return data, nil
}

func (h *Handler) ReviewPage(c echo.Context) error {
	businessID, _ := uuid.Parse(c.QueryParam("business"))

	data, err := h.reviewPage(c, c.QueryParam("q"), businessID, reviewForm{})
	if err != nil {
		h.log(c.Request().Context()).Warn("Failed to load review page", "error", err)
		data.Error = "Failed to load products for this business"
	}

	return h.render(c, http.StatusOK, "review", "Leave a Review", data)
}

func (h *Handler) SubmitReview(c echo.Context) error {
	var form reviewForm
	_ = c.Bind(&form)

	businessID, _ := uuid.Parse(form.Business)
	productID, productErr := uuid.Parse(form.Product)
	rating, ratingErr := strconv.Atoi(form.Rating)

	complete := strings.TrimSpace(form.CustomerName) != "" &&
		strings.TrimSpace(form.Text) != "" &&
		productErr == nil && ratingErr == nil && rating > 0

	ctx := c.Request().Context()
	if complete {
		_, err := h.api.CreateReview(ctx, dto.CreateReviewRequest{
			Product:      productID,
			CustomerName: strings.TrimSpace(form.CustomerName),
			Text:         strings.TrimSpace(form.Text),
			Rating:       rating,
		})
		if err == nil {
			return redirect(c, "/thank-you")
		}
		h.log(ctx).Warn("Failed to submit review", "error", err)

		data, _ := h.reviewPage(c, "", businessID, form)
		data.Error = apiclient.Message(err, msgReviewFailed)

		return h.render(c, http.StatusOK, "review", "Leave a Review", data)
	}

	data, _ := h.reviewPage(c, "", businessID, form)
	data.Error = msgCompleteAllFields

	return h.render(c, http.StatusUnprocessableEntity, "review", "Leave a Review", data)
}

func (h *Handler) ThankYou(c echo.Context) error {
	return h.render(c, http.StatusOK, "thank_you", "Thank You", nil)
}
