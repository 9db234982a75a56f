package web

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"ratesmart/internal/delivery/api/dto"
	"ratesmart/internal/delivery/web/apiclient"
	"ratesmart/internal/delivery/web/view"
	"ratesmart/internal/infra/session"
)

const (
	msgDashboardLoadFailed = "Failed to load dashboard"
	msgSaveRepliesFailed   = "Failed to save replies"
	msgRepliesSaved        = "Replies saved successfully!"
	msgProductNameRequired = "Product name is required"
)

var dashboardTabs = []string{"dashboard", "products", "reviews", "preview", "info"}

type dashboardData struct {
	Tab       string
	Tabs      []string
	Business  dto.Business
	Products  []dto.Product
	Reviews   []dto.Review
	Stats     view.Stats
	Filter    view.ReviewFilter
	Profile   profileData
	Countries []string
	States    map[string][]string
	Error     string
}

// ownerData is everything the dashboard shows about the logged-in business.
type ownerData struct {
	business *dto.Business
	products []dto.Product
	reviews  []dto.Review
}

func (h *Handler) loadOwnerData(ctx context.Context, token string, cached dto.Business) (*ownerData, error) {
	data := &ownerData{}

	// Products and reviews are filtered by the cached id; the fresh profile
	// comes back in parallel.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		business, err := h.api.Me(gctx, token)
		data.business = business

		return err
	})
	g.Go(func() error {
		products, err := h.api.ListProducts(gctx, cached.ID)
		data.products = products

		return err
	})
	g.Go(func() error {
		reviews, err := h.api.ListReviews(gctx, cached.ID)
		data.reviews = reviews

		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return data, nil
}

// requireBusiness returns the cached business of a logged-in owner. ok is
// false when the response has already been written.
func requireBusiness(c echo.Context) (dto.Business, bool, error) {
	sess := sessionFrom(c)
	business, cached := cachedBusiness(sess)
	if !sess.LoggedInBusiness() || !cached {
		sess.Logout()

		return business, false, flashRedirect(c, session.FlashError, msgPleaseLogIn, "/business-login")
	}

	return business, true, nil
}

// dashboardURL keeps the user on the tab the form was posted from.
func dashboardURL(tab string) string {
	if tab == "" || tab == "dashboard" {
		return "/business-dashboard"
	}

	return "/business-dashboard?tab=" + tab
}

func (h *Handler) Dashboard(c echo.Context) error {
	cached, ok, err := requireBusiness(c)
	if !ok {
		return err
	}

	sess := sessionFrom(c)
	ctx := c.Request().Context()

	data, err := h.loadOwnerData(ctx, sess.AccessToken, cached)
	if err != nil {
		if apiclient.IsUnauthorized(err) {
			return expired(c, "/business-login")
		}
		h.log(ctx).Error("Failed to load dashboard", "error", err)

		return h.render(c, http.StatusBadGateway, "dashboard", "Dashboard", dashboardData{
			Tab:      "dashboard",
			Tabs:     dashboardTabs,
			Business: cached,
			Error:    msgDashboardLoadFailed,
		})
	}
	cacheBusiness(sess, data.business)

	tab := c.QueryParam("tab")
	if !slices.Contains(dashboardTabs, tab) {
		tab = "dashboard"
	}

	var filter view.ReviewFilter
	_ = (&echo.DefaultBinder{}).BindQueryParams(c, &filter)

	page := dashboardData{
		Tab:      tab,
		Tabs:     dashboardTabs,
		Business: *data.business,
		Products: data.products,
		Reviews:  view.FilterReviews(data.reviews, filter),
		Stats:    view.Summarize(data.reviews),
		Filter:   filter,
		Profile:  newProfileData(*data.business, data.products, data.reviews),
	}
	if tab == "info" {
		signup := newSignupData(view.SignupForm{}, "")
		page.Countries, page.States = signup.Countries, signup.States
	}

	return h.render(c, http.StatusOK, "dashboard", "Dashboard", page)
}

func (h *Handler) AddProduct(c echo.Context) error {
	business, ok, err := requireBusiness(c)
	if !ok {
		return err
	}

	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return flashRedirect(c, session.FlashError, msgProductNameRequired, dashboardURL("products"))
	}

	ctx := c.Request().Context()
	_, err = h.api.CreateProduct(ctx, sessionFrom(c).AccessToken, dto.CreateProductRequest{Business: business.ID, Name: name})
	if err != nil {
		if apiclient.IsUnauthorized(err) {
			return expired(c, "/business-login")
		}

		return flashRedirect(c, session.FlashError, apiclient.Message(err, "Failed to add product"), dashboardURL("products"))
	}

	return flashRedirect(c, session.FlashSuccess, "Product added!", dashboardURL("products"))
}

func (h *Handler) ConfirmDeleteProduct(c echo.Context) error {
	if _, ok, err := requireBusiness(c); !ok {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return redirect(c, dashboardURL("products"))
	}

	sessionFrom(c).Pending = &session.Confirmation{
		Action:      actionDeleteProduct,
		TargetID:    id.String(),
		Title:       "Delete product?",
		Description: "The product and all of its reviews will be removed.",
		ReturnTo:    dashboardURL("products"),
	}

	return redirect(c, dashboardURL("products"))
}

// SaveReplies sends one update per review concurrently. A single failure is
// reported once for the whole batch.
func (h *Handler) SaveReplies(c echo.Context) error {
	if _, ok, err := requireBusiness(c); !ok {
		return err
	}

	form, err := c.FormParams()
	if err != nil {
		return flashRedirect(c, session.FlashError, msgSaveRepliesFailed, dashboardURL("reviews"))
	}

	replies := make(map[uuid.UUID]string)
	for key, values := range form {
		raw, found := strings.CutPrefix(key, "reply_")
		if !found || len(values) == 0 {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		replies[id] = values[0]
	}

	ctx := c.Request().Context()
	token := sessionFrom(c).AccessToken

	var g errgroup.Group
	for id, reply := range replies {
		g.Go(func() error {
			_, err := h.api.Reply(ctx, token, id, reply)

			return err
		})
	}
	if err := g.Wait(); err != nil {
		h.log(ctx).Warn("Failed to save replies", "error", err, "count", len(replies))
		if apiclient.IsUnauthorized(err) {
			return expired(c, "/business-login")
		}

		return flashRedirect(c, session.FlashError, msgSaveRepliesFailed, dashboardURL("reviews"))
	}

	return flashRedirect(c, session.FlashSuccess, msgRepliesSaved, dashboardURL("reviews"))
}

type businessInfoForm struct {
	Name        string `form:"name"`
	Email       string `form:"email"`
	Phone       string `form:"phone"`
	Country     string `form:"country"`
	State       string `form:"state"`
	Hours       string `form:"hours"`
	Description string `form:"description"`
}

// toUpdate sends only the fields that were filled in.
func (f businessInfoForm) toUpdate() dto.UpdateBusinessRequest {
	set := func(v string) *string {
		v = strings.TrimSpace(v)
		if v == "" {
			return nil
		}

		return &v
	}

	return dto.UpdateBusinessRequest{
		Name:        set(f.Name),
		Email:       set(f.Email),
		Phone:       set(f.Phone),
		Country:     set(f.Country),
		State:       set(f.State),
		Hours:       set(f.Hours),
		Description: set(f.Description),
	}
}

func (h *Handler) UpdateInfo(c echo.Context) error {
	business, ok, err := requireBusiness(c)
	if !ok {
		return err
	}

	var form businessInfoForm
	if err := c.Bind(&form); err != nil {
		return flashRedirect(c, session.FlashError, "Invalid business info", dashboardURL("info"))
	}

	ctx := c.Request().Context()
	sess := sessionFrom(c)
	updated, err := h.api.UpdateBusiness(ctx, sess.AccessToken, business.ID, form.toUpdate())
	if err != nil {
		if apiclient.IsUnauthorized(err) {
			return expired(c, "/business-login")
		}

		return flashRedirect(c, session.FlashError, apiclient.Message(err, "Failed to update business info"), dashboardURL("info"))
	}
	cacheBusiness(sess, updated)

	return flashRedirect(c, session.FlashSuccess, "Business info updated!", dashboardURL("info"))
}

func (h *Handler) ConfirmDeleteOwnBusiness(c echo.Context) error {
	business, ok, err := requireBusiness(c)
	if !ok {
		return err
	}

	sessionFrom(c).Pending = &session.Confirmation{
		Action:      actionDeleteOwnBusiness,
		TargetID:    business.ID.String(),
		Title:       "Delete your business?",
		Description: "This permanently removes your business, products and reviews.",
		ReturnTo:    dashboardURL("info"),
	}

	return redirect(c, dashboardURL("info"))
}
