package web

import (
	"net/http"
	"slices"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"ratesmart/internal/delivery/api/dto"
	"ratesmart/internal/delivery/web/apiclient"
	"ratesmart/internal/delivery/web/view"
	"ratesmart/internal/infra/session"
)

var adminTabs = []string{"overview", "businesses", "reviews"}

type adminData struct {
	Tab            string
	Tabs           []string
	BusinessCount  int
	ReviewCount    int
	FakeCount      int
	Businesses     []dto.Business
	Reviews        []dto.Review
	BusinessSearch string
	ReviewSearch   string
	Error          string
}

func adminURL(tab string) string {
	if tab == "" || tab == "overview" {
		return "/admin-dashboard"
	}

	return "/admin-dashboard?tab=" + tab
}

func requireAdmin(c echo.Context) (bool, error) {
	sess := sessionFrom(c)
	if !sess.LoggedInAdmin() {
		return false, flashRedirect(c, session.FlashError, msgAdminLoginRequired, "/admin-login")
	}

	return true, nil
}

func (h *Handler) AdminDashboard(c echo.Context) error {
	if ok, err := requireAdmin(c); !ok {
		return err
	}

	tab := c.QueryParam("tab")
	if !slices.Contains(adminTabs, tab) {
		tab = "overview"
	}

	ctx := c.Request().Context()

	var (
		businesses []dto.Business
		reviews    []dto.Review
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		businesses, err = h.api.ListBusinesses(gctx)

		return err
	})
	g.Go(func() (err error) {
		reviews, err = h.api.ListReviews(gctx, uuid.Nil)

		return err
	})
	if err := g.Wait(); err != nil {
		h.log(ctx).Error("Failed to load admin dashboard", "error", err)

		return h.render(c, http.StatusBadGateway, "admin_dashboard", "Admin Dashboard", adminData{
			Tab:   tab,
			Tabs:  adminTabs,
			Error: "Failed to load dashboard data",
		})
	}

	businessSearch := c.QueryParam("business")
	reviewSearch := c.QueryParam("review")

	return h.render(c, http.StatusOK, "admin_dashboard", "Admin Dashboard", adminData{
		Tab:            tab,
		Tabs:           adminTabs,
		BusinessCount:  len(businesses),
		ReviewCount:    len(reviews),
		FakeCount:      view.CountFake(reviews),
		Businesses:     view.FilterBusinesses(businesses, businessSearch),
		Reviews:        view.FilterReviewsByBusinessName(reviews, reviewSearch),
		BusinessSearch: businessSearch,
		ReviewSearch:   reviewSearch,
	})
}

func (h *Handler) ConfirmDeleteBusiness(c echo.Context) error {
	if ok, err := requireAdmin(c); !ok {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return redirect(c, adminURL("businesses"))
	}

	sessionFrom(c).Pending = &session.Confirmation{
		Action:      actionDeleteBusiness,
		TargetID:    id.String(),
		Title:       "Delete business?",
		Description: "The business, its products and reviews will be removed.",
		ReturnTo:    adminURL("businesses"),
	}

	return redirect(c, adminURL("businesses"))
}

func (h *Handler) ConfirmDeleteReview(c echo.Context) error {
	if ok, err := requireAdmin(c); !ok {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return redirect(c, adminURL("reviews"))
	}

	sessionFrom(c).Pending = &session.Confirmation{
		Action:      actionDeleteReview,
		TargetID:    id.String(),
		Title:       "Delete review?",
		Description: "This review will be permanently removed.",
		ReturnTo:    adminURL("reviews"),
	}

	return redirect(c, adminURL("reviews"))
}

func (h *Handler) ConfirmReset(c echo.Context) error {
	if ok, err := requireAdmin(c); !ok {
		return err
	}

	sessionFrom(c).Pending = &session.Confirmation{
		Action:      actionReset,
		Title:       "Reset system?",
		Description: "Deletes all businesses (except staff), products, and reviews.",
		ReturnTo:    adminURL("overview"),
	}

	return redirect(c, adminURL("overview"))
}

// adminFailure maps an api error of an admin action to a toast, or to the
// login page when the admin token is no longer accepted.
func adminFailure(c echo.Context, err error, fallback, returnTo string) error {
	if apiclient.IsUnauthorized(err) {
		return expired(c, "/admin-login")
	}

	return flashRedirect(c, session.FlashError, apiclient.Message(err, fallback), returnTo)
}
