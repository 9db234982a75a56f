package web

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"ratesmart/internal/delivery/web/apiclient"
	"ratesmart/internal/infra/session"
)

// Destructive actions that wait in the session for confirmation.
const (
	actionDeleteProduct     = "delete-product"
	actionDeleteOwnBusiness = "delete-own-business"
	actionDeleteBusiness    = "delete-business"
	actionDeleteReview      = "delete-review"
	actionReset             = "reset"
)

// Confirm runs the pending action. Without one it just goes home.
func (h *Handler) Confirm(c echo.Context) error {
	sess := sessionFrom(c)
	pending := sess.Pending
	sess.Pending = nil
	if pending == nil {
		return redirect(c, "/")
	}

	ctx := c.Request().Context()
	targetID, _ := uuid.Parse(pending.TargetID)

	switch pending.Action {
	case actionDeleteProduct:
		if !sess.LoggedInBusiness() {
			return redirect(c, "/business-login")
		}
		if err := h.api.DeleteProduct(ctx, sess.AccessToken, targetID); err != nil {
			if apiclient.IsUnauthorized(err) {
				return expired(c, "/business-login")
			}

			return flashRedirect(c, session.FlashError, apiclient.Message(err, "Failed to delete product"), pending.ReturnTo)
		}

		return flashRedirect(c, session.FlashSuccess, "Product deleted", pending.ReturnTo)

	case actionDeleteOwnBusiness:
		if !sess.LoggedInBusiness() {
			return redirect(c, "/business-login")
		}
		if err := h.api.DeleteBusiness(ctx, sess.AccessToken, targetID); err != nil {
			if apiclient.IsUnauthorized(err) {
				return expired(c, "/business-login")
			}

			return flashRedirect(c, session.FlashError, apiclient.Message(err, "Failed to delete business"), pending.ReturnTo)
		}
		sess.Logout()

		return flashRedirect(c, session.FlashSuccess, "Business deleted", "/")

	case actionDeleteBusiness:
		if !sess.LoggedInAdmin() {
			return redirect(c, "/admin-login")
		}
		if err := h.api.DeleteBusiness(ctx, sess.AccessToken, targetID); err != nil {
			return adminFailure(c, err, "Failed to delete business.", pending.ReturnTo)
		}

		return flashRedirect(c, session.FlashSuccess, "Business deleted", pending.ReturnTo)

	case actionDeleteReview:
		if !sess.LoggedInAdmin() {
			return redirect(c, "/admin-login")
		}
		if err := h.api.DeleteReview(ctx, sess.AccessToken, targetID); err != nil {
			return adminFailure(c, err, "Failed to delete review.", pending.ReturnTo)
		}

		return flashRedirect(c, session.FlashSuccess, "Review deleted", pending.ReturnTo)

	case actionReset:
		if !sess.LoggedInAdmin() {
			return redirect(c, "/admin-login")
		}
		resp, err := h.api.ResetSystem(ctx, sess.AccessToken)
		if err != nil {
			return adminFailure(c, err, "Failed to reset.", pending.ReturnTo)
		}
		h.log(ctx).Info("System reset",
			"reviews", resp.Reviews,
			"products", resp.Products,
			"businesses", resp.Businesses,
		)

		return flashRedirect(c, session.FlashSuccess, resp.Message, pending.ReturnTo)

	default:
		return redirect(c, "/")
	}
}

// Cancel discards the pending action.
func (h *Handler) Cancel(c echo.Context) error {
	sess := sessionFrom(c)
	returnTo := "/"
	if sess.Pending != nil && sess.Pending.ReturnTo != "" {
		returnTo = sess.Pending.ReturnTo
	}
	sess.Pending = nil

	return redirect(c, returnTo)
}
