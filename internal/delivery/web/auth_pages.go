package web

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"ratesmart/internal/delivery/web/apiclient"
	"ratesmart/internal/delivery/web/view"
	"ratesmart/internal/infra/session"
)

const (
	msgSignupFailed       = "Signup failed. Please try again."
	msgInvalidLogin       = "Invalid email or password"
	msgInvalidAdminLogin  = "Invalid admin credentials!"
	msgPleaseLogIn        = "Please log in."
	msgSessionExpired     = "Your session has expired. Please log in again."
	msgLoggedOut          = "Logged out successfully"
	msgAdminLoginRequired = "Admin login required"
)

type signupData struct {
	Form      view.SignupForm
	Countries []string
	States    map[string][]string
	Error     string
}

func newSignupData(form view.SignupForm, errMsg string) signupData {
	states := make(map[string][]string)
	for _, country := range view.Countries() {
		states[country] = view.States(country)
	}

	return signupData{Form: form, Countries: view.Countries(), States: states, Error: errMsg}
}

type loginData struct {
	Email string
	Error string
}

func (h *Handler) Home(c echo.Context) error {
	return h.render(c, http.StatusOK, "home", "RateSmart", nil)
}

func (h *Handler) SignupPage(c echo.Context) error {
	return h.render(c, http.StatusOK, "signup", "Business Signup", newSignupData(view.SignupForm{}, ""))
}

// Signup validates the form locally, registers through the api and logs the
// new business in.
func (h *Handler) Signup(c echo.Context) error {
	var form view.SignupForm
	if err := c.Bind(&form); err != nil {
		return h.render(c, http.StatusBadRequest, "signup", "Business Signup", newSignupData(form, view.MsgFillAllFields))
	}

	if msg := view.ValidateSignup(form); msg != "" {
		form.Password, form.ConfirmPassword = "", ""

		return h.render(c, http.StatusUnprocessableEntity, "signup", "Business Signup", newSignupData(form, msg))
	}

	ctx := c.Request().Context()
	resp, err := h.api.Signup(ctx, form.ToRequest())
	if err != nil {
		h.log(ctx).Warn("Signup failed", "error", err)
		form.Password, form.ConfirmPassword = "", ""

		return h.render(c, http.StatusOK, "signup", "Business Signup", newSignupData(form, apiclient.Message(err, msgSignupFailed)))
	}

	sess := sessionFrom(c)
	sess.Logout()
	sess.AccessToken = resp.Access
	sess.RefreshToken = resp.Refresh
	cacheBusiness(sess, resp.Business)

	return flashRedirect(c, session.FlashSuccess, "Welcome to RateSmart!", "/business-dashboard")
}

func (h *Handler) LoginPage(c echo.Context) error {
	if sessionFrom(c).LoggedInBusiness() {
		return redirect(c, "/business-dashboard")
	}

	return h.render(c, http.StatusOK, "login", "Business Login", loginData{})
}

func (h *Handler) Login(c echo.Context) error {
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")

	ctx := c.Request().Context()
	resp, err := h.api.Login(ctx, email, password)
	if err != nil {
		h.log(ctx).Info("Business login failed", "error", err)

		return h.render(c, http.StatusOK, "login", "Business Login", loginData{
			Email: email,
			Error: apiclient.Message(err, msgInvalidLogin),
		})
	}

	sess := sessionFrom(c)
	sess.Logout()
	sess.AccessToken = resp.Access
	sess.RefreshToken = resp.Refresh
	cacheBusiness(sess, resp.Business)

	return redirect(c, "/business-dashboard")
}

func (h *Handler) BusinessLogout(c echo.Context) error {
	sess := sessionFrom(c)
	sess.Logout()
	sess.SetFlash(session.FlashSuccess, msgLoggedOut)

	return redirect(c, "/business-login")
}

func (h *Handler) AdminLoginPage(c echo.Context) error {
	if sessionFrom(c).LoggedInAdmin() {
		return redirect(c, "/admin-dashboard")
	}

	return h.render(c, http.StatusOK, "admin_login", "Admin Login", loginData{})
}

// AdminLogin always shows the same message on failure so it does not reveal
// which credential was wrong.
func (h *Handler) AdminLogin(c echo.Context) error {
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")

	ctx := c.Request().Context()
	tokens, err := h.api.AdminLogin(ctx, email, password)
	if err != nil {
		h.log(ctx).Warn("Admin login failed", "error", err)

		return h.render(c, http.StatusOK, "admin_login", "Admin Login", loginData{
			Email: email,
			Error: msgInvalidAdminLogin,
		})
	}

	sess := sessionFrom(c)
	sess.Logout()
	sess.AccessToken = tokens.Access
	sess.RefreshToken = tokens.Refresh
	sess.IsAdmin = true

	return redirect(c, "/admin-dashboard")
}

func (h *Handler) AdminLogout(c echo.Context) error {
	sess := sessionFrom(c)
	sess.Logout()
	sess.SetFlash(session.FlashSuccess, msgLoggedOut)

	return redirect(c, "/admin-login")
}

// expired drops the credentials and sends the browser to loginPath.
func expired(c echo.Context, loginPath string) error {
	sess := sessionFrom(c)
	sess.Logout()

	return flashRedirect(c, session.FlashError, msgSessionExpired, loginPath)
}
