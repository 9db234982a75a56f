package web

import (
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"

	"ratesmart/internal/delivery/web/assets"
)

// RegisterRoutes mounts every page.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	static, _ := fs.Sub(assets.Static, "static")
	e.GET("/static/*", echo.WrapHandler(http.StripPrefix("/static/", http.FileServer(http.FS(static)))))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/", h.Home)

	e.GET("/business-signup", h.SignupPage)
	e.POST("/business-signup", h.Signup)
	e.GET("/business-login", h.LoginPage)
	e.POST("/business-login", h.Login)

	dashboard := e.Group("/business-dashboard")
	dashboard.GET("", h.Dashboard)
	dashboard.POST("/products", h.AddProduct)
	dashboard.POST("/products/:id/delete", h.ConfirmDeleteProduct)
	dashboard.POST("/replies", h.SaveReplies)
	dashboard.POST("/info", h.UpdateInfo)
	dashboard.POST("/delete", h.ConfirmDeleteOwnBusiness)
	dashboard.POST("/logout", h.BusinessLogout)

	e.GET("/admin-login", h.AdminLoginPage)
	e.POST("/admin-login", h.AdminLogin)

	admin := e.Group("/admin-dashboard")
	admin.GET("", h.AdminDashboard)
	admin.POST("/businesses/:id/delete", h.ConfirmDeleteBusiness)
	admin.POST("/reviews/:id/delete", h.ConfirmDeleteReview)
	admin.POST("/reset", h.ConfirmReset)
	admin.POST("/logout", h.AdminLogout)

	e.POST("/confirm", h.Confirm)
	e.POST("/confirm/cancel", h.Cancel)

	e.GET("/search-page", h.Search)
	e.GET("/profile/:id", h.Profile)
	e.GET("/qr/:id", h.QR)
	e.GET("/review", h.ReviewPage)
	e.POST("/review", h.SubmitReview)
	e.GET("/thank-you", h.ThankYou)

	e.Any("/*", h.NotFoundRedirect)
}
