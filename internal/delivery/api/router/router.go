// Package router wires the api handlers onto echo routes.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"ratesmart/internal/delivery/api/middleware"
	"ratesmart/internal/delivery/api/router/handler"
	"ratesmart/internal/domain/entity"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	BusinessHandler *handler.BusinessHandler
	ProductHandler  *handler.ProductHandler
	ReviewHandler   *handler.ReviewHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	businessHandler *handler.BusinessHandler
	productHandler  *handler.ProductHandler
	reviewHandler   *handler.ReviewHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		businessHandler: params.BusinessHandler,
		productHandler:  params.ProductHandler,
		reviewHandler:   params.ReviewHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	auth := r.authMiddleware.Authenticate
	api := e.Group("/api")

	// Auth
	api.POST("/signup", r.authHandler.Signup)
	api.POST("/login", r.authHandler.Login)
	api.POST("/token/refresh", r.authHandler.Refresh)
	api.POST("/admin/login", r.authHandler.AdminLogin)

	// Businesses; /me must be registered before /:id.
	businesses := api.Group("/businesses")
	{
		businesses.GET("", r.businessHandler.List)
		businesses.GET("/me", r.businessHandler.Me, auth, r.authMiddleware.RequireRole(entity.RoleBusiness))
		businesses.GET("/:id", r.businessHandler.Get)
		businesses.GET("/:id/qr", r.businessHandler.ReviewQR)
		businesses.PUT("/:id", r.businessHandler.Update, auth)
		businesses.DELETE("/:id", r.businessHandler.Delete, auth)
	}

	products := api.Group("/products")
	{
		products.GET("", r.productHandler.List)
		products.POST("", r.productHandler.Create, auth)
		products.GET("/:id", r.productHandler.Get, auth)
		products.PUT("/:id", r.productHandler.Update, auth)
		products.DELETE("/:id", r.productHandler.Delete, auth)
	}

	reviews := api.Group("/reviews")
	{
		reviews.GET("", r.reviewHandler.List)
		reviews.POST("", r.reviewHandler.Create)
		reviews.GET("/:id", r.reviewHandler.Get)
		reviews.PUT("/:id", r.reviewHandler.Update, auth)
		reviews.DELETE("/:id", r.reviewHandler.Delete, auth)
	}

	admin := api.Group("/admin", auth, r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		admin.POST("/reset", r.adminHandler.Reset)
	}
}
