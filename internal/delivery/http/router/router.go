// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gia/internal/delivery/http/middleware"
	"gia/internal/delivery/http/router/handler"
	"gia/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler      *handler.HealthHandler
	AuthHandler        *handler.AuthHandler
	ProductHandler     *handler.ProductHandler
	OrderHandler       *handler.OrderHandler
	ContentHandler     *handler.ContentHandler
	ApplicationHandler *handler.ApplicationHandler
	ArtistHandler      *handler.ArtistHandler
	AdminHandler       *handler.AdminHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler      *handler.HealthHandler
	authHandler        *handler.AuthHandler
	productHandler     *handler.ProductHandler
	orderHandler       *handler.OrderHandler
	contentHandler     *handler.ContentHandler
	applicationHandler *handler.ApplicationHandler
	artistHandler      *handler.ArtistHandler
	adminHandler       *handler.AdminHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:      params.HealthHandler,
		authHandler:        params.AuthHandler,
		productHandler:     params.ProductHandler,
		orderHandler:       params.OrderHandler,
		contentHandler:     params.ContentHandler,
		applicationHandler: params.ApplicationHandler,
		artistHandler:      params.ArtistHandler,
		adminHandler:       params.AdminHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.healthHandler.Check)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.GET("/user", r.authHandler.CurrentUser, r.authMiddleware.Authenticate)
	}

	// Product routes: reads are public, writes require an artist or admin.
	// Ownership on update is enforced in the usecase, not here.
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/:id", r.productHandler.Get)
		productGroup.POST("", r.productHandler.Create, r.authMiddleware.Authenticate)
		productGroup.PUT("/:id", r.productHandler.Update, r.authMiddleware.Authenticate)
	}

	// Order routes all require authentication
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.Create)
		orderGroup.GET("", r.orderHandler.ListOwn)
		orderGroup.POST("/:id/payment", r.orderHandler.ConfirmPayment)
	}

	// Blog routes: reads are public, writes require an artist or admin.
	blogGroup := e.Group("/blog")
	{
		blogGroup.GET("", r.contentHandler.ListPosts)
		blogGroup.GET("/:id", r.contentHandler.GetPost)
		blogGroup.POST("", r.contentHandler.CreatePost, r.authMiddleware.Authenticate)
	}

	// Magazine routes: reads are public, publishing is superuser-only.
	magazineGroup := e.Group("/magazine")
	{
		magazineGroup.GET("", r.contentHandler.ListMagazines)
		magazineGroup.POST("", r.contentHandler.PublishMagazine,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireSuperuser)
	}

	// Work-with-us application
	e.POST("/work-with-us", r.applicationHandler.Submit, r.authMiddleware.Authenticate)

	// Artist dashboard routes require authentication and the artist or admin role
	artistGroup := e.Group("/artist")
	artistGroup.Use(r.authMiddleware.Authenticate)
	artistGroup.Use(r.authMiddleware.RequireRole(entity.RoleArtist, entity.RoleAdmin))
	{
		artistGroup.GET("/products", r.artistHandler.Products)
		artistGroup.GET("/orders", r.artistHandler.Orders)
		artistGroup.GET("/analytics", r.artistHandler.Analytics)
	}

	// Admin dashboard routes are superuser-only: the designated email, not
	// the stored admin role, is what grants access here.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireSuperuser)
	{
		adminGroup.GET("/analytics/overview", r.adminHandler.AnalyticsOverview)
		adminGroup.GET("/analytics/payments", r.adminHandler.AnalyticsPayments)
		adminGroup.GET("/analytics/users", r.adminHandler.AnalyticsUsers)
		adminGroup.GET("/users/search", r.adminHandler.SearchUsers)
		adminGroup.POST("/users/:id/grant-admin", r.adminHandler.GrantAdmin)
		adminGroup.POST("/users/:id/revoke-admin", r.adminHandler.RevokeAdmin)
		adminGroup.GET("/orders/all", r.adminHandler.AllOrders)
	}
}
