// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wchub/internal/delivery/http/middleware"
	"wchub/internal/delivery/http/router/handler"
	"wchub/internal/delivery/ws"
	"wchub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler the router registers, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	UserHandler        *handler.UserHandler
	ProfileHandler     *handler.ProfileHandler
	ProjectHandler     *handler.ProjectHandler
	MessageHandler     *handler.MessageHandler
	InteractionHandler *handler.InteractionHandler
	AdminHandler       *handler.AdminHandler
	WSHandler          *ws.Handler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.params.AuthMiddleware.Authenticate

	api := e.Group("/api")

	api.GET("/health", handler.HealthCheck)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
	}

	userGroup := api.Group("/users", authenticate)
	{
		userGroup.GET("/me", r.params.UserHandler.Me)
		userGroup.PUT("/me", r.params.UserHandler.UpdateMe)
	}

	// Public browse directories.
	profilesGroup := api.Group("/profiles")
	{
		profilesGroup.GET("/entrepreneurs", r.params.ProfileHandler.ListEntrepreneurs)
		profilesGroup.GET("/investors", r.params.ProfileHandler.ListInvestors)
	}

	// Self-service role profiles.
	entrepreneurGroup := api.Group("/entrepreneur", authenticate)
	{
		entrepreneurGroup.GET("/profile", r.params.ProfileHandler.GetEntrepreneurProfile)
		entrepreneurGroup.PUT("/profile", r.params.ProfileHandler.UpdateEntrepreneurProfile)
	}
	investorGroup := api.Group("/investor", authenticate)
	{
		investorGroup.GET("/profile", r.params.ProfileHandler.GetInvestorProfile)
		investorGroup.PUT("/profile", r.params.ProfileHandler.UpdateInvestorProfile)
	}

	// Project reads are public, writes require authentication.
	projectGroup := api.Group("/projects")
	{
		projectGroup.GET("", r.params.ProjectHandler.List)
		projectGroup.GET("/:id", r.params.ProjectHandler.Get)
		projectGroup.GET("/:id/qr", r.params.ProjectHandler.ShareQR)
		projectGroup.POST("", r.params.ProjectHandler.Create, authenticate)
		projectGroup.PUT("/:id", r.params.ProjectHandler.Update, authenticate)
		projectGroup.DELETE("/:id", r.params.ProjectHandler.Delete, authenticate)
	}

	messageGroup := api.Group("/messages", authenticate)
	{
		messageGroup.POST("/send", r.params.MessageHandler.Send)
		messageGroup.GET("/inbox", r.params.MessageHandler.Inbox)
	}

	api.GET("/ws", r.params.WSHandler.Handle, authenticate)

	api.POST("/interactions", r.params.InteractionHandler.Record, authenticate)

	adminGroup := api.Group("/admin", authenticate,
		r.params.AuthMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/dashboard", r.params.AdminHandler.Dashboard)
	}
}
