// internal/app/router.go
package app

import (
	accountHandler "evently-service/internal/handlers/account"
	authHandler "evently-service/internal/handlers/auth"
	categoryHandler "evently-service/internal/handlers/category"
	eventHandler "evently-service/internal/handlers/event"
	registrationHandler "evently-service/internal/handlers/registration"
	wsHandler "evently-service/internal/handlers/websocket"
	"evently-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	AuthHandler         *authHandler.AuthHandler
	AccountHandler      *accountHandler.AccountHandler
	EventHandler        *eventHandler.EventHandler
	CategoryHandler     *categoryHandler.CategoryHandler
	RegistrationHandler *registrationHandler.RegistrationHandler
	WSHandler           *wsHandler.WebSocketHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== WebSocket ====================
	r.GET("/ws", h.AuthMiddleware.Authenticated(), h.WSHandler.HandleConnection)

	// ==================== Auth ====================
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.AuthHandler.Login)
		auth.GET("/me", h.AuthMiddleware.Authenticated(), h.AuthHandler.GetMe)
	}

	// ==================== Accounts (admin only) ====================
	accounts := api.Group("/accounts")
	accounts.Use(h.AuthMiddleware.AdminOnly())
	{
		accounts.POST("", h.AccountHandler.Create)
		accounts.GET("", h.AccountHandler.List)
		accounts.GET("/:id", h.AccountHandler.Get)
		accounts.PUT("/:id/role", h.AccountHandler.UpdateRole)
		accounts.PUT("/:id/active", h.AccountHandler.SetActive)
		accounts.DELETE("/:id", h.AccountHandler.Delete)
		accounts.GET("/:id/registrations", h.RegistrationHandler.ListByAccount)
	}

	// ==================== Categories ====================
	categories := api.Group("/categories")
	{
		categories.GET("", h.AuthMiddleware.Authenticated(), h.CategoryHandler.List)
		categories.POST("", h.AuthMiddleware.AdminOnly(), h.CategoryHandler.Create)
		categories.DELETE("/:id", h.AuthMiddleware.AdminOnly(), h.CategoryHandler.Delete)
	}

	// ==================== Events ====================
	events := api.Group("/events")
	{
		events.GET("", h.AuthMiddleware.Authenticated(), h.EventHandler.List)
		events.GET("/:id", h.AuthMiddleware.Authenticated(), h.EventHandler.Get)

		events.POST("", h.AuthMiddleware.AdminOnly(), h.EventHandler.Create)
		events.PUT("/:id", h.AuthMiddleware.AdminOnly(), h.EventHandler.Update)
		events.DELETE("/:id", h.AuthMiddleware.AdminOnly(), h.EventHandler.Delete)
		events.GET("/:id/registrations", h.AuthMiddleware.AdminOnly(), h.RegistrationHandler.ListByEvent)
	}

	// ==================== Registrations ====================
	registrations := api.Group("/registrations")
	{
		registrations.GET("/me", h.AuthMiddleware.Authenticated(), h.RegistrationHandler.ListMine)

		registrations.POST("", h.AuthMiddleware.AdminOnly(), h.RegistrationHandler.Assign)
		registrations.PUT("/:id/status", h.AuthMiddleware.AdminOnly(), h.RegistrationHandler.UpdateStatus)
		registrations.DELETE("/:id", h.AuthMiddleware.AdminOnly(), h.RegistrationHandler.Remove)
	}
}
