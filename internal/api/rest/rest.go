package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")

	// Service endpoints (JWT or API key)
	svc := v1.Group("", middleware.Auth(authCfg))
	{
		svc.POST("/accounts", handler.CreateAccount)
		svc.GET("/accounts/:id", handler.GetAccount)
		svc.GET("/accounts/:id/balance", handler.GetBalance)
		svc.GET("/accounts/:id/lots", handler.ListLots)
		svc.POST("/accounts/:id/credits", handler.Credit)
		svc.POST("/accounts/:id/debits", handler.Debit)
		svc.POST("/accounts/:id/reservations", handler.Reserve)
		svc.GET("/accounts/:id/budget", handler.GetBudget)
		svc.PUT("/accounts/:id/budget", handler.SetBudget)

		svc.GET("/reservations/:id", handler.GetReservation)
		svc.POST("/reservations/:id/finalize", handler.Finalize)
		svc.POST("/reservations/:id/cancel", handler.Cancel)

		svc.POST("/campaigns", handler.CreateCampaign)
		svc.POST("/campaigns/:id/grants", handler.IssueGrant)

		svc.GET("/usage-events", handler.ListUsageEvents)
	}

	// Operator endpoints (API key only)
	ops := v1.Group("", middleware.APIKeyAuth(authCfg))
	{
		ops.POST("/system-accounts", handler.SeedSystemAccounts)
		ops.GET("/conservation", handler.CheckConservation)
		ops.GET("/dlq", handler.ListDLQEntries)
		ops.POST("/dlq/:id/requeue", handler.RequeueDLQEntry)
		ops.GET("/config", handler.ListConfig)
		ops.PUT("/config/:key", handler.SetConfig)
	}
}
