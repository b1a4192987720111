package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	config "github.com/Keoroanthony/go-orders/configs"
	"github.com/Keoroanthony/go-orders/internal/auth"
	"github.com/Keoroanthony/go-orders/internal/db"
	"github.com/Keoroanthony/go-orders/internal/handlers"
	"github.com/Keoroanthony/go-orders/internal/middleware"
	"github.com/Keoroanthony/go-orders/internal/notifier"
	"github.com/Keoroanthony/go-orders/internal/telemetry"
)

func main() {

	cfg := config.Load()
	telemetry.InitLogger(cfg.Env)

	db.Init(cfg)

	// The verifier is picked once at startup: test mode admits everything
	// with a fixed subject, every other mode validates against the
	// identity provider.
	var verifier auth.Verifier
	if cfg.Env == "test" {
		verifier = auth.StaticVerifier{Subject: "test_user"}
	} else {
		v, err := auth.NewOIDCVerifier(context.Background(), cfg)
		if err != nil {
			slog.Error("failed to initialise token verifier", "error", err)
			os.Exit(1)
		}
		verifier = v
	}

	orderHandler := handlers.NewOrderHandler(notifier.NewSMSClient(cfg))
	tokenHandler := handlers.NewTokenHandler(cfg)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger())

	// ── public endpoints ──
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.POST("/api/token", tokenHandler.Exchange)

	// ── protected API ──
	api := r.Group("/api")
	api.Use(auth.RequireAuth(verifier))
	{
		api.POST("/customers", handlers.CreateCustomer)
		api.GET("/customers", handlers.GetCustomers)
		api.GET("/customers/:id", handlers.GetCustomer)
		api.PUT("/customers/:id", handlers.UpdateCustomer)
		api.DELETE("/customers/:id", handlers.DeleteCustomer)

		api.POST("/orders", orderHandler.CreateOrder)
		api.GET("/orders", orderHandler.GetOrders)
		api.GET("/orders/date_range", orderHandler.SearchOrdersByDateRange)
		api.GET("/orders/:id", orderHandler.GetOrder)
		api.PUT("/orders/:id", orderHandler.UpdateOrder)
		api.DELETE("/orders/:id", orderHandler.DeleteOrder)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
