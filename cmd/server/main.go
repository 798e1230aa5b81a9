package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jricekitchen/order-backend/internal/airtable"
	"github.com/jricekitchen/order-backend/internal/config"
	"github.com/jricekitchen/order-backend/internal/handlers"
	"github.com/jricekitchen/order-backend/internal/middleware"
	"github.com/jricekitchen/order-backend/internal/payment"
	"github.com/jricekitchen/order-backend/internal/pricing"
	"github.com/jricekitchen/order-backend/internal/schema"
	"github.com/jricekitchen/order-backend/internal/service"
	"github.com/jricekitchen/order-backend/internal/session"
	"github.com/jricekitchen/order-backend/pkg/logger"
)

func main() {
	// Load configuration from environment. A missing AIRTABLE_TOKEN fails here,
	// before any request can reach the persistence path.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting order submission server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"max_order_total", cfg.Order.MaxTotal,
	)

	// Wire the submission pipeline
	calc := pricing.NewCalculator(pricing.DefaultCatalog())
	gateway := airtable.NewClient(cfg.Airtable.URL, cfg.Airtable.Token,
		time.Duration(cfg.Airtable.RequestTimeout)*time.Second)
	links := payment.NewBuilder(cfg.Payment.Host, cfg.Payment.Payee)
	sessions := session.NewStore()
	validator := schema.NewValidator()

	submissions := service.NewSubmissionService(calc, gateway, links, cfg.Order.MaxTotal, log)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	formHandler := handlers.NewFormHandler(sessions, log)
	orderHandler := handlers.NewOrderHandler(submissions, validator, sessions, cfg.Order.FallbackContact, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration: the form frontend is served from a different origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Form endpoint: serves the field schema and opens a page session
		r.Get("/form", formHandler.GetForm)

		// Order submission endpoint
		r.Post("/order", orderHandler.CreateOrder)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
