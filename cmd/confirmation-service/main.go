package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/meldehub/meldehub-backend/internal/confirmation/handler"
	"github.com/meldehub/meldehub-backend/internal/confirmation/repository"
	"github.com/meldehub/meldehub-backend/internal/confirmation/service"
	"github.com/meldehub/meldehub-backend/internal/confirmation/storage"
	"github.com/meldehub/meldehub-backend/pkg/config"
	"github.com/meldehub/meldehub-backend/pkg/database"
	"github.com/meldehub/meldehub-backend/pkg/httputil"
	"github.com/meldehub/meldehub-backend/pkg/logger"
	"github.com/meldehub/meldehub-backend/pkg/messaging"
)

func main() {
	// Load configuration with validation (fails fast in production if required config is missing)
	cfg, err := config.LoadWithValidation("confirmation-service")
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("confirmation-service", cfg.Server.Environment)
	log.Info().Msg("starting Confirmation Service")

	// Connect to the audit database when configured
	var auditRepo service.AuditStore
	var db *database.DB
	if cfg.Database.Enabled() {
		db, err = database.New(&cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()
		auditRepo = repository.NewAuditRepository(db)
	} else {
		log.Warn().Msg("no audit database configured, parse history disabled")
	}

	// Connect to RabbitMQ when configured
	var publisher service.EventPublisher
	var rmq *messaging.RabbitMQ
	if cfg.RabbitMQ.Enabled() {
		rmq, err = messaging.New(&cfg.RabbitMQ, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
		}
		defer rmq.Close()

		publisher, err = messaging.NewPublisher(rmq, messaging.ExchangeConfirmationEvents, "confirmation-service", log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create event publisher")
		}
	} else {
		log.Warn().Msg("no RabbitMQ configured, event publishing disabled")
	}

	// Initialize service and handler
	store := storage.New(cfg.Store.TTL)
	svc := service.NewService(store, auditRepo, publisher, log)
	confirmationHandler := handler.NewHandler(svc, log)

	// Create router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RealIP)
	r.Use(httputil.RequestID)
	r.Use(httputil.Logger(log))
	r.Use(httputil.Recoverer(log))
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		health := map[string]interface{}{
			"status":  "healthy",
			"service": "confirmation-service",
		}
		if db != nil {
			health["database"] = db.Health(r.Context())
		}
		if rmq != nil {
			health["rabbitmq"] = rmq.Health()
		}
		httputil.JSON(w, http.StatusOK, health)
	})

	// API endpoints
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/confirmations", func(r chi.Router) {
			r.Post("/", confirmationHandler.Ingest)
			r.Get("/", confirmationHandler.History)
			r.Get("/{id}", confirmationHandler.Get)
		})
	})

	// Create server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
