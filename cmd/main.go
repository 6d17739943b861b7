package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/voice_converter/internal/config"
	"github.com/Vovarama1992/voice_converter/internal/converter"
	"github.com/Vovarama1992/voice_converter/internal/delivery"
	notificator "github.com/Vovarama1992/voice_converter/internal/error_notificator"
	"github.com/Vovarama1992/voice_converter/internal/history"
	"github.com/Vovarama1992/voice_converter/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / LOGGER
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// CONVERSION BACKEND
	// =========================================================================

	var backend converter.Service
	switch cfg.Backend {
	case config.BackendOpenAI:
		backend = converter.NewOpenAIService(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	default:
		backend = converter.NewHTTPService(cfg.ConverterURL, cfg.ConverterTimeout)
	}

	newOrch := func() *converter.Orchestrator {
		return converter.NewOrchestrator(backend, zl)
	}

	// =========================================================================
	// HISTORY (postgres или память)
	// =========================================================================

	historyRepo := history.NewMemoryRepo(cfg.HistoryLimit)
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("db ping failed: %v", err)
		}
		if err := history.EnsureSchema(ctx, db); err != nil {
			log.Fatalf("db schema: %v", err)
		}

		historyRepo = history.NewPostgresRepo(db)
	}
	historyService := history.NewService(historyRepo)

	// =========================================================================
	// ERROR NOTIFICATION
	// =========================================================================

	var notifyInfra notificator.Notificator = notificator.Nop{}
	if cfg.TelegramToken != "" {
		tg, err := notificator.NewTelegramInfra(cfg.TelegramToken, cfg.TelegramAdminID)
		if err != nil {
			log.Fatalf("failed to init telegram notifier: %v", err)
		}
		notifyInfra = tg
	}
	errService := notificator.NewService(notifyInfra)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	store := session.NewStore(newOrch)
	settler := delivery.NewSettler(historyService, errService, zl)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(httprate.LimitByIP(cfg.RateLimit, time.Minute))

	delivery.RegisterRoutes(
		r,
		delivery.NewConvertHandler(newOrch, settler, zl),
		delivery.NewSessionHandler(store, settler, zl),
		delivery.NewHistoryHandler(historyService, zl),
		cfg.AdminToken,
	)

	// =========================================================================
	// BACKGROUND JOBS
	// =========================================================================

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			if n := store.Sweep(cfg.SessionTTL); n > 0 {
				log.Printf("[session-sweep] removed %d idle sessions", n)
			}
		}
	}()

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + cfg.Port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr + " (backend: " + cfg.Backend + ")",
		Service: "voice_converter",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
