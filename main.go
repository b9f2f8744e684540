package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/danielhkuo/vote-api/cliparse"
	"github.com/danielhkuo/vote-api/db"
	"github.com/danielhkuo/vote-api/metrics"
	"github.com/danielhkuo/vote-api/middleware"
	"github.com/danielhkuo/vote-api/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(cfg))
	slog.Info("Starting API service",
		"env", cfg.Env,
		"option_a", cfg.OptionA,
		"option_b", cfg.OptionB,
		"database_type", cfg.DatabaseType,
	)

	m := metrics.New()

	// Open the Vote Store pool (connections are made lazily)
	store, err := db.Open(cfg, m.Store)
	if err != nil {
		slog.Error("database open failed", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.AutoMigrate {
		// Schema creation needs the store, so failures are fatal here
		if err := store.Ping(ctx); err != nil {
			slog.Error("database ping failed", "error", err)
			os.Exit(1)
		}
		if err := db.CreateSchema(ctx, store.DB()); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database schema ready")
	}

	// Create router
	mux := router.NewRouter(store, m)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    cfg.Addr(),
	}

	go func() {
		// Wait for Ctrl-C signal
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// newLogger picks the log format for the runtime mode
func newLogger(cfg cliparse.Config) *slog.Logger {
	if cfg.IsDevelopment() {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
