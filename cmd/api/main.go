package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/leasedesk/internal/auth"
	"github.com/MrJamesThe3rd/leasedesk/internal/config"
	"github.com/MrJamesThe3rd/leasedesk/internal/database"
	leasedeskHttp "github.com/MrJamesThe3rd/leasedesk/internal/http"
	leaseHandler "github.com/MrJamesThe3rd/leasedesk/internal/http/lease"
	"github.com/MrJamesThe3rd/leasedesk/internal/lease"
	leaseStore "github.com/MrJamesThe3rd/leasedesk/internal/lease/store"
	"github.com/MrJamesThe3rd/leasedesk/internal/notify"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.App.AutoMigrate {
		if err := database.Migrate(context.Background(), db); err != nil {
			slog.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	gateway, err := auth.NewGateway(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	if err != nil {
		slog.Error("failed to configure auth", "error", err)
		os.Exit(1)
	}

	notifier := notify.NewAsync(notify.LogSink{Logger: logger}, cfg.Workflow.NotifyBuffer)
	defer notifier.Close()

	leaseService := lease.NewService(
		leaseStore.New(db, cfg.Workflow.LockTimeout),
		lease.WithNotifier(notifier),
		lease.WithLogger(logger),
	)

	router := leasedeskHttp.New(leaseHandler.NewHandler(leaseService), gateway, leasedeskHttp.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Health:         db,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("starting server", "name", cfg.App.Name, "addr", srv.Addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}

	slog.Info("server stopped")
}
