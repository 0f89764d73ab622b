// @title Pet Clinic Admin API
// @version 1.0
// @description Administración de la clínica: usuarios, mascotas, jaulas, historias clínicas, servicios y reservas.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-clinic-admin/internal/adapters/auth/session"
	pg "pet-clinic-admin/internal/adapters/storage/postgres"
	"pet-clinic-admin/internal/platform/config"
	"pet-clinic-admin/internal/platform/logger"
	"pet-clinic-admin/internal/ports/auth"
	"pet-clinic-admin/internal/router"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	defer func() { _ = lg.Sync() }()

	if err := run(cfg, lg); err != nil {
		lg.Error("server stopped with error", map[string]any{"error": err.Error()})
		_ = lg.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, lg logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.DBDSN != "" {
		opened, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return err
		}
		defer opened.Close()
		db = opened

		if cfg.MigrateOnStart {
			if err := pg.Migrate(db); err != nil {
				return err
			}
			lg.Info("migrations applied", nil)
		}
	}

	var sessions auth.SessionStore
	if cfg.RedisAddr != "" {
		rdb, err := session.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return err
		}
		defer rdb.Close()
		sessions = session.NewRedisStore(rdb)
		lg.Info("session store selected", map[string]any{"backend": "redis", "addr": cfg.RedisAddr})
	}

	h, err := router.NewRouter(router.Options{
		Config:   cfg,
		Logger:   lg,
		DB:       db,
		Sessions: sessions,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	lg.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
