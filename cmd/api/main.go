package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/pantry-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/pantry-scheduler/internal/db"
	"github.com/BruksfildServices01/pantry-scheduler/internal/logger"
	"github.com/BruksfildServices01/pantry-scheduler/internal/monitoring"
	"github.com/BruksfildServices01/pantry-scheduler/internal/routes"
	"github.com/BruksfildServices01/pantry-scheduler/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	monitoring.Init()

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to open database")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions := openSessions(ctx, cfg, log)
	defer sessions.Close()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	if err := routes.RegisterRoutes(r, db, cfg, log, sessions); err != nil {
		log.WithError(err).Fatal("failed to register routes")
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		log.WithField("addr", cfg.Addr()).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// openSessions uses redis when REDIS_URL is set and the in-process store
// otherwise. Revocations in the in-process store do not survive restarts.
func openSessions(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) session.Store {
	if cfg.RedisURL == "" {
		log.Warn("REDIS_URL not set, using in-memory session store")
		return session.NewMemoryStore()
	}

	store, err := session.NewRedisStore(ctx, cfg.RedisURL)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to redis")
	}
	return store
}
