package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"

	"buildright/internal/app/router"
	adminhandler "buildright/internal/feature/admin/transport/handler"
	adminusecase "buildright/internal/feature/admin/usecase"
	authadapters "buildright/internal/feature/auth/adapters"
	authhandler "buildright/internal/feature/auth/transport/handler"
	authusecase "buildright/internal/feature/auth/usecase"
	predadapters "buildright/internal/feature/predictions/adapters"
	predhandler "buildright/internal/feature/predictions/transport/handler"
	predusecase "buildright/internal/feature/predictions/usecase"
	"buildright/internal/platform/config"
	"buildright/internal/platform/db"
	"buildright/internal/platform/engine"
	"buildright/internal/platform/logger"
)

func main() {
	// .env is optional; real deployments set APP_* variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	log, cleanup := logger.New(logger.Options{
		Level: cfg.Log.Level,
		JSON:  cfg.Log.JSON,
		Rotate: logger.FileRotate{
			Filename:   cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
		},
	})
	defer cleanup()

	gdb, err := db.Open(cfg.DB)
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal("migrate database", zap.Error(err))
	}
	if err := db.SeedAdmin(gdb, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatal("seed admin", zap.Error(err))
	}

	userRepo := authadapters.NewUserGorm(gdb)
	predRepo := predadapters.NewPredictionGorm(gdb)
	recommender := engine.New(engine.Config{
		Command: cfg.Engine.Command,
		Script:  cfg.Engine.Script,
		Timeout: time.Duration(cfg.Engine.TimeoutSec) * time.Second,
	}, log)

	authUC := authusecase.NewAuthUsecase(userRepo)
	predUC := predusecase.NewPredictionUsecase(predRepo, recommender)
	adminUC := adminusecase.NewAdminUsecase(userRepo, predRepo)

	r := router.New(log, router.Handlers{
		Auth:        authhandler.NewAuthHandler(authUC, log),
		Predictions: predhandler.NewPredictionHandler(predUC, log),
		Admin:       adminhandler.NewAdminHandler(adminUC, log),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Duration(cfg.HTTP.IdleTimeoutSec) * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}
