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

	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/color-picker-backend/config"
	"github.com/GoSim-25-26J-441/color-picker-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/color-picker-backend/internal/logging"
	cronjob "github.com/GoSim-25-26J-441/color-picker-backend/internal/maintenance/cron"
	"github.com/GoSim-25-26J-441/color-picker-backend/internal/palettes/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	for _, w := range cfg.Warnings {
		log.Warn("config", zap.String("warning", w))
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := bootstrap.OpenDB(ctx, &cfg.Database, log)
	if err != nil {
		log.Fatal("database unavailable", zap.Error(err))
	}
	defer db.Close()

	rdb, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		log.Fatal("redis unavailable", zap.Error(err))
	}
	if rdb != nil {
		defer rdb.Close()
		log.Info("connected to redis", zap.String("addr", cfg.Redis.Addr))
	}

	var scheduler *cronjob.Scheduler
	if spec := cfg.Jobs.OrphanAuditSchedule; spec != "" {
		scheduler = cronjob.NewScheduler(repository.NewPaletteRepository(db), log)
		if err := scheduler.Start(spec); err != nil {
			log.Fatal("orphan audit schedule rejected", zap.Error(err))
		}
	}

	engine := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    cfg.App.Title,
		Version:        cfg.App.Version,
		DB:             db,
		Redis:          rdb,
		Logger:         log,
		CORSOrigins:    cfg.Server.CORSAllowedOrigins,
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
		RequestTimeout: cfg.Server.RequestTimeout,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info(fmt.Sprintf("%s is running on localhost:%s", cfg.App.Title, cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
	if scheduler != nil {
		scheduler.Stop(shutdownCtx)
	}
	log.Info("server exited")
}
