package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/color-picker-backend/config"
	"github.com/GoSim-25-26J-441/color-picker-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/color-picker-backend/internal/logging"
	"github.com/GoSim-25-26J-441/color-picker-backend/internal/seed"
)

func main() {
	file := flag.String("file", "", "YAML fixture to load (defaults to the bundled fixture)")
	flag.Parse()

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

	if cfg.App.Environment == "production" {
		log.Fatal("refusing to seed a production database")
	}

	fixture, err := seed.Load(*file)
	if err != nil {
		log.Fatal("load fixture", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := bootstrap.OpenDB(ctx, &cfg.Database, log)
	if err != nil {
		log.Fatal("database unavailable", zap.Error(err))
	}
	defer db.Close()

	res, err := seed.Apply(ctx, db, fixture, log)
	if err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}
	log.Info("seed complete", zap.Int("projects", res.Projects), zap.Int("palettes", res.Palettes))
}
