package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/color-picker-backend/config"
	"github.com/GoSim-25-26J-441/color-picker-backend/internal/storage/postgres"
)

// OpenDB connects to Postgres and, unless disabled, brings the schema up to
// date before the router starts serving.
func OpenDB(ctx context.Context, cfg *config.DatabaseConfig, log *zap.Logger) (*sql.DB, error) {
	db, err := postgres.NewConnection(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	log.Info("connected to database",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("name", cfg.Name),
	)

	if !cfg.Migrate {
		return db, nil
	}
	if err := postgres.RunMigrations(cfg, log); err != nil {
		db.Close()
		return nil, fmt.Errorf("db migrate: %w", err)
	}
	return db, nil
}
