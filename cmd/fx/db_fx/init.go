package db_fx

import (
	"context"
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"machsight/internal/config"
	"machsight/internal/infra"
)

var Module = fx.Options(
	fx.Provide(provideConfig, provideDatabase),
	fx.Invoke(registerDatabaseHooks),
)

func provideConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	return cfg
}

func provideDatabase(cfg *config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg.Database.PostgresURL)
}

func registerDatabaseHooks(lc fx.Lifecycle, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
}
