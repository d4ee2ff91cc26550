package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"github.com/finex/backend/config"
	"github.com/finex/backend/internal/application/adapter"
	"github.com/finex/backend/internal/infra/cache"
	"github.com/finex/backend/internal/infra/db"
	"github.com/finex/backend/internal/integration/adapters"
	"github.com/finex/backend/internal/integration/persistence"
)

// store bundles the connections and repositories used by commands.
type store struct {
	database  *db.Database
	redis     *redis.Client
	operators adapter.OperatorRepository
	products  adapter.ProductRepository
	movements adapter.MovementRepository
	locker    adapter.CodeLocker
}

// loadConfig reads the API configuration and applies CLI overrides.
func loadConfig() *config.Config {
	cfg := config.Load()
	if url := viper.GetString("database_url"); url != "" {
		cfg.Database.URL = url
	}
	if url := viper.GetString("redis_url"); url != "" {
		cfg.Redis.URL = url
	}
	return cfg
}

func openStore(_ context.Context) (*store, error) {
	cfg := loadConfig()

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &store{
		database:  database,
		operators: persistence.NewOperatorRepository(database.DB()),
		products:  persistence.NewProductRepository(database.DB()),
		movements: persistence.NewMovementRepository(database.DB()),
		locker:    adapters.NewMemoryCodeLocker(),
	}

	client, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, product codes are locked in process only", "error", err)
	}
	if client != nil {
		s.redis = client
		s.locker = adapters.NewRedisCodeLocker(client)
	}

	return s, nil
}

func (s *store) Close() {
	if s.redis != nil {
		_ = s.redis.Close()
	}
	_ = s.database.Close()
}
