// Package bootstrap wires the process-level runtime: database, cache
// and optional development seeding, shared by cmd/server and cmd/seed.
package bootstrap

import (
	"fmt"

	"github.com/Shameekh-Naveed/Blog-Posts/internal/cache"
	"github.com/Shameekh-Naveed/Blog-Posts/internal/config"
	"github.com/Shameekh-Naveed/Blog-Posts/internal/database"
	"github.com/Shameekh-Naveed/Blog-Posts/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	Seed seed.Options
}

// InitRuntime connects to the database and Redis and optionally seeds
// development data. The Redis client is nil when the server is
// unreachable; the app degrades to uncached operation.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	if opts.Seed.NumUsers > 0 {
		if err := seed.Run(db, opts.Seed); err != nil {
			return nil, nil, fmt.Errorf("seeding failed: %w", err)
		}
	}

	return db, cache.GetClient(), nil
}
