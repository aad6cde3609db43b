package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Reconcile ReconcileConfig
}

type MongoConfig struct {
	URI string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	// Database holds the restaurant, menu and order documents.
	Database string `env:"MONGO_DB, default=pickpega"`
	// IdentityDatabase holds the credential records. Kept separate so the two
	// stores fail independently, like the managed services they stand in for.
	IdentityDatabase string `env:"MONGO_IDENTITY_DB, default=pickpega_identity"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type ReconcileConfig struct {
	Interval time.Duration `env:"RECONCILE_INTERVAL, default=1m"`
	// Grace is how old a journal entry must be before the reconciler touches it.
	Grace time.Duration `env:"RECONCILE_GRACE, default=5m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
