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

	Mongo    MongoConfig
	Redis    RedisConfig
	Realtime RealtimeConfig
	Views    ViewsConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=uzeed"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type RealtimeConfig struct {
	// MaxConnsPerUser caps concurrent streams per user; 0 disables the cap.
	MaxConnsPerUser int `env:"REALTIME_MAX_CONNS_PER_USER, default=8"`
	// HeartbeatInterval is how often each open stream gets a heartbeat frame.
	HeartbeatInterval time.Duration `env:"REALTIME_HEARTBEAT_INTERVAL, default=25s"`
}

type ViewsConfig struct {
	// Workers is the number of profile-view recorder workers.
	Workers int `env:"VIEW_WORKERS, default=4"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
