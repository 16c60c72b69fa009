// README: Config loader; defaults in code, optional YAML file, DISPATCH_* env overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	Redis struct {
		// Addr may be empty to run without a report cache.
		Addr string
		TTL  time.Duration
	}
	Log struct {
		Level string
	}
	Sim struct {
		// MaxTime bounds simulated time; -1 means unbounded.
		MaxTime int
	}
}

// Load reads path when given, otherwise dispatch.yaml from the working
// directory if present. Environment variables win over both, e.g.
// DISPATCH_REDIS_ADDR for redis.addr.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.ttl", "24h")
	v.SetDefault("log.level", "info")
	v.SetDefault("sim.max_time", -1)

	v.SetEnvPrefix("DISPATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("dispatch")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.Redis.Addr = v.GetString("redis.addr")
	cfg.Redis.TTL = v.GetDuration("redis.ttl")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Sim.MaxTime = v.GetInt("sim.max_time")

	if cfg.Redis.TTL <= 0 {
		return Config{}, fmt.Errorf("redis.ttl must be positive, got %s", v.GetString("redis.ttl"))
	}
	if cfg.Sim.MaxTime < -1 {
		return Config{}, fmt.Errorf("sim.max_time must be -1 or non-negative, got %d", cfg.Sim.MaxTime)
	}
	return cfg, nil
}
