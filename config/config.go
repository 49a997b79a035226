package config

import (
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/spf13/viper"
)

/* Config is built once at startup and handed to each component by value.
 * Nothing in the application reads viper after GetConfig returns.
 */

const envPrefix = "HOOKDASH"

type Config struct {
	AppName string `mapstructure:"APP_NAME" default:"HookDash"`
	Version string `mapstructure:"VERSION" default:"0.1.0"`
	Port    string `mapstructure:"PORT" default:"8080"`
	LogJSON bool   `mapstructure:"LOG_JSON" default:"true"`

	DatabaseURL                string `mapstructure:"DATABASE_URL"`
	PostgresMaxOpenConns       int    `mapstructure:"POSTGRES_MAX_OPEN_CONNS" default:"25"`
	PostgresMaxIdleConns       int    `mapstructure:"POSTGRES_MAX_IDLE_CONNS" default:"5"`
	PostgresConnMaxLifeMinutes int    `mapstructure:"POSTGRES_CONN_MAX_LIFE_MINUTES" default:"5"`

	RedisAddr               string `mapstructure:"REDIS_ADDR"`
	RedisPassword           string `mapstructure:"REDIS_PASSWORD"`
	RedisDB                 int    `mapstructure:"REDIS_DB"`
	EndpointCacheTTLSeconds int    `mapstructure:"ENDPOINT_CACHE_TTL_SECONDS" default:"60"`

	SecretKey                string `mapstructure:"SECRET_KEY" default:"change-me-in-production-use-a-real-secret-key"`
	AccessTokenExpireMinutes int    `mapstructure:"ACCESS_TOKEN_EXPIRE_MINUTES" default:"1440"`

	// MaxBodySize bounds inbound webhook payloads, in bytes.
	MaxBodySize int64 `mapstructure:"MAX_BODY_SIZE" default:"1048576"`

	PlansFile        string `mapstructure:"PLANS_FILE"`
	FreeMaxEndpoints int    `mapstructure:"FREE_MAX_ENDPOINTS" default:"2"`
	ProMaxEndpoints  int    `mapstructure:"PRO_MAX_ENDPOINTS" default:"25"`
	TeamMaxEndpoints int    `mapstructure:"TEAM_MAX_ENDPOINTS" default:"999999"`
}

// GetConfig loads .env (TOML) from the working directory when present and
// overlays HOOKDASH_* environment variables.
func GetConfig() (Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	return load(v)
}

func load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return Config{}, fmt.Errorf("setting config defaults: %w", err)
	}
	// AutomaticEnv only resolves keys viper already knows about.
	for _, key := range keys() {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("binding %s: %w", key, err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config data: %w", err)
	}
	return cfg, nil
}

func keys() []string {
	return []string{
		"APP_NAME", "VERSION", "PORT", "LOG_JSON",
		"DATABASE_URL", "POSTGRES_MAX_OPEN_CONNS", "POSTGRES_MAX_IDLE_CONNS", "POSTGRES_CONN_MAX_LIFE_MINUTES",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "ENDPOINT_CACHE_TTL_SECONDS",
		"SECRET_KEY", "ACCESS_TOKEN_EXPIRE_MINUTES", "MAX_BODY_SIZE",
		"PLANS_FILE", "FREE_MAX_ENDPOINTS", "PRO_MAX_ENDPOINTS", "TEAM_MAX_ENDPOINTS",
	}
}

// Validate checks the settings every entrypoint depends on.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.MaxBodySize <= 0 {
		return fmt.Errorf("MAX_BODY_SIZE must be positive (got %d)", c.MaxBodySize)
	}
	if strings.TrimSpace(c.SecretKey) == "" {
		return fmt.Errorf("SECRET_KEY is required")
	}
	return nil
}

// CacheEnabled reports whether a Redis address was configured.
func (c Config) CacheEnabled() bool {
	return strings.TrimSpace(c.RedisAddr) != ""
}
