package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Mongo     MongoConfig     `mapstructure:"mongo"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Auth      AuthConfig      `mapstructure:"auth"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Storage   StorageConfig   `mapstructure:"storage"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	Env               string        `mapstructure:"env"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	MiddlewareTimeout time.Duration `mapstructure:"middleware_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

func (c ServerConfig) IsProduction() bool {
	return c.Env == "production"
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type AuthConfig struct {
	AccessSecret    string        `mapstructure:"access_secret"`
	RefreshSecret   string        `mapstructure:"refresh_secret"`
	AccessTokenTTL  time.Duration `mapstructure:"access_token_ttl"`
	RefreshTokenTTL time.Duration `mapstructure:"refresh_token_ttl"`
	BcryptCost      int           `mapstructure:"bcrypt_cost"`
}

type CORSConfig struct {
	FrontendOrigin string `mapstructure:"frontend_origin"`
}

type StorageConfig struct {
	UploadDir string `mapstructure:"upload_dir"`
	BaseURL   string `mapstructure:"base_url"`
}

type RateLimitConfig struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/config.yaml"
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, use defaults and env vars
	}

	v.AutomaticEnv()
	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects a configuration missing any value the process cannot run
// without, so the server fails fast at boot rather than at the first login
// or upload.
func (c *Config) Validate() error {
	var missing []string

	if c.Mongo.URI == "" {
		missing = append(missing, "mongo.uri (DB_URL)")
	}
	if c.Auth.AccessSecret == "" {
		missing = append(missing, "auth.access_secret (JWT_ACCESS_SECRET)")
	}
	if c.Auth.RefreshSecret == "" {
		missing = append(missing, "auth.refresh_secret (JWT_REFRESH_SECRET)")
	}
	if c.Auth.AccessTokenTTL <= 0 {
		missing = append(missing, "auth.access_token_ttl (JWT_ACCESS_EXPIRES)")
	}
	if c.Auth.RefreshTokenTTL <= 0 {
		missing = append(missing, "auth.refresh_token_ttl (JWT_REFRESH_EXPIRES)")
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		missing = append(missing, "auth.bcrypt_cost (BCRYPT_COST)")
	}
	if c.CORS.FrontendOrigin == "" {
		missing = append(missing, "cors.frontend_origin (FRONTEND_URL)")
	}
	if c.Storage.UploadDir == "" {
		missing = append(missing, "storage.upload_dir (UPLOAD_DIR)")
	}
	if c.Storage.BaseURL == "" {
		missing = append(missing, "storage.base_url (ASSET_BASE_URL)")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %v", missing)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.env", "development")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.middleware_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "15s")

	// Mongo
	v.SetDefault("mongo.database", "portfolio")

	// Redis
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)

	// Auth
	v.SetDefault("auth.access_token_ttl", "15m")
	v.SetDefault("auth.refresh_token_ttl", "72h") // 3 days
	v.SetDefault("auth.bcrypt_cost", 10)

	// Storage
	v.SetDefault("storage.upload_dir", "./uploads")
	v.SetDefault("storage.base_url", "/uploads")

	// Rate limit (login attempts and anonymous comments)
	v.SetDefault("rate_limit.requests", 10)
	v.SetDefault("rate_limit.window", "1m")

	// Logging
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

func bindEnvVars(v *viper.Viper) {
	// Server
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.env", "ENV")

	// Mongo
	v.BindEnv("mongo.uri", "DB_URL")
	v.BindEnv("mongo.database", "DB_NAME")

	// Redis
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// Auth
	v.BindEnv("auth.access_secret", "JWT_ACCESS_SECRET")
	v.BindEnv("auth.refresh_secret", "JWT_REFRESH_SECRET")
	v.BindEnv("auth.access_token_ttl", "JWT_ACCESS_EXPIRES")
	v.BindEnv("auth.refresh_token_ttl", "JWT_REFRESH_EXPIRES")
	v.BindEnv("auth.bcrypt_cost", "BCRYPT_COST")

	// CORS
	v.BindEnv("cors.frontend_origin", "FRONTEND_URL")

	// Storage
	v.BindEnv("storage.upload_dir", "UPLOAD_DIR")
	v.BindEnv("storage.base_url", "ASSET_BASE_URL")
}
