package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/Abraxas-365/recruitboard/pkg/logx"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "recruitboard-dev-secret"

// Config aggregates application settings sourced from a config file, the
// environment and a .env file.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	API       APIConfig       `mapstructure:"api"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	AWS       AWSConfig       `mapstructure:"aws"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// AppConfig holds process-wide settings
type AppConfig struct {
	Name     string `mapstructure:"name" validate:"required"`
	Timezone string `mapstructure:"timezone" validate:"required"`
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
}

// APIConfig contains HTTP server settings
type APIConfig struct {
	Port        int    `mapstructure:"port" validate:"min=1,max=65535"`
	CORSOrigins string `mapstructure:"cors_origins"`
}

// DatabaseConfig contains connection options for PostgreSQL
type DatabaseConfig struct {
	Host            string        `mapstructure:"host" validate:"required"`
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	Name            string        `mapstructure:"name" validate:"required"`
	User            string        `mapstructure:"user" validate:"required"`
	Password        string        `mapstructure:"password"`
	SSLMode         string        `mapstructure:"sslmode" validate:"oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// RedisConfig contains the Redis connection
type RedisConfig struct {
	Addr     string `mapstructure:"addr" validate:"required"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"min=0"`
}

// AWSConfig locates the report archive. An empty bucket disables it.
type AWSConfig struct {
	Region string `mapstructure:"region" validate:"required"`
	Bucket string `mapstructure:"bucket"`
	Prefix string `mapstructure:"prefix"`
}

// AuthConfig holds the token settings
type AuthConfig struct {
	JWTSecret      string        `mapstructure:"jwt_secret" validate:"required"`
	Issuer         string        `mapstructure:"issuer" validate:"required"`
	AccessTokenTTL time.Duration `mapstructure:"access_token_ttl" validate:"gt=0"`
}

// SchedulerConfig controls the report snapshot job
type SchedulerConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	ReportSpec string `mapstructure:"report_spec" validate:"required_if=Enabled true"`
}

// DSN builds a lib/pq compatible connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.Name,
		d.SSLMode,
	)
}

// Location resolves the configured timezone
func (a AppConfig) Location() (*time.Location, error) {
	return time.LoadLocation(a.Timezone)
}

// Load reads .env, then the optional config file, then the environment.
// Environment variables win over the file.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.AutomaticEnv()
	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Auth.JWTSecret == "" {
		logx.Warn("JWT_SECRET not set, using the development secret")
		cfg.Auth.JWTSecret = defaultJWTSecret
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad wraps Load and panics on failure
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "recruitboard")
	v.SetDefault("app.timezone", "Asia/Seoul")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.cors_origins", "*")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "recruitboard")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("aws.region", "ap-northeast-2")
	v.SetDefault("aws.bucket", "")
	v.SetDefault("aws.prefix", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "recruitboard")
	v.SetDefault("auth.access_token_ttl", 24*time.Hour)
	v.SetDefault("scheduler.enabled", false)
	v.SetDefault("scheduler.report_spec", "@daily")
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"app.timezone":               "APP_TIMEZONE",
		"app.log_level":              "LOG_LEVEL",
		"api.port":                   "PORT",
		"api.cors_origins":           "CORS_ORIGINS",
		"database.host":              "DB_HOST",
		"database.port":              "DB_PORT",
		"database.name":              "DB_NAME",
		"database.user":              "DB_USER",
		"database.password":          "DB_PASS",
		"database.sslmode":           "DB_SSLMODE",
		"database.max_open_conns":    "DB_MAX_OPEN_CONNS",
		"database.max_idle_conns":    "DB_MAX_IDLE_CONNS",
		"database.conn_max_lifetime": "DB_CONN_MAX_LIFETIME",
		"redis.addr":                 "REDIS_ADDR",
		"redis.password":             "REDIS_PASS",
		"redis.db":                   "REDIS_DB",
		"aws.region":                 "AWS_REGION",
		"aws.bucket":                 "AWS_BUCKET",
		"aws.prefix":                 "AWS_PREFIX",
		"auth.jwt_secret":            "JWT_SECRET",
		"auth.issuer":                "JWT_ISSUER",
		"auth.access_token_ttl":      "JWT_ACCESS_TTL",
		"scheduler.enabled":          "SCHEDULER_ENABLED",
		"scheduler.report_spec":      "SCHEDULER_REPORT_SPEC",
	}

	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}

	return nil
}

func validate(cfg Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(cfg); err != nil {
		var fields validator.ValidationErrors
		if errors.As(err, &fields) && len(fields) > 0 {
			f := fields[0]
			return fmt.Errorf("invalid config %s: failed %q", f.Namespace(), f.Tag())
		}
		return fmt.Errorf("validate config: %w", err)
	}
	if _, err := time.LoadLocation(cfg.App.Timezone); err != nil {
		return fmt.Errorf("invalid config timezone %q: %w", cfg.App.Timezone, err)
	}
	return nil
}
