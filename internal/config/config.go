package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Storage  StorageConfig
	Audit    AuditConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string `validate:"required"`
	Env                   string
	Host                  string
	Port                  string `validate:"required,numeric"`
	Version               string
	RequestTimeoutSeconds int
	BodyLimitMB           int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32 `validate:"gte=0"`
	MinConns       int32 `validate:"gte=0"`
	RunMigrations  bool
	MigrationsDir  string `validate:"required"`
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int `validate:"gte=0"`
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string `validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
}

// AuthConfig holds password hashing parameters for stored user records.
type AuthConfig struct {
	BcryptCost int `validate:"min=4,max=31"`
}

// StorageConfig locates uploaded documents.
type StorageConfig struct {
	MediaRoot string `validate:"required"`
}

// AuditConfig controls where admin change records are streamed.
type AuditConfig struct {
	StreamName   string `validate:"required"`
	StreamMaxLen int64  `validate:"gte=0"`
}

// Load reads configuration from the environment (and .env / CONFIG_PATH when present),
// applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  v.GetString("app.name"),
			Env:                   v.GetString("app.env"),
			Host:                  v.GetString("app.host"),
			Port:                  v.GetString("app.port"),
			Version:               v.GetString("app.version"),
			RequestTimeoutSeconds: v.GetInt("http.request_timeout_seconds"),
			BodyLimitMB:           v.GetInt("http.body_limit_mb"),
		},
		Postgres: PostgresConfig{
			DSN:            v.GetString("postgres.dsn"),
			MaxConns:       v.GetInt32("postgres.max_conns"),
			MinConns:       v.GetInt32("postgres.min_conns"),
			RunMigrations:  v.GetBool("postgres.run_migrations"),
			MigrationsDir:  v.GetString("postgres.migrations_dir"),
			ConnMaxIdleSec: v.GetInt32("postgres.conn_max_idle_seconds"),
			ConnMaxLifeSec: v.GetInt32("postgres.conn_max_life_seconds"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("log.level"),
		},
		Auth: AuthConfig{
			BcryptCost: v.GetInt("auth.bcrypt_cost"),
		},
		Storage: StorageConfig{
			MediaRoot: v.GetString("storage.media_root"),
		},
		Audit: AuditConfig{
			StreamName:   v.GetString("audit.stream_name"),
			StreamMaxLen: v.GetInt64("audit.stream_max_len"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "hr-service")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.version", "dev")
	v.SetDefault("http.request_timeout_seconds", 30)
	v.SetDefault("http.body_limit_mb", 16)

	v.SetDefault("postgres.dsn", "")
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 2)
	v.SetDefault("postgres.run_migrations", true)
	v.SetDefault("postgres.migrations_dir", "migrations")
	v.SetDefault("postgres.conn_max_idle_seconds", 30)
	v.SetDefault("postgres.conn_max_life_seconds", 300)

	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("auth.bcrypt_cost", 12)
	v.SetDefault("storage.media_root", "media")
	v.SetDefault("audit.stream_name", "hr:admin-log")
	v.SetDefault("audit.stream_max_len", 10000)
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// BodyLimit returns the maximum accepted request body in bytes.
func (a AppConfig) BodyLimit() int {
	if a.BodyLimitMB <= 0 {
		return 4 * 1024 * 1024
	}
	return a.BodyLimitMB * 1024 * 1024
}
