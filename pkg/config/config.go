package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix namespaces every WasteTrack environment variable.
	EnvPrefix = "WASTETRACK"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	// DB drivers accepted by the store layer.
	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"
	DBDriverMemory   = "memory"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"WASTETRACK_APP_ENV" default:"dev"`
	Port         string `envconfig:"WASTETRACK_APP_PORT" default:"3000"`
	LogLevel     string `envconfig:"WASTETRACK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"WASTETRACK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	Driver string `envconfig:"WASTETRACK_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"WASTETRACK_DB_DSN" default:"wastetrack.sqlite"`

	MaxOpenConns    int           `envconfig:"WASTETRACK_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"WASTETRACK_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"WASTETRACK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"WASTETRACK_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) validate() error {
	switch db.Driver {
	case DBDriverSQLite, DBDriverPostgres, DBDriverMemory:
	default:
		return fmt.Errorf("unsupported db driver %q", db.Driver)
	}
	if db.Driver != DBDriverMemory && db.DSN == "" {
		return fmt.Errorf("WASTETRACK_DB_DSN is required for driver %q", db.Driver)
	}
	return nil
}

// UsesSQL reports whether the configured driver is a relational backend.
func (db DBConfig) UsesSQL() bool {
	return db.Driver != DBDriverMemory
}

type RedisConfig struct {
	URL          string        `envconfig:"WASTETRACK_REDIS_URL"`
	Address      string        `envconfig:"WASTETRACK_REDIS_ADDR" default:"localhost:6379"`
	Password     string        `envconfig:"WASTETRACK_REDIS_PASSWORD"`
	DB           int           `envconfig:"WASTETRACK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"WASTETRACK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"WASTETRACK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"WASTETRACK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"WASTETRACK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"WASTETRACK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"WASTETRACK_JWT_SECRET" default:"wastetrack-dev-secret"`
	Issuer                 string `envconfig:"WASTETRACK_JWT_ISSUER" default:"wastetrack"`
	ExpirationMinutes      int    `envconfig:"WASTETRACK_JWT_EXPIRATION_MINUTES" default:"60"`
	RefreshTokenTTLMinutes int    `envconfig:"WASTETRACK_REFRESH_TOKEN_TTL_MINUTES" default:"1440"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"WASTETRACK_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginUsernameLimit int           `envconfig:"WASTETRACK_AUTH_RATE_LIMIT_LOGIN_USERNAME_LIMIT" default:"10"`
	LoginIPLimit       int           `envconfig:"WASTETRACK_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"30"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"WASTETRACK_AUTO_MIGRATE" default:"true"`
}
