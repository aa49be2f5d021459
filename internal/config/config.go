package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"-"`

	Host                  string `toml:"host"`
	Port                  int    `toml:"port"`
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	SentryDSN     string `toml:"sentry_dsn"`

	HoneycombEnabled bool `toml:"honeycomb_enabled"`

	// postgres
	PostgresHost     string `toml:"postgres_host"`
	PostgresPort     string `toml:"postgres_port"`
	PostgresDBName   string `toml:"postgres_db_name"`
	PostgresUser     string `toml:"postgres_user"`
	PostgresPassword string `toml:"postgres_password"`
	RunMigrations    bool   `toml:"run_migrations"`

	// redis
	RedisHost     string `toml:"redis_host"`
	RedisPort     string `toml:"redis_port"`
	RedisPassword string `toml:"redis_password"`

	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`

	// calendar days (log dates, week buckets, expiry) are computed in this zone
	Timezone   string `toml:"timezone"`
	DoneExpiry string `toml:"done_expiry"`

	// photos
	PhotoMaxDimension int `toml:"photo_max_dimension"`
	PhotoMaxBytes     int `toml:"photo_max_bytes"`
	PhotoQualityStart int `toml:"photo_quality_start"`
	PhotoQualityStep  int `toml:"photo_quality_step"`
	PhotoQualityFloor int `toml:"photo_quality_floor"`
	PhotoCacheMB      int `toml:"photo_cache_mb"`

	// auth
	SessionTTL string `toml:"session_ttl"`
	JWTSecret  string `toml:"jwt_secret"`
	JWTIssuer  string `toml:"jwt_issuer"`

	CorsAllowedOrigins []string `toml:"cors_allowed_origins"`

	location        *time.Location
	doneExpiry      time.Duration
	sessionDuration time.Duration
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
		env = "development"
	case "prod", "production":
		cfg = t.Production
		env = "production"
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no [%s] section in config", env)
	}
	cfg.Environment = env
	return cfg, nil
}

// Load reads the TOML file at path, picks the env section and applies
// defaults to everything left unset.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return fromToml(&t, env)
}

// Parse is Load for an in-memory TOML document.
func Parse(env, data string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(data, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return fromToml(&t, env)
}

func fromToml(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", cfg.Environment, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	setString := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	setInt := func(v *int, def int) {
		if *v == 0 {
			*v = def
		}
	}

	setString(&c.Host, "localhost")
	setInt(&c.Port, 9000)
	setString(&c.PrometheusMetricsHost, "localhost")
	setString(&c.PrometheusMetricsPort, "2112")
	setString(&c.LogLevel, "info")
	setString(&c.PostgresHost, "localhost")
	setString(&c.PostgresPort, "5432")
	setString(&c.PostgresDBName, "fitness")
	setString(&c.RedisHost, "localhost")
	setString(&c.RedisPort, "6379")
	setInt(&c.LoginRateLimitAllowedPerMin, 5)
	setString(&c.Timezone, "Local")
	setString(&c.DoneExpiry, "8h")
	setInt(&c.PhotoMaxDimension, 1280)
	setInt(&c.PhotoMaxBytes, 900*1024)
	setInt(&c.PhotoQualityStart, 72)
	setInt(&c.PhotoQualityStep, 8)
	setInt(&c.PhotoQualityFloor, 40)
	setInt(&c.PhotoCacheMB, 64)
	setString(&c.SessionTTL, "720h")
	setString(&c.JWTIssuer, "fitness-service")
}

func (c *Config) validate() error {
	var err error
	if c.location, err = time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	if c.doneExpiry, err = time.ParseDuration(c.DoneExpiry); err != nil {
		return fmt.Errorf("done_expiry %q: %w", c.DoneExpiry, err)
	}
	if c.doneExpiry <= 0 {
		return errors.New("done_expiry must be positive")
	}
	if c.sessionDuration, err = time.ParseDuration(c.SessionTTL); err != nil {
		return fmt.Errorf("session_ttl %q: %w", c.SessionTTL, err)
	}
	if c.sessionDuration <= 0 {
		return errors.New("session_ttl must be positive")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.PhotoQualityStart < c.PhotoQualityFloor || c.PhotoQualityStart > 100 {
		return fmt.Errorf("photo quality start %d must be within [%d, 100]", c.PhotoQualityStart, c.PhotoQualityFloor)
	}
	if c.PhotoQualityStep <= 0 {
		return errors.New("photo quality step must be positive")
	}
	if c.LoginRateLimitAllowedPerMin < 0 {
		return errors.New("login rate limit must not be negative")
	}
	if c.Environment == "production" && c.JWTSecret == "" {
		return errors.New("jwt_secret is required in production")
	}
	return nil
}

func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

func (c *Config) DoneExpiryDuration() time.Duration {
	return c.doneExpiry
}

func (c *Config) SessionDuration() time.Duration {
	return c.sessionDuration
}
