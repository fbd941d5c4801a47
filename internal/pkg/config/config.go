package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Queue    QueueConfig
	Dispatch DispatchConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// RedisConfig configures the notification channel. Disabled means estimate
// updates are only persisted, never pushed.
type RedisConfig struct {
	Enabled       bool          `envconfig:"REDIS_ENABLED" default:"false"`
	Addr          string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password      string        `envconfig:"REDIS_PASSWORD" default:""`
	DB            int           `envconfig:"REDIS_DB" default:"0"`
	ChannelPrefix string        `envconfig:"REDIS_CHANNEL_PREFIX" default:"queueless"`
	KeyTTL        time.Duration `envconfig:"REDIS_KEY_TTL" default:"24h"`
}

type QueueConfig struct {
	TimeZone         string        `envconfig:"QUEUE_TIMEZONE" default:"Asia/Kolkata"`
	RegistryRefresh  time.Duration `envconfig:"QUEUE_REGISTRY_REFRESH" default:"1m"`
	EvictionInterval time.Duration `envconfig:"QUEUE_EVICTION_INTERVAL" default:"15m"`
	RetainDays       int           `envconfig:"QUEUE_RETAIN_DAYS" default:"1"`
}

type DispatchConfig struct {
	Workers     int           `envconfig:"DISPATCH_WORKERS" default:"4"`
	Buffer      int           `envconfig:"DISPATCH_BUFFER" default:"256"`
	MaxAttempts int           `envconfig:"DISPATCH_MAX_ATTEMPTS" default:"5"`
	BaseBackoff time.Duration `envconfig:"DISPATCH_BASE_BACKOFF" default:"50ms"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location resolves the zone that defines calendar days for queues.
func (c *QueueConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid QUEUE_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Kolkata",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Queue: QueueConfig{
			TimeZone:         "Asia/Kolkata",
			RegistryRefresh:  time.Minute,
			EvictionInterval: time.Minute,
			RetainDays:       1,
		},
		Dispatch: DispatchConfig{
			Workers:     2,
			Buffer:      64,
			MaxAttempts: 3,
			BaseBackoff: time.Millisecond,
		},
	}
}
