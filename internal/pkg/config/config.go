package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   marketplace credentials), security settings
// - default: Values common across all environments (timeouts, retry bounds),
//   standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Avinode AvinodeConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
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
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// AvinodeConfig carries the marketplace credentials. They are threaded
// explicitly into the gateway constructor; nothing reads them ambiently.
type AvinodeConfig struct {
	BaseURL        string        `envconfig:"AVINODE_BASE_URL" default:"https://sandbox.avinode.com/api"`
	APIToken       string        `envconfig:"AVINODE_API_TOKEN" required:"true"`
	BearerToken    string        `envconfig:"AVINODE_BEARER_TOKEN" required:"true"`
	ActAsAccount   string        `envconfig:"AVINODE_ACT_AS_ACCOUNT" default:""`
	Product        string        `envconfig:"AVINODE_PRODUCT" default:"Jetvision/1.0.0"`
	RequestTimeout time.Duration `envconfig:"AVINODE_REQUEST_TIMEOUT" default:"30s"`
	MaxAttempts    int           `envconfig:"AVINODE_MAX_ATTEMPTS" default:"3"`
	RetryBackoff   time.Duration `envconfig:"AVINODE_RETRY_BACKOFF" default:"250ms"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
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
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Avinode: AvinodeConfig{
			BaseURL:        "http://localhost:9999/api",
			APIToken:       "test-api-token",
			BearerToken:    "test-bearer-token",
			Product:        "Jetvision/1.0.0",
			RequestTimeout: 5 * time.Second,
			MaxAttempts:    3,
			RetryBackoff:   time.Millisecond,
		},
	}
}
