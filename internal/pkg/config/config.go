package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   credentials), security settings
// - default: Values common across all environments (timeouts, intervals)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	PayPal   PayPalConfig
	Checkout CheckoutConfig
	Jobs     JobsConfig
	SMTP     SMTPConfig
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
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type PayPalConfig struct {
	BaseURL      string        `envconfig:"PAYPAL_BASE_URL" default:"https://api-m.sandbox.paypal.com"`
	ClientID     string        `envconfig:"PAYPAL_CLIENT_ID" required:"true"`
	ClientSecret string        `envconfig:"PAYPAL_CLIENT_SECRET" required:"true"`
	Timeout      time.Duration `envconfig:"PAYPAL_TIMEOUT" default:"15s"`
}

type CheckoutConfig struct {
	Currency       string        `envconfig:"CHECKOUT_CURRENCY" default:"GBP"`
	ReservationTTL time.Duration `envconfig:"CHECKOUT_RESERVATION_TTL" default:"30m"`
}

type JobsConfig struct {
	SweepInterval      time.Duration `envconfig:"JOBS_SWEEP_INTERVAL" default:"5m"`
	OutboxPollInterval time.Duration `envconfig:"JOBS_OUTBOX_POLL_INTERVAL" default:"30s"`
	OutboxBatchSize    int           `envconfig:"JOBS_OUTBOX_BATCH_SIZE" default:"20"`
	OutboxMaxAttempts  int           `envconfig:"JOBS_OUTBOX_MAX_ATTEMPTS" default:"5"`
}

type SMTPConfig struct {
	Host string `envconfig:"SMTP_HOST" default:""`
	Port string `envconfig:"SMTP_PORT" default:"587"`
	User string `envconfig:"SMTP_USER" default:""`
	Pass string `envconfig:"SMTP_PASS" default:""`
	From string `envconfig:"SMTP_FROM" default:"orders@example.com"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
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
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		Log: LogConfig{
			Level: "error",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		PayPal: PayPalConfig{
			BaseURL:      "http://localhost:9999",
			ClientID:     "test-client",
			ClientSecret: "test-secret",
			Timeout:      5 * time.Second,
		},
		Checkout: CheckoutConfig{
			Currency:       "GBP",
			ReservationTTL: 30 * time.Minute,
		},
		Jobs: JobsConfig{
			SweepInterval:      time.Minute,
			OutboxPollInterval: time.Second,
			OutboxBatchSize:    20,
			OutboxMaxAttempts:  5,
		},
	}
}
