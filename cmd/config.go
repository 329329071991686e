package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"shop/internal/jobs"
	"shop/internal/pkg/errs"

	"github.com/joho/godotenv"
)

// Config is read from the environment. Values from a .env file fill in keys
// the environment does not set.
type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	LogLevel       string
	LogFormat      string
	OrderUnpaidTTL time.Duration
	ExpirySchedule string
}

// LoadConfig loads envFiles (".env" when none are given) and reads Config
// from the environment. A missing env file is not an error.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		DBHost:         getEnv("DB_HOST", ""),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", ""),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBName:         getEnv("DB_NAME", ""),
		DBSslMode:      getEnv("DB_SSLMODE", "disable"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		ExpirySchedule: getEnv("EXPIRY_SCHEDULE", jobs.DefaultExpirySchedule),
	}

	if raw := getEnv("ORDER_UNPAID_TTL", ""); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, errs.NewValueIsInvalidErrorWithCause("ORDER_UNPAID_TTL", err)
		}
		cfg.OrderUnpaidTTL = ttl
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid or missing setting at once.
func (c Config) Validate() error {
	var err error

	if c.DBHost == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("DB_HOST"))
	}
	if c.DBUser == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("DB_USER"))
	}
	if c.DBName == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("DB_NAME"))
	}
	err = errors.Join(err, validatePort("HTTP_PORT", c.HTTPPort), validatePort("DB_PORT", c.DBPort))

	var level slog.Level
	if levelErr := level.UnmarshalText([]byte(c.LogLevel)); levelErr != nil {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", levelErr))
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("LOG_FORMAT",
			fmt.Errorf("%q is neither json nor text", c.LogFormat)))
	}
	if c.OrderUnpaidTTL < 0 {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("ORDER_UNPAID_TTL", c.OrderUnpaidTTL, 0, "unbounded"))
	}

	return err
}

// DSN is the PostgreSQL connection string in key=value form.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func validatePort(key, value string) error {
	port, err := strconv.Atoi(value)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	if port < 1 || port > 65535 {
		return errs.NewValueIsOutOfRangeError(key, port, 1, 65535)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
