package config

import (
	"fmt"
	"time"

	"degen_api/internal/service"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"degen"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"100"`
}

func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c DBConfig) MigrationURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

type Config struct {
	HTTPPort         string        `envconfig:"HTTP_PORT" default:"8080"`
	HTTPReadTimeout  time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"15s"`
	HTTPWriteTimeout time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"15s"`

	AddressValidation service.AddressMode `envconfig:"ADDRESS_VALIDATION" default:"strict"`
	DB                DBConfig
}

func NewConfig() (*Config, error) {
	// .env необязателен: в контейнере переменные приходят из окружения.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("чтение переменных окружения: %w", err)
	}

	// envconfig подставляет default только для отсутствующей переменной;
	// выставленная в пустую строку тоже означает "по умолчанию".
	if cfg.AddressValidation == "" {
		cfg.AddressValidation = service.AddressModeStrict
	}
	if !cfg.AddressValidation.IsValid() {
		return nil, fmt.Errorf("ADDRESS_VALIDATION: недопустимое значение %q", cfg.AddressValidation)
	}

	return &cfg, nil
}
