package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/text/language"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Tally"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"tally"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Money struct {
		// DisplayCurrency is what all dashboard totals are expressed in.
		DisplayCurrency string `envconfig:"DISPLAY_CURRENCY" default:"EUR"`
		// Rates converts other currencies into the display currency,
		// e.g. "USD=0.86,GBP=1.17".
		Rates  string `envconfig:"RATES" default:""`
		Locale string `envconfig:"LOCALE" default:"en"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// LocaleTag parses the configured locale, falling back to English rather
// than failing startup over a display preference.
func (c *Config) LocaleTag() language.Tag {
	tag, err := language.Parse(c.Money.Locale)
	if err != nil {
		return language.English
	}

	return tag
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
