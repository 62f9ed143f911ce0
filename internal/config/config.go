package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers understood by database.Open.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds runtime settings read from the environment (and an optional .env file).
type Config struct {
	AppPort     string
	DBDriver    string
	DatabaseDSN string
	RabbitMQURL string
	CORSOrigins string
	SeedCatalog bool

	ResendAPIKey     string
	ContactToEmail   string
	ContactFromEmail string
}

// MailConfigured reports whether the contact relay can send email.
func (c *Config) MailConfigured() bool {
	return c.ResendAPIKey != ""
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DB_DRIVER", DriverMemory)
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("SEED_CATALOG", true)
	v.SetDefault("RESEND_API_KEY", "")
	v.SetDefault("CONTACT_TO_EMAIL", "info@buremelektronik.com")
	v.SetDefault("CONTACT_FROM_EMAIL", "onboarding@resend.dev")
}

// Load reads configuration from the process environment. A .env file in the
// working directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()
	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppPort:          v.GetString("APP_PORT"),
		DBDriver:         strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
		DatabaseDSN:      v.GetString("DATABASE_DSN"),
		RabbitMQURL:      v.GetString("RABBITMQ_URL"),
		CORSOrigins:      v.GetString("CORS_ALLOWED_ORIGINS"),
		SeedCatalog:      v.GetBool("SEED_CATALOG"),
		ResendAPIKey:     strings.TrimSpace(v.GetString("RESEND_API_KEY")),
		ContactToEmail:   v.GetString("CONTACT_TO_EMAIL"),
		ContactFromEmail: v.GetString("CONTACT_FROM_EMAIL"),
	}

	if !strings.Contains(cfg.AppPort, ":") {
		cfg.AppPort = ":" + cfg.AppPort
	}

	switch cfg.DBDriver {
	case DriverMemory:
	case DriverSQLite:
		if cfg.DatabaseDSN == "" {
			cfg.DatabaseDSN = "inductra.db"
		}
	case DriverPostgres:
		if cfg.DatabaseDSN == "" {
			return nil, fmt.Errorf("DATABASE_DSN is required when DB_DRIVER=%s", DriverPostgres)
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	if !cfg.MailConfigured() {
		log.Println("[WARN] RESEND_API_KEY is not set, contact form will respond with 503")
	}
	return cfg, nil
}
