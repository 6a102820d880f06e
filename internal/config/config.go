package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all application configuration
type Config struct {
	// Server settings
	Port          int    `env:"WEBSITE_PORT" envDefault:"4002"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`

	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Contact  ContactConfig
	Notify   NotifyConfig
	Molecule MoleculeConfig
}

// ContactConfig controls lead-capture forwarding.
type ContactConfig struct {
	// Form-processing service that receives validated submissions
	Endpoint string        `env:"FORM_ENDPOINT" envDefault:"https://formspree.io/f/YOUR_FORM_ID"`
	Timeout  time.Duration `env:"FORM_TIMEOUT" envDefault:"10s"`
	// Retries apply only to connection failures, never to a sent request
	Retries  int           `env:"FORM_RETRIES" envDefault:"0"`

	// Per-client submission limits
	RatePerMinute int `env:"CONTACT_RATE_PER_MINUTE" envDefault:"10"`
	Burst         int `env:"CONTACT_BURST" envDefault:"3"`
}

// NotifyConfig holds the optional Mailgun lead-notification settings.
type NotifyConfig struct {
	Enabled       bool   `env:"NOTIFY_ENABLED" envDefault:"false"`
	MailgunDomain string `env:"MAILGUN_DOMAIN"`
	MailgunAPIKey string `env:"MAILGUN_API_KEY"`
	FromEmail     string `env:"NOTIFY_FROM_EMAIL" envDefault:"noreply@qura.tech"`
	FromName      string `env:"NOTIFY_FROM_NAME" envDefault:"Qura Website"`
	ToEmail       string `env:"NOTIFY_TO_EMAIL" envDefault:"contact@qura.tech"`
}

// IsConfigured returns true if Mailgun credentials and a recipient are set
func (n *NotifyConfig) IsConfigured() bool {
	return n.Enabled && n.MailgunDomain != "" && n.MailgunAPIKey != "" && n.ToEmail != ""
}

// MoleculeConfig bounds the server-rendered molecule images.
type MoleculeConfig struct {
	GIFFrames int `env:"MOLECULE_GIF_FRAMES" envDefault:"90"`
	// Renderer states advanced per GIF frame
	GIFStride int `env:"MOLECULE_GIF_STRIDE" envDefault:"7"`
	MaxSize   int `env:"MOLECULE_MAX_SIZE" envDefault:"1024"`
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.Port)
}

// IsProduction reports whether the site runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LoadDotEnv reads .env then .env.local when present. Existing process
// variables win over .env; .env.local wins over both.
func LoadDotEnv() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")
}

// Parse reads the configuration from the environment.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.Port),
		slog.String("form_endpoint", cfg.Contact.Endpoint),
		slog.Bool("notify", cfg.Notify.IsConfigured()),
	)

	return cfg, nil
}
