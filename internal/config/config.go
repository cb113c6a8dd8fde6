package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	// ----------------------------
	// Sender identity
	// ----------------------------
	FromEmail    string `envconfig:"FROM_EMAIL" default:"onboarding@resend.dev"`
	SupportEmail string `envconfig:"SUPPORT_EMAIL" default:"support@example.com"`
	CompanyName  string `envconfig:"COMPANY_NAME" default:"Our Service"`
	LogoURL      string `envconfig:"LOGO_URL" default:"https://via.placeholder.com/150"`

	// AppURL is the application base used to build default callback URLs
	// for verification and recovery links.
	AppURL string `envconfig:"APP_URL" required:"true"`

	// ----------------------------
	// Delivery provider
	// ----------------------------
	// DeliveryBackend selects "provider" (REST API) or "smtp" (local relay).
	DeliveryBackend string  `envconfig:"DELIVERY_BACKEND" default:"provider"`
	ProviderAPIURL  string  `envconfig:"PROVIDER_API_URL" default:"https://api.resend.com"`
	ProviderAPIKey  string  `envconfig:"PROVIDER_API_KEY" default:""`
	ProviderRPS     float64 `envconfig:"PROVIDER_RPS" default:"10"`

	// ----------------------------
	// SMTP (DELIVERY_BACKEND=smtp)
	// ----------------------------
	SMTPHost     string `envconfig:"SMTP_HOST" default:"localhost"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"1025"`
	SMTPUser     string `envconfig:"SMTP_USER" default:""`
	SMTPPassword string `envconfig:"SMTP_PASSWORD" default:""`

	// ----------------------------
	// Identity provider (admin API)
	// ----------------------------
	AuthURL        string `envconfig:"AUTH_URL" required:"true"`
	AuthServiceKey string `envconfig:"AUTH_SERVICE_KEY" required:"true"`

	// ----------------------------
	// HTTP API
	// ----------------------------
	APIPort string `envconfig:"API_PORT" default:"8080"`

	// ----------------------------
	// Metrics
	// ----------------------------
	MetricsPort string `envconfig:"METRICS_PORT" default:"9090"`

	// ----------------------------
	// Database
	// ----------------------------
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
}

func Load() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return &cfg, err
}
