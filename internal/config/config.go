package config

import "fmt"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	DatabaseURL string `env:"DATABASE_URL"`
	JWTSecret   string `env:"JWT_SECRET"`

	Payment   Payment   `envPrefix:"PAYMENT_"`
	Square    Square    `envPrefix:"SQUARE_"`
	BrainTree Braintree `envPrefix:"BRAINTREE_"`
	Mirror    Mirror    `envPrefix:"MIRROR_"`
	Chat      Chat
	Worker    Worker `envPrefix:"MIRROR_WORKER_"`
}

type Payment struct {
	// square or braintree
	Provider string `env:"PROVIDER" envDefault:"square"`
}

type Square struct {
	BaseApiURL  string `env:"BASE_API_URL"`
	AccessToken string `env:"ACCESS_TOKEN"`
	Environment string `env:"ENVIRONMENT" envDefault:"sandbox"`
	LocationID  string `env:"LOCATION_ID"`
}

type Braintree struct {
	Environment string `env:"ENVIRONMENT"`
	MerchantID  string `env:"MERCHANT_ID"`
	PublicKey   string `env:"PUBLIC_KEY"`
	PrivateKey  string `env:"PRIVATE_KEY"`
}

// Mirror is the hosted secondary store. Both fields are required for any
// process that touches it; Validate fails startup when they are absent.
type Mirror struct {
	BaseURL string `env:"BASE_URL"`
	APIKey  string `env:"API_KEY"`
}

type Chat struct {
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	Model         string `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`
}

type Worker struct {
	PollInterval string `env:"POLL_INTERVAL" envDefault:"2s"`
	BatchSize    int    `env:"BATCH_SIZE" envDefault:"20"`
	MaxAttempts  int    `env:"MAX_ATTEMPTS" envDefault:"10"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

// Validate checks the settings every process needs before it can start. The
// mirror store credentials are a hard requirement: the order flow enqueues
// mirror tasks unconditionally, so a process without them would silently
// strand every task.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Mirror.BaseURL == "" {
		return fmt.Errorf("MIRROR_BASE_URL is required")
	}
	if c.Mirror.APIKey == "" {
		return fmt.Errorf("MIRROR_API_KEY is required")
	}
	return nil
}
