package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	LoadTestModeBurst = "burst"
	LoadTestModePaced = "paced"
)

// Config holds the application configuration
type Config struct {
	// Remote vectordb / PDF service
	APICfg APIConfig `envPrefix:"API_"`

	// Chat endpoint used by the load harness
	ChatCfg ChatConfig `envPrefix:"CHAT_"`

	// Load harness parameters
	LoadTestCfg LoadTestConfig `envPrefix:"LOADTEST_"`

	// Local stand-in server
	MockServerCfg MockServerConfig `envPrefix:"MOCK_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`

	// Environment (set from flag, not from env var)
	Environment string
}

type APIConfig struct {
	HTTPClientConfig
	// Optional. The interactive clients prompt for credentials when empty.
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
}

type ChatConfig struct {
	Endpoint string `env:"ENDPOINT" envDefault:"/chat"`
	// Authenticate sends API credentials with chat requests. Load runs
	// post anonymously unless it is set.
	Authenticate bool `env:"AUTH" envDefault:"false"`
}

type LoadTestConfig struct {
	Mode     string        `env:"MODE" envDefault:"burst"`
	Requests int           `env:"REQUESTS"`
	Users    int           `env:"USERS" envDefault:"10"`
	Window   time.Duration `env:"WINDOW" envDefault:"60s"`
}

type MockServerConfig struct {
	Addr          string  `env:"ADDR" envDefault:":8000"`
	Username      string  `env:"USERNAME" envDefault:"admin"`
	Password      string  `env:"PASSWORD" envDefault:"admin"`
	ChatRateLimit float64 `env:"CHAT_RATE_LIMIT" envDefault:"0"`
	ChatRateBurst int     `env:"CHAT_RATE_BURST" envDefault:"1"`
	Seed          bool    `env:"SEED" envDefault:"true"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"10s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"10s"`
	InsecureSkipVerify    bool          `env:"INSECURE_SKIP_VERIFY" envDefault:"false"`
	Url                   string        `env:"SERVICE_URL" envDefault:"http://127.0.0.1:8000"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	return cfg, nil
}

// Parse reads the configuration from the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	applyLoadTestDefaults(&cfg.LoadTestCfg)

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Burst runs default to 5 requests, paced runs to 100 spread over the window.
func applyLoadTestDefaults(cfg *LoadTestConfig) {
	cfg.Mode = strings.ToLower(strings.TrimSpace(cfg.Mode))
	if cfg.Requests != 0 {
		return
	}
	switch cfg.Mode {
	case LoadTestModePaced:
		cfg.Requests = 100
	default:
		cfg.Requests = 5
	}
}

func validateConfig(cfg *Config) error {
	var errors []string

	if !strings.HasPrefix(cfg.APICfg.Url, "http://") && !strings.HasPrefix(cfg.APICfg.Url, "https://") {
		errors = append(errors, fmt.Sprintf("API_SERVICE_URL must be an http(s) URL, got %q", cfg.APICfg.Url))
	}

	if cfg.APICfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("API_TIMEOUT must be positive, got %s", cfg.APICfg.RequestTimeout))
	}

	if !strings.HasPrefix(cfg.ChatCfg.Endpoint, "/") {
		errors = append(errors, fmt.Sprintf("CHAT_ENDPOINT must start with '/', got %q", cfg.ChatCfg.Endpoint))
	}

	if cfg.LoadTestCfg.Mode != LoadTestModeBurst && cfg.LoadTestCfg.Mode != LoadTestModePaced {
		errors = append(errors, fmt.Sprintf("LOADTEST_MODE must be %q or %q, got %q", LoadTestModeBurst, LoadTestModePaced, cfg.LoadTestCfg.Mode))
	}

	if cfg.LoadTestCfg.Requests < 1 {
		errors = append(errors, fmt.Sprintf("LOADTEST_REQUESTS must be at least 1, got %d", cfg.LoadTestCfg.Requests))
	}

	if cfg.LoadTestCfg.Users < 1 {
		errors = append(errors, fmt.Sprintf("LOADTEST_USERS must be at least 1, got %d", cfg.LoadTestCfg.Users))
	}

	if cfg.LoadTestCfg.Window <= 0 {
		errors = append(errors, fmt.Sprintf("LOADTEST_WINDOW must be positive, got %s", cfg.LoadTestCfg.Window))
	}

	if cfg.MockServerCfg.ChatRateLimit < 0 {
		errors = append(errors, fmt.Sprintf("MOCK_CHAT_RATE_LIMIT must not be negative, got %v", cfg.MockServerCfg.ChatRateLimit))
	}

	if cfg.MockServerCfg.ChatRateLimit > 0 && cfg.MockServerCfg.ChatRateBurst < 1 {
		errors = append(errors, fmt.Sprintf("MOCK_CHAT_RATE_BURST must be at least 1, got %d", cfg.MockServerCfg.ChatRateBurst))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
