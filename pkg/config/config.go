package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/tuncanbit/pairscope/pkg/logger"
)

const (
	DefaultConfigPath      = "./config.yaml"
	DefaultGatewayBaseURL  = "https://solana-gateway.moralis.io/token/mainnet"
	DefaultNarrativeURL    = "https://api.openai.com/v1"
	DefaultNarrativeModel  = "gpt-4"
	DefaultSessionCookie   = "pairscope_session"
	DefaultSessionTTL      = 24 * time.Hour
	DefaultUpstreamTimeout = 30 * time.Second
)

type Config struct {
	Server          ServerConfig               `yaml:"server"`
	Logger          logger.Config              `yaml:"logger"`
	Gateway         GatewayConfig              `yaml:"gateway"`
	Narrative       NarrativeConfig            `yaml:"narrative"`
	Auth            AuthConfig                 `yaml:"auth"`
	RatioThresholds map[string]ThresholdConfig `yaml:"ratio_thresholds"` // ratio name -> health rule
}

type ServerConfig struct {
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	Environment string `yaml:"environment"`
}

// GatewayConfig points at the market data gateway serving pair stats and token metadata.
type GatewayConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
}

type NarrativeConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

type AuthConfig struct {
	Password     string        `yaml:"password"`
	JWTSecret    string        `yaml:"jwt_secret"`
	SessionTTL   time.Duration `yaml:"session_ttl"`
	CookieName   string        `yaml:"cookie_name"`
	SecureCookie bool          `yaml:"secure_cookie"`
}

// ThresholdConfig is an inclusive health predicate. Unset bounds are ignored;
// Equals takes precedence over Min/Max.
type ThresholdConfig struct {
	Min    *float64 `yaml:"min"`
	Max    *float64 `yaml:"max"`
	Equals *float64 `yaml:"equals"`
}

// Load reads .env (if present) and the YAML file named by CONFIG_PATH or
// ./config.yaml (if present), then applies env overrides and defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = DefaultConfigPath
	}

	return LoadFile(path)
}

// LoadFile is Load without the .env step. A missing file yields an env-only config.
func LoadFile(path string) (*Config, error) {
	var config Config

	configData, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(configData, &config); err != nil {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, err
	}

	config.applyEnv()
	config.applyDefaults()

	return &config, nil
}

func (c *Config) applyEnv() {
	overrides := map[string]*string{
		"MORALIS_API_KEY": &c.Gateway.APIKey,
		"OPENAI_API_KEY":  &c.Narrative.APIKey,
		"PASSWORD":        &c.Auth.Password,
		"JWT_SECRET":      &c.Auth.JWTSecret,
		"PORT":            &c.Server.Port,
	}
	for key, target := range overrides {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			*target = value
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.Environment == "" {
		c.Server.Environment = "development"
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Logger.TimeFormat == "" {
		c.Logger.TimeFormat = time.RFC3339
	}
	if c.Gateway.BaseURL == "" {
		c.Gateway.BaseURL = DefaultGatewayBaseURL
	}
	if c.Gateway.Timeout == 0 {
		c.Gateway.Timeout = DefaultUpstreamTimeout
	}
	if c.Narrative.BaseURL == "" {
		c.Narrative.BaseURL = DefaultNarrativeURL
	}
	if c.Narrative.Model == "" {
		c.Narrative.Model = DefaultNarrativeModel
	}
	if c.Narrative.Timeout == 0 {
		c.Narrative.Timeout = DefaultUpstreamTimeout
	}
	if c.Auth.SessionTTL == 0 {
		c.Auth.SessionTTL = DefaultSessionTTL
	}
	if c.Auth.CookieName == "" {
		c.Auth.CookieName = DefaultSessionCookie
	}
}
