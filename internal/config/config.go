package config

import (
	"encoding/xml"
	"fmt"
	"os"
	"sync"
)

var (
	cfg  *APIConfig
	once sync.Once
)

// APIConfig represents the root element of config.xml.
type APIConfig struct {
	XMLName        xml.Name             `xml:"API"`
	RequestDump    bool                 `xml:"REQUEST_DUMP,attr"`
	Context        ContextConfig        `xml:"CONTEXT"`
	Authentication AuthenticationConfig `xml:"AUTHENTICATION"`
	RateLimit      RateLimitConfig      `xml:"RATE_LIMIT"`
	DB             DBConfig             `xml:"DB"`
	ThirdParty     ThirdPartyConfig     `xml:"THIRD_PARTY"`
}

// ContextConfig holds basic server settings.
type ContextConfig struct {
	Port     int    `xml:"PORT"`
	Host     string `xml:"HOST"`
	TimeZone string `xml:"TIME_ZONE"`
	LogDir   string `xml:"LOG_DIR"`
}

// AuthenticationConfig holds token-auth settings. Token auth is off by
// default; the public API needs no credentials.
type AuthenticationConfig struct {
	EnableTokenAuth bool   `xml:"ENABLE_TOKEN_AUTH"`
	APIKeyHash      string `xml:"API_KEY_HASH"`
	SessionTimeout  int    `xml:"SESSION_TIMEOUT"`
}

// RateLimitConfig holds the token-bucket settings for /api routes.
type RateLimitConfig struct {
	Enabled bool    `xml:"ENABLED"`
	RPS     float64 `xml:"RPS"`
	Burst   int     `xml:"BURST"`
}

// DBConfig holds the optional Postgres connection settings.
type DBConfig struct {
	Initialize bool       `xml:"INITIALIZE,attr"`
	Host       string     `xml:"HOST"`
	Port       int        `xml:"PORT"`
	Name       string     `xml:"NAME"`
	SSLMode    string     `xml:"SSL_MODE"`
	Username   string     `xml:"USERNAME"`
	Password   DBPassword `xml:"PASSWORD"`
}

// DBPassword holds password details.
type DBPassword struct {
	Type  string `xml:"TYPE,attr"`
	Value string `xml:",chardata"`
}

// ThirdPartyConfig holds settings for the external generation service.
// The API key itself comes from the OPENAI_API_KEY environment variable.
type ThirdPartyConfig struct {
	OpenAIModel    string `xml:"OPENAI_MODEL"`
	OpenAIBaseURL  string `xml:"OPENAI_BASE_URL"`
	TimeoutSeconds int    `xml:"TIMEOUT_SECONDS"`
}

// DSN builds the Postgres connection string.
func (d DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.Username, d.Password.Value, d.Name, d.SSLMode)
}

// LoadConfig loads and parses the XML configuration from the given file.
func LoadConfig(xmlPath string) (*APIConfig, error) {
	var loadErr error
	once.Do(func() {
		data, err := os.ReadFile(xmlPath)
		if err != nil {
			loadErr = err
			return
		}

		var newCfg APIConfig
		if err := xml.Unmarshal(data, &newCfg); err != nil {
			loadErr = fmt.Errorf("parse %s: %w", xmlPath, err)
			return
		}

		applyDefaults(&newCfg)
		cfg = &newCfg
	})

	if loadErr != nil {
		return nil, loadErr
	}
	if cfg == nil {
		return nil, os.ErrInvalid
	}
	return cfg, nil
}

func applyDefaults(c *APIConfig) {
	if c.Context.Port == 0 {
		c.Context.Port = 8000
	}
	if c.Context.Host == "" {
		c.Context.Host = "0.0.0.0"
	}
	if c.Context.LogDir == "" {
		c.Context.LogDir = "logs"
	}
	if c.ThirdParty.OpenAIModel == "" {
		c.ThirdParty.OpenAIModel = "gpt-4"
	}
	if c.ThirdParty.OpenAIBaseURL == "" {
		c.ThirdParty.OpenAIBaseURL = "https://api.openai.com/v1"
	}
	if c.ThirdParty.TimeoutSeconds == 0 {
		c.ThirdParty.TimeoutSeconds = 60
	}
	if c.RateLimit.RPS == 0 {
		c.RateLimit.RPS = 20
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 40
	}
}

// GetConfig returns the loaded configuration.
func GetConfig() *APIConfig {
	return cfg
}
