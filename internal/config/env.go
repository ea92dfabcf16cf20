package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
// Nested structs use underscore delimiter (e.g., RESEARCH_ENDPOINT_MODEL).
type EnvConfig struct {
	// Host is the server host to bind to.
	// Env: HOST (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// Port is the server port to listen on.
	// Env: PORT (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// DataDir is the data directory path.
	// Env: DATA_DIR
	// Default: ~/.firmscope
	DataDir string `envconfig:"DATA_DIR"`

	// DBURL is the database connection URL.
	// Env: DB_URL
	// Default: sqlite:///{data_dir}/firmscope.db
	DBURL string `envconfig:"DB_URL"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// APIKeys is a comma-separated list of valid HTTP API keys.
	// Env: API_KEYS
	APIKeys string `envconfig:"API_KEYS"`

	// GeminiAPIKey is a shorthand for configuring the default Gemini
	// provider, matching the GEMINI_API_KEY variable the original tool used.
	// RESEARCH_ENDPOINT_API_KEY takes precedence when both are set.
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`

	// ResearchEndpoint configures the AI research service.
	ResearchEndpoint EndpointEnv `envconfig:"RESEARCH_ENDPOINT"`

	// HTTPCacheDir is the directory for caching AI HTTP responses to disk.
	// When set, POST request/response pairs are cached to avoid repeated API calls.
	// Env: HTTP_CACHE_DIR
	HTTPCacheDir string `envconfig:"HTTP_CACHE_DIR"`

	// ListLimit is the default page size for company listings.
	// Env: LIST_LIMIT (default: 20)
	ListLimit int `envconfig:"LIST_LIMIT" default:"20"`

	// EmployeeLimit is the maximum employees requested per enrichment.
	// Env: EMPLOYEE_LIMIT (default: 10)
	EmployeeLimit int `envconfig:"EMPLOYEE_LIMIT" default:"10"`
}

// EndpointEnv holds environment configuration for the AI endpoint.
type EndpointEnv struct {
	// Provider selects the AI backend (gemini or openai).
	// Env: RESEARCH_ENDPOINT_PROVIDER (default: gemini)
	Provider string `envconfig:"PROVIDER" default:"gemini"`

	// BaseURL overrides the provider base URL.
	// Env: RESEARCH_ENDPOINT_BASE_URL
	BaseURL string `envconfig:"BASE_URL"`

	// Model is the model identifier override.
	// Env: RESEARCH_ENDPOINT_MODEL
	Model string `envconfig:"MODEL"`

	// APIKey is the API key for authentication.
	// Env: RESEARCH_ENDPOINT_API_KEY
	APIKey string `envconfig:"API_KEY"`

	// Timeout is the request timeout in seconds.
	// Env: RESEARCH_ENDPOINT_TIMEOUT (default: 60)
	Timeout float64 `envconfig:"TIMEOUT" default:"60"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	cfg := NewAppConfig()

	if e.Host != "" {
		cfg = cfg.Apply(WithHost(e.Host))
	}
	if e.Port != 0 {
		cfg = cfg.Apply(WithPort(e.Port))
	}
	if e.DataDir != "" {
		cfg = cfg.Apply(WithDataDir(e.DataDir))
	}
	if e.DBURL != "" {
		cfg = cfg.Apply(WithDBURL(e.DBURL))
	}
	if e.LogLevel != "" {
		cfg = cfg.Apply(WithLogLevel(e.LogLevel))
	}
	if e.LogFormat != "" {
		cfg = cfg.Apply(WithLogFormat(parseLogFormat(e.LogFormat)))
	}
	if e.APIKeys != "" {
		cfg = cfg.Apply(WithAPIKeys(ParseAPIKeys(e.APIKeys)))
	}

	cfg = cfg.Apply(WithResearchEndpoint(e.researchEndpoint()))

	if e.HTTPCacheDir != "" {
		cfg = cfg.Apply(WithHTTPCacheDir(e.HTTPCacheDir))
	}
	if e.ListLimit > 0 {
		cfg = cfg.Apply(WithListLimit(e.ListLimit))
	}
	if e.EmployeeLimit > 0 {
		cfg = cfg.Apply(WithEmployeeLimit(e.EmployeeLimit))
	}

	return cfg
}

func (e EnvConfig) researchEndpoint() Endpoint {
	env := e.ResearchEndpoint
	if env.APIKey == "" && e.GeminiAPIKey != "" && parseProvider(env.Provider) == ProviderGemini {
		env.APIKey = e.GeminiAPIKey
	}
	return env.ToEndpoint()
}

// ToEndpoint converts EndpointEnv to Endpoint.
func (e EndpointEnv) ToEndpoint() Endpoint {
	opts := []EndpointOption{
		WithProvider(parseProvider(e.Provider)),
		WithTimeout(time.Duration(e.Timeout * float64(time.Second))),
	}

	if e.BaseURL != "" {
		opts = append(opts, WithBaseURL(e.BaseURL))
	}
	if e.Model != "" {
		opts = append(opts, WithModel(e.Model))
	}
	if e.APIKey != "" {
		opts = append(opts, WithAPIKey(e.APIKey))
	}

	return NewEndpointWithOptions(opts...)
}

// parseProvider parses a provider string, defaulting to Gemini.
func parseProvider(s string) Provider {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "openai":
		return ProviderOpenAI
	default:
		return ProviderGemini
	}
}

// parseLogFormat parses a log format string.
func parseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatPretty
	}
}
