package firmscope

import (
	"log/slog"
	"time"

	"github.com/firmscope/firmscope/domain/service"
	"github.com/firmscope/firmscope/infrastructure/provider"
	"github.com/firmscope/firmscope/internal/config"
)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	dbURL         string
	sqlitePath    string
	dataDir       string
	endpoint      config.Endpoint
	textProvider  provider.Provider
	enricher      service.Enricher
	logger        *slog.Logger
	httpCacheDir  string
	employeeLimit int
}

func newClientConfig() *clientConfig {
	return &clientConfig{
		dataDir:       config.DefaultDataDir(),
		endpoint:      config.NewEndpoint(),
		employeeLimit: config.DefaultEmployeeLimit,
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithSQLite configures SQLite as the cache database.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.sqlitePath = path
	}
}

// WithDBURL configures the cache database by connection URL
// (sqlite:///path or postgres://...).
func WithDBURL(url string) Option {
	return func(c *clientConfig) {
		c.dbURL = url
	}
}

// WithDataDir sets the directory for the default SQLite database and other
// local state.
func WithDataDir(dir string) Option {
	return func(c *clientConfig) {
		c.dataDir = dir
	}
}

// WithGemini sets Gemini as the research provider with search grounding.
func WithGemini(apiKey string) Option {
	return func(c *clientConfig) {
		c.endpoint = c.endpoint.Apply(
			config.WithProvider(config.ProviderGemini),
			config.WithAPIKey(apiKey),
		)
	}
}

// WithOpenAI sets an OpenAI-compatible endpoint as the research provider.
// It answers from model knowledge; there is no search grounding.
func WithOpenAI(apiKey string) Option {
	return func(c *clientConfig) {
		c.endpoint = c.endpoint.Apply(
			config.WithProvider(config.ProviderOpenAI),
			config.WithAPIKey(apiKey),
		)
	}
}

// WithModel overrides the provider's default model.
func WithModel(model string) Option {
	return func(c *clientConfig) {
		c.endpoint = c.endpoint.Apply(config.WithModel(model))
	}
}

// WithResearchTimeout bounds every AI request. Expiry surfaces as
// service.ErrServiceUnavailable.
func WithResearchTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.endpoint = c.endpoint.Apply(config.WithTimeout(d))
	}
}

// WithResearchEndpoint sets the full research endpoint configuration.
func WithResearchEndpoint(e config.Endpoint) Option {
	return func(c *clientConfig) {
		c.endpoint = e
	}
}

// WithTextProvider sets a custom research provider.
func WithTextProvider(p provider.Provider) Option {
	return func(c *clientConfig) {
		c.textProvider = p
	}
}

// WithEnricher sets a custom enricher, bypassing provider construction.
func WithEnricher(e service.Enricher) Option {
	return func(c *clientConfig) {
		c.enricher = e
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}

// WithHTTPCacheDir enables on-disk caching of provider HTTP traffic.
func WithHTTPCacheDir(dir string) Option {
	return func(c *clientConfig) {
		c.httpCacheDir = dir
	}
}

// WithEmployeeLimit caps how many employees an enrichment may return.
func WithEmployeeLimit(n int) Option {
	return func(c *clientConfig) {
		if n > 0 {
			c.employeeLimit = n
		}
	}
}
