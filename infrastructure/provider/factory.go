package provider

import (
	"context"
	"fmt"
	"net/http"

	"github.com/firmscope/firmscope/internal/config"
)

// NewFromEndpoint builds a Provider from endpoint configuration. When
// httpCacheDir is non-empty, provider HTTP traffic is cached on disk.
func NewFromEndpoint(ctx context.Context, endpoint config.Endpoint, httpCacheDir string) (Provider, error) {
	var transport http.RoundTripper
	if httpCacheDir != "" {
		transport = NewCachingTransport(httpCacheDir, nil)
	}

	switch endpoint.Provider() {
	case config.ProviderGemini:
		return NewGeminiProvider(ctx, GeminiConfig{
			APIKey:    endpoint.APIKey(),
			BaseURL:   endpoint.BaseURL(),
			Model:     endpoint.Model(),
			Timeout:   endpoint.Timeout(),
			Transport: transport,
		})
	case config.ProviderOpenAI:
		return NewOpenAIProvider(OpenAIConfig{
			APIKey:    endpoint.APIKey(),
			BaseURL:   endpoint.BaseURL(),
			Model:     endpoint.Model(),
			Timeout:   endpoint.Timeout(),
			Transport: transport,
		}), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", endpoint.Provider())
	}
}
