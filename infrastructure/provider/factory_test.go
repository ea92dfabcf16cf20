package provider

import (
	"context"
	"testing"

	"github.com/firmscope/firmscope/internal/config"
)

func TestNewFromEndpoint_Gemini(t *testing.T) {
	endpoint := config.NewEndpointWithOptions(
		config.WithProvider(config.ProviderGemini),
		config.WithAPIKey("test-key"),
	)

	p, err := NewFromEndpoint(context.Background(), endpoint, "")
	if err != nil {
		t.Fatalf("NewFromEndpoint: %v", err)
	}
	defer func() { _ = p.Close() }()

	if !p.SupportsWebSearch() {
		t.Error("Gemini provider should support web search")
	}
}

func TestNewFromEndpoint_OpenAI(t *testing.T) {
	endpoint := config.NewEndpointWithOptions(
		config.WithProvider(config.ProviderOpenAI),
		config.WithAPIKey("test-key"),
	)

	p, err := NewFromEndpoint(context.Background(), endpoint, "")
	if err != nil {
		t.Fatalf("NewFromEndpoint: %v", err)
	}
	defer func() { _ = p.Close() }()

	if p.SupportsWebSearch() {
		t.Error("OpenAI provider should not claim web search support")
	}
}

func TestNewFromEndpoint_UnknownProvider(t *testing.T) {
	endpoint := config.NewEndpointWithOptions(
		config.WithProvider(config.Provider("watson")),
		config.WithAPIKey("test-key"),
	)

	if _, err := NewFromEndpoint(context.Background(), endpoint, ""); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
