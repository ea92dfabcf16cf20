package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiProvider implements text generation using the Google Gemini API with
// optional Google Search grounding.
type GeminiProvider struct {
	client *genai.Client
	model  string
	retry  retryPolicy
}

// GeminiConfig holds configuration for the Gemini provider.
type GeminiConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	Timeout   time.Duration
	Transport http.RoundTripper
}

// NewGeminiProvider creates a provider from configuration.
func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}

	if cfg.Timeout > 0 || cfg.Transport != nil {
		clientConfig.HTTPClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: cfg.Transport,
		}
	}

	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultGeminiModel
	}

	return &GeminiProvider{
		client: client,
		model:  model,
		retry:  defaultRetryPolicy(),
	}, nil
}

// SupportsWebSearch returns true; Gemini exposes Google Search as a built-in tool.
func (p *GeminiProvider) SupportsWebSearch() bool {
	return true
}

// Close releases the underlying client. The genai SDK client does not hold
// resources that require explicit release, so there is nothing to do.
func (p *GeminiProvider) Close() error {
	return nil
}

// ChatCompletion generates a completion. System messages become the system
// instruction; the remaining messages are concatenated into the user content.
func (p *GeminiProvider) ChatCompletion(ctx context.Context, req ChatCompletionRequest) (ChatCompletionResponse, error) {
	config := &genai.GenerateContentConfig{}

	var userParts []string
	for _, m := range req.Messages() {
		if m.Role() == "system" {
			config.SystemInstruction = genai.NewContentFromText(m.Content(), genai.RoleUser)
			continue
		}
		userParts = append(userParts, m.Content())
	}

	if req.MaxTokens() > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens())
	}
	if req.Temperature() > 0 {
		config.Temperature = genai.Ptr(float32(req.Temperature()))
	}
	if req.WebSearch() {
		config.Tools = []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		}
	}

	contents := []*genai.Content{
		genai.NewContentFromText(strings.Join(userParts, "\n\n"), genai.RoleUser),
	}

	var resp *genai.GenerateContentResponse

	err := p.retry.withRetry(ctx, func() error {
		var err error
		resp, err = p.client.Models.GenerateContent(ctx, p.model, contents, config)
		return err
	}, p.isRetryable)

	if err != nil {
		return ChatCompletionResponse{}, wrapError("generate_content", err)
	}

	text := resp.Text()
	if text == "" {
		return ChatCompletionResponse{}, NewProviderError(
			"generate_content", 0, "no text in response", nil,
		)
	}

	var finishReason string
	if len(resp.Candidates) > 0 {
		finishReason = string(resp.Candidates[0].FinishReason)
	}

	var usage Usage
	if resp.UsageMetadata != nil {
		usage = NewUsage(
			int(resp.UsageMetadata.PromptTokenCount),
			int(resp.UsageMetadata.CandidatesTokenCount),
			int(resp.UsageMetadata.TotalTokenCount),
		)
	}

	return NewChatCompletionResponse(text, finishReason, usage), nil
}

// isRetryable determines if an error should be retried.
func (p *GeminiProvider) isRetryable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
	}

	return false
}

var _ Provider = (*GeminiProvider)(nil)
