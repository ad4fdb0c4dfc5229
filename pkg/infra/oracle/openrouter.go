package oracle

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/interfaces"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sashabaranov/go-openai"
)

const (
	DefaultOpenRouterURL   = "https://openrouter.ai/api/v1"
	DefaultOpenRouterModel = "deepseek/deepseek-chat"
	defaultMaxTokens       = 1000
)

// OpenRouter calls an OpenAI compatible chat completion endpoint.
type OpenRouter struct {
	client    *openai.Client
	model     string
	maxTokens int
}

var _ interfaces.BugOracle = (*OpenRouter)(nil)

type OpenRouterOption func(*openRouterConfig)

type openRouterConfig struct {
	baseURL   string
	model     string
	referer   string
	title     string
	maxTokens int
}

func WithOpenRouterBaseURL(url string) OpenRouterOption {
	return func(x *openRouterConfig) {
		x.baseURL = url
	}
}

func WithOpenRouterModel(model string) OpenRouterOption {
	return func(x *openRouterConfig) {
		x.model = model
	}
}

// WithReferer sets the HTTP-Referer header that OpenRouter uses for app attribution.
func WithReferer(referer string) OpenRouterOption {
	return func(x *openRouterConfig) {
		x.referer = referer
	}
}

func WithMaxTokens(n int) OpenRouterOption {
	return func(x *openRouterConfig) {
		x.maxTokens = n
	}
}

func NewOpenRouter(apiKey types.OracleAPIKey, options ...OpenRouterOption) (*OpenRouter, error) {
	if apiKey == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "oracle API key is empty")
	}

	cfg := &openRouterConfig{
		baseURL:   DefaultOpenRouterURL,
		model:     DefaultOpenRouterModel,
		title:     "CodeDiff AI",
		maxTokens: defaultMaxTokens,
	}
	for _, opt := range options {
		opt(cfg)
	}

	clientConfig := openai.DefaultConfig(string(apiKey))
	clientConfig.BaseURL = cfg.baseURL
	clientConfig.HTTPClient = &http.Client{
		Transport: &headerTransport{
			base: http.DefaultTransport,
			headers: map[string]string{
				"HTTP-Referer": cfg.referer,
				"X-Title":      cfg.title,
			},
		},
	}

	return &OpenRouter{
		client:    openai.NewClientWithConfig(clientConfig),
		model:     cfg.model,
		maxTokens: cfg.maxTokens,
	}, nil
}

func (x *OpenRouter) FindBugs(ctx context.Context, diff string) ([]model.Finding, error) {
	logging.From(ctx).Debug("Requesting bug report from OpenRouter",
		slog.String("model", x.model),
		slog.Int("diffSize", len(diff)),
	)

	resp, err := x.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     x.model,
		MaxTokens: x.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: diff},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, goerr.Wrap(err, "OpenRouter chat completion failed", goerr.V("model", x.model))
	}

	if len(resp.Choices) == 0 {
		return nil, goerr.Wrap(types.ErrDetectorFailure, "OpenRouter returned no choices", goerr.V("model", x.model))
	}

	return ParseReport(resp.Choices[0].Message.Content)
}

type headerTransport struct {
	base    http.RoundTripper
	headers map[string]string
}

func (x *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for key, value := range x.headers {
		if value != "" {
			req.Header.Set(key, value)
		}
	}
	return x.base.RoundTrip(req)
}
