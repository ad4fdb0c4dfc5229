package oracle

import (
	"context"
	"log/slog"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/interfaces"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.5-flash"

// Gemini calls the Gemini API with a JSON response type.
type Gemini struct {
	client *genai.Client
	model  string
}

var _ interfaces.BugOracle = (*Gemini)(nil)

type GeminiOption func(*geminiConfig)

type geminiConfig struct {
	model   string
	baseURL string
}

func WithGeminiModel(model string) GeminiOption {
	return func(x *geminiConfig) {
		x.model = model
	}
}

func WithGeminiBaseURL(url string) GeminiOption {
	return func(x *geminiConfig) {
		x.baseURL = url
	}
}

func NewGemini(ctx context.Context, apiKey types.OracleAPIKey, options ...GeminiOption) (*Gemini, error) {
	if apiKey == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "oracle API key is empty")
	}

	cfg := &geminiConfig{model: DefaultGeminiModel}
	for _, opt := range options {
		opt(cfg)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  string(apiKey),
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.baseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.baseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Gemini client")
	}

	return &Gemini{client: client, model: cfg.model}, nil
}

func (x *Gemini) FindBugs(ctx context.Context, diff string) ([]model.Finding, error) {
	logging.From(ctx).Debug("Requesting bug report from Gemini",
		slog.String("model", x.model),
		slog.Int("diffSize", len(diff)),
	)

	resp, err := x.client.Models.GenerateContent(ctx, x.model, genai.Text(diff), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	})
	if err != nil {
		return nil, goerr.Wrap(err, "Gemini generate content failed", goerr.V("model", x.model))
	}

	return ParseReport(resp.Text())
}
