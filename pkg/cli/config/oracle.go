package config

import (
	"context"
	"log/slog"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/interfaces"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/infra/oracle"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

const (
	OracleProviderOpenRouter = "openrouter"
	OracleProviderGemini     = "gemini"
	OracleProviderNone       = "none"
)

type Oracle struct {
	provider string
	apiKey   types.OracleAPIKey `masq:"secret"`
	model    string
	baseURL  string
	referer  string
}

func (x *Oracle) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "oracle-provider",
			Usage:       "Bug oracle provider [openrouter|gemini|none]",
			Category:    "Bug Oracle",
			Sources:     cli.EnvVars("CODEDIFF_ORACLE_PROVIDER"),
			Value:       OracleProviderOpenRouter,
			Destination: &x.provider,
		},
		&cli.StringFlag{
			Name:        "oracle-api-key",
			Usage:       "API key of the bug oracle provider. The oracle is disabled if empty",
			Category:    "Bug Oracle",
			Sources:     cli.EnvVars("CODEDIFF_ORACLE_API_KEY", "OPENROUTER_API_KEY"),
			Destination: (*string)(&x.apiKey),
		},
		&cli.StringFlag{
			Name:        "oracle-model",
			Usage:       "Model name. Provider default if empty",
			Category:    "Bug Oracle",
			Sources:     cli.EnvVars("CODEDIFF_ORACLE_MODEL"),
			Destination: &x.model,
		},
		&cli.StringFlag{
			Name:        "oracle-base-url",
			Usage:       "API base URL. Provider default if empty",
			Category:    "Bug Oracle",
			Sources:     cli.EnvVars("CODEDIFF_ORACLE_BASE_URL"),
			Destination: &x.baseURL,
		},
		&cli.StringFlag{
			Name:        "oracle-referer",
			Usage:       "HTTP-Referer header sent to OpenRouter",
			Category:    "Bug Oracle",
			Sources:     cli.EnvVars("CODEDIFF_ORACLE_REFERER"),
			Destination: &x.referer,
		},
	}
}

func (x *Oracle) Enabled() bool {
	return x.provider != OracleProviderNone && x.apiKey != ""
}

func (x *Oracle) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Provider", x.provider),
		slog.Int("APIKey.len", len(x.apiKey)),
		slog.String("Model", x.model),
		slog.String("BaseURL", x.baseURL),
	)
}

// NewOracle returns nil without error when the oracle is disabled.
func (x *Oracle) NewOracle(ctx context.Context) (interfaces.BugOracle, error) {
	if !x.Enabled() {
		return nil, nil
	}

	switch x.provider {
	case OracleProviderOpenRouter:
		var options []oracle.OpenRouterOption
		if x.model != "" {
			options = append(options, oracle.WithOpenRouterModel(x.model))
		}
		if x.baseURL != "" {
			options = append(options, oracle.WithOpenRouterBaseURL(x.baseURL))
		}
		if x.referer != "" {
			options = append(options, oracle.WithReferer(x.referer))
		}
		client, err := oracle.NewOpenRouter(x.apiKey, options...)
		if err != nil {
			return nil, err
		}
		return client, nil

	case OracleProviderGemini:
		var options []oracle.GeminiOption
		if x.model != "" {
			options = append(options, oracle.WithGeminiModel(x.model))
		}
		if x.baseURL != "" {
			options = append(options, oracle.WithGeminiBaseURL(x.baseURL))
		}
		client, err := oracle.NewGemini(ctx, x.apiKey, options...)
		if err != nil {
			return nil, err
		}
		return client, nil

	default:
		return nil, goerr.New("unsupported oracle provider", goerr.V("provider", x.provider))
	}
}
