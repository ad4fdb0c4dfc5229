package config

import (
	"log/slog"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/infra/ghapp"
	"github.com/urfave/cli/v3"
)

type GitHubApp struct {
	id         types.GitHubAppID
	secret     types.GitHubAppSecret     `masq:"secret"`
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
	baseURL    string
}

func (x *GitHubApp) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.id),
			Sources:     cli.EnvVars("CODEDIFF_GITHUB_APP_ID"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key",
			Category:    "GitHub App",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("CODEDIFF_GITHUB_APP_PRIVATE_KEY"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-app-secret",
			Usage:       "GitHub App Webhook Secret",
			Category:    "GitHub App",
			Destination: (*string)(&x.secret),
			Sources:     cli.EnvVars("CODEDIFF_GITHUB_APP_SECRET"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub API base URL (GitHub Enterprise Server only)",
			Category:    "GitHub App",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("CODEDIFF_GITHUB_API_URL"),
		},
	}
}

func (x GitHubApp) New() (*ghapp.Client, error) {
	var options []ghapp.Option
	if x.baseURL != "" {
		options = append(options, ghapp.WithBaseURL(x.baseURL))
	}
	return ghapp.New(x.id, x.privateKey, options...)
}

func (x GitHubApp) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("ID", int64(x.id)),
		slog.Int("Secret.len", len(x.secret)),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.String("BaseURL", x.baseURL),
	)
}

func (x GitHubApp) Secret() types.GitHubAppSecret {
	return x.secret
}
