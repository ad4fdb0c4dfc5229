package ghapp

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/interfaces"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/logging"
	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

const (
	defaultBaseURL = "https://api.github.com"

	// MaxDiffSize caps the diff body read from GitHub.
	MaxDiffSize = 1 << 20

	acceptDiff = "application/vnd.github.v3.diff"
)

type Client struct {
	appID     types.GitHubAppID
	pem       types.GitHubAppPrivateKey
	baseURL   string
	transport http.RoundTripper
}

var _ interfaces.GitHubApp = (*Client)(nil)

type Option func(*Client)

// WithBaseURL replaces the GitHub API endpoint, e.g. for GitHub Enterprise.
func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

func WithTransport(tr http.RoundTripper) Option {
	return func(x *Client) {
		x.transport = tr
	}
}

func New(appID types.GitHubAppID, pem types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	client := &Client{
		appID:     appID,
		pem:       pem,
		baseURL:   defaultBaseURL,
		transport: http.DefaultTransport,
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

func (x *Client) newGitHubClient(httpClient *http.Client) (*github.Client, error) {
	client := github.NewClient(httpClient)
	if x.baseURL != defaultBaseURL {
		baseURL, err := url.Parse(x.baseURL + "/")
		if err != nil {
			return nil, goerr.Wrap(err, "invalid GitHub base URL", goerr.V("baseURL", x.baseURL))
		}
		client.BaseURL = baseURL
	}
	return client, nil
}

func (x *Client) buildGithubClient(installID types.GitHubAppInstallID) (*github.Client, error) {
	httpClient, err := x.buildGithubHTTPClient(installID)
	if err != nil {
		return nil, err
	}
	return x.newGitHubClient(httpClient)
}

func (x *Client) buildGithubHTTPClient(installID types.GitHubAppInstallID) (*http.Client, error) {
	itr, err := ghinstallation.New(x.transport, int64(x.appID), int64(installID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "Failed to create github client")
	}
	itr.BaseURL = x.baseURL

	client := &http.Client{Transport: itr}
	return client, nil
}

func (x *Client) buildAppClient() (*github.Client, error) {
	itr, err := ghinstallation.NewAppsTransport(x.transport, int64(x.appID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create app transport")
	}
	itr.BaseURL = x.baseURL
	return x.newGitHubClient(&http.Client{Transport: itr})
}

func (x *Client) HTTPClient(installID types.GitHubAppInstallID) (*http.Client, error) {
	return x.buildGithubHTTPClient(installID)
}

// GetDiff fetches the unified diff of a pull request. DiffURL is used when set,
// otherwise the pulls API. The body is truncated at MaxDiffSize.
func (x *Client) GetDiff(ctx context.Context, input *interfaces.GetDiffInput) (string, error) {
	logging.From(ctx).Debug("Sending GetDiff request",
		slog.Any("appID", x.appID),
		slog.Any("input", input),
	)

	if input.DiffURL == "" {
		client, err := x.buildGithubClient(input.InstallID)
		if err != nil {
			return "", err
		}

		diff, _, err := client.PullRequests.GetRaw(ctx, input.Owner, input.Repo, input.PRNumber, github.RawOptions{Type: github.Diff})
		if err != nil {
			return "", goerr.Wrap(err, "failed to get pull request diff",
				goerr.V("owner", input.Owner),
				goerr.V("repo", input.Repo),
				goerr.V("prNumber", input.PRNumber),
			)
		}
		return capDiff(ctx, diff), nil
	}

	httpClient, err := x.buildGithubHTTPClient(input.InstallID)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, input.DiffURL, nil)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create diff request", goerr.V("url", input.DiffURL))
	}
	req.Header.Set("Accept", acceptDiff)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", goerr.Wrap(err, "failed to fetch diff", goerr.V("url", input.DiffURL))
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", goerr.New("unexpected status of diff response",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
			goerr.V("url", input.DiffURL),
		)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxDiffSize+1))
	if err != nil {
		return "", goerr.Wrap(err, "failed to read diff body", goerr.V("url", input.DiffURL))
	}

	return capDiff(ctx, string(body)), nil
}

func capDiff(ctx context.Context, diff string) string {
	if len(diff) <= MaxDiffSize {
		return diff
	}
	logging.From(ctx).Warn("Diff exceeds size limit, truncated",
		slog.Int("size", len(diff)),
		slog.Int("limit", MaxDiffSize),
	)
	return diff[:MaxDiffSize]
}

func (x *Client) CreateComment(ctx context.Context, input *interfaces.CreateCommentInput) error {
	client, err := x.buildGithubClient(input.InstallID)
	if err != nil {
		return err
	}

	comment := &github.IssueComment{Body: github.String(input.Body)}
	if _, _, err := client.Issues.CreateComment(ctx, input.Owner, input.Repo, input.PRNumber, comment); err != nil {
		return goerr.Wrap(err, "failed to create comment",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
			goerr.V("prNumber", input.PRNumber),
		)
	}

	logging.From(ctx).Info("Posted pull request comment",
		slog.String("repo", input.Owner+"/"+input.Repo),
		slog.Int("prNumber", input.PRNumber),
	)
	return nil
}

func (x *Client) ListInstallations(ctx context.Context) ([]*model.GitHubInstallation, error) {
	client, err := x.buildAppClient()
	if err != nil {
		return nil, err
	}

	var installations []*model.GitHubInstallation
	opts := &github.ListOptions{PerPage: 100}

	for {
		result, resp, err := client.Apps.ListInstallations(ctx, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list installations")
		}

		for _, inst := range result {
			installations = append(installations, &model.GitHubInstallation{
				ID:      types.GitHubAppInstallID(inst.GetID()),
				Account: inst.GetAccount().GetLogin(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logging.From(ctx).Info("Listed installations", slog.Int("count", len(installations)))
	return installations, nil
}

func (x *Client) ListInstallationRepos(ctx context.Context, installID types.GitHubAppInstallID) ([]*model.GitHubAPIRepository, error) {
	client, err := x.buildGithubClient(installID)
	if err != nil {
		return nil, err
	}

	var allRepos []*model.GitHubAPIRepository
	opts := &github.ListOptions{PerPage: 100}

	for {
		result, resp, err := client.Apps.ListRepos(ctx, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list installation repos")
		}

		for _, repo := range result.Repositories {
			allRepos = append(allRepos, &model.GitHubAPIRepository{
				Owner:    repo.GetOwner().GetLogin(),
				Name:     repo.GetName(),
				Archived: repo.GetArchived(),
				Disabled: repo.GetDisabled(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logging.From(ctx).Info("Listed installation repos",
		slog.Int("count", len(allRepos)),
		slog.Any("installID", installID),
	)

	return allRepos, nil
}
