package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/interfaces"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/repository"
	"github.com/ikshantshukla123/Codediff.ai/pkg/security/validator"
	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// AnalyzePullRequest runs the whole pipeline for one pull request event. The caller's cancellation is
// ignored: once started, the run always reaches DONE or FAILED and marks the delivery processed.
func (x *UseCase) AnalyzePullRequest(ctx context.Context, input *model.AnalyzePullRequestInput) (*model.Analysis, error) {
	if input == nil {
		return nil, goerr.Wrap(types.ErrValidationFailed, "input is required")
	}

	ctx = context.WithoutCancel(ctx)
	ctx = logging.Attach(ctx,
		"repo", input.RepoRef(),
		"pr_number", input.PRNumber,
		"delivery_id", input.DeliveryID,
	)

	p := newPipeline(ctx, x.clients.Metrics())
	analysis, err := x.runPipeline(ctx, p, input)
	if err != nil {
		err = p.fail(ctx, err)
		x.markProcessed(ctx, input.DeliveryID, err)
		return nil, err
	}

	p.advance(ctx, types.PipelineDone)
	x.markProcessed(ctx, input.DeliveryID, nil)

	logging.From(ctx).Info("Pull request analyzed",
		"analysis_id", analysis.ID,
		"status", analysis.Status,
		"risk_score", analysis.RiskScore,
	)
	return analysis, nil
}

func (x *UseCase) runPipeline(ctx context.Context, p *pipeline, input *model.AnalyzePullRequestInput) (*model.Analysis, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := validator.ValidateRepository(input.Owner, input.Repo); err != nil {
		return nil, err
	}
	if err := validator.ValidatePRNumber(input.PRNumber); err != nil {
		return nil, err
	}
	if x.clients.GitHubApp() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App is not configured")
	}

	raw, err := x.clients.GitHubApp().GetDiff(ctx, &interfaces.GetDiffInput{
		Owner:     input.Owner,
		Repo:      input.Repo,
		PRNumber:  input.PRNumber,
		DiffURL:   input.DiffURL,
		InstallID: input.InstallID,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch diff")
	}

	p.advance(ctx, types.PipelineValidating)
	diff, err := validator.Validate(raw)
	if err != nil {
		return nil, err
	}

	p.advance(ctx, types.PipelineDetecting)
	det := x.detect(ctx, diff)

	p.advance(ctx, types.PipelineAggregating)
	analysis := x.aggregate(ctx, input.RepoRef(), input.PRNumber, det)
	analysis.DeliveryID = input.DeliveryID

	p.advance(ctx, types.PipelinePersisting)
	repo, err := x.lookupRepository(ctx, input.Owner, input.Repo)
	if err != nil {
		return nil, err
	}
	if _, err := x.reconcileRepository(ctx, repo, input.InstallID); err != nil {
		logging.From(ctx).Warn("Failed to reconcile installation ID", "error", err)
	}

	analysis.RepositoryID = repo.ID
	analysis.RepositoryRef = repo.FullName()
	analysis.DiffArchive = x.archiveDiff(ctx, analysis, raw)

	if err := x.persistAnalysis(ctx, analysis); err != nil {
		x.postReport(ctx, input, RenderReport(analysis, false))
		return nil, err
	}
	x.exportAnalysis(ctx, analysis)
	x.clients.Metrics().Analysis(analysis.Status)

	p.advance(ctx, types.PipelineNotifying)
	x.postReport(ctx, input, RenderReport(analysis, true))

	return analysis, nil
}

func (x *UseCase) lookupRepository(ctx context.Context, owner, name string) (*model.Repository, error) {
	store := x.clients.AnalysisRepository()
	if store == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "analysis repository is not configured")
	}

	repo, err := store.FindRepositoryByName(ctx, owner, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(types.ErrUnknownRepository, "repository is not registered",
				goerr.V("owner", owner),
				goerr.V("name", name),
			)
		}
		return nil, goerr.Wrap(err, "failed to look up repository",
			goerr.V("owner", owner),
			goerr.V("name", name),
		)
	}

	return repo, nil
}

// archiveDiff stores the raw diff and returns its URI. Failures are logged and yield an empty URI.
func (x *UseCase) archiveDiff(ctx context.Context, analysis *model.Analysis, raw string) string {
	archive := x.clients.DiffArchive()
	if archive == nil {
		return ""
	}

	key := fmt.Sprintf("%s/%d/%s.diff", strings.ToLower(analysis.RepositoryRef), analysis.PRNumber, analysis.ID)
	uri, err := archive.Put(ctx, key, []byte(raw))
	if err != nil {
		logging.From(ctx).Warn("Failed to archive diff", "key", key, "error", err)
		return ""
	}

	return uri
}

// persistAnalysis creates the analysis with exponential backoff. The analysis ID is fixed before the
// first attempt, so ErrAlreadyExists means an earlier attempt was committed.
func (x *UseCase) persistAnalysis(ctx context.Context, analysis *model.Analysis) error {
	store := x.clients.AnalysisRepository()

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = x.persistInitialInterval
	b := backoff.WithContext(backoff.WithMaxRetries(bo, x.persistMaxRetries), ctx)

	op := func() error {
		err := store.CreateAnalysis(ctx, analysis)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, repository.ErrAlreadyExists):
			logging.From(ctx).Info("Analysis already stored", "analysis_id", analysis.ID)
			return nil
		case errors.Is(err, repository.ErrInvalidInput):
			return backoff.Permanent(err)
		default:
			return err
		}
	}

	notify := func(err error, d time.Duration) {
		x.clients.Metrics().PersistRetry()
		logging.From(ctx).Warn("Retrying to store analysis", "error", err, "backoff", d)
	}

	if err := backoff.RetryNotify(op, b, notify); err != nil {
		return goerr.Wrap(err, "failed to store analysis",
			goerr.V("analysis_id", analysis.ID),
			goerr.V("max_retries", x.persistMaxRetries),
		)
	}

	return nil
}

func (x *UseCase) postReport(ctx context.Context, input *model.AnalyzePullRequestInput, body string) {
	err := x.clients.GitHubApp().CreateComment(ctx, &interfaces.CreateCommentInput{
		Owner:     input.Owner,
		Repo:      input.Repo,
		PRNumber:  input.PRNumber,
		Body:      body,
		InstallID: input.InstallID,
	})
	if err != nil {
		logging.From(ctx).Warn("Failed to post analysis report", "error", err)
	}
}
