package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/interfaces"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/errutil"
	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

var (
	errInvalidSignature = goerr.New("invalid webhook signature")
	errUnsupportedEvent = goerr.New("unsupported webhook event")
)

const (
	webhookAccepted     = "accepted"
	webhookDuplicate    = "duplicate"
	webhookIgnored      = "ignored"
	webhookUnauthorized = "unauthorized"
	webhookBadRequest   = "bad_request"
	webhookError        = "error"
)

// parseGitHubAppEvent verifies the signature and decodes the event. Without a secret the signature is
// not checked.
func parseGitHubAppEvent(r *http.Request, key types.GitHubAppSecret) (any, []byte, error) {
	payload, err := github.ValidatePayload(r, []byte(key))
	if err != nil {
		return nil, nil, goerr.Wrap(errInvalidSignature, err.Error())
	}

	event, err := github.ParseWebHook(github.WebHookType(r), payload)
	if err != nil {
		return nil, nil, goerr.Wrap(errUnsupportedEvent, err.Error(),
			goerr.V("event", github.WebHookType(r)),
		)
	}

	return event, payload, nil
}

func handleGitHubAppEvent(uc interfaces.UseCase, cfg *config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		eventType := github.WebHookType(r)
		deliveryID := github.DeliveryID(r)
		ctx = logging.Attach(ctx, slog.String("event", eventType), slog.String("delivery_id", deliveryID))

		reply := func(code int, result, body string) {
			cfg.metrics.WebhookRequest(eventType, result)
			safeWrite(w, code, []byte(body))
		}

		event, payload, err := parseGitHubAppEvent(r, cfg.ghSecret)
		if err != nil {
			if errors.Is(err, errInvalidSignature) {
				logging.From(ctx).Warn("Rejected GitHub App event", slog.Any("error", err))
				reply(http.StatusUnauthorized, webhookUnauthorized, `{"status":"unauthorized"}`)
				return
			}
			logging.From(ctx).Warn("Unparsable GitHub App event", slog.Any("error", err))
			reply(http.StatusBadRequest, webhookBadRequest, `{"status":"bad request"}`)
			return
		}

		switch ev := event.(type) {
		case *github.PullRequestEvent:
			input := pullRequestEventToInput(ctx, ev, deliveryID)
			if input == nil {
				reply(http.StatusOK, webhookIgnored, `{"status":"ok","message":"no analysis required"}`)
				return
			}

			admission, err := uc.AdmitDelivery(ctx, &model.WebhookDelivery{
				DeliveryID: types.DeliveryID(deliveryID),
				EventKind:  eventType,
				Payload:    string(payload),
				CreatedAt:  logging.CtxTime(ctx).UTC(),
			})
			if err != nil {
				errutil.HandleError(ctx, "fail to admit webhook delivery", err)
				reply(http.StatusInternalServerError, webhookError, `{"status":"error"}`)
				return
			}
			if admission == types.AdmissionDuplicate {
				reply(http.StatusOK, webhookDuplicate, `{"status":"ok","message":"duplicate delivery"}`)
				return
			}

			// The request context is cancelled once the response is sent
			go runAnalysis(DetachContext(ctx), uc, input)

			reply(http.StatusAccepted, webhookAccepted, `{"status":"accepted","message":"analysis enqueued"}`)

		case *github.InstallationEvent, *github.InstallationRepositoriesEvent:
			input := installationEventToInput(ctx, ev)
			if input == nil {
				reply(http.StatusOK, webhookIgnored, `{"status":"ok","message":"nothing to reconcile"}`)
				return
			}

			if err := uc.ReconcileInstallation(ctx, input); err != nil {
				errutil.HandleError(ctx, "fail to reconcile installation", err)
				reply(http.StatusInternalServerError, webhookError, `{"status":"error"}`)
				return
			}
			reply(http.StatusOK, webhookAccepted, `{"status":"ok"}`)

		default:
			logging.From(ctx).Debug("Ignore event", slog.String("type", fmt.Sprintf("%T", event)))
			reply(http.StatusOK, webhookIgnored, `{"status":"ok","message":"event ignored"}`)
		}
	}
}

// runAnalysis is started in its own goroutine per admitted delivery.
func runAnalysis(ctx context.Context, uc interfaces.UseCase, input *model.AnalyzePullRequestInput) {
	logger := logging.From(ctx)
	logger.Info("Starting pull request analysis")

	analysis, err := uc.AnalyzePullRequest(ctx, input)
	if err != nil {
		if errors.Is(err, types.ErrRejectedInput) {
			logger.Warn("Pull request input rejected", slog.Any("error", err))
			return
		}
		errutil.HandleError(ctx, "pull request analysis failed", err)
		return
	}

	logger.Info("Pull request analysis completed",
		slog.Any("analysis_id", analysis.ID),
		slog.Any("status", analysis.Status),
		slog.Int("risk_score", analysis.RiskScore),
	)
}

func pullRequestEventToInput(ctx context.Context, ev *github.PullRequestEvent, deliveryID string) *model.AnalyzePullRequestInput {
	if ev.GetAction() != "opened" && ev.GetAction() != "synchronize" {
		logging.From(ctx).Debug("ignore PR event", slog.String("action", ev.GetAction()))
		return nil
	}
	if ev.GetPullRequest().GetDraft() {
		logging.From(ctx).Debug("ignore draft PR", slog.String("action", ev.GetAction()))
		return nil
	}

	pr := ev.GetPullRequest()
	number := pr.GetNumber()
	if number == 0 {
		number = ev.GetNumber()
	}

	return &model.AnalyzePullRequestInput{
		DeliveryID: types.DeliveryID(deliveryID),
		Owner:      ev.GetRepo().GetOwner().GetLogin(),
		Repo:       ev.GetRepo().GetName(),
		PRNumber:   number,
		InstallID:  types.GitHubAppInstallID(ev.GetInstallation().GetID()),
		DiffURL:    pr.GetDiffURL(),
	}
}

// installationEventToInput returns nil for events that remove access.
func installationEventToInput(ctx context.Context, event any) *model.ReconcileInstallationInput {
	var (
		installID int64
		repos     []*github.Repository
	)

	switch ev := event.(type) {
	case *github.InstallationEvent:
		switch ev.GetAction() {
		case "created", "new_permissions_accepted", "unsuspend":
		default:
			return nil
		}
		installID = ev.GetInstallation().GetID()
		repos = ev.Repositories

	case *github.InstallationRepositoriesEvent:
		if ev.GetAction() != "added" {
			return nil
		}
		installID = ev.GetInstallation().GetID()
		repos = ev.RepositoriesAdded

	default:
		return nil
	}

	input := &model.ReconcileInstallationInput{InstallID: types.GitHubAppInstallID(installID)}
	for _, repo := range repos {
		owner, name, ok := strings.Cut(repo.GetFullName(), "/")
		if !ok {
			logging.From(ctx).Warn("ignore repository without full name", slog.String("name", repo.GetName()))
			continue
		}
		input.Repositories = append(input.Repositories, &model.GitHubAPIRepository{
			Owner: owner,
			Name:  name,
		})
	}

	if installID == 0 || len(input.Repositories) == 0 {
		return nil
	}
	return input
}
