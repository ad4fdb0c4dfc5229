package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/interfaces"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/mock"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/repository/memory"
	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

// paymentsDiff adds a handler that logs the CVV and builds a query from user input.
const paymentsDiff = `diff --git a/src/payments.js b/src/payments.js
index 1111111..2222222 100644
--- a/src/payments.js
+++ b/src/payments.js
@@ -1,1 +1,6 @@
 const db = require('./db');
+function charge(userId, cvv) {
+  console.log("charging card", cvv);
+  const query = ` + "`SELECT * FROM users WHERE id = ${userId}`" + `;
+  return db.run(query);
+}
`

const safeDiff = `diff --git a/README.md b/README.md
index 1111111..2222222 100644
--- a/README.md
+++ b/README.md
@@ -1,1 +1,2 @@
 # payments
+Run make test before pushing.
`

const (
	testInstallID types.GitHubAppInstallID = 777
	testRepoID    types.RepositoryID       = "repo-payments"
)

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newTestContext() context.Context {
	return logging.CtxWithTime(context.Background(), func() time.Time { return fixedNow })
}

func registerPayments(t *testing.T, repo interfaces.AnalysisRepository, installID types.GitHubAppInstallID) {
	t.Helper()
	gt.NoError(t, repo.PutRepository(context.Background(), &model.Repository{
		ID:             testRepoID,
		Owner:          "acme",
		Name:           "payments",
		InstallationID: installID,
		CreatedAt:      fixedNow,
		UpdatedAt:      fixedNow,
	}))
}

func newGitHubMock(diff string) *mock.GitHubAppMock {
	return &mock.GitHubAppMock{
		GetDiffFunc: func(ctx context.Context, input *interfaces.GetDiffInput) (string, error) {
			return diff, nil
		},
		CreateCommentFunc: func(ctx context.Context, input *interfaces.CreateCommentInput) error {
			return nil
		},
	}
}

func prInput(deliveryID types.DeliveryID) *model.AnalyzePullRequestInput {
	return &model.AnalyzePullRequestInput{
		DeliveryID: deliveryID,
		Owner:      "acme",
		Repo:       "payments",
		PRNumber:   42,
		InstallID:  testInstallID,
		DiffURL:    "https://github.com/acme/payments/pull/42.diff",
	}
}

func newMemory(t *testing.T) *memory.Repository {
	t.Helper()
	repo := memory.New()
	registerPayments(t, repo, testInstallID)
	return repo
}
