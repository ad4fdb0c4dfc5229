package testhelper

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/interfaces"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/repository"
	"github.com/m-mizutani/gt"
)

// Repository is the full storage surface exercised by TestAll.
type Repository interface {
	interfaces.AnalysisRepository
	interfaces.DeliveryRepository
}

// TestAll runs all test cases for a storage implementation.
// This is the main entry point for testing any AnalysisRepository / DeliveryRepository implementation
func TestAll(t *testing.T, repo Repository) {
	t.Run("RepositoryCRUD", func(t *testing.T) {
		TestRepositoryCRUD(t, repo)
	})
	t.Run("RepositoryCaseInsensitiveLookup", func(t *testing.T) {
		TestRepositoryCaseInsensitiveLookup(t, repo)
	})
	t.Run("AnalysisCRUD", func(t *testing.T) {
		TestAnalysisCRUD(t, repo)
	})
	t.Run("DeliveryCRUD", func(t *testing.T) {
		TestDeliveryCRUD(t, repo)
	})
	t.Run("DeliveryConcurrentCreate", func(t *testing.T) {
		TestDeliveryConcurrentCreate(t, repo)
	})
}

func newTestRepository() *model.Repository {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &model.Repository{
		ID:             types.NewRepositoryID(),
		Owner:          fmt.Sprintf("Owner-%s", uuid.New().String()[:8]),
		Name:           fmt.Sprintf("Repo-%s", uuid.New().String()[:8]),
		InstallationID: 12345,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// TestRepositoryCRUD tests registration and installation updates of Repository
func TestRepositoryCRUD(t *testing.T, repo Repository) {
	ctx := context.Background()

	testRepo := newTestRepository()
	gt.NoError(t, repo.PutRepository(ctx, testRepo))

	retrieved, err := repo.FindRepositoryByName(ctx, testRepo.Owner, testRepo.Name)
	gt.NoError(t, err)
	gt.V(t, retrieved.ID).Equal(testRepo.ID)
	gt.V(t, retrieved.Owner).Equal(testRepo.Owner)
	gt.V(t, retrieved.Name).Equal(testRepo.Name)
	gt.V(t, retrieved.InstallationID).Equal(testRepo.InstallationID)

	// Update installation
	updatedAt := testRepo.UpdatedAt.Add(time.Minute)
	gt.NoError(t, repo.UpdateInstallationID(ctx, testRepo.ID, 67890, updatedAt))

	retrieved, err = repo.FindRepositoryByName(ctx, testRepo.Owner, testRepo.Name)
	gt.NoError(t, err)
	gt.V(t, retrieved.InstallationID).Equal(types.GitHubAppInstallID(67890))
	gt.True(t, retrieved.UpdatedAt.Equal(updatedAt))

	// List repositories
	repos, err := repo.ListRepositories(ctx)
	gt.NoError(t, err)
	found := false
	for _, r := range repos {
		if r.ID == testRepo.ID {
			found = true
		}
	}
	gt.True(t, found)

	// Another ID cannot take the same name
	dup := newTestRepository()
	dup.Owner = strings.ToUpper(testRepo.Owner)
	dup.Name = testRepo.Name
	err = repo.PutRepository(ctx, dup)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrAlreadyExists))

	// Not found
	_, err = repo.FindRepositoryByName(ctx, "nonexistent-"+uuid.New().String()[:8], "repo")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	err = repo.UpdateInstallationID(ctx, types.NewRepositoryID(), 1, time.Now())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestRepositoryCaseInsensitiveLookup tests that owner/name lookups ignore case
func TestRepositoryCaseInsensitiveLookup(t *testing.T, repo Repository) {
	ctx := context.Background()

	testRepo := newTestRepository()
	gt.NoError(t, repo.PutRepository(ctx, testRepo))

	variants := [][2]string{
		{strings.ToLower(testRepo.Owner), strings.ToLower(testRepo.Name)},
		{strings.ToUpper(testRepo.Owner), strings.ToUpper(testRepo.Name)},
		{strings.ToLower(testRepo.Owner), strings.ToUpper(testRepo.Name)},
	}
	for _, v := range variants {
		retrieved, err := repo.FindRepositoryByName(ctx, v[0], v[1])
		gt.NoError(t, err)
		gt.V(t, retrieved.ID).Equal(testRepo.ID)
		// Registered casing is preserved
		gt.V(t, retrieved.Owner).Equal(testRepo.Owner)
	}
}

// TestAnalysisCRUD tests creation, lookup and listing of Analysis
func TestAnalysisCRUD(t *testing.T, repo Repository) {
	ctx := context.Background()

	testRepo := newTestRepository()
	gt.NoError(t, repo.PutRepository(ctx, testRepo))

	base := time.Now().UTC().Truncate(time.Millisecond)
	newAnalysis := func(pr int, createdAt time.Time) *model.Analysis {
		return &model.Analysis{
			ID:            types.NewAnalysisID(),
			RepositoryID:  testRepo.ID,
			RepositoryRef: testRepo.FullName(),
			PRNumber:      pr,
			RiskScore:     30,
			Status:        types.AnalysisStatusSecure,
			IssuesFound:   1,
			Findings: []model.Finding{
				{
					Kind:           "PCI_COMPLIANCE_FAIL",
					Severity:       types.SeverityHigh,
					Title:          "Sensitive Data Logging",
					Description:    "cvv is logged",
					File:           "src/pay.ts",
					Line:           12,
					Recommendation: "Remove the log statement",
					Source:         types.FindingSourcePCI,
					FineRisk:       25000,
				},
			},
			EstimatedFine: 25000,
			DeliveryID:    types.DeliveryID(uuid.NewString()),
			CreatedAt:     createdAt,
		}
	}

	first := newAnalysis(1, base)
	gt.NoError(t, repo.CreateAnalysis(ctx, first))

	retrieved, err := repo.GetAnalysis(ctx, first.ID)
	gt.NoError(t, err)
	gt.V(t, retrieved.ID).Equal(first.ID)
	gt.V(t, retrieved.RepositoryID).Equal(testRepo.ID)
	gt.V(t, retrieved.PRNumber).Equal(1)
	gt.V(t, retrieved.Status).Equal(types.AnalysisStatusSecure)
	gt.V(t, len(retrieved.Findings)).Equal(1)
	gt.V(t, retrieved.Findings[0].Kind).Equal("PCI_COMPLIANCE_FAIL")
	gt.V(t, retrieved.Findings[0].Line).Equal(12)
	gt.V(t, retrieved.EstimatedFine).Equal(int64(25000))
	gt.True(t, retrieved.AttackProof == nil)

	// Create is write-once
	err = repo.CreateAnalysis(ctx, first)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrAlreadyExists))

	// With attack proof
	second := newAnalysis(2, base.Add(time.Second))
	second.RiskScore = 100
	second.Status = types.AnalysisStatusVulnerable
	second.AttackProof = &model.AttackProof{
		Kind:           model.AttackProofKindSQLInjection,
		Target:         "SELECT * FROM users WHERE id = 1",
		Payload:        " ' OR '1'='1",
		ResultingQuery: "SELECT * FROM users WHERE id = 1 ' OR '1'='1",
		Impact:         "Logic Bypass / Authentication Broken",
	}
	gt.NoError(t, repo.CreateAnalysis(ctx, second))

	retrieved, err = repo.GetAnalysis(ctx, second.ID)
	gt.NoError(t, err)
	gt.True(t, retrieved.AttackProof != nil)
	gt.V(t, retrieved.AttackProof.Payload).Equal(" ' OR '1'='1")

	third := newAnalysis(3, base.Add(2*time.Second))
	gt.NoError(t, repo.CreateAnalysis(ctx, third))

	// Newest first, limited
	analyses, err := repo.ListAnalyses(ctx, testRepo.ID, 2)
	gt.NoError(t, err)
	gt.V(t, len(analyses)).Equal(2)
	gt.V(t, analyses[0].ID).Equal(third.ID)
	gt.V(t, analyses[1].ID).Equal(second.ID)

	analyses, err = repo.ListAnalyses(ctx, testRepo.ID, 0)
	gt.NoError(t, err)
	gt.V(t, len(analyses)).Equal(3)

	// Not found
	_, err = repo.GetAnalysis(ctx, types.NewAnalysisID())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestDeliveryCRUD tests the delivery ledger
func TestDeliveryCRUD(t *testing.T, repo Repository) {
	ctx := context.Background()

	delivery := &model.WebhookDelivery{
		DeliveryID: types.DeliveryID(uuid.NewString()),
		EventKind:  "pull_request",
		Payload:    `{"action":"opened"}`,
		CreatedAt:  time.Now().UTC().Truncate(time.Millisecond),
	}
	gt.NoError(t, repo.CreateDelivery(ctx, delivery))

	retrieved, err := repo.GetDelivery(ctx, delivery.DeliveryID)
	gt.NoError(t, err)
	gt.V(t, retrieved.EventKind).Equal("pull_request")
	gt.False(t, retrieved.Processed)

	// Second create is rejected
	err = repo.CreateDelivery(ctx, delivery)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrAlreadyExists))

	processedAt := time.Now().UTC().Truncate(time.Millisecond)
	gt.NoError(t, repo.UpdateDelivery(ctx, delivery.DeliveryID, &model.DeliveryResult{
		Processed:   true,
		ProcessedAt: processedAt,
		Error:       "repository not registered",
	}))

	retrieved, err = repo.GetDelivery(ctx, delivery.DeliveryID)
	gt.NoError(t, err)
	gt.True(t, retrieved.Processed)
	gt.True(t, retrieved.ProcessedAt != nil)
	gt.True(t, retrieved.ProcessedAt.Equal(processedAt))
	gt.V(t, retrieved.Error).Equal("repository not registered")

	// Not found
	missing := types.DeliveryID(uuid.NewString())
	_, err = repo.GetDelivery(ctx, missing)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	err = repo.UpdateDelivery(ctx, missing, &model.DeliveryResult{Processed: true, ProcessedAt: processedAt})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestDeliveryConcurrentCreate tests that exactly one of many racing creates wins
func TestDeliveryConcurrentCreate(t *testing.T, repo Repository) {
	ctx := context.Background()
	id := types.DeliveryID(uuid.NewString())

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.CreateDelivery(ctx, &model.WebhookDelivery{
				DeliveryID: id,
				EventKind:  "pull_request",
				CreatedAt:  time.Now().UTC(),
			})
		}(i)
	}
	wg.Wait()

	var created, duplicated int
	for _, err := range errs {
		switch {
		case err == nil:
			created++
		case errors.Is(err, repository.ErrAlreadyExists):
			duplicated++
		}
	}
	gt.V(t, created).Equal(1)
	gt.V(t, duplicated).Equal(n - 1)
}
