package firestore_test

import (
	"context"
	"os"
	"testing"

	"github.com/ikshantshukla123/Codediff.ai/pkg/repository/firestore"
	"github.com/ikshantshukla123/Codediff.ai/pkg/repository/testhelper"
	"github.com/m-mizutani/gt"
)

func TestFirestoreRepository(t *testing.T) {
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")

	if projectID == "" || databaseID == "" {
		t.Skip("Firestore credentials not configured (TEST_FIRESTORE_PROJECT_ID, TEST_FIRESTORE_DATABASE_ID)")
	}

	ctx := context.Background()
	repo, err := firestore.New(ctx, projectID, databaseID)
	gt.NoError(t, err)
	defer repo.Close()

	testhelper.TestAll(t, repo)
}

func TestToFirestoreID(t *testing.T) {
	// Valid cases
	id, err := firestore.ToFirestoreID("owner1", "repo1")
	gt.NoError(t, err)
	gt.V(t, id).Equal("owner1:repo1")

	id, err = firestore.ToFirestoreID("Acme", "Payments")
	gt.NoError(t, err)
	gt.V(t, id).Equal("acme:payments")

	// Invalid cases
	_, err = firestore.ToFirestoreID("", "repo1")
	gt.Error(t, err)

	_, err = firestore.ToFirestoreID("owner1", "")
	gt.Error(t, err)

	_, err = firestore.ToFirestoreID("owner:1", "repo1")
	gt.Error(t, err)

	_, err = firestore.ToFirestoreID("owner1", "repo:1")
	gt.Error(t, err)
}
