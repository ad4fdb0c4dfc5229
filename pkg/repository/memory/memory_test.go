package memory_test

import (
	"testing"

	"github.com/ikshantshukla123/Codediff.ai/pkg/repository/memory"
	"github.com/ikshantshukla123/Codediff.ai/pkg/repository/testhelper"
)

func TestMemoryRepository(t *testing.T) {
	repo := memory.New()
	testhelper.TestAll(t, repo)
}
