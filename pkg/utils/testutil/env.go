package testutil

import (
	"os"
	"strings"
	"testing"
)

// GetEnvOrSkip returns the value of the environment variable. If not set, skip the test.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	return GetEnvsOrSkip(t, key)[0]
}

// GetEnvsOrSkip returns values of all keys in order. The test is skipped, naming every missing key, unless
// all of them are set. Cloud-backed tests need a project and a dataset or bucket together.
func GetEnvsOrSkip(t *testing.T, keys ...string) []string {
	t.Helper()

	values := make([]string, len(keys))
	var missing []string
	for i, key := range keys {
		values[i] = os.Getenv(key)
		if values[i] == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		t.Skipf("Environment variable %s is not set, skipping test", strings.Join(missing, ", "))
	}
	return values
}
