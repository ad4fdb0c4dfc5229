package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ikshantshukla123/Codediff.ai/pkg/cli"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

const vulnerableDiff = `diff --git a/src/payments.js b/src/payments.js
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
--- a/README.md
+++ b/README.md
@@ -1,1 +1,2 @@
 # payments
+Run the service with make run.
`

func runAnalyze(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	argv := append([]string{
		"codediff", "--log-output", "stderr", "--log-level", "error",
		"analyze", "--oracle-provider", "none",
	}, args...)

	err := cli.New(
		cli.WithStdout(&stdout),
		cli.WithStdin(strings.NewReader(stdin)),
	).Run(argv)
	return stdout.String(), err
}

func TestAnalyzeCommand(t *testing.T) {
	t.Run("json output from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pr.diff")
		gt.NoError(t, os.WriteFile(path, []byte(vulnerableDiff), 0o600))

		out, err := runAnalyze(t, "", "--diff-file", path, "--owner", "acme", "--repo", "payments", "--format", "json")
		gt.NoError(t, err)

		var analysis model.Analysis
		gt.NoError(t, json.Unmarshal([]byte(out), &analysis))
		gt.V(t, analysis.Status).Equal(types.AnalysisStatusVulnerable)
		gt.V(t, analysis.RepositoryRef).Equal("acme/payments")
		gt.True(t, analysis.IssuesFound >= 2)
		gt.V(t, analysis.AttackProof).NotEqual(nil)
	})

	t.Run("markdown output from stdin", func(t *testing.T) {
		out, err := runAnalyze(t, safeDiff, "--owner", "acme", "--repo", "payments")
		gt.NoError(t, err)

		gt.True(t, strings.HasPrefix(out, "## CodeDiff Security Analysis"))
		gt.True(t, strings.Contains(out, "No issues found."))
		gt.False(t, strings.Contains(out, "could not be saved"))
	})

	t.Run("fail on vulnerable", func(t *testing.T) {
		_, err := runAnalyze(t, vulnerableDiff, "--owner", "acme", "--repo", "payments", "--fail-on-vulnerable")
		gt.Error(t, err)
	})

	t.Run("safe diff passes fail-on-vulnerable", func(t *testing.T) {
		_, err := runAnalyze(t, safeDiff, "--owner", "acme", "--repo", "payments", "--fail-on-vulnerable")
		gt.NoError(t, err)
	})

	t.Run("rejected diff", func(t *testing.T) {
		_, err := runAnalyze(t, "+eval(userInput)\n", "--owner", "acme", "--repo", "payments")
		gt.Error(t, err)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := runAnalyze(t, safeDiff, "--owner", "acme", "--repo", "payments", "--format", "xml")
		gt.Error(t, err)
	})

	t.Run("missing diff file", func(t *testing.T) {
		_, err := runAnalyze(t, "", "--diff-file", filepath.Join(t.TempDir(), "none.diff"), "--owner", "acme", "--repo", "payments")
		gt.Error(t, err)
	})
}

func TestSyncRequiresStore(t *testing.T) {
	t.Setenv("CODEDIFF_DATABASE_URL", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("CODEDIFF_FIRESTORE_PROJECT_ID", "")

	err := cli.New().Run([]string{
		"codediff", "--log-output", "stderr", "--log-level", "error",
		"sync",
		"--github-app-id", "1",
		"--github-app-private-key", "dummy-key",
	})
	gt.Error(t, err)
}
