package ghapp_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/interfaces"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/infra/ghapp"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	t.Run("create new GitHub App client with valid inputs", func(t *testing.T) {
		appID := types.GitHubAppID(12345)
		privateKey := types.GitHubAppPrivateKey("test-key")

		_, err := ghapp.New(appID, privateKey)
		gt.NoError(t, err)
	})

	t.Run("create with empty private key fails", func(t *testing.T) {
		client, err := ghapp.New(types.GitHubAppID(12345), types.GitHubAppPrivateKey(""))
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})

	t.Run("create with zero app ID fails", func(t *testing.T) {
		client, err := ghapp.New(types.GitHubAppID(0), types.GitHubAppPrivateKey("test-key"))
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})

	t.Run("HTTPClient returns error with invalid key", func(t *testing.T) {
		client, err := ghapp.New(types.GitHubAppID(12345), types.GitHubAppPrivateKey("invalid-key"))
		gt.NoError(t, err)

		httpClient, err := client.HTTPClient(types.GitHubAppInstallID(67890))
		gt.Error(t, err)
		gt.V(t, httpClient).Equal(nil)
	})
}

func newTestKey(t *testing.T) types.GitHubAppPrivateKey {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	gt.NoError(t, err)
	block := &pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}
	return types.GitHubAppPrivateKey(pem.EncodeToMemory(block))
}

const testDiff = `diff --git a/db.ts b/db.ts
--- a/db.ts
+++ b/db.ts
@@ -1,1 +1,2 @@
 const a = 1;
+const q = ` + "`SELECT * FROM users WHERE id = ${id}`" + `;
`

// newFakeGitHub serves the subset of the GitHub API used by the client.
func newFakeGitHub(t *testing.T) (*httptest.Server, *[]string) {
	var comments []string
	mux := http.NewServeMux()

	mux.HandleFunc("/app/installations/777/access_tokens", func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.Method).Equal(http.MethodPost)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token":      "installation-token",
			"expires_at": time.Now().Add(time.Hour).UTC().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("/repos/acme/payments/pulls/42", func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.Header.Get("Accept")).Equal("application/vnd.github.v3.diff")
		gt.V(t, r.Header.Get("Authorization")).Equal("token installation-token")
		_, _ = io.WriteString(w, testDiff)
	})

	mux.HandleFunc("/acme/payments/pull/42.diff", func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.Header.Get("Accept")).Equal("application/vnd.github.v3.diff")
		_, _ = io.WriteString(w, testDiff)
	})

	mux.HandleFunc("/acme/payments/pull/43.diff", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, strings.Repeat("x", ghapp.MaxDiffSize+100))
	})

	mux.HandleFunc("/acme/payments/pull/44.diff", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	mux.HandleFunc("/repos/acme/payments/issues/42/comments", func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.Method).Equal(http.MethodPost)
		var body struct {
			Body string `json:"body"`
		}
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		comments = append(comments, body.Body)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":1}`)
	})

	mux.HandleFunc("/app/installations", func(w http.ResponseWriter, r *http.Request) {
		gt.True(t, strings.HasPrefix(r.Header.Get("Authorization"), "Bearer "))
		_, _ = io.WriteString(w, `[{"id":777,"account":{"login":"acme"}},{"id":888,"account":{"login":"globex"}}]`)
	})

	mux.HandleFunc("/installation/repositories", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"total_count":1,"repositories":[{"name":"payments","owner":{"login":"acme"},"archived":false}]}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &comments
}

func TestClientWithFakeGitHub(t *testing.T) {
	srv, comments := newFakeGitHub(t)
	client := gt.R1(ghapp.New(1, newTestKey(t), ghapp.WithBaseURL(srv.URL))).NoError(t)
	ctx := context.Background()

	t.Run("GetDiff via pulls API", func(t *testing.T) {
		diff, err := client.GetDiff(ctx, &interfaces.GetDiffInput{
			Owner:     "acme",
			Repo:      "payments",
			PRNumber:  42,
			InstallID: 777,
		})
		gt.NoError(t, err)
		gt.V(t, diff).Equal(testDiff)
	})

	t.Run("GetDiff via diff URL", func(t *testing.T) {
		diff, err := client.GetDiff(ctx, &interfaces.GetDiffInput{
			Owner:     "acme",
			Repo:      "payments",
			PRNumber:  42,
			DiffURL:   srv.URL + "/acme/payments/pull/42.diff",
			InstallID: 777,
		})
		gt.NoError(t, err)
		gt.V(t, diff).Equal(testDiff)
	})

	t.Run("GetDiff truncates large body", func(t *testing.T) {
		diff, err := client.GetDiff(ctx, &interfaces.GetDiffInput{
			DiffURL:   srv.URL + "/acme/payments/pull/43.diff",
			InstallID: 777,
		})
		gt.NoError(t, err)
		gt.V(t, len(diff)).Equal(ghapp.MaxDiffSize)
	})

	t.Run("GetDiff fails on non-200", func(t *testing.T) {
		_, err := client.GetDiff(ctx, &interfaces.GetDiffInput{
			DiffURL:   srv.URL + "/acme/payments/pull/44.diff",
			InstallID: 777,
		})
		gt.Error(t, err)
	})

	t.Run("CreateComment", func(t *testing.T) {
		err := client.CreateComment(ctx, &interfaces.CreateCommentInput{
			Owner:     "acme",
			Repo:      "payments",
			PRNumber:  42,
			Body:      "## Security report",
			InstallID: 777,
		})
		gt.NoError(t, err)
		gt.V(t, len(*comments)).Equal(1)
		gt.V(t, (*comments)[0]).Equal("## Security report")
	})

	t.Run("ListInstallations", func(t *testing.T) {
		installations, err := client.ListInstallations(ctx)
		gt.NoError(t, err)
		gt.V(t, len(installations)).Equal(2)
		gt.V(t, installations[0].ID).Equal(types.GitHubAppInstallID(777))
		gt.V(t, installations[1].Account).Equal("globex")
	})

	t.Run("ListInstallationRepos", func(t *testing.T) {
		repos, err := client.ListInstallationRepos(ctx, 777)
		gt.NoError(t, err)
		gt.V(t, len(repos)).Equal(1)
		gt.V(t, repos[0].Owner).Equal("acme")
		gt.V(t, repos[0].Name).Equal("payments")
	})
}

func TestListInstallations_Integration(t *testing.T) {
	appIDStr := os.Getenv("TEST_GITHUB_APP_ID")
	privateKey := os.Getenv("TEST_GITHUB_PRIVATE_KEY")

	if appIDStr == "" || privateKey == "" {
		t.Skip("TEST_GITHUB_APP_ID and TEST_GITHUB_PRIVATE_KEY must be set")
	}

	appID, err := strconv.ParseInt(appIDStr, 10, 64)
	gt.NoError(t, err)

	client, err := ghapp.New(types.GitHubAppID(appID), types.GitHubAppPrivateKey(privateKey))
	gt.NoError(t, err)

	ctx := context.Background()
	installations, err := client.ListInstallations(ctx)
	gt.NoError(t, err)

	for _, inst := range installations {
		repos, err := client.ListInstallationRepos(ctx, inst.ID)
		gt.NoError(t, err)

		t.Logf("installation %d (%s): %d repositories", inst.ID, inst.Account, len(repos))
		for _, repo := range repos {
			gt.V(t, repo.Owner).NotEqual("")
			gt.V(t, repo.Name).NotEqual("")
		}
	}
}
