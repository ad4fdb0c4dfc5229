package oracle_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ikshantshukla123/Codediff.ai/pkg/infra/oracle"
	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func newFakeOpenRouter(t *testing.T, content string, status int) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.URL.Path).Equal("/chat/completions")
		gt.V(t, r.Header.Get("Authorization")).Equal("Bearer test-key")
		gt.V(t, r.Header.Get("X-Title")).Equal("CodeDiff AI")
		gt.V(t, r.Header.Get("HTTP-Referer")).Equal("https://codediff.example")

		var req struct {
			Model          string `json:"model"`
			ResponseFormat struct {
				Type string `json:"type"`
			} `json:"response_format"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gt.V(t, req.Model).Equal(oracle.DefaultOpenRouterModel)
		gt.V(t, req.ResponseFormat.Type).Equal("json_object")
		gt.V(t, len(req.Messages)).Equal(2)
		gt.True(t, strings.HasPrefix(req.Messages[1].Content, "diff --git"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"insufficient credits","type":"payment_required"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   oracle.DefaultOpenRouterModel,
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message":       map[string]any{"role": "assistant", "content": content},
				},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenRouter(t *testing.T) {
	ctx := context.Background()
	diff := "diff --git a/pay.ts b/pay.ts\n+balance = balance - amount"

	t.Run("returns findings", func(t *testing.T) {
		srv := newFakeOpenRouter(t, `{"bugs":[{"type":"Race Condition","file":"pay.ts","line":1,"description":"Update without lock","severity":"HIGH"}]}`, http.StatusOK)
		client := gt.R1(oracle.NewOpenRouter("test-key",
			oracle.WithOpenRouterBaseURL(srv.URL),
			oracle.WithReferer("https://codediff.example"),
		)).NoError(t)

		findings, err := client.FindBugs(ctx, diff)
		gt.NoError(t, err)
		gt.V(t, len(findings)).Equal(1)
		gt.V(t, findings[0].Kind).Equal("Race Condition")
	})

	t.Run("API error", func(t *testing.T) {
		srv := newFakeOpenRouter(t, "", http.StatusPaymentRequired)
		client := gt.R1(oracle.NewOpenRouter("test-key",
			oracle.WithOpenRouterBaseURL(srv.URL),
			oracle.WithReferer("https://codediff.example"),
		)).NoError(t)

		_, err := client.FindBugs(ctx, diff)
		gt.Error(t, err)
	})

	t.Run("empty API key", func(t *testing.T) {
		_, err := oracle.NewOpenRouter("")
		gt.Error(t, err)
	})
}

func TestOpenRouter_Integration(t *testing.T) {
	apiKey := testutil.GetEnvOrSkip(t, "TEST_OPENROUTER_API_KEY")

	client := gt.R1(oracle.NewOpenRouter(oracleKey(apiKey))).NoError(t)
	_, err := client.FindBugs(context.Background(), "diff --git a/a.ts b/a.ts\n+console.log(cvv)")
	gt.NoError(t, err)
}

func TestGemini_Integration(t *testing.T) {
	apiKey := testutil.GetEnvOrSkip(t, "TEST_GEMINI_API_KEY")
	ctx := context.Background()

	client := gt.R1(oracle.NewGemini(ctx, oracleKey(apiKey))).NoError(t)
	_, err := client.FindBugs(ctx, "diff --git a/a.ts b/a.ts\n+console.log(cvv)")
	gt.NoError(t, err)
}
