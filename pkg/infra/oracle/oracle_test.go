package oracle_test

import (
	"testing"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/infra/oracle"
	"github.com/m-mizutani/gt"
)

func TestParseReport(t *testing.T) {
	t.Run("plain JSON", func(t *testing.T) {
		findings, err := oracle.ParseReport(`{"bugs":[{"type":"Race Condition","file":"src/pay.ts","line":42,"description":"Update without lock","severity":"HIGH"}]}`)
		gt.NoError(t, err)
		gt.V(t, len(findings)).Equal(1)
		gt.V(t, findings[0].Kind).Equal("Race Condition")
		gt.V(t, findings[0].File).Equal("src/pay.ts")
		gt.V(t, findings[0].Line).Equal(42)
		gt.V(t, findings[0].Severity).Equal(types.SeverityHigh)
		gt.V(t, findings[0].Source).Equal(types.FindingSourceOracle)
	})

	t.Run("code fence with language tag", func(t *testing.T) {
		findings, err := oracle.ParseReport("```json\n{\"bugs\":[{\"type\":\"SQL Injection\",\"severity\":\"critical\"}]}\n```")
		gt.NoError(t, err)
		gt.V(t, len(findings)).Equal(1)
		gt.V(t, findings[0].Severity).Equal(types.SeverityHigh)
	})

	t.Run("missing fields are normalized", func(t *testing.T) {
		findings, err := oracle.ParseReport(`{"bugs":[{"severity":"whatever","line":-3}]}`)
		gt.NoError(t, err)
		gt.V(t, len(findings)).Equal(1)
		gt.V(t, findings[0].Kind).Equal(model.FindingKindUnknown)
		gt.V(t, findings[0].Severity).Equal(types.SeverityMedium)
		gt.V(t, findings[0].File).Equal(model.UnknownFile)
		gt.V(t, findings[0].Line).Equal(0)
	})

	t.Run("empty reply", func(t *testing.T) {
		findings, err := oracle.ParseReport("  ")
		gt.NoError(t, err)
		gt.V(t, len(findings)).Equal(0)
	})

	t.Run("no bugs", func(t *testing.T) {
		findings, err := oracle.ParseReport(`{"bugs":[]}`)
		gt.NoError(t, err)
		gt.V(t, len(findings)).Equal(0)
	})

	t.Run("malformed reply", func(t *testing.T) {
		_, err := oracle.ParseReport("I could not find any bugs.")
		gt.Error(t, err)
	})
}

func TestTruncate(t *testing.T) {
	gt.V(t, oracle.Truncate("abcdef", 3)).Equal("abc")
	gt.V(t, oracle.Truncate("abc", 3)).Equal("abc")
	gt.V(t, oracle.Truncate("abc", 10)).Equal("abc")
	gt.V(t, oracle.Truncate("abc", 0)).Equal("abc")
	// Counted in runes, not bytes
	gt.V(t, oracle.Truncate("日本語テキスト", 3)).Equal("日本語")
}

func oracleKey(s string) types.OracleAPIKey {
	return types.OracleAPIKey(s)
}
