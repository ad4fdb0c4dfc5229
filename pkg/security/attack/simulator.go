// Package attack tries to prove SQL injection by appending tautology payloads to query fragments
// found in code and checking that the result is still valid SQL.
package attack

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/xwb1989/sqlparser"
)

type OutcomeKind string

const (
	// Proven means an injected query parsed successfully
	Proven OutcomeKind = "PROVEN"
	// NotFound means no injectable query fragment was found
	NotFound OutcomeKind = "NOT_FOUND"
	// ParseFailed means a fragment was found but no payload produced a valid query
	ParseFailed OutcomeKind = "PARSE_FAILED"

	ImpactLogicBypass = "Logic Bypass / Authentication Broken"

	KindSQLInjection = "SQL_INJECTION"
)

// Outcome is the result of Simulate. Proof is set only when Kind is Proven.
type Outcome struct {
	Kind     OutcomeKind
	Fragment string
	Proof    *model.AttackProof
}

// Finding describes a proven outcome as a HIGH severity finding. File and Line are left for the caller.
func (x Outcome) Finding() (model.Finding, bool) {
	if x.Kind != Proven || x.Proof == nil {
		return model.Finding{}, false
	}

	return model.Finding{
		Kind:           KindSQLInjection,
		Severity:       types.SeverityHigh,
		Title:          "Provable SQL Injection",
		Description:    fmt.Sprintf("Appending %q to %q yields a query that a SQL parser accepts", x.Proof.Payload, x.Proof.Target),
		Recommendation: "Use parameterized queries or prepared statements",
		Source:         types.FindingSourceAttack,
	}, true
}

var fragmentPatterns = []*regexp.Regexp{
	// quoted statement: "SELECT ... "
	regexp.MustCompile(`(?i)["']\s*(SELECT|INSERT|UPDATE|DELETE)\s+.*?\s*["']`),
	// concatenation: SELECT ... + userId
	regexp.MustCompile(`(?i)(SELECT|INSERT|UPDATE|DELETE).*?[+&]\s*\w+`),
	// template literal: `SELECT ... ${userId}`
	regexp.MustCompile("(?i)`(SELECT|INSERT|UPDATE|DELETE).*?\\$\\{.*?\\}`"),
}

var (
	ptnQuotes        = regexp.MustCompile(`['"]`)
	ptnTemplateVar   = regexp.MustCompile(`\$\{.*?\}`)
	ptnConcatenation = regexp.MustCompile(`\s\+\s\w+`)

	// placeholders of other dialects that the MySQL grammar does not treat as bind variables
	ptnDialectPlaceholder = regexp.MustCompile(`\$\d+|@p\d+`)
)

type payload struct {
	suffix string
	text   string
}

// tried in order, first one that parses wins
var payloads = []payload{
	{suffix: " ' OR '1'='1", text: "' OR '1'='1"},
	{suffix: " OR 1=1", text: "OR 1=1"},
}

// Simulate is pure: it performs no I/O and never executes SQL.
func Simulate(code string) Outcome {
	fragment := findFragment(code)
	if fragment == "" {
		return Outcome{Kind: NotFound}
	}

	base := Normalize(fragment)
	if isParameterized(base) {
		return Outcome{Kind: NotFound, Fragment: fragment}
	}

	for _, p := range payloads {
		query := base + p.suffix
		if _, err := sqlparser.Parse(query); err != nil {
			continue
		}

		return Outcome{
			Kind:     Proven,
			Fragment: fragment,
			Proof: &model.AttackProof{
				Kind:           model.AttackProofKindSQLInjection,
				Target:         base,
				Payload:        p.text,
				ResultingQuery: query,
				Impact:         ImpactLogicBypass,
			},
		}
	}

	return Outcome{Kind: ParseFailed, Fragment: fragment}
}

func findFragment(code string) string {
	for _, ptn := range fragmentPatterns {
		if m := ptn.FindString(code); m != "" {
			return m
		}
	}
	return ""
}

// Normalize turns a code fragment into a canonical base query.
func Normalize(fragment string) string {
	s := ptnQuotes.ReplaceAllString(fragment, "")
	s = strings.ReplaceAll(s, "`", "")
	s = ptnTemplateVar.ReplaceAllString(s, "1")
	s = ptnConcatenation.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// isParameterized reports whether query parses and uses bind placeholders. Such a statement
// is not an injection site.
func isParameterized(query string) bool {
	if ptnDialectPlaceholder.MatchString(query) {
		return true
	}

	stmt, err := sqlparser.Parse(query)
	if err != nil {
		return false
	}

	found := false
	_ = sqlparser.Walk(func(node sqlparser.SQLNode) (bool, error) {
		if v, ok := node.(*sqlparser.SQLVal); ok && v.Type == sqlparser.ValArg {
			found = true
			return false, nil
		}
		return true, nil
	}, stmt)

	return found
}
