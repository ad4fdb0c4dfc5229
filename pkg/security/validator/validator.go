// Package validator screens untrusted diff text and request identifiers before any detector sees them.
package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const (
	MaxInputLength = 100000
	MaxPRNumber    = 100000
)

type dangerousPattern struct {
	name string
	ptn  *regexp.Regexp
}

var dangerousPatterns = []dangerousPattern{
	{name: "eval", ptn: regexp.MustCompile(`(?i)eval\s*\(`)},
	{name: "Function constructor", ptn: regexp.MustCompile(`\bFunction\s*\(`)},
	{name: "process.exit", ptn: regexp.MustCompile(`(?i)process\.exit`)},
	{name: "child_process", ptn: regexp.MustCompile(`(?i)require\s*\(\s*['"]child_process`)},
	{name: "fs access", ptn: regexp.MustCompile(`(?i)fs\.readFile|fs\.writeFile`)},
	{name: "path traversal import", ptn: regexp.MustCompile(`(?i)import\s*\(\s*['"][^'"]*\.\./\.\.`)},
}

var (
	ptnControlChars  = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)
	ptnRepoComponent = regexp.MustCompile(`^[a-zA-Z0-9\-_.]{1,100}$`)
)

// Validate checks diff text and returns a sanitized copy. Errors wrap types.ErrRejectedInput.
func Validate(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", goerr.Wrap(types.ErrRejectedInput, "input must be a non-empty string")
	}
	if !utf8.ValidString(input) {
		return "", goerr.Wrap(types.ErrRejectedInput, "input is not text")
	}

	if n := utf8.RuneCountInString(input); n > MaxInputLength {
		return "", goerr.Wrap(types.ErrRejectedInput, "input exceeds maximum length",
			goerr.V("length", n),
			goerr.V("max", MaxInputLength),
		)
	}

	for _, p := range dangerousPatterns {
		if p.ptn.MatchString(input) {
			return "", goerr.Wrap(types.ErrRejectedInput, "input contains potentially dangerous pattern",
				goerr.V("pattern", p.name),
			)
		}
	}

	return Sanitize(input), nil
}

// Sanitize removes control characters except newline, tab and carriage return, then trims.
func Sanitize(input string) string {
	return strings.TrimSpace(ptnControlChars.ReplaceAllString(input, ""))
}

// ValidateRepository checks owner and name of "owner/name".
func ValidateRepository(owner, name string) error {
	if !ptnRepoComponent.MatchString(owner) || !ptnRepoComponent.MatchString(name) {
		return goerr.Wrap(types.ErrRejectedInput, "invalid repository name",
			goerr.V("owner", owner),
			goerr.V("name", name),
		)
	}
	return nil
}

// ValidateRepositoryRef checks a combined "owner/name" string.
func ValidateRepositoryRef(ref string) error {
	owner, name, ok := strings.Cut(ref, "/")
	if !ok {
		return goerr.Wrap(types.ErrRejectedInput, "invalid repository name", goerr.V("ref", ref))
	}
	return ValidateRepository(owner, name)
}

func ValidatePRNumber(n int) error {
	if n <= 0 || n >= MaxPRNumber {
		return goerr.Wrap(types.ErrRejectedInput, "invalid PR number", goerr.V("pr_number", n))
	}
	return nil
}
