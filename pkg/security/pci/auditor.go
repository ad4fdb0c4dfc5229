// Package pci detects payment card data exposure in code changes.
package pci

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/security/diffmap"
)

const (
	KindComplianceFail = "PCI_COMPLIANCE_FAIL"
	KindLoggingFail    = "PCI_LOGGING_FAIL"

	// Estimated fines per violation, in USD
	FineUnencryptedPAN = 50000
	FineSensitiveLog   = 25000

	minPANDigits = 13
	maxPANDigits = 16
)

var (
	ptnCardNumber = regexp.MustCompile(`\b(?:\d[ -]*?){13,16}\b`)
	ptnNonDigit   = regexp.MustCompile(`\D`)

	// argument text runs to the last closing parenthesis on the line
	ptnSensitiveLog = regexp.MustCompile(`(?i)\b(?:console|logger|log|logging|slog|fmt)\.(?:log|info|warn|warning|error|debug|trace|print[a-z]*|fatal[a-z]*)\s*\((.*)\)`)

	sensitiveKeywords = []string{"cvv", "pan", "track2", "pin", "password", "secret"}
)

// Audit scans raw diff text. It never fails; unparseable input just yields fewer findings.
func Audit(diff string) []model.Finding {
	idx := diffmap.Parse(diff)

	var findings []model.Finding
	findings = append(findings, auditCardNumbers(diff, idx)...)
	findings = append(findings, auditSensitiveLogging(diff, idx)...)
	return findings
}

func auditCardNumbers(diff string, idx *diffmap.Index) []model.Finding {
	var findings []model.Finding
	for _, match := range ptnCardNumber.FindAllString(diff, -1) {
		digits := ptnNonDigit.ReplaceAllString(match, "")
		if len(digits) < minPANDigits || len(digits) > maxPANDigits {
			continue
		}
		if !IsLuhnValid(digits) {
			continue
		}

		f := model.Finding{
			Kind:           KindComplianceFail,
			Severity:       types.SeverityHigh,
			Title:          "Unencrypted PAN Data",
			Description:    fmt.Sprintf("Potential unencrypted credit card number ending in %s found in code changes", digits[len(digits)-4:]),
			Recommendation: "Remove card numbers from source code. Store PAN only tokenized or encrypted per PCI-DSS requirement 3.",
			Source:         types.FindingSourcePCI,
			FineRisk:       FineUnencryptedPAN,
		}
		locate(&f, idx, strings.TrimSpace(match))
		findings = append(findings, f)
	}
	return findings
}

func auditSensitiveLogging(diff string, idx *diffmap.Index) []model.Finding {
	var findings []model.Finding
	for _, m := range ptnSensitiveLog.FindAllStringSubmatch(diff, -1) {
		keyword, ok := findSensitiveKeyword(m[1])
		if !ok {
			continue
		}

		f := model.Finding{
			Kind:           KindLoggingFail,
			Severity:       types.SeverityHigh,
			Title:          "Sensitive Data Logging",
			Description:    fmt.Sprintf("Logging of sensitive data detected: %s", keyword),
			Recommendation: "Never log authentication or cardholder data. Mask the value or drop it from the log statement.",
			Source:         types.FindingSourcePCI,
			FineRisk:       FineSensitiveLog,
		}
		locate(&f, idx, m[0])
		findings = append(findings, f)
	}
	return findings
}

func locate(f *model.Finding, idx *diffmap.Index, snippet string) {
	line, ok := idx.Locate(snippet)
	if !ok {
		return
	}
	f.File = line.File
	f.Line = line.Number
}

// findSensitiveKeyword returns the earliest keyword in args that forms a word segment of an identifier:
// it starts after a non-letter or at a camelCase hump, and ends before a non-letter or an uppercase
// letter. cardCvv, userPassword, API_SECRET and pinCode match; spinner and company do not.
func findSensitiveKeyword(args string) (string, bool) {
	lower := asciiLower(args)

	found, at := "", -1
	for _, kw := range sensitiveKeywords {
		for offset := 0; offset < len(lower); {
			i := strings.Index(lower[offset:], kw)
			if i < 0 {
				break
			}
			i += offset
			if (at < 0 || i < at) && isSegment(args, i, i+len(kw)) {
				found, at = kw, i
				break
			}
			offset = i + 1
		}
	}

	return found, at >= 0
}

func isSegment(s string, start, end int) bool {
	if start > 0 {
		prev := s[start-1]
		if isLetter(prev) && !(isLowerASCII(prev) && isUpperASCII(s[start])) {
			return false
		}
	}
	if end < len(s) {
		next := s[end]
		if isLetter(next) && !isUpperASCII(next) {
			return false
		}
	}
	return true
}

// asciiLower keeps byte offsets aligned with s, unlike strings.ToLower.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if isUpperASCII(c) {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func isLetter(c byte) bool     { return isLowerASCII(c) || isUpperASCII(c) }
func isLowerASCII(c byte) bool { return 'a' <= c && c <= 'z' }
func isUpperASCII(c byte) bool { return 'A' <= c && c <= 'Z' }
