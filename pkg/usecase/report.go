package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
)

const reportTitle = "## CodeDiff Security Analysis"

var statusBadge = map[types.AnalysisStatus]string{
	types.AnalysisStatusSecure:     "🟢 SECURE",
	types.AnalysisStatusWarning:    "🟡 WARNING",
	types.AnalysisStatusVulnerable: "🔴 VULNERABLE",
}

// RenderReport formats an analysis as a pull request comment. saved is false when the analysis could not
// be stored, and the report says so.
func RenderReport(analysis *model.Analysis, saved bool) string {
	return renderReport(analysis, !saved, saved)
}

// RenderLocalReport formats an analysis of a local diff, which is never stored.
func RenderLocalReport(analysis *model.Analysis) string {
	return renderReport(analysis, false, false)
}

func renderReport(analysis *model.Analysis, warnUnsaved, showID bool) string {
	var b strings.Builder

	b.WriteString(reportTitle + "\n\n")
	if warnUnsaved {
		b.WriteString("> **Warning:** this analysis could not be saved. The results below were not stored.\n\n")
	}

	badge, ok := statusBadge[analysis.Status]
	if !ok {
		badge = string(analysis.Status)
	}
	fmt.Fprintf(&b, "**Status:** %s | **Risk Score:** %d/100 | **Issues:** %d\n\n", badge, analysis.RiskScore, analysis.IssuesFound)

	if analysis.EstimatedFine > 0 {
		fmt.Fprintf(&b, "**Estimated PCI-DSS fine exposure:** %s\n\n", formatUSD(analysis.EstimatedFine))
	}

	if len(analysis.Findings) == 0 {
		b.WriteString("No issues found.\n")
	} else {
		b.WriteString("### Findings\n\n")
		b.WriteString("| Severity | Kind | Location | Description | Recommendation |\n")
		b.WriteString("|---|---|---|---|---|\n")
		for _, f := range analysis.Findings {
			fmt.Fprintf(&b, "| %s | %s | `%s` | %s | %s |\n",
				f.Severity,
				cell(f.Kind),
				cell(location(f)),
				cell(f.Description),
				cell(f.Recommendation),
			)
		}
	}

	if p := analysis.AttackProof; p != nil {
		b.WriteString("\n### Attack Proof\n\n")
		fmt.Fprintf(&b, "**Impact:** %s\n\n", p.Impact)
		fmt.Fprintf(&b, "Payload `%s` turns\n\n```sql\n%s\n```\n\ninto a valid query:\n\n```sql\n%s\n```\n",
			p.Payload, p.Target, p.ResultingQuery)
	}

	if analysis.ID != "" && showID {
		fmt.Fprintf(&b, "\n<sub>Analysis ID: %s</sub>\n", analysis.ID)
	}

	return b.String()
}

func location(f model.Finding) string {
	if f.Line <= 0 {
		return f.File
	}
	return f.File + ":" + strconv.Itoa(f.Line)
}

func cell(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", "\\|")
}

// formatUSD renders 1234567 as "$1,234,567".
func formatUSD(v int64) string {
	digits := strconv.FormatInt(v, 10)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	var out []byte
	for i := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i])
	}
	return sign + "$" + string(out)
}
