package timing

import (
	"fmt"
	"strings"

	"stalens/internal/model"
)

// GenerateReport renders an AnalysisResult as a plain-text diagnostic
// report suitable for the terminal or saving to a file. Verbose mode adds
// the per-issue suggestion lists and the raw extraction facts.
func GenerateReport(result model.AnalysisResult, verbose bool) string {
	var b strings.Builder

	b.WriteString("stalens timing path report\n")
	b.WriteString("==========================\n\n")

	if result.HasViolation {
		fmt.Fprintf(&b, "%s Setup check: VIOLATED\n", model.IconViolation)
	} else {
		fmt.Fprintf(&b, "%s Setup check: met\n", model.IconMet)
	}

	if slack, ok := result.SlackValue(); ok {
		fmt.Fprintf(&b, "  Slack:      %.3f ns\n", slack)
	} else {
		fmt.Fprintf(&b, "  Slack:      %s not found\n", model.IconUnknown)
	}
	fmt.Fprintf(&b, "  Startpoint: %s\n", result.Startpoint)
	fmt.Fprintf(&b, "  Endpoint:   %s\n", result.Endpoint)
	fmt.Fprintf(&b, "  Depth:      %d stage(s), %d distinct cell famil%s\n",
		result.LogicDepth, result.CellTypes, pluralY(result.CellTypes))

	if result.DepthAnalysis != "" {
		fmt.Fprintf(&b, "\n%s %s\n", model.IconDepth, result.DepthAnalysis)
	}

	if len(result.Issues) == 0 {
		b.WriteString("\nNo issues detected.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "\nIssues (%d):\n", len(result.Issues))
	for i, issue := range result.Issues {
		fmt.Fprintf(&b, "  %d. %s %s\n", i+1, model.IconIssue, issue.Title)
		if verbose {
			for _, s := range issue.Suggestions {
				fmt.Fprintf(&b, "     %s %s\n", model.IconAdvice, s)
			}
		}
	}

	if !verbose {
		b.WriteString("\nRun with --verbose for remediation suggestions.\n")
	}

	return b.String()
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
