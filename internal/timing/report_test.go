package timing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stalens/internal/model"
)

func TestGenerateReportViolatedPath(t *testing.T) {
	result := NewAnalyzer().Analyze(model.SampleReport)

	report := GenerateReport(result, false)
	assert.Contains(t, report, "VIOLATED")
	assert.Contains(t, report, "-0.045")
	assert.Contains(t, report, "core/memory_controller/addr_reg[12]/D")
	assert.Contains(t, report, "Issues (")
	assert.NotContains(t, report, "Upsize", "suggestions are verbose-only")

	verbose := GenerateReport(result, true)
	assert.Contains(t, verbose, "Upsize")
}

func TestGenerateReportCleanPath(t *testing.T) {
	result := NewAnalyzer().Analyze("slack (MET) 0.130\nStartpoint: a/b\nEndpoint: c/d\n")

	report := GenerateReport(result, false)
	assert.Contains(t, report, "met")
	assert.Contains(t, report, "0.130")
	assert.Contains(t, report, "No issues detected")
}

func TestGenerateReportEmptyInput(t *testing.T) {
	result := NewAnalyzer().Analyze("")

	report := GenerateReport(result, true)
	assert.Contains(t, report, "Unknown")
	assert.Contains(t, report, "not found")
	assert.Contains(t, report, "0 stage(s)")
}
