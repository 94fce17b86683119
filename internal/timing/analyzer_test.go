package timing

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stalens/internal/model"
)

func issueTitles(issues []model.Issue) []string {
	titles := make([]string, len(issues))
	for i, is := range issues {
		titles[i] = is.Title
	}
	return titles
}

func TestAnalyzeEmptyInput(t *testing.T) {
	result := NewAnalyzer().Analyze("")

	want := model.AnalysisResult{
		Startpoint: "Unknown",
		Endpoint:   "Unknown",
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("Analyze(\"\") mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeGarbageNeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"complete nonsense",
		"slack",
		"slack (VIOLATED)",
		"Startpoint:",
		"/Y ()",
		strings.Repeat("(((", 1000),
		"\x00\xff binary junk /Y (",
	}
	a := NewAnalyzer()
	for _, in := range inputs {
		assert.NotPanics(t, func() { a.Analyze(in) }, "input %q", in)
	}
}

func TestViolationMarker(t *testing.T) {
	result := NewAnalyzer().Analyze("blah blah slack (VIOLATED) blah")
	assert.True(t, result.HasViolation)
}

func TestMetSlackNoViolation(t *testing.T) {
	result := NewAnalyzer().Analyze("  slack (MET) 0.130\n")

	assert.False(t, result.HasViolation)
	slack, ok := result.SlackValue()
	require.True(t, ok, "expected a slack value")
	assert.Equal(t, 0.130, slack)
}

// The violation heuristic is deliberately loose: a "slack" mention plus any
// negative number anywhere counts, even when they are unrelated. This test
// pins that behavior; tightening it is a semantic change, not a cleanup.
func TestViolationHeuristicFalsePositive(t *testing.T) {
	result := NewAnalyzer().Analyze("the slack channel lost -42 members")
	assert.True(t, result.HasViolation)
}

func TestSlackValueBeforeLabelLayout(t *testing.T) {
	result := NewAnalyzer().Analyze("Other End Arrival Time 0.405\n-0.045 slack (VIOLATED)\n")

	slack, ok := result.SlackValue()
	require.True(t, ok)
	assert.Equal(t, -0.045, slack)
	assert.True(t, result.HasViolation)
}

func TestBeginpointFallback(t *testing.T) {
	raw := "Beginpoint: u_core/pipe_reg[3]/Q (DFF)\nEndpoint: u_core/out_reg[3]/D\n"
	result := NewAnalyzer().Analyze(raw)

	assert.Equal(t, "u_core/pipe_reg[3]/Q", result.Startpoint)
	assert.Equal(t, "u_core/out_reg[3]/D", result.Endpoint)
}

func TestStartpointPreferredOverBeginpoint(t *testing.T) {
	raw := "Startpoint: a/b/c\nBeginpoint: x/y/z\n"
	result := NewAnalyzer().Analyze(raw)
	assert.Equal(t, "a/b/c", result.Startpoint)
}

func TestLogicDepthCountsDuplicates(t *testing.T) {
	raw := "u1/Y (INVX1_RVT)\nu2/Y (INVX1_RVT)\nu3/Y (NAND2X1_RVT)\n"
	result := NewAnalyzer().Analyze(raw)

	assert.Equal(t, 3, result.LogicDepth)
	assert.Equal(t, 2, result.CellTypes) // INV and NAND2
}

func TestCellTypesStripDriveSuffix(t *testing.T) {
	// Same family at different drive strengths and thresholds collapses.
	raw := "a/Y (INVX0_RVT) b/Y (INVX2_LVT) c/Y (INVX4_HVT)\n"
	result := NewAnalyzer().Analyze(raw)

	assert.Equal(t, 3, result.LogicDepth)
	assert.Equal(t, 1, result.CellTypes)
}

func TestCellTypesNeverExceedDepth(t *testing.T) {
	raw := "a/Y (AOI21X1_RVT) b/Y (OAI21X1_RVT) c/Y (BUFX2_RVT)\n"
	result := NewAnalyzer().Analyze(raw)

	assert.LessOrEqual(t, result.CellTypes, result.LogicDepth)
	assert.Equal(t, result.LogicDepth, result.CellTypes, "all families distinct here")
}

func TestDeepPathAdvisory(t *testing.T) {
	// 9 stages, all distinct families, plus an explicit "long path" phrase
	// so the catalog rule fires too. The long-path issue must still appear
	// exactly once.
	var b strings.Builder
	b.WriteString("note: long path through the multiplier\n")
	for _, cell := range []string{
		"INVX1_RVT", "BUFX2_RVT", "NAND2X1_RVT", "NOR2X1_RVT", "AOI21X1_RVT",
		"OAI21X1_RVT", "NAND3X1_RVT", "NOR3X1_RVT", "AOI22X1_RVT",
	} {
		b.WriteString("core/mult/u/Y (" + cell + ")\n")
	}

	result := NewAnalyzer().Analyze(b.String())

	assert.Equal(t, 9, result.LogicDepth)
	assert.NotEmpty(t, result.DepthAnalysis)

	count := 0
	for _, title := range issueTitles(result.Issues) {
		if title == "Long logic path detected" {
			count++
		}
	}
	assert.Equal(t, 1, count, "long-path issue must appear exactly once")
}

func TestShallowPathNoAdvisory(t *testing.T) {
	raw := strings.Repeat("u/Y (INVX1_RVT)\n", DepthThreshold)
	result := NewAnalyzer().Analyze(raw)

	assert.Equal(t, DepthThreshold, result.LogicDepth)
	assert.Empty(t, result.DepthAnalysis, "threshold is exclusive")
}

func TestSyntheticGenericIssueOnBareViolation(t *testing.T) {
	// Violation detected via the loose heuristic, but no catalog rule
	// matches. A single generic issue must be synthesized.
	result := NewAnalyzer().Analyze("timing slack is -0.5 on this net\n")

	require.True(t, result.HasViolation)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "Timing violation detected", result.Issues[0].Title)
	assert.Len(t, result.Issues[0].Suggestions, 4)
}

func TestNoViolationNoIssuesStaysEmpty(t *testing.T) {
	result := NewAnalyzer().Analyze("slack (MET) 0.2\nStartpoint: a/b\n")
	assert.Empty(t, result.Issues)
}

func TestAnalyzeSampleReport(t *testing.T) {
	result := NewAnalyzer().Analyze(model.SampleReport)

	assert.True(t, result.HasViolation)

	slack, ok := result.SlackValue()
	require.True(t, ok)
	assert.Equal(t, -0.045, slack)

	assert.Equal(t, "core/register_file/register_memory_reg[7][12]/Q", result.Startpoint)
	assert.Equal(t, "core/memory_controller/addr_reg[12]/D", result.Endpoint)

	titles := issueTitles(result.Issues)
	assert.Contains(t, titles, "Timing violation detected")
	assert.Contains(t, titles, "Low drive strength cells in critical path", "sample has INVX0_RVT cells")

	assert.Equal(t, 6, result.LogicDepth)
	assert.Equal(t, 5, result.CellTypes)
	assert.Empty(t, result.DepthAnalysis)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	a := NewAnalyzer()
	first := a.Analyze(model.SampleReport)
	second := a.Analyze(model.SampleReport)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated analysis differs (-first +second):\n%s", diff)
	}
}
