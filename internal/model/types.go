package model

// Version is the current stalens release.
const Version = "0.3.1"

// Issue is a single detected problem plus remediation advice.
type Issue struct {
	Title       string   // e.g. "Timing violation detected"
	Suggestions []string // Ordered remediation steps
}

// AnalysisResult contains everything extracted from one timing path report.
// It is built fresh on every analysis and never mutated afterwards.
type AnalysisResult struct {
	HasViolation  bool     // True if the path fails its timing check
	Slack         *float64 // Signed margin in ns; nil when no slack line was found
	Startpoint    string   // Launching element, "Unknown" if absent
	Endpoint      string   // Capturing element, "Unknown" if absent
	Issues        []Issue  // Catalog matches, in catalog order
	LogicDepth    int      // Combinational cells traversed (duplicates counted)
	CellTypes     int      // Distinct base cell families on the path
	DepthAnalysis string   // Advisory text when the path is unusually deep, else ""
}

// SlackValue returns the slack and whether one was extracted.
func (r AnalysisResult) SlackValue() (float64, bool) {
	if r.Slack == nil {
		return 0, false
	}
	return *r.Slack, true
}
