package timing

import "regexp"

// Rule pairs a text pattern with the issue it signals and remediation advice.
// Rules are matched against the whole report text, case-insensitively.
type Rule struct {
	Pattern     *regexp.Regexp
	Title       string
	Suggestions []string
}

// DefaultCatalog returns the built-in detection rules, in reporting order.
// The catalog is constructed once at startup and treated as read-only; the
// analyzer only ever iterates it.
func DefaultCatalog() []Rule {
	return []Rule{
		{
			Pattern: regexp.MustCompile(`(?i)slack\s*\(\s*VIOLATED\s*\)`),
			Title:   "Timing violation detected",
			Suggestions: []string{
				"Upsize cells along the critical path to reduce stage delay",
				"Reduce logic depth between the launching and capturing registers",
				"Check for high-fanout nets loading the path and buffer them",
				"Review clock skew between the launch and capture clocks",
			},
		},
		{
			Pattern: regexp.MustCompile(`(?i)high\s+fanout`),
			Title:   "High fanout net detected",
			Suggestions: []string{
				"Insert buffer trees to split the load on the high-fanout net",
				"Duplicate the driving logic so each copy drives fewer sinks",
				"Use a higher drive strength variant for the driving cell",
			},
		},
		{
			Pattern: regexp.MustCompile(`(?i)\b(?:INV|BUF|NAND\d*|NOR\d*|AOI\d*|OAI\d*)X0(?:_[A-Z]+)?\b`),
			Title:   "Low drive strength cells in critical path",
			Suggestions: []string{
				"Upsize X0 cells to X1/X2 variants on timing-critical stages",
				"Let the optimizer resize cells with set_size_only removed",
				"Check output load on the X0 cells; they degrade quickly under load",
			},
		},
		{
			Pattern: regexp.MustCompile(`(?i)clock\s+uncertainty`),
			Title:   "Clock uncertainty affecting timing",
			Suggestions: []string{
				"Review the clock tree for excessive insertion delay variation",
				"Re-check the uncertainty values against the actual jitter budget",
				"Tighten clock tree balancing on the capture branch",
			},
		},
		{
			Pattern: regexp.MustCompile(`(?i)long\s+path`),
			Title:   "Long logic path detected",
			Suggestions: []string{
				"Add pipeline registers to break the path into shorter stages",
				"Restructure the logic cone to reduce levels",
				"Review synthesis constraints driving this path's structure",
			},
		},
	}
}
