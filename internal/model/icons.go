package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconViolation = "✗" // Thin X (failing check)
	IconMet       = "✓" // Check (passing)
	IconIssue     = "!" // Issue marker
	IconAdvice    = "→" // Right arrow (suggestion)
	IconUnknown   = "?" // Missing field
	IconDepth     = "≡" // Deep logic path
)
