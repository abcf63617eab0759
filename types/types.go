// Package types contains the shared types for emailverify.
// This package does not import anything from other emailverify packages
// to avoid circular imports.
package types

import "time"

// CheckLevel identifies a check. The values double as the check names
// used in log lines, metric labels and span names.
type CheckLevel = string

const (
	LevelStructure CheckLevel = "structure"
	LevelSyntax    CheckLevel = "syntax"
	LevelMX        CheckLevel = "mx"
	LevelBurner    CheckLevel = "burner"
	LevelCompile   CheckLevel = "compile"
)

// Description returns the human readable activity for a level, as it
// appears in log messages ("Error while performing the MX record DNS check").
func Description(level CheckLevel) string {
	switch level {
	case LevelStructure:
		return "checking the address structure"
	case LevelSyntax:
		return "performing the syntax check"
	case LevelMX:
		return "performing the MX record DNS check"
	case LevelBurner:
		return "performing burner e-mail check"
	case LevelCompile:
		return "compiling results"
	}
	return level
}

// CheckResult is the outcome of a single check.
type CheckResult struct {
	Level   CheckLevel `json:"level"`
	Passed  bool       `json:"passed"`
	Details string     `json:"details,omitempty"`
	MXHost  string     `json:"mxHost,omitempty"`

	// FailedOpen is set when the check errored or timed out and Passed
	// was substituted with true. Error holds the cause.
	FailedOpen bool          `json:"failedOpen,omitempty"`
	Error      string        `json:"error,omitempty"`
	Duration   time.Duration `json:"duration"`
}
