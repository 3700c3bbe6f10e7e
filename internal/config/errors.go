package config

import (
	"fmt"
	"strings"
)

// NotFoundError reports that no configuration file was found walking up
// from the start directory. Recoverable by initializing a configuration.
type NotFoundError struct {
	Start    string
	Searched []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(
		"no configuration file found in %s or parent directories\nsearched:\n  %s",
		e.Start, strings.Join(e.Searched, "\n  "))
}

// SyntaxError reports a YAML parse failure in a specific file. Column is
// zero when the parser did not report one.
type SyntaxError struct {
	File   string
	Line   int
	Column int
	Detail string
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid configuration syntax in %s (line %d): %s", e.File, e.Line, e.Detail)
	}
	return fmt.Sprintf("invalid configuration syntax in %s: %s", e.File, e.Detail)
}

// ValidationError reports error-level schema diagnostics for one document
// or for the merged configuration.
type ValidationError struct {
	File        string
	Diagnostics []Diagnostic
}

func (e *ValidationError) Error() string {
	lines := make([]string, 0, len(e.Diagnostics)+1)
	lines = append(lines, fmt.Sprintf("invalid configuration in %s:", e.File))
	for _, d := range e.Diagnostics {
		lines = append(lines, "  "+d.String())
	}
	return strings.Join(lines, "\n")
}
