// Package controller provides output adapters for displaying coverage results.
package controller

import (
	m "github.com/mouse-blink/doxycov/internal/model"
)

// UI defines the interface for presenting scan output.
// Implementations can use different output methods (plain text, colorized).
type UI interface {
	// DisplayReport prints the per-file coverage report followed by the
	// global coverage line.
	DisplayReport(summary m.Summary) error

	// DisplayFileTable prints the per-file summary table for list mode.
	DisplayFileTable(summary m.Summary) error

	// DisplaySkippedDefinition reports a definition whose declared source
	// file is missing from the filesystem.
	DisplaySkippedDefinition(ref string)
}
