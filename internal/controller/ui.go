// Package controller provides output adapters for reporting strip results.
package controller

import (
	m "github.com/mouse-blink/detest/internal/model"
)

// UI defines the interface for reporting progress and results of a run.
// Implementations can use different output methods (plain text, styled).
type UI interface {
	// DisplayModified announces a file whose test modules were removed. In
	// dry-run mode the wording changes to reflect that nothing was written.
	DisplayModified(path m.Path, dryRun bool)

	// DisplayFileError reports a per-file failure; the run continues.
	DisplayFileError(path m.Path, err error)

	// DisplaySummary prints the final processed/modified counters.
	DisplaySummary(summary m.RunSummary)

	// DisplayList renders the inspection table of files and their
	// test-module counts.
	DisplayList(entries []m.ListEntry) error
}
