package controller

import (
	"bytes"
	"fmt"
	"sort"

	m "github.com/mouse-blink/detest/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayModified prints the one-line notice for a rewritten file.
func (s *SimpleUI) DisplayModified(path m.Path, dryRun bool) {
	if dryRun {
		s.printf("Would remove test modules from: %s\n", path)
		return
	}

	s.printf("Removed test modules from: %s\n", path)
}

// DisplayFileError prints a per-file error notice.
func (s *SimpleUI) DisplayFileError(path m.Path, err error) {
	s.printf("Error processing %s: %v\n", path, err)
}

// DisplaySummary prints the final counters.
func (s *SimpleUI) DisplaySummary(summary m.RunSummary) {
	s.printf("\nProcessed %d files\n", summary.Processed)
	s.printf("Modified %d files\n", summary.Modified)
}

// DisplayList renders a table of files and their test-module counts.
func (s *SimpleUI) DisplayList(entries []m.ListEntry) error {
	paths, blocks := collateEntries(entries)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Test Modules"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	total := 0

	for _, path := range paths {
		count := blocks[path]
		total += count

		table.Append([]string{path, fmt.Sprintf("%d", count)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(paths)),
		fmt.Sprintf("%d", total),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// collateEntries folds duplicate discovery hits into one row per path and
// returns the sorted path list alongside the count index.
func collateEntries(entries []m.ListEntry) ([]string, map[string]int) {
	blocks := make(map[string]int, len(entries))
	for _, entry := range entries {
		blocks[string(entry.Path)] = entry.Blocks
	}

	paths := make([]string, 0, len(blocks))
	for path := range blocks {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	return paths, blocks
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
