package controller

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/detest/internal/model"
)

var (
	modifiedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dryRunStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	summaryStyle  = lipgloss.NewStyle().Bold(true)
)

// StyledUI renders the same lines as SimpleUI with lipgloss colors. It is
// selected by the factory when stdout is an interactive terminal.
type StyledUI struct {
	SimpleUI
}

// NewStyledUI creates a new StyledUI.
func NewStyledUI(cmd *cobra.Command) *StyledUI {
	return &StyledUI{SimpleUI{cmd: cmd}}
}

// DisplayModified prints the colored one-line notice for a rewritten file.
func (s *StyledUI) DisplayModified(path m.Path, dryRun bool) {
	if dryRun {
		s.printf("%s %s\n", dryRunStyle.Render("Would remove test modules from:"), path)
		return
	}

	s.printf("%s %s\n", modifiedStyle.Render("Removed test modules from:"), path)
}

// DisplayFileError prints a colored per-file error notice.
func (s *StyledUI) DisplayFileError(path m.Path, err error) {
	s.printf("%s %v\n", errorStyle.Render("Error processing "+string(path)+":"), err)
}

// DisplaySummary prints the final counters in bold.
func (s *StyledUI) DisplaySummary(summary m.RunSummary) {
	s.printf("\n%s\n", summaryStyle.Render(fmt.Sprintf("Processed %d files", summary.Processed)))
	s.printf("%s\n", summaryStyle.Render(fmt.Sprintf("Modified %d files", summary.Modified)))
}
