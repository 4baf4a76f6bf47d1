package domain

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"unicode/utf8"

	"github.com/mouse-blink/detest/internal/adapter"
	"github.com/mouse-blink/detest/internal/controller"
	m "github.com/mouse-blink/detest/internal/model"
)

// ErrInvalidEncoding reports a file whose content is not valid UTF-8 text.
var ErrInvalidEncoding = errors.New("file is not valid UTF-8")

// StripArgs carries the parameters of a strip run.
type StripArgs struct {
	Root    m.Path
	Globs   []string
	Exclude []string
	DryRun  bool
}

// ListArgs carries the parameters of a list (inspection) run.
type ListArgs struct {
	Root    m.Path
	Globs   []string
	Exclude []string
}

// Workflow defines the operations exposed to the CLI layer.
type Workflow interface {
	// Strip discovers candidate files under the root, removes test modules
	// from each and rewrites changed files in place. Per-file failures are
	// reported and skipped; they never abort the run.
	Strip(args StripArgs) error

	// List discovers the same file set and reports test-module counts
	// without writing anything.
	List(args ListArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	scanner   Scanner
	ui        controller.UI
}

// NewWorkflow creates a Workflow instance wired to the provided adapters.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, scanner Scanner, ui controller.UI) Workflow {
	return &workflow{
		fsAdapter: fsAdapter,
		scanner:   scanner,
		ui:        ui,
	}
}

// Strip runs the full read-scan-write cycle over every discovered file,
// strictly sequentially. Each file's cycle is self-contained; a failure is
// reported through the UI and counts the file as unmodified.
func (w *workflow) Strip(args StripArgs) error {
	excludes, err := compileExcludes(args.Exclude)
	if err != nil {
		return err
	}

	paths, err := w.fsAdapter.Discover(args.Root, args.Globs)
	if err != nil {
		return err
	}

	var summary m.RunSummary

	for _, path := range paths {
		info, err := w.fsAdapter.FileInfo(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		if matchesAny(excludes, path) {
			continue
		}

		summary.Processed++

		report := w.stripFile(path, info.Mode().Perm(), args.DryRun)
		if report.Err != nil {
			w.ui.DisplayFileError(path, report.Err)
			continue
		}

		if report.Modified {
			summary.Modified++
			w.ui.DisplayModified(path, args.DryRun)
		}
	}

	w.ui.DisplaySummary(summary)

	return nil
}

// List counts test modules per discovered file and renders the table.
// Unreadable or malformed files are reported the same way Strip reports
// them and are left out of the table.
func (w *workflow) List(args ListArgs) error {
	excludes, err := compileExcludes(args.Exclude)
	if err != nil {
		return err
	}

	paths, err := w.fsAdapter.Discover(args.Root, args.Globs)
	if err != nil {
		return err
	}

	var entries []m.ListEntry

	for _, path := range paths {
		info, err := w.fsAdapter.FileInfo(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		if matchesAny(excludes, path) {
			continue
		}

		content, err := w.readText(path)
		if err != nil {
			w.ui.DisplayFileError(path, err)
			continue
		}

		blocks, err := w.scanner.Count(content)
		if err != nil {
			w.ui.DisplayFileError(path, err)
			continue
		}

		entries = append(entries, m.ListEntry{Path: path, Blocks: blocks})
	}

	return w.ui.DisplayList(entries)
}

// stripFile is the per-file boundary: any error behind it is contained in
// the returned report.
func (w *workflow) stripFile(path m.Path, perm os.FileMode, dryRun bool) m.FileReport {
	content, err := w.readText(path)
	if err != nil {
		return m.FileReport{Path: path, Err: err}
	}

	result, err := w.scanner.Strip(content)
	if err != nil {
		return m.FileReport{Path: path, Err: err}
	}

	if !result.Modified {
		return m.FileReport{Path: path}
	}

	if !dryRun {
		if err := w.fsAdapter.WriteFile(path, []byte(result.Text), perm); err != nil {
			return m.FileReport{Path: path, Err: err}
		}
	}

	return m.FileReport{Path: path, Modified: true, Blocks: result.Blocks}
}

func (w *workflow) readText(path m.Path) (string, error) {
	content, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(content) {
		return "", ErrInvalidEncoding
	}

	return string(content), nil
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func matchesAny(excludes []*regexp.Regexp, path m.Path) bool {
	for _, re := range excludes {
		if re.MatchString(string(path)) {
			return true
		}
	}

	return false
}
