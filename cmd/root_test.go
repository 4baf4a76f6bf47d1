package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/detest/internal/domain"
	m "github.com/mouse-blink/detest/internal/model"
)

// mockWorkflow is a testify mock for the domain.Workflow seam.
type mockWorkflow struct {
	mock.Mock
}

func (w *mockWorkflow) Strip(args domain.StripArgs) error {
	return w.Called(args).Error(0)
}

func (w *mockWorkflow) List(args domain.ListArgs) error {
	return w.Called(args).Error(0)
}

func swapWorkflow(t *testing.T, replacement domain.Workflow) {
	t.Helper()

	original := workflow
	workflow = replacement

	t.Cleanup(func() { workflow = original })
}

func resetFlags(t *testing.T) {
	t.Helper()

	dryRunFlag = false
	excludeFlags = nil
	configFlag = ""
	listExcludeFlags = nil
}

func defaultGlobs() []string {
	return []string{"crates/*", "tests", "examples", "swarm"}
}

func TestRootCmd_StripsGivenRoot(t *testing.T) {
	resetFlags(t)

	mockWf := &mockWorkflow{}
	swapWorkflow(t, mockWf)

	root := t.TempDir()

	mockWf.On("Strip", domain.StripArgs{
		Root:  m.Path(root),
		Globs: defaultGlobs(),
	}).Return(nil)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{root})

	require.NoError(t, cmd.Execute())

	mockWf.AssertExpectations(t)
}

func TestRootCmd_DefaultsToCurrentDirectory(t *testing.T) {
	resetFlags(t)

	mockWf := &mockWorkflow{}
	swapWorkflow(t, mockWf)

	mockWf.On("Strip", mock.MatchedBy(func(args domain.StripArgs) bool {
		return args.Root == m.Path(".") && !args.DryRun
	})).Return(nil)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	mockWf.AssertExpectations(t)
}

func TestRootCmd_DryRunAndExcludeFlags(t *testing.T) {
	resetFlags(t)

	mockWf := &mockWorkflow{}
	swapWorkflow(t, mockWf)

	root := t.TempDir()

	mockWf.On("Strip", mock.MatchedBy(func(args domain.StripArgs) bool {
		return args.DryRun && len(args.Exclude) == 1 && args.Exclude[0] == `generated\.rs$`
	})).Return(nil)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--dry-run", "--exclude", `generated\.rs$`, root})

	require.NoError(t, cmd.Execute())

	mockWf.AssertExpectations(t)
}

func TestRootCmd_ConfigFileOverridesGlobs(t *testing.T) {
	resetFlags(t)

	mockWf := &mockWorkflow{}
	swapWorkflow(t, mockWf)

	root := t.TempDir()
	configPath := filepath.Join(root, "detest.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("globs:\n  - src\nexclude:\n  - skip\n"), 0o600))

	mockWf.On("Strip", domain.StripArgs{
		Root:    m.Path(root),
		Globs:   []string{"src"},
		Exclude: []string{"skip"},
	}).Return(nil)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{root})

	require.NoError(t, cmd.Execute())

	mockWf.AssertExpectations(t)
}

func TestRootCmd_ExplicitConfigFlag(t *testing.T) {
	resetFlags(t)

	mockWf := &mockWorkflow{}
	swapWorkflow(t, mockWf)

	root := t.TempDir()
	configPath := filepath.Join(t.TempDir(), "other.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("globs:\n  - lib\n"), 0o600))

	mockWf.On("Strip", mock.MatchedBy(func(args domain.StripArgs) bool {
		return len(args.Globs) == 1 && args.Globs[0] == "lib"
	})).Return(nil)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", configPath, root})

	require.NoError(t, cmd.Execute())

	mockWf.AssertExpectations(t)
}

func TestRootCmd_MissingExplicitConfigFails(t *testing.T) {
	resetFlags(t)

	mockWf := &mockWorkflow{}
	swapWorkflow(t, mockWf)

	root := t.TempDir()
	missing := filepath.Join(t.TempDir(), "nope.yml")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", missing, root})

	require.Error(t, cmd.Execute())

	mockWf.AssertNotCalled(t, "Strip", mock.Anything)
}

func TestRootCmd_MalformedConfigFails(t *testing.T) {
	resetFlags(t)

	mockWf := &mockWorkflow{}
	swapWorkflow(t, mockWf)

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "detest.yml"), []byte("globs: [unclosed\n"), 0o600))

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{root})

	require.Error(t, cmd.Execute())

	mockWf.AssertNotCalled(t, "Strip", mock.Anything)
}

func TestRootCmd_RejectsExtraArgs(t *testing.T) {
	resetFlags(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"one", "two"})

	require.Error(t, cmd.Execute())
}
