// Package cmd provides the root command and CLI setup for detest.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/detest/internal/adapter"
	"github.com/mouse-blink/detest/internal/config"
	"github.com/mouse-blink/detest/internal/controller"
	"github.com/mouse-blink/detest/internal/domain"
	m "github.com/mouse-blink/detest/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var scanner domain.Scanner
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	scanner = domain.NewScanner()
	workflow = domain.NewWorkflow(fsAdapter, scanner, ui)
}

var dryRunFlag bool
var excludeFlags []string
var configFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detest [root]",
		Short: "Strip #[cfg(test)] modules from Rust source trees",
		Long: `Detest scans a Rust source tree and removes inline #[cfg(test)] test
modules from every .rs file it finds, rewriting changed files in place.

Files are discovered under the crates/*, tests, examples and swarm
subtrees of the given root directory (current directory when omitted).
Each file is processed independently; read or write failures on one file
are reported and never abort the run.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			root := parseRoot(args)

			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}

			return workflow.Strip(domain.StripArgs{
				Root:    root,
				Globs:   cfg.Globs,
				Exclude: cfg.MergeExcludes(excludeFlags),
				DryRun:  dryRunFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "report files that would change without writing them")
	cmd.Flags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "path to a detest.yml config file")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parseRoot(args []string) m.Path {
	if len(args) == 0 {
		return m.Path(".")
	}

	return m.Path(args[0])
}

// loadConfig resolves the config path: an explicit --config wins and must
// exist, otherwise detest.yml under the root is tried and may be absent.
func loadConfig(root m.Path) (*config.Config, error) {
	if configFlag != "" {
		return config.LoadRequired(configFlag)
	}

	return config.Load(filepath.Join(string(root), config.DefaultFileName))
}
