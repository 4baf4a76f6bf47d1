package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/detest/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()
var listExcludeFlags []string

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [root]",
		Short: "List discovered files and their test-module counts",
		Long: `List scans the same file set as a strip run and reports how many
#[cfg(test)] modules each file contains, without writing anything.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			root := parseRoot(args)

			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}

			return workflow.List(domain.ListArgs{
				Root:    root,
				Globs:   cfg.Globs,
				Exclude: cfg.MergeExcludes(listExcludeFlags),
			})
		},
	}
	cmd.Flags().StringArrayVarP(&listExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
