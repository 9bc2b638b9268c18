package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/doxycov/internal/domain"
	m "github.com/mouse-blink/doxycov/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()
var listExcludeFlags []string

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list <dir>",
		Short:        "List per-file documentation coverage",
		Long:         listLongDescription,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			dir := m.Path(args[0])

			cfg, err := loadConfig(dir)
			if err != nil {
				return err
			}

			exclude := append(append([]string{}, cfg.Exclude...), listExcludeFlags...)

			index, err := workflow.Scan(dir)
			if err != nil {
				return err
			}

			index, err = domain.Filter(index, exclude)
			if err != nil {
				return err
			}

			return ui.DisplayFileTable(domain.Summarize(index, defaultThreshold))
		},
	}
	cmd.Flags().StringArrayVarP(&listExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
