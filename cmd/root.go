// Package cmd provides the root command and CLI setup for doxycov.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/doxycov/internal/adapter"
	"github.com/mouse-blink/doxycov/internal/controller"
	"github.com/mouse-blink/doxycov/internal/domain"
	m "github.com/mouse-blink/doxycov/internal/model"
)

// defaultThreshold is the minimum acceptable coverage percentage when
// neither the flag nor the config file sets one.
const defaultThreshold = 80

var xmlAdapter adapter.DoxygenXMLAdapter
var fsAdapter adapter.SourceFSAdapter
var configStore adapter.ConfigStore
var ui controller.UI
var workflow domain.Workflow

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	xmlAdapter = adapter.NewLocalDoxygenXMLAdapter()
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	configStore = adapter.NewConfigStore()
	workflow = domain.NewWorkflow(xmlAdapter, fsAdapter, ui)
}

var thresholdFlag int
var noErrorFlag bool
var excludeFlags []string
var configFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "doxycov <dir>",
		Short:        "Doxygen documentation coverage gate",
		Long:         rootLongDescription,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := m.Path(args[0])

			cfg, err := loadConfig(dir)
			if err != nil {
				return err
			}

			threshold := resolveThreshold(cmd, cfg)
			noError := noErrorFlag || cfg.NoError
			exclude := append(append([]string{}, cfg.Exclude...), excludeFlags...)

			index, err := workflow.Scan(dir)
			if err != nil {
				return err
			}

			index, err = domain.Filter(index, exclude)
			if err != nil {
				return err
			}

			summary := domain.Summarize(index, threshold)
			if err := ui.DisplayReport(summary); err != nil {
				return err
			}

			if noError || summary.Shortfall() == 0 {
				return nil
			}

			return &domain.ThresholdError{Percent: summary.Percent, Threshold: threshold}
		},
	}
	cmd.Flags().IntVarP(&thresholdFlag, "threshold", "t", defaultThreshold, "min acceptable coverage percentage")
	cmd.Flags().BoolVarP(&noErrorFlag, "noerror", "n", false, "do not return an error code after execution")
	cmd.Flags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().StringVarP(&configFlag, "config", "c", "", "path to config file (default: <dir>/"+adapter.DefaultConfigFileName+")")

	return cmd
}

// Execute runs the root command and maps the result to a process exit
// code. This is called by main.main(). A coverage shortfall exits with the
// threshold-minus-actual distance; every other failure exits 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var shortfall *domain.ThresholdError
		if errors.As(err, &shortfall) {
			os.Exit(shortfall.ExitCode())
		}

		os.Exit(1)
	}
}

// loadConfig reads the explicit config path, or the default config file
// inside the scanned directory when none is given. Only the explicit path
// is required to exist.
func loadConfig(dir m.Path) (m.Config, error) {
	if configFlag != "" {
		path := m.Path(configFlag)
		if !fsAdapter.IsFile(path) {
			return m.Config{}, fmt.Errorf("config file not found: %s", path)
		}

		return configStore.Load(path)
	}

	return configStore.Load(fsAdapter.JoinPath(string(dir), adapter.DefaultConfigFileName))
}

// resolveThreshold applies flag-over-config precedence.
func resolveThreshold(cmd *cobra.Command, cfg m.Config) int {
	if cmd.Flags().Changed("threshold") {
		return thresholdFlag
	}

	if cfg.Threshold != nil {
		return *cfg.Threshold
	}

	return thresholdFlag
}
