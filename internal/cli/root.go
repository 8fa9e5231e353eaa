// Package cli implements the ggchart command-line interface.
//
// The CLI lays out and draws chart axes described by a TOML chart file:
//   - render: draw the axes to a PNG file
//   - inspect: print the computed layout and, optionally, every drawing call
//
// All commands support --verbose (-v) for debug logging, which includes the
// layout decisions of the scale engine.
package cli

import (
	"context"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the ggchart CLI.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "ggchart",
		Short:        "ggchart lays out and draws chart axes",
		Long:         `ggchart computes axis layouts (tick labels, rotation, padding) for a chart described in TOML and renders them with gg.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			installLibraryLogger(logger)
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newInspectCmd())

	return root
}
