// Command dmldemo demonstrates the dml geometry and color engine.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/dml"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "dmldemo",
	Short: "DrawingML geometry and color resolution demo",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			dml.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log fallbacks (unknown names, degenerate arcs) to stderr")
	rootCmd.AddCommand(shapesCmd, presetCmd, colorCmd, galleryCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
