// Command f16acc reports the accuracy of the binary16 vector kernels.
//
// Usage:
//
//	f16acc info
//	f16acc sweep --kernel log --steps 20000
//	f16acc sweep --kernel exp --from -4 --to 4 --log-format json --verbose
//	f16acc eval --kernel recip -- 3 0.1 -7
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// app holds state shared by the subcommands.
type app struct {
	logFormat string
	verbose   bool
	log       *Logger
}

func newRootCmd(a *app, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "f16acc",
		Short:         "Accuracy explorer for the binary16 vector kernels",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := NewLogger(stderr, a.logFormat, a.verbose)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "log format: text or json")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newInfoCmd(), newSweepCmd(a), newEvalCmd(a))
	return root
}

func main() {
	a := &app{log: NewTextLogger(os.Stderr, slog.LevelInfo)}
	if err := newRootCmd(a, os.Stderr).Execute(); err != nil {
		a.log.Error("f16acc failed", "error", err)
		os.Exit(1)
	}
}
