package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"barrel/core/logger"
)

var rootCmd = &cobra.Command{
	Use:   "barrel",
	Short: "A CLI tool for generating component barrel files.",
	Long: `Barrel scans your source tree for component entry points and keeps a
single barrel file up to date that re-exports every component it finds.
Run it once per build, or in watch mode to regenerate on change.`,
}

var logfile string
var verbose bool

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logfile, "logfile", "", "File to write logs to")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
}

// newLogger builds the logger injected into the core, honoring the root
// flags. The returned closer is non-nil when a logfile was opened.
func newLogger() (logger.Logger, io.Closer, error) {
	var w io.Writer = os.Stderr
	var closer io.Closer

	if logfile != "" {
		f, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open logfile %s: %w", logfile, err)
		}
		w = io.MultiWriter(os.Stderr, f)
		closer = f
	}

	return logger.New(logger.Options{Verbose: verbose, Writer: w}), closer, nil
}
