package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"barrel/core/config"
	"barrel/core/lifecycle"
	"barrel/core/registry"
	"barrel/core/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the barrel file whenever components change",
	Long: `Performs an initial scan, then watches the base directory and
regenerates the barrel file whenever the component set changes.
Runs until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, closer, err := newLogger()
		if err != nil {
			return err
		}
		if closer != nil {
			defer closer.Close()
		}

		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		cfg, err := config.Load(wd, log)
		if err != nil {
			return err
		}

		reg := registry.New(cfg, wd, log)
		hooks := lifecycle.Bind(reg, log)

		// The generated file must never retrigger a rebuild.
		excludeOutput, err := filepath.Rel(reg.Base(), reg.Output())
		if err != nil {
			excludeOutput = cfg.Output
		}

		w, err := watcher.New(reg.Base(), []string{excludeOutput}, hooks, log)
		if err != nil {
			return err
		}

		done := make(chan error, 1)
		go func() {
			done <- w.Watch()
		}()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-done:
			return err
		case s := <-sig:
			log.Info("Received %v, shutting down", s)
			if err := w.Close(); err != nil {
				return err
			}
			return <-done
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
