package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"barrel/core/config"
	"barrel/core/registry"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Scan for components and write the barrel file once",
	Long:  `Scans the configured base directory and regenerates the barrel file.`,
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
		entries, err := reg.InitialScan()
		if err != nil {
			return fmt.Errorf("failed to generate barrel: %w", err)
		}

		fmt.Printf("Generated %s with %d components\n", reg.Output(), len(entries))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
