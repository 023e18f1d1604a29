package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"barrel/core/config"
)

var force bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter barrel.yaml and output file",
	Long: `Writes a barrel.yaml with default settings into the current directory
and creates the output file it points at, since generation refuses to
write to an output path that does not already exist.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		configPath := filepath.Join(wd, config.FileName)
		if _, err := os.Stat(configPath); err == nil && !force {
			fmt.Printf("%s already exists. Use --force to overwrite.\n", config.FileName)
			return nil
		}

		cfg := config.Default()
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		if err := os.WriteFile(configPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", configPath, err)
		}

		outputPath := filepath.Join(wd, cfg.Base, cfg.Output)
		if _, err := os.Stat(outputPath); os.IsNotExist(err) {
			if err := os.WriteFile(outputPath, nil, 0o644); err != nil {
				return fmt.Errorf("failed to create output file %s: %w", outputPath, err)
			}
		}

		fmt.Printf("Created %s\n", config.FileName)
		fmt.Printf("Next Steps:\n")
		fmt.Printf("  - edit %s\n", config.FileName)
		fmt.Printf("  - barrel generate\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&force, "force", false, "Force overwrite existing files")
}
