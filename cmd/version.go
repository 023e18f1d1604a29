package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"barrel/core/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of Barrel",
	Long:  `Displays the version of Barrel.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Barrel %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
