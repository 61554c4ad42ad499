package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SIVAkumar-0801/beam-studio-web/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of beamstudio",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("beamstudio v%s\n", version.Version)
		fmt.Println("Single-Span Beam Analysis Tool")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
