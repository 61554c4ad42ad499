package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SIVAkumar-0801/beam-studio-web/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "beamstudio",
	Short: "Single-span beam analysis tool",
	Long: `beamstudio - Beam Studio

A CLI tool for the static analysis of single-span beams.

Given a beam (simply supported or cantilever) and a set of loads
(point, UDL, UVL), beamstudio computes the support reactions and the
shear-force and bending-moment distributions along the span.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   beamstudio v%-44s║\n", version.Version)
		fmt.Println("  ║   Single-Span Beam Analysis                               ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Static equilibrium analysis of single-span beams.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Simply supported and cantilever beams")
		fmt.Println("    • Point, uniform (UDL) and linearly varying (UVL) loads")
		fmt.Println("    • Support reactions and SFD/BMD diagrams")
		fmt.Println("    • CSV, XLSX, PDF and image exports")
		fmt.Println()
		fmt.Println("  Use 'beamstudio --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
