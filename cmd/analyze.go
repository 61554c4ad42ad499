package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SIVAkumar-0801/beam-studio-web/internal/config"
	"github.com/SIVAkumar-0801/beam-studio-web/internal/diagram"
	"github.com/SIVAkumar-0801/beam-studio-web/internal/export"
	"github.com/SIVAkumar-0801/beam-studio-web/internal/model"
	"github.com/SIVAkumar-0801/beam-studio-web/internal/session"
)

var (
	// Geometry inputs
	analyzeFile     string
	analyzeLength   float64
	analyzeSupport  string
	analyzeSupportA float64
	analyzeSupportB float64

	// Load inputs
	analyzePoints []string
	analyzeUDLs   []string
	analyzeUVLs   []string

	// Options
	analyzeStations int
	analyzeNoCharts bool

	// Export targets
	analyzeCSV       string
	analyzeXLSX      string
	analyzeReport    string
	analyzeShearImg  string
	analyzeMomentImg string
	analyzeSchemImg  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute reactions and SFD/BMD for a loaded beam",
	Long: `Compute the support reactions and the shear-force and bending-moment
distributions of a single-span beam under a combination of loads.

The beam can be given either as flags or as a YAML definition file
(see 'beamstudio loads --help' for the file format).

Load flag formats:
  --point MAG@LOC          e.g. --point 10@5       (10 kN at 5 m)
  --udl   W@START:END      e.g. --udl 5@0:10       (5 kN/m over 0-10 m)
  --uvl   W1~W2@START:END  e.g. --uvl 0~10@2:8     (0 to 10 kN/m over 2-8 m)

A rejected load is reported and skipped; the analysis runs on the
loads that passed validation.

Examples:
  # Simply supported 10 m beam, midspan point load
  beamstudio analyze --length 10 --support-b 10 --point 10@5

  # Cantilever with a UDL, exporting the station table
  beamstudio analyze --length 6 --support cantilever --udl 4@0:6 --csv out.csv

  # From a definition file, with diagram images
  beamstudio analyze --file beam.yaml --shear sfd.png --moment bmd.png`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "YAML beam definition file")
	analyzeCmd.Flags().Float64VarP(&analyzeLength, "length", "L", 10, "Beam length (m)")
	analyzeCmd.Flags().StringVar(&analyzeSupport, "support", "simply-supported", "Support type: simply-supported or cantilever")
	analyzeCmd.Flags().Float64Var(&analyzeSupportA, "support-a", 0, "Position of support A (m)")
	analyzeCmd.Flags().Float64Var(&analyzeSupportB, "support-b", 10, "Position of support B (m), ignored for cantilever")

	analyzeCmd.Flags().StringArrayVar(&analyzePoints, "point", nil, "Point load MAG@LOC (repeatable)")
	analyzeCmd.Flags().StringArrayVar(&analyzeUDLs, "udl", nil, "Uniform load W@START:END (repeatable)")
	analyzeCmd.Flags().StringArrayVar(&analyzeUVLs, "uvl", nil, "Varying load W1~W2@START:END (repeatable)")

	analyzeCmd.Flags().IntVar(&analyzeStations, "stations", model.DefaultStations, "Number of sample stations")
	analyzeCmd.Flags().BoolVar(&analyzeNoCharts, "no-charts", false, "Skip the terminal SFD/BMD charts")

	analyzeCmd.Flags().StringVar(&analyzeCSV, "csv", "", "Write the station table as CSV")
	analyzeCmd.Flags().StringVar(&analyzeXLSX, "xlsx", "", "Write the station table as XLSX")
	analyzeCmd.Flags().StringVar(&analyzeReport, "report", "", "Write a PDF analysis report")
	analyzeCmd.Flags().StringVar(&analyzeShearImg, "shear", "", "Write the shear diagram image (png/svg/pdf)")
	analyzeCmd.Flags().StringVar(&analyzeMomentImg, "moment", "", "Write the moment diagram image (png/svg/pdf)")
	analyzeCmd.Flags().StringVar(&analyzeSchemImg, "schematic", "", "Write the beam schematic image (png/svg/pdf)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	beam, loads, err := gatherInputs()
	if err != nil {
		return err
	}

	sess := session.New(beam)
	for _, l := range loads {
		if err := sess.Add(l); err != nil {
			fmt.Fprintf(os.Stderr, "rejected %s: %v\n", l, err)
		}
	}

	result, err := sess.Analyze(analyzeStations)
	if err != nil {
		return err
	}
	active := sess.Loads()

	printAnalysis(beam, active, result)

	return runExports(beam, active, result)
}

// gatherInputs builds the beam and the candidate load list from the
// definition file or, failing that, from the geometry and load flags.
func gatherInputs() (model.Beam, []model.Load, error) {
	if analyzeFile != "" {
		return config.LoadFile(analyzeFile)
	}

	support, err := config.ParseSupportType(analyzeSupport)
	if err != nil {
		return model.Beam{}, nil, err
	}
	beam := model.Beam{
		Length:   analyzeLength,
		Support:  support,
		SupportA: analyzeSupportA,
		SupportB: analyzeSupportB,
	}
	if support == model.Cantilever {
		beam.SupportB = beam.Length
	}

	var loads []model.Load
	for _, spec := range analyzePoints {
		l, err := parsePointSpec(spec)
		if err != nil {
			return model.Beam{}, nil, err
		}
		loads = append(loads, l)
	}
	for _, spec := range analyzeUDLs {
		l, err := parseUDLSpec(spec)
		if err != nil {
			return model.Beam{}, nil, err
		}
		loads = append(loads, l)
	}
	for _, spec := range analyzeUVLs {
		l, err := parseUVLSpec(spec)
		if err != nil {
			return model.Beam{}, nil, err
		}
		loads = append(loads, l)
	}
	return beam, loads, nil
}

func printAnalysis(beam model.Beam, loads []model.Load, result *model.AnalysisResult) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SINGLE-SPAN BEAM ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Beam Length (L):\t%g m\n", beam.Length)
	fmt.Fprintf(w, "  Support Type:\t%s\n", beam.Support)
	if beam.Support == model.Cantilever {
		fmt.Fprintf(w, "  Fixed Support:\t%g m\n", beam.SupportA)
	} else {
		fmt.Fprintf(w, "  Support A:\t%g m\n", beam.SupportA)
		fmt.Fprintf(w, "  Support B:\t%g m\n", beam.SupportB)
	}
	fmt.Fprintf(w, "  Sample Stations:\t%d\n", result.Stations())
	w.Flush()
	fmt.Println()

	fmt.Println("LOADS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if len(loads) == 0 {
		fmt.Println("  (none)")
	}
	for i, l := range loads {
		fmt.Printf("  %d. %s\n", i+1, l)
	}

	fmt.Println(diagram.DrawSchematic(beam, loads))

	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Reaction A (Ra):\t%.2f kN\n", result.ReactionA)
	fmt.Fprintf(w, "  Reaction B (Rb):\t%.2f kN\n", result.ReactionB)
	if beam.Support == model.Cantilever {
		fmt.Fprintf(w, "  Fixed-End Moment (Ma):\t%.2f kNm\n", result.FixedEndMoment)
	}
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("ANALYSIS SUMMARY", []string{
		fmt.Sprintf("Reaction A  = %.2f kN", result.ReactionA),
		fmt.Sprintf("Reaction B  = %.2f kN", result.ReactionB),
		fmt.Sprintf("Max Moment  = %.2f kNm", result.MaxMoment),
	}))

	if !analyzeNoCharts {
		fmt.Println()
		fmt.Println(diagram.DrawShearChart(result))
		fmt.Println()
		fmt.Println(diagram.DrawMomentChart(result))
	}
	fmt.Println()
}

func runExports(beam model.Beam, loads []model.Load, result *model.AnalysisResult) error {
	exports := []struct {
		path  string
		label string
		write func(string) error
	}{
		{analyzeCSV, "CSV", func(p string) error { return export.WriteCSVFile(result, p) }},
		{analyzeXLSX, "XLSX", func(p string) error { return export.WriteXLSX(result, p) }},
		{analyzeReport, "report", func(p string) error { return export.WriteReport(beam, loads, result, p) }},
		{analyzeShearImg, "shear diagram", func(p string) error { return diagram.ExportShearDiagram(result, p) }},
		{analyzeMomentImg, "moment diagram", func(p string) error { return diagram.ExportMomentDiagram(result, p) }},
		{analyzeSchemImg, "schematic", func(p string) error { return diagram.ExportSchematic(beam, loads, p) }},
	}

	for _, e := range exports {
		if e.path == "" {
			continue
		}
		if err := e.write(e.path); err != nil {
			return fmt.Errorf("writing %s: %w", e.label, err)
		}
		fmt.Printf("  %s written to %s\n", e.label, e.path)
	}
	return nil
}
