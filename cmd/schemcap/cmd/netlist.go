package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenSchemLab/OpenSchemCap/pkg/circuit"
	"github.com/OpenSchemLab/OpenSchemCap/pkg/deck"
)

var (
	asJSON     bool
	asKiCad    bool
	outputPath string
)

var netlistCmd = &cobra.Command{
	Use:   "netlist <deck-file>",
	Short: "Regenerate or convert a circuit netlist",
	Long: `Read a SPICE-style deck, rebuild the connectivity graph and write it
back out as a SPICE netlist, connectivity JSON or a KiCad-style netlist.

Examples:
  schemcap netlist divider.cir
  schemcap netlist --json divider.cir
  schemcap netlist --kicad -o divider.net divider.cir`,
	Args: cobra.ExactArgs(1),
	RunE: runNetlist,
}

func init() {
	rootCmd.AddCommand(netlistCmd)

	netlistCmd.Flags().BoolVar(&asJSON, "json", false, "emit connectivity JSON")
	netlistCmd.Flags().BoolVar(&asKiCad, "kicad", false, "emit a KiCad-style netlist")
	netlistCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"write to file instead of stdout")
}

func runNetlist(cmd *cobra.Command, args []string) error {
	if asJSON && asKiCad {
		return fmt.Errorf("--json and --kicad are mutually exclusive")
	}

	graph, warnings, err := loadDeck(args[0])
	if err != nil {
		return err
	}
	reportWarnings(warnings)

	var out []byte
	switch {
	case asJSON:
		out, err = graph.ExportJSON()
		if err != nil {
			return fmt.Errorf("JSON export failed: %w", err)
		}
		out = append(out, '\n')
	case asKiCad:
		text, err := graph.ExportKiCad()
		if err != nil {
			return fmt.Errorf("KiCad export failed: %w", err)
		}
		out = []byte(text)
	default:
		text, genWarnings := graph.GenerateNetlist()
		reportWarnings(genWarnings)
		out = []byte(text + "\n")
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, out, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputPath, err)
		}
		if verbose {
			fmt.Printf("wrote %d bytes to %s\n", len(out), outputPath)
		}
		return nil
	}

	fmt.Print(string(out))
	return nil
}

// loadDeck parses a deck file into a connectivity graph.
func loadDeck(filename string) (*circuit.Graph, []string, error) {
	parser, err := deck.NewParser()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create parser: %w", err)
	}

	d, err := parser.ParseFile(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	if verbose {
		fmt.Printf("parsed %d elements from %s\n", len(d.Elements), filename)
	}
	return d.Graph(), d.Warnings, nil
}

func reportWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
}
