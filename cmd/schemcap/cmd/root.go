package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "schemcap",
	Short: "Schematic capture connectivity tool",
	Long: `Inspect, validate and convert circuit connectivity netlists.

Examples:
  schemcap info divider.cir                # node/component/edge summary
  schemcap check divider.cir               # topology validation report
  schemcap netlist divider.cir             # regenerate the SPICE netlist
  schemcap netlist --json divider.cir      # connectivity as JSON
  schemcap netlist --kicad divider.cir     # KiCad-style netlist`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
