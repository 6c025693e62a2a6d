package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <deck-file>",
	Short: "Summarize circuit connectivity",
	Long: `Read a deck and print node, component and edge counts plus whether the
circuit forms a single connected island.

Examples:
  schemcap info divider.cir
  schemcap info -v divider.cir`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	graph, warnings, err := loadDeck(args[0])
	if err != nil {
		return err
	}
	reportWarnings(warnings)

	info := graph.Info()

	fmt.Printf("Title:      %s\n", graph.Config().Title)
	fmt.Printf("Nodes:      %d\n", info.NumNodes)
	fmt.Printf("Components: %d\n", info.NumComponents)
	fmt.Printf("Edges:      %d\n", info.NumEdges)
	fmt.Printf("Connected:  %v\n", info.IsConnected)

	if verbose {
		fmt.Printf("Node list:  %s\n", strings.Join(info.Nodes, ", "))
		fmt.Printf("Components: %s\n", strings.Join(info.Components, ", "))
	}
	return nil
}
