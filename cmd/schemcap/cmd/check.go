package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <deck-file>",
	Short: "Validate circuit topology",
	Long: `Read a deck and report topology problems: duplicate edges between the
same node pair (potential short circuits) are issues; isolated components
and floating nodes are warnings.

The short-circuit check is a topology heuristic, not an electrical proof:
it flags any two components bound to the identical node pair.

Examples:
  schemcap check divider.cir`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	graph, warnings, err := loadDeck(args[0])
	if err != nil {
		return err
	}
	reportWarnings(warnings)

	result := graph.Validate()

	if len(result.Issues) > 0 {
		fmt.Println("Issues:")
		for _, issue := range result.Issues {
			fmt.Printf("  - %s\n", issue)
		}
	}
	if len(result.Warnings) > 0 {
		fmt.Println("Warnings:")
		for _, warning := range result.Warnings {
			fmt.Printf("  - %s\n", warning)
		}
	}

	if result.Valid {
		fmt.Println("Topology OK")
		return nil
	}
	return fmt.Errorf("%d topology issue(s) found", len(result.Issues))
}
