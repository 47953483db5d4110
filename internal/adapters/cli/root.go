package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath  string
	fixturePath string
	verbose     bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "colonyd",
		Short: "Colony economy planner - discover and fund production chains",
		Long: `Colonyd runs the colony economy planning cycle over a declarative
colony fixture: corps post buy/sell offers, and the planner traces complete
production chains from value-minting goals back to raw producers, prices
them cost-plus, and funds the most profitable non-overlapping set within
budget.

Examples:
  colonyd plan --fixture colony.yaml --tick 100
  colonyd plan --fixture colony.yaml --tick 100 --budget 5000 --save
  colonyd offers --fixture colony.yaml
  colonyd chains --funded`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&fixturePath, "fixture", "colony.yaml",
		"Path to the colony fixture file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewPlanCommand())
	rootCmd.AddCommand(NewOffersCommand())
	rootCmd.AddCommand(NewChainsCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
