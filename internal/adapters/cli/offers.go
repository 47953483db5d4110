package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewOffersCommand creates the offers command
func NewOffersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "offers",
		Short: "Show the aggregated offer book for the colony fixture",
		Long: `Collect the fixture's offers and print per-resource supply and demand
totals.

Example:
  colonyd offers --fixture colony.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			cycle, err := newPlanningCycle(cfg)
			if err != nil {
				return err
			}

			resources := cycle.collector.Resources()
			fmt.Printf("Offer book: %d corps, %d resources\n\n", cycle.snapshot.Len(), len(resources))
			fmt.Printf("%-16s %10s %10s %6s %6s\n", "RESOURCE", "SUPPLY", "DEMAND", "SELLS", "BUYS")

			for _, resource := range resources {
				fmt.Printf("%-16s %10d %10d %6d %6d\n",
					resource,
					cycle.collector.TotalSellQuantity(resource),
					cycle.collector.TotalBuyQuantity(resource),
					len(cycle.collector.SellOffers(resource)),
					len(cycle.collector.BuyOffers(resource)),
				)
			}
			return nil
		},
	}

	return cmd
}
