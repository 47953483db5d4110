package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/adapters/persistence"
	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/domain/chain"
	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/infrastructure/database"
)

// NewChainsCommand creates the chains command
func NewChainsCommand() *cobra.Command {
	var (
		tick       int
		fundedOnly bool
	)

	cmd := &cobra.Command{
		Use:   "chains",
		Short: "List persisted chains",
		Long: `List chains previously saved by 'plan --save'.

Examples:
  colonyd chains --funded
  colonyd chains --tick 100`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()

			db, err := database.NewConnection(&cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer database.Close(db)

			if err := database.AutoMigrate(db); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}

			repo := persistence.NewGormChainRepository(db)

			var chains []*chain.Chain
			if fundedOnly {
				chains, err = repo.FindFunded(context.Background())
			} else {
				chains, err = repo.FindByTick(context.Background(), tick)
			}
			if err != nil {
				return err
			}

			if len(chains) == 0 {
				fmt.Println("No chains found")
				return nil
			}

			formatter := NewChainFormatter()
			for _, c := range chains {
				fmt.Println(formatter.FormatChain(c))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&tick, "tick", 0, "Show chains saved for this tick")
	cmd.Flags().BoolVar(&fundedOnly, "funded", false, "Show only funded chains")

	return cmd
}
