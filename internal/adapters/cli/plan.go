package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/adapters/metrics"
	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/adapters/persistence"
	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/infrastructure/database"
)

// NewPlanCommand creates the plan command
func NewPlanCommand() *cobra.Command {
	var (
		tick   int
		budget float64
		save   bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Run one planning cycle and show the funded chain set",
		Long: `Run one full planning cycle over the colony fixture: collect offers,
discover value-minting goals, trace each goal's supply chain backward to raw
producers, filter for profitability, and fund the best non-overlapping set
within budget.

Examples:
  colonyd plan --fixture colony.yaml --tick 100
  colonyd plan --fixture colony.yaml --tick 100 --budget 5000 --save`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if budget <= 0 {
				budget = cfg.Planner.Budget
			}

			cycle, err := newPlanningCycle(cfg)
			if err != nil {
				return err
			}

			var collector *metrics.PlannerMetricsCollector
			if cfg.Metrics.Enabled {
				metrics.InitRegistry()
				collector = metrics.NewPlannerMetricsCollector()
				if err := collector.Register(); err != nil {
					return fmt.Errorf("failed to register metrics: %w", err)
				}

				srv := metrics.NewServer(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Metrics.Path)
				srv.Start()
				defer func() {
					ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
					defer cancel()
					_ = srv.Shutdown(ctx)
				}()
				fmt.Printf("Serving metrics at %s\n", srv.URL())
			}

			start := time.Now()
			goals := cycle.planner.FindGoals()
			viable := cycle.planner.ViableChainsForGoals(tick, goals)
			funded := cycle.planner.SelectBestChains(tick, viable, budget)
			elapsed := time.Since(start)

			if collector != nil {
				collector.RecordGoals(cycle.hydrated.Colony.Name, len(goals))
				collector.RecordPass(cycle.hydrated.Colony.Name, tick, viable, funded, elapsed)
			}

			fmt.Printf("Planning tick %d: %d corps, %d viable chains, %d funded (budget %.0f)\n\n",
				tick, cycle.snapshot.Len(), len(viable), len(funded), budget)

			formatter := NewChainFormatter()
			for _, c := range funded {
				fmt.Println(formatter.FormatChain(c))
			}

			if !save {
				return nil
			}

			db, err := database.NewConnection(&cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer database.Close(db)

			if err := database.AutoMigrate(db); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}

			repo := persistence.NewGormChainRepository(db)
			if err := repo.SaveAll(context.Background(), tick, funded); err != nil {
				return fmt.Errorf("failed to save chains: %w", err)
			}
			fmt.Printf("Saved %d funded chains for tick %d\n", len(funded), tick)
			return nil
		},
	}

	cmd.Flags().IntVar(&tick, "tick", 0, "Planning tick (used for chain identifiers)")
	cmd.Flags().Float64Var(&budget, "budget", 0, "Credit budget (default: config value)")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the funded chain set")

	return cmd
}
