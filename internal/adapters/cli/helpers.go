package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/adapters/fixtures"
	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/application/common"
	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/application/planning"
	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/domain/economy"
	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/infrastructure/config"
)

// planningCycle bundles everything one plan invocation needs: the hydrated
// fixture, the filled collector, and a configured planner.
type planningCycle struct {
	hydrated  *fixtures.Hydrated
	collector *planning.OfferCollector
	snapshot  *planning.Snapshot
	planner   *planning.ChainPlanner
}

// newPlanningCycle hydrates the fixture and wires a planner from config.
// The distance strategy is graph-based when the fixture declares economic
// edges, position-based otherwise.
func newPlanningCycle(cfg *config.Config) (*planningCycle, error) {
	hydrated, err := fixtures.LoadFile(fixturePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load fixture: %w", err)
	}

	snapshot := planning.NewSnapshot(hydrated.Corps, hydrated.Nodes)
	collector := planning.NewOfferCollector(cfg.Planner.HaulingRate)
	collector.Collect(snapshot.AllOffers())

	var strategy planning.DistanceStrategy
	if hydrated.Navigator != nil {
		strategy = planning.NewGraphDistance(hydrated.Navigator, snapshot)
	} else {
		strategy = planning.NewPositionDistance()
	}

	opts := []planning.Option{
		planning.WithMaxDepth(cfg.Planner.MaxDepth),
		planning.WithGoalResources(cfg.Planner.GoalResources),
		planning.WithMintValues(economy.NewMintValueTable(cfg.Planner.MintValues)),
		planning.WithLogger(newLogger(cfg)),
	}

	return &planningCycle{
		hydrated:  hydrated,
		collector: collector,
		snapshot:  snapshot,
		planner:   planning.NewChainPlanner(collector, snapshot, strategy, opts...),
	}, nil
}

// newLogger builds the planner logger from the logging config. The
// --verbose flag lowers the level floor to debug regardless of config.
func newLogger(cfg *config.Config) common.Logger {
	var out io.Writer = os.Stdout
	if cfg.Logging.Output == "stderr" {
		out = os.Stderr
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	return common.NewWriterLogger(out, level)
}

func loadConfig() *config.Config {
	return config.LoadConfigOrDefault(configPath)
}
