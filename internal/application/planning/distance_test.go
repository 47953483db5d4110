package planning_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/adapters/navigator"
	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/application/planning"
	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/domain/economy"
)

func TestPositionDistance(t *testing.T) {
	// Arrange
	a := newTestCorp("a", "mine", 0, at(0, 0))
	b := newTestCorp("b", "upgrader", 0, at(3, 4))
	strategy := planning.NewPositionDistance()

	// Assert
	assert.Equal(t, 7.0, strategy.Distance(a, b))
	assert.True(t, strategy.Connected(a))
	assert.True(t, strategy.Connected(b))
}

func TestGraphDistance_Connected(t *testing.T) {
	// Arrange
	nav := navigator.NewMemoryNavigator()
	nav.AddEdge(economy.EdgeKindEconomic, "room-1", "room-2", 5)

	wired := newTestCorp("wired", "mine", 0, at(0, 0))
	island := newTestCorp("island", "mine", 0, at(0, 0))
	nodeless := newTestCorp("nodeless", "mine", 0, at(0, 0))
	snapshot := planning.NewSnapshot(
		[]economy.Corp{wired, island, nodeless},
		map[string]string{"wired": "room-1", "island": "room-9"},
	)
	strategy := planning.NewGraphDistance(nav, snapshot)

	// Assert
	assert.True(t, strategy.Connected(wired))
	assert.False(t, strategy.Connected(island))
	assert.False(t, strategy.Connected(nodeless))
}

func TestGraphDistance_Distance(t *testing.T) {
	// Arrange
	nav := navigator.NewMemoryNavigator()
	nav.AddEdge(economy.EdgeKindEconomic, "room-1", "room-2", 5)

	a := newTestCorp("a", "mine", 0, at(0, 0))
	b := newTestCorp("b", "upgrader", 0, at(40, 40))
	c := newTestCorp("c", "mine", 0, at(0, 0))
	d := newTestCorp("d", "mine", 0, at(0, 0))
	snapshot := planning.NewSnapshot(
		[]economy.Corp{a, b, c, d},
		map[string]string{"a": "room-1", "b": "room-2", "c": "room-1"},
	)
	strategy := planning.NewGraphDistance(nav, snapshot)

	// Assert
	assert.Equal(t, 5.0, strategy.Distance(a, b))
	assert.Equal(t, 0.0, strategy.Distance(a, c))
	assert.True(t, math.IsInf(strategy.Distance(a, d), 1))
}

func TestChainPlanner_ExcludesDisconnectedSuppliers(t *testing.T) {
	// Arrange: the only energy seller sits on a node outside the economic
	// component, so the goal cannot be sourced.
	nav := navigator.NewMemoryNavigator()
	nav.AddEdge(economy.EdgeKindEconomic, "room-1", "room-2", 5)

	mine := newTestCorp("mine-1", "mine", 0, at(0, 0)).
		sell(economy.ResourceEnergy, 500, 0)
	upgrader := newTestCorp("upgrader-1", "upgrader", 0, at(0, 0)).
		sell(economy.ResourceUpgrade, 100, 0).
		buy(economy.ResourceEnergy, 100, 0)
	snapshot := planning.NewSnapshot(
		[]economy.Corp{mine, upgrader},
		map[string]string{"mine-1": "room-9", "upgrader-1": "room-1"},
	)
	collector := planning.NewOfferCollector(planning.DefaultHaulingRate)
	collector.Collect(snapshot.AllOffers())
	planner := planning.NewChainPlanner(collector, snapshot, planning.NewGraphDistance(nav, snapshot),
		planning.WithMintValues(economy.NewMintValueTable(map[string]float64{
			economy.ResourceUpgrade: 1000,
		})))

	// Act
	goals := planner.FindGoals()
	chains := planner.FindViableChains(1)

	// Assert
	require.Len(t, goals, 1)
	assert.Empty(t, chains)
}
