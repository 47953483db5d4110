package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/adapters/metrics"
	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/domain/chain"
)

// passOutcome fabricates one pass result: two viable chains, the more
// profitable one funded.
func passOutcome() (viable, funded []*chain.Chain) {
	cheap := chain.New("chain-7-upgrader-1", []chain.Segment{
		chain.NewSegment("mine-1", "mine", "energy", 100, 0, 0.05),
		chain.NewSegment("upgrader-1", "upgrader", "upgrade", 100, 0, 0.10),
	}, 1000)
	cheap.Funded = true

	dear := chain.New("chain-7-upgrader-2", []chain.Segment{
		chain.NewSegment("mine-2", "mine", "energy", 100, 400, 0),
		chain.NewSegment("upgrader-2", "upgrader", "upgrade", 100, 400, 0),
	}, 1000)

	return []*chain.Chain{cheap, dear}, []*chain.Chain{cheap}
}

func TestPlannerMetricsCollector_RecordsPassOutcomes(t *testing.T) {
	// Arrange
	metrics.InitRegistry()
	collector := metrics.NewPlannerMetricsCollector()
	require.NoError(t, collector.Register())
	viable, funded := passOutcome()

	// Act
	collector.RecordGoals("demo", 3)
	collector.RecordPass("demo", 7, viable, funded, 25*time.Millisecond)

	// Assert
	expected := `
# HELP colony_planner_chains_funded_total Total number of chains accepted by budget packing
# TYPE colony_planner_chains_funded_total counter
colony_planner_chains_funded_total{colony="demo"} 1
# HELP colony_planner_chains_viable_total Total number of chains that survived profitability filtering
# TYPE colony_planner_chains_viable_total counter
colony_planner_chains_viable_total{colony="demo"} 2
# HELP colony_planner_goals_discovered_total Total number of value-minting goals discovered
# TYPE colony_planner_goals_discovered_total counter
colony_planner_goals_discovered_total{colony="demo"} 3
`
	require.NoError(t, testutil.GatherAndCompare(metrics.Registry, strings.NewReader(expected),
		"colony_planner_goals_discovered_total",
		"colony_planner_chains_viable_total",
		"colony_planner_chains_funded_total",
	))
}

func TestPlannerMetricsCollector_RecordGoalsAccumulatesAcrossPasses(t *testing.T) {
	// Arrange
	metrics.InitRegistry()
	collector := metrics.NewPlannerMetricsCollector()
	require.NoError(t, collector.Register())

	// Act
	collector.RecordGoals("demo", 2)
	collector.RecordGoals("demo", 3)

	// Assert
	expected := `
# HELP colony_planner_goals_discovered_total Total number of value-minting goals discovered
# TYPE colony_planner_goals_discovered_total counter
colony_planner_goals_discovered_total{colony="demo"} 5
`
	require.NoError(t, testutil.GatherAndCompare(metrics.Registry, strings.NewReader(expected),
		"colony_planner_goals_discovered_total",
	))
}

func TestHandler_ServesRecordedMetrics(t *testing.T) {
	// Arrange
	metrics.InitRegistry()
	collector := metrics.NewPlannerMetricsCollector()
	require.NoError(t, collector.Register())
	viable, funded := passOutcome()
	collector.RecordGoals("demo", 1)
	collector.RecordPass("demo", 7, viable, funded, time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	// Act
	metrics.Handler().ServeHTTP(rec, req)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `colony_planner_goals_discovered_total{colony="demo"} 1`)
	assert.Contains(t, body, `colony_planner_chains_funded_total{colony="demo"} 1`)
	assert.Contains(t, body, "colony_planner_planning_duration_seconds_bucket")
}

func TestNewServer_ServesRegistryAtConfiguredPath(t *testing.T) {
	// Arrange
	metrics.InitRegistry()
	srv := metrics.NewServer("localhost", 9190, "/metrics")

	// Assert
	assert.Equal(t, "http://localhost:9190/metrics", srv.URL())
}
