package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/domain/chain"
)

// PlannerMetricsCollector records planning cycle outcomes: goals discovered,
// chains built and funded, credits committed, and pass duration.
type PlannerMetricsCollector struct {
	goalsDiscoveredTotal    *prometheus.CounterVec
	chainsViableTotal       *prometheus.CounterVec
	chainsFundedTotal       *prometheus.CounterVec
	fundedCostCredits       *prometheus.GaugeVec
	fundedProfitCredits     *prometheus.GaugeVec
	chainDepth              *prometheus.HistogramVec
	planningDurationSeconds *prometheus.HistogramVec
}

// NewPlannerMetricsCollector creates a new planner metrics collector
func NewPlannerMetricsCollector() *PlannerMetricsCollector {
	return &PlannerMetricsCollector{
		goalsDiscoveredTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "goals_discovered_total",
				Help:      "Total number of value-minting goals discovered",
			},
			[]string{"colony"},
		),

		chainsViableTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "chains_viable_total",
				Help:      "Total number of chains that survived profitability filtering",
			},
			[]string{"colony"},
		),

		chainsFundedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "chains_funded_total",
				Help:      "Total number of chains accepted by budget packing",
			},
			[]string{"colony"},
		),

		fundedCostCredits: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "funded_cost_credits",
				Help:      "Summed total cost of the funded chain set for the last tick",
			},
			[]string{"colony", "tick"},
		),

		fundedProfitCredits: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "funded_profit_credits",
				Help:      "Summed expected profit of the funded chain set for the last tick",
			},
			[]string{"colony", "tick"},
		),

		chainDepth: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "chain_depth",
				Help:      "Segment count distribution of funded chains",
				Buckets:   []float64{1, 2, 3, 4, 6, 8, 10},
			},
			[]string{"colony"},
		),

		planningDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "planning_duration_seconds",
				Help:      "Duration of a full collect-and-plan pass",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
			[]string{"colony"},
		),
	}
}

// Register registers all planner metrics with the Prometheus registry
func (c *PlannerMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	collectors := []prometheus.Collector{
		c.goalsDiscoveredTotal,
		c.chainsViableTotal,
		c.chainsFundedTotal,
		c.fundedCostCredits,
		c.fundedProfitCredits,
		c.chainDepth,
		c.planningDurationSeconds,
	}

	for _, collector := range collectors {
		if err := Registry.Register(collector); err != nil {
			return err
		}
	}

	return nil
}

// RecordGoals records goal discovery for one pass.
func (c *PlannerMetricsCollector) RecordGoals(colony string, count int) {
	c.goalsDiscoveredTotal.WithLabelValues(colony).Add(float64(count))
}

// RecordPass records the outcome of one planning pass.
func (c *PlannerMetricsCollector) RecordPass(colony string, tick int, viable, funded []*chain.Chain, duration time.Duration) {
	tickLabel := strconv.Itoa(tick)

	c.chainsViableTotal.WithLabelValues(colony).Add(float64(len(viable)))
	c.chainsFundedTotal.WithLabelValues(colony).Add(float64(len(funded)))

	cost, profit := 0.0, 0.0
	for _, ch := range funded {
		cost += ch.TotalCost
		profit += ch.Profit
		c.chainDepth.WithLabelValues(colony).Observe(float64(len(ch.Segments)))
	}
	c.fundedCostCredits.WithLabelValues(colony, tickLabel).Set(cost)
	c.fundedProfitCredits.WithLabelValues(colony, tickLabel).Set(profit)

	c.planningDurationSeconds.WithLabelValues(colony).Observe(duration.Seconds())
}
