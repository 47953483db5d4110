package planning

import (
	"math"

	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/domain/economy"
)

// DistanceStrategy computes the economic distance between two corps and
// decides which corps the planner may reach at all. The strategy is chosen
// once at planner construction: position-based when no navigator exists,
// graph-based otherwise.
type DistanceStrategy interface {
	// Distance returns the hauling distance between two corps, +Inf when
	// they cannot reach each other.
	Distance(from, to economy.Corp) float64

	// Connected reports whether a corp participates in the economy at all.
	Connected(c economy.Corp) bool
}

// PositionDistance falls back to Manhattan distance between corp positions.
// Every corp is considered reachable.
type PositionDistance struct{}

// NewPositionDistance creates the position-based fallback strategy.
func NewPositionDistance() *PositionDistance {
	return &PositionDistance{}
}

func (d *PositionDistance) Distance(from, to economy.Corp) float64 {
	return economy.Distance(from.Position(), to.Position())
}

func (d *PositionDistance) Connected(c economy.Corp) bool {
	return true
}

// GraphDistance measures distance as the navigator's weighted path cost
// over economic edges between the nodes hosting each corp. A corp is
// connected only if its node is touched by at least one economic edge.
type GraphDistance struct {
	navigator economy.Navigator
	snapshot  *Snapshot
	connected map[string]bool
}

// NewGraphDistance precomputes the set of nodes touched by any economic
// edge; corps on nodes outside that set are unreachable.
func NewGraphDistance(navigator economy.Navigator, snapshot *Snapshot) *GraphDistance {
	connected := make(map[string]bool)
	for _, e := range navigator.Edges(economy.EdgeKindEconomic) {
		a, b, ok := e.Nodes()
		if !ok {
			continue
		}
		connected[a] = true
		connected[b] = true
	}
	return &GraphDistance{
		navigator: navigator,
		snapshot:  snapshot,
		connected: connected,
	}
}

func (d *GraphDistance) Distance(from, to economy.Corp) float64 {
	fromNode := d.snapshot.NodeOf(from.ID())
	toNode := d.snapshot.NodeOf(to.ID())
	if fromNode == "" || toNode == "" {
		return math.Inf(1)
	}
	if fromNode == toNode {
		return 0
	}
	return d.navigator.Distance(fromNode, toNode, economy.EdgeKindEconomic)
}

func (d *GraphDistance) Connected(c economy.Corp) bool {
	node := d.snapshot.NodeOf(c.ID())
	return node != "" && d.connected[node]
}
