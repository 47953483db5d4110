package navigator

import (
	"container/heap"
	"math"

	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/domain/economy"
)

// MemoryNavigator is an in-memory weighted graph satisfying the
// economy.Navigator port. Edges are grouped by kind; AddEdge inserts both
// directions.
type MemoryNavigator struct {
	edges map[string][]economy.WeightedEdge
}

// NewMemoryNavigator creates an empty navigator.
func NewMemoryNavigator() *MemoryNavigator {
	return &MemoryNavigator{
		edges: make(map[string][]economy.WeightedEdge),
	}
}

// AddEdge adds a bidirectional weighted edge of the given kind between two
// nodes.
func (n *MemoryNavigator) AddEdge(kind, a, b string, weight float64) {
	n.edges[kind] = append(n.edges[kind],
		economy.WeightedEdge{Edge: economy.EncodeEdge(a, b), Weight: weight},
		economy.WeightedEdge{Edge: economy.EncodeEdge(b, a), Weight: weight},
	)
}

// Edges returns every edge of a kind.
func (n *MemoryNavigator) Edges(kind string) []economy.WeightedEdge {
	return n.edges[kind]
}

// EdgeCount returns the number of directed edges of a kind.
func (n *MemoryNavigator) EdgeCount(kind string) int {
	return len(n.edges[kind])
}

// Distance returns the cheapest weighted path cost between two nodes over
// edges of the given kind, or +Inf when either node is unknown or no path
// exists.
func (n *MemoryNavigator) Distance(nodeA, nodeB, kind string) float64 {
	adjacency := make(map[string][]neighbor)
	for _, e := range n.edges[kind] {
		from, to, ok := e.Nodes()
		if !ok {
			continue
		}
		adjacency[from] = append(adjacency[from], neighbor{node: to, weight: e.Weight})
	}

	if _, ok := adjacency[nodeA]; !ok {
		return math.Inf(1)
	}
	if nodeA == nodeB {
		return 0
	}

	// Dijkstra over the kind's adjacency.
	dist := map[string]float64{nodeA: 0}
	pq := &nodeQueue{{node: nodeA, cost: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(nodeItem)
		if item.node == nodeB {
			return item.cost
		}
		if item.cost > dist[item.node] {
			continue
		}
		for _, nb := range adjacency[item.node] {
			next := item.cost + nb.weight
			if known, ok := dist[nb.node]; !ok || next < known {
				dist[nb.node] = next
				heap.Push(pq, nodeItem{node: nb.node, cost: next})
			}
		}
	}

	return math.Inf(1)
}

type neighbor struct {
	node   string
	weight float64
}

type nodeItem struct {
	node string
	cost float64
}

type nodeQueue []nodeItem

func (q nodeQueue) Len() int            { return len(q) }
func (q nodeQueue) Less(i, j int) bool  { return q[i].cost < q[j].cost }
func (q nodeQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x interface{}) { *q = append(*q, x.(nodeItem)) }
func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
