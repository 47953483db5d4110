package economy

import "strings"

// Corp is the capability contract every economic actor participating in
// planning must satisfy. A corp with no buy offers is a leaf producer
// (raw extraction).
type Corp interface {
	// ID returns the corp's stable identifier.
	ID() string

	// Type returns the corp's type tag (e.g. "mine", "upgrader").
	Type() string

	// Sells returns the corp's current sell offers.
	Sells() []Offer

	// Buys returns the corp's current buy offers: its input requirements.
	Buys() []Offer

	// Position returns where the corp operates.
	Position() Position

	// Margin returns the fractional markup in [0, 1) the corp applies to
	// its input cost. Wealthier corps charge thinner margins.
	Margin() float64
}

// EdgeKindEconomic is the edge kind the planner traverses when a navigator
// is configured.
const EdgeKindEconomic = "economic"

// EdgeDelimiter joins the two node identifiers inside WeightedEdge.Edge.
const EdgeDelimiter = "|"

// WeightedEdge is one weighted connection between two graph nodes. Edge
// encodes both node identifiers joined by EdgeDelimiter.
type WeightedEdge struct {
	Edge   string
	Weight float64
}

// Nodes splits the edge encoding into its two node identifiers.
func (e WeightedEdge) Nodes() (a, b string, ok bool) {
	parts := strings.SplitN(e.Edge, EdgeDelimiter, 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// EncodeEdge builds the Edge string for two node identifiers.
func EncodeEdge(a, b string) string {
	return a + EdgeDelimiter + b
}

// Navigator exposes weighted graph connectivity between nodes. Distance
// returns a finite weighted path cost over edges of the given kind, or
// +Inf when either node is unknown or no path exists.
type Navigator interface {
	Edges(kind string) []WeightedEdge
	Distance(nodeA, nodeB, kind string) float64
}
