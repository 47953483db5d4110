package chain

import "fmt"

// Chain is a complete, priced production chain. Segments are ordered leaf
// (raw producer) first, goal achiever last. A chain is a plain record with
// no derived or cyclic references: it serializes field-for-field and is
// reconstructible unchanged from its serialized form.
type Chain struct {
	ID        string    `json:"id"`
	Segments  []Segment `json:"segments"`
	LeafCost  float64   `json:"leafCost"`
	TotalCost float64   `json:"totalCost"`
	MintValue float64   `json:"mintValue"`
	Profit    float64   `json:"profit"`
	Funded    bool      `json:"funded"`
	Priority  float64   `json:"priority"`
	Age       int       `json:"age"`
}

// New builds a chain from an ordered segment sequence and the credit value
// the goal mints. Derived fields are computed here once; a fresh chain is
// unfunded, age 0, with priority seeded from profit.
func New(id string, segments []Segment, mintValue float64) *Chain {
	total := TotalCost(segments)
	return &Chain{
		ID:        id,
		Segments:  segments,
		LeafCost:  LeafCost(segments),
		TotalCost: total,
		MintValue: mintValue,
		Profit:    mintValue - total,
		Funded:    false,
		Priority:  mintValue - total,
		Age:       0,
	}
}

// TotalCost of a segment sequence is the last segment's output price, the
// price the goal corp ultimately charges. An empty sequence costs 0.
func TotalCost(segments []Segment) float64 {
	if len(segments) == 0 {
		return 0
	}
	return segments[len(segments)-1].OutputPrice
}

// LeafCost is the first segment's input cost: 0 for pure raw extraction.
func LeafCost(segments []Segment) float64 {
	if len(segments) == 0 {
		return 0
	}
	return segments[0].InputCost
}

// Viable reports whether the chain mints more than it costs.
func (c *Chain) Viable() bool {
	return c.Profit > 0
}

// ROI is profit per credit spent, 0 when the chain costs nothing.
func (c *Chain) ROI() float64 {
	if c.TotalCost == 0 {
		return 0
	}
	return c.Profit / c.TotalCost
}

// CorpIDs returns the IDs of every corp participating in the chain, in
// segment order. IDs are not deduplicated.
func (c *Chain) CorpIDs() []string {
	ids := make([]string, len(c.Segments))
	for i, s := range c.Segments {
		ids[i] = s.CorpID
	}
	return ids
}

// Overlaps reports whether two chains share any corp: one corp's capacity
// cannot be double-counted across funded chains.
func (c *Chain) Overlaps(other *Chain) bool {
	seen := make(map[string]bool, len(c.Segments))
	for _, s := range c.Segments {
		seen[s.CorpID] = true
	}
	for _, s := range other.Segments {
		if seen[s.CorpID] {
			return true
		}
	}
	return false
}

func (c *Chain) String() string {
	return fmt.Sprintf("Chain{%s depth=%d cost=%.2f mint=%.2f profit=%.2f funded=%t}",
		c.ID, len(c.Segments), c.TotalCost, c.MintValue, c.Profit, c.Funded)
}
