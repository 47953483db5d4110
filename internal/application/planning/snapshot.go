package planning

import (
	"sort"

	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/domain/economy"
)

// Snapshot is the read-only corp arena for one planning cycle: corp lookup
// by ID plus an optional corp-to-graph-node association. It is built once
// per cycle and never mutated during a planning pass, so independent passes
// over different snapshots can run in parallel.
type Snapshot struct {
	corps map[string]economy.Corp
	nodes map[string]string
}

// NewSnapshot builds a snapshot from the cycle's corps. nodes associates
// corp IDs with graph node identifiers and may be nil when no navigator is
// in play.
func NewSnapshot(corps []economy.Corp, nodes map[string]string) *Snapshot {
	s := &Snapshot{
		corps: make(map[string]economy.Corp, len(corps)),
		nodes: make(map[string]string, len(nodes)),
	}
	for _, c := range corps {
		s.corps[c.ID()] = c
	}
	for corpID, node := range nodes {
		s.nodes[corpID] = node
	}
	return s
}

// Corp resolves a corp by ID, nil when absent.
func (s *Snapshot) Corp(id string) economy.Corp {
	return s.corps[id]
}

// NodeOf returns the graph node hosting a corp, empty when unassociated.
func (s *Snapshot) NodeOf(corpID string) string {
	return s.nodes[corpID]
}

// Corps returns every corp in the snapshot, ordered by ID for determinism.
func (s *Snapshot) Corps() []economy.Corp {
	ids := make([]string, 0, len(s.corps))
	for id := range s.corps {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	corps := make([]economy.Corp, len(ids))
	for i, id := range ids {
		corps[i] = s.corps[id]
	}
	return corps
}

// AllOffers flattens every corp's buy and sell offers into one slice, in
// corp-ID order, ready for OfferCollector.Collect.
func (s *Snapshot) AllOffers() []economy.Offer {
	var offers []economy.Offer
	for _, c := range s.Corps() {
		offers = append(offers, c.Sells()...)
		offers = append(offers, c.Buys()...)
	}
	return offers
}

// Len returns the number of corps in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.corps)
}
