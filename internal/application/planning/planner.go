package planning

import (
	"fmt"
	"math"
	"sort"

	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/application/common"
	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/domain/chain"
	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/domain/economy"
)

const (
	// DefaultMaxDepth bounds the recursive backward trace. Malformed or
	// intentionally cyclic offer graphs terminate at this depth.
	DefaultMaxDepth = 10

	// DefaultHaulingRate is the per-tile per-unit surcharge applied when
	// computing effective prices.
	DefaultHaulingRate = 0.01
)

// ChainPlanner discovers complete, priced, cycle-free production chains
// from value-minting goals backward to raw producers, then selects an
// affordable, non-conflicting subset.
//
// A planner is built once per planning cycle over an offer snapshot and a
// corp snapshot, neither of which it mutates. One planning pass is a single
// synchronous computation; passes over different snapshots are independent.
type ChainPlanner struct {
	collector     *OfferCollector
	snapshot      *Snapshot
	distance      DistanceStrategy
	mintValues    economy.MintValueTable
	goalResources []string
	maxDepth      int
	logger        common.Logger
}

// Option configures a ChainPlanner at construction.
type Option func(*ChainPlanner)

// WithMaxDepth overrides the recursion depth bound.
func WithMaxDepth(depth int) Option {
	return func(p *ChainPlanner) { p.maxDepth = depth }
}

// WithGoalResources overrides which resources are treated as value-minting
// goals.
func WithGoalResources(resources []string) Option {
	return func(p *ChainPlanner) { p.goalResources = resources }
}

// WithMintValues overrides the achievement-to-credit conversion table.
func WithMintValues(table economy.MintValueTable) Option {
	return func(p *ChainPlanner) { p.mintValues = table }
}

// WithLogger attaches a logger for planner diagnostics.
func WithLogger(logger common.Logger) Option {
	return func(p *ChainPlanner) { p.logger = logger }
}

// NewChainPlanner creates a planner over one cycle's collected offers and
// corp snapshot. The distance strategy decides reachability and hauling
// cost: position-based when no navigator exists, graph-based otherwise.
func NewChainPlanner(collector *OfferCollector, snapshot *Snapshot, distance DistanceStrategy, opts ...Option) *ChainPlanner {
	p := &ChainPlanner{
		collector:     collector,
		snapshot:      snapshot,
		distance:      distance,
		mintValues:    economy.DefaultMintValues(),
		goalResources: []string{economy.ResourceUpgrade},
		maxDepth:      DefaultMaxDepth,
		logger:        common.NopLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FindGoals scans sell offers for goal resources and resolves each into a
// value-minting objective. Goals owned by corps outside the economically
// connected component are discarded.
func (p *ChainPlanner) FindGoals() []chain.Goal {
	var goals []chain.Goal
	for _, resource := range p.goalResources {
		for _, offer := range p.collector.SellOffers(resource) {
			corp := p.snapshot.Corp(offer.CorpID)
			if corp == nil {
				continue
			}
			if !p.distance.Connected(corp) {
				continue
			}
			goals = append(goals, chain.Goal{
				Type:             resource,
				CorpID:           corp.ID(),
				Resource:         resource,
				Quantity:         offer.Quantity,
				Position:         corp.Position(),
				MintValuePerUnit: p.mintValues.ValueOf(resource),
			})
		}
	}
	p.logger.Log("debug", "goals discovered", map[string]interface{}{
		"count": len(goals),
	})
	return goals
}

// BuildChainForGoal resolves each of the goal corp's input requirements
// independently and, if every one succeeds, appends the goal corp's own
// cost-plus segment. A goal with any unresolvable requirement yields no
// chain at all: there are no partial chains.
func (p *ChainPlanner) BuildChainForGoal(tick int, goal chain.Goal) (*chain.Chain, bool) {
	corp := p.snapshot.Corp(goal.CorpID)
	if corp == nil {
		return nil, false
	}

	visited := []string{corp.ID()}
	var segments []chain.Segment
	inputCost := 0.0

	for _, input := range corp.Buys() {
		segs, ok := p.traceInput(requirement{
			resource:  input.Resource,
			quantity:  input.Quantity,
			requester: corp,
		}, 0, visited)
		if !ok {
			return nil, false
		}
		inputCost += chain.TotalCost(segs)
		segments = append(segments, segs...)
	}

	segments = append(segments, chain.NewSegment(
		corp.ID(), corp.Type(), goal.Resource, goal.Quantity, inputCost, corp.Margin()))

	id := fmt.Sprintf("chain-%d-%s", tick, goal.CorpID)
	return chain.New(id, segments, goal.MintValue()), true
}

// requirement is one unmet input the backward trace must source.
type requirement struct {
	resource  string
	quantity  int
	requester economy.Corp
}

// candidate pairs a sell offer with its effective price from the
// requester's point of view.
type candidate struct {
	offer economy.Offer
	price float64
}

// traceInput recursively resolves a requirement into the segment sequence
// of a complete supply chain, leaf first. It is a depth-first search with
// greedy price ordering and full backtracking: candidates are tried
// cheapest-to-reach first, a candidate whose own inputs cannot all be
// resolved is abandoned for the next one, and exhaustion fails the
// requirement as a whole.
//
// visited is the immutable set of corp IDs already on this path; it is
// extended by copy so sibling branches never observe each other's markers.
func (p *ChainPlanner) traceInput(req requirement, depth int, visited []string) ([]chain.Segment, bool) {
	if depth >= p.maxDepth {
		return nil, false
	}

	for _, cand := range p.rankedCandidates(req) {
		if onPath(visited, cand.offer.CorpID) {
			continue
		}
		if cand.offer.Quantity < req.quantity {
			continue
		}
		if math.IsInf(cand.price, 1) {
			continue
		}
		corp := p.snapshot.Corp(cand.offer.CorpID)
		if corp == nil {
			continue
		}

		inputs := corp.Buys()
		if len(inputs) == 0 {
			// Leaf producer: its input cost is whatever it asks for the raw
			// resource, 0 for pure extraction. The first reachable leaf wins
			// by construction of the candidate ordering.
			seg := chain.NewSegment(corp.ID(), corp.Type(), req.resource, req.quantity, cand.offer.Price, corp.Margin())
			return []chain.Segment{seg}, true
		}

		childVisited := pathWith(visited, corp.ID())
		var segments []chain.Segment
		inputCost := 0.0
		resolved := true

		for _, input := range inputs {
			childSegs, ok := p.traceInput(requirement{
				resource:  input.Resource,
				quantity:  input.Quantity,
				requester: corp,
			}, depth+1, childVisited)
			if !ok {
				resolved = false
				break
			}
			inputCost += chain.TotalCost(childSegs)
			segments = append(segments, childSegs...)
		}
		if !resolved {
			continue
		}

		segments = append(segments, chain.NewSegment(
			corp.ID(), corp.Type(), req.resource, req.quantity, inputCost, corp.Margin()))
		return segments, true
	}

	return nil, false
}

// rankedCandidates fetches the sell offers for a requirement's resource,
// drops economically disconnected suppliers, and orders the rest ascending
// by effective price. This ordering is the core tie-break: cheaper-to-reach
// suppliers are tried first, making the search price-greedy rather than
// globally optimal.
func (p *ChainPlanner) rankedCandidates(req requirement) []candidate {
	offers := p.collector.SellOffers(req.resource)
	candidates := make([]candidate, 0, len(offers))

	for _, offer := range offers {
		seller := p.snapshot.Corp(offer.CorpID)
		if seller == nil || !p.distance.Connected(seller) {
			continue
		}
		candidates = append(candidates, candidate{
			offer: offer,
			price: p.effectivePrice(offer, seller, req.requester),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].price < candidates[j].price
	})
	return candidates
}

// effectivePrice adds the hauling surcharge to an offer's posted price:
// price + distance × haulingRate × quantity. Unreachable supplier pairs
// price at +Inf and are skipped by the trace.
func (p *ChainPlanner) effectivePrice(offer economy.Offer, seller, buyer economy.Corp) float64 {
	dist := p.distance.Distance(seller, buyer)
	return offer.Price + dist*p.collector.haulingRate*float64(offer.Quantity)
}

// FindViableChains discovers goals, builds one chain per goal and keeps
// those with positive profit, sorted descending by profit.
func (p *ChainPlanner) FindViableChains(tick int) []*chain.Chain {
	return p.ViableChainsForGoals(tick, p.FindGoals())
}

// ViableChainsForGoals builds one chain per goal in an already discovered
// goal set and keeps those with positive profit, sorted descending by
// profit. Resolution failures are ordinary negative results: goals with no
// resolvable supply simply do not appear.
func (p *ChainPlanner) ViableChainsForGoals(tick int, goals []chain.Goal) []*chain.Chain {
	var viable []*chain.Chain
	for _, goal := range goals {
		c, ok := p.BuildChainForGoal(tick, goal)
		if !ok {
			continue
		}
		if !c.Viable() {
			continue
		}
		viable = append(viable, c)
	}

	sort.SliceStable(viable, func(i, j int) bool {
		return viable[i].Profit > viable[j].Profit
	})

	p.logger.Log("debug", "viable chains", map[string]interface{}{
		"tick":  tick,
		"count": len(viable),
	})
	return viable
}

// FindBestChains runs discovery, filtering and selection in one call.
func (p *ChainPlanner) FindBestChains(tick int, budget float64) []*chain.Chain {
	return p.SelectBestChains(tick, p.FindViableChains(tick), budget)
}

// SelectBestChains selects a funded subset of an already built viable set:
// first overlapping chains are removed greedily by descending profit (a
// chain is kept only if none of its corps were claimed by a higher-ranked
// chain), then chains are accepted in that order while cumulative cost
// stays within budget. Accepted chains are marked funded.
//
// Overlap removal runs before the budget filter, so a corp claimed by a
// chain that later proves unaffordable still blocks lower-profit chains
// sharing it.
func (p *ChainPlanner) SelectBestChains(tick int, viable []*chain.Chain, budget float64) []*chain.Chain {
	claimed := make(map[string]bool)
	var disjoint []*chain.Chain
	for _, c := range viable {
		conflict := false
		for _, id := range c.CorpIDs() {
			if claimed[id] {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}
		for _, id := range c.CorpIDs() {
			claimed[id] = true
		}
		disjoint = append(disjoint, c)
	}

	spent := 0.0
	var funded []*chain.Chain
	for _, c := range disjoint {
		if spent+c.TotalCost > budget {
			continue
		}
		spent += c.TotalCost
		c.Funded = true
		funded = append(funded, c)
	}

	p.logger.Log("info", "chains funded", map[string]interface{}{
		"tick":   tick,
		"count":  len(funded),
		"spent":  spent,
		"budget": budget,
	})
	return funded
}

// onPath reports whether a corp ID already occurs on the current path.
func onPath(visited []string, corpID string) bool {
	for _, id := range visited {
		if id == corpID {
			return true
		}
	}
	return false
}

// pathWith extends a path by copy, leaving the original untouched for
// sibling branches.
func pathWith(visited []string, corpID string) []string {
	extended := make([]string, len(visited), len(visited)+1)
	copy(extended, visited)
	return append(extended, corpID)
}
