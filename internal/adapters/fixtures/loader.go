package fixtures

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/adapters/navigator"
	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/domain/economy"
)

// DefaultOfferDuration is assigned to fixture offers with no explicit
// duration, in ticks.
const DefaultOfferDuration = 100

// Colony is the declarative fixture format: a set of corps with their
// standing offers, plus optional economic edges between room nodes.
type Colony struct {
	Name  string     `yaml:"name"`
	Corps []CorpSpec `yaml:"corps"`
	Edges []EdgeSpec `yaml:"edges"`
}

// CorpSpec describes one corp in a fixture.
type CorpSpec struct {
	ID       string           `yaml:"id"`
	Type     string           `yaml:"type"`
	Margin   float64          `yaml:"margin"`
	Position economy.Position `yaml:"pos"`
	Node     string           `yaml:"node"`
	Sells    []OfferSpec      `yaml:"sells"`
	Buys     []OfferSpec      `yaml:"buys"`
}

// OfferSpec describes one standing offer in a fixture.
type OfferSpec struct {
	Resource string  `yaml:"resource"`
	Quantity int     `yaml:"quantity"`
	Price    float64 `yaml:"price"`
	Duration int     `yaml:"duration"`
}

// EdgeSpec describes one weighted graph edge in a fixture.
type EdgeSpec struct {
	Kind   string  `yaml:"kind"`
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// Hydrated is the result of loading a colony fixture: live corps, the
// corp-to-node association, and a navigator when the fixture declared any
// edges.
type Hydrated struct {
	Colony    *Colony
	Corps     []economy.Corp
	Nodes     map[string]string
	Navigator *navigator.MemoryNavigator
}

// LoadFile reads and hydrates a colony fixture from a YAML file.
func LoadFile(path string) (*Hydrated, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}
	return Load(data)
}

// Load hydrates a colony fixture from YAML bytes.
func Load(data []byte) (*Hydrated, error) {
	var colony Colony
	if err := yaml.Unmarshal(data, &colony); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	return Hydrate(&colony)
}

// Hydrate turns a parsed colony description into live planning inputs.
// Offer IDs are minted fresh on every hydration; offers are cycle-scoped
// and carry no identity across cycles.
func Hydrate(colony *Colony) (*Hydrated, error) {
	h := &Hydrated{
		Colony: colony,
		Nodes:  make(map[string]string),
	}

	seen := make(map[string]bool)
	for _, spec := range colony.Corps {
		if spec.ID == "" {
			return nil, fmt.Errorf("fixture corp missing id")
		}
		if seen[spec.ID] {
			return nil, fmt.Errorf("duplicate fixture corp id: %s", spec.ID)
		}
		seen[spec.ID] = true

		corp, err := NewCorp(spec.ID, spec.Type, spec.Position, spec.Margin)
		if err != nil {
			return nil, fmt.Errorf("invalid fixture corp %s: %w", spec.ID, err)
		}
		for _, o := range spec.Sells {
			corp.AddSell(buildOffer(corp, economy.OfferSell, o))
		}
		for _, o := range spec.Buys {
			corp.AddBuy(buildOffer(corp, economy.OfferBuy, o))
		}

		h.Corps = append(h.Corps, corp)
		if spec.Node != "" {
			h.Nodes[spec.ID] = spec.Node
		}
	}

	if len(colony.Edges) > 0 {
		nav := navigator.NewMemoryNavigator()
		for _, e := range colony.Edges {
			kind := e.Kind
			if kind == "" {
				kind = economy.EdgeKindEconomic
			}
			nav.AddEdge(kind, e.From, e.To, e.Weight)
		}
		h.Navigator = nav
	}

	return h, nil
}

func buildOffer(corp *Corp, offerType economy.OfferType, spec OfferSpec) economy.Offer {
	duration := spec.Duration
	if duration <= 0 {
		duration = DefaultOfferDuration
	}
	return economy.Offer{
		ID:       uuid.NewString(),
		CorpID:   corp.ID(),
		Type:     offerType,
		Resource: spec.Resource,
		Quantity: spec.Quantity,
		Price:    spec.Price,
		Duration: duration,
		Location: corp.Position(),
	}
}
