package fixtures

import (
	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/domain/economy"
)

// Corp is a fixture-backed economic actor. It satisfies economy.Corp with
// offers hydrated once from a declarative colony description.
type Corp struct {
	id       string
	corpType string
	position economy.Position
	margin   float64
	sells    []economy.Offer
	buys     []economy.Offer
}

// NewCorp creates a fixture corp. Offers are attached afterwards by the
// loader so they can reference the corp's ID and position.
func NewCorp(id, corpType string, position economy.Position, margin float64) (*Corp, error) {
	if margin < 0 || margin >= 1 {
		return nil, economy.NewInvalidMarginError(id, margin)
	}
	return &Corp{
		id:       id,
		corpType: corpType,
		position: position,
		margin:   margin,
	}, nil
}

func (c *Corp) ID() string { return c.id }

func (c *Corp) Type() string { return c.corpType }

func (c *Corp) Position() economy.Position { return c.position }

func (c *Corp) Margin() float64 { return c.margin }

func (c *Corp) Sells() []economy.Offer { return c.sells }

func (c *Corp) Buys() []economy.Offer { return c.buys }

// AddSell attaches a sell offer to the corp.
func (c *Corp) AddSell(offer economy.Offer) {
	c.sells = append(c.sells, offer)
}

// AddBuy attaches a buy offer to the corp.
func (c *Corp) AddBuy(offer economy.Offer) {
	c.buys = append(c.buys, offer)
}
