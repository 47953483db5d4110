package economy

import "fmt"

// OfferType distinguishes the two sides of the offer book.
type OfferType string

const (
	// OfferBuy declares demand: the corp wants to acquire a resource.
	OfferBuy OfferType = "buy"

	// OfferSell declares supply: the corp offers a resource onward.
	OfferSell OfferType = "sell"
)

// Well-known resource names. Goal resources mint credits when achieved;
// everything else is an intermediate traded between corps.
const (
	ResourceEnergy  = "energy"
	ResourceMineral = "mineral"
	ResourceUpgrade = "upgrade"
)

// Offer is an immutable economic fact: one corp wants to buy or sell a
// quantity of a resource at a price, at a location, for some number of
// ticks. Offers are regenerated every planning cycle and never outlive one.
type Offer struct {
	ID       string    `json:"id"`
	CorpID   string    `json:"corpId"`
	Type     OfferType `json:"type"`
	Resource string    `json:"resource"`
	Quantity int       `json:"quantity"`
	Price    float64   `json:"price"`
	Duration int       `json:"duration"`
	Location Position  `json:"location"`
}

func (o Offer) String() string {
	return fmt.Sprintf("Offer{%s %s %dx%s @%.2f from %s}",
		o.CorpID, o.Type, o.Quantity, o.Resource, o.Price, o.Location)
}
