package planning

import (
	"sort"

	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/domain/economy"
)

// OfferCollector indexes one planning cycle's offers for fast
// resource-keyed lookup. Collect discards all prior state: no offer
// outlives one cycle.
type OfferCollector struct {
	haulingRate float64

	offers []economy.Offer
	sells  map[string][]economy.Offer
	buys   map[string][]economy.Offer
}

// NewOfferCollector creates an empty collector. haulingRate is the per-tile
// per-unit surcharge used by effective-price queries.
func NewOfferCollector(haulingRate float64) *OfferCollector {
	return &OfferCollector{
		haulingRate: haulingRate,
		sells:       make(map[string][]economy.Offer),
		buys:        make(map[string][]economy.Offer),
	}
}

// Collect replaces the collector's contents with a fresh offer snapshot,
// bucketing every offer into the sell and buy indices by resource.
func (c *OfferCollector) Collect(offers []economy.Offer) {
	c.offers = make([]economy.Offer, len(offers))
	copy(c.offers, offers)
	c.sells = make(map[string][]economy.Offer)
	c.buys = make(map[string][]economy.Offer)

	for _, o := range c.offers {
		switch o.Type {
		case economy.OfferSell:
			c.sells[o.Resource] = append(c.sells[o.Resource], o)
		case economy.OfferBuy:
			c.buys[o.Resource] = append(c.buys[o.Resource], o)
		}
	}
}

// SellOffers returns every sell offer for a resource, unordered.
func (c *OfferCollector) SellOffers(resource string) []economy.Offer {
	return c.sells[resource]
}

// BuyOffers returns every buy offer for a resource, unordered.
func (c *OfferCollector) BuyOffers(resource string) []economy.Offer {
	return c.buys[resource]
}

// EffectivePrice is an offer's price plus the hauling surcharge to move its
// quantity from the offer's location to the buyer: price + distance ×
// haulingRate × quantity. Unreachable locations price at +Inf.
func (c *OfferCollector) EffectivePrice(offer economy.Offer, buyerLocation economy.Position) float64 {
	dist := economy.Distance(offer.Location, buyerLocation)
	return offer.Price + dist*c.haulingRate*float64(offer.Quantity)
}

// CheapestSellOffers returns the sell offers for a resource ordered
// ascending by effective price from the buyer's location.
func (c *OfferCollector) CheapestSellOffers(resource string, buyerLocation economy.Position) []economy.Offer {
	bucket := c.sells[resource]
	offers := make([]economy.Offer, len(bucket))
	copy(offers, bucket)

	sort.SliceStable(offers, func(i, j int) bool {
		return c.EffectivePrice(offers[i], buyerLocation) < c.EffectivePrice(offers[j], buyerLocation)
	})
	return offers
}

// TotalSellQuantity sums the quantity offered for sale for a resource.
func (c *OfferCollector) TotalSellQuantity(resource string) int {
	total := 0
	for _, o := range c.sells[resource] {
		total += o.Quantity
	}
	return total
}

// TotalBuyQuantity sums the quantity requested for a resource.
func (c *OfferCollector) TotalBuyQuantity(resource string) int {
	total := 0
	for _, o := range c.buys[resource] {
		total += o.Quantity
	}
	return total
}

// HasSellOffers reports whether any corp currently sells the resource.
func (c *OfferCollector) HasSellOffers(resource string) bool {
	return len(c.sells[resource]) > 0
}

// OffersByCorp returns every offer, either side, posted by one corp.
func (c *OfferCollector) OffersByCorp(corpID string) []economy.Offer {
	var result []economy.Offer
	for _, o := range c.offers {
		if o.CorpID == corpID {
			result = append(result, o)
		}
	}
	return result
}

// Resources returns the sorted set of resource names with at least one
// offer on either side of the book.
func (c *OfferCollector) Resources() []string {
	seen := make(map[string]bool)
	for r := range c.sells {
		seen[r] = true
	}
	for r := range c.buys {
		seen[r] = true
	}
	resources := make([]string, 0, len(seen))
	for r := range seen {
		resources = append(resources, r)
	}
	sort.Strings(resources)
	return resources
}
