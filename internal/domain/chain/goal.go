package chain

import "github.com/ShadyMccoy/DarkPhoenix-sub005/internal/domain/economy"

// Goal is an achievable value-minting objective tied to one corp: some corp
// offers a goal resource (e.g. controller-upgrade progress) for sale, and
// policy converts each unit achieved into minted credits.
type Goal struct {
	Type             string
	CorpID           string
	Resource         string
	Quantity         int
	Position         economy.Position
	MintValuePerUnit float64
}

// MintValue is the total credit value the goal mints when fully achieved.
func (g Goal) MintValue() float64 {
	return g.MintValuePerUnit * float64(g.Quantity)
}
