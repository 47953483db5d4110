package cli

import (
	"fmt"
	"strings"

	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/domain/chain"
)

// ChainFormatter renders a priced production chain as a ladder from raw
// producer up to the goal achiever.
type ChainFormatter struct{}

// NewChainFormatter creates a new chain formatter
func NewChainFormatter() *ChainFormatter {
	return &ChainFormatter{}
}

// FormatChain renders one chain with its economics summary.
func (f *ChainFormatter) FormatChain(c *chain.Chain) string {
	var builder strings.Builder

	status := "unfunded"
	if c.Funded {
		status = "FUNDED"
	}
	builder.WriteString(fmt.Sprintf("%s [%s]\n", c.ID, status))

	for i, seg := range c.Segments {
		connector := "├──"
		if i == len(c.Segments)-1 {
			connector = "└──"
		}
		builder.WriteString(fmt.Sprintf("  %s %s (%s) %dx %-12s in=%8.2f  +%4.1f%%  out=%8.2f\n",
			connector, seg.CorpID, seg.CorpType, seg.Quantity, seg.Resource,
			seg.InputCost, seg.Margin*100, seg.OutputPrice))
	}

	builder.WriteString(fmt.Sprintf("  cost=%.2f mint=%.2f profit=%.2f roi=%.2f\n",
		c.TotalCost, c.MintValue, c.Profit, c.ROI()))
	return builder.String()
}
