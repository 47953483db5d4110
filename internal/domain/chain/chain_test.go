package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/domain/chain"
)

func TestNewSegment_CostPlusPricing(t *testing.T) {
	seg := chain.NewSegment("mine-1", "mine", "energy", 100, 200, 0.05)

	assert.Equal(t, 200.0, seg.InputCost)
	assert.InDelta(t, 210.0, seg.OutputPrice, 1e-9)
}

func TestNewSegment_RawExtractionPricesAtZero(t *testing.T) {
	seg := chain.NewSegment("mine-1", "mine", "energy", 100, 0, 0.25)

	assert.Equal(t, 0.0, seg.OutputPrice)
}

func TestCostPlus_MarginsCompound(t *testing.T) {
	// Three chained 10% margins on a base cost of 100.
	first := chain.CostPlus(100, 0.10)
	second := chain.CostPlus(first, 0.10)
	third := chain.CostPlus(second, 0.10)

	assert.InDelta(t, 110.0, first, 1e-9)
	assert.InDelta(t, 121.0, second, 1e-9)
	assert.InDelta(t, 133.1, third, 1e-9)
}

func TestNew_DerivesCostsAndProfit(t *testing.T) {
	// Arrange
	segments := []chain.Segment{
		chain.NewSegment("mine-1", "mine", "energy", 100, 0, 0.05),
		chain.NewSegment("upgrader-1", "upgrader", "upgrade", 50, 0, 0.10),
	}

	// Act
	c := chain.New("chain-1-upgrader-1", segments, 500)

	// Assert
	assert.Equal(t, 0.0, c.LeafCost)
	assert.Equal(t, 0.0, c.TotalCost)
	assert.Equal(t, 500.0, c.MintValue)
	assert.Equal(t, 500.0, c.Profit)
	assert.Equal(t, c.Profit, c.Priority)
	assert.False(t, c.Funded)
	assert.Equal(t, 0, c.Age)
	assert.True(t, c.Viable())
}

func TestNew_TotalCostIsLastOutputPrice(t *testing.T) {
	segments := []chain.Segment{
		chain.NewSegment("mine-1", "mine", "mineral", 10, 100, 0.10),
		chain.NewSegment("refinery-1", "refinery", "alloy", 10, 110, 0.10),
		chain.NewSegment("builder-1", "builder", "upgrade", 10, 121, 0.10),
	}

	c := chain.New("chain-1-builder-1", segments, 1000)

	assert.Equal(t, 100.0, c.LeafCost)
	assert.InDelta(t, 133.1, c.TotalCost, 1e-9)
	assert.InDelta(t, 866.9, c.Profit, 1e-9)
}

func TestChain_NotViableWhenCostExceedsMint(t *testing.T) {
	segments := []chain.Segment{
		chain.NewSegment("mine-1", "mine", "energy", 1, 1000000, 0.05),
		chain.NewSegment("upgrader-1", "upgrader", "upgrade", 1, 1050000, 0.10),
	}

	c := chain.New("chain-1-upgrader-1", segments, 1000)

	assert.False(t, c.Viable())
	assert.Less(t, c.Profit, 0.0)
}

func TestChain_ROI(t *testing.T) {
	costly := chain.New("c1", []chain.Segment{
		chain.NewSegment("a", "mine", "energy", 1, 100, 0),
	}, 300)
	free := chain.New("c2", []chain.Segment{
		chain.NewSegment("b", "mine", "energy", 1, 0, 0),
	}, 300)

	assert.InDelta(t, 2.0, costly.ROI(), 1e-9)
	assert.Equal(t, 0.0, free.ROI())
}

func TestChain_Overlaps(t *testing.T) {
	// Arrange
	shared := chain.NewSegment("mine-1", "mine", "energy", 10, 0, 0)
	a := chain.New("a", []chain.Segment{
		shared,
		chain.NewSegment("upgrader-1", "upgrader", "upgrade", 10, 0, 0),
	}, 100)
	b := chain.New("b", []chain.Segment{
		shared,
		chain.NewSegment("upgrader-2", "upgrader", "upgrade", 10, 0, 0),
	}, 100)
	c := chain.New("c", []chain.Segment{
		chain.NewSegment("mine-2", "mine", "energy", 10, 0, 0),
		chain.NewSegment("upgrader-3", "upgrader", "upgrade", 10, 0, 0),
	}, 100)

	// Assert
	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
	assert.False(t, a.Overlaps(c))
}

func TestChain_CorpIDsInSegmentOrder(t *testing.T) {
	c := chain.New("c", []chain.Segment{
		chain.NewSegment("mine-1", "mine", "energy", 10, 0, 0),
		chain.NewSegment("refinery-1", "refinery", "alloy", 10, 0, 0),
		chain.NewSegment("upgrader-1", "upgrader", "upgrade", 10, 0, 0),
	}, 100)

	require.Equal(t, []string{"mine-1", "refinery-1", "upgrader-1"}, c.CorpIDs())
}

func TestGoal_MintValue(t *testing.T) {
	g := chain.Goal{
		Type:             "upgrade",
		CorpID:           "upgrader-1",
		Resource:         "upgrade",
		Quantity:         100,
		MintValuePerUnit: 1000,
	}

	assert.Equal(t, 100000.0, g.MintValue())
}
