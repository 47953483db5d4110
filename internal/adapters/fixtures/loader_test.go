package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/adapters/fixtures"
	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/domain/economy"
)

const colonyYAML = `
name: test-colony
corps:
  - id: mine-1
    type: mine
    margin: 0.05
    pos: {x: 10, y: 10, room: E0S0}
    node: room-1
    sells:
      - {resource: energy, quantity: 500, price: 0}
  - id: upgrader-1
    type: upgrader
    margin: 0.10
    pos: {x: 20, y: 20, room: E0S0}
    node: room-2
    sells:
      - {resource: upgrade, quantity: 100, price: 0, duration: 50}
    buys:
      - {resource: energy, quantity: 100, price: 0}
edges:
  - {from: room-1, to: room-2, weight: 5}
`

func TestLoad_HydratesCorpsAndOffers(t *testing.T) {
	// Act
	h, err := fixtures.Load([]byte(colonyYAML))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "test-colony", h.Colony.Name)
	require.Len(t, h.Corps, 2)

	mine := h.Corps[0]
	assert.Equal(t, "mine-1", mine.ID())
	assert.Equal(t, "mine", mine.Type())
	assert.Equal(t, 0.05, mine.Margin())
	assert.Equal(t, economy.Position{X: 10, Y: 10, RoomName: "E0S0"}, mine.Position())

	require.Len(t, mine.Sells(), 1)
	sell := mine.Sells()[0]
	assert.NotEmpty(t, sell.ID)
	assert.Equal(t, "mine-1", sell.CorpID)
	assert.Equal(t, economy.OfferSell, sell.Type)
	assert.Equal(t, economy.ResourceEnergy, sell.Resource)
	assert.Equal(t, 500, sell.Quantity)
	assert.Equal(t, fixtures.DefaultOfferDuration, sell.Duration)
	assert.Equal(t, mine.Position(), sell.Location)

	upgrader := h.Corps[1]
	require.Len(t, upgrader.Buys(), 1)
	assert.Equal(t, economy.OfferBuy, upgrader.Buys()[0].Type)
	assert.Equal(t, 50, upgrader.Sells()[0].Duration)
}

func TestLoad_HydratesNodesAndNavigator(t *testing.T) {
	// Act
	h, err := fixtures.Load([]byte(colonyYAML))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "room-1", h.Nodes["mine-1"])
	assert.Equal(t, "room-2", h.Nodes["upgrader-1"])

	require.NotNil(t, h.Navigator)
	assert.Equal(t, 5.0, h.Navigator.Distance("room-1", "room-2", economy.EdgeKindEconomic))
}

func TestLoad_NoEdgesMeansNoNavigator(t *testing.T) {
	h, err := fixtures.Load([]byte(`
name: flat
corps:
  - id: mine-1
    type: mine
    margin: 0
    pos: {x: 0, y: 0, room: E0S0}
`))

	require.NoError(t, err)
	assert.Nil(t, h.Navigator)
	assert.Empty(t, h.Nodes)
}

func TestLoad_RejectsDuplicateCorpIDs(t *testing.T) {
	_, err := fixtures.Load([]byte(`
name: dupes
corps:
  - {id: mine-1, type: mine, margin: 0, pos: {x: 0, y: 0, room: E0S0}}
  - {id: mine-1, type: mine, margin: 0, pos: {x: 1, y: 1, room: E0S0}}
`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate fixture corp id")
}

func TestLoad_RejectsInvalidMargin(t *testing.T) {
	_, err := fixtures.Load([]byte(`
name: bad-margin
corps:
  - {id: mine-1, type: mine, margin: 1.5, pos: {x: 0, y: 0, room: E0S0}}
`))

	require.Error(t, err)

	var marginErr *economy.InvalidMarginError
	assert.ErrorAs(t, err, &marginErr)
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	_, err := fixtures.Load([]byte("corps: [unclosed"))

	assert.Error(t, err)
}

func TestNewCorp_ValidatesMargin(t *testing.T) {
	_, err := fixtures.NewCorp("mine-1", "mine", economy.Position{RoomName: "E0S0"}, -0.1)

	require.Error(t, err)
}
