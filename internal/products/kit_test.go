package product

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKitDraftAddMergesByProduct(t *testing.T) {
	cuaderno := uuid.New()
	lapiz := uuid.New()

	draft := &KitDraft{}
	draft.AddItem(cuaderno, "Cuaderno", decimal.NewFromInt(15000), 2)
	draft.AddItem(lapiz, "Lápiz", decimal.NewFromInt(2000), 1)
	draft.AddItem(cuaderno, "Cuaderno", decimal.NewFromInt(15000), 1)

	require.Equal(t, 2, draft.Len())
	lines := draft.Lines()
	assert.Equal(t, cuaderno, lines[0].ProductID)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, lapiz, lines[1].ProductID)
}

func TestKitDraftSetQuantityClampsToOne(t *testing.T) {
	id := uuid.New()
	draft := &KitDraft{}
	draft.AddItem(id, "Regla", decimal.NewFromInt(5000), 4)

	draft.SetQuantity(id, 0)
	assert.Equal(t, 1, draft.Lines()[0].Quantity)

	draft.SetQuantity(id, -3)
	assert.Equal(t, 1, draft.Lines()[0].Quantity)

	draft.SetQuantity(id, 7)
	assert.Equal(t, 7, draft.Lines()[0].Quantity)
}

func TestKitDraftAddClampsQuantity(t *testing.T) {
	draft := &KitDraft{}
	draft.AddItem(uuid.New(), "Tijera", decimal.NewFromInt(8000), 0)
	assert.Equal(t, 1, draft.Lines()[0].Quantity)
}

func TestKitDraftRemovePreservesOrder(t *testing.T) {
	first, second, third := uuid.New(), uuid.New(), uuid.New()
	draft := &KitDraft{}
	draft.AddItem(first, "A", decimal.NewFromInt(1000), 1)
	draft.AddItem(second, "B", decimal.NewFromInt(1000), 1)
	draft.AddItem(third, "C", decimal.NewFromInt(1000), 1)

	draft.RemoveItem(second)

	lines := draft.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, first, lines[0].ProductID)
	assert.Equal(t, third, lines[1].ProductID)

	// Removing an absent product is a no-op.
	draft.RemoveItem(second)
	assert.Equal(t, 2, draft.Len())
}

func TestKitDraftTotal(t *testing.T) {
	draft := &KitDraft{}
	draft.AddItem(uuid.New(), "Cuaderno", decimal.NewFromInt(15000), 2)
	draft.AddItem(uuid.New(), "Lápiz", decimal.NewFromInt(2000), 3)

	assert.True(t, decimal.NewFromInt(36000).Equal(draft.Total()))
}

func TestKitDraftItemsCarrySnapshots(t *testing.T) {
	kitID := uuid.New()
	componentID := uuid.New()

	draft := &KitDraft{}
	draft.AddItem(componentID, "Mochila", decimal.NewFromInt(120000), 1)

	items := draft.Items(kitID)
	require.Len(t, items, 1)
	assert.Equal(t, kitID, items[0].KitID)
	assert.Equal(t, componentID, items[0].ProductID)
	assert.Equal(t, "Mochila", items[0].Name)
	assert.True(t, decimal.NewFromInt(120000).Equal(items[0].Price))
}
