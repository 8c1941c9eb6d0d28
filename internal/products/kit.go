package product

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pyperpy/pyper-backend/pkg/db/models"
)

// KitLine is one component of a kit under construction.
type KitLine struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// KitDraft accumulates a kit composition in insertion order. Adding a product
// already present merges into the existing line instead of duplicating it.
type KitDraft struct {
	lines []KitLine
}

// AddItem appends a line, or bumps the quantity of the existing line for the
// same product. Quantities below one count as one.
func (d *KitDraft) AddItem(productID uuid.UUID, name string, price decimal.Decimal, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range d.lines {
		if d.lines[i].ProductID == productID {
			d.lines[i].Quantity += quantity
			return
		}
	}
	d.lines = append(d.lines, KitLine{
		ProductID: productID,
		Name:      name,
		Price:     price,
		Quantity:  quantity,
	})
}

// SetQuantity pins a line's quantity, clamped to a minimum of one. Unknown
// products are ignored; removal is explicit via RemoveItem.
func (d *KitDraft) SetQuantity(productID uuid.UUID, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range d.lines {
		if d.lines[i].ProductID == productID {
			d.lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem drops the line for the given product, preserving the order of
// the rest.
func (d *KitDraft) RemoveItem(productID uuid.UUID) {
	for i := range d.lines {
		if d.lines[i].ProductID == productID {
			d.lines = append(d.lines[:i], d.lines[i+1:]...)
			return
		}
	}
}

// Lines returns a copy of the composition in insertion order.
func (d *KitDraft) Lines() []KitLine {
	out := make([]KitLine, len(d.lines))
	copy(out, d.lines)
	return out
}

// Len reports how many distinct components the draft holds.
func (d *KitDraft) Len() int {
	return len(d.lines)
}

// Total sums price times quantity across all lines.
func (d *KitDraft) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range d.lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// Items materializes the draft as kit_items rows for the given kit.
func (d *KitDraft) Items(kitID uuid.UUID) []models.KitItem {
	items := make([]models.KitItem, 0, len(d.lines))
	for _, line := range d.lines {
		items = append(items, models.KitItem{
			KitID:     kitID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Name:      line.Name,
			Price:     line.Price,
		})
	}
	return items
}
