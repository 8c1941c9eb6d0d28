package product

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pyperpy/pyper-backend/pkg/db/models"
	"github.com/pyperpy/pyper-backend/pkg/pagination"
)

func mustCreateTestProduct(t *testing.T, tx *gorm.DB, name string, active bool) *models.Product {
	t.Helper()
	row := &models.Product{
		Name:     name,
		Slug:     fmt.Sprintf("%s-%s", name, uuid.NewString()),
		Price:    decimal.NewFromInt(15000),
		Category: "Cuadernos",
		Active:   active,
		Stock:    10,
	}
	if err := tx.Create(row).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return row
}

func TestRepositoryKitItemsRoundTrip(t *testing.T) {
	conn := openTestDB(t)
	tx := conn.Begin()
	defer tx.Rollback()

	repo := NewRepository(tx)
	ctx := context.Background()

	kit := mustCreateTestProduct(t, tx, "kit-escolar", true)
	component := mustCreateTestProduct(t, tx, "lapiz-hb", true)

	items := []models.KitItem{{
		ProductID: component.ID,
		Quantity:  2,
		Name:      component.Name,
		Price:     component.Price,
	}}
	if err := repo.ReplaceKitItems(ctx, kit.ID, items); err != nil {
		t.Fatalf("replace kit items: %v", err)
	}
	// Replaying the same composition must converge on one line.
	if err := repo.ReplaceKitItems(ctx, kit.ID, items); err != nil {
		t.Fatalf("replace kit items again: %v", err)
	}

	loaded, err := repo.FindByID(ctx, kit.ID)
	if err != nil {
		t.Fatalf("find kit: %v", err)
	}
	if len(loaded.KitItems) != 1 {
		t.Fatalf("expected 1 kit item, got %d", len(loaded.KitItems))
	}
	if loaded.KitItems[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", loaded.KitItems[0].Quantity)
	}
}

func TestRepositoryFindBySlugSkipsInactive(t *testing.T) {
	conn := openTestDB(t)
	tx := conn.Begin()
	defer tx.Rollback()

	repo := NewRepository(tx)
	ctx := context.Background()

	hidden := mustCreateTestProduct(t, tx, "producto-retirado", false)

	if _, err := repo.FindBySlug(ctx, hidden.Slug); err != gorm.ErrRecordNotFound {
		t.Fatalf("expected record not found, got %v", err)
	}
}

func TestRepositoryListSummariesPaginates(t *testing.T) {
	conn := openTestDB(t)
	tx := conn.Begin()
	defer tx.Rollback()

	repo := NewRepository(tx)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		mustCreateTestProduct(t, tx, fmt.Sprintf("cuaderno-%d", i), true)
	}

	page, err := repo.ListSummaries(ctx, ListInput{
		Pagination: pagination.Params{Limit: 2},
	})
	if err != nil {
		t.Fatalf("list summaries: %v", err)
	}
	if len(page.Products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(page.Products))
	}
	if page.NextCursor == "" {
		t.Fatal("expected next cursor on first page")
	}

	rest, err := repo.ListSummaries(ctx, ListInput{
		Pagination: pagination.Params{Limit: 2, Cursor: page.NextCursor},
	})
	if err != nil {
		t.Fatalf("list summaries next page: %v", err)
	}
	if len(rest.Products) == 0 {
		t.Fatal("expected remaining products on second page")
	}
	for _, p := range rest.Products {
		for _, seen := range page.Products {
			if p.ID == seen.ID {
				t.Fatalf("product %s repeated across pages", p.ID)
			}
		}
	}
}
