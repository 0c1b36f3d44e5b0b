package catalog

import (
	"context"
	"testing"

	"zaika/internal/ai"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestImportExtracted_AppliesDefaults(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil)

	products, err := service.ImportExtracted(context.Background(), []ai.ExtractedProduct{
		{Name: "", Price: nil, Category: nil},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}

	p := products[0]
	if p.Name != DefaultProductName {
		t.Errorf("expected default name, got %q", p.Name)
	}
	if p.Category != DefaultCategory {
		t.Errorf("expected default category, got %q", p.Category)
	}
	if p.Price != 0 {
		t.Errorf("expected zero price, got %v", p.Price)
	}
	// hint derives from the category when the name is the default
	if p.AIHint != "uncategorized" {
		t.Errorf("expected hint from category, got %q", p.AIHint)
	}
	if p.DisplayOrder != 0 {
		t.Errorf("expected display order 0, got %d", p.DisplayOrder)
	}
}

func TestImportExtracted_ContiguousOrdersPerCategory(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil)

	// prior max of 3 for Drinks
	for i := 0; i <= 3; i++ {
		_ = repo.Create(context.Background(), &Product{
			Name:         "existing",
			Category:     "Drinks",
			DisplayOrder: i,
		})
	}

	extracted := []ai.ExtractedProduct{
		{Name: "Cold Coffee", Category: strPtr("Drinks"), Price: floatPtr(3.5)},
		{Name: "Samosa", Category: strPtr("Snacks"), Price: floatPtr(1.5)},
		{Name: "Iced Tea", Category: strPtr("Drinks"), Price: floatPtr(2.0)},
		{Name: "Kachori", Category: strPtr("Snacks"), Price: floatPtr(1.0)},
		{Name: "Lassi", Category: strPtr("Drinks"), Price: floatPtr(2.5)},
	}

	products, err := service.ImportExtracted(context.Background(), extracted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	orders := make(map[string][]int)
	for _, p := range products {
		orders[p.Category] = append(orders[p.Category], p.DisplayOrder)
	}

	wantDrinks := []int{4, 5, 6}
	for i, n := range orders["Drinks"] {
		if n != wantDrinks[i] {
			t.Errorf("Drinks order %d: expected %d, got %d", i, wantDrinks[i], n)
		}
	}

	wantSnacks := []int{0, 1}
	for i, n := range orders["Snacks"] {
		if n != wantSnacks[i] {
			t.Errorf("Snacks order %d: expected %d, got %d", i, wantSnacks[i], n)
		}
	}

	// the batch must have been persisted
	all, _ := repo.List(context.Background())
	if len(all) != 4+5 {
		t.Errorf("expected 9 stored products, got %d", len(all))
	}
}

func TestImportExtracted_EmptyInputWritesNothing(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil)

	products, err := service.ImportExtracted(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if products != nil {
		t.Fatalf("expected nil result, got %v", products)
	}

	all, _ := repo.List(context.Background())
	if len(all) != 0 {
		t.Errorf("expected empty store, got %d products", len(all))
	}
}

func TestDeriveAIHint(t *testing.T) {
	cases := []struct {
		name     string
		category string
		want     string
	}{
		{"Butter Chicken", "Mains", "butter chicken"},
		{"Coke", "Drinks", "coke"},
		{"Triple Decker Club Sandwich", "Mains", "triple decker"},
		{DefaultProductName, "Street Food", "street food"},
	}

	for _, tc := range cases {
		if got := DeriveAIHint(tc.name, tc.category); got != tc.want {
			t.Errorf("DeriveAIHint(%q, %q) = %q, want %q", tc.name, tc.category, got, tc.want)
		}
	}
}

func TestCreateProduct_AssignsNextOrderAndHint(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil)

	first := &Product{Name: "Masala Chai", Price: 2.25, Category: "Drinks"}
	if err := service.CreateProduct(context.Background(), first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := &Product{Name: "Filter Coffee", Price: 2.75, Category: "Drinks"}
	if err := service.CreateProduct(context.Background(), second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.DisplayOrder != 0 || second.DisplayOrder != 1 {
		t.Errorf("expected orders 0 and 1, got %d and %d",
			first.DisplayOrder, second.DisplayOrder)
	}
	if first.AIHint != "masala chai" {
		t.Errorf("expected derived hint, got %q", first.AIHint)
	}
	if first.ID == "" {
		t.Error("expected generated id")
	}
}

func TestCreateProduct_RejectsInvalid(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil)

	cases := []*Product{
		{Name: "", Price: 1, Category: "Drinks"},
		{Name: "Chai", Price: 1, Category: ""},
		{Name: "Chai", Price: -1, Category: "Drinks"},
	}

	for i, p := range cases {
		if err := service.CreateProduct(context.Background(), p); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestUpdateProduct_CategoryChangeKeepsOrder(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil)

	p := &Product{Name: "Paneer Tikka", Price: 6.5, Category: "Starters"}
	if err := service.CreateProduct(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p.Category = "Mains"
	if err := service.UpdateProduct(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := repo.GetByID(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stored.Category != "Mains" {
		t.Errorf("expected category Mains, got %q", stored.Category)
	}
	if stored.DisplayOrder != 0 {
		t.Errorf("display order must survive a category change, got %d", stored.DisplayOrder)
	}
}

func TestEnsureSeed_OnlySeedsEmptyStore(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil)

	if err := service.EnsureSeed(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, _ := repo.List(context.Background())
	if len(all) != 9 {
		t.Fatalf("expected 9 seeded products, got %d", len(all))
	}

	// second call must not duplicate
	if err := service.EnsureSeed(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, _ = repo.List(context.Background())
	if len(all) != 9 {
		t.Fatalf("expected seed to be idempotent, got %d products", len(all))
	}

	// seeded orders are contiguous per category
	byCategory := make(map[string][]int)
	for _, p := range all {
		byCategory[p.Category] = append(byCategory[p.Category], p.DisplayOrder)
	}
	for category, orders := range byCategory {
		for i, n := range orders {
			if n != i {
				t.Errorf("category %s: expected order %d at position %d, got %d",
					category, i, i, n)
			}
		}
	}
}
