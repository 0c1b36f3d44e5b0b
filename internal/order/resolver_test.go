package order

import (
	"testing"

	"zaika/internal/ai"
	"zaika/internal/catalog"
)

func fixtureCatalog() []catalog.Product {
	return []catalog.Product{
		{ID: "p1", Name: "Coke", Price: 2.50, Category: "Drinks", ImageURL: "https://img/coke.png", AIHint: "coke"},
		{ID: "p2", Name: "Margherita Pizza", Price: 9.50, Category: "Mains", AIHint: "margherita pizza"},
		{ID: "p3", Name: "Garlic Bread", Price: 4.00, Category: "Starters", AIHint: "garlic bread"},
	}
}

func TestResolveCart_CaseInsensitiveMatch(t *testing.T) {
	cart := ResolveCart(fixtureCatalog(), []ai.ParsedOrderItem{
		{ItemName: "coke", Quantity: 2},
	})

	if len(cart.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(cart.Lines))
	}

	line := cart.Lines[0]
	if line.Name != "Coke" {
		t.Errorf("expected catalog name 'Coke', got %q", line.Name)
	}
	if line.Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", line.Quantity)
	}
	if line.UnitPrice != 2.50 {
		t.Errorf("expected unit price 2.50, got %v", line.UnitPrice)
	}
	if cart.TotalAmount != 5.00 {
		t.Errorf("expected total 5.00, got %v", cart.TotalAmount)
	}
	if len(cart.UnmatchedNames) != 0 {
		t.Errorf("expected no unmatched names, got %v", cart.UnmatchedNames)
	}
}

func TestResolveCart_UppercaseStillMatches(t *testing.T) {
	cart := ResolveCart(fixtureCatalog(), []ai.ParsedOrderItem{
		{ItemName: "COKE", Quantity: 1},
	})

	if len(cart.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(cart.Lines))
	}
	if cart.Lines[0].ProductID != "p1" {
		t.Errorf("expected product p1, got %s", cart.Lines[0].ProductID)
	}
}

func TestResolveCart_LineCarriesCatalogData(t *testing.T) {
	cart := ResolveCart(fixtureCatalog(), []ai.ParsedOrderItem{
		{ItemName: "coke", Quantity: 1, SpecialRequests: "no ice"},
	})

	line := cart.Lines[0]
	if line.ImageURL != "https://img/coke.png" {
		t.Errorf("expected catalog image url, got %q", line.ImageURL)
	}
	if line.AIHint != "coke" {
		t.Errorf("expected catalog ai hint, got %q", line.AIHint)
	}
	if line.SpecialRequests != "no ice" {
		t.Errorf("expected special request carried, got %q", line.SpecialRequests)
	}
}

func TestResolveCart_UnmatchedReportedAsData(t *testing.T) {
	cart := ResolveCart(fixtureCatalog(), []ai.ParsedOrderItem{
		{ItemName: "Coke", Quantity: 1},
		{ItemName: "Yak Burger", Quantity: 1},
	})

	if len(cart.Lines) != 1 {
		t.Fatalf("expected 1 matched line, got %d", len(cart.Lines))
	}
	if len(cart.UnmatchedNames) != 1 || cart.UnmatchedNames[0] != "Yak Burger" {
		t.Fatalf("expected unmatched [Yak Burger], got %v", cart.UnmatchedNames)
	}
	if cart.TotalAmount != 2.50 {
		t.Errorf("unmatched item must not affect total, got %v", cart.TotalAmount)
	}
}

func TestResolveCart_NeverMatchesUnknownName(t *testing.T) {
	cart := ResolveCart(fixtureCatalog(), []ai.ParsedOrderItem{
		{ItemName: "Unicorn Steak", Quantity: 3},
	})

	if len(cart.Lines) != 0 {
		t.Fatalf("expected no lines, got %d", len(cart.Lines))
	}
	if len(cart.UnmatchedNames) != 1 || cart.UnmatchedNames[0] != "Unicorn Steak" {
		t.Fatalf("expected unmatched [Unicorn Steak], got %v", cart.UnmatchedNames)
	}
	if cart.TotalAmount != 0 {
		t.Errorf("expected zero total, got %v", cart.TotalAmount)
	}
}

func TestResolveCart_EmptyInputIsDistinctOutcome(t *testing.T) {
	cart := ResolveCart(fixtureCatalog(), nil)

	if !cart.NothingUnderstood() {
		t.Fatal("empty interpreter output must report NothingUnderstood")
	}
	if cart.TotalAmount != 0 {
		t.Errorf("expected zero total, got %v", cart.TotalAmount)
	}

	partial := ResolveCart(fixtureCatalog(), []ai.ParsedOrderItem{
		{ItemName: "Yak Burger", Quantity: 1},
	})
	if partial.NothingUnderstood() {
		t.Fatal("unmatched-only cart must NOT report NothingUnderstood")
	}
}

func TestResolveCart_PreservesInputOrder(t *testing.T) {
	cart := ResolveCart(fixtureCatalog(), []ai.ParsedOrderItem{
		{ItemName: "garlic bread", Quantity: 1},
		{ItemName: "Unicorn Steak", Quantity: 1},
		{ItemName: "margherita pizza", Quantity: 1},
		{ItemName: "coke", Quantity: 1},
	})

	want := []string{"p3", "p2", "p1"}
	if len(cart.Lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(cart.Lines))
	}
	for i, id := range want {
		if cart.Lines[i].ProductID != id {
			t.Errorf("line %d: expected product %s, got %s", i, id, cart.Lines[i].ProductID)
		}
	}
}

func TestResolveCart_TotalMatchesLineSum(t *testing.T) {
	cart := ResolveCart(fixtureCatalog(), []ai.ParsedOrderItem{
		{ItemName: "coke", Quantity: 3},
		{ItemName: "Margherita Pizza", Quantity: 2},
		{ItemName: "nothing on menu", Quantity: 5},
	})

	var sum float64
	for _, line := range cart.Lines {
		sum += float64(line.Quantity) * line.UnitPrice
	}

	if cart.TotalAmount != sum {
		t.Errorf("total %v does not equal line sum %v", cart.TotalAmount, sum)
	}
}

func TestResolveCart_FirstMatchWinsOnDuplicates(t *testing.T) {
	products := []catalog.Product{
		{ID: "a", Name: "Chai", Price: 2.00, Category: "Drinks"},
		{ID: "b", Name: "chai", Price: 3.00, Category: "Drinks"},
	}

	cart := ResolveCart(products, []ai.ParsedOrderItem{
		{ItemName: "CHAI", Quantity: 1},
	})

	if len(cart.Lines) != 1 || cart.Lines[0].ProductID != "a" {
		t.Fatalf("expected first catalog match to win, got %+v", cart.Lines)
	}
}
