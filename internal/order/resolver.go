package order

import (
	"strings"

	"zaika/internal/ai"
	"zaika/internal/catalog"
)

// ResolveCart prices interpreter output against the catalog.
// PURE business logic (no store / no interpreter calls).
//
// Matching is exact, case-insensitive name equality; first catalog match
// wins. Matched lines keep the input order, unmatched names are skipped
// in place and reported as data, never as an error.
func ResolveCart(
	products []catalog.Product,
	items []ai.ParsedOrderItem,
) ResolvedCart {

	cart := ResolvedCart{
		Lines:          []CartLine{},
		UnmatchedNames: []string{},
	}

	for _, item := range items {
		product, ok := findByName(products, item.ItemName)
		if !ok {
			cart.UnmatchedNames = append(cart.UnmatchedNames, item.ItemName)
			continue
		}

		cart.Lines = append(cart.Lines, CartLine{
			ProductID:       product.ID,
			Name:            product.Name,
			Quantity:        item.Quantity,
			UnitPrice:       product.Price,
			SpecialRequests: item.SpecialRequests,
			ImageURL:        product.ImageURL,
			AIHint:          product.AIHint,
		})

		cart.TotalAmount += float64(item.Quantity) * product.Price
	}

	return cart
}

func findByName(products []catalog.Product, name string) (catalog.Product, bool) {
	for _, p := range products {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return catalog.Product{}, false
}
