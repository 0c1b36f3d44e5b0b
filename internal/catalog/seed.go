package catalog

import (
	"context"
	"log"

	"github.com/google/uuid"
)

// defaultCatalog is the starter menu inserted into empty environments.
var defaultCatalog = []Product{
	{Name: "Margherita Pizza", Price: 9.50, Category: "Mains", Description: "Tomato, mozzarella and fresh basil", AIHint: "margherita pizza"},
	{Name: "Butter Chicken", Price: 12.00, Category: "Mains", Description: "Creamy tomato gravy with tandoori chicken", AIHint: "butter chicken"},
	{Name: "Veggie Burger", Price: 8.25, Category: "Mains", Description: "Grilled patty with lettuce and house sauce", AIHint: "veggie burger"},
	{Name: "Garlic Bread", Price: 4.00, Category: "Starters", Description: "Toasted baguette with garlic butter", AIHint: "garlic bread"},
	{Name: "Paneer Tikka", Price: 6.50, Category: "Starters", Description: "Char-grilled cottage cheese skewers", AIHint: "paneer tikka"},
	{Name: "Tomato Soup", Price: 4.75, Category: "Starters", Description: "Slow-cooked with cream and croutons", AIHint: "tomato soup"},
	{Name: "Coke", Price: 2.50, Category: "Drinks", Description: "Chilled 330ml can", AIHint: "coke"},
	{Name: "Fresh Lime Soda", Price: 3.00, Category: "Drinks", Description: "Sweet, salted or mixed", AIHint: "lime soda"},
	{Name: "Masala Chai", Price: 2.25, Category: "Drinks", Description: "Spiced milk tea", AIHint: "masala chai"},
}

// EnsureSeed inserts the default catalog when the store is empty.
// Display orders run through the same allocator as admin imports.
func (s *Service) EnsureSeed(ctx context.Context) error {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	alloc := NewOrderAllocator(s.repo)
	products := make([]Product, 0, len(defaultCatalog))

	for _, p := range defaultCatalog {
		order, err := alloc.Next(ctx, p.Category)
		if err != nil {
			return err
		}

		p.ID = uuid.New().String()
		p.DisplayOrder = order
		products = append(products, p)
	}

	if err := s.repo.CreateBatch(ctx, products); err != nil {
		return err
	}

	log.Printf("seeded catalog with %d products", len(products))
	return nil
}
