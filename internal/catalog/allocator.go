package catalog

import "context"

// OrderSource is the one query the allocator needs from the store.
type OrderSource interface {
	MaxDisplayOrder(ctx context.Context, category string) (int, error)
}

// OrderAllocator assigns the next display order per category.
//
// It queries the store once per distinct category and counts upward in
// memory for the rest of the batch, so orders assigned within one batch
// are a contiguous ascending run starting right after the store's prior
// maximum, with no duplicates regardless of how categories interleave.
// An allocator belongs to exactly one insert or import call; never share
// one across requests.
type OrderAllocator struct {
	source OrderSource
	next   map[string]int
}

func NewOrderAllocator(source OrderSource) *OrderAllocator {
	return &OrderAllocator{
		source: source,
		next:   make(map[string]int),
	}
}

// Next returns the display order for the next product in category.
func (a *OrderAllocator) Next(ctx context.Context, category string) (int, error) {
	if n, ok := a.next[category]; ok {
		a.next[category] = n + 1
		return n, nil
	}

	max, err := a.source.MaxDisplayOrder(ctx, category)
	if err != nil {
		return 0, err
	}
	if max < -1 {
		max = -1
	}

	n := max + 1
	a.next[category] = n + 1
	return n, nil
}
