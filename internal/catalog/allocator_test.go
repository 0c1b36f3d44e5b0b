package catalog

import (
	"context"
	"testing"
)

// countingSource records how many times each category was queried.
type countingSource struct {
	max     map[string]int
	queries map[string]int
}

func newCountingSource(max map[string]int) *countingSource {
	return &countingSource{
		max:     max,
		queries: make(map[string]int),
	}
}

func (s *countingSource) MaxDisplayOrder(
	ctx context.Context,
	category string,
) (int, error) {

	s.queries[category]++

	if m, ok := s.max[category]; ok {
		return m, nil
	}
	return -1, nil
}

func TestAllocator_EmptyCategoryStartsAtZero(t *testing.T) {
	alloc := NewOrderAllocator(newCountingSource(nil))

	n, err := alloc.Next(context.Background(), "Drinks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected first order 0, got %d", n)
	}
}

func TestAllocator_BatchIsContiguousFromZero(t *testing.T) {
	alloc := NewOrderAllocator(newCountingSource(nil))

	for want := 0; want < 5; want++ {
		n, err := alloc.Next(context.Background(), "Drinks")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != want {
			t.Fatalf("expected order %d, got %d", want, n)
		}
	}
}

func TestAllocator_ContinuesAfterExistingMax(t *testing.T) {
	source := newCountingSource(map[string]int{"Drinks": 3})
	alloc := NewOrderAllocator(source)

	for want := 4; want < 7; want++ {
		n, err := alloc.Next(context.Background(), "Drinks")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != want {
			t.Fatalf("expected order %d, got %d", want, n)
		}
	}
}

func TestAllocator_OneQueryPerDistinctCategory(t *testing.T) {
	source := newCountingSource(map[string]int{"Drinks": 1})
	alloc := NewOrderAllocator(source)

	// interleaved categories within one batch
	batch := []string{"Drinks", "Mains", "Drinks", "Mains", "Drinks", "Starters"}
	for _, category := range batch {
		if _, err := alloc.Next(context.Background(), category); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	for _, category := range []string{"Drinks", "Mains", "Starters"} {
		if got := source.queries[category]; got != 1 {
			t.Errorf("category %s queried %d times, expected 1", category, got)
		}
	}
}

func TestAllocator_InterleavedBatchHasNoGapsOrDuplicates(t *testing.T) {
	source := newCountingSource(map[string]int{"Drinks": 2})
	alloc := NewOrderAllocator(source)

	batch := []string{"Drinks", "Mains", "Drinks", "Mains", "Drinks"}
	assigned := make(map[string][]int)

	for _, category := range batch {
		n, err := alloc.Next(context.Background(), category)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assigned[category] = append(assigned[category], n)
	}

	wantDrinks := []int{3, 4, 5}
	for i, n := range assigned["Drinks"] {
		if n != wantDrinks[i] {
			t.Errorf("Drinks order %d: expected %d, got %d", i, wantDrinks[i], n)
		}
	}

	wantMains := []int{0, 1}
	for i, n := range assigned["Mains"] {
		if n != wantMains[i] {
			t.Errorf("Mains order %d: expected %d, got %d", i, wantMains[i], n)
		}
	}
}
