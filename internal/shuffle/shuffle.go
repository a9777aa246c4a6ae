package shuffle

import "math/rand"

// Source draws uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// globalSource uses the auto-seeded process-wide generator.
type globalSource struct{}

func (globalSource) Intn(n int) int { return rand.Intn(n) }

// Engine produces random display orders from a Source.
// It is meant to be driven from a single goroutine, like the page it orders.
type Engine struct {
	src Source
}

// New creates an Engine drawing from src. A nil src uses the global generator.
func New(src Source) *Engine {
	if src == nil {
		src = globalSource{}
	}
	return &Engine{src: src}
}

// NewSeeded creates an Engine whose orders are reproducible for a given seed.
func NewSeeded(seed int64) *Engine {
	return New(rand.New(rand.NewSource(seed)))
}

// Order returns a random permutation of the indices 0..n-1.
// Element k of the result is the original index shown at position k.
func (e *Engine) Order(n int) []int {
	if n <= 0 {
		return []int{}
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	InPlace(e.src, order)
	return order
}

// InPlace reorders items with a Fisher-Yates pass, walking from the end
// and swapping each slot with a uniformly chosen slot at or before it.
// A nil src uses the global generator.
func InPlace[T any](src Source, items []T) {
	if src == nil {
		src = globalSource{}
	}
	for i := len(items) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Shuffle returns a shuffled copy of items. The input slice is left untouched.
func Shuffle[T any](src Source, items []T) []T {
	dst := make([]T, len(items))
	copy(dst, items)
	InPlace(src, dst)
	return dst
}

// Apply returns items rearranged by order, as produced by Engine.Order.
func Apply[T any](items []T, order []int) []T {
	dst := make([]T, 0, len(order))
	for _, idx := range order {
		if idx < 0 || idx >= len(items) {
			continue
		}
		dst = append(dst, items[idx])
	}
	return dst
}
