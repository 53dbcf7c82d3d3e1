// Copyright 2026 The Parlim Authors
// SPDX-License-Identifier: Apache-2.0

package par

import (
	"iter"
	"slices"
	"sync"
)

// Iter is a sized parallel sequence of T.
//
// A sequence is either backed directly by a slice ([FromSlice],
// [FromSeq], [Range]) or deferred ([Lazy], and the handles returned by
// [Map], [Filter], and friends). Deferred sequences are evaluated at
// most once, on first use, and the result is retained for subsequent
// consumers.
//
// The backing slab returned by [Iter.Collect] is shared, not copied.
// Views produced by [Chunks] alias it. Callers that mutate the slab
// own the consequences.
type Iter[T any] struct {
	pool   *Pool
	once   sync.Once
	eval   func() []T
	items  []T
	hint   int // -1 until the length is known
	fanout int // batch-count override; 0 defers to the pool
}

// FromSlice wraps items without copying. A nil pool selects [Default].
func FromSlice[T any](p *Pool, items []T) *Iter[T] {
	return &Iter[T]{pool: p.orDefault(), items: items, hint: len(items)}
}

// FromSeq materializes a Go iterator into a sized sequence. The engine
// requires lengths to be known before iteration, so unbounded or lazy
// sequences must be bounded by the caller first.
func FromSeq[T any](p *Pool, s iter.Seq[T]) *Iter[T] {
	return FromSlice(p, slices.Collect(s))
}

// Range returns the sequence of integers in the half-open interval
// [low, high). An empty interval yields an empty sequence.
func Range(p *Pool, low, high int) *Iter[int] {
	if high < low {
		high = low
	}
	items := make([]int, high-low)
	for i := range items {
		items[i] = low + i
	}
	return FromSlice(p, items)
}

// Lazy returns a deferred sequence whose elements are produced by eval
// on first use. Pass the element count as n when it is known ahead of
// evaluation, or a negative value when it is not.
func Lazy[T any](p *Pool, n int, eval func() []T) *Iter[T] {
	if n < 0 {
		n = -1
	}
	return &Iter[T]{pool: p.orDefault(), eval: eval, hint: n}
}

// Pool returns the engine handle the sequence was constructed with.
func (it *Iter[T]) Pool() *Pool { return it.pool }

// Collect evaluates the sequence if necessary and returns the backing
// slab. Repeated calls return the same slab.
func (it *Iter[T]) Collect() []T {
	it.once.Do(func() {
		if it.eval != nil {
			it.items = it.eval()
			it.eval = nil
		}
		it.hint = len(it.items)
	})
	return it.items
}

// Len reports the number of elements. Sequences whose length is not
// known ahead of time are evaluated first.
func (it *Iter[T]) Len() int {
	if it.hint >= 0 {
		return it.hint
	}
	return len(it.Collect())
}

// LenHint reports the number of elements if it is known without
// evaluating the sequence.
func (it *Iter[T]) LenHint() (int, bool) {
	if it.hint >= 0 {
		return it.hint, true
	}
	return 0, false
}

// batches is the batch-count hint handed to the engine.
func (it *Iter[T]) batches() int {
	if it.fanout > 0 {
		return it.fanout
	}
	return it.pool.fanout
}
