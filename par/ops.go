// Copyright 2026 The Parlim Authors
// SPDX-License-Identifier: Apache-2.0

package par

import (
	"cmp"
	"slices"
	"sync"

	"github.com/exascience/pargo/parallel"
	"github.com/exascience/pargo/speculative"
)

// ForEach applies fn to every element, in parallel across engine
// batches. It returns once all invocations have completed. A panic in
// fn is propagated by the engine.
func ForEach[T any](it *Iter[T], fn func(T)) {
	items := it.Collect()
	if len(items) == 0 {
		return
	}
	parallel.Range(0, len(items), it.batches(), func(low, high int) {
		it.pool.Pace()
		for _, v := range items[low:high] {
			fn(v)
		}
	})
}

// ForEachIndexed is a variant of [ForEach] whose callback also
// receives the element's position in the sequence.
func ForEachIndexed[T any](it *Iter[T], fn func(int, T)) {
	items := it.Collect()
	if len(items) == 0 {
		return
	}
	parallel.Range(0, len(items), it.batches(), func(low, high int) {
		it.pool.Pace()
		for i := low; i < high; i++ {
			fn(i, items[i])
		}
	})
}

// TryForEach applies fn to every element, in parallel across engine
// batches, and returns the first non-nil error. Batches that have not
// started when an error is observed are abandoned; items already in
// flight run to completion.
func TryForEach[T any](it *Iter[T], fn func(T) error) error {
	items := it.Collect()
	if len(items) == 0 {
		return nil
	}
	// The engine's speculative ranges are predicate-only, so failure is
	// modeled as a match: the failing batch records its error before
	// reporting true, which abandons the batches that have not started.
	// A batch reports true only after its once.Do, so the error is
	// visible to the caller by the time RangeOr returns.
	var once sync.Once
	var failure error
	speculative.RangeOr(0, len(items), it.batches(), func(low, high int) bool {
		it.pool.Pace()
		for _, v := range items[low:high] {
			if err := fn(v); err != nil {
				once.Do(func() { failure = err })
				return true
			}
		}
		return false
	})
	return failure
}

// Map returns a deferred sequence that applies fn to every element in
// parallel. The Nth output is the result of applying fn to the Nth
// input, regardless of execution order.
func Map[T, R any](it *Iter[T], fn func(T) R) *Iter[R] {
	return Lazy(it.pool, it.hint, func() []R {
		items := it.Collect()
		out := make([]R, len(items))
		if len(items) == 0 {
			return out
		}
		parallel.Range(0, len(items), it.batches(), func(low, high int) {
			it.pool.Pace()
			for i := low; i < high; i++ {
				out[i] = fn(items[i])
			}
		})
		return out
	})
}

// Filter returns a deferred sequence of the elements for which pred
// reports true, preserving their relative order.
func Filter[T any](it *Iter[T], pred func(T) bool) *Iter[T] {
	return filtered(it, func(v T) (T, bool) { return v, pred(v) })
}

// FilterMap returns a deferred sequence of the mapped values for which
// fn reports true, preserving the input's relative order.
func FilterMap[T, R any](it *Iter[T], fn func(T) (R, bool)) *Iter[R] {
	return filtered(it, fn)
}

// filtered collects surviving elements per batch and reassembles them
// in input order. The engine does not expose batch identities, so
// pieces are keyed by their range start and sorted afterwards.
func filtered[T, R any](it *Iter[T], fn func(T) (R, bool)) *Iter[R] {
	return Lazy(it.pool, -1, func() []R {
		items := it.Collect()
		if len(items) == 0 {
			return nil
		}
		type piece struct {
			low  int
			kept []R
		}
		var mu sync.Mutex
		var pieces []piece
		parallel.Range(0, len(items), it.batches(), func(low, high int) {
			it.pool.Pace()
			var kept []R
			for _, v := range items[low:high] {
				if r, ok := fn(v); ok {
					kept = append(kept, r)
				}
			}
			if len(kept) == 0 {
				return
			}
			mu.Lock()
			pieces = append(pieces, piece{low: low, kept: kept})
			mu.Unlock()
		})
		slices.SortFunc(pieces, func(a, b piece) int { return cmp.Compare(a.low, b.low) })
		var out []R
		for _, p := range pieces {
			out = append(out, p.kept...)
		}
		return out
	})
}

// Any reports whether pred is true for at least one element. Remaining
// batches are abandoned once a match is found; an empty sequence
// reports false.
func Any[T any](it *Iter[T], pred func(T) bool) bool {
	items := it.Collect()
	if len(items) == 0 {
		return false
	}
	return speculative.RangeOr(0, len(items), it.batches(), func(low, high int) bool {
		it.pool.Pace()
		for _, v := range items[low:high] {
			if pred(v) {
				return true
			}
		}
		return false
	})
}

// All reports whether pred is true for every element. Remaining
// batches are abandoned once a counterexample is found; an empty
// sequence reports true.
func All[T any](it *Iter[T], pred func(T) bool) bool {
	items := it.Collect()
	if len(items) == 0 {
		return true
	}
	return speculative.RangeAnd(0, len(items), it.batches(), func(low, high int) bool {
		it.pool.Pace()
		for _, v := range items[low:high] {
			if !pred(v) {
				return false
			}
		}
		return true
	})
}

// Chunks reshapes the sequence into contiguous windows of at most size
// elements. All windows but the last hold exactly size elements; their
// concatenation is the original sequence. The windows alias the
// evaluated backing slab, so writes through a window are visible in
// the slab. Each window is scheduled as its own engine batch.
func Chunks[T any](it *Iter[T], size int) *Iter[[]T] {
	if size < 1 {
		panic("par: chunk size must be at least 1")
	}
	count := (it.Len() + size - 1) / size
	out := Lazy(it.pool, count, func() [][]T {
		items := it.Collect()
		chunks := make([][]T, 0, count)
		for low := 0; low < len(items); low += size {
			high := min(low+size, len(items))
			chunks = append(chunks, items[low:high:high])
		}
		return chunks
	})
	out.fanout = count
	return out
}
