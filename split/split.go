// Copyright 2026 The Parlim Authors
// SPDX-License-Identifier: Apache-2.0

// Package split hands out multiple live, mutable views into a single
// pre-allocated buffer.
//
// The intended use is parallel production of one output buffer:
// several goroutines each write into their own region concurrently,
// without coordinating through a lock. This is safe in Go exactly when
// the regions do not overlap. [Slab.Even] and [Slab.Disjoint] produce
// region sets that are disjoint by construction or by validation;
// [Slab.Region] is the unchecked escape hatch whose disjointness
// precondition is the caller's to prove. The type system does not
// enforce the contract.
package split

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrOverlap is returned by [Slab.Disjoint] when two requested spans
// intersect.
var ErrOverlap = errors.New("overlapping spans")

// Span is a half-open index interval [Low, High).
type Span struct {
	Low, High int
}

// Slab wraps a buffer whose regions are handed out as mutable views.
type Slab[T any] struct {
	buf []T
}

// New wraps buf without copying it.
func New[T any](buf []T) *Slab[T] { return &Slab[T]{buf: buf} }

// Len returns the length of the underlying buffer.
func (s *Slab[T]) Len() int { return len(s.buf) }

// Region returns the view buf[low:high). The view's capacity is
// clipped so appends cannot spill into a neighboring region.
//
// Concurrent writers must hold disjoint regions. This precondition is
// not checked; use [Slab.Disjoint] when validation is wanted.
func (s *Slab[T]) Region(low, high int) []T {
	return s.buf[low:high:high]
}

// Even splits the buffer into consecutive regions of exactly size
// elements, except the last, which holds the remainder. The regions
// are disjoint by construction and cover the buffer in order.
func (s *Slab[T]) Even(size int) [][]T {
	if size < 1 {
		panic("split: region size must be at least 1")
	}
	regions := make([][]T, 0, (len(s.buf)+size-1)/size)
	for low := 0; low < len(s.buf); low += size {
		high := min(low+size, len(s.buf))
		regions = append(regions, s.buf[low:high:high])
	}
	return regions
}

// Disjoint returns one view per span, in argument order, after
// validating that every span is within bounds and that no two spans
// intersect. Empty spans never intersect anything.
func (s *Slab[T]) Disjoint(spans ...Span) ([][]T, error) {
	for _, sp := range spans {
		if sp.Low > sp.High || sp.Low < 0 || sp.High > len(s.buf) {
			return nil, fmt.Errorf("split: span [%d,%d) invalid for buffer of length %d",
				sp.Low, sp.High, len(s.buf))
		}
	}
	sorted := slices.Clone(spans)
	slices.SortFunc(sorted, func(a, b Span) int { return cmp.Compare(a.Low, b.Low) })
	prev := Span{Low: -1, High: -1}
	for _, cur := range sorted {
		if cur.Low == cur.High {
			continue
		}
		if prev.Low >= 0 && cur.Low < prev.High {
			return nil, fmt.Errorf("split: spans [%d,%d) and [%d,%d): %w",
				prev.Low, prev.High, cur.Low, cur.High, ErrOverlap)
		}
		prev = cur
	}
	views := make([][]T, len(spans))
	for i, sp := range spans {
		views[i] = s.buf[sp.Low:sp.High:sp.High]
	}
	return views, nil
}
