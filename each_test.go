// Copyright 2026 The Parlim Authors
// SPDX-License-Identifier: Apache-2.0

package parlim

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"parlim.dev/parlim/par"
)

// gauge counts concurrently-open operation invocations.
type gauge struct {
	running atomic.Int32
	maxSeen atomic.Int32
}

func (g *gauge) enter() {
	cur := g.running.Add(1)
	for {
		old := g.maxSeen.Load()
		if cur <= old || g.maxSeen.CompareAndSwap(old, cur) {
			return
		}
	}
}

func (g *gauge) exit() { g.running.Add(-1) }

// barrier releases every waiter once want invocations are
// simultaneously open.
type barrier struct {
	want int32
	gate chan struct{}
	once sync.Once
	g    gauge
}

func newBarrier(want int) *barrier {
	return &barrier{want: int32(want), gate: make(chan struct{})}
}

func (b *barrier) visit() {
	b.g.enter()
	defer b.g.exit()
	if b.g.running.Load() >= b.want {
		b.once.Do(func() { close(b.gate) })
	}
	<-b.gate
}

func TestForEachVisitsEverything(t *testing.T) {
	for _, limit := range []int{0, 1, 2, 3, 10, 11} {
		r := require.New(t)

		var sum atomic.Int64
		ForEach(limit, par.FromSlice(nil, ints(10)), func(v int) {
			sum.Add(int64(v))
		})
		r.Equal(int64(45), sum.Load(), "limit=%d", limit)
	}
}

func TestForEachConcurrencyBoundExact(t *testing.T) {
	r := require.New(t)

	// With N >= limit there are exactly limit chunks, each contributing
	// one open invocation, so the observed maximum must reach limit and
	// never exceed it.
	const limit = 3
	b := newBarrier(limit)
	ForEach(limit, par.FromSlice(nil, ints(12)), func(int) {
		b.visit()
	})
	r.Equal(int32(limit), b.g.maxSeen.Load())
}

func TestForEachConcurrencyBoundShortInput(t *testing.T) {
	r := require.New(t)

	// With N < limit every element is its own chunk, so the bound is N.
	const n = 3
	b := newBarrier(n)
	ForEach(8, par.FromSlice(nil, ints(n)), func(int) {
		b.visit()
	})
	r.Equal(int32(n), b.g.maxSeen.Load())
}

func TestForEachSequentialLimit(t *testing.T) {
	r := require.New(t)

	var g gauge
	var order []int
	ForEach(1, par.FromSlice(nil, ints(8)), func(v int) {
		g.enter()
		defer g.exit()
		order = append(order, v)
	})
	r.Equal(int32(1), g.maxSeen.Load())
	r.Equal(ints(8), order)
}

func TestForEachEmpty(t *testing.T) {
	for _, limit := range []int{0, 1, 2} {
		ForEach(limit, par.FromSlice(nil, []int{}), func(int) {
			t.Fatal("should not be called")
		})
	}
}

func TestForEachNegativePanics(t *testing.T) {
	r := require.New(t)

	r.Panics(func() {
		ForEach(-2, par.FromSlice(nil, ints(3)), func(int) {})
	})
}

func TestTryForEachPropagatesFirstError(t *testing.T) {
	r := require.New(t)

	errBoom := errors.New("boom")

	// limit=2 over ten elements yields chunks 0-4 and 5-9; the failure
	// fires at element 4, inside the first chunk.
	err := TryForEach(2, par.FromSlice(nil, ints(10)), func(v int) error {
		if v == 4 {
			return errBoom
		}
		return nil
	})
	r.Error(err)
	r.ErrorIs(err, errBoom)
	r.Equal(errBoom, err, "the error must be returned verbatim")
}

func TestTryForEachSequentialShortCircuit(t *testing.T) {
	r := require.New(t)

	errBoom := errors.New("boom")

	var visited []int
	err := TryForEach(1, par.FromSlice(nil, ints(10)), func(v int) error {
		visited = append(visited, v)
		if v == 4 {
			return errBoom
		}
		return nil
	})
	r.ErrorIs(err, errBoom)
	r.Equal([]int{0, 1, 2, 3, 4}, visited)
}

func TestTryForEachFailingChunkStopsItsTail(t *testing.T) {
	r := require.New(t)

	errBoom := errors.New("boom")

	// The failure at element 1 aborts the rest of the first chunk
	// (elements 2-4); elements of the sibling chunk may or may not run.
	var mu sync.Mutex
	visited := map[int]bool{}
	err := TryForEach(2, par.FromSlice(nil, ints(10)), func(v int) error {
		mu.Lock()
		visited[v] = true
		mu.Unlock()
		if v == 1 {
			return errBoom
		}
		return nil
	})
	r.ErrorIs(err, errBoom)
	for _, v := range []int{2, 3, 4} {
		r.False(visited[v], "element %d follows the failure in its chunk", v)
	}
}

func TestTryForEachSuccess(t *testing.T) {
	for _, limit := range []int{0, 1, 2, 5} {
		r := require.New(t)

		var sum atomic.Int64
		err := TryForEach(limit, par.FromSlice(nil, ints(10)), func(v int) error {
			sum.Add(int64(v))
			return nil
		})
		r.NoError(err)
		r.Equal(int64(45), sum.Load(), "limit=%d", limit)
	}
}

func TestTryForEachEmpty(t *testing.T) {
	r := require.New(t)

	for _, limit := range []int{0, 1, 2} {
		err := TryForEach(limit, par.FromSlice(nil, []int{}), func(int) error {
			t.Fatal("should not be called")
			return nil
		})
		r.NoError(err)
	}
}

func TestTryForEachConcurrencyBound(t *testing.T) {
	r := require.New(t)

	const limit = 2
	var g gauge
	err := TryForEach(limit, par.FromSlice(nil, ints(20)), func(int) error {
		g.enter()
		defer g.exit()
		time.Sleep(time.Millisecond)
		return nil
	})
	r.NoError(err)
	r.LessOrEqual(g.maxSeen.Load(), int32(limit))
	r.Positive(g.maxSeen.Load())
}
