// Copyright 2026 The Parlim Authors
// SPDX-License-Identifier: Apache-2.0

// Package par adapts the pargo fork-join engine to typed, sized
// parallel sequences.
//
// The engine itself lives in [github.com/exascience/pargo]: it splits
// integer ranges recursively across goroutines, joins their results,
// and propagates panics to the caller. This package contributes the
// typed surface on top: an [Iter] is a parallel sequence with a length
// known before iteration, and the package-level operations ([ForEach],
// [Map], [Filter], [Any], and friends) execute with engine-native
// semantics.
//
// Engine configuration is carried by a [Pool] value that callers
// inject into sequence constructors, rather than reached for through a
// process global. [Default] returns a shared zero-configuration pool
// for callers that do not care. A pool can pace batch starts with
// [WithPace], which is useful when the per-item operation calls out to
// an external process.
package par

import (
	"context"
	"runtime/trace"

	"golang.org/x/time/rate"
)

// Pool carries engine configuration for the sequences constructed with
// it. The zero configuration defers entirely to the engine's defaults.
// Pools are immutable after construction and safe for concurrent use.
type Pool struct {
	ctx    context.Context
	pacer  *rate.Limiter
	fanout int
}

// Option configures a [Pool] under construction.
type Option func(*Pool)

// WithFanout sets the batch-count hint forwarded to the engine for
// unrestricted operations. Zero or negative values defer to the
// engine's default, which is derived from [runtime.GOMAXPROCS].
func WithFanout(n int) Option {
	if n < 0 {
		n = 0
	}
	return func(p *Pool) { p.fanout = n }
}

// WithPace installs a token-bucket limiter that paces batch and chunk
// starts to perSecond with the given burst. Pacing applies to work
// dispatched through the engine only; fully sequential fast paths are
// never paced.
func WithPace(perSecond float64, burst int) Option {
	return func(p *Pool) { p.pacer = rate.NewLimiter(rate.Limit(perSecond), burst) }
}

// WithPaceContext bounds the time a paced pool will wait for a token.
// The default is [context.Background], i.e. waits are unbounded.
func WithPaceContext(ctx context.Context) Option {
	return func(p *Pool) { p.ctx = ctx }
}

// NewPool returns a configured Pool.
func NewPool(opts ...Option) *Pool {
	p := &Pool{ctx: context.Background()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultPool = NewPool()

// Default returns the process-wide default pool. It carries no pacer
// and defers batching decisions to the engine.
func Default() *Pool { return defaultPool }

// Pace blocks until the pool's pacer permits another batch to start.
// Unpaced pools return immediately.
func (p *Pool) Pace() {
	if p == nil || p.pacer == nil {
		return
	}
	// Fast-path: there's capacity.
	if p.pacer.Allow() {
		return
	}
	defer trace.StartRegion(p.ctx, "pace wait").End()
	_ = p.pacer.Wait(p.ctx)
}

func (p *Pool) orDefault() *Pool {
	if p == nil {
		return defaultPool
	}
	return p
}
