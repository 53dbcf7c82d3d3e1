// Copyright 2026 The Parlim Authors
// SPDX-License-Identifier: Apache-2.0

// Package parlim bounds how many invocations of an operation may be in
// flight at once when the operation is applied element-wise over a
// parallel sequence.
//
// Parallel-iteration engines schedule work eagerly across every worker
// they own and provide no admission control. That is the right default
// for cheap operations, but operations that hold bounded resources —
// large allocations, file handles, calls into external processes —
// must not all run at once. Shrinking the engine's worker pool is the
// wrong fix: it throttles everything, including parallel work nested
// inside the operation itself.
//
// # Approach
//
// parlim converts a concurrency limit into a chunk count. [Subdivide]
// reshapes a sequence of N elements into ceil(N/chunkSize) contiguous
// chunks with chunkSize = ceil(N/limit), and the operations in this
// package execute chunks in parallel while walking the elements of
// each chunk strictly sequentially. At most limit chunks can be
// mid-execution at any instant, and an open chunk contributes exactly
// one open invocation — its current element — so at most limit
// invocations are ever in flight. The layer owns no threads, no
// semaphore, and no queue; the bound falls out of how the work is
// grouped.
//
// Work nested inside an operation is unconstrained and may use the
// engine's full worker pool.
//
// # Operations
//
// Eight operations are supported: [ForEach], [TryForEach], [Map],
// [Update], [Filter], [FilterMap], [Any], and [All]. Each takes the
// limit first, then the sequence, then the operation:
//
//	in := par.FromSlice(nil, work)
//	out := parlim.Map(2, in, expensive).Collect()
//
// A limit of 0 means unlimited concurrency. A limit of 1 runs
// [ForEach], [TryForEach], [Any], and [All] as plain sequential loops
// with no engine involvement at all. Output order for [Map], [Update],
// [Filter], and [FilterMap] always matches input order, whatever the
// limit and whichever chunk finishes first, and those four return a
// lazy [par.Iter] handle that later combinators can consume.
//
// [TryForEach], [Any], and [All] short-circuit: once one chunk reports
// a failure or a verdict, chunks that have not started are abandoned.
// A chunk already mid-pass always completes its own elements.
//
// Methods of the underlying engine that this package cannot limit
// (reductions, folds, zips, the find family, and thread-local
// initialized variants) have no entry point here; dynamic callers can
// reject them ahead of time with [Validate].
//
// # Collaborators
//
// The sequence and pool types live in [parlim.dev/parlim/par], a typed
// facade over the pargo fork-join engine. Callers that want several
// chunks writing into disjoint regions of one pre-allocated buffer can
// use [parlim.dev/parlim/split], which documents — but cannot enforce —
// the disjointness contract.
package parlim
