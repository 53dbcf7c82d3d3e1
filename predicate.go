// Copyright 2026 The Parlim Authors
// SPDX-License-Identifier: Apache-2.0

package parlim

import "parlim.dev/parlim/par"

// Any reports whether op is true for at least one element, with at
// most limit invocations of op in flight. A chunk returns as soon as
// it finds a match, and sibling chunks that have not started are then
// abandoned. An empty sequence reports false.
func Any[T any](limit int, it *par.Iter[T], op func(T) bool) bool {
	checkLimit(limit)
	switch limit {
	case 0:
		return par.Any(it, op)
	case 1:
		for _, v := range it.Collect() {
			if op(v) {
				return true
			}
		}
		return false
	default:
		return par.Any(Subdivide(limit, it), func(chunk []T) bool {
			for _, v := range chunk {
				if op(v) {
					return true
				}
			}
			return false
		})
	}
}

// All reports whether op is true for every element, with at most limit
// invocations of op in flight. A chunk returns as soon as it finds a
// counterexample, and sibling chunks that have not started are then
// abandoned. An empty sequence reports true.
func All[T any](limit int, it *par.Iter[T], op func(T) bool) bool {
	checkLimit(limit)
	switch limit {
	case 0:
		return par.All(it, op)
	case 1:
		for _, v := range it.Collect() {
			if !op(v) {
				return false
			}
		}
		return true
	default:
		return par.All(Subdivide(limit, it), func(chunk []T) bool {
			for _, v := range chunk {
				if !op(v) {
					return false
				}
			}
			return true
		})
	}
}
