// Copyright 2026 The Parlim Authors
// SPDX-License-Identifier: Apache-2.0

package parlim

import "parlim.dev/parlim/par"

// ForEach applies op to every element of the sequence with at most
// limit invocations in flight at any instant. A limit of zero hands op
// to the engine's unrestricted parallel form; a limit of one runs a
// plain sequential pass with no engine involvement. ForEach returns
// once every invocation has completed.
func ForEach[T any](limit int, it *par.Iter[T], op func(T)) {
	checkLimit(limit)
	switch limit {
	case 0:
		par.ForEach(it, op)
	case 1:
		for _, v := range it.Collect() {
			op(v)
		}
	default:
		par.ForEach(Subdivide(limit, it), func(chunk []T) {
			for _, v := range chunk {
				op(v)
			}
		})
	}
}

// TryForEach applies op to every element with at most limit
// invocations in flight and returns the first non-nil error op
// produced. The failing chunk abandons its remaining elements, and
// chunks that have not started are abandoned too; chunks already
// mid-pass complete their own elements. The error is returned
// verbatim, never wrapped.
func TryForEach[T any](limit int, it *par.Iter[T], op func(T) error) error {
	checkLimit(limit)
	switch limit {
	case 0:
		return par.TryForEach(it, op)
	case 1:
		for _, v := range it.Collect() {
			if err := op(v); err != nil {
				return err
			}
		}
		return nil
	default:
		return par.TryForEach(Subdivide(limit, it), func(chunk []T) error {
			for _, v := range chunk {
				if err := op(v); err != nil {
					return err
				}
			}
			return nil
		})
	}
}
