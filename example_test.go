// Copyright 2026 The Parlim Authors
// SPDX-License-Identifier: Apache-2.0

package parlim_test

import (
	"errors"
	"fmt"

	"parlim.dev/parlim"
	"parlim.dev/parlim/par"
)

func ExampleMap() {
	// Each invocation holds a large scratch buffer, so at most two may
	// be open at once; the surrounding iteration still uses the whole
	// worker pool.
	op := func(v int) int {
		scratch := make([]int, 1<<16)
		for i := range scratch {
			scratch[i] = v
		}
		return scratch[len(scratch)-1] * 2
	}

	out := parlim.Map(2, par.Range(nil, 0, 5), op).Collect()
	fmt.Println(out)

	// Output:
	// [0 2 4 6 8]
}

func ExampleSubdivide() {
	chunks := parlim.Subdivide(3, par.Range(nil, 0, 8))
	for _, c := range chunks.Collect() {
		fmt.Println(c)
	}

	// Output:
	// [0 1 2]
	// [3 4 5]
	// [6 7]
}

func ExampleTryForEach() {
	errTooBig := errors.New("too big")

	err := parlim.TryForEach(2, par.Range(nil, 0, 100), func(v int) error {
		if v >= 90 {
			return errTooBig
		}
		return nil
	})
	fmt.Println(err)

	// Output:
	// too big
}

func ExampleAny() {
	in := par.FromSlice(nil, []string{"alpha", "bravo", "charlie"})
	found := parlim.Any(2, in, func(s string) bool {
		return len(s) > 5
	})
	fmt.Println(found)

	// Output:
	// true
}

func ExampleValidate() {
	m, _ := parlim.MethodOf("reduce")
	if err := parlim.Validate(m); err != nil {
		fmt.Println(err)
	}

	// Output:
	// parlim: reduce: unsupported method
}
