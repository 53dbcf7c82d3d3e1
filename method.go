// Copyright 2026 The Parlim Authors
// SPDX-License-Identifier: Apache-2.0

package parlim

import (
	"errors"
	"fmt"
)

// ErrUnsupportedMethod is returned by [Validate] for engine methods
// that the limiting transformation cannot express.
var ErrUnsupportedMethod = errors.New("unsupported method")

// Method names an operation of the underlying engine. The supported
// methods have a generic entry point in this package; the remaining
// values exist so that dynamic callers, selecting a method by name or
// by tag, can be rejected when they construct their call rather than
// when it runs.
type Method int

// Methods supported by the limiting transformation.
const (
	MethodForEach Method = iota
	MethodTryForEach
	MethodMap
	MethodUpdate
	MethodFilter
	MethodFilterMap
	MethodAny
	MethodAll

	// Engine methods the transformation does not support. Reductions
	// and folds would need a per-chunk combine step this layer does not
	// define, and the *Init variants keep per-worker state that
	// chunking silently redistributes across workers.
	MethodReduce
	MethodFold
	MethodZip
	MethodFindAny
	MethodFindFirst
	MethodFindLast
	MethodFlatMap
	MethodPartition
	MethodForEachInit
	MethodMapInit
)

var methodNames = map[Method]string{
	MethodForEach:     "for_each",
	MethodTryForEach:  "try_for_each",
	MethodMap:         "map",
	MethodUpdate:      "update",
	MethodFilter:      "filter",
	MethodFilterMap:   "filter_map",
	MethodAny:         "any",
	MethodAll:         "all",
	MethodReduce:      "reduce",
	MethodFold:        "fold",
	MethodZip:         "zip",
	MethodFindAny:     "find_any",
	MethodFindFirst:   "find_first",
	MethodFindLast:    "find_last",
	MethodFlatMap:     "flat_map",
	MethodPartition:   "partition",
	MethodForEachInit: "for_each_init",
	MethodMapInit:     "map_init",
}

// String returns the method's wire name.
func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}
	return fmt.Sprintf("method(%d)", int(m))
}

// Supported reports whether the method has a limited form.
func (m Method) Supported() bool {
	return m >= MethodForEach && m <= MethodAll
}

// MethodOf resolves a method by its wire name.
func MethodOf(name string) (Method, error) {
	for m, s := range methodNames {
		if s == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("parlim: unknown method %q", name)
}

// Validate returns an error wrapping [ErrUnsupportedMethod] unless the
// method has a limited form. Callers that select methods dynamically
// should validate before scheduling work; silently falling back to
// unrestricted concurrency is never acceptable.
func Validate(m Method) error {
	if !m.Supported() {
		return fmt.Errorf("parlim: %s: %w", m, ErrUnsupportedMethod)
	}
	return nil
}
