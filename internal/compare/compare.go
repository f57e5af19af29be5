// Package compare implements the semantic comparison engine: a depth-first
// walk over two document trees that reports the first point of divergence,
// or nothing when the documents are equivalent under the configured
// normalization rules.
//
// The walk applies, in precedence order: suppression, kind classification,
// per-line trailing-whitespace string normalization, numeric tolerance,
// lexicographic mapping traversal, and positional or multiset sequence
// semantics. Sequences reached through a mapping key named "items" or
// "entries" compare as multisets; every other sequence compares by
// position. A root-level sequence has no parent key and is always
// positional.
package compare

import (
	"math"

	"semdiff/internal/pointer"
	"semdiff/internal/value"
)

// Options configure one comparison run. The zero value means exact numeric
// equality and no suppression.
type Options struct {
	// Tolerance is the maximum absolute difference under which two
	// numbers still compare equal. Must be non-negative.
	Tolerance float64

	// Suppress holds addresses whose subtrees are invisible to
	// divergence reporting.
	Suppress pointer.Set
}

// Divergence records the first point at which two documents differ.
// Expected and Actual hold the original values at that address; an absent
// member or element is represented as null.
type Divergence struct {
	Pointer  string
	Expected *value.Value
	Actual   *value.Value
}

// FirstDivergence walks expected and actual together from the document root
// and returns the first divergence in traversal order, or nil when the
// documents are semantically equal.
func FirstDivergence(expected, actual *value.Value, opts Options) *Divergence {
	return firstDivergence(expected, actual, pointer.Root, false, opts)
}

// multisetKey reports whether a sequence reached through this mapping key
// compares as a multiset.
func multisetKey(key string) bool {
	return key == "items" || key == "entries"
}

func firstDivergence(expected, actual *value.Value, addr string, multiset bool, opts Options) *Divergence {
	if opts.Suppress.IsSuppressed(addr) {
		return nil
	}

	ek, ak := expected.Kind(), actual.Kind()

	// Same-kind strings and numbers get normalized comparison; everything
	// else with matching kinds recurses or compares identity below. Any
	// kind mismatch is a divergence at this address.
	if ek != ak {
		return &Divergence{Pointer: addr, Expected: expected, Actual: actual}
	}

	switch ek {
	case value.KindNull:
		return nil
	case value.KindBool:
		if expected.AsBool() != actual.AsBool() {
			return &Divergence{Pointer: addr, Expected: expected, Actual: actual}
		}
		return nil
	case value.KindString:
		if normalizeString(expected.AsString()) != normalizeString(actual.AsString()) {
			return &Divergence{Pointer: addr, Expected: expected, Actual: actual}
		}
		return nil
	case value.KindNumber:
		if math.Abs(expected.AsFloat()-actual.AsFloat()) > opts.Tolerance {
			return &Divergence{Pointer: addr, Expected: expected, Actual: actual}
		}
		return nil
	case value.KindMapping:
		return mappingDivergence(expected, actual, addr, opts)
	case value.KindSequence:
		if multiset {
			return multisetDivergence(expected, actual, addr, opts)
		}
		return sequenceDivergence(expected, actual, addr, opts)
	default:
		return &Divergence{Pointer: addr, Expected: expected, Actual: actual}
	}
}

// mappingDivergence walks expected's keys first, then reports actual's
// extra keys, both in ascending codepoint order. The first divergence found
// wins; later keys are never inspected.
func mappingDivergence(expected, actual *value.Value, addr string, opts Options) *Divergence {
	for _, k := range expected.Keys() {
		child := pointer.Child(addr, k)
		ev, _ := expected.Member(k)
		av, ok := actual.Member(k)
		if !ok {
			if opts.Suppress.IsSuppressed(child) {
				continue
			}
			// Absence is not null-equivalence: a member present with a
			// null value still diverges from a missing member.
			return &Divergence{Pointer: child, Expected: ev, Actual: value.Null()}
		}
		if d := firstDivergence(ev, av, child, multisetKey(k), opts); d != nil {
			return d
		}
	}

	for _, k := range actual.Keys() {
		if _, ok := expected.Member(k); ok {
			continue
		}
		child := pointer.Child(addr, k)
		if opts.Suppress.IsSuppressed(child) {
			continue
		}
		av, _ := actual.Member(k)
		return &Divergence{Pointer: child, Expected: value.Null(), Actual: av}
	}

	return nil
}

// sequenceDivergence compares element by element over the shared prefix,
// then reports a length mismatch at the first index only one side has.
func sequenceDivergence(expected, actual *value.Value, addr string, opts Options) *Divergence {
	n := expected.Len()
	if actual.Len() < n {
		n = actual.Len()
	}

	for i := 0; i < n; i++ {
		if d := firstDivergence(expected.Elem(i), actual.Elem(i), pointer.Index(addr, i), false, opts); d != nil {
			return d
		}
	}

	if expected.Len() == actual.Len() {
		return nil
	}

	child := pointer.Index(addr, n)
	if opts.Suppress.IsSuppressed(child) {
		return nil
	}
	ev, av := value.Null(), value.Null()
	if n < expected.Len() {
		ev = expected.Elem(n)
	}
	if n < actual.Len() {
		av = actual.Elem(n)
	}
	return &Divergence{Pointer: child, Expected: ev, Actual: av}
}

// multisetDivergence compares two sequences as multisets of canonical
// tokens: duplicates counted, order ignored. A count mismatch is reported
// at the sequence's own address with the original sequences.
func multisetDivergence(expected, actual *value.Value, addr string, opts Options) *Divergence {
	ec := tokenCounts(expected, addr, opts)
	ac := tokenCounts(actual, addr, opts)

	if len(ec) != len(ac) {
		return &Divergence{Pointer: addr, Expected: expected, Actual: actual}
	}
	for tok, n := range ec {
		if ac[tok] != n {
			return &Divergence{Pointer: addr, Expected: expected, Actual: actual}
		}
	}
	return nil
}
