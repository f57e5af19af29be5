package compare

import (
	"sort"
	"strings"

	"semdiff/internal/output"
	"semdiff/internal/pointer"
	"semdiff/internal/value"
)

// normalizeString strips trailing spaces and tabs from every line. Leading
// and internal whitespace stays significant.
func normalizeString(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// canonicalize normalizes a value for multiset comparison: suppressed
// subtrees collapse to null, strings lose per-line trailing whitespace,
// mappings and sequences normalize recursively. A sequence reached via a
// multiset-eligible mapping key collapses further, to the sorted list of
// its elements' serialized tokens, so inner element order cannot leak into
// the outer tokens. The result is only ever serialized into a token; it
// never reaches the reported divergence.
func canonicalize(v *value.Value, addr string, multiset bool, opts Options) *value.Value {
	if opts.Suppress.IsSuppressed(addr) {
		return value.Null()
	}

	switch v.Kind() {
	case value.KindString:
		return value.String(normalizeString(v.AsString()))
	case value.KindSequence:
		elems := make([]*value.Value, v.Len())
		for i, e := range v.Elems() {
			elems[i] = canonicalize(e, pointer.Index(addr, i), false, opts)
		}
		if multiset {
			toks := make([]string, len(elems))
			for i, e := range elems {
				toks[i] = output.Serialize(e)
			}
			sort.Strings(toks)
			sorted := make([]*value.Value, len(toks))
			for i, tok := range toks {
				sorted[i] = value.String(tok)
			}
			return value.Sequence(sorted...)
		}
		return value.Sequence(elems...)
	case value.KindMapping:
		members := make(map[string]*value.Value, v.Len())
		for _, k := range v.Keys() {
			m, _ := v.Member(k)
			members[k] = canonicalize(m, pointer.Child(addr, k), multisetKey(k), opts)
		}
		return value.Mapping(members)
	default:
		return v
	}
}

// tokenCounts builds the canonical multiset representation of a sequence:
// each element canonicalized at its own address, serialized into a stable
// token, and counted. Equal elements at different positions collapse to
// the same token.
func tokenCounts(seq *value.Value, addr string, opts Options) map[string]int {
	counts := make(map[string]int, seq.Len())
	for i, e := range seq.Elems() {
		tok := output.Serialize(canonicalize(e, pointer.Index(addr, i), false, opts))
		counts[tok]++
	}
	return counts
}
