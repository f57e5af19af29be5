package compare

import (
	"testing"

	"semdiff/internal/output"
	"semdiff/internal/pointer"
	"semdiff/internal/value"
)

func TestNormalizeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "trailing spaces stripped per line",
			input: "a \nb  \n",
			want:  "a\nb\n",
		},
		{
			name:  "trailing tabs stripped",
			input: "a\t\t\nb",
			want:  "a\nb",
		},
		{
			name:  "leading whitespace untouched",
			input: "  a\n\tb",
			want:  "  a\n\tb",
		},
		{
			name:  "internal whitespace untouched",
			input: "a  b",
			want:  "a  b",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace-only line collapses",
			input: "a\n   \nb",
			want:  "a\n\nb",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeString(tc.input); got != tc.want {
				t.Errorf("normalizeString(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestCanonicalizeSuppressedSubtree(t *testing.T) {
	opts := Options{Suppress: pointer.NewSet([]string{"/a"})}
	v := value.Mapping(map[string]*value.Value{
		"a": value.String("secret"),
		"b": value.String("kept "),
	})

	got := canonicalize(v, pointer.Root, false, opts)

	a, _ := got.Member("a")
	if !a.IsNull() {
		t.Errorf("suppressed member canonicalized to %v, want null", a.Kind())
	}
	b, _ := got.Member("b")
	if b.AsString() != "kept" {
		t.Errorf("member b = %q, want %q", b.AsString(), "kept")
	}
}

func TestTokenCounts(t *testing.T) {
	seq := value.Sequence(
		value.Int(1),
		value.Int(1),
		value.String("x"),
	)

	counts := tokenCounts(seq, "/items", Options{})

	if counts["1"] != 2 {
		t.Errorf(`counts["1"] = %d, want 2`, counts["1"])
	}
	if counts[`"x"`] != 1 {
		t.Errorf(`counts["\"x\""] = %d, want 1`, counts[`"x"`])
	}
	if len(counts) != 2 {
		t.Errorf("len(counts) = %d, want 2", len(counts))
	}
}

func TestCanonicalizeNestedMultisetSequence(t *testing.T) {
	// An element holding an "entries" sequence must canonicalize to the
	// same token regardless of inner order.
	first := value.Mapping(map[string]*value.Value{
		"entries": value.Sequence(value.Int(1), value.Int(2)),
	})
	second := value.Mapping(map[string]*value.Value{
		"entries": value.Sequence(value.Int(2), value.Int(1)),
	})

	a := output.Serialize(canonicalize(first, "/items/0", false, Options{}))
	b := output.Serialize(canonicalize(second, "/items/1", false, Options{}))
	if a != b {
		t.Errorf("canonical tokens differ: %s vs %s", a, b)
	}
	if want := `{"entries":["1","2"]}`; a != want {
		t.Errorf("canonical token = %s, want %s", a, want)
	}
}

func TestTokenCountsCollapseEqualMappings(t *testing.T) {
	// The same mapping with different key insertion order must produce
	// one token.
	first := value.Mapping(map[string]*value.Value{
		"id":   value.Int(1),
		"name": value.String("a"),
	})
	second := value.Mapping(map[string]*value.Value{
		"name": value.String("a"),
		"id":   value.Int(1),
	})

	counts := tokenCounts(value.Sequence(first, second), "/items", Options{})

	if len(counts) != 1 {
		t.Fatalf("len(counts) = %d, want 1", len(counts))
	}
	for tok, n := range counts {
		if n != 2 {
			t.Errorf("count for %s = %d, want 2", tok, n)
		}
	}
}
