package output

import (
	"testing"

	"semdiff/internal/value"
)

func TestSerialize(t *testing.T) {
	tests := []struct {
		name  string
		input *value.Value
		want  string
	}{
		{
			name:  "null",
			input: value.Null(),
			want:  "null",
		},
		{
			name:  "booleans",
			input: value.Sequence(value.Bool(true), value.Bool(false)),
			want:  "[true,false]",
		},
		{
			name:  "exact integer",
			input: value.Int(-42),
			want:  "-42",
		},
		{
			name:  "float keeps shortest form",
			input: value.Float(1.5),
			want:  "1.5",
		},
		{
			name:  "whole float renders without fraction",
			input: value.Float(3),
			want:  "3",
		},
		{
			name:  "plain string",
			input: value.String("abc"),
			want:  `"abc"`,
		},
		{
			name:  "mandatory escapes only",
			input: value.String("a\"b\\c\nd"),
			want:  `"a\"b\\c\nd"`,
		},
		{
			name:  "control character",
			input: value.String("x\x01y"),
			want:  "\"x\\u0001y\"",
		},
		{
			name:  "multi-byte text verbatim",
			input: value.String("héllo 世界"),
			want:  `"héllo 世界"`,
		},
		{
			name:  "empty sequence and mapping",
			input: value.Sequence(value.Sequence(), value.Mapping(nil)),
			want:  "[[],{}]",
		},
		{
			name: "mapping keys sorted",
			input: value.Mapping(map[string]*value.Value{
				"b": value.Int(2),
				"a": value.Int(1),
				"c": value.Null(),
			}),
			want: `{"a":1,"b":2,"c":null}`,
		},
		{
			name: "nested compact form",
			input: value.Mapping(map[string]*value.Value{
				"items": value.Sequence(
					value.Mapping(map[string]*value.Value{"id": value.Int(1)}),
				),
			}),
			want: `{"items":[{"id":1}]}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Serialize(tc.input); got != tc.want {
				t.Errorf("Serialize() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{name: "integer-valued", input: 1.0, want: "1"},
		{name: "fraction", input: 1.0009, want: "1.0009"},
		{name: "negative", input: -0.5, want: "-0.5"},
		{name: "zero", input: 0, want: "0"},
		{name: "small magnitude uses exponent", input: 1e-7, want: "1e-7"},
		{name: "large magnitude uses exponent", input: 1e21, want: "1e+21"},
		{name: "boundary stays fixed", input: 1e-6, want: "0.000001"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatFloat(tc.input); got != tc.want {
				t.Errorf("FormatFloat(%v) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
