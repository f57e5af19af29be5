package compare

import (
	"strings"

	"semdiff/internal/output"
	"semdiff/internal/value"
)

// Result is the outcome of one comparison, shaped for report rendering.
type Result struct {
	Equal      bool    `json:"equal"`
	Divergence *Report `json:"divergence,omitempty"`
}

// Report is the serialized form of a divergence.
type Report struct {
	Pointer  string `json:"pointer"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

// Run compares two documents and packages the outcome for reporting.
func Run(expected, actual *value.Value, opts Options) Result {
	d := FirstDivergence(expected, actual, opts)
	if d == nil {
		return Result{Equal: true}
	}
	return Result{
		Divergence: &Report{
			Pointer:  d.Pointer,
			Expected: output.Serialize(d.Expected),
			Actual:   output.Serialize(d.Actual),
		},
	}
}

// RenderText produces the line-oriented report consumed by callers: a
// single "EQUAL" line on equality, otherwise "NOT_EQUAL" followed by the
// first-diff address and both serialized values.
func (r Result) RenderText() string {
	if r.Equal {
		return "EQUAL\n"
	}
	var b strings.Builder
	b.WriteString("NOT_EQUAL\n")
	b.WriteString("FIRST_DIFF " + r.Divergence.Pointer + "\n")
	b.WriteString("EXPECTED " + r.Divergence.Expected + "\n")
	b.WriteString("ACTUAL " + r.Divergence.Actual + "\n")
	return b.String()
}
