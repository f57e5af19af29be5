package output

import (
	"math"
	"strconv"
)

// FormatFloat formats a floating value the way encoding/json does: shortest
// round-trip representation, fixed notation for ordinary magnitudes and
// exponent notation outside [1e-6, 1e21). Keeping the encoding/json shape
// means serialized reports stay byte-compatible with standard JSON output.
func FormatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		// Not representable in JSON; decoders never produce these from
		// JSON input, but YAML can. Render the strconv form rather than
		// failing a report.
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}

	out := strconv.FormatFloat(f, format, -1, 64)
	if format == 'e' {
		// Trim the two-digit exponent strconv emits: "1e-07" not "1e-7".
		n := len(out)
		if n >= 4 && out[n-4] == 'e' && out[n-3] == '-' && out[n-2] == '0' {
			out = out[:n-2] + out[n-1:]
		}
	}
	return out
}
