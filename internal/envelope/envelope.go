// Package envelope provides the standardized response wrapper for JSON
// output. Every JSON report is wrapped in a consistent envelope carrying
// schema version, run metadata, and non-fatal warnings.
package envelope

// Meta holds response metadata for one comparison run.
type Meta struct {
	DurationMs     int64    `json:"durationMs"`
	Tolerance      float64  `json:"tolerance"`
	Ignored        []string `json:"ignored,omitempty"`
	ExpectedDigest string   `json:"expectedDigest,omitempty"`
	ActualDigest   string   `json:"actualDigest,omitempty"`
	RunDigest      string   `json:"runDigest,omitempty"`
	RunID          string   `json:"runId,omitempty"`
}

// Warning represents a non-fatal issue.
type Warning struct {
	Code    string `json:"code,omitempty"` // machine-readable code
	Message string `json:"message"`        // human-readable message
}

// Response is the standard envelope for JSON output.
type Response struct {
	SchemaVersion string      `json:"schemaVersion"`
	Data          interface{} `json:"data"`
	Meta          *Meta       `json:"meta,omitempty"`
	Warnings      []Warning   `json:"warnings,omitempty"`
	Error         *string     `json:"error,omitempty"`
}

// CurrentSchemaVersion is the current envelope schema version.
const CurrentSchemaVersion = "1.0"

// New wraps data in an envelope at the current schema version.
func New(data interface{}) *Response {
	return &Response{
		SchemaVersion: CurrentSchemaVersion,
		Data:          data,
	}
}

// WithMeta attaches run metadata.
func (r *Response) WithMeta(meta *Meta) *Response {
	r.Meta = meta
	return r
}

// AddWarning appends a non-fatal warning.
func (r *Response) AddWarning(code, message string) *Response {
	r.Warnings = append(r.Warnings, Warning{Code: code, Message: message})
	return r
}
