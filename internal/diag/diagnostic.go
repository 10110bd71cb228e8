package diag

import (
	"quill/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one recoverable finding. Primary is the span of the token
// that was being produced when the problem was detected.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// String renders the plain message form, e.g. "ERROR: invalid i64: 99…".
func (d Diagnostic) String() string {
	return d.Severity.String() + ": " + d.Message
}
