package decoder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedResponse is wrapped by every decoding failure.
var ErrMalformedResponse = errors.New("malformed response")

// MalformedError describes where a response stopped matching the schema.
// Index is -1 for problems with the document as a whole.
type MalformedError struct {
	Index  int
	ID     string // id of the offending element when it was readable
	Field  string
	Reason string
}

func (e *MalformedError) Error() string {
	var b strings.Builder
	b.WriteString(ErrMalformedResponse.Error())
	if e.Index >= 0 {
		fmt.Fprintf(&b, ": element %d", e.Index)
		if e.ID != "" {
			fmt.Fprintf(&b, " (id %q)", e.ID)
		}
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ": field %q", e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	return b.String()
}

func (e *MalformedError) Unwrap() error { return ErrMalformedResponse }
