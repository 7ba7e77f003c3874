package render

import "errors"

// ErrInvalidScore reports a score that is not a JSON number token and so
// cannot be emitted as a bare numeral.
var ErrInvalidScore = errors.New("invalid score")
