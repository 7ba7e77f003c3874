// Package render maps rankings to Go composite-literal fragments.
//
// A fragment looks like
//
//	{char: "😀", id: "grinning_face", name: "Grinning Face", score: 1523.4}
//
// Keys always appear in the order char, id, name, score. Text values go
// through Quote; the score token is copied verbatim.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/okian/emojisnap/internal/domain/model"
	"github.com/samber/lo"
)

// FieldNames holds the struct field keys used in fragments.
type FieldNames struct {
	Char, ID, Name, Score string
}

// Field key sets.
var (
	LowerFieldNames    = FieldNames{Char: "char", ID: "id", Name: "name", Score: "score"}
	ExportedFieldNames = FieldNames{Char: "Char", ID: "ID", Name: "Name", Score: "Score"}
)

// Renderer produces fragments. It is pure and safe for concurrent use.
type Renderer struct {
	fields    FieldNames
	asciiOnly bool
}

// New creates a Renderer with lowercase keys and readable Unicode.
func New(opts ...Option) *Renderer {
	r := &Renderer{fields: LowerFieldNames}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Fields returns the key set in use.
func (r *Renderer) Fields() FieldNames { return r.fields }

// Quote escapes s according to the renderer's mode.
func (r *Renderer) Quote(s string) string {
	if r.asciiOnly {
		return QuoteASCII(s)
	}
	return Quote(s)
}

// Fragment renders a single ranking.
func (r *Renderer) Fragment(rk model.Ranking) (string, error) {
	if !ValidScore(rk.Score) {
		return "", fmt.Errorf("%w: %q for id %q", ErrInvalidScore, rk.Score, rk.ID)
	}
	return r.fragment(rk), nil
}

// Fragments renders rankings in order, one fragment per ranking. Nothing is
// rendered if any score is invalid.
func (r *Renderer) Fragments(rankings []model.Ranking) ([]string, error) {
	if bad, i, found := lo.FindIndexOf(rankings, func(rk model.Ranking) bool {
		return !ValidScore(rk.Score)
	}); found {
		return nil, fmt.Errorf("%w: element %d: %q for id %q", ErrInvalidScore, i, bad.Score, bad.ID)
	}
	return lo.Map(rankings, func(rk model.Ranking, _ int) string {
		return r.fragment(rk)
	}), nil
}

func (r *Renderer) fragment(rk model.Ranking) string {
	var b strings.Builder
	b.WriteByte('{')
	b.WriteString(r.fields.Char)
	b.WriteString(": ")
	b.WriteString(r.Quote(rk.Char))
	b.WriteString(", ")
	b.WriteString(r.fields.ID)
	b.WriteString(": ")
	b.WriteString(r.Quote(rk.ID))
	b.WriteString(", ")
	b.WriteString(r.fields.Name)
	b.WriteString(": ")
	b.WriteString(r.Quote(rk.Name))
	b.WriteString(", ")
	b.WriteString(r.fields.Score)
	b.WriteString(": ")
	b.WriteString(rk.Score.String())
	b.WriteByte('}')
	return b.String()
}

// ValidScore reports whether n is a single JSON number token. Every such
// token is also a valid Go numeric literal (with a leading unary minus).
func ValidScore(n json.Number) bool {
	s := n.String()
	if s == "" {
		return false
	}
	if c := s[0]; c != '-' && (c < '0' || c > '9') {
		return false
	}
	return json.Valid([]byte(s))
}
