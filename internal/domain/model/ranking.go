// Package model contains domain models passed between pipeline stages.
package model

import "encoding/json"

// Ranking is one emoji's popularity entry as served by the rankings API.
// Field order matches the order fields are rendered in.
type Ranking struct {
	Char  string      `json:"char"`  // emoji glyph, may be several code points
	ID    string      `json:"id"`    // stable slug, untrusted
	Name  string      `json:"name"`  // display label, free text
	Score json.Number `json:"score"` // opaque number, emitted verbatim
}

// ScoreFloat returns the score as a float64 for consumers that need
// arithmetic. Rendering never goes through this conversion.
func (r Ranking) ScoreFloat() (float64, error) {
	return r.Score.Float64()
}
