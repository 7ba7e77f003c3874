// Package decoder turns a rankings response body into ordered model.Ranking
// values, validating the schema at the boundary.
//
// The expected document is a JSON array of objects, each with string fields
// "char", "id", "name" and a numeric field "score". Extra fields are ignored.
// Decoding is all-or-nothing.
package decoder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/okian/emojisnap/internal/domain/model"
)

// JSON value kinds as reported in error messages.
const (
	kindObject  = "object"
	kindArray   = "array"
	kindString  = "string"
	kindNumber  = "number"
	kindBoolean = "boolean"
	kindNull    = "null"
	kindEmpty   = "empty"
	kindInvalid = "invalid"
)

// Decode parses body. Every error wraps ErrMalformedResponse.
func Decode(body []byte) ([]model.Ranking, error) {
	dec := json.NewDecoder(bytes.NewReader(body))

	if k := kindOf(body); k != kindArray {
		return nil, docError("top-level value is %s, want array", k)
	}
	if _, err := dec.Token(); err != nil { // '['
		return nil, docError("%v", err)
	}

	rankings := make([]model.Ranking, 0)
	for i := 0; dec.More(); i++ {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, &MalformedError{Index: i, Reason: err.Error()}
		}
		r, err := decodeElement(i, raw)
		if err != nil {
			return nil, err
		}
		rankings = append(rankings, r)
	}

	if _, err := dec.Token(); err != nil { // ']'
		return nil, docError("%v", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, docError("unexpected data after array")
	}
	return rankings, nil
}

func docError(format string, args ...any) error {
	return &MalformedError{Index: -1, Reason: fmt.Sprintf(format, args...)}
}

func decodeElement(i int, raw json.RawMessage) (model.Ranking, error) {
	var r model.Ranking
	if k := kindOf(raw); k != kindObject {
		return r, &MalformedError{Index: i, Reason: fmt.Sprintf("element is %s, want object", k)}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return r, &MalformedError{Index: i, Reason: err.Error()}
	}

	// read id first so later errors can name the element
	if v, ok := fields["id"]; ok && kindOf(v) == kindString {
		_ = json.Unmarshal(v, &r.ID)
	}

	el := element{index: i, id: r.ID, fields: fields}
	if err := el.text("char", &r.Char); err != nil {
		return r, err
	}
	if err := el.text("id", &r.ID); err != nil {
		return r, err
	}
	if err := el.text("name", &r.Name); err != nil {
		return r, err
	}
	if err := el.number("score", &r.Score); err != nil {
		return r, err
	}
	return r, nil
}

type element struct {
	index  int
	id     string
	fields map[string]json.RawMessage
}

func (e element) fail(field, format string, args ...any) error {
	return &MalformedError{Index: e.index, ID: e.id, Field: field, Reason: fmt.Sprintf(format, args...)}
}

func (e element) lookup(field, want string) (json.RawMessage, error) {
	v, ok := e.fields[field]
	if !ok {
		return nil, e.fail(field, "missing")
	}
	if k := kindOf(v); k != want {
		return nil, e.fail(field, "is %s, want %s", k, want)
	}
	return v, nil
}

func (e element) text(field string, dst *string) error {
	v, err := e.lookup(field, kindString)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(v, dst); err != nil {
		return e.fail(field, "%v", err)
	}
	return nil
}

func (e element) number(field string, dst *json.Number) error {
	v, err := e.lookup(field, kindNumber)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(v, dst); err != nil {
		return e.fail(field, "%v", err)
	}
	return nil
}

// kindOf classifies raw by its first significant byte. raw is assumed to be
// syntactically valid JSON; full validation happens during decoding.
func kindOf(raw []byte) string {
	raw = bytes.TrimLeft(raw, " \t\r\n")
	if len(raw) == 0 {
		return kindEmpty
	}
	switch c := raw[0]; {
	case c == '{':
		return kindObject
	case c == '[':
		return kindArray
	case c == '"':
		return kindString
	case c == '-' || (c >= '0' && c <= '9'):
		return kindNumber
	case c == 't' || c == 'f':
		return kindBoolean
	case c == 'n':
		return kindNull
	default:
		return kindInvalid
	}
}
