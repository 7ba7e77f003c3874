// Package emit wraps rendered fragments in the generated Go file.
package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"strings"
	"text/template"
	"time"
	"unicode"
)

// TimeLayout is the provenance timestamp format.
const TimeLayout = "2006-01-02 15:04:05 -0700"

// Defaults for the generated declaration.
const (
	DefaultPackage  = "main"
	DefaultTypeName = "emojiRanking"
	DefaultVarName  = "emojiRankings"
)

const fileTmpl = `// Code generated by emojisnap; DO NOT EDIT.
// Data obtained from {{.Source}} at {{.Time.Format .TimeLayout}}.

package {{.Package}}
{{- if .Accessor}}

// {{.Accessor}} returns the archived snapshot of rankings from the Emojitracker API.
func {{.Accessor}}() []{{.TypeName}} {
	return {{.VarName}}
}
{{- end}}

var {{.VarName}} = []{{.TypeName}}{
{{- if .Fragments}}
{{- range .Fragments}}
	{{.}},
{{- end}}
{{end -}}
}
`

var tmpl = template.Must(template.New("rankings").Parse(fileTmpl))

// File is the input of one emission.
type File struct {
	Source    string    // URL the data came from
	Time      time.Time // retrieval time
	Fragments []string  // rendered composite literals, in order
}

// Emitter renders generated files.
type Emitter struct {
	pkg      string
	typeName string
	varName  string
	accessor string
}

// New creates an Emitter. It fails with ErrInvalidIdentifier when a name is
// not a usable Go identifier.
func New(opts ...Option) (*Emitter, error) {
	e := &Emitter{
		pkg:      DefaultPackage,
		typeName: DefaultTypeName,
		varName:  DefaultVarName,
	}
	for _, opt := range opts {
		opt(e)
	}

	names := []struct{ what, name string }{
		{"package", e.pkg},
		{"type name", e.typeName},
		{"var name", e.varName},
	}
	if e.accessor != "" {
		names = append(names, struct{ what, name string }{"accessor", e.accessor})
		if e.accessor == e.varName {
			return nil, fmt.Errorf("%w: accessor %q collides with var name", ErrInvalidIdentifier, e.accessor)
		}
	}
	for _, n := range names {
		if !isIdentifier(n.name) {
			return nil, fmt.Errorf("%w: %s %q", ErrInvalidIdentifier, n.what, n.name)
		}
	}
	return e, nil
}

func isIdentifier(name string) bool {
	return name != "_" && token.IsIdentifier(name)
}

// Render returns the gofmt-ed file. Fragments are not re-validated one by
// one; the whole file must parse or ErrInvalidSource is returned.
func (e *Emitter) Render(f File) ([]byte, error) {
	if f.Source == "" || strings.ContainsFunc(f.Source, unicode.IsControl) {
		return nil, fmt.Errorf("%w: source %q cannot appear in a line comment", ErrInvalidSource, f.Source)
	}

	data := struct {
		File
		TimeLayout string
		Package    string
		TypeName   string
		VarName    string
		Accessor   string
	}{
		File:       f,
		TimeLayout: TimeLayout,
		Package:    e.pkg,
		TypeName:   e.typeName,
		VarName:    e.varName,
		Accessor:   e.accessor,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSource, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSource, err)
	}
	return src, nil
}

// Emit renders f and writes it to w in one call. Nothing is written when
// rendering fails.
func (e *Emitter) Emit(w io.Writer, f File) error {
	src, err := e.Render(f)
	if err != nil {
		return err
	}
	if _, err := w.Write(src); err != nil {
		return fmt.Errorf("write generated file: %w", err)
	}
	return nil
}
