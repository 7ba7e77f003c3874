package render

// Option applies a configuration option to the Renderer.
type Option func(*Renderer)

// WithExportedFields renders Char/ID/Name/Score keys instead of
// char/id/name/score.
func WithExportedFields(exported bool) Option {
	return func(r *Renderer) {
		if exported {
			r.fields = ExportedFieldNames
		} else {
			r.fields = LowerFieldNames
		}
	}
}

// WithASCIIOnly escapes every non-ASCII rune in string literals.
func WithASCIIOnly(asciiOnly bool) Option {
	return func(r *Renderer) {
		r.asciiOnly = asciiOnly
	}
}
