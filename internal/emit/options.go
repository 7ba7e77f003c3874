package emit

// Option applies a configuration option to the Emitter.
type Option func(*Emitter)

// WithPackage sets the package clause of the generated file.
func WithPackage(name string) Option {
	return func(e *Emitter) {
		if name != "" {
			e.pkg = name
		}
	}
}

// WithTypeName sets the element type of the generated slice.
func WithTypeName(name string) Option {
	return func(e *Emitter) {
		if name != "" {
			e.typeName = name
		}
	}
}

// WithVarName sets the name of the generated variable.
func WithVarName(name string) Option {
	return func(e *Emitter) {
		if name != "" {
			e.varName = name
		}
	}
}

// WithAccessor adds a func of the given name returning the variable.
// An empty name disables it.
func WithAccessor(name string) Option {
	return func(e *Emitter) {
		e.accessor = name
	}
}
