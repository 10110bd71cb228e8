package symbols

import "quill/internal/value"

// Variable is a bound variable declaration. Identity is Name within the
// Scope that declared it. Variables are created once by the binder and never
// mutated afterwards.
type Variable struct {
	Name     string
	ReadOnly bool
	Kind     value.Kind
}

// NewVariable returns a variable symbol.
func NewVariable(name string, readOnly bool, kind value.Kind) *Variable {
	return &Variable{Name: name, ReadOnly: readOnly, Kind: kind}
}

func (v *Variable) String() string {
	if v == nil {
		return "<nil>"
	}
	mode := "var"
	if v.ReadOnly {
		mode = "let"
	}
	return mode + " " + v.Name + ": " + v.Kind.String()
}
