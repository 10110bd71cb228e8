package symbols

// Scope maps names to variables for one lexical level. Lookups fall back to
// the parent chain; declarations only ever touch the receiver.
type Scope struct {
	parent *Scope
	byName map[string]*Variable
	order  []*Variable
}

// NewScope creates a scope nested in parent (nil for the global scope).
func NewScope(parent *Scope) *Scope {
	return &Scope{
		parent: parent,
		byName: make(map[string]*Variable),
	}
}

// Parent returns the enclosing scope or nil.
func (s *Scope) Parent() *Scope { return s.parent }

// Declare adds v to this scope. It returns false when the name is already
// declared at this level (shadowing a parent's name is allowed).
func (s *Scope) Declare(v *Variable) bool {
	if v == nil {
		return false
	}
	if _, exists := s.byName[v.Name]; exists {
		return false
	}
	s.byName[v.Name] = v
	s.order = append(s.order, v)
	return true
}

// Lookup ищет имя в текущей области, затем в родительских.
func (s *Scope) Lookup(name string) (*Variable, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if v, ok := sc.byName[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Variables returns the variables declared directly in this scope, in
// declaration order. The slice must not be modified.
func (s *Scope) Variables() []*Variable {
	return s.order
}
