package value

// Symbol is an interned keyword. Symbols encode as their bare Name: the
// namespace qualifier is dropped on output.
type Symbol struct {
	Namespace string
	Name      string
}

// String returns the qualified form, ns/name or name.
func (s Symbol) String() string {
	if s.Namespace == "" {
		return s.Name
	}
	return s.Namespace + "/" + s.Name
}
