package stream

import "github.com/signadot/jsonv/value"

// State provides minimal stack/state/path management.
// Just processes events and tracks state - no tokenization, no io.Reader.
// Use this if you already have events.
type State struct {
	stack []item
}

type item struct {
	kind   kind
	path   string // path of the container
	child  string // path of the current entry or element
	n      int    // values begun in this container
	hasKey bool
}

type kind int

const (
	objKind kind = iota
	arrKind
)

// NewState creates a new State for tracking structure state.
func NewState() *State {
	return &State{}
}

func (s *State) current() *item {
	return &s.stack[len(s.stack)-1]
}

// beginValue records the start of a value in the enclosing container.
func (s *State) beginValue() error {
	if len(s.stack) == 0 {
		return nil
	}
	cur := s.current()
	switch cur.kind {
	case objKind:
		if !cur.hasKey {
			return &Error{Msg: "value without key in object at " + value.DisplayPath(cur.path)}
		}
		cur.hasKey = false
	case arrKind:
		cur.child = value.IndexPath(cur.path, cur.n)
	}
	cur.n++
	return nil
}

// ProcessEvent processes an event and updates state/path tracking.
// Call this for each event in order.
func (s *State) ProcessEvent(event *Event) error {
	switch event.Type {
	case EventBeginObject, EventBeginArray:
		if err := s.beginValue(); err != nil {
			return err
		}
		k := objKind
		if event.Type == EventBeginArray {
			k = arrKind
		}
		path := s.CurrentPath()
		s.stack = append(s.stack, item{kind: k, path: path})

	case EventEndObject:
		if len(s.stack) == 0 || s.current().kind != objKind {
			return &Error{Msg: "end of object outside object"}
		}
		if s.current().hasKey {
			return &Error{Msg: "key without value at " + value.DisplayPath(s.current().child)}
		}
		s.stack = s.stack[:len(s.stack)-1]

	case EventEndArray:
		if len(s.stack) == 0 || s.current().kind != arrKind {
			return &Error{Msg: "end of array outside array"}
		}
		s.stack = s.stack[:len(s.stack)-1]

	case EventKey:
		if len(s.stack) == 0 || s.current().kind != objKind {
			return &Error{Msg: "key " + event.Key + " not in object"}
		}
		cur := s.current()
		if cur.hasKey {
			return &Error{Msg: "key after key at " + value.DisplayPath(cur.child)}
		}
		cur.hasKey = true
		cur.child = value.FieldPath(cur.path, event.Key)

	case EventString, EventInt, EventFloat, EventBool, EventNull:
		return s.beginValue()
	}
	return nil
}

// Depth returns the current nesting depth (0 = top level).
func (s *State) Depth() int {
	return len(s.stack)
}

// CurrentPath returns the path of the most recent key or element, or of the
// innermost container before its first entry (e.g., "", "key", "key[0]").
func (s *State) CurrentPath() string {
	if len(s.stack) == 0 {
		return ""
	}
	cur := s.current()
	if cur.n == 0 && !cur.hasKey {
		return cur.path
	}
	return cur.child
}

// IsInObject returns true if currently inside an object.
func (s *State) IsInObject() bool {
	return len(s.stack) > 0 && s.current().kind == objKind
}

// IsInArray returns true if currently inside an array.
func (s *State) IsInArray() bool {
	return len(s.stack) > 0 && s.current().kind == arrKind
}

// ExpectsKey returns true if the next event must be a key or the end of the
// current object.
func (s *State) ExpectsKey() bool {
	return s.IsInObject() && !s.current().hasKey
}

// HasKey returns true if a key has been read in the current object and its
// value has not started yet.
func (s *State) HasKey() bool {
	return s.IsInObject() && s.current().hasKey
}

// Count returns the number of values begun in the current container.
func (s *State) Count() int {
	if len(s.stack) == 0 {
		return 0
	}
	return s.current().n
}

// Reset clears all state.
func (s *State) Reset() {
	s.stack = s.stack[:0]
}
