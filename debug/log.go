package debug

import (
	"fmt"
	"io"
	"os"
	"reflect"

	json "github.com/goccy/go-json"
)

var out io.Writer = os.Stderr

// Logf writes a trace line to stderr. Map, slice and array arguments are
// rendered as indented JSON; other arguments are formatted with their verbs
// as usual, so *value.Node prints in its compact form.
func Logf(msg string, args ...any) {
	for i, a := range args {
		if !isContainer(a) {
			continue
		}
		d, err := json.MarshalIndent(a, "   |", "  ")
		if err != nil {
			continue
		}
		args[i] = string(d)
	}
	fmt.Fprintf(out, msg, args...)
}

func isContainer(a any) bool {
	if _, ok := a.([]byte); ok {
		return false
	}
	switch reflect.ValueOf(a).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return true
	}
	return false
}
