package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/expr-lang/expr"

	"github.com/signadot/jsonv/codec"
	"github.com/signadot/jsonv/value"
)

func mustParse(t *testing.T, s string) *value.Node {
	t.Helper()
	node, err := codec.Unmarshal([]byte(s))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return node
}

func TestSortKeys(t *testing.T) {
	node := mustParse(t, `{"b":[{"z":1,"a":2}],"a":null}`)
	got := codec.MustMarshal(sortKeys(node))
	expected := `{"a":null,"b":[{"a":2,"z":1}]}`
	if got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
	if codec.MustMarshal(node) != `{"b":[{"z":1,"a":2}],"a":null}` {
		t.Errorf("sortKeys modified its input")
	}
}

func TestWriteLineDiff(t *testing.T) {
	a := "{\n  \"a\": 1,\n  \"b\": 2\n}\n"
	b := "{\n  \"a\": 1,\n  \"b\": 3\n}\n"
	buf := &bytes.Buffer{}
	differs, err := writeLineDiff(buf, a, b, 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !differs {
		t.Fatalf("expected a difference")
	}
	expected := " {\n   \"a\": 1,\n-  \"b\": 2\n+  \"b\": 3\n }\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}

	buf.Reset()
	differs, err = writeLineDiff(buf, a, a, 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if differs || buf.Len() != 0 {
		t.Errorf("expected no difference, got %q", buf.String())
	}
}

func TestWriteLineDiffContext(t *testing.T) {
	a := "1\n2\n3\n4\n5\n6\n"
	b := "1\n2\n3\n4\n5\nsix\n"
	buf := &bytes.Buffer{}
	if _, err := writeLineDiff(buf, a, b, 1, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := " 5\n-6\n+six\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestQuery(t *testing.T) {
	doc := mustParse(t, `{"items":[{"name":"x","n":1},{"name":"y","n":2}],"ok":true}`)
	tests := []struct {
		query    string
		expected string
	}{
		{`items[1].name`, `"y"`},
		{`doc.ok`, `true`},
		{`len(items)`, `2`},
		{`map(items, .name)`, `["x","y"]`},
		{`filter(items, .n > 1)`, `[{"n":2,"name":"y"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			program, err := expr.Compile(tt.query)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			res, err := query1(program, doc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := codec.MustMarshal(res); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}

	program, err := expr.Compile(`doc.missing`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := query1(program, doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != nil {
		t.Errorf("expected no result, got %v", res)
	}
}

func TestPatcher(t *testing.T) {
	doc := mustParse(t, `{"a":1,"b":[1,2],"big":123456789012345678901234567890}`)
	apply, err := patcher([]byte(`[{"op":"replace","path":"/a","value":"x"},{"op":"add","path":"/b/-","value":3}]`), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := apply(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := mustParse(t, `{"a":"x","b":[1,2,3],"big":123456789012345678901234567890}`)
	if !value.Equal(sortKeys(res), sortKeys(expected)) {
		t.Errorf("expected %v, got %v", expected, res)
	}

	merge, err := patcher([]byte(`{"a":null,"c":{"d":true}}`), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err = merge(mustParse(t, `{"a":1,"b":2}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected = mustParse(t, `{"b":2,"c":{"d":true}}`)
	if !value.Equal(sortKeys(res), sortKeys(expected)) {
		t.Errorf("expected %v, got %v", expected, res)
	}

	if _, err := patcher([]byte(`{"op":`), false); err == nil {
		t.Errorf("expected error for a malformed patch")
	}
	if _, err := patcher([]byte(`{"op":`), true); err == nil {
		t.Errorf("expected error for a malformed merge patch")
	}
}

func TestYAMLDocs(t *testing.T) {
	docs, err := yamlDocs([]byte("z: 1\na:\n  - x\n  - 2.5\n  - null\n---\n- true\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if got := codec.MustMarshal(docs[0]); got != `{"z":1,"a":["x",2.5,null]}` {
		t.Errorf("unexpected first document %s", got)
	}
	if got := codec.MustMarshal(docs[1]); got != `[true]` {
		t.Errorf("unexpected second document %s", got)
	}
	if _, err := yamlDocs([]byte("a: [")); err == nil {
		t.Errorf("expected error for invalid yaml")
	}
}

func TestEncodeDocs(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "jv.yaml")
	if err := os.WriteFile(cfgPath, []byte("profiles:\n  wide:\n    indent: 4\n  crlf:\n    line-break: \"\\r\\n\"\n"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	docs := []*value.Node{mustParse(t, `{"a":[1]}`), mustParse(t, `2`)}
	tests := []struct {
		name     string
		cfg      *MainConfig
		expected string
	}{
		{"default", &MainConfig{Config: cfgPath}, "{\n  \"a\": [\n    1\n  ]\n}\n2\n"},
		{"profile", &MainConfig{Config: cfgPath, Profile: "wide"}, "{\n    \"a\": [\n        1\n    ]\n}\n2\n"},
		{"compact", &MainConfig{Config: cfgPath, Compact: true}, "{\"a\":[1]}\n2\n"},
		{"tabs", &MainConfig{Config: cfgPath, Profile: "wide", Tabs: true}, "{\n\t\"a\": [\n\t\t1\n\t]\n}\n2\n"},
		{"line break", &MainConfig{Config: cfgPath, Profile: "crlf"}, "{\r\n  \"a\": [\r\n    1\r\n  ]\r\n}\r\n2\r\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			if err := encodeDocs(tt.cfg, buf, docs); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if buf.String() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, buf.String())
			}
		})
	}
	if err := encodeDocs(&MainConfig{Config: cfgPath, Profile: "nope"}, &bytes.Buffer{}, docs); err == nil {
		t.Errorf("expected error for an unknown profile")
	}
}
