package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/signadot/jsonv/codec"
	"github.com/signadot/jsonv/format"
	"github.com/signadot/jsonv/stream"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

func formatWith(t *testing.T, p *Profile, input string) string {
	t.Helper()
	f, err := p.Formatter()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	node, err := codec.Unmarshal([]byte(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return codec.MustMarshal(node, stream.WithFormatter(f))
}

const yamlConfig = `
indent: 4
profiles:
  wide:
    indent-objects: false
    before-array-values: " "
    after-array-values: " "
    field-value-separator: " => "
  min:
    layout: compact
  tabs:
    indent-string: "\t"
    line-break: "\r\n"
`

func TestLoadYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "jv.yaml", yamlConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.File == "" {
		t.Errorf("expected the file used to be recorded")
	}
	names := cfg.Names()
	if len(names) != 3 || names[0] != "min" || names[2] != "wide" {
		t.Errorf("unexpected profiles %v", names)
	}

	tests := []struct {
		profile  string
		input    string
		expected string
	}{
		{"", `{"a":[1,2]}`, "{\n    \"a\": [\n        1,\n        2\n    ]\n}"},
		{"wide", `{"x":[1,2]}`, `{"x" => [ 1,2 ]}`},
		{"min", `{"a": [1, 2]}`, `{"a":[1,2]}`},
		{"tabs", `{"a":1}`, "{\r\n\t\"a\": 1\r\n}"},
	}
	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			p, err := cfg.Get(tt.profile)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := formatWith(t, p, tt.input)
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestLoadJSONAndTOML(t *testing.T) {
	for name, content := range map[string]string{
		"jv.json": `{"indent": 1, "profiles": {"c": {"layout": "c"}}}`,
		"jv.toml": "indent = 1\n[profiles.c]\nlayout = \"c\"\n",
	} {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, name, content))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			p, _ := cfg.Get("")
			if got := formatWith(t, p, `[1]`); got != "[\n 1\n]" {
				t.Errorf("expected %q, got %q", "[\n 1\n]", got)
			}
			p, err = cfg.Get("c")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := formatWith(t, p, `[1]`); got != "[1]" {
				t.Errorf("expected %q, got %q", "[1]", got)
			}
		})
	}
}

func TestEnvOverride(t *testing.T) {
	path := writeConfig(t, "jv.yaml", "indent: 4\n")
	t.Setenv("JV_INDENT", "3")
	t.Setenv("JV_INDENT_ARRAYS", "false")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, _ := cfg.Get("")
	expected := "{\n   \"a\": [1]\n}"
	if got := formatWith(t, p, `{"a":[1]}`); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestConfigEnvPath(t *testing.T) {
	t.Setenv("JV_CONFIG", writeConfig(t, "other.yaml", "layout: compact\n"))
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, _ := cfg.Get("")
	if got := formatWith(t, p, `{"a":[1]}`); got != `{"a":[1]}` {
		t.Errorf("expected compact output, got %q", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for a missing explicit file")
	}
	if _, err := Load(writeConfig(t, "jv.yaml", "indent: [")); err == nil {
		t.Errorf("expected error for invalid yaml")
	}
	if _, err := Load(writeConfig(t, "jv.yaml", "indent: wide\n")); err == nil {
		t.Errorf("expected error for a non-numeric indent")
	}
}

func TestInvalidProfile(t *testing.T) {
	cfg, err := Load(writeConfig(t, "jv.yaml", `
profiles:
  neg:
    indent: -2
  layout:
    layout: yaml
  dots:
    indent-string: ".."
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range []string{"neg", "layout", "dots"} {
		p, err := cfg.Get(name)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err = p.Formatter()
		if !errors.Is(err, format.ErrInvalidConfiguration) {
			t.Errorf("%s: expected ErrInvalidConfiguration, got %v", name, err)
		}
	}
	if _, err := cfg.Get("nope"); !errors.Is(err, ErrUnknownProfile) {
		t.Errorf("expected ErrUnknownProfile, got %v", err)
	}
}

func TestFormatterExtraOptions(t *testing.T) {
	p := &Profile{Layout: "pretty"}
	f, err := p.Formatter(format.Compact())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.IsCompact() {
		t.Errorf("expected extra options to apply last")
	}
}
