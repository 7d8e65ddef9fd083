package main

import (
	"context"
	"strings"
	"testing"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/signadot/jsonv/profile"
)

const testURI = "file:///tmp/test.json"

func newTestServer(t *testing.T, p *profile.Profile, content string) *Server {
	t.Helper()
	if p == nil {
		p = &profile.Profile{}
	}
	s := NewServer(p, zap.NewNop())
	err := s.DidOpen(context.Background(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:     testURI,
			Text:    content,
			Version: 1,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestPositions(t *testing.T) {
	content := "{\n  \"é𝄞\": 1\n}"
	tests := []struct {
		off int64
		pos protocol.Position
	}{
		{0, protocol.Position{Line: 0, Character: 0}},
		{2, protocol.Position{Line: 1, Character: 0}},
		{5, protocol.Position{Line: 1, Character: 3}},
		// é is 2 bytes and one UTF-16 unit, 𝄞 is 4 bytes and two units
		{11, protocol.Position{Line: 1, Character: 6}},
		{int64(len(content)), protocol.Position{Line: 2, Character: 1}},
	}
	for _, tt := range tests {
		got := offsetToPosition(content, tt.off)
		if got != tt.pos {
			t.Errorf("offset %d: expected %v, got %v", tt.off, tt.pos, got)
		}
		if back := positionToOffset(content, tt.pos); back != tt.off {
			t.Errorf("position %v: expected offset %d, got %d", tt.pos, tt.off, back)
		}
	}
	if got := positionToOffset(content, protocol.Position{Line: 0, Character: 40}); got != 1 {
		t.Errorf("expected past the end of a line to map to its break, got %d", got)
	}
}

func TestDiagnostics(t *testing.T) {
	s := newTestServer(t, nil, "{\"a\": 1,\n  \"b\": }")
	doc := s.docs.get(testURI)
	diags := diagnostics(doc)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	if diags[0].Severity != protocol.DiagnosticSeverityError {
		t.Errorf("expected error severity, got %v", diags[0].Severity)
	}
	if diags[0].Range.Start.Line != 1 {
		t.Errorf("expected the error on line 1, got %v", diags[0].Range)
	}
	if !strings.Contains(diags[0].Message, "malformed JSON") {
		t.Errorf("unexpected message %q", diags[0].Message)
	}

	err := s.DidChange(context.Background(), &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
			Version:                2,
		},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{{Text: `{"a": 1, "b": 2}`}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diags := diagnostics(s.docs.get(testURI)); len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %v", diags)
	}
}

func formatDoc(t *testing.T, s *Server, opts protocol.FormattingOptions) []protocol.TextEdit {
	t.Helper()
	edits, err := s.Formatting(context.Background(), &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
		Options:      opts,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return edits
}

func TestFormatting(t *testing.T) {
	s := newTestServer(t, nil, `{"a":[1,2]} 3`)
	edits := formatDoc(t, s, protocol.FormattingOptions{InsertSpaces: true, TabSize: 4})
	if len(edits) != 1 {
		t.Fatalf("expected 1 edit, got %v", edits)
	}
	expected := "{\n    \"a\": [\n        1,\n        2\n    ]\n}\n3\n"
	if edits[0].NewText != expected {
		t.Errorf("expected %q, got %q", expected, edits[0].NewText)
	}
	if edits[0].Range.End != (protocol.Position{Line: 0, Character: 13}) {
		t.Errorf("expected the edit to cover the document, got %v", edits[0].Range)
	}

	edits = formatDoc(t, s, protocol.FormattingOptions{InsertSpaces: false})
	if len(edits) != 1 || !strings.HasPrefix(edits[0].NewText, "{\n\t\"a\"") {
		t.Errorf("expected tab indentation, got %v", edits)
	}

	s = newTestServer(t, nil, "[\n  1\n]\n")
	if edits := formatDoc(t, s, protocol.FormattingOptions{InsertSpaces: true, TabSize: 2}); len(edits) != 0 {
		t.Errorf("expected no edits for formatted input, got %v", edits)
	}

	s = newTestServer(t, nil, `{"a":`)
	if edits := formatDoc(t, s, protocol.FormattingOptions{InsertSpaces: true, TabSize: 2}); edits != nil {
		t.Errorf("expected no edits for malformed input, got %v", edits)
	}
}

func TestFormattingProfile(t *testing.T) {
	sep := " => "
	width := 1
	s := newTestServer(t, &profile.Profile{Indent: &width, FieldValueSeparator: &sep}, `{"a":1}`)
	edits := formatDoc(t, s, protocol.FormattingOptions{InsertSpaces: true, TabSize: 8})
	if len(edits) != 1 {
		t.Fatalf("expected 1 edit, got %v", edits)
	}
	expected := "{\n \"a\" => 1\n}\n"
	if edits[0].NewText != expected {
		t.Errorf("expected %q, got %q", expected, edits[0].NewText)
	}
}

func TestHover(t *testing.T) {
	content := "{\n  \"a\": [true, {\"b c\": null}],\n  \"n\": 2.5\n}"
	s := newTestServer(t, nil, content)
	tests := []struct {
		pos      protocol.Position
		expected string
	}{
		{protocol.Position{Line: 0, Character: 0}, "`$` object"},
		{protocol.Position{Line: 1, Character: 3}, "`a` key"},
		{protocol.Position{Line: 1, Character: 10}, "`a[0]` boolean"},
		{protocol.Position{Line: 1, Character: 18}, "`a[1].\"b c\"` key"},
		{protocol.Position{Line: 2, Character: 8}, "`n` number"},
	}
	for _, tt := range tests {
		h, err := s.Hover(context.Background(), &protocol.HoverParams{
			TextDocumentPositionParams: protocol.TextDocumentPositionParams{
				TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
				Position:     tt.pos,
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if h == nil {
			t.Fatalf("%v: expected hover", tt.pos)
		}
		if h.Contents.Value != tt.expected {
			t.Errorf("%v: expected %q, got %q", tt.pos, tt.expected, h.Contents.Value)
		}
	}
}

func TestFoldingRanges(t *testing.T) {
	content := "{\n  \"a\": [1],\n  \"b\": [\n    2\n  ]\n}"
	got := foldingRanges(content)
	if len(got) != 2 {
		t.Fatalf("expected 2 ranges, got %v", got)
	}
	if got[0].StartLine != 2 || got[0].EndLine != 4 {
		t.Errorf("unexpected inner range %v", got[0])
	}
	if got[1].StartLine != 0 || got[1].EndLine != 5 {
		t.Errorf("unexpected outer range %v", got[1])
	}
}
