package main

import (
	"unicode/utf16"
	"unicode/utf8"

	"go.lsp.dev/protocol"
)

// offsetToPosition converts a byte offset in content to an LSP position,
// whose character counts UTF-16 code units.
func offsetToPosition(content string, off int64) protocol.Position {
	if off > int64(len(content)) {
		off = int64(len(content))
	}
	var line, col uint32
	for i, r := range content {
		if int64(i) >= off {
			break
		}
		if r == '\n' {
			line++
			col = 0
			continue
		}
		col += uint32(utf16.RuneLen(r))
	}
	return protocol.Position{Line: line, Character: col}
}

// positionToOffset is the inverse of offsetToPosition. Positions past the
// end of a line map to the line break, positions past the end of content to
// its length.
func positionToOffset(content string, pos protocol.Position) int64 {
	var line, col uint32
	for i, r := range content {
		if line == pos.Line && (col >= pos.Character || r == '\n') {
			return int64(i)
		}
		if r == '\n' {
			line++
			col = 0
			continue
		}
		col += uint32(utf16.RuneLen(r))
	}
	return int64(len(content))
}

// endPosition returns the position just past the last character of content.
func endPosition(content string) protocol.Position {
	return offsetToPosition(content, int64(len(content)))
}

// pointRange returns a range covering the character at off, or an empty
// range at the end of content.
func pointRange(content string, off int64) protocol.Range {
	start := offsetToPosition(content, off)
	end := start
	if off < int64(len(content)) {
		_, size := utf8.DecodeRuneInString(content[off:])
		end = offsetToPosition(content, off+int64(size))
		if end.Line != start.Line {
			end = start
		}
	}
	return protocol.Range{Start: start, End: end}
}
