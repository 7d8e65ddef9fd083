package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/signadot/jsonv/stream"
	"github.com/signadot/jsonv/value"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	off := positionToOffset(doc.content, params.Position)
	path, ev := eventAt(doc.content, off)
	if ev == nil {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText(path, ev),
		},
	}, nil
}

// eventAt returns the event of the token containing or following off,
// along with its path. The scan stops at the first syntax error.
func eventAt(content string, off int64) (string, *stream.Event) {
	dec, err := stream.NewDecoder(strings.NewReader(content))
	if err != nil {
		return "", nil
	}
	for {
		ev, err := dec.ReadEvent()
		if err != nil {
			return "", nil
		}
		if dec.Offset() > off {
			return dec.CurrentPath(), ev
		}
	}
}

func hoverText(path string, ev *stream.Event) string {
	var kind string
	switch ev.Type {
	case stream.EventKey:
		kind = "key"
	case stream.EventBeginObject, stream.EventEndObject:
		kind = "object"
	case stream.EventBeginArray, stream.EventEndArray:
		kind = "array"
	case stream.EventString:
		kind = "string"
	case stream.EventInt:
		kind = "integer"
	case stream.EventFloat:
		kind = "number"
	case stream.EventBool:
		kind = "boolean"
	default:
		kind = "null"
	}
	return fmt.Sprintf("`%s` %s", value.DisplayPath(path), kind)
}

func (s *Server) FoldingRanges(ctx context.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return foldingRanges(doc.content), nil
}

// foldingRanges returns a range for every object and array spanning more
// than one line, up to the first syntax error.
func foldingRanges(content string) []protocol.FoldingRange {
	res := []protocol.FoldingRange{}
	dec, err := stream.NewDecoder(strings.NewReader(content))
	if err != nil {
		return res
	}
	var starts []protocol.Position
	for {
		ev, err := dec.ReadEvent()
		if err != nil {
			return res
		}
		switch ev.Type {
		case stream.EventBeginObject, stream.EventBeginArray:
			starts = append(starts, offsetToPosition(content, dec.Offset()-1))
		case stream.EventEndObject, stream.EventEndArray:
			start := starts[len(starts)-1]
			starts = starts[:len(starts)-1]
			end := offsetToPosition(content, dec.Offset()-1)
			if end.Line > start.Line {
				res = append(res, protocol.FoldingRange{
					StartLine:      start.Line,
					StartCharacter: start.Character,
					EndLine:        end.Line,
					EndCharacter:   end.Character,
				})
			}
		}
	}
}
