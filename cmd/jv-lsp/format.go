package main

import (
	"bytes"
	"context"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/signadot/jsonv/codec"
	"github.com/signadot/jsonv/format"
	"github.com/signadot/jsonv/stream"
	"github.com/signadot/jsonv/value"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.err != nil {
		// nothing to do for unknown or malformed documents
		return nil, nil
	}
	formatted, err := s.formatNodes(doc.nodes, params.Options)
	if err != nil {
		s.log.Warn("format", zap.String("uri", doc.uri), zap.Error(err))
		return nil, err
	}
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   endPosition(doc.content),
			},
			NewText: formatted,
		},
	}, nil
}

// formatNodes renders nodes with the server profile. The editor's
// indentation settings apply unless the profile sets its own.
func (s *Server) formatNodes(nodes []*value.Node, opts protocol.FormattingOptions) (string, error) {
	var extra []format.Option
	if s.profile.Indent == nil && s.profile.IndentString == nil {
		if opts.InsertSpaces {
			extra = append(extra, format.Indent(int(opts.TabSize)))
		} else {
			extra = append(extra, format.IndentString("\t"))
		}
	}
	f, err := s.profile.Formatter(extra...)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	enc, err := stream.NewEncoder(&buf, stream.WithFormatter(f))
	if err != nil {
		return "", err
	}
	for _, node := range nodes {
		if err := codec.Encode(enc, node); err != nil {
			return "", err
		}
	}
	if len(nodes) > 0 {
		buf.WriteString(f.LineBreakString())
	}
	return buf.String(), nil
}
