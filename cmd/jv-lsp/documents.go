package main

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/go-json-experiment/json/jsontext"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/signadot/jsonv/codec"
	"github.com/signadot/jsonv/stream"
	"github.com/signadot/jsonv/value"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	nodes   []*value.Node
	err     error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := &document{
		uri:     uri,
		content: content,
		version: version,
	}
	doc.nodes, doc.err = decodeContent(content)

	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func decodeContent(content string) ([]*value.Node, error) {
	dec, err := stream.NewDecoder(strings.NewReader(content))
	if err != nil {
		return nil, err
	}
	return codec.DecodeAll(dec, false)
}

// errorOffset returns the input offset at which decoding failed.
func errorOffset(err error) int64 {
	var serr *jsontext.SyntacticError
	if errors.As(err, &serr) {
		return serr.ByteOffset
	}
	var merr *codec.MalformedJSONError
	if errors.As(err, &merr) {
		return merr.Offset
	}
	return 0
}

func diagnostics(doc *document) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	if doc.err == nil {
		return res
	}
	return append(res, protocol.Diagnostic{
		Range:    pointRange(doc.content, errorOffset(doc.err)),
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   lsName,
	})
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	if s.client == nil {
		return
	}
	err := s.client.PublishDiagnostics(ctx, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Diagnostics: diagnostics(doc),
	})
	if err != nil {
		s.log.Warn("publish diagnostics", zap.String("uri", doc.uri), zap.Error(err))
	}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.log.Debug("open", zap.String("uri", doc.uri), zap.Int("nodes", len(doc.nodes)))
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// full sync: the last change holds the whole text
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	doc := s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
