package main

import (
	"context"
	"sync"

	"github.com/signadot/dts-format/go-dts/ir"
	"github.com/signadot/dts-format/go-dts/parse"
	"github.com/signadot/dts-format/go-dts/token"

	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is immutable once stored; edits replace it.
type document struct {
	uri       string
	content   string
	version   int32
	root      *ir.Node
	positions *parse.Positions
	pos       *token.PosDoc
	// err is the strict parse error, if any. root is still the degraded
	// tree in that case.
	err error
}

func newDocument(uri, content string, version int32) *document {
	positions := parse.NewPositions()
	root, err := parse.Parse([]byte(content), parse.ParseStrict(), parse.ParsePositions(positions))
	return &document{
		uri:       uri,
		content:   content,
		version:   version,
		root:      root,
		positions: positions,
		pos:       token.NewPosDoc([]byte(content)),
		err:       err,
	}
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := newDocument(uri, content, version)
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

// offset converts an LSP position to a byte offset in doc. Characters are
// counted in bytes, which matches UTF-16 units for ASCII sources.
func (doc *document) offset(p protocol.Position) int {
	off := doc.pos.LineStart(int(p.Line)) + int(p.Character)
	return min(off, len(doc.content))
}

func (doc *document) position(off int) protocol.Position {
	l, c := doc.pos.LineCol(off)
	return protocol.Position{Line: uint32(l), Character: uint32(c)}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	doc := s.docs.put(uri, params.TextDocument.Text, params.TextDocument.Version)
	s.log.Debug("open", "uri", uri, "version", doc.version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	doc := s.docs.get(uri)
	if doc == nil {
		return nil
	}
	content := doc.content
	for _, change := range params.ContentChanges {
		content = applyChange(content, change)
	}
	doc = s.docs.put(uri, content, params.TextDocument.Version)
	s.log.Debug("change", "uri", uri, "version", doc.version, "changes", len(params.ContentChanges))
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

// applyChange applies one content change. A zero range replaces the whole
// document.
func applyChange(content string, change protocol.TextDocumentContentChangeEvent) string {
	r := change.Range
	if r == (protocol.Range{}) && change.RangeLength == 0 {
		return change.Text
	}
	pd := token.NewPosDoc([]byte(content))
	start := min(pd.LineStart(int(r.Start.Line))+int(r.Start.Character), len(content))
	end := min(pd.LineStart(int(r.End.Line))+int(r.End.Character), len(content))
	if start > end {
		return content
	}
	return content[:start] + change.Text + content[end:]
}
