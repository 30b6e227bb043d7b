package main

import (
	"context"

	"github.com/signadot/dts-format/go-dts/parse"

	"go.lsp.dev/protocol"
)

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	diagnostics := validateDocument(doc)
	if s.conn == nil {
		return
	}
	err := s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Version:     uint32(doc.version),
		Diagnostics: diagnostics,
	})
	if err != nil {
		s.log.Error("publish diagnostics", "uri", doc.uri, "error", err)
	}
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err == nil {
		return diagnostics
	}
	d := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   lsName,
	}
	if pos, ok := parse.Position(doc.err); ok {
		start := protocol.Position{Line: uint32(pos.Line), Character: uint32(pos.Col)}
		end := start
		end.Character++
		d.Range = protocol.Range{Start: start, End: end}
	}
	return append(diagnostics, d)
}
