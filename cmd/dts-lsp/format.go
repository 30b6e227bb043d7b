package main

import (
	"context"

	"github.com/signadot/dts-format/go-dts/encode"

	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	// do not rewrite a document the parser had to repair
	if doc.err != nil {
		s.log.Debug("skip formatting", "uri", doc.uri, "error", doc.err)
		return nil, nil
	}
	formatted := encode.Generate(doc.root) + "\n"
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{},
				End:   doc.position(len(doc.content)),
			},
			NewText: formatted,
		},
	}, nil
}
