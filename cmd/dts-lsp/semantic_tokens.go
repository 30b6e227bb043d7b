package main

import (
	"context"

	"github.com/signadot/dts-format/go-dts/token"

	"go.lsp.dev/protocol"
)

// tokenTypes is the legend; a token's type is its index here.
var tokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenComment,
	protocol.SemanticTokenKeyword,
	protocol.SemanticTokenString,
	protocol.SemanticTokenNumber,
	protocol.SemanticTokenProperty,
	protocol.SemanticTokenMacro,
	protocol.SemanticTokenOperator,
	protocol.SemanticTokenNamespace,
	protocol.SemanticTokenVariable,
}

var styleTypes = map[token.Style]protocol.SemanticTokenTypes{
	token.StyleComment:      protocol.SemanticTokenComment,
	token.StyleKeyword:      protocol.SemanticTokenKeyword,
	token.StyleString:       protocol.SemanticTokenString,
	token.StyleNumber:       protocol.SemanticTokenNumber,
	token.StyleProperty:     protocol.SemanticTokenProperty,
	token.StylePreprocessor: protocol.SemanticTokenMacro,
	token.StyleBracket:      protocol.SemanticTokenOperator,
	token.StyleOperator:     protocol.SemanticTokenOperator,
	token.StyleNode:         protocol.SemanticTokenNamespace,
	token.StylePhandle:      protocol.SemanticTokenVariable,
}

func semanticLegend() protocol.SemanticTokensLegend {
	return protocol.SemanticTokensLegend{
		TokenTypes:     tokenTypes,
		TokenModifiers: []protocol.SemanticTokenModifiers{},
	}
}

func typeIndex(s token.Style) (uint32, bool) {
	tt, ok := styleTypes[s]
	if !ok {
		return 0, false
	}
	for i, x := range tokenTypes {
		if x == tt {
			return uint32(i), true
		}
	}
	return 0, false
}

// collectSemanticTokens encodes the tokenizer spans of lines [from, to) in
// the relative LSP form. Plain text spans are left out. The tokenizer runs
// from the first line so block comment state is right for the range.
func collectSemanticTokens(content string, from, to int) []uint32 {
	lines := token.SplitLines(content)
	to = min(to, len(lines))
	data := []uint32{}
	var (
		prevLine, prevChar uint32
		st                 token.State
		spans              []token.Span
	)
	for i := 0; i < to; i++ {
		st, spans = token.TokenizeLine(st, lines[i])
		if i < from {
			continue
		}
		for _, sp := range spans {
			ti, ok := typeIndex(sp.Style)
			if !ok || sp.Len() == 0 {
				continue
			}
			line, char := uint32(i), uint32(sp.Start)
			deltaLine := line - prevLine
			deltaChar := char
			if deltaLine == 0 {
				deltaChar = char - prevChar
			}
			data = append(data, deltaLine, deltaChar, uint32(sp.Len()), ti, 0)
			prevLine, prevChar = line, char
		}
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{
		Data: collectSemanticTokens(doc.content, 0, doc.pos.Lines()),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	r := params.Range
	return &protocol.SemanticTokens{
		Data: collectSemanticTokens(doc.content, int(r.Start.Line), int(r.End.Line)+1),
	}, nil
}
