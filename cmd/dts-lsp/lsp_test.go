package main

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/signadot/dts-format/go-dts/chip"
	"github.com/signadot/dts-format/go-dts/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/protocol"
)

const uri = "file:///tmp/gpu.dts"

const gpuDTS = `/ {
	gpu {
		qcom,gpu-freq = <0x35a4e900>;
		status = "okay";
	};
};
`

func newTestServer(t *testing.T, content string) *Server {
	t.Helper()
	s := NewServer(slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := s.DidOpen(context.Background(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: content, Version: 1},
	})
	require.NoError(t, err)
	return s
}

func TestInitialize(t *testing.T) {
	s := NewServer(slog.New(slog.NewTextHandler(io.Discard, nil)))
	res, err := s.Initialize(context.Background(), &protocol.InitializeParams{
		InitializationOptions: map[string]any{"chip": "kalama"},
	})
	require.NoError(t, err)
	assert.Equal(t, lsName, res.ServerInfo.Name)
	assert.Equal(t, chip.Kalama, s.chip)
}

func TestDiagnostics(t *testing.T) {
	s := newTestServer(t, gpuDTS)
	assert.Empty(t, validateDocument(s.docs.get(uri)))

	s = newTestServer(t, "/ {\n\tgpu {\n\t};\n")
	diags := validateDocument(s.docs.get(uri))
	require.Len(t, diags, 1)
	assert.Equal(t, protocol.DiagnosticSeverityError, diags[0].Severity)
	assert.Equal(t, protocol.Position{Line: 0, Character: 0}, diags[0].Range.Start)
	assert.Contains(t, diags[0].Message, "unclosed node")
}

func TestDidChange(t *testing.T) {
	s := newTestServer(t, gpuDTS)
	err := s.DidChange(context.Background(), &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{
			{
				Range: protocol.Range{
					Start: protocol.Position{Line: 3, Character: 12},
					End:   protocol.Position{Line: 3, Character: 16},
				},
				Text: "disabled",
			},
		},
	})
	require.NoError(t, err)
	doc := s.docs.get(uri)
	assert.Equal(t, int32(2), doc.version)
	assert.Contains(t, doc.content, `status = "disabled";`)
	assert.Equal(t, `"disabled"`, doc.root.Find("/gpu").Property("status").Value)
}

func TestApplyChangeFull(t *testing.T) {
	got := applyChange("old", protocol.TextDocumentContentChangeEvent{Text: "new"})
	assert.Equal(t, "new", got)
}

func TestSemanticTokens(t *testing.T) {
	content := "// gpu\n/ {\n};\n"
	data := collectSemanticTokens(content, 0, 3)
	require.NotEmpty(t, data)
	require.Zero(t, len(data)%5)
	comment, _ := typeIndex(token.StyleComment)
	assert.Equal(t, []uint32{0, 0, 6, comment, 0}, data[:5])

	ranged := collectSemanticTokens(content, 1, 2)
	require.NotEmpty(t, ranged)
	assert.Equal(t, uint32(1), ranged[0], "first token is on line 1")
	for i := 5; i < len(ranged); i += 5 {
		assert.Zero(t, ranged[i], "only line 1 is included")
	}
}

func TestSemanticTokensBlockCommentState(t *testing.T) {
	content := "/* a\nb */\n"
	data := collectSemanticTokens(content, 1, 2)
	comment, _ := typeIndex(token.StyleComment)
	require.Len(t, data, 5)
	assert.Equal(t, []uint32{1, 0, 4, comment, 0}, data)
}

func TestFormatting(t *testing.T) {
	s := newTestServer(t, "/{gpu{status=\"okay\";};};")
	edits, err := s.Formatting(context.Background(), &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	require.Len(t, edits, 1)
	assert.Equal(t, "/ {\n\tgpu {\n\t\tstatus = \"okay\";\n\t};\n};\n", edits[0].NewText)
	assert.Equal(t, protocol.Position{Line: 0, Character: 24}, edits[0].Range.End)

	s = newTestServer(t, gpuDTS)
	edits, err = s.Formatting(context.Background(), &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	assert.Empty(t, edits)
}

func TestDocumentSymbol(t *testing.T) {
	s := newTestServer(t, gpuDTS)
	res, err := s.DocumentSymbol(context.Background(), &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	require.Len(t, res, 1)
	top := res[0].(protocol.DocumentSymbol)
	assert.Equal(t, "/", top.Name)
	assert.Equal(t, uint32(0), top.Range.Start.Line)
	assert.Equal(t, uint32(5), top.Range.End.Line)
	require.Len(t, top.Children, 1)
	gpu := top.Children[0]
	assert.Equal(t, "gpu", gpu.Name)
	require.Len(t, gpu.Children, 2)
	assert.Equal(t, "qcom,gpu-freq", gpu.Children[0].Name)
	assert.Equal(t, "900000000", gpu.Children[0].Detail)
	assert.Equal(t, protocol.SymbolKindNumber, gpu.Children[0].Kind)
	assert.Equal(t, protocol.Position{Line: 2, Character: 2}, gpu.Children[0].Range.Start)
}

func TestHover(t *testing.T) {
	s := newTestServer(t, gpuDTS)
	hover := func(line, char uint32) string {
		h, err := s.Hover(context.Background(), &protocol.HoverParams{
			TextDocumentPositionParams: protocol.TextDocumentPositionParams{
				TextDocument: protocol.TextDocumentIdentifier{URI: uri},
				Position:     protocol.Position{Line: line, Character: char},
			},
		})
		require.NoError(t, err)
		if h == nil {
			return ""
		}
		return h.Contents.Value
	}
	got := hover(2, 5)
	assert.True(t, strings.HasPrefix(got, "**Frequency** `qcom,gpu-freq`"), got)
	assert.Contains(t, got, "900000000")
	assert.Contains(t, got, chip.Help(chip.Unknown, "qcom,gpu-freq"))

	got = hover(1, 2)
	assert.Contains(t, got, "`/gpu`")
	assert.Contains(t, got, "2 properties, 0 child nodes")

	assert.Equal(t, "", hover(6, 0))
}
