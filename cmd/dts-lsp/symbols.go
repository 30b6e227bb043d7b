package main

import (
	"context"

	"github.com/signadot/dts-format/go-dts/ir"

	"go.lsp.dev/protocol"
)

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return nil, nil
	}
	syms := documentSymbols(doc)
	res := make([]interface{}, len(syms))
	for i := range syms {
		res[i] = syms[i]
	}
	return res, nil
}

// documentSymbols returns the top level nodes and root properties of doc
// with their descendants nested.
func documentSymbols(doc *document) []protocol.DocumentSymbol {
	var res []protocol.DocumentSymbol
	for _, p := range doc.root.Properties {
		res = append(res, propertySymbol(doc, p))
	}
	for _, c := range doc.root.Children {
		res = append(res, nodeSymbol(doc, c))
	}
	return res
}

func nodeSymbol(doc *document, n *ir.Node) protocol.DocumentSymbol {
	start := doc.positions.Nodes[n].Offset
	end := start
	if e, ok := doc.positions.Ends[n]; ok {
		end = e.Offset
	}
	name := n.Name
	if name == "" {
		name = "{}"
	}
	sym := protocol.DocumentSymbol{
		Name:  name,
		Kind:  protocol.SymbolKindNamespace,
		Range: protocol.Range{Start: doc.position(start), End: doc.position(end)},
		SelectionRange: protocol.Range{
			Start: doc.position(start),
			End:   doc.position(min(start+len(n.Name), end)),
		},
	}
	for _, p := range n.Properties {
		sym.Children = append(sym.Children, propertySymbol(doc, p))
	}
	for _, c := range n.Children {
		sym.Children = append(sym.Children, nodeSymbol(doc, c))
	}
	return sym
}

func propertySymbol(doc *document, p *ir.Property) protocol.DocumentSymbol {
	start := doc.positions.Props[p].Offset
	r := protocol.Range{
		Start: doc.position(start),
		End:   doc.position(min(start+len(p.Name), len(doc.content))),
	}
	kind := protocol.SymbolKindProperty
	if p.IsNumericArray() {
		kind = protocol.SymbolKindNumber
	}
	return protocol.DocumentSymbol{
		Name:           p.Name,
		Detail:         p.DisplayValue(),
		Kind:           kind,
		Range:          r,
		SelectionRange: r,
	}
}
