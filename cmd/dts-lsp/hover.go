package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/dts-format/go-dts/chip"
	"github.com/signadot/dts-format/go-dts/ir"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return nil, nil
	}
	off := doc.offset(params.Position)
	node := doc.positions.At(doc.root, off)
	if node == nil {
		node = doc.root
	}
	var text string
	if p := propertyOnLine(doc, node, int(params.Position.Line)); p != nil {
		text = propertyHover(s.chip, p)
	} else if node != doc.root {
		text = nodeHover(node)
	}
	if text == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}, nil
}

// propertyOnLine returns the property of n that starts on line.
func propertyOnLine(doc *document, n *ir.Node, line int) *ir.Property {
	for _, p := range n.Properties {
		pos, ok := doc.positions.Props[p]
		if ok && pos.Line == line {
			return p
		}
	}
	return nil
}

func propertyHover(v chip.Variant, p *ir.Property) string {
	sb := &strings.Builder{}
	label := chip.NormalizePropertyName(p.Name)
	if label != p.Name {
		fmt.Fprintf(sb, "**%s** `%s`\n", label, p.Name)
	} else {
		fmt.Fprintf(sb, "`%s`\n", p.Name)
	}
	if p.Value != "" {
		fmt.Fprintf(sb, "\n```\n%s\n```\n", p.DisplayValue())
	}
	if help := chip.Help(v, p.Name); help != "" {
		fmt.Fprintf(sb, "\n%s\n", help)
	}
	return sb.String()
}

func nodeHover(n *ir.Node) string {
	return fmt.Sprintf("`%s`\n\n%d properties, %d child nodes\n", n.FullPath(), len(n.Properties), len(n.Children))
}
