package encode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/dts-format/go-dts/format"
	"github.com/signadot/dts-format/go-dts/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	indent string
	format format.Format
	colors *Colors
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: "\t"}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	switch es.format {
	case format.JSONFormat:
		buf := &strings.Builder{}
		if err := ir.EncodeJSON(buf, node, "  "); err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		return writeString(w, buf.String())
	case format.YAMLFormat:
		d, err := yaml.Marshal(node.Tree())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		return writeString(w, string(d))
	}
	out := generate(node, es)
	if es.colors != nil {
		out = es.colors.Highlight(out)
	}
	return writeString(w, out+"\n")
}

// EncodeString returns the DTS text of node without a trailing newline.
func EncodeString(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := &strings.Builder{}
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Generate is the plain DTS text of node. For a synthetic root, its own
// properties come first as top level statements, followed by its children
// separated by blank lines.
func Generate(node *ir.Node) string {
	return generate(node, &EncState{indent: "\t"})
}

func generate(node *ir.Node, es *EncState) string {
	sb := &strings.Builder{}
	if !node.IsRoot() {
		generateNode(sb, node, "", es)
		return strings.TrimSpace(sb.String())
	}
	for _, p := range node.Properties {
		writeProperty(sb, p, "")
	}
	if len(node.Properties) > 0 {
		sb.WriteString("\n")
	}
	for _, c := range node.Children {
		generateNode(sb, c, "", es)
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String())
}

func generateNode(sb *strings.Builder, node *ir.Node, indent string, es *EncState) {
	sb.WriteString(indent)
	sb.WriteString(node.Name)
	sb.WriteString(" {\n")
	childIndent := indent + es.indent
	for _, p := range node.Properties {
		writeProperty(sb, p, childIndent)
	}
	for _, c := range node.Children {
		generateNode(sb, c, childIndent, es)
	}
	sb.WriteString(indent)
	sb.WriteString("};\n")
}

func writeProperty(sb *strings.Builder, p *ir.Property, indent string) {
	sb.WriteString(indent)
	sb.WriteString(p.Name)
	if p.Value != "" {
		sb.WriteString(" = ")
		sb.WriteString(p.Value)
	}
	sb.WriteString(";\n")
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
