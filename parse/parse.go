package parse

import (
	"strings"

	"github.com/signadot/dts-format/go-dts/debug"
	"github.com/signadot/dts-format/go-dts/ir"
	"github.com/signadot/dts-format/go-dts/token"
)

// Parse parses DTS text into a tree under a synthetic root.
//
// Comments are removed before scanning and are not kept in the tree. Only
// '{', '}' and ';' delimit structure; whitespace is otherwise insignificant.
// Without ParseStrict malformed input never produces an error: unclosed nodes
// stay attached where they were opened, a '}' with nothing to close is
// ignored and unterminated trailing text is dropped.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	text, offs := stripComments(d)
	p := &parser{
		opts:   pOpts,
		text:   text,
		offs:   offs,
		posDoc: token.NewPosDoc(d),
		srcLen: len(d),
	}
	root := p.run()
	if debug.Parse() {
		debug.Logf("parse: %d bytes, %d top level nodes, err=%v", len(d), len(root.Children), p.err)
	}
	if !pOpts.strict {
		return root, nil
	}
	return root, p.err
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseLines parses a document given as lines.
func ParseLines(lines []string, opts ...ParseOption) (*ir.Node, error) {
	return ParseString(strings.Join(lines, "\n"), opts...)
}

type parser struct {
	opts   *parseOpts
	text   []byte
	offs   []int
	posDoc *token.PosDoc
	srcLen int

	buf        strings.Builder
	bufStart   int
	nodeStarts map[*ir.Node]token.Pos
	err        error
}

func (p *parser) run() *ir.Node {
	root := ir.NewRoot()
	stack := []*ir.Node{root}
	p.resetBuf()
	n := len(p.text)
	for i := 0; i < n; i++ {
		c := p.text[i]
		top := stack[len(stack)-1]
		switch c {
		case '{':
			node := top.AddChild(ir.NewNode(p.buf.String()))
			stack = append(stack, node)
			p.trackNode(node, i)
			p.resetBuf()
		case '}':
			if len(stack) > 1 {
				p.trackEnd(top, i+1)
				stack = stack[:len(stack)-1]
			} else {
				p.fail(ErrStrayClose, i)
			}
			j := i + 1
			for j < n && isSpace(p.text[j]) {
				j++
			}
			if j < n && p.text[j] == ';' {
				i = j
			}
			p.resetBuf()
		case ';':
			stmt := strings.TrimSpace(p.buf.String())
			if stmt != "" {
				name, value, _ := strings.Cut(stmt, "=")
				prop := top.AddProperty(ir.NewProperty(name, value))
				p.trackProp(prop)
			}
			p.resetBuf()
		default:
			if p.bufStart < 0 && !isSpace(c) {
				p.bufStart = i
			}
			p.buf.WriteByte(c)
		}
	}
	if p.bufStart >= 0 {
		p.fail(ErrTrailingText, p.bufStart)
	}
	for i := len(stack) - 1; i > 0; i-- {
		p.trackEnd(stack[i], n)
		if pos, ok := p.nodePos(stack[i]); ok {
			p.failAt(ErrUnclosedNode, pos)
		}
	}
	return root
}

func (p *parser) resetBuf() {
	p.buf.Reset()
	p.bufStart = -1
}

// srcPos maps an offset in the stripped text to a position in the original.
func (p *parser) srcPos(i int) token.Pos {
	if i >= len(p.offs) {
		return p.posDoc.Pos(p.srcLen)
	}
	return p.posDoc.Pos(p.offs[i])
}

func (p *parser) start(i int) int {
	if p.bufStart >= 0 {
		return p.bufStart
	}
	return i
}

func (p *parser) trackNode(n *ir.Node, i int) {
	if p.opts.positions != nil {
		p.opts.positions.Nodes[n] = p.srcPos(p.start(i))
	}
	if p.opts.strict {
		if p.nodeStarts == nil {
			p.nodeStarts = map[*ir.Node]token.Pos{}
		}
		p.nodeStarts[n] = p.srcPos(p.start(i))
	}
}

func (p *parser) trackEnd(n *ir.Node, i int) {
	if p.opts.positions == nil {
		return
	}
	pos := p.srcPos(i)
	if i > 0 && i <= len(p.offs) {
		pos = p.posDoc.Pos(p.offs[i-1] + 1)
	}
	p.opts.positions.Ends[n] = pos
}

func (p *parser) trackProp(prop *ir.Property) {
	if p.opts.positions != nil && p.bufStart >= 0 {
		p.opts.positions.Props[prop] = p.srcPos(p.bufStart)
	}
}

func (p *parser) nodePos(n *ir.Node) (token.Pos, bool) {
	pos, ok := p.nodeStarts[n]
	return pos, ok
}

func (p *parser) fail(e error, i int) {
	p.failAt(e, p.srcPos(i))
}

// failAt keeps the error closest to the start of the input.
func (p *parser) failAt(e error, pos token.Pos) {
	if !p.opts.strict {
		return
	}
	if pe, ok := p.err.(*ParseErr); ok && pe.Pos.Offset <= pos.Offset {
		return
	}
	p.err = NewParseErr(e, pos)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
