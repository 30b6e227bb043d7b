package parse

import (
	"github.com/signadot/dts-format/go-dts/ir"
	"github.com/signadot/dts-format/go-dts/token"
)

type parseOpts struct {
	strict    bool
	positions *Positions
}

type ParseOption func(*parseOpts)

// ParseStrict makes Parse report structural problems. The partial tree is
// returned together with the first error.
func ParseStrict() ParseOption {
	return func(o *parseOpts) { o.strict = true }
}

// ParsePositions records where each node and property starts in the
// original text, comments included.
func ParsePositions(p *Positions) ParseOption {
	return func(o *parseOpts) {
		o.positions = p
	}
}

type Positions struct {
	Nodes map[*ir.Node]token.Pos
	// Ends holds the position just past the closing '}' of a node. Unclosed
	// nodes end at the end of the input.
	Ends  map[*ir.Node]token.Pos
	Props map[*ir.Property]token.Pos
}

func NewPositions() *Positions {
	return &Positions{
		Nodes: map[*ir.Node]token.Pos{},
		Ends:  map[*ir.Node]token.Pos{},
		Props: map[*ir.Property]token.Pos{},
	}
}

// At returns the innermost node of root whose source range contains off, or
// nil.
func (p *Positions) At(root *ir.Node, off int) *ir.Node {
	var res *ir.Node
	root.Walk(func(n *ir.Node) bool {
		start, ok := p.Nodes[n]
		if !ok {
			return true
		}
		if start.Offset > off {
			return false
		}
		if end, ok := p.Ends[n]; ok && off < end.Offset {
			res = n
		}
		return true
	})
	return res
}
