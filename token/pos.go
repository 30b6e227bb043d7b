package token

import (
	"fmt"
	"sort"
)

// PosDoc maps byte offsets of a document to zero based lines and columns.
type PosDoc struct {
	n []int
}

// NewPosDoc indexes the newlines of d.
func NewPosDoc(d []byte) *PosDoc {
	p := &PosDoc{}
	for i, c := range d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	switch di {
	case 0:
		return 0, off
	default:
		return di, off - p.n[di-1] - 1
	}
}

// Lines returns the number of lines in the indexed document.
func (p *PosDoc) Lines() int {
	return len(p.n) + 1
}

// LineStart returns the offset of the first byte of line.
func (p *PosDoc) LineStart(line int) int {
	if line <= 0 {
		return 0
	}
	if line > len(p.n) {
		line = len(p.n)
	}
	return p.n[line-1] + 1
}

func (p *PosDoc) Pos(off int) Pos {
	l, c := p.LineCol(off)
	return Pos{Offset: off, Line: l, Col: c}
}

type Pos struct {
	Offset int
	Line   int
	Col    int
}

func (p Pos) String() string {
	return fmt.Sprintf("line=%d, col=%d", p.Line+1, p.Col+1)
}
