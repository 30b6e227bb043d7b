package parse

import "regexp"

var (
	lineComment  = regexp.MustCompile(`//[^\n]*`)
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
)

// StripComments removes '//' comments and then '/* */' comments from d.
// Block comments may span lines.
func StripComments(d []byte) []byte {
	res, _ := stripComments(d)
	return res
}

// stripComments also returns, for every byte kept, its offset in d.
func stripComments(d []byte) ([]byte, []int) {
	offs := make([]int, len(d))
	for i := range offs {
		offs[i] = i
	}
	d, offs = cut(d, offs, lineComment)
	return cut(d, offs, blockComment)
}

func cut(d []byte, offs []int, re *regexp.Regexp) ([]byte, []int) {
	ms := re.FindAllIndex(d, -1)
	if len(ms) == 0 {
		return d, offs
	}
	rd := make([]byte, 0, len(d))
	ro := make([]int, 0, len(offs))
	last := 0
	for _, m := range ms {
		rd = append(rd, d[last:m[0]]...)
		ro = append(ro, offs[last:m[0]]...)
		last = m[1]
	}
	rd = append(rd, d[last:]...)
	ro = append(ro, offs[last:]...)
	return rd, ro
}
