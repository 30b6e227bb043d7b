package token

import (
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/signadot/dts-format/go-dts/debug"
)

var (
	lineComment  = regexp.MustCompile(`//.*$`)
	preprocessor = regexp.MustCompile(`^\s*(/dts-v1/|/plugin/|/include/|/omit-if-no-ref/|/delete-node/|/delete-property/|#include)`)
	stringLit    = regexp.MustCompile(`"[^"]*"`)
	phandleRef   = regexp.MustCompile(`<&[a-zA-Z_][a-zA-Z0-9_]*>`)
	labelRef     = regexp.MustCompile(`&[a-zA-Z_][a-zA-Z0-9_]*`)
	hexNumber    = regexp.MustCompile(`\b0x[0-9a-fA-F]+\b`)
	decNumber    = regexp.MustCompile(`\b[0-9]+\b`)
	nodeName     = regexp.MustCompile(`^\s*([a-zA-Z_][a-zA-Z0-9_,-]*)(?:@[0-9a-fA-F]+)?\s*\{`)
	propertyName = regexp.MustCompile(`^\s*([a-zA-Z_#][a-zA-Z0-9_,.-]*)\s*[=;]`)
	brackets     = regexp.MustCompile(`[{};<>]`)
	operators    = regexp.MustCompile(`=`)
	keywords     = regexp.MustCompile(keywordPattern())
)

// VendorPrefix is the vendor whose prefixed property names are keywords.
const VendorPrefix = "qcom,"

var keywordNames = []string{
	"compatible", "reg", "status", "phandle", "interrupt-parent", "interrupts",
	"interrupt-controller", "ranges", "dma-ranges", "device_type", "model",
	"reg-names", "clock-names", "clocks", "resets", "reset-names",
	"power-domains", "power-domain-names", "iommus", "memory-region",
	"no-map", "reusable", "alloc-ranges", "alignment", "size",
	"linux,cma-default",
}

var cellKeywords = []string{"#address-cells", "#size-cells", "#interrupt-cells"}

// keywordPattern builds the keyword alternation with longer names first so
// that "reg-names" is not cut short by "reg".
func keywordPattern() string {
	names := slices.Clone(keywordNames)
	sort.SliceStable(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })
	for i := range names {
		names[i] = regexp.QuoteMeta(names[i])
	}
	cells := make([]string, len(cellKeywords))
	for i := range cellKeywords {
		cells[i] = regexp.QuoteMeta(cellKeywords[i])
	}
	return `(?:` + strings.Join(cells, "|") + `)\b` +
		`|\b(?:` + strings.Join(names, "|") + `)\b` +
		`|\b` + regexp.QuoteMeta(VendorPrefix) + `[a-zA-Z0-9_,.+-]*[a-zA-Z0-9_]`
}

// State is the tokenizer state carried from one line to the next.
type State struct {
	InBlockComment bool
}

// TokenizeLine colors one line. st is the state left by the previous line of
// the same document (the zero State at the start of a document) and the
// returned State must be passed with the next line.
func TokenizeLine(st State, line string) (State, []Span) {
	n := len(line)
	if n == 0 {
		return st, nil
	}
	lc := &lineColors{line: line, colored: make([]bool, n)}

	pos := 0
	for pos < n {
		if st.InBlockComment {
			j := strings.Index(line[pos:], "*/")
			if j < 0 {
				lc.add(pos, n, StyleComment)
				pos = n
				break
			}
			end := pos + j + 2
			lc.add(pos, end, StyleComment)
			st.InBlockComment = false
			pos = end
			continue
		}
		j := strings.Index(line[pos:], "/*")
		if j < 0 {
			break
		}
		start := pos + j
		k := strings.Index(line[start+2:], "*/")
		if k < 0 {
			lc.add(start, n, StyleComment)
			st.InBlockComment = true
			pos = n
			break
		}
		end := start + 2 + k + 2
		lc.add(start, end, StyleComment)
		pos = end
	}
	if lc.full() {
		return st, lc.spans
	}

	lc.match(lineComment, StyleComment)
	lc.match(preprocessor, StylePreprocessor)
	lc.match(stringLit, StyleString)
	lc.match(phandleRef, StylePhandle)
	lc.match(labelRef, StylePhandle)
	lc.match(hexNumber, StyleNumber)
	lc.match(keywords, StyleKeyword)
	lc.matchFirst(nodeName, StyleNode)
	lc.matchFirst(propertyName, StyleProperty)
	lc.match(brackets, StyleBracket)
	lc.match(operators, StyleOperator)
	lc.match(decNumber, StyleNumber)

	start := -1
	for i := 0; i <= n; i++ {
		if i < n && !lc.colored[i] {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			lc.spans = append(lc.spans, Span{Start: start, End: i, Style: StyleText})
			start = -1
		}
	}
	sort.Slice(lc.spans, func(i, j int) bool { return lc.spans[i].Start < lc.spans[j].Start })
	return st, lc.spans
}

type lineColors struct {
	line    string
	colored []bool
	spans   []Span
}

func (lc *lineColors) add(start, end int, s Style) {
	lc.spans = append(lc.spans, Span{Start: start, End: end, Style: s})
	for i := start; i < end && i < len(lc.colored); i++ {
		lc.colored[i] = true
	}
}

func (lc *lineColors) taken(start, end int) bool {
	for i := start; i < end && i < len(lc.colored); i++ {
		if lc.colored[i] {
			return true
		}
	}
	return false
}

func (lc *lineColors) full() bool {
	for _, c := range lc.colored {
		if !c {
			return false
		}
	}
	return true
}

// bounds returns the range of the first capture group when the pattern has
// one and it participated, the whole match otherwise.
func bounds(m []int) (int, int) {
	if len(m) >= 4 && m[2] >= 0 {
		return m[2], m[3]
	}
	return m[0], m[1]
}

func (lc *lineColors) match(re *regexp.Regexp, s Style) {
	for _, m := range re.FindAllStringSubmatchIndex(lc.line, -1) {
		start, end := bounds(m)
		if start == end || lc.taken(start, end) {
			continue
		}
		lc.add(start, end, s)
	}
}

func (lc *lineColors) matchFirst(re *regexp.Regexp, s Style) {
	m := re.FindStringSubmatchIndex(lc.line)
	if m == nil {
		return
	}
	start, end := bounds(m)
	if start == end || lc.taken(start, end) {
		return
	}
	lc.add(start, end, s)
}

// Tokenizer tokenizes the lines of one document in order. It is not safe for
// concurrent use; tokenize independent documents with separate Tokenizers.
type Tokenizer struct {
	state State
}

func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Reset clears the block comment state. Call it before tokenizing a
// document from its first line again.
func (t *Tokenizer) Reset() {
	t.state = State{}
}

func (t *Tokenizer) State() State {
	return t.state
}

// Tokenize colors the next line of the document.
func (t *Tokenizer) Tokenize(line string) []Span {
	var spans []Span
	t.state, spans = TokenizeLine(t.state, line)
	if debug.Tokenize() {
		debug.Logf("tokenize %q -> %v (block comment %t)", line, spans, t.state.InBlockComment)
	}
	return spans
}

// TokenizeLines colors every line of a document starting from the zero state.
func TokenizeLines(lines []string) [][]Span {
	res := make([][]Span, len(lines))
	st := State{}
	for i, line := range lines {
		st, res[i] = TokenizeLine(st, line)
	}
	return res
}

// SplitLines splits text into lines, dropping the line terminators.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
