package encode

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/dts-format/go-dts/token"
)

// ARGB is a color packed as 0xAARRGGBB.
type ARGB uint32

func (c ARGB) Alpha() uint8 { return uint8(c >> 24) }

func (c ARGB) RGB() (int, int, int) {
	return int(c>>16) & 0xff, int(c>>8) & 0xff, int(c) & 0xff
}

// Scheme assigns a color to each token style, plus the colors of editor
// chrome.
type Scheme struct {
	Styles map[token.Style]ARGB

	LineNumber   ARGB
	LineNumberBg ARGB
	Cursor       ARGB
	Selection    ARGB
	CurrentLine  ARGB
}

// DefaultScheme is a dark scheme.
var DefaultScheme = &Scheme{
	Styles: map[token.Style]ARGB{
		token.StyleText:         0xFFE0E0E0,
		token.StyleComment:      0xFF6A9955,
		token.StyleKeyword:      0xFFBB86FC,
		token.StyleString:       0xFFCE9178,
		token.StyleNumber:       0xFFB5CEA8,
		token.StyleProperty:     0xFF9CDCFE,
		token.StylePreprocessor: 0xFFC586C0,
		token.StyleBracket:      0xFFFFD700,
		token.StyleNode:         0xFF4EC9B0,
		token.StyleOperator:     0xFFD4D4D4,
		token.StylePhandle:      0xFF4FC1FF,
	},
	LineNumber:   0xFF6A6A6A,
	LineNumberBg: 0xFF1A1A1A,
	Cursor:       0xFF448AFF,
	Selection:    0x50448AFF,
	CurrentLine:  0x15FFFFFF,
}

// Color returns the color of s, falling back to the text color.
func (sc *Scheme) Color(s token.Style) ARGB {
	if c, ok := sc.Styles[s]; ok {
		return c
	}
	return sc.Styles[token.StyleText]
}

type Colors struct {
	Default    func(string, ...any) string
	LineNumber func(string, ...any) string
	Map        map[token.Style]func(string, ...any) string
}

// NewColors returns terminal colors for DefaultScheme.
func NewColors() *Colors {
	return NewSchemeColors(DefaultScheme)
}

func NewSchemeColors(sc *Scheme) *Colors {
	colors := &Colors{
		Default:    colorDefault,
		LineNumber: colorDefault,
		Map:        map[token.Style]func(string, ...any) string{},
	}
	r, g, b := sc.LineNumber.RGB()
	br, bg, bb := sc.LineNumberBg.RGB()
	colors.LineNumber = color.RGB(r, g, b).AddBgRGB(br, bg, bb).SprintfFunc()
	for _, s := range token.Styles() {
		// plain text keeps the terminal's own foreground
		if s == token.StyleText {
			continue
		}
		r, g, b := sc.Color(s).RGB()
		f := color.RGB(r, g, b).SprintfFunc()
		if s == token.StyleComment {
			f = color.RGB(r, g, b).Add(color.Italic).SprintfFunc()
		}
		colors.Map[s] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Get(s token.Style) func(string, ...any) string {
	f := c.Map[s]
	if f == nil {
		return c.Default
	}
	return f
}

func (c *Colors) Color(s token.Style, v string) string {
	return c.Get(s)(v)
}

// Gutter renders a right aligned line number of the given width.
func (c *Colors) Gutter(n, width int) string {
	f := c.LineNumber
	if f == nil {
		f = c.Default
	}
	return f(fmt.Sprintf("%*d ", width, n))
}

// HighlightLine colors line according to spans, which must partition it.
func (c *Colors) HighlightLine(line string, spans []token.Span) string {
	sb := &strings.Builder{}
	for _, sp := range spans {
		sb.WriteString(c.Color(sp.Style, sp.Text(line)))
	}
	return sb.String()
}

// Highlight tokenizes text line by line and colors it.
func (c *Colors) Highlight(text string) string {
	lines := token.SplitLines(text)
	spans := token.TokenizeLines(lines)
	for i, ln := range lines {
		lines[i] = c.HighlightLine(ln, spans[i])
	}
	return strings.Join(lines, "\n")
}
