package token

import "fmt"

type Style int

const (
	StyleText Style = iota
	StyleComment
	StyleKeyword
	StyleString
	StyleNumber
	StyleProperty
	StylePreprocessor
	StyleBracket
	StyleNode
	StyleOperator
	StylePhandle
)

var styleNames = [...]string{
	StyleText:         "text",
	StyleComment:      "comment",
	StyleKeyword:      "keyword",
	StyleString:       "string",
	StyleNumber:       "number",
	StyleProperty:     "property",
	StylePreprocessor: "preprocessor",
	StyleBracket:      "bracket",
	StyleNode:         "node",
	StyleOperator:     "operator",
	StylePhandle:      "phandle",
}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

// Styles returns all styles in declaration order.
func Styles() []Style {
	return []Style{
		StyleText, StyleComment, StyleKeyword, StyleString, StyleNumber,
		StyleProperty, StylePreprocessor, StyleBracket, StyleNode,
		StyleOperator, StylePhandle,
	}
}

// Span is a half open byte range [Start, End) of one line rendered in Style.
type Span struct {
	Start int
	End   int
	Style Style
}

func (s Span) Len() int { return s.End - s.Start }

func (s Span) String() string {
	return fmt.Sprintf("%s[%d:%d]", s.Style, s.Start, s.End)
}

// Text returns the part of line covered by s.
func (s Span) Text(line string) string {
	return line[s.Start:s.End]
}
