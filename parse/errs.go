package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/dts-format/go-dts/ir"
	"github.com/signadot/dts-format/go-dts/token"
)

var (
	ErrUnclosedNode = fmt.Errorf("%w: unclosed node", ir.ErrParse)
	ErrStrayClose   = fmt.Errorf("%w: '}' without open node", ir.ErrParse)
	ErrTrailingText = fmt.Errorf("%w: unterminated statement", ir.ErrParse)
)

// ParseErr is a strict mode parse error positioned in the original text.
type ParseErr struct {
	Err error
	Pos token.Pos
}

func NewParseErr(e error, p token.Pos) *ParseErr {
	return &ParseErr{Err: e, Pos: p}
}

func (e *ParseErr) Unwrap() error {
	return e.Err
}

func (e *ParseErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

// Position returns the position carried by err, if any.
func Position(err error) (token.Pos, bool) {
	var pe *ParseErr
	if errors.As(err, &pe) {
		return pe.Pos, true
	}
	return token.Pos{}, false
}
