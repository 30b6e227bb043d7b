package table

import "errors"

var (
	ErrUnsupportedChip   = errors.New("unsupported chip")
	ErrNoTable           = errors.New("no frequency table found")
	ErrUnterminatedBlock = errors.New("unterminated table block")
	ErrNestedBlock       = errors.New("nested bracket in table level")
	ErrIndex             = errors.New("index out of range")
	ErrTooManyLevels     = errors.New("too many levels")
	ErrTooFewLevels      = errors.New("bin needs at least one level")
	ErrVoltageLevel      = errors.New("voltage level out of range")
	ErrNoVoltTable       = errors.New("no voltage table")
)
