package table

import (
	"fmt"

	"github.com/signadot/dts-format/go-dts/chip"
)

// Strategy knows how the frequency table of a chip family is laid out.
type Strategy interface {
	// IsTableStart reports whether a trimmed line opens a table block.
	IsTableStart(line string) bool
	// Decode reads the block starting at lines[at], appends its bin to bins
	// and reports how many lines it spans. It does not modify lines.
	Decode(lines []string, at int, bins []*Bin) ([]*Bin, int, error)
	// GenerateTable returns the complete replacement block for bins.
	GenerateTable(bins []*Bin) []string
}

// ForVariant returns the strategy of v using the built in definitions.
func ForVariant(v chip.Variant) (Strategy, error) {
	return ForRegistry(chip.Default(), v)
}

// ForRegistry returns the strategy r defines for v. Unknown and invalid
// variants have no strategy.
func ForRegistry(r *chip.Registry, v chip.Variant) (Strategy, error) {
	d, ok := r.Definition(v)
	if !ok || v == chip.Unknown {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedChip, v)
	}
	switch d.Strategy {
	case chip.SingleBin:
		return SingleBin{}, nil
	case chip.MultiBin:
		return MultiBin{}, nil
	}
	return nil, fmt.Errorf("%w: %s has strategy %s", ErrUnsupportedChip, v, d.Strategy)
}
