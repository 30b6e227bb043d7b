package chip

import (
	"fmt"
	"maps"
)

// StrategyKind selects how frequency tables are laid out in the device tree.
type StrategyKind int

const (
	// MultiBin trees carry one qcom,gpu-pwrlevels-N block per speed bin.
	MultiBin StrategyKind = iota
	// SingleBin trees carry a single qcom,gpu-pwrlevels block.
	SingleBin
)

func (k StrategyKind) String() string {
	switch k {
	case MultiBin:
		return "MULTI_BIN"
	case SingleBin:
		return "SINGLE_BIN"
	}
	return fmt.Sprintf("StrategyKind(%d)", int(k))
}

func (k StrategyKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *StrategyKind) UnmarshalText(d []byte) error {
	switch string(d) {
	case "MULTI_BIN":
		*k = MultiBin
	case "SINGLE_BIN":
		*k = SingleBin
	default:
		return fmt.Errorf("bad strategy %q", d)
	}
	return nil
}

type Definition struct {
	Variant Variant `yaml:"id"`
	// Description is a catalog key naming the chip family.
	Description string `yaml:"description"`
	// MaxTableLevels bounds the number of levels of one bin.
	MaxTableLevels int `yaml:"maxTableLevels"`
	// CombinedTable is set when frequency and voltage live in the same
	// pwrlevel entries, so there is no separate voltage table to edit.
	CombinedTable bool `yaml:"ignoreVoltTable"`
	// MinLevelOffset is how far above the end of a bin new bottom levels
	// are inserted. The level found there is the one copied.
	MinLevelOffset int          `yaml:"minLevelOffset"`
	Strategy       StrategyKind `yaml:"strategy"`
	// VoltTablePattern names the separate voltage table node, if any.
	VoltTablePattern string `yaml:"voltTablePattern,omitempty"`
	// LevelCount is the number of RPMh voltage corners.
	LevelCount int     `yaml:"levelCount"`
	Levels     Corners `yaml:"-"`
	// Bins maps speed bin indices to catalog keys, or to literal text when
	// LiteralBins is set.
	Bins        map[int]string `yaml:"bins,omitempty"`
	LiteralBins bool           `yaml:"literalBins,omitempty"`
	// CaTargetOffset is set when qcom,ca-target-pwrlevel must follow level
	// insertions and removals like qcom,initial-pwrlevel.
	CaTargetOffset bool `yaml:"needsCaTargetOffset,omitempty"`
}

func (d *Definition) Clone() *Definition {
	res := *d
	res.Bins = maps.Clone(d.Bins)
	return &res
}
