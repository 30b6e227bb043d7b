package table

import (
	"fmt"
	"strings"
)

// MultiBin handles trees with one qcom,gpu-pwrlevels-N block per speed bin.
type MultiBin struct{}

func (MultiBin) IsTableStart(line string) bool {
	return strings.Contains(line, "qcom,gpu-pwrlevels-") &&
		!strings.Contains(line, "compatible = ") &&
		!strings.Contains(line, "qcom,gpu-pwrlevel-bins")
}

func (MultiBin) Decode(lines []string, at int, bins []*Bin) ([]*Bin, int, error) {
	return decodeBlock(lines, at, bins)
}

func (MultiBin) GenerateTable(bins []*Bin) []string {
	var lines []string
	for _, b := range bins {
		lines = append(lines, fmt.Sprintf("qcom,gpu-pwrlevels-%d {", b.ID))
		lines = generateBinContent(b, lines)
	}
	return lines
}
