package table

const singleBinStart = "qcom,gpu-pwrlevels {"

// SingleBin handles trees with one qcom,gpu-pwrlevels block.
type SingleBin struct{}

func (SingleBin) IsTableStart(line string) bool {
	return line == singleBinStart
}

func (SingleBin) Decode(lines []string, at int, bins []*Bin) ([]*Bin, int, error) {
	return decodeBlock(lines, at, bins)
}

// GenerateTable writes only the first bin.
func (SingleBin) GenerateTable(bins []*Bin) []string {
	if len(bins) == 0 {
		return nil
	}
	return generateBinContent(bins[0], []string{singleBinStart})
}
