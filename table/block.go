package table

import (
	"fmt"
	"strconv"
	"strings"
)

// decodeBlock decodes the brace delimited block starting at lines[at].
func decodeBlock(lines []string, at int, bins []*Bin) ([]*Bin, int, error) {
	bracket := 0
	for i := at; i < len(lines); i++ {
		ln := strings.TrimSpace(lines[i])
		if strings.Contains(ln, "{") {
			bracket++
		}
		if strings.Contains(ln, "}") {
			bracket--
		}
		if bracket != 0 {
			continue
		}
		bin, err := decodeBin(lines[at:i+1], len(bins))
		if err != nil {
			return bins, 0, err
		}
		return append(bins, bin), i + 1 - at, nil
	}
	return bins, 0, fmt.Errorf("%w: starting at line %d", ErrUnterminatedBlock, at+1)
}

func decodeBin(lines []string, defaultID int) (*Bin, error) {
	bin := &Bin{ID: parseBinID(lines[0], defaultID), Header: []string{}}
	bracket, start := 0, 0
	for i := 1; i < len(lines) && bracket >= 0; i++ {
		ln := strings.TrimSpace(lines[i])
		switch {
		case ln == "":
		case strings.Contains(ln, "{"):
			if bracket != 0 {
				return nil, fmt.Errorf("%w: line %q", ErrNestedBlock, ln)
			}
			start = i
			bracket++
		case strings.Contains(ln, "}"):
			bracket--
			if bracket < 0 {
				continue
			}
			bin.Levels = append(bin.Levels, decodeLevel(lines[start:i+1]))
		case bracket == 0:
			bin.Header = append(bin.Header, ln)
		}
	}
	return bin, nil
}

func decodeLevel(lines []string) *Level {
	l := &Level{Lines: []string{}}
	for _, ln := range lines {
		ln = strings.TrimSpace(ln)
		if strings.ContainsAny(ln, "{}") || strings.Contains(ln, "reg") {
			continue
		}
		l.Lines = append(l.Lines, ln)
	}
	return l
}

// parseBinID takes the longest numeric suffix of the block's opening line,
// ignoring '-', as the bin id.
func parseBinID(line string, defaultID int) int {
	s := strings.ReplaceAll(strings.ReplaceAll(strings.TrimSpace(line), " {", ""), "-", "")
	id := defaultID
	for i := len(s) - 1; i >= 0; i-- {
		v, err := strconv.ParseInt(s[i:], 10, 32)
		if err != nil {
			break
		}
		id = int(v)
	}
	return id
}

func generateBinContent(bin *Bin, lines []string) []string {
	lines = append(lines, bin.Header...)
	for j, l := range bin.Levels {
		lines = append(lines,
			fmt.Sprintf("qcom,gpu-pwrlevel@%d {", j),
			fmt.Sprintf("reg = <%d>;", j))
		lines = append(lines, l.Lines...)
		lines = append(lines, "};")
	}
	return append(lines, "};")
}
