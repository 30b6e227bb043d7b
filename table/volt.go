package table

import (
	"fmt"
	"strconv"
	"strings"
)

// Opp is one operating point of the separate voltage table.
type Opp struct {
	Frequency int64
	Microvolt int64
}

// VoltTable reads the operating points of the first node whose opening
// line contains the chip's voltage table pattern. Entries lacking either
// opp-hz or opp-microvolt are skipped.
func (e *Editor) VoltTable() ([]Opp, error) {
	if e.def == nil || e.def.CombinedTable || e.def.VoltTablePattern == "" {
		return nil, fmt.Errorf("%w for %s", ErrNoVoltTable, e.variant)
	}
	pattern := e.def.VoltTablePattern
	for i := 0; i < len(e.lines); i++ {
		t := strings.TrimSpace(e.lines[i])
		if !strings.Contains(t, pattern) || !strings.HasSuffix(t, "{") {
			continue
		}
		opps := scanOpps(e.lines[i+1:])
		e.logf("volt table", "line", i+1, "opps", len(opps))
		return opps, nil
	}
	return nil, fmt.Errorf("%w: %q not found", ErrNoVoltTable, pattern)
}

func scanOpps(lines []string) []Opp {
	var res []Opp
	var freq, uv int64
	var hasF, hasV bool
	depth := 1
	for _, ln := range lines {
		t := strings.TrimSpace(ln)
		depth += strings.Count(t, "{")
		if strings.Contains(t, "opp-hz") {
			freq, hasF = cellsValue(t)
		}
		if strings.Contains(t, "opp-microvolt") {
			uv, hasV = cellsValue(t)
		}
		if n := strings.Count(t, "}"); n > 0 {
			depth -= n
			if hasF && hasV {
				res = append(res, Opp{Frequency: freq, Microvolt: uv})
			}
			hasF, hasV = false, false
			if depth <= 0 {
				break
			}
		}
	}
	return res
}

// cellsValue reads the first <...> of a statement as one number. Multiple
// cells are big endian 32 bit parts.
func cellsValue(line string) (int64, bool) {
	start := strings.IndexByte(line, '<')
	end := strings.IndexByte(line, '>')
	if start < 0 || end < start {
		return 0, false
	}
	cells := strings.Fields(line[start+1 : end])
	if len(cells) == 0 {
		return 0, false
	}
	if len(cells) == 1 {
		v, err := strconv.ParseUint(cells[0], 0, 64)
		return int64(v), err == nil
	}
	var v uint64
	for _, c := range cells {
		n, err := strconv.ParseUint(c, 0, 32)
		if err != nil {
			return 0, false
		}
		v = v<<32 | n
	}
	return int64(v), true
}
