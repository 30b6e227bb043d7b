package table

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Bin is the frequency table of one speed bin.
type Bin struct {
	ID int
	// Header holds the trimmed statements of the bin outside its levels.
	Header []string
	Levels []*Level
}

func (b *Bin) Clone() *Bin {
	res := &Bin{ID: b.ID, Header: slices.Clone(b.Header)}
	for _, l := range b.Levels {
		res.Levels = append(res.Levels, l.Clone())
	}
	return res
}

// HeaderValue returns the value of the first header statement for key.
func (b *Bin) HeaderValue(key string) (int64, bool) {
	return findValue(b.Header, key)
}

// Level is one qcom,gpu-pwrlevel entry, without its reg statement.
type Level struct {
	Lines []string
}

func (l *Level) Clone() *Level {
	return &Level{Lines: slices.Clone(l.Lines)}
}

// Frequency returns qcom,gpu-freq in Hz, or -1.
func (l *Level) Frequency() int64 {
	v, ok := l.Value("qcom,gpu-freq")
	if !ok {
		return -1
	}
	return v
}

// VoltageLevel returns qcom,level or else qcom,cx-level, or -1.
func (l *Level) VoltageLevel() int {
	if v, ok := l.Value("qcom,level"); ok {
		return int(v)
	}
	if v, ok := l.Value("qcom,cx-level"); ok {
		return int(v)
	}
	return -1
}

// Value returns the numeric value of the first line mentioning key.
func (l *Level) Value(key string) (int64, bool) {
	return findValue(l.Lines, key)
}

// SetValue replaces the value of key, keeping the hex or decimal notation of
// the existing line. A missing key is appended in decimal.
func (l *Level) SetValue(key string, v int64) {
	for i, ln := range l.Lines {
		name, _, ok := strings.Cut(ln, "=")
		if !ok || strings.TrimSpace(name) != key {
			continue
		}
		_, hex, _ := lineValue(ln)
		l.Lines[i] = encodeLine(key, v, hex)
		return
	}
	l.Lines = append(l.Lines, encodeLine(key, v, false))
}

func encodeLine(key string, v int64, hex bool) string {
	if hex {
		return fmt.Sprintf("%s = <0x%x>;", key, v)
	}
	return fmt.Sprintf("%s = <%d>;", key, v)
}

func findValue(lines []string, key string) (int64, bool) {
	for _, ln := range lines {
		if !strings.Contains(ln, key) {
			continue
		}
		v, _, err := lineValue(ln)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	return 0, false
}

// lineValue reads the last cell of the <...> value of a statement.
func lineValue(line string) (int64, bool, error) {
	_, val, ok := strings.Cut(line, "=")
	if !ok {
		return 0, false, fmt.Errorf("no value in %q", line)
	}
	start := strings.IndexByte(val, '<')
	end := strings.IndexByte(val, '>')
	if start < 0 || end < start {
		return 0, false, fmt.Errorf("no cell array in %q", line)
	}
	cells := strings.Fields(val[start+1 : end])
	if len(cells) == 0 {
		return 0, false, fmt.Errorf("empty cell array in %q", line)
	}
	c := cells[len(cells)-1]
	if h, ok := strings.CutPrefix(c, "0x"); ok {
		v, err := strconv.ParseInt(h, 16, 64)
		return v, true, err
	}
	v, err := strconv.ParseInt(c, 10, 64)
	return v, false, err
}
