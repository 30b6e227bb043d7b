package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	}
	return " "
}

// Change is a run of lines with the same Op.
type Change struct {
	Op    Op
	Lines []string
}

// Lines diffs from and to line by line.
func Lines(from, to []string) []Change {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(joinLines(from), joinLines(to))
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	res := make([]Change, 0, len(diffs))
	for _, d := range diffs {
		c := Change{Lines: splitLines(d.Text)}
		switch d.Type {
		case diffpatch.DiffInsert:
			c.Op = Insert
		case diffpatch.DiffDelete:
			c.Op = Delete
		case diffpatch.DiffEqual:
			c.Op = Equal
		}
		if len(c.Lines) == 0 {
			continue
		}
		res = append(res, c)
	}
	return res
}

// Strings diffs two texts line by line.
func Strings(from, to string) []Change {
	return Lines(splitLines(from), splitLines(to))
}

// Changed reports whether changes contain an insertion or deletion.
func Changed(changes []Change) bool {
	for _, c := range changes {
		if c.Op != Equal {
			return true
		}
	}
	return false
}

// every line is newline terminated so that a missing final newline does not
// show up as a change of the last line.
func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
