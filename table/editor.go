package table

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/dts-format/go-dts/chip"
	"github.com/signadot/dts-format/go-dts/debug"
)

// Editor holds a device tree as lines together with its decoded frequency
// table.
type Editor struct {
	variant  chip.Variant
	def      *chip.Definition
	strategy Strategy
	log      *slog.Logger

	lines []string
	bins  []*Bin
	pos   int
}

type EditorOption func(*Editor)

// WithLogger logs decode and edit steps at debug level.
func WithLogger(l *slog.Logger) EditorOption {
	return func(e *Editor) { e.log = l }
}

// WithRegistry uses r instead of the built in chip definitions.
func WithRegistry(r *chip.Registry) EditorOption {
	return func(e *Editor) {
		e.def, _ = r.Definition(e.variant)
		e.strategy, _ = ForRegistry(r, e.variant)
	}
}

// NewEditor returns an editor over a copy of lines. It fails with
// ErrUnsupportedChip when v has no table strategy.
func NewEditor(lines []string, v chip.Variant, opts ...EditorOption) (*Editor, error) {
	e := &Editor{
		variant: v,
		lines:   slices.Clone(lines),
		pos:     -1,
	}
	e.def, _ = chip.Default().Definition(v)
	e.strategy, _ = ForVariant(v)
	for _, o := range opts {
		o(e)
	}
	if e.strategy == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedChip, v)
	}
	return e, nil
}

func (e *Editor) Variant() chip.Variant        { return e.variant }
func (e *Editor) Definition() *chip.Definition { return e.def }

// Bins returns the decoded bins. They may be edited in place.
func (e *Editor) Bins() []*Bin { return e.bins }

// Position is the line index of the first table block, or -1.
func (e *Editor) Position() int { return e.pos }

// Lines returns the document without its table blocks once decoded.
func (e *Editor) Lines() []string { return e.lines }

func (e *Editor) logf(msg string, args ...any) {
	if e.log != nil {
		e.log.Debug(msg, args...)
	}
	if debug.Table() {
		debug.Logf("table: %s %v", msg, args)
	}
}

// Decode removes every table block from the lines and decodes it into
// bins. The index of the first block is kept as the insertion position.
// It returns ErrNoTable when there is no block.
func (e *Editor) Decode() error {
	for i := 0; i < len(e.lines); i++ {
		if !e.strategy.IsTableStart(strings.TrimSpace(e.lines[i])) {
			continue
		}
		if e.pos < 0 {
			e.pos = i
		}
		bins, n, err := e.strategy.Decode(e.lines, i, e.bins)
		if err != nil {
			return err
		}
		e.bins = bins
		e.lines = slices.Delete(e.lines, i, i+n)
		e.logf("decoded block", "line", i+1, "lines", n, "bins", len(e.bins))
		if n > 0 {
			i--
		}
	}
	if e.pos < 0 {
		return fmt.Errorf("%w for %s", ErrNoTable, e.variant)
	}
	if debug.Table() {
		debug.LogAny(e.bins)
	}
	return nil
}

// GenerateTable returns the table block for the current bins.
func (e *Editor) GenerateTable() []string {
	return e.strategy.GenerateTable(e.bins)
}

// GenerateFullDts returns a new line list with the generated table at the
// insertion position, or appended when no table was found.
func (e *Editor) GenerateFullDts() []string {
	table := e.GenerateTable()
	pos := len(e.lines)
	if e.pos >= 0 {
		pos = min(e.pos, len(e.lines))
	}
	res := make([]string, 0, len(e.lines)+len(table))
	res = append(res, e.lines[:pos]...)
	res = append(res, table...)
	return append(res, e.lines[pos:]...)
}

func (e *Editor) bin(i int) (*Bin, error) {
	if i < 0 || i >= len(e.bins) {
		return nil, fmt.Errorf("%w: bin %d of %d", ErrIndex, i, len(e.bins))
	}
	return e.bins[i], nil
}

func (e *Editor) canAdd(b *Bin) error {
	if e.def != nil && len(b.Levels) >= e.def.MaxTableLevels {
		return fmt.Errorf("%w: %s allows %d", ErrTooManyLevels, e.variant, e.def.MaxTableLevels)
	}
	if len(b.Levels) == 0 {
		return fmt.Errorf("%w: bin %d has no level to copy", ErrIndex, b.ID)
	}
	return nil
}

// AddLevelTop inserts a copy of the first level of bin i at the top and
// shifts the initial power level so it keeps pointing at the same entry.
func (e *Editor) AddLevelTop(i int) error {
	b, err := e.bin(i)
	if err != nil {
		return err
	}
	if err := e.canAdd(b); err != nil {
		return err
	}
	b.Levels = slices.Insert(b.Levels, 0, b.Levels[0].Clone())
	e.offsetPwrLevels(b, 1)
	e.logf("add level top", "bin", b.ID, "levels", len(b.Levels))
	return nil
}

// AddLevelBottom inserts a copy of the level MinLevelOffset entries above
// the end of bin i at that index, so the lowest levels stay last, and
// shifts the initial power level.
func (e *Editor) AddLevelBottom(i int) error {
	b, err := e.bin(i)
	if err != nil {
		return err
	}
	if err := e.canAdd(b); err != nil {
		return err
	}
	idx := len(b.Levels)
	if e.def != nil {
		idx -= e.def.MinLevelOffset
	}
	idx = min(max(idx, 0), len(b.Levels)-1)
	b.Levels = slices.Insert(b.Levels, idx, b.Levels[idx].Clone())
	e.offsetPwrLevels(b, 1)
	e.logf("add level bottom", "bin", b.ID, "at", idx, "levels", len(b.Levels))
	return nil
}

// DuplicateLevel inserts a copy of level j of bin i right after it.
func (e *Editor) DuplicateLevel(i, j int) error {
	b, err := e.bin(i)
	if err != nil {
		return err
	}
	if j < 0 || j >= len(b.Levels) {
		return fmt.Errorf("%w: level %d of %d", ErrIndex, j, len(b.Levels))
	}
	if err := e.canAdd(b); err != nil {
		return err
	}
	b.Levels = slices.Insert(b.Levels, j+1, b.Levels[j].Clone())
	e.offsetPwrLevels(b, 1)
	e.logf("duplicate level", "bin", b.ID, "level", j)
	return nil
}

// RemoveLevel removes level j of bin i. The last level cannot be removed.
func (e *Editor) RemoveLevel(i, j int) error {
	b, err := e.bin(i)
	if err != nil {
		return err
	}
	if j < 0 || j >= len(b.Levels) {
		return fmt.Errorf("%w: level %d of %d", ErrIndex, j, len(b.Levels))
	}
	if len(b.Levels) <= 1 {
		return ErrTooFewLevels
	}
	b.Levels = slices.Delete(b.Levels, j, j+1)
	e.offsetPwrLevels(b, -1)
	e.logf("remove level", "bin", b.ID, "level", j)
	return nil
}

// SetLevelValue sets key of level j of bin i to v. Voltage levels must lie
// within the corner count of the chip.
func (e *Editor) SetLevelValue(i, j int, key string, v int64) error {
	b, err := e.bin(i)
	if err != nil {
		return err
	}
	if j < 0 || j >= len(b.Levels) {
		return fmt.Errorf("%w: level %d of %d", ErrIndex, j, len(b.Levels))
	}
	switch key {
	case "qcom,level", "qcom,cx-level":
		if e.def != nil && (v < 1 || v > int64(e.def.LevelCount)) {
			return fmt.Errorf("%w: %d not in 1..%d", ErrVoltageLevel, v, e.def.LevelCount)
		}
	}
	b.Levels[j].SetValue(key, v)
	e.logf("set level value", "bin", b.ID, "level", j, "key", key, "value", v)
	return nil
}

// PatchThrottleLevel sets qcom,throttle-pwrlevel to 0 in every bin.
func (e *Editor) PatchThrottleLevel() {
	for _, b := range e.bins {
		for i, h := range b.Header {
			if !strings.Contains(h, "qcom,throttle-pwrlevel") {
				continue
			}
			name, _, _ := strings.Cut(h, "=")
			b.Header[i] = strings.TrimSpace(name) + " = <0>;"
			break
		}
	}
}

var pwrLevelRe = regexp.MustCompile(`(qcom,(?:initial|ca-target)-pwrlevel\s*=\s*<)(0x[0-9a-fA-F]+|\d+)(>;)`)

func (e *Editor) offsetPwrLevels(b *Bin, off int) {
	offsetHeaderValue(b.Header, "qcom,initial-pwrlevel", off)
	if e.def != nil && e.def.CaTargetOffset {
		offsetHeaderValue(b.Header, "qcom,ca-target-pwrlevel", off)
	}
}

// offsetHeaderValue adds off to the first key statement of header, clamped
// at 0, keeping its hex or decimal notation.
func offsetHeaderValue(header []string, key string, off int) {
	for i, h := range header {
		if !strings.Contains(h, key) {
			continue
		}
		m := pwrLevelRe.FindStringSubmatch(h)
		if m == nil {
			continue
		}
		var (
			v   int64
			err error
		)
		hex, isHex := strings.CutPrefix(m[2], "0x")
		if isHex {
			v, err = strconv.ParseInt(hex, 16, 64)
		} else {
			v, err = strconv.ParseInt(m[2], 10, 64)
		}
		if err != nil {
			continue
		}
		v = max(v+int64(off), 0)
		val := strconv.FormatInt(v, 10)
		if isHex {
			val = "0x" + strconv.FormatInt(v, 16)
		}
		header[i] = m[1] + val + m[3]
		return
	}
}
