package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/signadot/dts-format/go-dts/chip"
	"github.com/signadot/dts-format/go-dts/debug"
	"github.com/signadot/dts-format/go-dts/table"
	"github.com/signadot/dts-format/go-dts/token"

	"github.com/scott-cotton/cli"
)

func tableCmd(cfg *TableConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Table.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Chip == "" {
		return fmt.Errorf("%w: table requires -chip", cli.ErrUsage)
	}
	v, err := chip.ParseVariant(cfg.Chip)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: table takes at most one file", cli.ErrUsage)
	}
	file := "-"
	if len(args) == 1 {
		file = args[0]
	}
	reg, cat, err := loadChips(cfg.Chips, cfg.Catalog)
	if err != nil {
		return err
	}
	d, err := readInput(cc, file)
	if err != nil {
		return err
	}
	lines := token.SplitLines(strings.TrimSuffix(string(d), "\n"))
	opts := []table.EditorOption{table.WithRegistry(reg)}
	if debug.Table() {
		opts = append(opts, table.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}
	ed, err := table.NewEditor(lines, v, opts...)
	if err != nil {
		return err
	}
	if err := ed.Decode(); err != nil {
		return fmt.Errorf("error decoding table in %s: %w%s", file, err, equivalentHint(v, err))
	}
	edited, err := editTable(cfg, ed)
	if err != nil {
		return err
	}
	w := cc.Out
	switch {
	case cfg.Volt:
		return listVoltTable(w, ed)
	case cfg.ShowDiff:
		_, err := writeDiff(cfg.MainConfig, w, file, file, lines, ed.GenerateFullDts(), 3)
		return err
	case cfg.Regen || edited:
		out := strings.Join(ed.GenerateFullDts(), "\n") + "\n"
		if c := cfg.colors(w); c != nil {
			out = c.Highlight(out)
		}
		_, err := io.WriteString(w, out)
		return err
	}
	return listBins(w, reg, cat, ed)
}

// equivalentHint names the other layouts of v's family when no table of
// v's layout was found.
func equivalentHint(v chip.Variant, err error) string {
	if !errors.Is(err, table.ErrNoTable) {
		return ""
	}
	var names []string
	for _, o := range chip.Equivalents(v) {
		names = append(names, o.String())
	}
	if len(names) == 0 {
		return ""
	}
	return " (try -chip " + strings.Join(names, " or -chip ") + ")"
}

func loadChips(chipsFile, catalogFile string) (*chip.Registry, chip.Catalog, error) {
	reg := chip.NewRegistry()
	if chipsFile != "" {
		f, err := os.Open(chipsFile)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		if err := reg.Load(f); err != nil {
			return nil, nil, fmt.Errorf("error loading %s: %w", chipsFile, err)
		}
	}
	cat := chip.DefaultCatalog()
	if catalogFile != "" {
		f, err := os.Open(catalogFile)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		cat, err = chip.LoadCatalog(f)
		if err != nil {
			return nil, nil, fmt.Errorf("error loading %s: %w", catalogFile, err)
		}
	}
	return reg, cat, nil
}

// editTable applies the level edits requested in cfg and reports whether
// any was requested.
func editTable(cfg *TableConfig, ed *table.Editor) (bool, error) {
	edited := false
	if cfg.AddTop >= 0 {
		if err := ed.AddLevelTop(cfg.AddTop); err != nil {
			return false, err
		}
		edited = true
	}
	if cfg.AddBottom >= 0 {
		if err := ed.AddLevelBottom(cfg.AddBottom); err != nil {
			return false, err
		}
		edited = true
	}
	if cfg.Dup != "" {
		i, j, err := binLevel(cfg.Dup)
		if err != nil {
			return false, err
		}
		if err := ed.DuplicateLevel(i, j); err != nil {
			return false, err
		}
		edited = true
	}
	if cfg.Remove != "" {
		i, j, err := binLevel(cfg.Remove)
		if err != nil {
			return false, err
		}
		if err := ed.RemoveLevel(i, j); err != nil {
			return false, err
		}
		edited = true
	}
	if cfg.Throttle {
		ed.PatchThrottleLevel()
		edited = true
	}
	if cfg.Set != "" {
		if err := setLevelValue(ed, cfg.Set); err != nil {
			return false, err
		}
		edited = true
	}
	return edited, nil
}

// setLevelValue applies a bin:level:key=value assignment.
func setLevelValue(ed *table.Editor, s string) error {
	loc, val, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("%w: expected bin:level:key=value, got %q", cli.ErrUsage, s)
	}
	parts := strings.SplitN(loc, ":", 3)
	if len(parts) != 3 || strings.TrimSpace(parts[2]) == "" {
		return fmt.Errorf("%w: expected bin:level:key=value, got %q", cli.ErrUsage, s)
	}
	i, j, err := binLevel(parts[0] + ":" + parts[1])
	if err != nil {
		return err
	}
	v, err := strconv.ParseInt(strings.TrimSpace(val), 0, 64)
	if err != nil {
		return fmt.Errorf("%w: bad value %q", cli.ErrUsage, val)
	}
	return ed.SetLevelValue(i, j, strings.TrimSpace(parts[2]), v)
}

func binLevel(s string) (int, int, error) {
	b, l, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: expected bin:level, got %q", cli.ErrUsage, s)
	}
	i, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad bin %q", cli.ErrUsage, b)
	}
	j, err := strconv.Atoi(l)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad level %q", cli.ErrUsage, l)
	}
	return i, j, nil
}

func listBins(w io.Writer, reg *chip.Registry, cat chip.Catalog, ed *table.Editor) error {
	v := ed.Variant()
	fmt.Fprintf(w, "%s (%s), table at line %d\n", v, cat.Description(reg, v), ed.Position()+1)
	for i, b := range ed.Bins() {
		fmt.Fprintf(w, "bin %d: %s", i, cat.Label(reg.Lookup(v, b.ID)))
		if lvl, ok := b.HeaderValue("qcom,initial-pwrlevel"); ok {
			fmt.Fprintf(w, ", initial level %d", lvl)
		}
		fmt.Fprintln(w)
		for j, l := range b.Levels {
			freq := "-"
			if f := l.Frequency(); f >= 0 {
				freq = strconv.FormatFloat(float64(f)/1e6, 'f', -1, 64) + " MHz"
			}
			volt := "-"
			if vl := l.VoltageLevel(); vl >= 0 {
				volt = reg.LevelName(v, vl)
			}
			fmt.Fprintf(w, "  level %d: %s, %s\n", j, freq, volt)
		}
	}
	return nil
}

func listVoltTable(w io.Writer, ed *table.Editor) error {
	opps, err := ed.VoltTable()
	if err != nil {
		return err
	}
	for _, o := range opps {
		fmt.Fprintf(w, "%s MHz: %d uV\n", strconv.FormatFloat(float64(o.Frequency)/1e6, 'f', -1, 64), o.Microvolt)
	}
	return nil
}
