package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/dts-format/go-dts/encode"
	"github.com/signadot/dts-format/go-dts/ir"
	"github.com/signadot/dts-format/go-dts/libdiff"
	"github.com/signadot/dts-format/go-dts/patch"
	"github.com/signadot/dts-format/go-dts/token"

	"github.com/scott-cotton/cli"
)

func diffCmd(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := diffNodes(cfg, cc.Out, args[0], args[1], a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffNodes(cfg *DiffConfig, w io.Writer, aName, bName string, a, b *ir.Node) (bool, error) {
	if cfg.Merge {
		if patch.Equal(a, b) {
			return false, nil
		}
		d, err := patch.Diff(a, b)
		if err != nil {
			return false, err
		}
		_, err = fmt.Fprintf(w, "%s\n", d)
		return true, err
	}
	aLines := token.SplitLines(encode.Generate(a))
	bLines := token.SplitLines(encode.Generate(b))
	return writeDiff(cfg.MainConfig, w, aName, bName, aLines, bLines, cfg.Context)
}

func writeDiff(cfg *MainConfig, w io.Writer, aName, bName string, a, b []string, context int) (bool, error) {
	d := libdiff.Unified(aName, bName, a, b, context)
	if d == "" {
		return false, nil
	}
	if c := cfg.colors(w); c != nil {
		d = colorDiff(c, d)
	}
	_, err := io.WriteString(w, d)
	return true, err
}

// colorDiff colors removed and added lines like comments and strings.
func colorDiff(c *encode.Colors, d string) string {
	lines := token.SplitLines(strings.TrimSuffix(d, "\n"))
	for i, ln := range lines {
		switch {
		case len(ln) == 0:
		case ln[0] == '-':
			lines[i] = c.Color(token.StyleString, ln)
		case ln[0] == '+':
			lines[i] = c.Color(token.StyleComment, ln)
		case ln[0] == '@':
			lines[i] = c.Color(token.StyleKeyword, ln)
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
