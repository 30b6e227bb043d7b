package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/dts-format/go-dts/encode"
	"github.com/signadot/dts-format/go-dts/token"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	files := inputs(args)
	for i, file := range files {
		d, err := readInput(cc, file)
		if err != nil {
			return fmt.Errorf("could not read %q: %w", file, err)
		}
		if err := viewSource(cfg, cc.Out, string(d)); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if err := writeSep(cc.Out, i, len(files)); err != nil {
			return err
		}
	}
	return nil
}

// viewSource writes src as is, colored by the tokenizer rather than
// regenerated, so comments and layout survive.
func viewSource(cfg *ViewConfig, w io.Writer, src string) error {
	colors := cfg.colors(w)
	if colors == nil {
		colors = &encode.Colors{Default: func(v string, _ ...any) string { return v }}
	}
	lines := token.SplitLines(strings.TrimSuffix(src, "\n"))
	width := len(strconv.Itoa(len(lines)))
	tk := token.NewTokenizer()
	sb := &strings.Builder{}
	for i, ln := range lines {
		if cfg.LineNumbers {
			sb.WriteString(colors.Gutter(i+1, width))
		}
		sb.WriteString(colors.HighlightLine(ln, tk.Tokenize(ln)))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
