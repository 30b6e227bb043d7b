package main

import (
	"fmt"

	"github.com/signadot/dts-format/go-dts/encode"
	"github.com/signadot/dts-format/go-dts/eval"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	prg, err := eval.Compile(args[0])
	if err != nil {
		return err
	}
	w := cc.Out
	first := true
	for _, file := range inputs(args[1:]) {
		root, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		nodes, err := eval.SelectProgram(root, prg)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", file, err)
		}
		for _, n := range nodes {
			if cfg.Paths {
				fmt.Fprintln(w, n.FullPath())
				continue
			}
			if !first {
				fmt.Fprintln(w)
			}
			first = false
			fmt.Fprintf(w, "// %s\n", n.FullPath())
			if err := encode.Encode(n, w, cfg.encOpts(w)...); err != nil {
				return err
			}
		}
	}
	return nil
}
