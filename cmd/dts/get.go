package main

import (
	"fmt"
	"io"

	"github.com/signadot/dts-format/go-dts/encode"
	"github.com/signadot/dts-format/go-dts/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a node path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	for _, file := range inputs(args[1:]) {
		root, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := getNode(cfg, cc.Out, root, path); err != nil {
			return fmt.Errorf("error getting %s from %s: %w", path, file, err)
		}
	}
	return nil
}

func getNode(cfg *GetConfig, w io.Writer, root *ir.Node, path string) error {
	node, err := root.Get(path)
	if err != nil {
		return err
	}
	if cfg.Prop == "" {
		return encode.Encode(node, w, cfg.encOpts(w)...)
	}
	p := node.Property(cfg.Prop)
	if p == nil {
		return fmt.Errorf("%w: property %q in %s", ir.ErrNotFound, cfg.Prop, path)
	}
	v := p.DisplayValue()
	if cfg.Raw {
		v = p.Value
	}
	_, err = fmt.Fprintln(w, v)
	return err
}
