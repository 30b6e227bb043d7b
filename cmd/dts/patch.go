package main

import (
	"fmt"
	"os"

	"github.com/signadot/dts-format/go-dts/encode"
	"github.com/signadot/dts-format/go-dts/patch"

	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var p []byte
	if cfg.File != "" {
		p, err = os.ReadFile(cfg.File)
		if err != nil {
			return err
		}
	} else {
		if len(args) == 0 {
			return fmt.Errorf("%w: patch requires a patch argument or -f", cli.ErrUsage)
		}
		p = []byte(args[0])
		args = args[1:]
	}
	apply := patch.Apply
	if cfg.Merge {
		apply = patch.Merge
	}
	files := inputs(args)
	for i, file := range files {
		root, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res, err := apply(root, p)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		if err := writeSep(cc.Out, i, len(files)); err != nil {
			return err
		}
	}
	return nil
}
