package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/dts-format/go-dts/encode"
	"github.com/signadot/dts-format/go-dts/format"

	"github.com/scott-cotton/cli"
)

func fmtCmd(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires files", cli.ErrUsage)
	}
	files := inputs(args)
	for i, file := range files {
		node, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if cfg.Write {
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(node, buf, encode.EncodeFormat(cfg.outFormat())); err != nil {
				return err
			}
			if err := os.WriteFile(file, buf.Bytes(), 0644); err != nil {
				return err
			}
			continue
		}
		if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		if cfg.outFormat() == format.DTSFormat {
			if err := writeSep(cc.Out, i, len(files)); err != nil {
				return err
			}
		}
	}
	return nil
}

