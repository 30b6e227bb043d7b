package main

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/signadot/dts-format/go-dts/encode"
	"github.com/signadot/dts-format/go-dts/format"
	"github.com/signadot/dts-format/go-dts/ir"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Prop == "" {
		return fmt.Errorf("%w: set requires -p property", cli.ErrUsage)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: set requires a node path", cli.ErrUsage)
	}
	path, args := args[0], args[1:]
	value := ""
	if !cfg.Delete {
		if len(args) == 0 {
			return fmt.Errorf("%w: set requires a value", cli.ErrUsage)
		}
		value, args = args[0], args[1:]
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: set takes at most one file", cli.ErrUsage)
	}
	file := "-"
	if len(args) == 1 {
		file = args[0]
	}
	if cfg.Write && file == "-" {
		return fmt.Errorf("%w: -w requires a file", cli.ErrUsage)
	}
	root, err := getObjFile(cc, file, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	if err := setProperty(cfg, root, path, value); err != nil {
		return err
	}
	if cfg.Write {
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(root, buf, encode.EncodeFormat(format.DTSFormat)); err != nil {
			return err
		}
		return os.WriteFile(file, buf.Bytes(), 0644)
	}
	return encode.Encode(root, cc.Out, cfg.encOpts(cc.Out)...)
}

func setProperty(cfg *SetConfig, root *ir.Node, path, value string) error {
	node, err := root.Get(path)
	if err != nil {
		return err
	}
	if cfg.Delete {
		if !node.RemoveProperty(cfg.Prop) {
			return fmt.Errorf("%w: property %q in %s", ir.ErrNotFound, cfg.Prop, path)
		}
		return nil
	}
	p := node.Property(cfg.Prop)
	if p == nil {
		raw := value
		if !cfg.Raw && decimalCells(value) {
			raw = ir.FromDisplay(value)
		}
		node.AddProperty(ir.NewProperty(cfg.Prop, raw))
		return nil
	}
	if cfg.Raw {
		p.SetRaw(value)
		return nil
	}
	p.SetDisplayValue(value)
	return nil
}

// decimalCells reports whether v is a non empty list of decimal integers.
func decimalCells(v string) bool {
	cells := strings.Fields(v)
	for _, c := range cells {
		if _, err := strconv.ParseInt(c, 10, 64); err == nil {
			continue
		}
		if _, err := strconv.ParseUint(c, 10, 64); err != nil {
			return false
		}
	}
	return len(cells) > 0
}
