package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/signadot/dts-format/go-dts/chip"

	"github.com/scott-cotton/cli"
)

func chips(cfg *ChipsConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Chip.Parse(cc, args)
	if err != nil {
		return err
	}
	reg, cat, err := loadChips(cfg.Chips, cfg.Catalog)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(cc.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VARIANT\tFAMILY\tSTRATEGY\tMAX LEVELS\tBINS")
	for _, v := range chip.Variants() {
		d, ok := reg.Definition(v)
		if !ok || v == chip.Unknown {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n", v, cat.Description(reg, v), d.Strategy, d.MaxTableLevels, len(d.Bins))
	}
	return tw.Flush()
}
