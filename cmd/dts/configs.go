package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/dts-format/go-dts/encode"
	"github.com/signadot/dts-format/go-dts/format"
	"github.com/signadot/dts-format/go-dts/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Strict bool `cli:"name=strict desc='fail on unbalanced braces and trailing text'"`

	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.Strict {
		return []parse.ParseOption{parse.ParseStrict()}
	}
	return nil
}

func (cfg *MainConfig) outFormat() format.Format {
	f := format.DTSFormat
	switch {
	case cfg.Y:
		f = format.YAMLFormat
	case cfg.J:
		f = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

// colors is nil unless color was requested with -color or w is a
// terminal and -color was not given explicitly.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			if opt.Value != nil {
				return nil
			}
			break
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	f := cfg.outFormat()
	res := []encode.EncodeOption{encode.EncodeFormat(f)}
	if !f.IsDTS() {
		return res
	}
	if c := cfg.colors(w); c != nil {
		res = append(res, encode.EncodeColors(c))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	LineNumbers bool `cli:"name=n desc='show line numbers'"`
	View        *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='write result to source files'"`
	Fmt   *cli.Command
}

type GetConfig struct {
	*MainConfig

	Prop string `cli:"name=p aliases=prop desc='property to get'"`
	Raw  bool   `cli:"name=raw desc='show raw property values'"`
	Get  *cli.Command
}

type SetConfig struct {
	*MainConfig

	Prop   string `cli:"name=p aliases=prop desc='property to set'"`
	Raw    bool   `cli:"name=raw desc='value is raw DTS rather than display form'"`
	Delete bool   `cli:"name=d aliases=delete desc='delete the property'"`
	Write  bool   `cli:"name=w desc='write result to the source file'"`
	Set    *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Paths bool `cli:"name=p aliases=paths desc='only print node paths'"`
	Query *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Merge bool   `cli:"name=m aliases=merge desc='patch is an RFC 7386 merge patch'"`
	File  string `cli:"name=f desc='read the patch from a file'"`
	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Context int  `cli:"name=U desc='lines of context'"`
	Merge   bool `cli:"name=m aliases=merge desc='output a merge patch instead of a line diff'"`
	Diff    *cli.Command
}

type TableConfig struct {
	*MainConfig

	Chip     string `cli:"name=chip desc='chip variant, see the chips command'"`
	Chips    string `cli:"name=chips desc='yaml file of chip definition overrides'"`
	Catalog  string `cli:"name=labels desc='yaml label catalog'"`
	Regen    bool   `cli:"name=regen desc='output the document with a regenerated table'"`
	ShowDiff bool   `cli:"name=diff desc='output a diff against the input instead of the document'"`

	AddTop    int    `cli:"name=add-top desc='add a level at the top of bin N'"`
	AddBottom int    `cli:"name=add-bottom desc='add a level at the bottom of bin N'"`
	Dup       string `cli:"name=dup desc='duplicate level bin:level'"`
	Remove    string `cli:"name=rm desc='remove level bin:level'"`
	Throttle  bool   `cli:"name=throttle desc='point the throttle level at the last level'"`
	Set       string `cli:"name=set desc='set a level value, bin:level:key=value'"`
	Volt      bool   `cli:"name=volt desc='list the voltage table'"`

	Table *cli.Command
}

type ChipsConfig struct {
	*MainConfig

	Chips   string `cli:"name=chips desc='yaml file of chip definition overrides'"`
	Catalog string `cli:"name=labels desc='yaml label catalog'"`
	Chip    *cli.Command
}
