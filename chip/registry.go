package chip

import (
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-yaml"
)

// Label is the outcome of a speed bin lookup.
type Label struct {
	Bin int
	// Key is a catalog key, or literal text when Literal is set. It is
	// empty when the bin is not mapped.
	Key     string
	Literal bool
}

func (l Label) Known() bool {
	return l.Key != ""
}

// String is the key or literal text, or "unknown table N" for unmapped
// bins.
func (l Label) String() string {
	if l.Key == "" {
		return UnknownTable + strconv.Itoa(l.Bin)
	}
	return l.Key
}

// UnknownTable prefixes the label of unmapped bins.
const UnknownTable = "unknown table "

type Registry struct {
	defs map[Variant]*Definition
}

// NewRegistry returns a registry holding the built in definitions.
func NewRegistry() *Registry {
	r := &Registry{defs: map[Variant]*Definition{}}
	for _, d := range builtin() {
		r.defs[d.Variant] = d
	}
	return r
}

var defaultRegistry = NewRegistry()

// Default returns the registry used by the package level functions.
func Default() *Registry {
	return defaultRegistry
}

// Definition returns the definition of v. Invalid variants yield the
// definition of Unknown and false.
func (r *Registry) Definition(v Variant) (*Definition, bool) {
	d, ok := r.defs[v]
	if !ok {
		return r.defs[Unknown], false
	}
	return d, true
}

// Lookup maps a speed bin of v to its label. It never fails: variants and
// bins without a mapping give an unknown Label.
func (r *Registry) Lookup(v Variant, bin int) Label {
	res := Label{Bin: bin}
	d, ok := r.defs[v]
	if !ok {
		return res
	}
	res.Key = d.Bins[bin]
	res.Literal = d.LiteralBins && res.Key != ""
	return res
}

func (r *Registry) LabelFor(v Variant, bin int) string {
	return r.Lookup(v, bin).String()
}

type override struct {
	ID               string         `yaml:"id"`
	Description      *string        `yaml:"description"`
	MaxTableLevels   *int           `yaml:"maxTableLevels"`
	CombinedTable    *bool          `yaml:"ignoreVoltTable"`
	MinLevelOffset   *int           `yaml:"minLevelOffset"`
	Strategy         *string        `yaml:"strategy"`
	VoltTablePattern *string        `yaml:"voltTablePattern"`
	LevelCount       *int           `yaml:"levelCount"`
	Bins             map[int]string `yaml:"bins"`
	LiteralBins      *bool          `yaml:"literalBins"`
	CaTargetOffset   *bool          `yaml:"needsCaTargetOffset"`
}

type overrideFile struct {
	Chips []override `yaml:"chips"`
}

// Load applies YAML overrides of the form
//
//	chips:
//	- id: kona
//	  maxTableLevels: 12
//	  bins:
//	    4: sd870
//
// Only the fields present are changed; bins are merged. Definitions held
// by callers are not modified.
func (r *Registry) Load(rd io.Reader) error {
	d, err := io.ReadAll(rd)
	if err != nil {
		return err
	}
	f := &overrideFile{}
	if err := yaml.Unmarshal(d, f); err != nil {
		return fmt.Errorf("chip overrides: %w", err)
	}
	for i := range f.Chips {
		o := &f.Chips[i]
		v, err := ParseVariant(o.ID)
		if err != nil {
			return err
		}
		def := r.defs[v].Clone()
		if err := o.apply(def); err != nil {
			return fmt.Errorf("chip overrides: %s: %w", v, err)
		}
		r.defs[v] = def
	}
	return nil
}

func (o *override) apply(d *Definition) error {
	if o.Description != nil {
		d.Description = *o.Description
	}
	if o.MaxTableLevels != nil {
		if *o.MaxTableLevels <= 0 {
			return fmt.Errorf("maxTableLevels must be > 0, got %d", *o.MaxTableLevels)
		}
		d.MaxTableLevels = *o.MaxTableLevels
	}
	if o.CombinedTable != nil {
		d.CombinedTable = *o.CombinedTable
	}
	if o.MinLevelOffset != nil {
		d.MinLevelOffset = *o.MinLevelOffset
	}
	if o.Strategy != nil {
		if err := d.Strategy.UnmarshalText([]byte(*o.Strategy)); err != nil {
			return err
		}
	}
	if o.VoltTablePattern != nil {
		d.VoltTablePattern = *o.VoltTablePattern
	}
	if o.LevelCount != nil {
		if *o.LevelCount <= 0 {
			return fmt.Errorf("levelCount must be > 0, got %d", *o.LevelCount)
		}
		d.LevelCount = *o.LevelCount
	}
	if o.LiteralBins != nil {
		d.LiteralBins = *o.LiteralBins
	}
	if o.CaTargetOffset != nil {
		d.CaTargetOffset = *o.CaTargetOffset
	}
	if len(o.Bins) > 0 && d.Bins == nil {
		d.Bins = map[int]string{}
	}
	for k, v := range o.Bins {
		d.Bins[k] = v
	}
	return nil
}

func Lookup(v Variant, bin int) Label {
	return defaultRegistry.Lookup(v, bin)
}

// LabelFor returns the label of a speed bin of v using the built in
// definitions.
func LabelFor(v Variant, bin int) string {
	return defaultRegistry.LabelFor(v, bin)
}
