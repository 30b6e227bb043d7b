package encode

import "github.com/signadot/dts-format/go-dts/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// EncodeColors highlights DTS output. It has no effect on JSON or YAML.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

// EncodeIndent sets the per level indentation of DTS output, a tab by
// default.
func EncodeIndent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}
