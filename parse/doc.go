// Package parse parses Device Tree Source text into ir nodes.
//
// # Usage
//
//	root, err := parse.Parse(data)
//	gpu := root.Find("/soc/qcom,kgsl-3d0@3d00000")
//
//	// report structural problems with source positions
//	pos := parse.NewPositions()
//	root, err = parse.Parse(data, parse.ParseStrict(), parse.ParsePositions(pos))
//
// The accepted grammar is the subset produced by device tree decompilers:
// nodes, properties with or without values, and comments. Preprocessor
// directives and includes are not expanded.
//
// # Related Packages
//
//   - github.com/signadot/dts-format/go-dts/ir - tree representation
//   - github.com/signadot/dts-format/go-dts/encode - generate text from a tree
package parse
