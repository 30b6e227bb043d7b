// Package format names the output formats a tree can be written in.
//
// # Related Packages
//
//   - github.com/signadot/dts-format/go-dts/encode - Encode a tree to text
package format
