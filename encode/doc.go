// Package encode writes ir trees as Device Tree Source, JSON or YAML, and
// renders tokenized source with terminal colors.
//
// # Usage
//
//	// canonical DTS
//	err := encode.Encode(root, os.Stdout)
//
//	// colored DTS
//	err = encode.Encode(root, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
//	// tree form as YAML
//	err = encode.Encode(root, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
// DTS output is regenerated, not reproduced: comments are not kept,
// properties are indented with one tab per level and each statement is on
// its own line.
//
// # Related Packages
//
//   - github.com/signadot/dts-format/go-dts/parse - Parse text to a tree
//   - github.com/signadot/dts-format/go-dts/token - Line tokenizer
package encode
