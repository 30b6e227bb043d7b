// Package eval selects nodes of a DTS tree with boolean expressions.
//
// Expressions are compiled with github.com/expr-lang/expr against [Env]:
//
//	Name == "qcom,gpu-pwrlevel@0" && num(Display("qcom,gpu-freq")) > 500000000
//	Has("compatible") && Depth > 2
//
// # Related Packages
//
//   - github.com/signadot/dts-format/go-dts/ir: the tree being searched
//   - github.com/signadot/dts-format/go-dts/parse: produces the tree
package eval
