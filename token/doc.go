// Package token provides line oriented tokenization of device tree source
// for display.
//
// [TokenizeLine] colors a single line given the block comment state left by
// the previous line, [Tokenizer] carries that state across calls, and
// [TokenizeLines] handles a whole document.
//
// Every span list returned for a non-empty line partitions the line: spans are
// sorted, non-overlapping and cover [0, len(line)) without gaps.
package token
