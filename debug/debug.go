package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse    bool
	Tokenize bool
	Table    bool
	Patch    bool
	Eval     bool
	LSP      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("DTS_DEBUG_PARSE")
	d.Tokenize = boolEnv("DTS_DEBUG_TOKENIZE")
	d.Table = boolEnv("DTS_DEBUG_TABLE")
	d.Patch = boolEnv("DTS_DEBUG_PATCH")
	d.Eval = boolEnv("DTS_DEBUG_EVAL")
	d.LSP = boolEnv("DTS_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Tokenize() bool {
	return d.Tokenize
}
func Table() bool {
	return d.Table
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}
func LSP() bool {
	return d.LSP
}

// Logf writes a formatted line to stderr.
func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	if len(format) == 0 || format[len(format)-1] != '\n' {
		os.Stderr.Write([]byte{'\n'})
	}
}

// LogAny writes v as JSON to stderr. Nodes use their tree form.
func LogAny(v any) {
	enc := json.NewEncoder(os.Stderr)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
	}
}
