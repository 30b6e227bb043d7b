package eval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/dts-format/go-dts/debug"
	"github.com/signadot/dts-format/go-dts/ir"
)

var ErrEval = errors.New("eval error")

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(Env{}),
		expr.Function("num", func(params ...any) (any, error) {
			// accepts a single cell, bracketed or not, in any Go base notation
			s := strings.TrimSpace(strings.Trim(strings.TrimSpace(params[0].(string)), "<>"))
			if s == "" {
				return int64(0), nil
			}
			n, err := strconv.ParseInt(s, 0, 64)
			if err != nil {
				u, uerr := strconv.ParseUint(s, 0, 64)
				if uerr != nil {
					return nil, fmt.Errorf("num(%q): %w", s, err)
				}
				return int64(u), nil
			}
			return n, nil
		},
			new(func(string) int64)),
	}
}

// Compile compiles a selection expression. The expression must be boolean.
func Compile(src string) (*vm.Program, error) {
	prg, err := expr.Compile(src, append(exprOpts(), expr.AsBool())...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	return prg, nil
}

// Select returns the nodes under root for which src holds, in document
// order. A synthetic root is never selected.
func Select(root *ir.Node, src string) ([]*ir.Node, error) {
	prg, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return SelectProgram(root, prg)
}

func SelectProgram(root *ir.Node, prg *vm.Program) ([]*ir.Node, error) {
	var (
		res  []*ir.Node
		rErr error
	)
	root.Walk(func(n *ir.Node) bool {
		if n.IsRoot() {
			return true
		}
		v, err := expr.Run(prg, NewEnv(n))
		if err != nil {
			rErr = fmt.Errorf("%w at %s: %w", ErrEval, n.FullPath(), err)
			return false
		}
		ok, _ := v.(bool)
		if debug.Eval() {
			debug.Logf("eval %s -> %v", n.FullPath(), ok)
		}
		if ok {
			res = append(res, n)
		}
		return true
	})
	if rErr != nil {
		return nil, rErr
	}
	return res, nil
}

// Eval evaluates src against a single node, returning any value.
func Eval(n *ir.Node, src string) (any, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	v, err := expr.Run(prg, NewEnv(n))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	return v, nil
}
