package libdiff

import (
	"fmt"
	"strings"
)

type lineOp struct {
	op   Op
	text string
	// from and to are the 0 based line numbers before this line.
	from, to int
}

func flatten(changes []Change) []lineOp {
	var (
		res      []lineOp
		from, to int
	)
	for _, c := range changes {
		for _, ln := range c.Lines {
			res = append(res, lineOp{op: c.Op, text: ln, from: from, to: to})
			if c.Op != Insert {
				from++
			}
			if c.Op != Delete {
				to++
			}
		}
	}
	return res
}

// Unified renders the diff of from and to in unified format with context
// lines around each hunk. It returns "" when there is no difference.
func Unified(fromName, toName string, from, to []string, context int) string {
	return UnifiedChanges(fromName, toName, Lines(from, to), context)
}

func UnifiedChanges(fromName, toName string, changes []Change, context int) string {
	ops := flatten(changes)
	var changed []int
	for i, o := range ops {
		if o.op != Equal {
			changed = append(changed, i)
		}
	}
	if len(changed) == 0 {
		return ""
	}
	context = max(context, 0)
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "--- %s\n+++ %s\n", fromName, toName)
	for i := 0; i < len(changed); {
		j := i
		for j+1 < len(changed) && changed[j+1]-changed[j] <= 2*context+1 {
			j++
		}
		start := max(changed[i]-context, 0)
		end := min(changed[j]+context+1, len(ops))
		writeHunk(sb, ops[start:end])
		i = j + 1
	}
	return sb.String()
}

func writeHunk(sb *strings.Builder, ops []lineOp) {
	nFrom, nTo := 0, 0
	for _, o := range ops {
		if o.op != Insert {
			nFrom++
		}
		if o.op != Delete {
			nTo++
		}
	}
	fmt.Fprintf(sb, "@@ -%s +%s @@\n", hunkRange(ops[0].from, nFrom), hunkRange(ops[0].to, nTo))
	for _, o := range ops {
		sb.WriteString(o.op.String())
		sb.WriteString(o.text)
		sb.WriteByte('\n')
	}
}

func hunkRange(start, n int) string {
	switch n {
	case 0:
		return fmt.Sprintf("%d,0", start)
	case 1:
		return fmt.Sprintf("%d", start+1)
	}
	return fmt.Sprintf("%d,%d", start+1, n)
}
