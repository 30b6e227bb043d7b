package patch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
	"github.com/signadot/dts-format/go-dts/debug"
	"github.com/signadot/dts-format/go-dts/ir"
)

var ErrPatch = errors.New("patch error")

// Decode reads a patch document written in JSON or YAML and returns its
// JSON encoding.
func Decode(d []byte) ([]byte, error) {
	t := bytes.TrimSpace(d)
	if len(t) > 0 && (t[0] == '[' || t[0] == '{') {
		return t, nil
	}
	j, err := yaml.YAMLToJSON(t)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return j, nil
}

// Apply applies an RFC 6902 patch to root and returns the patched tree.
// root is left unchanged.
func Apply(root *ir.Node, p []byte) (*ir.Node, error) {
	jp, err := Decode(p)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(jp)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return transform(root, "json-patch", ops.Apply)
}

// Merge applies an RFC 7386 merge patch to root and returns the patched
// tree. Arrays are replaced wholesale, so merge patches are mostly useful
// for renaming nodes or replacing entire property or child lists.
func Merge(root *ir.Node, p []byte) (*ir.Node, error) {
	jp, err := Decode(p)
	if err != nil {
		return nil, err
	}
	return transform(root, "merge-patch", func(doc []byte) ([]byte, error) {
		return jsonpatch.MergePatch(doc, jp)
	})
}

// Diff returns the merge patch taking from to to.
func Diff(from, to *ir.Node) ([]byte, error) {
	a, err := ir.JSON(from)
	if err != nil {
		return nil, err
	}
	b, err := ir.JSON(to)
	if err != nil {
		return nil, err
	}
	res, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return unescape(res)
}

// unescape re-encodes d so cell arrays read <0x1> rather than \u003c0x1\u003e.
func unescape(d []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return ir.JSON(v)
}

// Equal reports whether a and b have the same JSON form.
func Equal(a, b *ir.Node) bool {
	da, err := ir.JSON(a)
	if err != nil {
		return false
	}
	db, err := ir.JSON(b)
	if err != nil {
		return false
	}
	return jsonpatch.Equal(da, db)
}

func transform(root *ir.Node, what string, f func([]byte) ([]byte, error)) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("%s called on %s", what, root.FullPath())
		debug.LogAny(root)
	}
	d, err := ir.JSON(root)
	if err != nil {
		return nil, err
	}
	out, err := f(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPatch, what, err)
	}
	if debug.Patch() {
		debug.Logf("%s result %s", what, out)
	}
	res := &ir.Node{}
	if err := json.Unmarshal(out, res); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPatch, what, err)
	}
	return res, nil
}
