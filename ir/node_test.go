package ir

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func testTree() *Node {
	root := NewRoot()
	top := root.AddChild(NewNode("/"))
	soc := top.AddChild(NewNode("soc"))
	gpu := soc.AddChild(NewNode("qcom,kgsl-3d0@3d00000"))
	gpu.AddProperty(NewProperty("compatible", `"qcom,kgsl-3d0"`))
	gpu.AddProperty(NewProperty("qcom,gpu-freq", "<0x2faf0800>"))
	gpu.AddProperty(NewProperty("qcom,initial-pwrlevel", "<0x1>"))
	root.AddChild(NewNode("__symbols__")).AddProperty(NewProperty("gpu", `"/soc/gpu"`))
	return root
}

func TestFullPath(t *testing.T) {
	root := testTree()
	tests := []struct {
		path string
		name string
	}{
		{"/", "/"},
		{"/soc", "soc"},
		{"/soc/qcom,kgsl-3d0@3d00000", "qcom,kgsl-3d0@3d00000"},
		{"__symbols__", "__symbols__"},
	}
	for _, tc := range tests {
		n := root.Find(tc.path)
		if n == nil {
			t.Errorf("%s: not found", tc.path)
			continue
		}
		if n.Name != tc.name {
			t.Errorf("expected %q, got %q", tc.name, n.Name)
		}
		if n.FullPath() != tc.path {
			t.Errorf("expected %q, got %q", tc.path, n.FullPath())
		}
	}
	if _, err := root.Get("/nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRootInvariants(t *testing.T) {
	root := NewRoot()
	if !root.IsRoot() || !root.Expanded || root.Name != "root" {
		t.Errorf("bad root %+v", root)
	}
	if root.Depth() != 0 {
		t.Errorf("expected depth 0, got %d", root.Depth())
	}
	gpu := testTree().Find("/soc/qcom,kgsl-3d0@3d00000")
	if gpu.Depth() != 3 {
		t.Errorf("expected depth 3, got %d", gpu.Depth())
	}
}

func TestChildEdits(t *testing.T) {
	root := testTree()
	top := root.Child("/")
	a := top.InsertChild(-4, NewNode("aliases"))
	if top.Children[0] != a || a.Parent != top {
		t.Fatal("insert at clamped start failed")
	}
	z := top.InsertChild(100, NewNode("zz"))
	if top.Children[len(top.Children)-1] != z {
		t.Fatal("insert at clamped end failed")
	}
	if !top.RemoveChild(a) {
		t.Fatal("remove failed")
	}
	if a.Parent != nil {
		t.Error("removed child still has a parent")
	}
	if top.RemoveChild(a) {
		t.Error("second remove succeeded")
	}
	gpu := root.Find("/soc/qcom,kgsl-3d0@3d00000")
	if !gpu.RemoveProperty("qcom,gpu-freq") || gpu.Property("qcom,gpu-freq") != nil {
		t.Error("property not removed")
	}
}

func TestCloneIsDeep(t *testing.T) {
	root := testTree()
	c := root.Clone()
	if !Equal(root, c) {
		t.Fatal("clone not equal")
	}
	gpu := c.Find("/soc/qcom,kgsl-3d0@3d00000")
	gpu.Property("qcom,gpu-freq").SetDisplayValue("1")
	if Equal(root, c) {
		t.Error("clone shares properties with the original")
	}
	if gpu.Parent.Parent.Parent != c {
		t.Error("clone parent links not rebuilt")
	}
}

func TestJSON(t *testing.T) {
	root := testTree()
	d, err := json.Marshal(root)
	if err != nil {
		t.Fatal(err)
	}
	back := &Node{}
	if err := json.Unmarshal(d, back); err != nil {
		t.Fatal(err)
	}
	if !Equal(root, back) {
		t.Errorf("json round trip changed tree: %s", d)
	}
	if !back.IsRoot() || !back.Expanded {
		t.Error("expected root after unmarshal")
	}
	if back.Find("/soc").Parent != back.Child("/") {
		t.Error("parent links missing after unmarshal")
	}
	if err := json.Unmarshal([]byte(`{"name":"x","properties":[{"value":"1"}]}`), &Node{}); !errors.Is(err, ErrBadJSON) {
		t.Errorf("expected ErrBadJSON, got %v", err)
	}
}

func TestJSONKeepsCells(t *testing.T) {
	d, err := JSON(testTree())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(d, []byte(`"value":"<0x1>"`)) {
		t.Errorf("expected unescaped cell array in %s", d)
	}
	if bytes.HasSuffix(d, []byte("\n")) {
		t.Error("unexpected trailing newline")
	}
	m, err := testTree().MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(d, m) {
		t.Errorf("MarshalJSON differs from JSON:\n%s\n%s", m, d)
	}
}
