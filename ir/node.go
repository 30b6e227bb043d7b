package ir

import (
	"slices"
	"strings"
)

// RootName is the name of the synthetic root returned by the parser.
const RootName = "root"

type Node struct {
	Name       string
	Children   []*Node
	Properties []*Property
	// Expanded is display state only, it has no effect on generation.
	Expanded bool
	// Parent is set by AddChild and InsertChild and cleared by RemoveChild.
	Parent *Node
}

// NewRoot returns an empty synthetic root.
func NewRoot() *Node {
	return &Node{Name: RootName, Expanded: true}
}

// NewNode returns a detached node. The name is trimmed.
func NewNode(name string) *Node {
	return &Node{Name: strings.TrimSpace(name)}
}

// IsRoot reports whether n is a synthetic root.
func (n *Node) IsRoot() bool {
	return n.Parent == nil && n.Name == RootName
}

func (n *Node) AddChild(c *Node) *Node {
	c.Parent = n
	n.Children = append(n.Children, c)
	return c
}

// InsertChild inserts c at index i, clamped to the child list.
func (n *Node) InsertChild(i int, c *Node) *Node {
	i = max(0, min(i, len(n.Children)))
	c.Parent = n
	n.Children = slices.Insert(n.Children, i, c)
	return c
}

// RemoveChild detaches c from n. It reports whether c was a child of n.
func (n *Node) RemoveChild(c *Node) bool {
	i := slices.Index(n.Children, c)
	if i < 0 {
		return false
	}
	n.Children = slices.Delete(n.Children, i, i+1)
	c.Parent = nil
	return true
}

func (n *Node) AddProperty(p *Property) *Property {
	n.Properties = append(n.Properties, p)
	return p
}

// RemoveProperty removes the first property called name.
func (n *Node) RemoveProperty(name string) bool {
	i := slices.IndexFunc(n.Properties, func(p *Property) bool { return p.Name == name })
	if i < 0 {
		return false
	}
	n.Properties = slices.Delete(n.Properties, i, i+1)
	return true
}

// Property returns the first property called name, or nil.
func (n *Node) Property(name string) *Property {
	for _, p := range n.Properties {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Child returns the first child called name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Depth is 0 for a synthetic root and for detached nodes.
func (n *Node) Depth() int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

// Walk visits n and its descendants depth first in document order until f
// returns false.
func (n *Node) Walk(f func(*Node) bool) bool {
	if !f(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(f) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of n. The copy is detached.
func (n *Node) Clone() *Node {
	res := &Node{Name: n.Name, Expanded: n.Expanded}
	res.Properties = make([]*Property, len(n.Properties))
	for i, p := range n.Properties {
		res.Properties[i] = p.Clone()
	}
	res.Children = make([]*Node, len(n.Children))
	for i, c := range n.Children {
		cc := c.Clone()
		cc.Parent = res
		res.Children[i] = cc
	}
	return res
}

func (n *Node) String() string {
	return n.Name
}
