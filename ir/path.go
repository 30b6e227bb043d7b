package ir

import "fmt"

// FullPath is the chain of ancestor names joined by '/'. The synthetic root
// does not contribute, and a top level "/" node yields paths like "/soc".
func (n *Node) FullPath() string {
	if n.Parent == nil || n.Parent.IsRoot() {
		return n.Name
	}
	pp := n.Parent.FullPath()
	if pp == "/" {
		return "/" + n.Name
	}
	return pp + "/" + n.Name
}

// Find returns the first node under n (n included) whose FullPath is path.
func (n *Node) Find(path string) *Node {
	var res *Node
	n.Walk(func(x *Node) bool {
		if x.IsRoot() {
			return true
		}
		if x.FullPath() == path {
			res = x
			return false
		}
		return true
	})
	return res
}

// Get is Find returning ErrNotFound when there is no such node.
func (n *Node) Get(path string) (*Node, error) {
	x := n.Find(path)
	if x == nil {
		return nil, fmt.Errorf("%w: node %q", ErrNotFound, path)
	}
	return x, nil
}
