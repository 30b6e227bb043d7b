package eval

import (
	"strings"

	"github.com/signadot/dts-format/go-dts/ir"
)

// Env is the environment an expression sees for a single node.
type Env struct {
	Name     string
	Path     string
	Depth    int
	Children int
	// Props maps property names to raw values. Flag properties map to "".
	Props map[string]string

	node *ir.Node
}

func NewEnv(n *ir.Node) Env {
	props := make(map[string]string, len(n.Properties))
	for _, p := range n.Properties {
		props[p.Name] = p.Value
	}
	return Env{
		Name:     n.Name,
		Path:     n.FullPath(),
		Depth:    n.Depth(),
		Children: len(n.Children),
		Props:    props,
		node:     n,
	}
}

func (e Env) Has(name string) bool {
	_, ok := e.Props[name]
	return ok
}

// Display returns the display form of a property value, or "" if absent.
func (e Env) Display(name string) string {
	if e.node == nil {
		return ""
	}
	p := e.node.Property(name)
	if p == nil {
		return ""
	}
	return p.DisplayValue()
}

// Cells returns the display cells of a numeric array property.
func (e Env) Cells(name string) []string {
	return strings.Fields(e.Display(name))
}

func (e Env) HasChild(name string) bool {
	return e.node != nil && e.node.Child(name) != nil
}
