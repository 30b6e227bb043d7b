package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

type jsonProperty struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

type jsonNode struct {
	Name       string         `json:"name" yaml:"name"`
	Properties []jsonProperty `json:"properties,omitempty" yaml:"properties,omitempty"`
	Children   []*jsonNode    `json:"children,omitempty" yaml:"children,omitempty"`
}

func toJSONNode(n *Node) *jsonNode {
	res := &jsonNode{Name: n.Name}
	for _, p := range n.Properties {
		res.Properties = append(res.Properties, jsonProperty{Name: p.Name, Value: p.Value})
	}
	for _, c := range n.Children {
		res.Children = append(res.Children, toJSONNode(c))
	}
	return res
}

func fromJSONNode(j *jsonNode) (*Node, error) {
	if j == nil {
		return nil, fmt.Errorf("%w: null node", ErrBadJSON)
	}
	res := &Node{Name: j.Name, Expanded: j.Name == RootName}
	for _, p := range j.Properties {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: property without name in %q", ErrBadJSON, j.Name)
		}
		res.AddProperty(NewProperty(p.Name, p.Value))
	}
	for _, c := range j.Children {
		cn, err := fromJSONNode(c)
		if err != nil {
			return nil, err
		}
		res.AddChild(cn)
	}
	return res, nil
}

// Tree returns a plain value form of n suitable for generic marshalers
// such as YAML encoders.
func (n *Node) Tree() any {
	return toJSONNode(n)
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return JSON(toJSONNode(n))
}

// EncodeJSON writes v to w followed by a newline. Cell arrays are written
// as is, without escaping their angle brackets.
func EncodeJSON(w io.Writer, v any, indent string) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(v)
}

// JSON is json.Marshal without HTML escaping.
func JSON(v any) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := EncodeJSON(buf, v, ""); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (n *Node) UnmarshalJSON(d []byte) error {
	j := &jsonNode{}
	if err := json.Unmarshal(d, j); err != nil {
		return fmt.Errorf("%w: %w", ErrBadJSON, err)
	}
	res, err := fromJSONNode(j)
	if err != nil {
		return err
	}
	for _, c := range res.Children {
		c.Parent = n
	}
	n.Name = res.Name
	n.Properties = res.Properties
	n.Children = res.Children
	n.Expanded = res.Expanded
	return nil
}
