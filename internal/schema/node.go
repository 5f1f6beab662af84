package schema

import (
	"github.com/google/uuid"
)

// Node is one field definition of a schema tree.
//
// ArrayType and Fields are kept when Type changes, so switching a field back
// to Nested or Array restores what was authored before.
type Node struct {
	ID        string  `json:"id" yaml:"id"`
	Key       string  `json:"key" yaml:"key"`
	Type      Type    `json:"type" yaml:"type"`
	ArrayType Type    `json:"arrayType,omitempty" yaml:"arrayType,omitempty"`
	Fields    []*Node `json:"fields" yaml:"fields"`
}

// NewNode returns a blank String field with a fresh id.
func NewNode() *Node {
	return &Node{
		ID:     NewID(),
		Type:   String,
		Fields: []*Node{},
	}
}

func NewID() string {
	return uuid.New().String()
}

// HasChildren reports whether the generator reads Fields for this node.
func (n *Node) HasChildren() bool {
	switch n.Type {
	case Nested:
		return true
	case Array:
		return n.ArrayType == Nested
	}
	return false
}

// Foldable reports whether the node has visible children to expand.
func (n *Node) Foldable() bool {
	return n.HasChildren() && len(n.Fields) > 0
}

// Clone returns a deep copy. A node reached twice on the same descent is
// dropped from the copy, which keeps Clone finite on malformed trees.
func (n *Node) Clone() *Node {
	return n.clone(map[*Node]struct{}{})
}

func (n *Node) clone(onPath map[*Node]struct{}) *Node {
	if n == nil {
		return nil
	}
	if _, ok := onPath[n]; ok {
		return nil
	}
	onPath[n] = struct{}{}
	defer delete(onPath, n)

	c := &Node{
		ID:        n.ID,
		Key:       n.Key,
		Type:      n.Type,
		ArrayType: n.ArrayType,
	}
	if n.Fields != nil {
		c.Fields = make([]*Node, 0, len(n.Fields))
		for _, child := range n.Fields {
			if cc := child.clone(onPath); cc != nil {
				c.Fields = append(c.Fields, cc)
			}
		}
	}
	return c
}

// CloneAll deep-copies a field sequence.
func CloneAll(fields []*Node) []*Node {
	result := make([]*Node, 0, len(fields))
	for _, n := range fields {
		if c := n.Clone(); c != nil {
			result = append(result, c)
		}
	}
	return result
}

// Walk visits every node depth-first in sequence order, passing its path.
// Returning false from fn skips the node's children. The tree must be acyclic,
// as every Snapshot is.
func Walk(fields []*Node, fn func(path Path, n *Node) bool) {
	walk(fields, Root, fn)
}

func walk(fields []*Node, prefix Path, fn func(path Path, n *Node) bool) {
	for i, n := range fields {
		if n == nil {
			continue
		}
		path := prefix.Child(i)
		if fn(path, n) {
			walk(n.Fields, path, fn)
		}
	}
}
