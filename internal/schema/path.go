package schema

import (
	"strconv"
	"strings"

	"github.com/go-openapi/jsonpointer"
	"github.com/go-openapi/jsonreference"
)

// Path locates a node by the chain of child indices from the root.
// The empty path is the root sequence itself.
//
// Indices shift under reorder and removal, so a Path is only valid against the
// tree it was computed from.
type Path []int

// Root addresses the top-level field sequence.
var Root = Path{}

func (p Path) IsRoot() bool {
	return len(p) == 0
}

// Child returns a new path one level below p.
func (p Path) Child(index int) Path {
	child := make(Path, len(p)+1)
	copy(child, p)
	child[len(p)] = index
	return child
}

// Parent returns the container path and the index of p within it.
// It returns false for the root.
func (p Path) Parent() (Path, int, bool) {
	if p.IsRoot() {
		return nil, 0, false
	}
	parent := make(Path, len(p)-1)
	copy(parent, p[:len(p)-1])
	return parent, p[len(p)-1], true
}

func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

func (p Path) String() string {
	if p.IsRoot() {
		return "root"
	}
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return "root." + strings.Join(parts, ".")
}

// Resolve returns the node at p, or false if any index is out of range.
func Resolve(fields []*Node, p Path) (*Node, bool) {
	if p.IsRoot() {
		return nil, false
	}

	var cur *Node
	seq := fields
	for _, idx := range p {
		if idx < 0 || idx >= len(seq) || seq[idx] == nil {
			return nil, false
		}
		cur = seq[idx]
		seq = cur.Fields
	}
	return cur, true
}

// Pointer renders p as a JSON reference over field keys, e.g. "#/user/name".
// It is a display label only; keys need not be unique.
func Pointer(fields []*Node, p Path) string {
	if p.IsRoot() {
		return "#"
	}

	var b strings.Builder
	b.WriteString("#")

	seq := fields
	for _, idx := range p {
		if idx < 0 || idx >= len(seq) || seq[idx] == nil {
			break
		}
		b.WriteString("/")
		b.WriteString(jsonpointer.Escape(seq[idx].Key))
		seq = seq[idx].Fields
	}

	ref, err := jsonreference.New(b.String())
	if err != nil {
		return b.String()
	}
	return ref.String()
}
