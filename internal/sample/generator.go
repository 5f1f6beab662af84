// Package sample derives a representative JSON document from a schema tree.
package sample

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/flavono123/jsonsketch/internal/schema"
)

// Placeholder values emitted per primitive type.
const (
	StringValue  = "Sample String"
	NumberValue  = 12345
	BooleanValue = true
)

// DefaultIndent is the indentation used for copy-out and the preview pane.
const DefaultIndent = 2

type Option func(*Generator)

// WithMaxDepth stops descending below depth n (the root sequence is depth 1).
// Zero means unbounded.
func WithMaxDepth(n int) Option {
	return func(g *Generator) {
		g.maxDepth = n
	}
}

// Generator turns a field sequence into an Object. It holds no state between
// calls and is safe to reuse.
type Generator struct {
	maxDepth int
}

func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = New()

// Generate runs the default generator.
func Generate(fields []*schema.Node) *Object {
	return defaultGenerator.Generate(fields)
}

// Pretty generates fields and renders them with DefaultIndent.
func Pretty(fields []*schema.Node) (string, error) {
	return Render(Generate(fields), DefaultIndent)
}

func (g *Generator) Generate(fields []*schema.Node) *Object {
	return g.object(fields, sets.New[*schema.Node](), 1)
}

func (g *Generator) object(fields []*schema.Node, onPath sets.Set[*schema.Node], depth int) *Object {
	obj := NewObject()
	if g.maxDepth > 0 && depth > g.maxDepth {
		return obj
	}

	for _, n := range fields {
		if n == nil || n.Key == "" || onPath.Has(n) {
			continue
		}

		onPath.Insert(n)
		value, ok := g.value(n, onPath, depth)
		onPath.Delete(n)

		if ok {
			obj.Set(n.Key, value)
		}
	}
	return obj
}

func (g *Generator) value(n *schema.Node, onPath sets.Set[*schema.Node], depth int) (any, bool) {
	switch n.Type {
	case schema.String:
		return StringValue, true
	case schema.Number:
		return NumberValue, true
	case schema.Boolean:
		return BooleanValue, true
	case schema.Nested:
		return g.object(n.Fields, onPath, depth+1), true
	case schema.Array:
		switch n.ArrayType {
		case schema.Nested:
			return []any{g.object(n.Fields, onPath, depth+1)}, true
		case schema.String:
			return []any{"String 1", "String 2"}, true
		case schema.Number:
			return []any{1, 2, 3}, true
		case schema.Boolean:
			return []any{true, false}, true
		}
	}
	return nil, false
}

// Render encodes obj as JSON. indent <= 0 produces compact output.
func Render(obj *Object, indent int) (string, error) {
	if obj == nil {
		obj = NewObject()
	}
	compact, err := obj.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("render sample: %w", err)
	}
	if indent <= 0 {
		return string(compact), nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", strings.Repeat(" ", indent)); err != nil {
		return "", fmt.Errorf("indent sample: %w", err)
	}
	return buf.String(), nil
}
