package schema

type NodeBuilder struct {
	node *Node
}

func NewNodeBuilder(key string, t Type) *NodeBuilder {
	return &NodeBuilder{
		node: &Node{
			ID:     NewID(),
			Key:    key,
			Type:   t,
			Fields: []*Node{},
		},
	}
}

func (b *NodeBuilder) WithID(id string) *NodeBuilder {
	b.node.ID = id
	return b
}

func (b *NodeBuilder) WithArrayType(t Type) *NodeBuilder {
	b.node.ArrayType = t
	return b
}

func (b *NodeBuilder) WithFields(fields ...*Node) *NodeBuilder {
	b.node.Fields = append(b.node.Fields, fields...)
	return b
}

func (b *NodeBuilder) Build() *Node {
	return b.node
}
