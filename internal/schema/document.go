package schema

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

var ErrEmptyDocument = errors.New("document has no schema fields")

// Document is the persisted envelope of a schema tree.
type Document struct {
	Schema []*Node `json:"schema" yaml:"schema"`
}

// Default returns the tree used when nothing usable is stored:
// a Nested "user" holding a String "name" and a Number "age".
func Default() []*Node {
	return []*Node{
		NewNodeBuilder("user", Nested).
			WithFields(
				NewNodeBuilder("name", String).Build(),
				NewNodeBuilder("age", Number).Build(),
			).
			Build(),
	}
}

// Encode serializes fields into a Document blob.
func Encode(fields []*Node) ([]byte, error) {
	if fields == nil {
		fields = []*Node{}
	}
	data, err := json.Marshal(Document{Schema: fields})
	if err != nil {
		return nil, fmt.Errorf("encode schema document: %w", err)
	}
	return data, nil
}

// Decode parses a Document blob. Nil nodes are dropped and missing ids are
// filled in. A blob without any field yields ErrEmptyDocument.
func Decode(data []byte) ([]*Node, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode schema document: %w", err)
	}

	fields := normalize(doc.Schema)
	if len(fields) == 0 {
		return nil, ErrEmptyDocument
	}
	return fields, nil
}

// DecodeOrDefault never fails: anything Decode rejects becomes Default().
func DecodeOrDefault(data []byte) ([]*Node, error) {
	if len(data) == 0 {
		return Default(), ErrEmptyDocument
	}
	fields, err := Decode(data)
	if err != nil {
		return Default(), err
	}
	return fields, nil
}

func normalize(fields []*Node) []*Node {
	result := make([]*Node, 0, len(fields))
	for _, n := range fields {
		if n == nil {
			continue
		}
		if n.ID == "" {
			n.ID = NewID()
		}
		if n.Fields != nil {
			n.Fields = normalize(n.Fields)
		}
		result = append(result, n)
	}
	return result
}
