package markup

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed tree.schema.json
var treeSchemaSource string

var (
	treeSchema     *jsonschema.Schema
	treeSchemaOnce sync.Once
)

func schema() *jsonschema.Schema {
	treeSchemaOnce.Do(func() {
		treeSchema = jsonschema.MustCompileString("tree.schema.json", treeSchemaSource)
	})
	return treeSchema
}

// wireNode 是 JSON 中的节点形式：{"content": ...} 或 {"tag": ..., "attributes": ..., "children": [...]}
type wireNode struct {
	Tag        string            `json:"tag,omitempty"`
	Content    *string           `json:"content,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Children   []wireNode        `json:"children,omitempty"`
}

// Decode reads a JSON markup tree. The document is either an array of nodes
// or a single root node. Anything that does not match the node contract is
// reported as malformed input.
func Decode(r io.Reader) ([]Node, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read markup tree: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, malformed(nil, "invalid JSON: %v", err)
	}
	if _, ok := doc.(map[string]any); ok {
		doc = []any{doc}
		raw = append(append([]byte("["), raw...), ']')
	}
	if err := schema().Validate(doc); err != nil {
		return nil, malformed(nil, "tree does not match node contract: %v", err)
	}

	var wire []wireNode
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, malformed(nil, "invalid JSON: %v", err)
	}
	return fromWire(wire), nil
}

func fromWire(wire []wireNode) []Node {
	nodes := make([]Node, 0, len(wire))
	for _, w := range wire {
		if w.Content != nil {
			nodes = append(nodes, Text{Content: *w.Content})
			continue
		}
		nodes = append(nodes, Element{
			Tag:        w.Tag,
			Attributes: w.Attributes,
			Children:   fromWire(w.Children),
		})
	}
	return nodes
}
