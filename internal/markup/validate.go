package markup

import "strings"

// Validate checks the structural contract of a tree: no nil nodes and no
// elements without a tag. It stops at the first violation.
func Validate(nodes []Node) error {
	return validate(nodes, nil)
}

func validate(nodes []Node, path []int) error {
	for i, n := range nodes {
		p := append(path[:len(path):len(path)], i)
		switch v := n.(type) {
		case Text:
		case Element:
			if strings.TrimSpace(v.Tag) == "" {
				return malformed(p, "element has no tag")
			}
			if err := validate(v.Children, p); err != nil {
				return err
			}
		case nil:
			return malformed(p, "node is neither text nor element")
		default:
			return malformed(p, "unsupported node type %T", n)
		}
	}
	return nil
}
