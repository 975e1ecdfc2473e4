// Package markup defines the parsed markup tree consumed by the converter.
//
// A tree is produced by a front end (HTML, markdown, or a JSON document sent
// by an external extraction service) and is read-only from then on.
package markup

import "strings"

// Node is either a Text leaf or an Element.
type Node interface {
	node()
}

// Text is a text leaf.
type Text struct {
	Content string
}

// Element is a tagged node with attributes and ordered children.
type Element struct {
	Tag        string
	Attributes map[string]string
	Children   []Node
}

func (Text) node()    {}
func (Element) node() {}

// Name returns the lower-cased tag name.
func (e Element) Name() string {
	return strings.ToLower(strings.TrimSpace(e.Tag))
}

// Attr looks up an attribute by case-insensitive key.
func (e Element) Attr(key string) (string, bool) {
	if v, ok := e.Attributes[key]; ok {
		return v, true
	}
	for k, v := range e.Attributes {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return "", false
}

// NewText 创建文本节点
func NewText(content string) Text {
	return Text{Content: content}
}

// NewElement 创建元素节点，attributes 可以为 nil
func NewElement(tag string, attributes map[string]string, children ...Node) Element {
	return Element{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
	}
}
