package wordify

import (
	"github.com/riverfjs/wordify-go/internal/markup"
	"github.com/riverfjs/wordify-go/internal/types"
)

// 导出类型别名
type (
	Node      = markup.Node
	Text      = markup.Text
	Element   = markup.Element
	StyleSet  = types.StyleSet
	Run       = types.Run
	Block     = types.Block
	BlockKind = types.BlockKind
	Heading   = types.Heading
	Paragraph = types.Paragraph
	ListItem  = types.ListItem
	Document  = types.Document
)

const (
	BlockHeading   = types.BlockHeading
	BlockParagraph = types.BlockParagraph
	BlockListItem  = types.BlockListItem
)

// NewText creates a text leaf.
func NewText(content string) Text {
	return markup.NewText(content)
}

// NewElement creates an element node; attributes may be nil.
func NewElement(tag string, attributes map[string]string, children ...Node) Element {
	return markup.NewElement(tag, attributes, children...)
}
