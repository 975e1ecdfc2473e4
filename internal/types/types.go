package types

import "encoding/json"

// StyleSet 表示一段文本解析后的样式
//
// Color 为空表示未设置；设置时总是 6 位十六进制数字，不带 '#'。
// StyleSet 是值类型，With* 方法返回新值，不修改接收者。
type StyleSet struct {
	Bold   bool   `json:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty"`
	Color  string `json:"color,omitempty"`
}

// WithBold returns a copy with bold enabled.
func (s StyleSet) WithBold() StyleSet {
	s.Bold = true
	return s
}

// WithItalic returns a copy with italic enabled.
func (s StyleSet) WithItalic() StyleSet {
	s.Italic = true
	return s
}

// WithColor returns a copy with the given color. An empty color leaves the
// current value in place.
func (s StyleSet) WithColor(color string) StyleSet {
	if color != "" {
		s.Color = color
	}
	return s
}

// IsZero reports whether no style is set.
func (s StyleSet) IsZero() bool {
	return s == StyleSet{}
}

// Run 是共享同一样式的一段连续文本
type Run struct {
	Text  string   `json:"text"`
	Style StyleSet `json:"style"`
}

// BlockKind represents the kind of a block.
type BlockKind int

const (
	// BlockHeading represents a heading (levels 1-3).
	BlockHeading BlockKind = iota
	// BlockParagraph represents a paragraph.
	BlockParagraph
	// BlockListItem represents a bulleted list item.
	BlockListItem
)

// String returns the string representation of BlockKind.
func (k BlockKind) String() string {
	switch k {
	case BlockHeading:
		return "heading"
	case BlockParagraph:
		return "paragraph"
	case BlockListItem:
		return "list_item"
	default:
		return "unknown"
	}
}

// Block is a structural unit composed of runs.
type Block interface {
	Kind() BlockKind
	BlockRuns() []Run
}

// Heading is a heading block, Level is 1, 2 or 3.
type Heading struct {
	Level int
	Runs  []Run
}

// Kind returns BlockHeading.
func (h Heading) Kind() BlockKind { return BlockHeading }

// BlockRuns returns the heading runs.
func (h Heading) BlockRuns() []Run { return h.Runs }

// Paragraph is a body text block.
type Paragraph struct {
	Runs []Run
}

// Kind returns BlockParagraph.
func (p Paragraph) Kind() BlockKind { return BlockParagraph }

// BlockRuns returns the paragraph runs.
func (p Paragraph) BlockRuns() []Run { return p.Runs }

// ListItem is one bulleted entry. IndentLevel is always 0.
type ListItem struct {
	IndentLevel int
	Runs        []Run
}

// Kind returns BlockListItem.
func (l ListItem) Kind() BlockKind { return BlockListItem }

// BlockRuns returns the list item runs.
func (l ListItem) BlockRuns() []Run { return l.Runs }

// Document 是转换器的唯一输出：按文档顺序排列的块
type Document []Block

// blockJSON 是块的 JSON 形式，type 字段区分变体
type blockJSON struct {
	Type        string `json:"type"`
	Level       int    `json:"level,omitempty"`
	IndentLevel *int   `json:"indent_level,omitempty"`
	Runs        []Run  `json:"runs"`
}

// MarshalJSON encodes the document as an array of tagged blocks.
func (d Document) MarshalJSON() ([]byte, error) {
	out := make([]blockJSON, 0, len(d))
	for _, b := range d {
		runs := b.BlockRuns()
		if runs == nil {
			runs = []Run{}
		}
		bj := blockJSON{Type: b.Kind().String(), Runs: runs}
		switch v := b.(type) {
		case Heading:
			bj.Level = v.Level
		case ListItem:
			indent := v.IndentLevel
			bj.IndentLevel = &indent
		}
		out = append(out, bj)
	}
	return json.Marshal(out)
}
