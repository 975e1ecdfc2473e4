package converter

import (
	"github.com/riverfjs/wordify-go/internal/buffer"
	"github.com/riverfjs/wordify-go/internal/markup"
	"github.com/riverfjs/wordify-go/internal/types"
)

// headingLevels 只识别 h1-h3，其余标题标签按普通包装元素处理
var headingLevels = map[string]int{
	"h1": 1,
	"h2": 2,
	"h3": 3,
}

// Walker 遍历 markup 树并生成块序列
//
// 每次转换使用一个新的 Walker；它只持有本次调用的 BlockBuffer。
type Walker struct {
	buf *buffer.BlockBuffer
}

// NewWalker 创建新的 Walker
func NewWalker() *Walker {
	return &Walker{buf: buffer.New()}
}

// Convert turns a markup tree into a Document. The tree is validated first;
// a malformed tree yields an error and no Document.
func Convert(nodes []markup.Node) (types.Document, error) {
	if err := markup.Validate(nodes); err != nil {
		return nil, err
	}
	w := NewWalker()
	w.Walk(nodes)
	return w.Result(), nil
}

// Walk visits siblings in pre-order and appends every block they produce.
func (w *Walker) Walk(nodes []markup.Node) {
	for _, n := range nodes {
		el, ok := n.(markup.Element)
		if !ok {
			// Text at block level belongs to no block
			continue
		}
		w.onElement(el)
		w.Walk(el.Children)
	}
}

// Result 返回转换结果
func (w *Walker) Result() types.Document {
	return w.buf.Document()
}

func (w *Walker) onElement(el markup.Element) {
	tag := el.Name()
	if level, ok := headingLevels[tag]; ok {
		w.buf.Append(types.Heading{
			Level: level,
			Runs:  ExtractRuns(el.Children, types.StyleSet{}),
		})
		return
	}

	switch tag {
	case "p":
		w.buf.Append(types.Paragraph{
			Runs: ExtractRuns(el.Children, types.StyleSet{}),
		})
	case "ul":
		w.onList(el)
	}
}

// onList 为每个直接子 li 生成一个 ListItem；不在 ul 下的 li 不产生块
func (w *Walker) onList(el markup.Element) {
	for _, child := range el.Children {
		li, ok := child.(markup.Element)
		if !ok || li.Name() != "li" {
			continue
		}
		w.buf.Append(types.ListItem{
			IndentLevel: 0,
			Runs:        ExtractRuns(li.Children, types.StyleSet{}),
		})
	}
}

// ExtractRuns returns one run per text leaf under nodes, in document order,
// each carrying the union of styles set by its ancestors below the block.
// Elements that do not affect style are passed through transparently.
func ExtractRuns(nodes []markup.Node, inherited types.StyleSet) []types.Run {
	return appendRuns(make([]types.Run, 0), nodes, inherited)
}

func appendRuns(runs []types.Run, nodes []markup.Node, inherited types.StyleSet) []types.Run {
	for _, n := range nodes {
		switch v := n.(type) {
		case markup.Text:
			runs = append(runs, types.Run{Text: v.Content, Style: inherited})
		case markup.Element:
			style := inherited
			if IsStyleTag(v.Name()) {
				style = ResolveStyle(v, inherited)
			}
			runs = appendRuns(runs, v.Children, style)
		}
	}
	return runs
}
