package parser

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/wordify-go/internal/markup"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM, // GitHub Flavored Markdown (tables, strikethrough, tasklists)
	),
}

// inlineHTMLTags 是 Markdown 中允许以行内 HTML 书写的样式标签
var inlineHTMLTags = map[string]bool{
	"span":   true,
	"strong": true,
	"b":      true,
	"em":     true,
	"i":      true,
}

// ParseMarkdown 解析 Markdown（可带 front matter）并生成 markup 树
func ParseMarkdown(src []byte) ([]markup.Node, Meta, error) {
	var meta Meta
	body, err := frontmatter.Parse(bytes.NewReader(src), &meta)
	if err != nil {
		return nil, Meta{}, fmt.Errorf("could not parse front matter: %w", err)
	}

	doc := ParseAST(body)
	w := newMarkdownWalker(body)
	if err := ast.Walk(doc, w.Walk); err != nil {
		return nil, Meta{}, fmt.Errorf("could not walk markdown: %w", err)
	}
	return w.Result(), meta, nil
}

// ParseAST 仅解析为 AST，不遍历
func ParseAST(src []byte) ast.Node {
	md := goldmark.New(StandardOptions...)
	return md.Parser().Parse(text.NewReader(src))
}

// markdownWalker 遍历 goldmark AST，把节点映射为 HTML 风格的元素
type markdownWalker struct {
	source []byte
	tree   *treeBuilder
}

func newMarkdownWalker(source []byte) *markdownWalker {
	return &markdownWalker{
		source: source,
		tree:   newTreeBuilder(),
	}
}

// Result returns the top-level nodes built so far.
func (w *markdownWalker) Result() []markup.Node {
	return w.tree.result()
}

// Walk 遍历 AST 节点
func (w *markdownWalker) Walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := node.(type) {
	// --- Inline elements ---
	case *ast.Text:
		if entering {
			w.onText(n)
		}

	case *ast.String:
		if entering {
			w.tree.text(string(n.Value))
		}

	case *ast.CodeSpan:
		if entering {
			w.tree.open("code", nil, n)
			w.tree.text(extractCodeSpanText(n, w.source))
			w.tree.closeOwner(n)
			return ast.WalkSkipChildren, nil
		}

	case *ast.Emphasis:
		// Level 1 = italic, Level 2 = bold
		tag := "em"
		if n.Level == 2 {
			tag = "strong"
		}
		w.element(n, entering, tag, nil)

	case *east.Strikethrough:
		w.element(n, entering, "del", nil)

	case *ast.Link:
		w.element(n, entering, "a", map[string]string{"href": string(n.Destination)})

	case *ast.AutoLink:
		if entering {
			url := string(n.URL(w.source))
			w.tree.open("a", map[string]string{"href": url}, n)
			w.tree.text(url)
			w.tree.closeOwner(n)
			return ast.WalkSkipChildren, nil
		}

	case *ast.Image:
		// Images are not carried into the document
		return ast.WalkSkipChildren, nil

	case *ast.RawHTML:
		if entering {
			w.onInlineHTML(n)
		}

	// --- Block elements ---
	case *ast.Paragraph:
		// 列表项内的段落直接展开到 li 中，避免松散列表产生重复块
		if _, inItem := n.Parent().(*ast.ListItem); inItem {
			w.separateItemParagraph(n, entering)
			break
		}
		w.element(n, entering, "p", nil)

	case *ast.Heading:
		w.element(n, entering, "h"+strconv.Itoa(n.Level), nil)

	case *ast.Blockquote:
		w.element(n, entering, "blockquote", nil)

	case *ast.List:
		tag := "ul"
		if n.IsOrdered() {
			tag = "ol"
		}
		w.element(n, entering, tag, nil)

	case *ast.ListItem:
		w.element(n, entering, "li", nil)

	case *east.TaskCheckBox:
		if entering {
			if n.IsChecked {
				w.tree.text("[x] ")
			} else {
				w.tree.text("[ ] ")
			}
		}

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			w.onCodeBlock(n)
			return ast.WalkSkipChildren, nil
		}

	case *ast.HTMLBlock:
		// Block HTML ignored
		return ast.WalkSkipChildren, nil

	case *east.Table:
		// Tables are not supported
		return ast.WalkSkipChildren, nil
	}

	return ast.WalkContinue, nil
}

func (w *markdownWalker) element(n ast.Node, entering bool, tag string, attrs map[string]string) {
	if entering {
		w.tree.open(tag, attrs, n)
	} else {
		w.tree.closeOwner(n)
	}
}

func (w *markdownWalker) onText(n *ast.Text) {
	w.tree.text(string(n.Segment.Value(w.source)))
	switch {
	case n.HardLineBreak():
		w.tree.text("\n")
	case n.SoftLineBreak():
		w.tree.text(" ")
	}
}

// separateItemParagraph 在同一列表项的相邻段落之间插入换行
func (w *markdownWalker) separateItemParagraph(n *ast.Paragraph, entering bool) {
	if !entering {
		return
	}
	if prev := n.PreviousSibling(); prev != nil {
		if _, ok := prev.(*ast.Paragraph); ok {
			w.tree.text("\n")
		}
	}
}

func (w *markdownWalker) onInlineHTML(n *ast.RawHTML) {
	raw := string(n.Segments.Value(w.source))
	tag, attrs, closing, ok := parseInlineTag(strings.TrimSpace(raw))
	if !ok || !inlineHTMLTags[tag] {
		// Other inline HTML is ignored
		return
	}
	if closing {
		w.tree.closeInline(tag)
		return
	}
	w.tree.open(tag, attrs, nil)
}

// onCodeBlock 代码块作为一个段落输出，内容放在 code 元素中
func (w *markdownWalker) onCodeBlock(n ast.Node) {
	var buf strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(w.source))
	}
	code := strings.TrimSuffix(buf.String(), "\n")

	w.tree.open("p", nil, n)
	w.tree.open("code", nil, nil)
	w.tree.text(code)
	w.tree.closeOwner(n)
}

func extractCodeSpanText(n *ast.CodeSpan, source []byte) string {
	var buf strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if textNode, ok := c.(*ast.Text); ok {
			_, _ = buf.Write(textNode.Segment.Value(source))
		}
	}
	return buf.String()
}
