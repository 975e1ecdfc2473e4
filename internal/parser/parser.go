// Package parser 将 HTML 或 Markdown 源文本转换为 markup 树
package parser

import (
	"regexp"

	"github.com/riverfjs/wordify-go/internal/markup"
)

// Meta 是从源文档中取得的元数据
type Meta struct {
	Title  string `yaml:"title" toml:"title" json:"title"`
	Author string `yaml:"author" toml:"author" json:"author"`
}

// frame 是构建中的元素
type frame struct {
	tag      string
	attrs    map[string]string
	children []markup.Node
	owner    any // 打开该元素的源节点；nil 表示来自行内 HTML
}

func (f *frame) element() markup.Element {
	return markup.Element{
		Tag:        f.tag,
		Attributes: f.attrs,
		Children:   f.children,
	}
}

// treeBuilder keeps a stack of open elements and closes them into their
// parents. The bottom frame is the synthetic root and is never closed.
type treeBuilder struct {
	stack []*frame
}

func newTreeBuilder() *treeBuilder {
	return &treeBuilder{
		stack: []*frame{{tag: "#root"}},
	}
}

func (b *treeBuilder) top() *frame {
	return b.stack[len(b.stack)-1]
}

func (b *treeBuilder) text(s string) {
	if s == "" {
		return
	}
	top := b.top()
	// 相邻文本合并为一个叶子，与 HTML 解析结果保持一致
	if n := len(top.children); n > 0 {
		if prev, ok := top.children[n-1].(markup.Text); ok {
			top.children[n-1] = markup.Text{Content: prev.Content + s}
			return
		}
	}
	top.children = append(top.children, markup.Text{Content: s})
}

func (b *treeBuilder) open(tag string, attrs map[string]string, owner any) {
	b.stack = append(b.stack, &frame{tag: tag, attrs: attrs, owner: owner})
}

// closeTo pops frames down to and including index i.
func (b *treeBuilder) closeTo(i int) {
	for len(b.stack)-1 >= i && len(b.stack) > 1 {
		f := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		parent := b.top()
		parent.children = append(parent.children, f.element())
	}
}

// closeOwner 关闭由 owner 打开的元素，以及其中未闭合的行内 HTML 元素
func (b *treeBuilder) closeOwner(owner any) {
	for i := len(b.stack) - 1; i > 0; i-- {
		if b.stack[i].owner == owner {
			b.closeTo(i)
			return
		}
	}
}

// closeInline closes the innermost inline-HTML element named tag, if one is
// open inside the current source element. Unmatched end tags are ignored.
func (b *treeBuilder) closeInline(tag string) {
	for i := len(b.stack) - 1; i > 0; i-- {
		f := b.stack[i]
		if f.owner != nil {
			return
		}
		if f.tag == tag {
			b.closeTo(i)
			return
		}
	}
}

func (b *treeBuilder) result() []markup.Node {
	b.closeTo(1)
	return b.stack[0].children
}

// htmlSpaceRe 匹配 HTML 渲染时折叠为一个空格的空白序列
var htmlSpaceRe = regexp.MustCompile(`[ \t\r\n\f]+`)

// collapseSpace 把连续空白（含换行、缩进）折叠为单个空格
func collapseSpace(s string) string {
	return htmlSpaceRe.ReplaceAllString(s, " ")
}
