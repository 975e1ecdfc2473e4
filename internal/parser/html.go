package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/riverfjs/wordify-go/internal/markup"
)

// skippedTags 的内容不是可见文本
var skippedTags = map[string]bool{
	"script":   true,
	"style":    true,
	"template": true,
	"noscript": true,
}

// ParseHTML parses an HTML document or fragment and returns the children of
// its body as a markup tree. The document title, if any, is returned in Meta.
func ParseHTML(r io.Reader) ([]markup.Node, Meta, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, Meta{}, fmt.Errorf("could not parse html: %w", err)
	}

	meta := Meta{
		Title: strings.TrimSpace(doc.Find("head title").First().Text()),
	}
	if author, ok := doc.Find(`head meta[name="author"]`).Attr("content"); ok {
		meta.Author = strings.TrimSpace(author)
	}

	nodes := make([]markup.Node, 0)
	doc.Find("body").Each(func(_ int, s *goquery.Selection) {
		for _, body := range s.Nodes {
			nodes = appendHTMLChildren(nodes, body, false)
		}
	})
	return nodes, meta, nil
}

// appendHTMLChildren 转换 parent 的子节点；pre 内保留原始空白
func appendHTMLChildren(nodes []markup.Node, parent *html.Node, pre bool) []markup.Node {
	for n := parent.FirstChild; n != nil; n = n.NextSibling {
		switch n.Type {
		case html.TextNode:
			content := n.Data
			if !pre {
				content = collapseSpace(content)
			}
			nodes = append(nodes, markup.Text{Content: content})
		case html.ElementNode:
			if skippedTags[n.Data] {
				continue
			}
			if n.DataAtom == atom.Br {
				// 与 Markdown 硬换行一致，组装时输出 w:br
				nodes = append(nodes, markup.Text{Content: "\n"})
				continue
			}
			nodes = append(nodes, markup.Element{
				Tag:        n.Data,
				Attributes: htmlAttributes(n.Attr),
				Children:   appendHTMLChildren(make([]markup.Node, 0), n, pre || n.DataAtom == atom.Pre),
			})
		}
	}
	return nodes
}

func htmlAttributes(attrs []html.Attribute) map[string]string {
	if len(attrs) == 0 {
		return nil
	}
	out := make(map[string]string, len(attrs))
	for _, a := range attrs {
		if a.Namespace != "" {
			continue
		}
		out[a.Key] = a.Val
	}
	return out
}

// parseInlineTag 解析 Markdown 中的行内 HTML 标签（如 <span style="...">）
//
// 返回标签名、属性，以及是否为结束标签。无法识别时 ok 为 false。
func parseInlineTag(raw string) (tag string, attrs map[string]string, closing bool, ok bool) {
	z := html.NewTokenizer(strings.NewReader(raw))
	switch z.Next() {
	case html.StartTagToken:
		t := z.Token()
		return t.Data, htmlAttributes(t.Attr), false, true
	case html.EndTagToken:
		t := z.Token()
		return t.Data, nil, true, true
	}
	return "", nil, false, false
}
