package wordify

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/riverfjs/wordify-go/internal/converter"
	"github.com/riverfjs/wordify-go/internal/markup"
	"github.com/riverfjs/wordify-go/internal/parser"
)

// Meta 是源文档中的元数据（标题、作者）
type Meta = parser.Meta

// Convert 将 markup 树转换为 Document
//
// 纯函数，不共享状态，可并发调用。树不合法时返回错误且不返回 Document。
func Convert(nodes []Node) (Document, error) {
	return converter.Convert(nodes)
}

// ConvertHTML 解析 HTML 并转换为 Document
func ConvertHTML(html string) (Document, error) {
	doc, _, err := convertSource(strings.NewReader(html), FormatHTML)
	return doc, err
}

// ConvertMarkdown 解析 Markdown 并转换为 Document
func ConvertMarkdown(markdown string) (Document, error) {
	doc, _, err := convertSource(strings.NewReader(markdown), FormatMarkdown)
	return doc, err
}

// ConvertJSON 解码 JSON markup 树并转换为 Document
func ConvertJSON(tree string) (Document, error) {
	doc, _, err := convertSource(strings.NewReader(tree), FormatJSON)
	return doc, err
}

// ParseSource reads r in the given format and returns its markup tree.
func ParseSource(r io.Reader, format SourceFormat) ([]Node, Meta, error) {
	switch format {
	case FormatHTML:
		return parser.ParseHTML(r)
	case FormatMarkdown:
		src, err := io.ReadAll(r)
		if err != nil {
			return nil, Meta{}, fmt.Errorf("read markdown: %w", err)
		}
		return parser.ParseMarkdown(src)
	case FormatJSON:
		nodes, err := markup.Decode(r)
		return nodes, Meta{}, err
	}
	return nil, Meta{}, fmt.Errorf("unsupported source format %v", format)
}

func convertSource(r io.Reader, format SourceFormat) (Document, Meta, error) {
	nodes, meta, err := ParseSource(r, format)
	if err != nil {
		return nil, Meta{}, err
	}
	doc, err := Convert(nodes)
	if err != nil {
		return nil, Meta{}, err
	}
	return doc, meta, nil
}

// ParseAndConvert is ConvertHTML/ConvertMarkdown/ConvertJSON for raw bytes.
func ParseAndConvert(src []byte, format SourceFormat) (Document, Meta, error) {
	return convertSource(bytes.NewReader(src), format)
}
