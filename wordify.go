// Package wordify 将 HTML / Markdown 标记树转换为可写入 .docx 的文档模型
//
// 核心是一个纯函数：遍历 markup 树，按文档顺序生成 Heading / Paragraph /
// ListItem 块，每个块包含带样式（粗体、斜体、颜色）的 Run。
//
// 主要 API：
//   - Convert(): 将 markup 树转换为 Document
//   - ConvertHTML() / ConvertMarkdown() / ConvertJSON(): 从源文本转换
//   - Wordify(): 完整处理，直接写出 .docx
//
// 示例：
//
//	doc, err := wordify.ConvertHTML(`<h1>Title</h1><p>Hello <strong>world</strong></p>`)
//	for _, block := range doc {
//	    switch b := block.(type) {
//	    case wordify.Heading:
//	        // b.Level, b.Runs
//	    case wordify.Paragraph:
//	    case wordify.ListItem:
//	    }
//	}
//
//	// 完整处理
//	result, err := wordify.Wordify(ctx, src, out, wordify.WithSourceFormat(wordify.FormatMarkdown))
package wordify

import (
	"context"
	"io"
)

// Wordify 读取源文档并写出 .docx
//
// 这是完整的管道 API：解析源文本、转换为 Document、组装 WordprocessingML 包。
// 只需要文档模型时使用 Convert 系列函数。
//
// 参数：
//   - ctx: 上下文，在各阶段之间检查取消
//   - r: 源文档（HTML、Markdown 或 JSON markup 树）
//   - w: .docx 输出
//   - opts: 源格式、渲染配置等选项
//
// 返回：
//   - Result: 转换统计
//   - error: 错误信息；输入树不合法时 IsMalformedInput(err) 为 true
func Wordify(ctx context.Context, r io.Reader, w io.Writer, opts ...Option) (Result, error) {
	return Process(ctx, r, w, opts...)
}
