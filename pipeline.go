package wordify

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/riverfjs/wordify-go/internal/wordml"
)

// ContentType is the MIME type of the .docx output.
const ContentType = wordml.ContentType

// Result 记录一次管道处理的统计信息
type Result struct {
	Format SourceFormat
	Title  string
	Blocks int
	Runs   int
	Words  int
}

// Process 完整管道：源文本 → markup 树 → Document → .docx
//
// 步骤：
// 1. 按 Format 解析源文本为 markup 树
// 2. 转换为 Document（树不合法时失败，不输出任何内容）
// 3. 组装 WordprocessingML 包并写入 w
func Process(ctx context.Context, r io.Reader, w io.Writer, opts ...Option) (Result, error) {
	options := applyOptions(opts...)
	result := Result{Format: options.Format}

	if err := ctx.Err(); err != nil {
		return result, err
	}
	nodes, meta, err := ParseSource(r, options.Format)
	if err != nil {
		return result, err
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}
	doc, err := Convert(nodes)
	if err != nil {
		return result, err
	}

	if len(doc) == 0 && hasText(nodes) {
		// ol、h4-h6 等不产生块，其中的文本不会进入文档
		Logger.Debug("source text produced no blocks",
			zap.Stringer("format", options.Format),
			zap.Int("nodes", len(nodes)),
		)
	}

	result.Blocks = len(doc)
	result.Runs = CountRuns(doc)
	result.Words = CountWords(doc)

	cfg := options.Config.Clone()
	switch {
	case options.Title != "":
		cfg.Title = options.Title
	case cfg.Title == "":
		cfg.Title = meta.Title
	}
	if cfg.Author == "" {
		cfg.Author = meta.Author
	}
	result.Title = cfg.Title

	Logger.Debug("document converted",
		zap.Stringer("format", options.Format),
		zap.Int("blocks", result.Blocks),
		zap.Int("runs", result.Runs),
		zap.String("title", result.Title),
	)

	if err := ctx.Err(); err != nil {
		return result, err
	}
	if err := wordml.Assemble(w, doc, cfg); err != nil {
		return result, fmt.Errorf("assemble document: %w", err)
	}
	return result, nil
}

// hasText reports whether any text leaf under nodes contains non-space text.
func hasText(nodes []Node) bool {
	for _, n := range nodes {
		switch v := n.(type) {
		case Text:
			if strings.TrimSpace(v.Content) != "" {
				return true
			}
		case Element:
			if hasText(v.Children) {
				return true
			}
		}
	}
	return false
}
