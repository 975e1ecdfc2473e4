package wordify

import "strings"

// PlainText 返回文档的纯文本，块之间以换行分隔
func PlainText(doc Document) string {
	var b strings.Builder
	for i, block := range doc {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, r := range block.BlockRuns() {
			b.WriteString(r.Text)
		}
	}
	return b.String()
}

// CountWords 计算文档中以空白分隔的词数
func CountWords(doc Document) int {
	count := 0
	for _, block := range doc {
		var b strings.Builder
		for _, r := range block.BlockRuns() {
			b.WriteString(r.Text)
		}
		count += len(strings.Fields(b.String()))
	}
	return count
}

// CountRuns returns the total number of runs in doc.
func CountRuns(doc Document) int {
	count := 0
	for _, block := range doc {
		count += len(block.BlockRuns())
	}
	return count
}
