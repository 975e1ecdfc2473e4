package wordify

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

// SourceFormat represents the encoding of a source document.
type SourceFormat int

const (
	// FormatHTML represents an HTML document or fragment.
	FormatHTML SourceFormat = iota
	// FormatMarkdown represents CommonMark/GFM text, optionally with front matter.
	FormatMarkdown
	// FormatJSON represents a markup tree encoded as JSON.
	FormatJSON
)

// String returns the string representation of SourceFormat.
func (f SourceFormat) String() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatMarkdown:
		return "markdown"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseSourceFormat parses a format name such as "html", "md" or "json".
func ParseSourceFormat(name string) (SourceFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "html", "htm", "xhtml":
		return FormatHTML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	}
	return 0, fmt.Errorf("unknown source format %q", name)
}

// DetectSourceFormat 根据文件名扩展名或 Content-Type 推断源格式，无法判断时返回 HTML
func DetectSourceFormat(filename, contentType string) SourceFormat {
	if ext := strings.TrimPrefix(filepath.Ext(filename), "."); ext != "" {
		if f, err := ParseSourceFormat(ext); err == nil {
			return f
		}
		if strings.EqualFold(ext, "markdown") || strings.EqualFold(ext, "mdown") {
			return FormatMarkdown
		}
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		switch mediaType {
		case "text/markdown", "text/x-markdown":
			return FormatMarkdown
		case "application/json":
			return FormatJSON
		}
	}
	return FormatHTML
}
