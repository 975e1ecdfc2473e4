package converter

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/riverfjs/wordify-go/internal/markup"
	"github.com/riverfjs/wordify-go/internal/types"
)

// colorDeclRe 只匹配独立的 color 属性，不匹配 background-color 等
//
// 子匹配 1 为 hex 数字，2-4 为 rgb() 分量。
var colorDeclRe = regexp.MustCompile(`(?i)(?:^|;)\s*color\s*:\s*(?:#([0-9a-f]{6})\b|rgb\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\))`)

// IsStyleTag reports whether a tag changes the style seen by its descendants.
func IsStyleTag(tag string) bool {
	switch tag {
	case "strong", "b", "em", "i", "span":
		return true
	}
	return false
}

// ResolveStyle returns the style visible to el's children given the style
// inherited from its ancestors. Fields the element does not set keep the
// inherited value.
func ResolveStyle(el markup.Element, inherited types.StyleSet) types.StyleSet {
	switch el.Name() {
	case "strong", "b":
		return inherited.WithBold()
	case "em", "i":
		return inherited.WithItalic()
	case "span":
		style, ok := el.Attr("style")
		if !ok {
			return inherited
		}
		if color, ok := ParseColor(style); ok {
			return inherited.WithColor(color)
		}
		return inherited
	}
	return inherited
}

// ParseColor extracts the foreground color from an inline style declaration.
//
// Accepted forms are "color: #RRGGBB" (digits returned as written) and
// "color: rgb(R, G, B)" (returned as upper-case hex). Any other form yields
// ok == false. Components above 255 are clamped. When color is declared more
// than once the last accepted declaration wins.
func ParseColor(style string) (color string, ok bool) {
	matches := colorDeclRe.FindAllStringSubmatch(style, -1)
	if len(matches) == 0 {
		return "", false
	}
	m := matches[len(matches)-1]
	if m[1] != "" {
		return m[1], true
	}

	var rgb [3]int
	for i := range rgb {
		v, err := strconv.Atoi(m[i+2])
		if err != nil || v > 255 {
			v = 255
		}
		rgb[i] = v
	}
	return fmt.Sprintf("%02X%02X%02X", rgb[0], rgb[1], rgb[2]), true
}
