package types

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// RenderConfig 渲染配置，供 WordprocessingML 组装使用
//
// 字号单位为半磅（half-points），与 w:sz 一致：24 表示 12pt。
type RenderConfig struct {
	FontFamily   string
	FontSize     int
	HeadingSizes [3]int
	BulletSymbol string
	Title        string
	Author       string
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		FontFamily:   "Calibri",
		FontSize:     22,
		HeadingSizes: [3]int{32, 28, 24},
		BulletSymbol: "•",
	}
}

// Clone returns a copy that can be modified without affecting c.
func (c *RenderConfig) Clone() *RenderConfig {
	if c == nil {
		return DefaultRenderConfig()
	}
	cp := *c
	return &cp
}

// HeadingSize returns the font size for a heading level, falling back to the
// body size for levels outside 1-3.
func (c *RenderConfig) HeadingSize(level int) int {
	if level < 1 || level > len(c.HeadingSizes) || c.HeadingSizes[level-1] == 0 {
		return c.FontSize
	}
	return c.HeadingSizes[level-1]
}

// Validate checks that the configuration can be rendered.
func (c *RenderConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.FontFamily, validation.Required),
		validation.Field(&c.FontSize, validation.Required, validation.Min(2), validation.Max(3276)),
		validation.Field(&c.HeadingSizes, validation.Each(validation.Min(0), validation.Max(3276))),
		validation.Field(&c.BulletSymbol, validation.Required, validation.RuneLength(1, 4)),
	)
}
