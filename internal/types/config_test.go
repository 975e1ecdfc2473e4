package types

import "testing"

func TestRenderConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *RenderConfig)
		wantErr bool
	}{
		{name: "default", mutate: func(c *RenderConfig) {}},
		{name: "missing font", mutate: func(c *RenderConfig) { c.FontFamily = "" }, wantErr: true},
		{name: "zero size", mutate: func(c *RenderConfig) { c.FontSize = 0 }, wantErr: true},
		{name: "negative heading size", mutate: func(c *RenderConfig) { c.HeadingSizes[1] = -2 }, wantErr: true},
		{name: "missing bullet", mutate: func(c *RenderConfig) { c.BulletSymbol = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultRenderConfig()
			tt.mutate(c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRenderConfig_HeadingSize(t *testing.T) {
	c := DefaultRenderConfig()
	c.HeadingSizes[2] = 0
	if got := c.HeadingSize(1); got != 32 {
		t.Errorf("HeadingSize(1) = %d, want 32", got)
	}
	if got := c.HeadingSize(3); got != c.FontSize {
		t.Errorf("HeadingSize(3) = %d, want body size %d", got, c.FontSize)
	}
	if got := c.HeadingSize(5); got != c.FontSize {
		t.Errorf("HeadingSize(5) = %d, want body size %d", got, c.FontSize)
	}
}

func TestRenderConfig_Clone(t *testing.T) {
	c := DefaultRenderConfig()
	cp := c.Clone()
	cp.Title = "changed"
	if c.Title != "" {
		t.Error("Clone() shares state with the original")
	}
	var nilCfg *RenderConfig
	if nilCfg.Clone() == nil {
		t.Error("Clone() on nil returned nil")
	}
}
