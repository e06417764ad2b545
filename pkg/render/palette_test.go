package render

import (
	"image/color"
	"testing"

	"github.com/decker502/agsgui/pkg/gui"
)

// TestGameColor 测试颜色编号转换
func TestGameColor(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  color.RGBA
	}{
		{"black", 0, color.RGBA{0, 0, 0, 255}},
		{"ega blue", 1, color.RGBA{0, 0, 170, 255}},
		{"ega white", 15, color.RGBA{255, 255, 255, 255}},
		{"gray ramp start", 16, color.RGBA{0, 0, 0, 255}},
		{"gray ramp mid", 24, color.RGBA{136, 136, 136, 255}},
		{"gray ramp end", 31, color.RGBA{255, 255, 255, 255}},
		{"rgb565 red", 0xF800, color.RGBA{255, 0, 0, 255}},
		{"rgb565 green", 0x07E0, color.RGBA{0, 255, 0, 255}},
		{"rgb565 blue", 0x001F, color.RGBA{0, 0, 255, 255}},
		{"high bits ignored", 0x1F800, color.RGBA{255, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GameColor(tt.index); got != tt.want {
				t.Errorf("GameColor(%d) = %v, want %v", tt.index, got, tt.want)
			}
		})
	}
}

// TestPackColor 测试颜色打包与还原
func TestPackColor(t *testing.T) {
	c := color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0x78}
	packed := PackColor(c)
	if packed != gui.Color(0x78123456) {
		t.Fatalf("PackColor = %#08x, want 0x78123456", uint32(packed))
	}
	if got := UnpackColor(packed); got != c {
		t.Errorf("UnpackColor = %v, want %v", got, c)
	}
}

// TestSurfaceCompatibleColor 测试表面颜色映射与调色板一致
func TestSurfaceCompatibleColor(t *testing.T) {
	s := NewSurface(nil)
	if got := s.CompatibleColor(4); got != PackColor(GameColor(4)) {
		t.Errorf("CompatibleColor(4) = %#08x", uint32(got))
	}
}
