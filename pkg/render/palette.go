// Package render 基于 ebiten 实现 GUI 控件所需的绘制表面、字体与键盘输入
package render

import (
	"image/color"

	"github.com/decker502/agsgui/pkg/gui"
)

// standardPalette 颜色编号 0..31 对应的固定调色板
// 0..15 为 EGA 颜色，16..31 为由黑到白的灰阶
var standardPalette = func() [32]color.RGBA {
	p := [32]color.RGBA{
		{0, 0, 0, 255}, {0, 0, 170, 255}, {0, 170, 0, 255}, {0, 170, 170, 255},
		{170, 0, 0, 255}, {170, 0, 170, 255}, {170, 85, 0, 255}, {170, 170, 170, 255},
		{85, 85, 85, 255}, {85, 85, 255, 255}, {85, 255, 85, 255}, {85, 255, 255, 255},
		{255, 85, 85, 255}, {255, 85, 255, 255}, {255, 255, 85, 255}, {255, 255, 255, 255},
	}
	for i := 16; i < 32; i++ {
		v := uint8((i - 16) * 17)
		p[i] = color.RGBA{v, v, v, 255}
	}
	return p
}()

// GameColor 将游戏颜色编号转换为 RGBA
//
// 0..31 查固定调色板，其余按 RGB565 解码（超出 16 位的部分被忽略）。
func GameColor(index int) color.RGBA {
	if index >= 0 && index < len(standardPalette) {
		return standardPalette[index]
	}
	c := uint32(index) & 0xFFFF
	r := (c >> 11) & 0x1F
	g := (c >> 5) & 0x3F
	b := c & 0x1F
	return color.RGBA{
		R: uint8(r * 255 / 31),
		G: uint8(g * 255 / 63),
		B: uint8(b * 255 / 31),
		A: 255,
	}
}

// PackColor 将 RGBA 打包为 gui.Color（0xAARRGGBB）
func PackColor(c color.RGBA) gui.Color {
	return gui.Color(uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B))
}

// UnpackColor 将 gui.Color 还原为 RGBA
func UnpackColor(c gui.Color) color.RGBA {
	return color.RGBA{
		A: uint8(c >> 24),
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
	}
}
