package render

import (
	"image/color"

	"github.com/decker502/agsgui/pkg/gui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/mattn/go-runewidth"
)

// 内置调试字体的字形尺寸
const (
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
)

// MonoFont 等宽位图字体，使用 ebiten 内置调试字体绘制
//
// UTF-8 格式下按终端列宽计算（CJK 字符占两格），单字节格式下每个字节占一格。
type MonoFont struct {
	cellWidth  int
	cellHeight int
	cond       *runewidth.Condition
	scratch    *ebiten.Image
}

// NewMonoFont 创建默认尺寸的等宽字体
func NewMonoFont() *MonoFont {
	return &MonoFont{
		cellWidth:  debugGlyphWidth,
		cellHeight: debugGlyphHeight,
		// 不随系统区域设置把歧义宽度字符算作两格
		cond: &runewidth.Condition{EastAsianWidth: false},
	}
}

// CellWidth 返回单元格宽度
func (m *MonoFont) CellWidth() int {
	return m.cellWidth
}

func (m *MonoFont) height() int {
	return m.cellHeight
}

func (m *MonoFont) width(s string, format gui.TextFormat) int {
	if format == gui.TextFormatASCII {
		return len(s) * m.cellWidth
	}
	return m.cond.StringWidth(s) * m.cellWidth
}

func (m *MonoFont) antialiased() bool {
	return false
}

// draw 调试字体只能绘制白色，先画到暂存图像再按颜色缩放
func (m *MonoFont) draw(dst *ebiten.Image, s string, format gui.TextFormat, x, y int, clr color.RGBA) {
	s = displayText(s, format)
	w := m.width(s, gui.TextFormatUTF8)
	if w <= 0 {
		return
	}

	if m.scratch == nil || m.scratch.Bounds().Dx() < w {
		if m.scratch != nil {
			m.scratch.Deallocate()
		}
		m.scratch = ebiten.NewImage(w, m.cellHeight)
	}
	m.scratch.Clear()
	ebitenutil.DebugPrintAt(m.scratch, s, 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(m.scratch, op)
}
