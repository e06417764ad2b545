package render

import (
	"github.com/decker502/agsgui/pkg/gui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface 将 *ebiten.Image 包装为 gui.Bitmap
type Surface struct {
	img *ebiten.Image
}

// NewSurface 创建绘制表面
func NewSurface(img *ebiten.Image) *Surface {
	return &Surface{img: img}
}

// Image 返回底层图像（供字体绘制使用）
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

// CompatibleColor 游戏颜色编号 → 打包颜色
func (s *Surface) CompatibleColor(index int) gui.Color {
	return PackColor(GameColor(index))
}

// DrawRect 绘制一像素宽的矩形边框（闭区间坐标）
func (s *Surface) DrawRect(rc gui.Rect, c gui.Color) {
	w, h := rc.Width(), rc.Height()
	if w <= 0 || h <= 0 {
		return
	}
	clr := UnpackColor(c)
	x, y := float32(rc.Left), float32(rc.Top)

	// 上、下、左、右四条边，关闭抗锯齿保证像素对齐
	vector.DrawFilledRect(s.img, x, y, float32(w), 1, clr, false)
	if h > 1 {
		vector.DrawFilledRect(s.img, x, float32(rc.Bottom), float32(w), 1, clr, false)
	}
	if h > 2 {
		vector.DrawFilledRect(s.img, x, y+1, 1, float32(h-2), clr, false)
		if w > 1 {
			vector.DrawFilledRect(s.img, float32(rc.Right), y+1, 1, float32(h-2), clr, false)
		}
	}
}
