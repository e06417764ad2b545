package gui

import "image"

// Point 像素坐标
type Point struct {
	X, Y int
}

// Rect 闭区间矩形：Right 与 Bottom 是包含在内的最后一个像素
//
// 宽或高为 0 的矩形 Right = Left-1 或 Bottom = Top-1。
type Rect struct {
	Left, Top, Right, Bottom int
}

// RectWH 由左上角与宽高构造矩形
func RectWH(x, y, width, height int) Rect {
	return Rect{Left: x, Top: y, Right: x + width - 1, Bottom: y + height - 1}
}

// Width 矩形宽度
func (r Rect) Width() int {
	return r.Right - r.Left + 1
}

// Height 矩形高度
func (r Rect) Height() int {
	return r.Bottom - r.Top + 1
}

// Offset 平移矩形
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// Image 转换为半开区间的 image.Rectangle（供 ebiten 绘制使用）
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Right+1, r.Bottom+1)
}

// SumRects 返回同时包含 a 与 b 的最小矩形
//
// 不跳过空矩形：宽或高为 0 的矩形同样参与合并。
func SumRects(a, b Rect) Rect {
	return Rect{
		Left:   min(a.Left, b.Left),
		Top:    min(a.Top, b.Top),
		Right:  max(a.Right, b.Right),
		Bottom: max(a.Bottom, b.Bottom),
	}
}
