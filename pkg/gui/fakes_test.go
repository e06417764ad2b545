package gui

import "unicode/utf8"

// fakeFonts 等宽测试字体：每个码点（旧格式下每个字节）占 charWidth 像素
type fakeFonts struct {
	format      func() TextFormat
	charWidth   int
	height      int
	antialiased map[int]bool
	rendered    []renderCall
}

type renderCall struct {
	text  string
	font  int
	x, y  int
	color Color
}

func newFakeFonts(charWidth, height int) *fakeFonts {
	return &fakeFonts{charWidth: charWidth, height: height, antialiased: map[int]bool{}}
}

func (f *fakeFonts) FontHeight(font int) int {
	return f.height
}

func (f *fakeFonts) TextWidth(text string, font int) int {
	if f.format != nil && f.format() == TextFormatASCII {
		return len(text) * f.charWidth
	}
	return utf8.RuneCountInString(text) * f.charWidth
}

func (f *fakeFonts) IsAntialiased(font int) bool {
	return f.antialiased[font]
}

func (f *fakeFonts) RenderText(ds Bitmap, text string, font, x, y int, c Color) {
	f.rendered = append(f.rendered, renderCall{text: text, font: font, x: x, y: y, color: c})
}

// fakeBitmap 记录绘制调用的测试表面
type fakeBitmap struct {
	rects  []Rect
	colors []Color
}

func (b *fakeBitmap) CompatibleColor(index int) Color {
	return Color(0xFF000000 | uint32(index))
}

func (b *fakeBitmap) DrawRect(rc Rect, c Color) {
	b.rects = append(b.rects, rc)
	b.colors = append(b.colors, c)
}

// newTestTextBox 创建 width×height 的文本框，字体 6px/字符、10px 高
func newTestTextBox(width, height int) (*TextBox, *Runtime, *fakeFonts) {
	fonts := newFakeFonts(6, 10)
	rt := NewRuntime(fonts)
	fonts.format = rt.TextFormat
	tb := NewTextBox(rt)
	tb.Width = width
	tb.Height = height
	return tb, rt, fonts
}

func charKey(r rune) KeyInput {
	return KeyInput{Key: KeyCode(r), UChar: r, Text: string(r)}
}

var (
	enterKey     = KeyInput{Key: KeyReturn, UChar: '\r', Text: "\r"}
	backspaceKey = KeyInput{Key: KeyBackspace, UChar: '\b', Text: "\b"}
)
