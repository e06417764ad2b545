package gui

import (
	"log"

	"github.com/decker502/agsgui/internal/textenc"
)

// TextBoxFlags 文本框专有标志位
type TextBoxFlags uint32

const (
	// TextBoxShowBorder 绘制边框
	TextBoxShowBorder TextBoxFlags = 0x0001

	TextBoxDefaultFlags = TextBoxShowBorder
	// TextBoxOldFmtXorMask 旧格式存储的是 "不显示边框"，读取时需取反
	TextBoxOldFmtXorMask = TextBoxShowBorder
)

const (
	// legacyTextLength 旧格式中文本的固定缓冲区大小
	legacyTextLength = 200
	// defaultTextColor 文本颜色为 0 时的兼容替代值
	defaultTextColor = 16
	// legacyInputThreshold UChar 超过该值时走 Windows-1251 兼容输入
	legacyInputThreshold = 256
)

// TextBox 事件
const (
	TextBoxEventActivate = iota
	textBoxEventCount
)

var (
	textBoxEventNames = [textBoxEventCount]string{"Activate"}
	textBoxEventArgs  = [textBoxEventCount]string{"GUIControl *control"}
)

// TextBox 单行文本输入框
//
// 光标始终位于文本末尾；按回车设置激活标记，由宿主读取并清除。
// 文本是按当前 TextFormat 解释的原始字节序列。
type TextBox struct {
	Object

	host      Host
	text      string
	font      int
	textColor int
	boxFlags  TextBoxFlags
	activated bool
}

// NewTextBox 创建文本框
func NewTextBox(host Host) *TextBox {
	return &TextBox{
		Object:   newObject(textBoxEventCount),
		host:     host,
		boxFlags: TextBoxDefaultFlags,
	}
}

// Host 返回运行时环境
func (tb *TextBox) Host() Host {
	return tb.host
}

// Text 当前文本
func (tb *TextBox) Text() string {
	return tb.text
}

// SetText 设置文本
func (tb *TextBox) SetText(text string) {
	if tb.text != text {
		tb.text = text
		tb.MarkChanged()
	}
}

// Font 字体 ID
func (tb *TextBox) Font() int {
	return tb.font
}

// SetFont 设置字体 ID
func (tb *TextBox) SetFont(font int) {
	if tb.font != font {
		tb.font = font
		tb.MarkChanged()
	}
}

// TextColor 文本颜色编号
func (tb *TextBox) TextColor() int {
	return tb.textColor
}

// SetTextColor 设置文本颜色编号
func (tb *TextBox) SetTextColor(color int) {
	if tb.textColor != color {
		tb.textColor = color
		tb.MarkChanged()
	}
}

// TextBoxFlags 文本框标志位
func (tb *TextBox) TextBoxFlags() TextBoxFlags {
	return tb.boxFlags
}

// SetTextBoxFlags 整体替换文本框标志位
func (tb *TextBox) SetTextBoxFlags(flags TextBoxFlags) {
	if tb.boxFlags != flags {
		tb.boxFlags = flags
		tb.MarkChanged()
	}
}

// IsBorderShown 是否绘制边框
func (tb *TextBox) IsBorderShown() bool {
	return tb.boxFlags&TextBoxShowBorder != 0
}

// SetShowBorder 切换边框标志位，其余位保持不变
func (tb *TextBox) SetShowBorder(on bool) {
	next := tb.boxFlags &^ TextBoxShowBorder
	if on {
		next |= TextBoxShowBorder
	}
	tb.SetTextBoxFlags(next)
}

// IsActivated 用户是否已按回车提交
func (tb *TextBox) IsActivated() bool {
	return tb.activated
}

// SetActivated 修改激活标记；控件自身从不清除它
func (tb *TextBox) SetActivated(on bool) {
	tb.activated = on
}

// HasAlphaChannel 当前字体为抗锯齿字体时返回 true
func (tb *TextBox) HasAlphaChannel() bool {
	return tb.host.Fonts().IsAntialiased(tb.font)
}

// EventCount 支持的脚本事件数
func (tb *TextBox) EventCount() uint32 {
	return textBoxEventCount
}

// EventName 事件名，越界返回空串
func (tb *TextBox) EventName(i uint32) string {
	if i >= textBoxEventCount {
		return ""
	}
	return textBoxEventNames[i]
}

// EventArgs 事件参数签名（脚本桥接层解析），越界返回空串
func (tb *TextBox) EventArgs(i uint32) string {
	if i >= textBoxEventCount {
		return ""
	}
	return textBoxEventArgs[i]
}

// textAnchor 文本相对控件左上角的绘制位置
func (tb *TextBox) textAnchor() Point {
	off := 1 + tb.host.FixedPixelSize(1)
	return Point{X: off, Y: off}
}

// maxTextWidth 文本允许的最大像素宽度（右侧预留光标空间）
func (tb *TextBox) maxTextWidth() int {
	return tb.Width - (6 + tb.host.FixedPixelSize(5))
}

// CalcGraphicRect 计算控件的绘制范围（相对控件左上角）
//
// clipped 为 true 时只返回控件自身矩形；否则合并文本与光标可能超出的部分。
func (tb *TextBox) CalcGraphicRect(clipped bool) Rect {
	rc := RectWH(0, 0, tb.Width, tb.Height)
	if clipped {
		return rc
	}

	fonts := tb.host.Fonts()
	textRc := CalcTextGraphicalRect(fonts, tb.text, tb.font, tb.textAnchor())
	if tb.host.IsGUIEnabled(&tb.Object) {
		caret := RectWH(
			textRc.Right+3,
			1+fonts.FontHeight(tb.font),
			tb.host.FixedPixelSize(5),
			tb.host.FixedPixelSize(1)-1)
		textRc = SumRects(textRc, caret)
	}
	return SumRects(rc, textRc)
}

// Draw 在 (x, y) 处绘制边框、文本与光标
func (tb *TextBox) Draw(ds Bitmap, x, y int) {
	textColor := ds.CompatibleColor(tb.textColor)
	if tb.IsBorderShown() {
		ds.DrawRect(RectWH(x, y, tb.Width, tb.Height), textColor)
		if px := tb.host.FixedPixelSize(1); px > 1 {
			ds.DrawRect(Rect{Left: x + 1, Top: y + 1, Right: x + tb.Width - px, Bottom: y + tb.Height - px}, textColor)
		}
	}
	tb.DrawTextBoxContents(ds, x, y, textColor)
}

// DrawTextBoxContents 绘制文本，控件可交互时在文本末尾绘制光标
func (tb *TextBox) DrawTextBoxContents(ds Bitmap, x, y int, c Color) {
	fonts := tb.host.Fonts()
	at := tb.textAnchor()
	fonts.RenderText(ds, tb.text, tb.font, x+at.X, y+at.Y, c)

	if tb.host.IsGUIEnabled(&tb.Object) {
		caretWidth := tb.host.FixedPixelSize(5)
		cx := x + fonts.TextWidth(tb.text, tb.font) + 3
		cy := y + 1 + fonts.FontHeight(tb.font)
		ds.DrawRect(Rect{Left: cx, Top: cy, Right: cx + caretWidth, Bottom: cy + tb.host.FixedPixelSize(1) - 1}, c)
	}
}

// OnKeyPress 处理一次按键，返回事件是否被文本框消费
func (tb *TextBox) OnKeyPress(ki KeyInput) bool {
	switch ki.Key {
	case KeyReturn:
		tb.activated = true
		return true
	case KeyBackspace:
		tb.backspace()
		tb.MarkChanged()
		return true
	}

	if ki.UChar > legacyInputThreshold {
		// 以高位 UChar 上报单字节代码页输入的输入法：转为 Windows-1251 追加
		prev := len(tb.text)
		tb.text += textenc.UTF8ToWin1251(ki.Text)
		if tb.exceedsWidth() {
			log.Printf("[TextBox] cp1251 input exceeds width %d, rolled back", tb.maxTextWidth())
			tb.text = tb.text[:prev]
		}
		tb.MarkChanged()
		return true
	}
	if ki.UChar == 0 {
		return false
	}

	if tb.host.TextFormat() == TextFormatUTF8 {
		tb.text += ki.Text
	} else if ki.UChar < legacyInputThreshold {
		tb.text += string([]byte{byte(ki.UChar)})
	} else {
		// 旧格式无法表示的字符：不追加，但仍视为已处理，避免落到其他控件
		return true
	}

	if tb.exceedsWidth() {
		tb.backspace()
	}
	tb.MarkChanged()
	return true
}

func (tb *TextBox) exceedsWidth() bool {
	return tb.host.Fonts().TextWidth(tb.text, tb.font) > tb.maxTextWidth()
}

// backspace 删除末尾一个字符：UTF-8 下为一个码点，旧格式下为一个字节
func (tb *TextBox) backspace() {
	if tb.text == "" {
		return
	}
	if tb.host.TextFormat() == TextFormatUTF8 {
		tb.text = tb.text[:textenc.BackOneChar(tb.text)]
		return
	}
	tb.text = tb.text[:len(tb.text)-1]
}
