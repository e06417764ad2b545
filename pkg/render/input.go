package render

import (
	"unicode/utf8"

	"github.com/decker502/agsgui/pkg/gui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyRepeat 判断按住时长为 duration 帧的按键本帧是否触发
// 第 1 帧立即触发，30 帧后每 3 帧触发一次
func KeyRepeat(duration int) bool {
	return duration == 1 || (duration >= 30 && duration%3 == 0)
}

// TranslateRune 将一个输入字符转换为键盘事件
func TranslateRune(r rune) gui.KeyInput {
	ki := gui.KeyInput{UChar: r}
	if r == utf8.RuneError || r < 0 {
		ki.UChar = 0
		return ki
	}
	if r < 128 {
		ki.Key = gui.KeyCode(r)
	}
	ki.Text = string(r)
	return ki
}

// 控制键对应的事件，无文本
var (
	returnInput    = gui.KeyInput{Key: gui.KeyReturn, UChar: '\r', Text: "\r"}
	backspaceInput = gui.KeyInput{Key: gui.KeyBackspace, UChar: '\b', Text: "\b"}
	escapeInput    = gui.KeyInput{Key: gui.KeyEscape}
	tabInput       = gui.KeyInput{Key: gui.KeyTab}
)

// PollKeyInputs 收集本帧的键盘事件并追加到 dst
//
// 必须在 ebiten 的 Update 中调用。
func PollKeyInputs(dst []gui.KeyInput) []gui.KeyInput {
	// 1. 文本字符
	for _, r := range ebiten.AppendInputChars(nil) {
		dst = append(dst, TranslateRune(r))
	}

	// 2. 退格键，按住连续删除
	if KeyRepeat(inpututil.KeyPressDuration(ebiten.KeyBackspace)) {
		dst = append(dst, backspaceInput)
	}

	// 3. 其它控制键
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		dst = append(dst, returnInput)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		dst = append(dst, tabInput)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		dst = append(dst, escapeInput)
	}
	return dst
}
