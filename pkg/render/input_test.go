package render

import (
	"testing"
	"unicode/utf8"

	"github.com/decker502/agsgui/pkg/gui"
)

// TestKeyRepeat 测试按住按键的重复节奏
func TestKeyRepeat(t *testing.T) {
	tests := []struct {
		duration int
		want     bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{29, false},
		{30, true},
		{31, false},
		{33, true},
	}

	for _, tt := range tests {
		if got := KeyRepeat(tt.duration); got != tt.want {
			t.Errorf("KeyRepeat(%d) = %v, want %v", tt.duration, got, tt.want)
		}
	}
}

// TestTranslateRune 测试字符到键盘事件的转换
func TestTranslateRune(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want gui.KeyInput
	}{
		{"ascii letter", 'a', gui.KeyInput{Key: gui.KeyCode('a'), UChar: 'a', Text: "a"}},
		{"space", ' ', gui.KeyInput{Key: gui.KeySpace, UChar: ' ', Text: " "}},
		{"latin-1", 'é', gui.KeyInput{UChar: 'é', Text: "é"}},
		{"cyrillic", 'Ж', gui.KeyInput{UChar: 'Ж', Text: "Ж"}},
		{"cjk", '日', gui.KeyInput{UChar: '日', Text: "日"}},
		{"invalid", utf8.RuneError, gui.KeyInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TranslateRune(tt.r); got != tt.want {
				t.Errorf("TranslateRune(%q) = %+v, want %+v", tt.r, got, tt.want)
			}
		})
	}
}

// TestTranslatedRuneDrivesTextBox 测试转换后的事件驱动文本框
func TestTranslatedRuneDrivesTextBox(t *testing.T) {
	fonts := NewFonts()
	fonts.RegisterMono(0, NewMonoFont())
	rt := gui.NewRuntime(fonts)
	fonts.SetFormatSource(rt.TextFormat)

	tb := gui.NewTextBox(rt)
	tb.Width = 200
	tb.Height = 20

	for _, r := range "hi é" {
		tb.OnKeyPress(TranslateRune(r))
	}
	if tb.Text() != "hi é" {
		t.Errorf("Text() = %q, want %q", tb.Text(), "hi é")
	}

	tb.OnKeyPress(returnInput)
	if !tb.IsActivated() {
		t.Error("return input did not activate the text box")
	}
	if tb.OnKeyPress(escapeInput) {
		t.Error("escape should not be handled by the text box")
	}
}
