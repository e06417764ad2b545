package main

import (
	"github.com/decker502/agsgui/internal/textenc"
	"github.com/decker502/agsgui/pkg/gui"
	"github.com/decker502/agsgui/pkg/render"
)

// 数据种类
const (
	kindAuthored = "authored"
	kindSavegame = "savegame"
)

// textBoxDocument 文本框的 YAML 表示
type textBoxDocument struct {
	Name         string   `yaml:"name,omitempty"`
	X            int      `yaml:"x"`
	Y            int      `yaml:"y"`
	Width        int      `yaml:"width"`
	Height       int      `yaml:"height"`
	ZOrder       int      `yaml:"zorder"`
	Transparency int      `yaml:"transparency,omitempty"`
	Enabled      bool     `yaml:"enabled"`
	Visible      bool     `yaml:"visible"`
	Handlers     []string `yaml:"handlers,omitempty"`
	Text         string   `yaml:"text"`
	Font         int      `yaml:"font"`
	TextColor    int      `yaml:"textColor"`
	ShowBorder   bool     `yaml:"showBorder"`
}

// newToolTextBox 创建不绘制的文本框（无字体）
func newToolTextBox() *gui.TextBox {
	return gui.NewTextBox(gui.NewRuntime(render.NewFonts()))
}

// documentOf 提取文本框状态；legacyText 时文本按 Windows-1251 解码
func documentOf(tb *gui.TextBox, legacyText bool) (textBoxDocument, error) {
	text := tb.Text()
	if legacyText {
		decoded, err := textenc.Win1251ToUTF8(text)
		if err != nil {
			return textBoxDocument{}, err
		}
		text = decoded
	}

	doc := textBoxDocument{
		Name:         tb.Name,
		X:            tb.X,
		Y:            tb.Y,
		Width:        tb.Width,
		Height:       tb.Height,
		ZOrder:       tb.ZOrder,
		Transparency: tb.Transparency,
		Enabled:      tb.IsEnabled(),
		Visible:      tb.IsVisible(),
		Text:         text,
		Font:         tb.Font(),
		TextColor:    tb.TextColor(),
		ShowBorder:   tb.IsBorderShown(),
	}
	for i := uint32(0); i < tb.EventCount(); i++ {
		if h := tb.EventHandler(int(i)); h != "" {
			doc.Handlers = append(doc.Handlers, h)
		}
	}
	return doc, nil
}

// textBox 由文档构建文本框；legacyText 时文本转换为 Windows-1251
func (d textBoxDocument) textBox(legacyText bool) *gui.TextBox {
	tb := newToolTextBox()
	tb.Name = d.Name
	tb.X, tb.Y = d.X, d.Y
	tb.Width, tb.Height = d.Width, d.Height
	tb.ZOrder = d.ZOrder
	tb.Transparency = d.Transparency
	tb.SetEnabled(d.Enabled)
	tb.SetVisible(d.Visible)
	for i, h := range d.Handlers {
		tb.SetEventHandler(i, h)
	}

	text := d.Text
	if legacyText {
		text = textenc.UTF8ToWin1251(text)
	}
	tb.SetText(text)
	tb.SetFont(d.Font)
	tb.SetTextColor(d.TextColor)
	tb.SetShowBorder(d.ShowBorder)
	return tb
}
