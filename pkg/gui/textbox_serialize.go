package gui

import (
	"fmt"
	"io"

	"github.com/decker502/agsgui/internal/stream"
)

// WriteToFile 以当前版本的游戏数据格式写出文本框
//
// 字段顺序：基类、文本、字体、颜色、标志位。
func (tb *TextBox) WriteToFile(out io.Writer) error {
	return tb.WriteToFileVersion(out, GuiVersionCurrent)
}

// WriteToFileVersion 按指定版本写出游戏数据格式，供编辑工具导出旧格式使用
func (tb *TextBox) WriteToFileVersion(out io.Writer, ver GuiVersion) error {
	w := stream.NewWriter(out)
	if err := tb.Object.writeToFile(w, ver); err != nil {
		return fmt.Errorf("write textbox base: %w", err)
	}
	var err error
	if ver < GuiVersion350 {
		err = w.WriteFixedString(tb.text, legacyTextLength)
	} else {
		err = w.WriteString(tb.text)
	}
	if err != nil {
		return fmt.Errorf("write textbox text: %w", err)
	}
	flags := tb.boxFlags
	if ver < GuiVersion350 {
		flags ^= TextBoxOldFmtXorMask
	}
	for _, v := range []int32{int32(tb.font), int32(tb.textColor), int32(flags)} {
		if err := w.WriteInt32(v); err != nil {
			return fmt.Errorf("write textbox properties: %w", err)
		}
	}
	return nil
}

// ReadFromFile 读取游戏数据格式的文本框
//
// 版本 < 350 时文本为 200 字节定长缓冲区，标志位需按 TextBoxOldFmtXorMask 取反。
// 颜色 0 视为未设置并替换为 16。
func (tb *TextBox) ReadFromFile(in io.Reader, ver GuiVersion) error {
	r := stream.NewReader(in)
	if err := tb.Object.readFromFile(r, ver, textBoxEventCount); err != nil {
		return fmt.Errorf("read textbox base: %w", err)
	}

	var err error
	if ver < GuiVersion350 {
		tb.text, err = r.ReadFixedString(legacyTextLength)
	} else {
		tb.text, err = r.ReadString()
	}
	if err != nil {
		return fmt.Errorf("read textbox text: %w", err)
	}

	var vals [3]int32
	for i := range vals {
		if vals[i], err = r.ReadInt32(); err != nil {
			return fmt.Errorf("read textbox properties: %w", err)
		}
	}
	tb.font = int(vals[0])
	tb.textColor = int(vals[1])
	tb.boxFlags = TextBoxFlags(uint32(vals[2]))
	if ver < GuiVersion350 {
		tb.boxFlags ^= TextBoxOldFmtXorMask
	}
	if tb.textColor == 0 {
		tb.textColor = defaultTextColor
	}
	tb.MarkChanged()
	return nil
}

// WriteToSavegame 写出存档中的文本框状态
//
// 字段顺序：基类、字体、颜色、文本、标志位（与游戏数据格式不同）。
func (tb *TextBox) WriteToSavegame(out io.Writer) error {
	return tb.WriteToSavegameVersion(out, GuiSvgVersionCurrent)
}

// WriteToSavegameVersion 按指定存档版本写出；版本 < 350 不含标志位
func (tb *TextBox) WriteToSavegameVersion(out io.Writer, ver GuiSvgVersion) error {
	w := stream.NewWriter(out)
	if err := tb.Object.writeToSavegame(w, ver); err != nil {
		return fmt.Errorf("write textbox base state: %w", err)
	}
	if err := w.WriteInt32(int32(tb.font)); err != nil {
		return fmt.Errorf("write textbox font: %w", err)
	}
	if err := w.WriteInt32(int32(tb.textColor)); err != nil {
		return fmt.Errorf("write textbox color: %w", err)
	}
	if err := w.WriteString(tb.text); err != nil {
		return fmt.Errorf("write textbox text: %w", err)
	}
	if ver >= GuiSvgVersion350 {
		if err := w.WriteInt32(int32(tb.boxFlags)); err != nil {
			return fmt.Errorf("write textbox flags: %w", err)
		}
	}
	return nil
}

// ReadFromSavegame 读取存档中的文本框状态
//
// 版本 < 350 的存档没有标志位，保留当前值。
func (tb *TextBox) ReadFromSavegame(in io.Reader, ver GuiSvgVersion) error {
	r := stream.NewReader(in)
	if err := tb.Object.readFromSavegame(r, ver); err != nil {
		return fmt.Errorf("read textbox base state: %w", err)
	}
	font, err := r.ReadInt32()
	if err != nil {
		return fmt.Errorf("read textbox font: %w", err)
	}
	color, err := r.ReadInt32()
	if err != nil {
		return fmt.Errorf("read textbox color: %w", err)
	}
	text, err := r.ReadString()
	if err != nil {
		return fmt.Errorf("read textbox text: %w", err)
	}
	tb.font = int(font)
	tb.textColor = int(color)
	tb.text = text
	if ver >= GuiSvgVersion350 {
		flags, err := r.ReadInt32()
		if err != nil {
			return fmt.Errorf("read textbox flags: %w", err)
		}
		tb.boxFlags = TextBoxFlags(uint32(flags))
	}
	tb.MarkChanged()
	return nil
}
