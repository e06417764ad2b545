package render

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/decker502/agsgui/internal/textenc"
	"github.com/decker502/agsgui/pkg/gui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// fontFace 字体注册表中单个字体的实现
type fontFace interface {
	height() int
	width(s string, format gui.TextFormat) int
	antialiased() bool
	draw(dst *ebiten.Image, s string, format gui.TextFormat, x, y int, clr color.RGBA)
}

// Fonts 按字体编号管理字体，实现 gui.FontRenderer
//
// 未注册的字体编号度量为 0，绘制为空操作。
type Fonts struct {
	faces  map[int]fontFace
	format func() gui.TextFormat
}

// NewFonts 创建空的字体注册表
func NewFonts() *Fonts {
	return &Fonts{faces: make(map[int]fontFace)}
}

// SetFormatSource 设置文本格式来源（通常为 Runtime.TextFormat）
// 未设置时按 UTF-8 处理
func (f *Fonts) SetFormatSource(format func() gui.TextFormat) {
	f.format = format
}

func (f *Fonts) currentFormat() gui.TextFormat {
	if f.format == nil {
		return gui.TextFormatUTF8
	}
	return f.format()
}

// RegisterFace 注册矢量字体
func (f *Fonts) RegisterFace(id int, face text.Face, antialiased bool) {
	f.faces[id] = &vectorFace{face: face, aa: antialiased}
}

// RegisterMono 注册等宽位图字体
func (f *Fonts) RegisterMono(id int, mono *MonoFont) {
	f.faces[id] = mono
}

// Has 判断字体编号是否已注册
func (f *Fonts) Has(id int) bool {
	_, ok := f.faces[id]
	return ok
}

func (f *Fonts) FontHeight(font int) int {
	face, ok := f.faces[font]
	if !ok {
		return 0
	}
	return face.height()
}

func (f *Fonts) TextWidth(s string, font int) int {
	face, ok := f.faces[font]
	if !ok || s == "" {
		return 0
	}
	return face.width(s, f.currentFormat())
}

func (f *Fonts) IsAntialiased(font int) bool {
	face, ok := f.faces[font]
	return ok && face.antialiased()
}

// RenderText 绘制文本，ds 需要能提供 *ebiten.Image（如 *Surface）
func (f *Fonts) RenderText(ds gui.Bitmap, s string, font, x, y int, c gui.Color) {
	face, ok := f.faces[font]
	if !ok || s == "" {
		return
	}
	target, ok := ds.(interface{ Image() *ebiten.Image })
	if !ok {
		log.Printf("[Fonts] Warning: bitmap %T cannot be drawn on", ds)
		return
	}
	face.draw(target.Image(), s, f.currentFormat(), x, y, UnpackColor(c))
}

// LoadFace 从字体文件数据创建矢量字体
func LoadFace(data []byte, size float64) (*text.GoTextFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source: %w", err)
	}
	return &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}, nil
}

// vectorFace 基于 text/v2 的矢量字体
type vectorFace struct {
	face text.Face
	aa   bool
}

// displayText 单字节格式下的文本按 Windows-1251 解码后再交给字体
func displayText(s string, format gui.TextFormat) string {
	if format != gui.TextFormatASCII {
		return s
	}
	decoded, err := textenc.Win1251ToUTF8(s)
	if err != nil {
		return s
	}
	return decoded
}

func (v *vectorFace) height() int {
	m := v.face.Metrics()
	return int(math.Ceil(m.HAscent + m.HDescent))
}

func (v *vectorFace) width(s string, format gui.TextFormat) int {
	w, _ := text.Measure(displayText(s, format), v.face, 0)
	return int(math.Ceil(w))
}

func (v *vectorFace) antialiased() bool {
	return v.aa
}

func (v *vectorFace) draw(dst *ebiten.Image, s string, format gui.TextFormat, x, y int, clr color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, displayText(s, format), v.face, op)
}
