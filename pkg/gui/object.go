// Package gui 实现冒险游戏运行时的 GUI 控件
//
// 控件只在游戏主线程上访问：输入处理、绘制与序列化由宿主按顺序调用，互不交错。
// 字体、绘制表面、缩放与文本格式等外部能力通过 Host 接口注入。
package gui

import (
	"errors"
	"fmt"

	"github.com/decker502/agsgui/internal/stream"
)

// ControlFlags 控件通用标志位
type ControlFlags uint32

const (
	ControlDefault    ControlFlags = 0x0001
	ControlCancel     ControlFlags = 0x0002
	ControlEnabled    ControlFlags = 0x0004
	ControlTabStop    ControlFlags = 0x0008
	ControlVisible    ControlFlags = 0x0010
	ControlClip       ControlFlags = 0x0020
	ControlClickable  ControlFlags = 0x0040
	ControlTranslated ControlFlags = 0x0080

	// ControlDefaultFlags 新建控件的标志位
	ControlDefaultFlags = ControlEnabled | ControlVisible | ControlClickable | ControlTranslated
	// ControlOldFmtXorMask 旧格式（< 350）中以取反形式存储的标志位
	ControlOldFmtXorMask = ControlEnabled | ControlVisible | ControlClickable
)

// ErrTooManyEvents 数据中的脚本事件处理函数多于控件支持的事件数
var ErrTooManyEvents = errors.New("gui: too many control event handlers")

// Object GUI 控件的公共基类：几何、标志位、名称、脚本事件处理函数与脏标记
type Object struct {
	ID           int
	Name         string
	X, Y         int
	Width        int
	Height       int
	ZOrder       int
	Transparency int

	flags    ControlFlags
	handlers []string
	changed  bool
}

func newObject(eventCount int) Object {
	return Object{
		flags:    ControlDefaultFlags,
		handlers: make([]string, eventCount),
	}
}

// Flags 控件标志位
func (o *Object) Flags() ControlFlags {
	return o.flags
}

// IsEnabled 控件是否可交互
func (o *Object) IsEnabled() bool {
	return o.flags&ControlEnabled != 0
}

// SetEnabled 设置控件是否可交互
func (o *Object) SetEnabled(on bool) {
	o.setFlag(ControlEnabled, on)
}

// IsVisible 控件是否可见
func (o *Object) IsVisible() bool {
	return o.flags&ControlVisible != 0
}

// SetVisible 设置控件是否可见
func (o *Object) SetVisible(on bool) {
	o.setFlag(ControlVisible, on)
}

func (o *Object) setFlag(flag ControlFlags, on bool) {
	next := o.flags &^ flag
	if on {
		next |= flag
	}
	if next != o.flags {
		o.flags = next
		o.MarkChanged()
	}
}

// MarkChanged 标记控件需要重绘
func (o *Object) MarkChanged() {
	o.changed = true
}

// IsChanged 控件自上次清除后是否被修改
func (o *Object) IsChanged() bool {
	return o.changed
}

// ClearChanged 清除脏标记，由外层 GUI 在重绘后调用
func (o *Object) ClearChanged() {
	o.changed = false
}

// EventHandler 返回第 i 个事件绑定的脚本函数名，越界返回空串
func (o *Object) EventHandler(i int) string {
	if i < 0 || i >= len(o.handlers) {
		return ""
	}
	return o.handlers[i]
}

// SetEventHandler 绑定第 i 个事件的脚本函数名，越界时忽略
func (o *Object) SetEventHandler(i int, name string) {
	if i < 0 || i >= len(o.handlers) {
		return
	}
	o.handlers[i] = name
}

// writeToFile 按指定版本写入游戏数据格式的基类字段
func (o *Object) writeToFile(w *stream.Writer, ver GuiVersion) error {
	flags := o.flags
	if ver < GuiVersion350 {
		flags ^= ControlOldFmtXorMask
	}
	vals := []int32{int32(flags), int32(o.X), int32(o.Y), int32(o.Width), int32(o.Height), int32(o.ZOrder)}
	if ver < GuiVersion350 {
		vals = append(vals, 0)
	}
	for _, v := range vals {
		if err := w.WriteInt32(v); err != nil {
			return err
		}
	}
	if err := w.WriteString(o.Name); err != nil {
		return err
	}
	if err := w.WriteInt32(int32(len(o.handlers))); err != nil {
		return err
	}
	for _, h := range o.handlers {
		if err := w.WriteString(h); err != nil {
			return err
		}
	}
	return nil
}

// readFromFile 读取游戏数据格式的基类字段
//
// eventCount 为具体控件支持的事件数，处理函数不足时补空串。
func (o *Object) readFromFile(r *stream.Reader, ver GuiVersion, eventCount int) error {
	var vals [6]int32
	for i := range vals {
		v, err := r.ReadInt32()
		if err != nil {
			return fmt.Errorf("read object header: %w", err)
		}
		vals[i] = v
	}
	o.flags = ControlFlags(uint32(vals[0]))
	if ver < GuiVersion350 {
		o.flags ^= ControlOldFmtXorMask
		// 旧格式在 zorder 之后保留了一个已废弃的 activated 字段
		if _, err := r.ReadInt32(); err != nil {
			return fmt.Errorf("read legacy object field: %w", err)
		}
	}
	o.X, o.Y = int(vals[1]), int(vals[2])
	o.Width, o.Height = int(vals[3]), int(vals[4])
	o.ZOrder = int(vals[5])

	name, err := r.ReadString()
	if err != nil {
		return fmt.Errorf("read object name: %w", err)
	}
	o.Name = name

	count, err := r.ReadInt32()
	if err != nil {
		return fmt.Errorf("read event count: %w", err)
	}
	if count < 0 || int(count) > eventCount {
		return fmt.Errorf("%w: %d (control supports %d)", ErrTooManyEvents, count, eventCount)
	}
	o.handlers = make([]string, eventCount)
	for i := 0; i < int(count); i++ {
		h, err := r.ReadString()
		if err != nil {
			return fmt.Errorf("read event handler %d: %w", i, err)
		}
		o.handlers[i] = h
	}
	return nil
}

// writeToSavegame 按指定版本写入存档格式的基类字段
func (o *Object) writeToSavegame(w *stream.Writer, ver GuiSvgVersion) error {
	vals := []int32{int32(o.flags), int32(o.X), int32(o.Y), int32(o.Width), int32(o.Height), int32(o.ZOrder)}
	if ver >= GuiSvgVersion350 {
		vals = append(vals, int32(o.Transparency))
	}
	for _, v := range vals {
		if err := w.WriteInt32(v); err != nil {
			return err
		}
	}
	return nil
}

// readFromSavegame 读取存档格式的基类字段
func (o *Object) readFromSavegame(r *stream.Reader, ver GuiSvgVersion) error {
	n := 6
	if ver >= GuiSvgVersion350 {
		n = 7
	}
	vals := make([]int32, n)
	for i := range vals {
		v, err := r.ReadInt32()
		if err != nil {
			return fmt.Errorf("read object state: %w", err)
		}
		vals[i] = v
	}
	o.flags = ControlFlags(uint32(vals[0]))
	o.X, o.Y = int(vals[1]), int(vals[2])
	o.Width, o.Height = int(vals[3]), int(vals[4])
	o.ZOrder = int(vals[5])
	if n == 7 {
		o.Transparency = int(vals[6])
	}
	return nil
}
