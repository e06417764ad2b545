package game

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/decker502/agsgui/internal/stream"
	"github.com/decker502/agsgui/pkg/gui"
	"github.com/quasilyte/gdata/v2"
)

var (
	// ErrNoSavedState 指定存档槽中没有该控件的数据
	ErrNoSavedState = errors.New("no saved GUI state")
	// ErrUnsupportedSaveVersion 存档版本比当前程序新或不合法
	ErrUnsupportedSaveVersion = errors.New("unsupported GUI savegame version")
)

// SavegameControl 可写入存档的 GUI 控件
type SavegameControl interface {
	WriteToSavegame(out io.Writer) error
	ReadFromSavegame(in io.Reader, ver gui.GuiSvgVersion) error
}

// GUIStateStore GUI 控件存档存储
//
// 每个控件保存为一条记录：int32 存档版本号 + 控件的存档数据。
// 记录存放在 gdata 对象 gui_<slot> 下，属性名为控件名。
type GUIStateStore struct {
	gdataManager *gdata.Manager    // 可为 nil（降级模式，仅内存）
	memory       map[string][]byte // 降级模式下的存储
}

// NewGUIStateStore 创建存档存储
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，数据只保存在内存中）
func NewGUIStateStore(gdataManager *gdata.Manager) *GUIStateStore {
	if gdataManager == nil {
		log.Printf("[GUIStateStore] Warning: no gdata manager, GUI state is kept in memory only")
	}
	return &GUIStateStore{
		gdataManager: gdataManager,
		memory:       make(map[string][]byte),
	}
}

func slotObject(slot int) string {
	return fmt.Sprintf("gui_%d", slot)
}

// SaveControl 保存控件状态
func (s *GUIStateStore) SaveControl(slot int, name string, ctrl SavegameControl) error {
	var buf bytes.Buffer
	w := stream.NewWriter(&buf)
	if err := w.WriteInt32(int32(gui.GuiSvgVersionCurrent)); err != nil {
		return fmt.Errorf("failed to write savegame version: %w", err)
	}
	if err := ctrl.WriteToSavegame(&buf); err != nil {
		return fmt.Errorf("failed to serialize control %s: %w", name, err)
	}

	object := slotObject(slot)
	if s.gdataManager == nil {
		s.memory[object+"/"+name] = buf.Bytes()
		return nil
	}
	if err := s.gdataManager.SaveObjectProp(object, name, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to save control %s to slot %d: %w", name, slot, err)
	}

	log.Printf("[GUIStateStore] Saved control %s to slot %d (%d bytes)", name, slot, buf.Len())
	return nil
}

// HasControl 判断存档槽中是否有该控件
func (s *GUIStateStore) HasControl(slot int, name string) bool {
	object := slotObject(slot)
	if s.gdataManager == nil {
		_, ok := s.memory[object+"/"+name]
		return ok
	}
	return s.gdataManager.ObjectPropExists(object, name)
}

// LoadControl 读取控件状态，按记录中的版本号反序列化
//
// 返回：
//   - ErrNoSavedState: 没有该记录
//   - ErrUnsupportedSaveVersion: 记录版本比当前程序新
func (s *GUIStateStore) LoadControl(slot int, name string, ctrl SavegameControl) error {
	data, err := s.load(slot, name)
	if err != nil {
		return err
	}

	in := bytes.NewReader(data)
	raw, err := stream.NewReader(in).ReadInt32()
	if err != nil {
		return fmt.Errorf("failed to read savegame version of %s: %w", name, err)
	}
	ver := gui.GuiSvgVersion(raw)
	if ver < gui.GuiSvgVersionInitial || ver > gui.GuiSvgVersionCurrent {
		return fmt.Errorf("%w: control %s has version %d", ErrUnsupportedSaveVersion, name, raw)
	}

	if err := ctrl.ReadFromSavegame(in, ver); err != nil {
		return fmt.Errorf("failed to restore control %s: %w", name, err)
	}
	return nil
}

func (s *GUIStateStore) load(slot int, name string) ([]byte, error) {
	object := slotObject(slot)
	if s.gdataManager == nil {
		data, ok := s.memory[object+"/"+name]
		if !ok {
			return nil, fmt.Errorf("%w: slot %d, control %s", ErrNoSavedState, slot, name)
		}
		return data, nil
	}

	if !s.gdataManager.ObjectPropExists(object, name) {
		return nil, fmt.Errorf("%w: slot %d, control %s", ErrNoSavedState, slot, name)
	}
	data, err := s.gdataManager.LoadObjectProp(object, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load control %s from slot %d: %w", name, slot, err)
	}
	return data, nil
}
