package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if settings.SaveSlot != 0 {
		t.Errorf("SaveSlot: got %d, want 0", settings.SaveSlot)
	}
}

// TestNewSettingsManagerNilGdata 测试降级模式
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in fallback mode returned %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in fallback mode returned %v", err)
	}
	if sm.GetSettings().Fullscreen {
		t.Error("fallback Load() should reset to defaults")
	}
}

// TestSettingsLoadSave 测试设置持久化
func TestSettingsLoadSave(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	gdataManager, err := gdata.Open(gdata.Config{AppName: "test_settings"})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}

	sm := NewSettingsManager(gdataManager)
	sm.SetFullscreen(true)
	sm.SetSaveSlot(4)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 新实例读取已保存的设置
	loaded := NewSettingsManager(gdataManager).GetSettings()
	if !loaded.Fullscreen {
		t.Error("Fullscreen: got false, want true")
	}
	if loaded.SaveSlot != 4 {
		t.Errorf("SaveSlot: got %d, want 4", loaded.SaveSlot)
	}
}

// TestSetSaveSlotClamp 测试存档槽范围限制
func TestSetSaveSlotClamp(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  int
	}{
		{"Negative", -1, 0},
		{"Zero", 0, 0},
		{"Middle", 5, 5},
		{"Max", MaxSaveSlot, MaxSaveSlot},
		{"Too large", MaxSaveSlot + 3, MaxSaveSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSettingsManager(nil)
			sm.SetSaveSlot(tt.input)
			if got := sm.GetSettings().SaveSlot; got != tt.want {
				t.Errorf("SetSaveSlot(%d): got %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
