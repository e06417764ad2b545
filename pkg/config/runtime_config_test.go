package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/agsgui/pkg/gui"
)

// TestParseRuntimeConfigDefaults 测试空配置取默认值
func TestParseRuntimeConfigDefaults(t *testing.T) {
	cfg, err := ParseRuntimeConfig(nil)
	if err != nil {
		t.Fatalf("ParseRuntimeConfig failed: %v", err)
	}

	if cfg.Format() != gui.TextFormatUTF8 {
		t.Errorf("Format() = %v, want utf8", cfg.Format())
	}
	if cfg.Scale != 1 {
		t.Errorf("Scale = %d, want 1", cfg.Scale)
	}
	if cfg.AppName != DefaultAppName {
		t.Errorf("AppName = %q, want %q", cfg.AppName, DefaultAppName)
	}
	if len(cfg.Fonts) != 1 || cfg.Fonts[0].ID != 0 || cfg.Fonts[0].Kind != FontKindMono {
		t.Errorf("Fonts = %+v, want a single mono font 0", cfg.Fonts)
	}
	if cfg.TextBox.Width <= 0 || cfg.TextBox.Height <= 0 {
		t.Errorf("TextBox size = %dx%d, want positive", cfg.TextBox.Width, cfg.TextBox.Height)
	}
}

// TestParseRuntimeConfig 测试完整配置解析
func TestParseRuntimeConfig(t *testing.T) {
	data := []byte(`
textFormat: ascii
scale: 2
guiDisabled: true
appName: mygame
fonts:
  - id: 0
  - id: 1
    kind: ttf
    path: fonts/body.ttf
    size: 14
    antialiased: true
textBox:
  name: txtName
  x: 5
  y: 6
  width: 100
  height: 20
  font: 1
  textColor: 4
  text: hello
  hideBorder: true
`)

	cfg, err := ParseRuntimeConfig(data)
	if err != nil {
		t.Fatalf("ParseRuntimeConfig failed: %v", err)
	}

	if cfg.Format() != gui.TextFormatASCII {
		t.Errorf("Format() = %v, want ascii", cfg.Format())
	}
	if cfg.Scale != 2 || !cfg.GUIDisabled || cfg.AppName != "mygame" {
		t.Errorf("scale=%d guiDisabled=%v appName=%q", cfg.Scale, cfg.GUIDisabled, cfg.AppName)
	}
	if len(cfg.Fonts) != 2 {
		t.Fatalf("len(Fonts) = %d, want 2", len(cfg.Fonts))
	}
	if cfg.Fonts[0].Kind != FontKindMono {
		t.Errorf("Fonts[0].Kind = %q, want default mono", cfg.Fonts[0].Kind)
	}
	want := FontConfig{ID: 1, Kind: FontKindTTF, Path: "fonts/body.ttf", Size: 14, Antialiased: true}
	if cfg.Fonts[1] != want {
		t.Errorf("Fonts[1] = %+v, want %+v", cfg.Fonts[1], want)
	}
	wantBox := TextBoxConfig{Name: "txtName", X: 5, Y: 6, Width: 100, Height: 20, Font: 1, TextColor: 4, Text: "hello", HideBorder: true}
	if cfg.TextBox != wantBox {
		t.Errorf("TextBox = %+v, want %+v", cfg.TextBox, wantBox)
	}
}

// TestParseRuntimeConfigInvalid 测试非法配置
func TestParseRuntimeConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero scale", "scale: 0"},
		{"negative scale", "scale: -2"},
		{"unknown format", "textFormat: utf16"},
		{"duplicate font id", "fonts:\n  - id: 0\n  - id: 0"},
		{"unknown font kind", "fonts:\n  - id: 0\n    kind: bitmap"},
		{"ttf without path", "fonts:\n  - id: 0\n    kind: ttf\n    size: 12"},
		{"ttf without size", "fonts:\n  - id: 0\n    kind: ttf\n    path: a.ttf"},
		{"text box font missing", "textBox:\n  width: 10\n  height: 10\n  font: 3"},
		{"text box without size", "textBox:\n  width: 0\n  height: 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRuntimeConfig([]byte(tt.data))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("ParseRuntimeConfig error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestParseRuntimeConfigBadYAML 测试 YAML 语法错误
func TestParseRuntimeConfigBadYAML(t *testing.T) {
	_, err := ParseRuntimeConfig([]byte("scale: [1, 2"))
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Error("syntax error reported as ErrInvalidConfig")
	}
}

// TestLoadRuntimeConfig 测试从文件加载
func TestLoadRuntimeConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gui.yaml")
	if err := os.WriteFile(path, []byte("scale: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRuntimeConfig(path)
	if err != nil {
		t.Fatalf("LoadRuntimeConfig failed: %v", err)
	}
	if cfg.Scale != 3 {
		t.Errorf("Scale = %d, want 3", cfg.Scale)
	}

	if _, err := LoadRuntimeConfig(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}
}

// TestBundledRuntimeConfig 测试随仓库提供的示例配置
func TestBundledRuntimeConfig(t *testing.T) {
	cfg, err := LoadRuntimeConfig(filepath.Join("..", "..", "data", "gui.yaml"))
	if err != nil {
		t.Fatalf("LoadRuntimeConfig failed: %v", err)
	}
	if len(cfg.Fonts) != 2 || cfg.TextBox.Font != 1 {
		t.Errorf("fonts=%+v textBox.font=%d", cfg.Fonts, cfg.TextBox.Font)
	}
}
