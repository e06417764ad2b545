package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/decker502/agsgui/pkg/gui"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 配置内容不合法
var ErrInvalidConfig = errors.New("invalid runtime config")

// 字体类型
const (
	FontKindMono = "mono" // 内置等宽调试字体
	FontKindTTF  = "ttf"  // TrueType/OpenType 字体文件
)

// 默认值
const (
	DefaultAppName    = "agsgui"
	DefaultTextFormat = "utf8"
	DefaultScale      = 1
)

// RuntimeConfig GUI 运行时配置
//
// 配置文件位置: data/gui.yaml
type RuntimeConfig struct {
	// TextFormat 文本格式: utf8 或 ascii（单字节旧格式）
	TextFormat string `yaml:"textFormat"`

	// Scale 固定像素缩放倍数，至少为 1
	Scale int `yaml:"scale"`

	// GUIDisabled 启动时是否全局禁用 GUI
	GUIDisabled bool `yaml:"guiDisabled"`

	// AppName 存档目录名（gdata 应用名）
	AppName string `yaml:"appName"`

	// Fonts 字体列表，未配置时使用一个编号为 0 的等宽字体
	Fonts []FontConfig `yaml:"fonts"`

	// TextBox 演示程序中的文本框
	TextBox TextBoxConfig `yaml:"textBox"`
}

// FontConfig 单个字体配置
type FontConfig struct {
	ID          int     `yaml:"id"`
	Kind        string  `yaml:"kind"` // mono | ttf
	Path        string  `yaml:"path"` // ttf 字体文件路径
	Size        float64 `yaml:"size"` // ttf 字号（像素）
	Antialiased bool    `yaml:"antialiased"`
}

// TextBoxConfig 文本框布局配置
type TextBoxConfig struct {
	Name       string `yaml:"name"`
	X          int    `yaml:"x"`
	Y          int    `yaml:"y"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Font       int    `yaml:"font"`
	TextColor  int    `yaml:"textColor"`
	Text       string `yaml:"text"`
	HideBorder bool   `yaml:"hideBorder"`
}

// DefaultRuntimeConfig 返回默认配置
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		TextFormat: DefaultTextFormat,
		Scale:      DefaultScale,
		AppName:    DefaultAppName,
		Fonts:      []FontConfig{{ID: 0, Kind: FontKindMono}},
		TextBox: TextBoxConfig{
			Name:      "txtInput",
			X:         20,
			Y:         20,
			Width:     240,
			Height:    24,
			TextColor: 15,
		},
	}
}

// LoadRuntimeConfig 从 YAML 文件加载运行时配置
//
// 参数：
//   - path: 配置文件路径
//
// 返回：
//   - *RuntimeConfig: 填充默认值并通过校验的配置
//   - error: 读取、解析或校验失败
func LoadRuntimeConfig(path string) (*RuntimeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read runtime config file %s: %w", path, err)
	}

	cfg, err := ParseRuntimeConfig(data)
	if err != nil {
		return nil, fmt.Errorf("runtime config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseRuntimeConfig 解析 YAML 数据，缺省字段取默认值
func ParseRuntimeConfig(data []byte) (*RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()
	// 显式给出的 fonts 替换默认字体列表
	cfg.Fonts = nil

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse runtime config YAML: %w", err)
	}

	if cfg.TextFormat == "" {
		cfg.TextFormat = DefaultTextFormat
	}
	if cfg.AppName == "" {
		cfg.AppName = DefaultAppName
	}
	if len(cfg.Fonts) == 0 {
		cfg.Fonts = DefaultRuntimeConfig().Fonts
	}
	for i := range cfg.Fonts {
		if cfg.Fonts[i].Kind == "" {
			cfg.Fonts[i].Kind = FontKindMono
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 校验配置
func (c *RuntimeConfig) Validate() error {
	if c.Scale < 1 {
		return fmt.Errorf("%w: scale must be at least 1, got %d", ErrInvalidConfig, c.Scale)
	}
	if _, err := parseTextFormat(c.TextFormat); err != nil {
		return err
	}

	seen := make(map[int]bool, len(c.Fonts))
	for i, f := range c.Fonts {
		if seen[f.ID] {
			return fmt.Errorf("%w: fonts[%d]: duplicate font id %d", ErrInvalidConfig, i, f.ID)
		}
		seen[f.ID] = true

		switch f.Kind {
		case FontKindMono:
		case FontKindTTF:
			if f.Path == "" {
				return fmt.Errorf("%w: fonts[%d]: ttf font requires a path", ErrInvalidConfig, i)
			}
			if f.Size <= 0 {
				return fmt.Errorf("%w: fonts[%d]: size must be positive, got %g", ErrInvalidConfig, i, f.Size)
			}
		default:
			return fmt.Errorf("%w: fonts[%d]: kind must be one of: mono, ttf, got %q", ErrInvalidConfig, i, f.Kind)
		}
	}

	if c.TextBox.Width <= 0 || c.TextBox.Height <= 0 {
		return fmt.Errorf("%w: textBox size must be positive, got %dx%d",
			ErrInvalidConfig, c.TextBox.Width, c.TextBox.Height)
	}
	if !seen[c.TextBox.Font] {
		return fmt.Errorf("%w: textBox font %d is not configured", ErrInvalidConfig, c.TextBox.Font)
	}
	return nil
}

// Format 返回配置的文本格式
func (c *RuntimeConfig) Format() gui.TextFormat {
	format, _ := parseTextFormat(c.TextFormat)
	return format
}

func parseTextFormat(s string) (gui.TextFormat, error) {
	switch s {
	case "utf8", "":
		return gui.TextFormatUTF8, nil
	case "ascii":
		return gui.TextFormatASCII, nil
	}
	return gui.TextFormatUTF8, fmt.Errorf("%w: textFormat must be one of: utf8, ascii, got %q", ErrInvalidConfig, s)
}
