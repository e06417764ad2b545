// Package app 提供文本框演示程序的核心包装器
//
// 该包负责从运行时配置构建 GUI 运行时、字体与存档存储，
// 并实现 ebiten.Game：把键盘事件路由到获得焦点的文本框，处理回车激活。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/agsgui/internal/textenc"
	"github.com/decker502/agsgui/pkg/config"
	"github.com/decker502/agsgui/pkg/game"
	"github.com/decker502/agsgui/pkg/gui"
	"github.com/decker502/agsgui/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// 逻辑屏幕尺寸
const (
	ScreenWidth  = 640
	ScreenHeight = 480
)

// 背景颜色编号
const backgroundColor = 1

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 运行时配置文件路径，为空则使用默认配置
	ConfigPath string
	// SaveSlot F5/F9 使用的存档槽，小于 0 时沿用上次的设置
	SaveSlot int
}

// App 是演示程序的核心包装器，实现 ebiten.Game 接口
type App struct {
	runtime  *gui.Runtime
	fonts    *render.Fonts
	store    *game.GUIStateStore
	settings *game.SettingsManager
	textBox  *gui.TextBox

	keys      []gui.KeyInput // 本帧键盘事件（复用缓冲）
	submitted []string       // 回车提交的文本（UTF-8）
	status    string
	slot      int
	verbose   bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	rc := config.DefaultRuntimeConfig()
	if cfg.ConfigPath != "" {
		loaded, err := config.LoadRuntimeConfig(cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("运行时配置加载失败: %w", err)
		}
		rc = loaded
	}

	// gdata 不可用时降级为内存存档
	gdataManager, err := gdata.Open(gdata.Config{AppName: rc.AppName})
	if err != nil {
		log.Printf("[App] Warning: failed to open gdata (%v), saves are not persisted", err)
		gdataManager = nil
	}

	settings := game.NewSettingsManager(gdataManager)
	if cfg.SaveSlot >= 0 {
		settings.SetSaveSlot(cfg.SaveSlot)
	}

	a, err := newApp(rc, game.NewGUIStateStore(gdataManager), settings, game.NewResourceManager(nil))
	if err != nil {
		return nil, err
	}
	a.verbose = cfg.Verbose

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}
	return a, nil
}

// newApp 按运行时配置组装应用
func newApp(rc *config.RuntimeConfig, store *game.GUIStateStore, settings *game.SettingsManager, rm *game.ResourceManager) (*App, error) {
	fonts := render.NewFonts()
	if err := rm.LoadFonts(rc.Fonts, fonts); err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	rt := gui.NewRuntime(fonts)
	fonts.SetFormatSource(rt.TextFormat)
	rt.SetTextFormat(rc.Format())
	rt.SetScale(rc.Scale)
	rt.SetGUIDisabled(rc.GUIDisabled)

	tb := NewTextBoxFromConfig(rt, rc.TextBox)
	log.Printf("[App] Text box %s created at (%d,%d) %dx%d, format=%s, scale=%d",
		tb.Name, tb.X, tb.Y, tb.Width, tb.Height, rt.TextFormat(), rt.Scale())

	return &App{
		runtime:  rt,
		fonts:    fonts,
		store:    store,
		settings: settings,
		textBox:  tb,
		slot:     settings.GetSettings().SaveSlot,
		status:   "Enter: submit  F5: save  F6: next slot  F9: load  Esc: quit",
	}, nil
}

// NewTextBoxFromConfig 按布局配置创建文本框
func NewTextBoxFromConfig(host gui.Host, c config.TextBoxConfig) *gui.TextBox {
	tb := gui.NewTextBox(host)
	tb.Name = c.Name
	tb.X, tb.Y = c.X, c.Y
	tb.Width, tb.Height = c.Width, c.Height
	tb.SetFont(c.Font)
	tb.SetTextColor(c.TextColor)
	tb.SetText(c.Text)
	tb.SetShowBorder(!c.HideBorder)
	return tb
}

// HandleKeys 处理一批键盘事件
//
// 返回 true 表示用户请求退出。
func (a *App) HandleKeys(keys []gui.KeyInput) (quit bool) {
	for _, ki := range keys {
		if ki.Key == gui.KeyEscape {
			return true
		}
		if !a.runtime.IsGUIEnabled(&a.textBox.Object) {
			continue
		}
		a.textBox.OnKeyPress(ki)

		// 激活标记由宿主读取并清除
		if a.textBox.IsActivated() {
			a.textBox.SetActivated(false)
			a.submit(a.textBox.Text())
			a.textBox.SetText("")
		}
	}
	return false
}

func (a *App) submit(raw string) {
	text := raw
	if a.runtime.TextFormat() == gui.TextFormatASCII {
		if decoded, err := textenc.Win1251ToUTF8(raw); err == nil {
			text = decoded
		}
	}
	a.submitted = append(a.submitted, text)
	a.status = fmt.Sprintf("Submitted: %s", text)
	log.Printf("[App] Text box %s activated with %q", a.textBox.Name, text)
}

// Submitted 返回所有已提交的文本
func (a *App) Submitted() []string {
	return a.submitted
}

// TextBox 返回演示文本框
func (a *App) TextBox() *gui.TextBox {
	return a.textBox
}

// Runtime 返回 GUI 运行时
func (a *App) Runtime() *gui.Runtime {
	return a.runtime
}

// Slot 返回当前存档槽
func (a *App) Slot() int {
	return a.slot
}

// NextSlot 切换到下一个存档槽并保存设置
func (a *App) NextSlot() {
	a.slot = (a.slot + 1) % (game.MaxSaveSlot + 1)
	a.settings.SetSaveSlot(a.slot)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Failed to save settings: %v", err)
	}
	a.status = fmt.Sprintf("Slot %d selected", a.slot)
}

// SaveState 保存文本框状态到存档槽
func (a *App) SaveState() error {
	if err := a.store.SaveControl(a.slot, a.textBox.Name, a.textBox); err != nil {
		return err
	}
	a.status = fmt.Sprintf("Saved to slot %d", a.slot)
	return nil
}

// LoadState 从存档槽恢复文本框状态
func (a *App) LoadState() error {
	if err := a.store.LoadControl(a.slot, a.textBox.Name, a.textBox); err != nil {
		if errors.Is(err, game.ErrNoSavedState) {
			a.status = fmt.Sprintf("Slot %d is empty", a.slot)
		}
		return err
	}
	a.status = fmt.Sprintf("Loaded slot %d", a.slot)
	return nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		if !fullscreen {
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		}
		a.settings.SetFullscreen(fullscreen)
		if err := a.settings.Save(); err != nil {
			log.Printf("[App] Failed to save settings: %v", err)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := a.SaveState(); err != nil {
			log.Printf("[App] Save failed: %v", err)
			a.status = "Save failed"
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF6) {
		a.NextSlot()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		if err := a.LoadState(); err != nil {
			log.Printf("[App] Load failed: %v", err)
		}
	}

	a.keys = render.PollKeyInputs(a.keys[:0])
	if a.HandleKeys(a.keys) {
		return ebiten.Termination
	}
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	surface := render.NewSurface(screen)
	screen.Fill(render.GameColor(backgroundColor))

	tb := a.textBox
	if tb.IsVisible() {
		tb.Draw(surface, tb.X, tb.Y)
	}
	tb.ClearChanged()

	ebitenutil.DebugPrintAt(screen, a.status, 8, ScreenHeight-24)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	// 最近邻滤波保持像素边框清晰
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
