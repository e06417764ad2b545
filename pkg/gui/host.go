package gui

// TextFormat 进程级文本编码模式
type TextFormat int

const (
	// TextFormatASCII 单字节旧格式（每个字节一个字符）
	TextFormatASCII TextFormat = iota
	// TextFormatUTF8 UTF-8
	TextFormatUTF8
)

// String 返回配置文件中使用的名称
func (f TextFormat) String() string {
	switch f {
	case TextFormatASCII:
		return "ascii"
	case TextFormatUTF8:
		return "utf8"
	default:
		return "unknown"
	}
}

// Color 绘制表面上的打包颜色值（0xAARRGGBB）
type Color uint32

// FontMetrics 字体度量
//
// font 为字体注册表中的整数 ID，文本按当前文本格式解释的字节序列传入。
type FontMetrics interface {
	FontHeight(font int) int
	TextWidth(text string, font int) int
	IsAntialiased(font int) bool
}

// FontRenderer 带绘制能力的字体集合
type FontRenderer interface {
	FontMetrics
	RenderText(ds Bitmap, text string, font, x, y int, c Color)
}

// Bitmap 绘制表面
type Bitmap interface {
	// CompatibleColor 将游戏颜色编号转换为该表面的颜色
	CompatibleColor(index int) Color
	// DrawRect 绘制一像素宽的矩形边框
	DrawRect(rc Rect, c Color)
}

// Host GUI 控件依赖的运行时环境
type Host interface {
	Fonts() FontRenderer
	// FixedPixelSize 将 n 乘以当前后备缓冲区缩放倍数
	FixedPixelSize(n int) int
	TextFormat() TextFormat
	IsGUIEnabled(obj *Object) bool
}

// Runtime 默认的 Host 实现，保存进程级的文本格式、缩放与 GUI 禁用状态
//
// 与控件一样只在游戏主线程上访问。
type Runtime struct {
	fonts       FontRenderer
	scale       int
	format      TextFormat
	guiDisabled bool
}

// NewRuntime 创建运行时，默认 1 倍缩放、UTF-8 文本
func NewRuntime(fonts FontRenderer) *Runtime {
	return &Runtime{
		fonts:  fonts,
		scale:  1,
		format: TextFormatUTF8,
	}
}

// Fonts 返回字体集合
func (rt *Runtime) Fonts() FontRenderer {
	return rt.fonts
}

// FixedPixelSize 返回 n * scale
func (rt *Runtime) FixedPixelSize(n int) int {
	return n * rt.scale
}

// Scale 当前缩放倍数
func (rt *Runtime) Scale() int {
	return rt.scale
}

// SetScale 设置缩放倍数，小于 1 按 1 处理
func (rt *Runtime) SetScale(scale int) {
	if scale < 1 {
		scale = 1
	}
	rt.scale = scale
}

// TextFormat 当前文本格式
func (rt *Runtime) TextFormat() TextFormat {
	return rt.format
}

// SetTextFormat 切换文本格式，只能在两次控件操作之间调用
func (rt *Runtime) SetTextFormat(f TextFormat) {
	rt.format = f
}

// SetGUIDisabled 全局禁用/启用 GUI 交互（如过场动画期间）
func (rt *Runtime) SetGUIDisabled(disabled bool) {
	rt.guiDisabled = disabled
}

// IsGUIEnabled GUI 未被全局禁用且控件自身启用时返回 true
func (rt *Runtime) IsGUIEnabled(obj *Object) bool {
	return !rt.guiDisabled && obj.IsEnabled()
}

// CalcTextGraphicalRect 计算文本以 at 为左上角绘制时占据的矩形
func CalcTextGraphicalRect(fonts FontMetrics, text string, font int, at Point) Rect {
	return RectWH(at.X, at.Y, fonts.TextWidth(text, font), fonts.FontHeight(font))
}
