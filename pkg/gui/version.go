package gui

// GuiVersion 游戏数据文件中 GUI 段的格式版本
type GuiVersion int32

const (
	GuiVersionInitial GuiVersion = 0
	// GuiVersion350 起文本框文本改为长度前缀字符串，标志位不再取反存储
	GuiVersion350     GuiVersion = 350
	GuiVersionCurrent            = GuiVersion350
)

// GuiSvgVersion 存档中 GUI 段的格式版本
type GuiSvgVersion int32

const (
	GuiSvgVersionInitial GuiSvgVersion = 0
	// GuiSvgVersion350 起存档包含控件透明度与文本框标志位
	GuiSvgVersion350     GuiSvgVersion = 350
	GuiSvgVersionCurrent               = GuiSvgVersion350
)
