// Package main 提供单行文本框演示程序
//
// 用法:
//
//	go run ./cmd/textbox_demo -config data/gui.yaml -verbose
//
// 功能:
//   - 显示一个可输入的单行文本框（UTF-8 或单字节 Windows-1251 格式）
//   - 回车提交文本（开启 -verbose 时输出到日志）
//   - F5 保存、F9 读取文本框状态
//   - F11 切换全屏，Esc 退出
package main

import (
	"flag"
	"log"

	"github.com/decker502/agsgui/pkg/app"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "运行时配置文件路径（为空使用默认配置）")
	verbose := flag.Bool("verbose", false, "输出详细日志")
	slot := flag.Int("slot", -1, "F5/F9 使用的存档槽（默认沿用上次）")
	flag.Parse()

	a, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		SaveSlot:   *slot,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(app.ScreenWidth, app.ScreenHeight)
	ebiten.SetWindowTitle("AGS GUI - 文本框演示")

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
