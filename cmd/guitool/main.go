// Package main 提供文本框数据的命令行工具
//
// 用法:
//
//	guitool dump --kind authored --version 350 textbox.bin
//	guitool encode --kind savegame -o textbox.sav textbox.yaml
//	guitool transcode "Привет"
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "guitool",
		Short:         "Inspect and produce text box game data and savegame blobs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !verbose {
				log.SetOutput(io.Discard)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print diagnostic logs")

	root.AddCommand(newDumpCommand())
	root.AddCommand(newEncodeCommand())
	root.AddCommand(newTranscodeCommand())
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// checkKind 校验 --kind 参数
func checkKind(kind string) error {
	switch kind {
	case kindAuthored, kindSavegame:
		return nil
	}
	return fmt.Errorf("--kind must be one of: %s, %s, got %q", kindAuthored, kindSavegame, kind)
}
