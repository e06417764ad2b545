package main

import (
	"fmt"

	"github.com/decker502/agsgui/internal/textenc"
	"github.com/spf13/cobra"
)

func newTranscodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "transcode TEXT",
		Short: "Print the Windows-1251 bytes for UTF-8 text",
		Long: `Convert UTF-8 text into the Windows-1251 bytes the text box stores
for legacy input. Characters outside the code page become '?'.

Example:
  guitool transcode "Привет"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := textenc.UTF8ToWin1251(args[0])
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "% x\n", out)
			return err
		},
	}
}
