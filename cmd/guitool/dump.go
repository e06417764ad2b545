package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/decker502/agsgui/internal/stream"
	"github.com/decker502/agsgui/pkg/gui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type dumpOptions struct {
	kind       string
	version    int32
	header     bool
	legacyText bool
}

func newDumpCommand() *cobra.Command {
	opts := &dumpOptions{}

	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print a serialized text box as YAML",
		Long: `Read a text box from game data (--kind authored) or a savegame
(--kind savegame) and print its state as YAML.

Examples:
  # Authored data written by the current editor
  guitool dump --kind authored textbox.bin

  # A record saved by the demo, with its version header
  guitool dump --kind savegame --header txtInput.sav

  # An old game whose text is Windows-1251
  guitool dump --kind authored --version 0 --legacy-text old.bin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.kind, "kind", kindAuthored, "Data kind: authored or savegame")
	cmd.Flags().Int32Var(&opts.version, "version", int32(gui.GuiVersionCurrent), "Format version of the data")
	cmd.Flags().BoolVar(&opts.header, "header", false, "Read the version from a leading int32 (savegame records)")
	cmd.Flags().BoolVar(&opts.legacyText, "legacy-text", false, "Decode the text as Windows-1251")
	return cmd
}

func runDump(cmd *cobra.Command, opts *dumpOptions, path string) error {
	if err := checkKind(opts.kind); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	in := bytes.NewReader(data)

	version := opts.version
	if opts.header {
		if version, err = stream.NewReader(in).ReadInt32(); err != nil {
			return fmt.Errorf("failed to read version header: %w", err)
		}
	}

	tb := newToolTextBox()
	if opts.kind == kindAuthored {
		err = tb.ReadFromFile(in, gui.GuiVersion(version))
	} else {
		err = tb.ReadFromSavegame(in, gui.GuiSvgVersion(version))
	}
	if err != nil {
		return fmt.Errorf("failed to read %s text box from %s: %w", opts.kind, path, err)
	}
	if in.Len() > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %d trailing bytes ignored\n", in.Len())
	}

	doc, err := documentOf(tb, opts.legacyText)
	if err != nil {
		return fmt.Errorf("failed to decode text: %w", err)
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal text box: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
