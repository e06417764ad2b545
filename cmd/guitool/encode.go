package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/decker502/agsgui/internal/stream"
	"github.com/decker502/agsgui/pkg/gui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type encodeOptions struct {
	kind       string
	version    int32
	header     bool
	legacyText bool
	output     string
}

func newEncodeCommand() *cobra.Command {
	opts := &encodeOptions{}

	cmd := &cobra.Command{
		Use:   "encode FILE.yaml",
		Short: "Serialize a YAML text box into game data or a savegame blob",
		Long: `Read a text box description in the YAML layout printed by dump and
write it as game data (--kind authored) or savegame data (--kind savegame).

Examples:
  guitool encode --kind authored -o textbox.bin textbox.yaml
  guitool encode --kind savegame --header -o txtInput.sav textbox.yaml
  guitool encode --kind authored --version 0 --legacy-text -o old.bin textbox.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.kind, "kind", kindAuthored, "Data kind: authored or savegame")
	cmd.Flags().Int32Var(&opts.version, "version", int32(gui.GuiVersionCurrent), "Format version to write")
	cmd.Flags().BoolVar(&opts.header, "header", false, "Prefix the data with its version as int32 (savegame records)")
	cmd.Flags().BoolVar(&opts.legacyText, "legacy-text", false, "Store the text as Windows-1251")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

func runEncode(cmd *cobra.Command, opts *encodeOptions, path string) error {
	if err := checkKind(opts.kind); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	var doc textBoxDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	tb := doc.textBox(opts.legacyText)

	var buf bytes.Buffer
	if opts.header {
		if err := stream.NewWriter(&buf).WriteInt32(opts.version); err != nil {
			return err
		}
	}
	if opts.kind == kindAuthored {
		err = tb.WriteToFileVersion(&buf, gui.GuiVersion(opts.version))
	} else {
		err = tb.WriteToSavegameVersion(&buf, gui.GuiSvgVersion(opts.version))
	}
	if err != nil {
		return fmt.Errorf("failed to serialize text box: %w", err)
	}

	var out io.Writer = cmd.OutOrStdout()
	if opts.output != "" {
		if err := os.WriteFile(opts.output, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", opts.output, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d bytes to %s\n", buf.Len(), opts.output)
		return nil
	}
	_, err = out.Write(buf.Bytes())
	return err
}
