package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"quill/internal/diagfmt"
	"quill/internal/source"
)

func newLinesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lines [flags] file.ql|-",
		Short: "Print the line table of a source file",
		Long:  `Lines prints every line with its start offset, length and length including the line break`,
		Args:  cobra.ExactArgs(1),
		RunE:  runLines,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|yaml)")
	return cmd
}

func runLines(cmd *cobra.Command, args []string) error {
	formatStr, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format, err := readOutputFormat(formatStr)
	if err != nil {
		return err
	}

	fs := source.NewFileSet()
	var fileID source.FileID
	if args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		fileID = fs.AddVirtual("<stdin>", data)
	} else {
		fileID, err = fs.Load(args[0])
		if err != nil {
			return fmt.Errorf("load %s: %w", args[0], err)
		}
	}
	text := fs.Get(fileID).Text

	out := cmd.OutOrStdout()
	switch format {
	case formatJSON:
		return diagfmt.FormatLinesJSON(out, text)
	case formatYAML:
		return diagfmt.FormatLinesYAML(out, text)
	default:
		return diagfmt.FormatLinesPretty(out, text)
	}
}
