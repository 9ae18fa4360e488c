package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ext-sakamoro/alicetxt/compress"
	"github.com/ext-sakamoro/alicetxt/container"
)

func estimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate <input>",
		Short: "Report container size at each compression level without writing a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			original := int64(len(text))

			for _, lvl := range []compress.Level{compress.Fast, compress.Balanced, compress.Best} {
				w, err := container.NewWriter(container.WithLevel(lvl))
				if err != nil {
					return err
				}

				var buf bytes.Buffer
				if err := w.Write(&buf, string(text)); err != nil {
					return err
				}

				stats := compress.CompressionStats{
					Backend:        compress.DefaultBackend,
					Level:          lvl,
					OriginalSize:   original,
					CompressedSize: int64(buf.Len()),
				}

				fmt.Fprintf(out, "%-10s %10d bytes  ratio=%.4f  savings=%.1f%%\n",
					lvl, stats.CompressedSize, stats.CompressionRatio(), stats.SpaceSavings())
			}

			return nil
		},
	}

	return cmd
}
