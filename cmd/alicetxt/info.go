package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ext-sakamoro/alicetxt/container"
	"github.com/ext-sakamoro/alicetxt/query"
)

func infoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <input.alicetxt>",
		Short: "Print header and per-column metadata without decoding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := container.OpenFile(args[0])
			if err != nil {
				return err
			}
			defer src.Close()

			eng, err := query.Open(src)
			if err != nil {
				return err
			}

			stats := eng.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "original_length: %d\n", stats.OriginalLength)
			fmt.Fprintf(out, "compression_level: %s\n", stats.CompressionLevel)
			fmt.Fprintf(out, "column_count: %d\n", stats.ColumnCount)
			fmt.Fprintf(out, "row_count: %d\n", stats.RowCount)
			fmt.Fprintln(out, "columns:")
			for _, c := range eng.ColumnStats() {
				fmt.Fprintf(out, "  %-16s rows=%d\n", c.Name, c.RowCount)
			}

			return nil
		},
	}

	return cmd
}
