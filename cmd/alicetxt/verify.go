package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ext-sakamoro/alicetxt"
	"github.com/ext-sakamoro/alicetxt/compress"
)

func verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <input>",
		Short: "Round-trip a text file through compress/decompress and diff the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			data, err := alicetxt.Compress(string(text), compress.Balanced)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			restored, err := alicetxt.Decompress(data)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}

			if restored != string(text) {
				return fmt.Errorf("round-trip mismatch: %d bytes in, %d bytes out", len(text), len(restored))
			}

			fmt.Fprintln(cmd.OutOrStdout(), "ok: round-trip byte-identical")

			return nil
		},
	}

	return cmd
}
