package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ext-sakamoro/alicetxt"
)

func decompressCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "decompress <input.alicetxt>",
		Short: "Restore the original text from a v3 container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := alicetxt.DecompressFile(args[0])
			if err != nil {
				return err
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write([]byte(text))

				return err
			}

			return os.WriteFile(output, []byte(text), 0o644)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: stdout)")

	return cmd
}
