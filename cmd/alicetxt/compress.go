package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ext-sakamoro/alicetxt"
)

func compressCmd() *cobra.Command {
	var level string
	var output string

	cmd := &cobra.Command{
		Use:     "compress <input>",
		Aliases: []string{"compress-v3"},
		Short:   "Encode a text file into a v3 container",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := parseLevel(level)
			if err != nil {
				return err
			}

			text, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			data, err := alicetxt.Compress(string(text), lvl)
			if err != nil {
				return err
			}

			out := output
			if out == "" {
				out = args[0] + ".alicetxt"
			}

			return os.WriteFile(out, data, 0o644)
		},
	}

	cmd.Flags().StringVar(&level, "level", "balanced", "compression level: fast, balanced, best")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: <input>.alicetxt)")

	return cmd
}
