package main

import (
	"github.com/spf13/cobra"
)

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "alicetxt",
		Short: "Pattern-aware columnar compression for structured text",
		Long: "alicetxt recognizes timestamps, IPs, UUIDs, log levels, and other\n" +
			"syntactic patterns in log-like text, splits it into typed columns, and\n" +
			"compresses each column independently in a self-describing container.",
		SilenceUsage: true,
	}

	root.AddCommand(
		compressCmd(),
		decompressCmd(),
		infoCmd(),
		estimateCmd(),
		verifyCmd(),
		queryCmd(),
	)

	return root
}
