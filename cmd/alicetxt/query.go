package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ext-sakamoro/alicetxt/container"
	"github.com/ext-sakamoro/alicetxt/query"
)

func queryCmd() *cobra.Command {
	var (
		showColumns bool
		showStats   bool
		selectFlag  string
		whereFlag   string
		format      string
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "query <input.alicetxt>",
		Short: "Inspect or filter a v3 container's columns",
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

			out := cmd.OutOrStdout()

			if showStats {
				s := eng.Stats()
				fmt.Fprintf(out, "original_length=%d level=%s columns=%d rows=%d\n",
					s.OriginalLength, s.CompressionLevel, s.ColumnCount, s.RowCount)
			}

			if showColumns {
				for _, name := range eng.Columns() {
					fmt.Fprintln(out, name)
				}
			}

			if selectFlag == "" {
				return nil
			}

			cols := strings.Split(selectFlag, ",")

			builder := query.NewBuilder(eng).Select(cols...)
			if whereFlag != "" {
				col, op, value, err := parseWhere(whereFlag)
				if err != nil {
					return err
				}
				builder = builder.Where(col, op, value)
			}

			result, err := builder.Run()
			if err != nil {
				return err
			}

			rows := result.Rows
			if limit > 0 && len(rows) > limit {
				rows = rows[:limit]
			}

			return renderRows(out, cols, rows, format)
		},
	}

	cmd.Flags().BoolVar(&showColumns, "columns", false, "list column names")
	cmd.Flags().BoolVar(&showStats, "stats", false, "print header metadata")
	cmd.Flags().StringVar(&selectFlag, "select", "", "comma-separated column names to materialize")
	cmd.Flags().StringVar(&whereFlag, "where", "", "filter expression: col<op>value")
	cmd.Flags().StringVar(&format, "format", "table", "output format: table, csv, json")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum rows to print (0 = unlimited)")

	return cmd
}

// operatorTokens is tried longest-first so "!=" and ">=" aren't misread as
// "=" or... "<" etc.
var operatorTokens = []string{"!=", ">=", "<=", "~", "=", ">", "<"}

func parseWhere(expr string) (col string, op query.Op, value string, err error) {
	for _, tok := range operatorTokens {
		if idx := strings.Index(expr, tok); idx > 0 {
			col = expr[:idx]
			value = expr[idx+len(tok):]

			o, err := query.ParseOp(tok)
			if err != nil {
				return "", 0, "", err
			}

			return col, o, value, nil
		}
	}

	return "", 0, "", fmt.Errorf("invalid --where expression %q", expr)
}

func renderRows(w io.Writer, cols []string, rows []map[string]string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(rows)

	case "csv":
		cw := csv.NewWriter(w)
		if err := cw.Write(cols); err != nil {
			return err
		}
		for _, row := range rows {
			record := make([]string, len(cols))
			for i, c := range cols {
				record[i] = row[c]
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		cw.Flush()

		return cw.Error()

	default: // table
		for _, row := range rows {
			parts := make([]string, len(cols))
			for i, c := range cols {
				parts[i] = fmt.Sprintf("%s=%s", c, row[c])
			}
			if _, err := fmt.Fprintln(w, strings.Join(parts, " ")); err != nil {
				return err
			}
		}

		return nil
	}
}
