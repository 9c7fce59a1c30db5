package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/biggeezerdevelopment/lexkit"
)

func newSplitCmd() *cobra.Command {
	var (
		delim  string
		quote  string
		types  string
		repeat bool
	)

	cmd := &cobra.Command{
		Use:   "split [file|-]",
		Short: "Split delimited text into fields, one line per output row",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := csvDialect(delim, quote, repeat)
			if err != nil {
				return err
			}
			columns, err := parseTypes(types)
			if err != nil {
				return err
			}

			file := "-"
			if len(args) == 1 {
				file = args[0]
			}
			buf, err := readInput(cmd, file)
			if err != nil {
				return err
			}
			slog.Debug("split", "bytes", len(buf), "columns", len(columns))

			return splitLines(cmd, buf, d, columns)
		},
	}

	cmd.Flags().StringVarP(&delim, "delimiter", "d", ",", "Field delimiter (a single byte, or \\t)")
	cmd.Flags().StringVarP(&quote, "quote", "q", `"`, "Quote character")
	cmd.Flags().StringVarP(&types, "types", "t", "", "Comma-separated column types, e.g. int64,double,string")
	cmd.Flags().BoolVar(&repeat, "repeat", false, "Treat runs of delimiters as one")
	return cmd
}

func splitLines(cmd *cobra.Command, buf []byte, d lexkit.CSV, columns []lexkit.Type) error {
	out := cmd.OutOrStdout()
	var (
		values []lexkit.Variant
		fields []string
	)

	for pos, line := 0, 1; pos < len(buf); line++ {
		var (
			next int
			err  error
		)
		if len(columns) > 0 {
			values, next, err = lexkit.ReadLine(buf, pos, columns, d, values[:0])
			fields = fields[:0]
			for _, v := range values {
				fields = append(fields, v.String())
			}
		} else {
			fields, next, err = lexkit.ReadLineStrings(buf, pos, d, fields[:0])
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		fmt.Fprintf(out, "%q\n", fields)
		pos = next
	}
	return nil
}

func csvDialect(delim, quote string, repeat bool) (lexkit.CSV, error) {
	if delim == `\t` || delim == "tab" {
		delim = "\t"
	}
	if len(delim) != 1 {
		return lexkit.CSV{}, fmt.Errorf("delimiter must be a single byte, got %q", delim)
	}
	if len(quote) != 1 {
		return lexkit.CSV{}, fmt.Errorf("quote must be a single byte, got %q", quote)
	}

	d := lexkit.DefaultCSV()
	d.Delim = delim[0]
	d.Quote = quote[0]
	d.Repeat = repeat
	return d, nil
}

func parseTypes(list string) ([]lexkit.Type, error) {
	if list == "" {
		return nil, nil
	}
	var types []lexkit.Type
	for _, name := range strings.Split(list, ",") {
		t, ok := lexkit.ParseType(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown column type %q", name)
		}
		types = append(types, t)
	}
	return types, nil
}
