package main

import (
	"fmt"
	"log/slog"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/biggeezerdevelopment/lexkit"
	"github.com/biggeezerdevelopment/lexkit/sqltmpl"
)

// literalTypes are the candidates a binding value is inferred from.
var literalTypes = []lexkit.Type{lexkit.TypeInt64, lexkit.TypeDouble, lexkit.TypeString}

func newTemplateCmd() *cobra.Command {
	var (
		named      string
		positional []string
		keep       bool
	)

	cmd := &cobra.Command{
		Use:   "template TEMPLATE",
		Short: "Substitute bindings into a SQL template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseBindings(named, positional)
			if err != nil {
				return err
			}
			slog.Debug("template", "named", b.Names(), "positional", b.Len())

			out, err := sqltmpl.Replace(args[0], b, sqltmpl.Options{KeepUnmatched: keep})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&named, "bind", "b", "", "Named bindings as a query string, e.g. 'name=x&id=5'")
	cmd.Flags().StringArrayVarP(&positional, "arg", "a", nil, "Positional binding (repeatable)")
	cmd.Flags().BoolVar(&keep, "keep", false, "Leave unbound and empty placeholders in place")
	return cmd
}

func parseBindings(query string, positional []string) (*sqltmpl.Bindings, error) {
	b := &sqltmpl.Bindings{}
	for _, arg := range positional {
		b.Add(typedValue([]byte(arg)))
	}

	pairs, err := lexkit.ReadQueryString([]byte(query), nil)
	if err != nil {
		return nil, fmt.Errorf("bindings: %w", err)
	}
	for _, p := range pairs {
		key, err := url.QueryUnescape(string(p.Key))
		if err != nil {
			return nil, fmt.Errorf("bindings: %w", err)
		}
		value, err := url.QueryUnescape(string(p.Value))
		if err != nil {
			return nil, fmt.Errorf("bindings: %w", err)
		}
		if err := b.Set(key, typedValue([]byte(value))); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// typedValue reads literal as the narrowest of int64, double and string.
// An empty literal is null.
func typedValue(literal []byte) any {
	if len(literal) == 0 {
		return nil
	}
	switch lexkit.InferType(literal, literalTypes) {
	case lexkit.TypeInt64:
		if next, i := lexkit.ReadInt64(literal, 0); next == len(literal) {
			return i
		}
	case lexkit.TypeDouble:
		if next, f := lexkit.ReadDouble(literal, 0); next == len(literal) {
			return f
		}
	}
	return string(literal)
}
