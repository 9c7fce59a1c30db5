package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/biggeezerdevelopment/lexkit/jsonkey"
)

func newJSONGetCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "json-get KEY...",
		Short: "Print the value at a path of object keys",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := readInput(cmd, file)
			if err != nil {
				return err
			}
			v, ok := jsonkey.LookupPath(buf, args...)
			if !ok {
				return fmt.Errorf("key %s not found", strings.Join(args, "."))
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON input file, - for stdin")
	return cmd
}
