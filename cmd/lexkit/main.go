package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/biggeezerdevelopment/lexkit/internal/scanner"
)

func main() {
	if err := newRootCmd(os.Stdin).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader) *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:           "lexkit",
		Short:         "Tokenize CSV, SQL templates and JSON from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
			slog.Debug("scanner", "block_search", scanner.HasSIMD(), "command", cmd.Name())
		},
	}
	rootCmd.SetIn(stdin)

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output")

	rootCmd.AddCommand(newSplitCmd(), newTemplateCmd(), newJSONGetCmd())
	return rootCmd
}

// readInput reads the whole input named by file: a path, or "-" for the
// command's standard input.
func readInput(cmd *cobra.Command, file string) ([]byte, error) {
	if file == "" || file == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("error opening file %s: %w", file, err)
	}
	return data, nil
}
