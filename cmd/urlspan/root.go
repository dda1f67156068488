package main

import (
	"bufio"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "urlspan",
	Short: "Split URLs into components and percent-encode text",
	Long: `urlspan splits scheme://[user[:pass]@]host[:port][/path][?query][#fragment]
URLs into their components in a single pass and runs the percent-encoding codec.

Arguments are processed in order; with no arguments input is read from stdin, one item per line.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// inputs returns args, or the non-empty stdin lines if there are none.
func inputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) != 0 {
		return args, nil
	}

	var lines []string

	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		if l := strings.TrimSpace(sc.Text()); l != "" {
			lines = append(lines, l)
		}
	}

	return lines, errors.Wrap(sc.Err(), "read input")
}

func logf(cmd *cobra.Command, format string, args ...any) {
	if verbose && !quiet {
		cmd.PrintErrf(format, args...)
	}
}

func warnf(cmd *cobra.Command, format string, args ...any) {
	if !quiet {
		cmd.PrintErrf(format, args...)
	}
}
