package main

import (
	"fmt"
	"strconv"

	"github.com/mark3labs/agentforge/internal/humanize"
	"github.com/spf13/cobra"
)

var sizeCmd = &cobra.Command{
	Use:   "size <bytes>...",
	Short: "Print byte counts the way the wizard displays file sizes",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSize,
}

func runSize(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, arg := range args {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid byte count %q: %w", arg, err)
		}
		fmt.Fprintf(out, "%s\t%s\n", arg, humanize.FormatFileSize(n))
	}
	return nil
}
