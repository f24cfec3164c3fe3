package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/spiffcs/prettydate/timestamp"
)

// Version information, set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersionInfo sets the version information (called from main).
func SetVersionInfo(v, c, d string) {
	if v != "" {
		version = v
	}
	if c != "" {
		commit = c
	}
	if d != "" {
		date = d
	}
}

// NewCmdVersion creates the version command.
func NewCmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd.OutOrStdout(), time.Now())
		},
	}
}

func printVersion(out io.Writer, now time.Time) {
	fmt.Fprintf(out, "prettydate %s\n", version)
	fmt.Fprintf(out, "  commit: %s\n", commit)

	built, err := time.Parse(time.RFC3339, date)
	if err != nil {
		fmt.Fprintf(out, "  built:  %s\n", date)
		return
	}
	fmt.Fprintf(out, "  built:  %s (%s)\n", date, timestamp.Between(built, now))
}
