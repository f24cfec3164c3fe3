package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/spiffcs/prettydate/internal/format"
	"github.com/spiffcs/prettydate/timestamp"
)

const (
	colInputMax  = 32
	colTimeWidth = len(time.RFC3339)
)

// TableFormatter formats output as a terminal table
type TableFormatter struct{}

// Format outputs results as an aligned table
func (f *TableFormatter) Format(results []Result, w io.Writer) error {
	if len(results) == 0 {
		fmt.Fprintln(w, "No timestamps given.")
		return nil
	}

	colInput := len("Input")
	colRelative := len("Relative")
	for _, r := range results {
		colInput = max(colInput, min(format.DisplayWidth(r.Input), colInputMax))
		colRelative = max(colRelative, format.DisplayWidth(r.Relative))
	}

	fmt.Fprintf(w, "%s  %s  %s  %s\n",
		format.PadRight("Input", colInput),
		format.PadRight("Time", colTimeWidth),
		format.PadRight("Relative", colRelative),
		"Age")
	fmt.Fprintln(w, strings.Repeat("-", colInput+colTimeWidth+colRelative+len("Age")+6))

	for _, r := range results {
		fmt.Fprintf(w, "%s  %s  %s  %s\n",
			format.PadRight(format.Truncate(r.Input, colInput), colInput),
			format.PadRight(r.From.Format(time.RFC3339), colTimeWidth),
			format.PadRight(colorRelative(r.Difference, r.Relative), colRelative),
			r.Age)
	}

	return nil
}

// colorRelative shades a phrase by how stale it is.
func colorRelative(d timestamp.Difference, s string) string {
	switch {
	case d.Years >= 1 || d.Months >= 1:
		return color.RedString(s)
	case d.Weeks >= 1:
		return color.YellowString(s)
	case d.Days >= 1:
		return color.CyanString(s)
	default:
		return color.GreenString(s)
	}
}
