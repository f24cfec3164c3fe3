package format

import (
	"fmt"

	"github.com/spiffcs/prettydate/timestamp"
)

// Age formats a calendar difference as a compact label using its largest
// unit: "now", "5m", "2h", "3d", "2w", "3mo", "1y".
func Age(d timestamp.Difference) string {
	switch {
	case d.Years >= 1:
		return fmt.Sprintf("%dy", d.Years)
	case d.Months >= 1:
		return fmt.Sprintf("%dmo", d.Months)
	case d.Weeks >= 1:
		return fmt.Sprintf("%dw", d.Weeks)
	case d.Days >= 1:
		return fmt.Sprintf("%dd", d.Days)
	case d.Hours >= 1:
		return fmt.Sprintf("%dh", d.Hours)
	case d.Minutes >= 1:
		return fmt.Sprintf("%dm", d.Minutes)
	}
	return "now"
}
