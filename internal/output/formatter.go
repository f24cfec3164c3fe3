package output

import (
	"io"
	"time"

	"github.com/spiffcs/prettydate/timestamp"
)

// Format represents the output format
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// Result is one rendered timestamp.
type Result struct {
	Input      string               `json:"input"`
	From       time.Time            `json:"from"`
	To         time.Time            `json:"to"`
	Relative   string               `json:"relative"`
	Age        string               `json:"age"`
	Difference timestamp.Difference `json:"difference"`
}

// Formatter defines the interface for output formatters
type Formatter interface {
	Format(results []Result, w io.Writer) error
}

// NewFormatter creates a formatter for the specified format
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Pretty: true}
	case FormatTable:
		return &TableFormatter{}
	default:
		return &TextFormatter{}
	}
}

// TextFormatter writes one relative phrase per line.
type TextFormatter struct{}

// Format outputs the relative phrase of each result
func (f *TextFormatter) Format(results []Result, w io.Writer) error {
	for _, r := range results {
		if _, err := io.WriteString(w, r.Relative+"\n"); err != nil {
			return err
		}
	}
	return nil
}
