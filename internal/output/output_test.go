package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/spiffcs/prettydate/timestamp"
)

func sampleResults() []Result {
	to := time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC)
	return []Result{
		{
			Input:      "4w",
			From:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			To:         to,
			Relative:   "4 weeks ago",
			Age:        "4w",
			Difference: timestamp.Difference{Weeks: 4},
		},
		{
			Input:      "2024-01-28T23:55:00Z",
			From:       time.Date(2024, 1, 28, 23, 55, 0, 0, time.UTC),
			To:         to,
			Relative:   "5 minutes ago",
			Age:        "5m",
			Difference: timestamp.Difference{Minutes: 5},
		},
	}
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatText, "*output.TextFormatter"},
		{FormatTable, "*output.TableFormatter"},
		{FormatJSON, "*output.JSONFormatter"},
		{"", "*output.TextFormatter"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			got := NewFormatter(tt.format)
			if name := fmt.Sprintf("%T", got); name != tt.want {
				t.Errorf("NewFormatter(%q) = %s, want %s", tt.format, name, tt.want)
			}
		})
	}
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TextFormatter{}).Format(sampleResults(), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "4 weeks ago\n5 minutes ago\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Format(sampleResults(), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 results, got %d", len(decoded))
	}
	if decoded[0]["relative"] != "4 weeks ago" {
		t.Errorf("relative = %v", decoded[0]["relative"])
	}
	diff, ok := decoded[0]["difference"].(map[string]any)
	if !ok || diff["weeks"] != float64(4) {
		t.Errorf("difference = %v", decoded[0]["difference"])
	}
}

func TestJSONFormatterEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Format(nil, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("got %q, want []", buf.String())
	}
}

func TestTableFormatter(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(sampleResults(), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, rule and 2 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "Input") || !strings.Contains(lines[0], "Relative") {
		t.Errorf("unexpected header %q", lines[0])
	}

	// Columns line up: "Relative" starts where each row's phrase starts.
	col := strings.Index(lines[0], "Relative")
	for _, row := range lines[2:] {
		if row[col] == ' ' || row[col-1] != ' ' {
			t.Errorf("row not aligned at column %d: %q", col, row)
		}
	}
	if !strings.Contains(lines[2], "2024-01-01T00:00:00Z") {
		t.Errorf("row missing formatted time: %q", lines[2])
	}
}

func TestTableFormatterEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(nil, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "No timestamps") {
		t.Errorf("got %q", buf.String())
	}
}

func TestColorRelative(t *testing.T) {
	color.NoColor = true
	if got := colorRelative(timestamp.Difference{Months: 2}, "2 months ago"); got != "2 months ago" {
		t.Errorf("colorRelative with colors disabled = %q", got)
	}
}
