package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-yaml"
)

// Format is an output format.
type Format string

const (
	FormatText  Format = "text"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

var formats = []Format{FormatText, FormatYAML, FormatJSON, FormatTable}

// Result is the outcome of a command in every output format.
type Result interface {
	// Text is the plain output, without a trailing newline.
	Text() string
	// Table returns the headers and rows for table output.
	Table() (headers []string, rows [][]string)
}

var borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))

// Output writes result to w in format.
func Output(w io.Writer, format Format, result Result) error {
	switch format {
	case FormatText, "":
		_, err := fmt.Fprintln(w, result.Text())
		return err
	case FormatYAML:
		data, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case FormatTable:
		headers, rows := result.Table()
		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(borderStyle).
			Headers(headers...).
			Rows(rows...)
		_, err := fmt.Fprintln(w, t.Render())
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
