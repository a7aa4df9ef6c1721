package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/phonetics/internal/config"
)

// tabular is a report that can also be drawn as a table.
type tabular interface {
	header() []string
	rows() [][]string
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#6e7681"))
)

// output writes report in the given format.
func output(w io.Writer, format string, report tabular) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(report)
	case config.FormatYAML, "":
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		_, err = w.Write(data)

		return err
	case config.FormatTable:
		_, err := fmt.Fprintln(w, renderTable(report.header(), report.rows()))

		return err
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func renderTable(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for c, h := range header {
		widths[c] = lipgloss.Width(h)
	}
	for _, r := range rows {
		for c, cell := range r {
			widths[c] = max(widths[c], lipgloss.Width(cell))
		}
	}

	line := func(cells []string, style lipgloss.Style) string {
		out := make([]string, len(cells))
		for c, cell := range cells {
			out[c] = style.Width(widths[c] + 2).Render(cell)
		}

		return lipgloss.JoinHorizontal(lipgloss.Top, out...)
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, line(header, headerStyle))
	for _, r := range rows {
		lines = append(lines, line(r, cellStyle))
	}

	return frameStyle.Render(strings.Join(lines, "\n"))
}
