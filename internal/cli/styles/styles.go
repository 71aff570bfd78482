package styles

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

// Palette used across all CLI output
const (
	AccentColor  = "#7D56F4"
	SubtleColor  = "#6C6C6C"
	NormalColor  = "#DDDDDD"
	SuccessColor = "#04B575"
	ErrorColor   = "#FF5F87"
	WarningColor = "#FFB86C"
)

var (
	// Table styles
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(AccentColor)).
			Padding(0, 1)
	CellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(NormalColor)).
			Padding(0, 1)
	OddRowStyle = CellStyle.
			Foreground(lipgloss.Color(SubtleColor))
	BorderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(AccentColor))

	// Message styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(AccentColor))
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(SuccessColor))
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ErrorColor))
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(WarningColor))
)

// RenderTable lays out headers and rows as a bordered table
func RenderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(BorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderStyle
			case row%2 == 1:
				return OddRowStyle
			default:
				return CellStyle
			}
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}
