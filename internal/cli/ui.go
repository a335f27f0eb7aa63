package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Terminal colours follow the image palette.
var (
	inkIndigo = lipgloss.Color("#667eea")
	inkPurple = lipgloss.Color("#764ba2")
	inkRed    = lipgloss.Color("#e74c3c")
	inkGrey   = lipgloss.Color("#666666")
)

var (
	styleHeading = lipgloss.NewStyle().Bold(true).Foreground(inkPurple)
	styleMuted   = lipgloss.NewStyle().Foreground(inkGrey)
	styleOK      = lipgloss.NewStyle().Bold(true).Foreground(inkIndigo)
	styleFail    = lipgloss.NewStyle().Bold(true).Foreground(inkRed)
	styleCell    = lipgloss.NewStyle().Padding(0, 1)
	styleHeader  = styleCell.Bold(true).Foreground(inkIndigo)
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleOK.Render("✓")+" "+fmt.Sprintf(format, args...))
}

func printFailure(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleFail.Render("✗")+" "+fmt.Sprintf(format, args...))
}

func printPath(w io.Writer, path string) {
	fmt.Fprintln(w, styleMuted.Render("  wrote ")+path)
}

// printTable renders one heading and a bordered table of rows under header.
// Numeric columns are right aligned.
func printTable(w io.Writer, heading string, header []string, rows [][]string) {
	fmt.Fprintln(w, styleHeading.Render(heading))
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleMuted).
		Headers(header...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case col == 0:
				return styleCell
			default:
				return styleCell.Align(lipgloss.Right)
			}
		})
	fmt.Fprintln(w, t.Render())
}
