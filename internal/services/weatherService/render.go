package weatherservice

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	townStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	tempStyle = lipgloss.NewStyle().Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

// RenderReport writes the current panel, the next-days table and the map link.
func RenderReport(w io.Writer, r *Report) error {
	var b strings.Builder

	b.WriteString(townStyle.Render(r.Title()))
	b.WriteString("\n")

	if r.Current != nil {
		c := r.Current
		b.WriteString(fmt.Sprintf("%s  %s  %s  %s\n",
			IconGlyph(c.Logo), tempStyle.Render(c.Temperature), c.WindSpeed, c.Details))
		b.WriteString(dimStyle.Render(c.Date))
		b.WriteString("\n")
	}

	if len(r.NextDays) > 0 {
		b.WriteString("\n")
		b.WriteString(NextDaysTable(r.NextDays))
		b.WriteString("\n")
	} else {
		b.WriteString(dimStyle.Render("No forecast available"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Map: %s\n", r.MapURL))

	_, err := io.WriteString(w, b.String())
	return err
}

// NextDaysTable renders the forecast list as a rounded table.
func NextDaysTable(days []WeatherDisplayed) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"", "Date", "Temp", "Wind", "Details"})
	for _, d := range days {
		tw.AppendRow(table.Row{IconGlyph(d.Logo), d.Date, d.Temperature, d.WindSpeed, d.Details})
	}
	return tw.Render()
}
