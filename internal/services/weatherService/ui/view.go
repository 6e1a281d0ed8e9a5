package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	weatherservice "github.com/redjax/forecast/internal/services/weatherService"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#7D56F4")).Padding(0, 1)
	sectionStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#7D56F4")).Padding(0, 1)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	bigStyle     = lipgloss.NewStyle().Bold(true)
)

func (m UIModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Forecast"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.loading {
		b.WriteString(fmt.Sprintf("%s Fetching weather...\n", m.spin.View()))
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	if m.report != nil {
		b.WriteString("\n")
		b.WriteString(m.viewReport(m.report))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%s • %s • %s",
		helpEntry(m.keys.Search.Help().Key, m.keys.Search.Help().Desc),
		helpEntry(m.keys.Locate.Help().Key, m.keys.Locate.Help().Desc),
		helpEntry(m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc))))

	return m.size.TruncateContentToHeight(b.String())
}

func (m UIModel) viewReport(r *weatherservice.Report) string {
	var b strings.Builder

	if r.Current != nil {
		c := r.Current
		var panel strings.Builder
		panel.WriteString(bigStyle.Render(fmt.Sprintf("%s  %s", r.Title(), weatherservice.IconGlyph(c.Logo))))
		panel.WriteString("\n")
		panel.WriteString(c.Date)
		panel.WriteString("\n")
		panel.WriteString(fmt.Sprintf("%s   %s\n", bigStyle.Render(c.Temperature), c.WindSpeed))
		panel.WriteString(c.Details)
		b.WriteString(m.size.GetResponsiveSectionStyle(sectionStyle).Render(panel.String()))
		b.WriteString("\n")
	}

	if len(r.NextDays) > 0 {
		b.WriteString(m.buildNextDaysTable(r.NextDays).View())
		b.WriteString("\n")
	} else {
		b.WriteString(helpStyle.Render("No forecast available"))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Map: %s\n", r.MapURL))
	return b.String()
}

func helpEntry(k, desc string) string {
	return k + " " + desc
}
