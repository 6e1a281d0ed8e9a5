package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	weatherservice "github.com/redjax/forecast/internal/services/weatherService"
)

func (m UIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.size.HandleWindowSizeMsg(msg)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Search):
			town := strings.TrimSpace(m.input.Value())
			if town == "" {
				m.errMsg = weatherservice.ErrEmptyTown.Error()
				return m, nil
			}
			return m.startLookup(weatherservice.Query{Town: town})
		case key.Matches(msg, m.keys.Locate):
			return m.startLookup(weatherservice.Query{Auto: true})
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case searchMsg:
		return m.startLookup(msg.query)

	case lookupDoneMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if m.cancel != nil {
			// release the finished lookup's context
			m.cancel()
			m.cancel = nil
		}
		if msg.err != nil {
			if !errors.Is(msg.err, context.Canceled) {
				m.errMsg = msg.err.Error()
			}
			return m, nil
		}
		m.report = msg.report
		m.errMsg = ""
		if m.report != nil && m.report.Town != "" {
			m.input.SetValue(m.report.Town)
			m.input.CursorEnd()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
