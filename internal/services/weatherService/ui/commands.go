package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	weatherservice "github.com/redjax/forecast/internal/services/weatherService"
)

// lookupCmd runs one lookup off the UI loop
func lookupCmd(svc Looker, ctx context.Context, seq int, q weatherservice.Query) tea.Cmd {
	return func() tea.Msg {
		report, err := svc.Lookup(ctx, q)
		return lookupDoneMsg{seq: seq, report: report, err: err}
	}
}

// startLookup cancels whatever is in flight and starts a new search.
func (m UIModel) startLookup(q weatherservice.Query) (UIModel, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	m.seq++
	m.loading = true
	m.errMsg = ""

	return m, tea.Batch(lookupCmd(m.svc, ctx, m.seq, q), m.spin.Tick)
}
