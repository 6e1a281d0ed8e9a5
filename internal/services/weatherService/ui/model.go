package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	weatherservice "github.com/redjax/forecast/internal/services/weatherService"
	"github.com/redjax/forecast/internal/utils/terminal"
)

// Looker is the lookup side of weatherservice.Service.
type Looker interface {
	Lookup(ctx context.Context, q weatherservice.Query) (*weatherservice.Report, error)
}

type UIModel struct {
	svc Looker

	// search box
	input textinput.Model
	keys  keyMap

	// in-flight lookup
	ctx     context.Context
	cancel  context.CancelFunc
	seq     int
	loading bool
	spin    spinner.Model

	// last result, and the error of the last search if it failed
	report *weatherservice.Report
	errMsg string

	initial *weatherservice.Query

	size *terminal.ResponsiveTUIHelper
}

// NewUIModel builds the screen. A non-empty town is searched as soon as the program starts.
func NewUIModel(ctx context.Context, svc Looker, town string) UIModel {
	ti := textinput.New()
	ti.Placeholder = "Town"
	ti.CharLimit = 128
	ti.Width = 40
	ti.Prompt = "Town: "
	ti.Focus()

	m := UIModel{
		svc:   svc,
		input: ti,
		keys:  defaultKeyMap(),
		ctx:   ctx,
		spin:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		size:  terminal.NewResponsiveTUIHelper(),
	}

	if town = strings.TrimSpace(town); town != "" {
		m.input.SetValue(town)
		m.initial = &weatherservice.Query{Town: town}
	}
	return m
}

func (m UIModel) Init() tea.Cmd {
	if m.initial == nil {
		return textinput.Blink
	}
	// Init cannot keep model changes, so the first search is kicked off by a message.
	q := *m.initial
	return tea.Batch(textinput.Blink, func() tea.Msg { return searchMsg{query: q} })
}
