package ui

import weatherservice "github.com/redjax/forecast/internal/services/weatherService"

// lookupDoneMsg carries the result of one lookup. seq ties it to the search
// that started it so results of superseded searches can be dropped.
type lookupDoneMsg struct {
	seq    int
	report *weatherservice.Report
	err    error
}

// searchMsg asks the model to start a lookup.
type searchMsg struct {
	query weatherservice.Query
}
