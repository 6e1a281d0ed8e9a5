package ui

import (
	t "github.com/evertras/bubble-table/table"
	weatherservice "github.com/redjax/forecast/internal/services/weatherService"
	"github.com/redjax/forecast/internal/utils/strutils"
)

const (
	colIcon    = "icon"
	colDate    = "date"
	colTemp    = "temp"
	colWind    = "wind"
	colDetails = "details"
)

// buildNextDaysTable lays the forecast days out as rows; the details column
// takes whatever width the terminal leaves.
func (m UIModel) buildNextDaysTable(days []weatherservice.WeatherDisplayed) t.Model {
	const (
		iconWidth = 4
		dateWidth = 18
		tempWidth = 9
		windWidth = 10
	)
	detailsWidth := m.size.GetContentWidth() - iconWidth - dateWidth - tempWidth - windWidth
	if detailsWidth < 16 {
		detailsWidth = 16
	}

	cols := []t.Column{
		t.NewColumn(colIcon, " ", iconWidth),
		t.NewColumn(colDate, "Date", dateWidth),
		t.NewColumn(colTemp, "Temp", tempWidth),
		t.NewColumn(colWind, "Wind", windWidth),
		t.NewColumn(colDetails, "Details", detailsWidth),
	}

	rows := make([]t.Row, 0, len(days))
	for _, d := range days {
		rows = append(rows, t.NewRow(t.RowData{
			colIcon:    weatherservice.IconGlyph(d.Logo),
			colDate:    d.Date,
			colTemp:    d.Temperature,
			colWind:    d.WindSpeed,
			colDetails: strutils.Truncate(d.Details, detailsWidth-2),
		}))
	}

	return t.New(cols).WithRows(rows)
}
