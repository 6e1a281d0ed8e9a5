package weatherservice

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReport(t *testing.T) {
	r := &Report{
		Town: "Nantes",
		Current: &WeatherDisplayed{
			Logo: "10d", Date: "lun. 05/10 14:00", Temperature: "12 °C",
			WindSpeed: "18 km/h", Details: "Rain / light rain",
		},
		NextDays: []WeatherDisplayed{
			{Logo: "04d", Date: "mar. 06/10 11:00", Temperature: "16 °C", WindSpeed: "15 km/h", Details: "Clouds / broken clouds"},
		},
		MapURL: "https://www.openstreetmap.org/?mlat=47.2200&mlon=-1.5500#map=10/47.2200/-1.5500",
	}

	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, r))
	out := buf.String()

	assert.Contains(t, out, "Nantes")
	assert.Contains(t, out, "12 °C")
	assert.Contains(t, out, "Rain / light rain")
	assert.Contains(t, out, "mar. 06/10 11:00")
	assert.Contains(t, out, "Clouds / broken clouds")
	assert.Contains(t, out, "Map: https://www.openstreetmap.org/")
}

func TestRenderReportWithoutForecast(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, &Report{Town: "Nowhere"}))
	assert.Contains(t, buf.String(), "No forecast available")
}

func TestRenderReportUsesDetectedPlace(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, &Report{Town: "Rezé", Place: "Rezé, France"}))
	assert.Contains(t, buf.String(), "Rezé, France")
}
