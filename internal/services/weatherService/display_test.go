package weatherservice

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nantesFusion(t *testing.T) *Fusion {
	t.Helper()
	var fu Fusion
	require.NoError(t, json.Unmarshal([]byte(nantesCurrentJSON), &fu.Current))
	require.NoError(t, json.Unmarshal([]byte(nantesOneCallJSON), &fu.OneCall))
	return &fu
}

func TestFormatterCurrent(t *testing.T) {
	f := Formatter{Units: UnitsMetric, Locale: "fr", Zone: time.UTC}

	d, ok := f.Current(nantesFusion(t))
	require.True(t, ok)

	assert.Equal(t, WeatherDisplayed{
		Logo:        "10d",
		Date:        "lun. 05/10 14:00",
		Temperature: "12 °C",
		WindSpeed:   "18 km/h",
		Details:     "Rain / light rain",
	}, d)
}

func TestFormatterCurrentMissing(t *testing.T) {
	_, ok := Formatter{}.Current(&Fusion{})
	assert.False(t, ok)
}

func TestFormatterCurrentDefaults(t *testing.T) {
	f := Formatter{Units: UnitsMetric, Locale: "en", Zone: time.UTC}

	d, ok := f.Current(&Fusion{Current: &Current{}})
	require.True(t, ok)
	assert.Equal(t, "", d.Logo)
	assert.Equal(t, "No Date", d.Date)
	assert.Equal(t, "0 °C", d.Temperature)
	assert.Equal(t, "0 km/h", d.WindSpeed)
	assert.Equal(t, "No details", d.Details)
}

func TestFormatterNextDaysAfterPrune(t *testing.T) {
	fu := nantesFusion(t)
	PruneStaleDays(fu)

	f := Formatter{Units: UnitsMetric, Locale: "fr", Zone: time.UTC}
	days := f.NextDays(fu)

	require.Len(t, days, 2)
	assert.Equal(t, WeatherDisplayed{
		Logo:        "04d",
		Date:        "mar. 06/10 11:00",
		Temperature: "16 °C",
		WindSpeed:   "15 km/h",
		Details:     "Clouds / broken clouds",
	}, days[0])
	// negative values truncate toward zero
	assert.Equal(t, "-2 °C", days[1].Temperature)
	assert.Equal(t, "44 km/h", days[1].WindSpeed)
	assert.Equal(t, "mer. 07/10 11:00", days[1].Date)
}

func TestFormatterCityZone(t *testing.T) {
	f := Formatter{Units: UnitsMetric, Locale: "en"}

	d, ok := f.Current(nantesFusion(t))
	require.True(t, ok)
	// timezone_offset is +2h
	assert.Equal(t, "Mon 05/10 16:00", d.Date)
}

func TestFormatterImperial(t *testing.T) {
	f := Formatter{Units: UnitsImperial, Locale: "en", Zone: time.UTC}

	d, ok := f.Current(nantesFusion(t))
	require.True(t, ok)
	assert.Equal(t, "12 °F", d.Temperature)
	assert.Equal(t, "5 mph", d.WindSpeed)
}

func TestFormatterStandardUnits(t *testing.T) {
	f := Formatter{Units: UnitsStandard, Locale: "en", Zone: time.UTC}
	assert.Equal(t, "285 K", f.temperature(285.9))
	assert.Equal(t, "18 km/h", f.wind(5.1))
}

func TestNextDaysWithoutForecast(t *testing.T) {
	days := Formatter{}.NextDays(&Fusion{Current: &Current{}})
	require.NotNil(t, days)
	assert.Empty(t, days)
	assert.Empty(t, Formatter{}.NextDays(nil))
}

func TestPositionAndMapURL(t *testing.T) {
	p := PositionOf(nantesFusion(t))
	assert.Equal(t, Position{Lat: 47.22, Lon: -1.55}, p)
	assert.Equal(t,
		"https://www.openstreetmap.org/?mlat=47.2200&mlon=-1.5500#map=10/47.2200/-1.5500",
		MapURL(p, MapZoom))

	assert.Equal(t, Position{}, PositionOf(&Fusion{Current: &Current{}}))
}

func TestIcons(t *testing.T) {
	assert.Equal(t, "http://openweathermap.org/img/wn/10d.png", IconURL("10d"))
	assert.Equal(t, "", IconURL(""))

	assert.Equal(t, "☀", IconGlyph("01d"))
	assert.Equal(t, "☾", IconGlyph("01n"))
	assert.Equal(t, "☁", IconGlyph("04n"))
	assert.Equal(t, "❄", IconGlyph("13d"))
	assert.Equal(t, "?", IconGlyph(""))
}

func TestResolveZone(t *testing.T) {
	loc, err := ResolveZone("local")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = ResolveZone("city")
	require.NoError(t, err)
	assert.Nil(t, loc)

	loc, err = ResolveZone("UTC")
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = ResolveZone("Mars/Olympus_Mons")
	assert.Error(t, err)
}

func TestSupportedLocaleAndUnits(t *testing.T) {
	assert.True(t, SupportedLocale("fr"))
	assert.False(t, SupportedLocale("xx"))
	assert.True(t, SupportedUnits("metric"))
	assert.False(t, SupportedUnits("kelvin"))
}
