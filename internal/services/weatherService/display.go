package weatherservice

import (
	"fmt"
	"strings"
	"time"
)

const (
	UnitsMetric   = "metric"
	UnitsImperial = "imperial"
	UnitsStandard = "standard"

	// Zoom level used for the map marker link.
	MapZoom = 10

	iconURLTemplate = "http://openweathermap.org/img/wn/%s.png"
)

// WeatherDisplayed is one display-ready row: the current panel or a forecast day.
type WeatherDisplayed struct {
	Logo        string `json:"logo"`
	Date        string `json:"date"`
	Temperature string `json:"temperature"`
	WindSpeed   string `json:"wind_speed"`
	Details     string `json:"details"`
}

func defaultDisplayed() WeatherDisplayed {
	return WeatherDisplayed{
		Date:        "No Date",
		Temperature: "0°",
		WindSpeed:   "0 km/h",
		Details:     "No details",
	}
}

// Position is where the map marker goes.
type Position struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Formatter turns provider values into display strings.
type Formatter struct {
	Units  string
	Locale string
	// Zone used for dates. Nil means the city's own offset from the forecast.
	Zone *time.Location
}

// SupportedUnits reports whether units is a unit system the provider accepts.
func SupportedUnits(units string) bool {
	switch units {
	case UnitsMetric, UnitsImperial, UnitsStandard:
		return true
	}
	return false
}

// ResolveZone maps a display.timezone setting to a location. "city" yields nil.
func ResolveZone(name string) (*time.Location, error) {
	switch strings.ToLower(name) {
	case "", "local":
		return time.Local, nil
	case "city":
		return nil, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}

// Current builds the current-conditions panel from the "weather" response.
func (f Formatter) Current(fu *Fusion) (WeatherDisplayed, bool) {
	if fu == nil || fu.Current == nil {
		return WeatherDisplayed{}, false
	}
	cur := fu.Current
	zone := f.zoneFor(fu)

	d := defaultDisplayed()
	if cond, ok := firstCondition(cur.Weather); ok {
		d.Logo = cond.Icon
		d.Details = details(cond)
	}
	if cur.Dt != 0 {
		d.Date = formatDate(time.Unix(cur.Dt, 0).In(zone), f.Locale)
	}
	if cur.Main != nil {
		d.Temperature = f.temperature(cur.Main.Temp)
	} else {
		d.Temperature = f.temperature(0)
	}
	if cur.Wind != nil {
		d.WindSpeed = f.wind(cur.Wind.Speed)
	} else {
		d.WindSpeed = f.wind(0)
	}
	return d, true
}

// NextDays builds one row per remaining forecast day, in provider order.
// The result is never nil so it encodes as a JSON array.
func (f Formatter) NextDays(fu *Fusion) []WeatherDisplayed {
	if fu == nil || fu.OneCall == nil {
		return []WeatherDisplayed{}
	}
	zone := f.zoneFor(fu)

	out := make([]WeatherDisplayed, 0, len(fu.OneCall.Daily))
	for _, day := range fu.OneCall.Daily {
		d := defaultDisplayed()
		if cond, ok := firstCondition(day.Weather); ok {
			d.Logo = cond.Icon
			d.Details = details(cond)
		}
		if day.Dt != 0 {
			d.Date = formatDate(time.Unix(day.Dt, 0).In(zone), f.Locale)
		}
		var t float64
		if day.Temp != nil {
			t = day.Temp.Day
		}
		d.Temperature = f.temperature(t)
		d.WindSpeed = f.wind(day.WindSpeed)
		out = append(out, d)
	}
	return out
}

// PositionOf returns the marker position from the current conditions, 0,0 when absent.
func PositionOf(fu *Fusion) Position {
	if fu == nil || fu.Current == nil || fu.Current.Coord == nil {
		return Position{}
	}
	return Position{Lat: fu.Current.Coord.Lat, Lon: fu.Current.Coord.Lon}
}

// MapURL links to an OpenStreetMap view centered on p with a marker.
func MapURL(p Position, zoom int) string {
	return fmt.Sprintf("https://www.openstreetmap.org/?mlat=%.4f&mlon=%.4f#map=%d/%.4f/%.4f",
		p.Lat, p.Lon, zoom, p.Lat, p.Lon)
}

// IconURL returns the provider's image for an icon code, or "" for no code.
func IconURL(code string) string {
	if code == "" {
		return ""
	}
	return fmt.Sprintf(iconURLTemplate, code)
}

// IconGlyph maps an icon code ("10d", "04n", ...) to a terminal glyph.
func IconGlyph(code string) string {
	if len(code) < 2 {
		return "?"
	}
	switch code[:2] {
	case "01":
		if strings.HasSuffix(code, "n") {
			return "☾"
		}
		return "☀"
	case "02":
		return "⛅"
	case "03", "04":
		return "☁"
	case "09":
		return "🌧"
	case "10":
		return "🌦"
	case "11":
		return "⛈"
	case "13":
		return "❄"
	case "50":
		return "🌫"
	}
	return "?"
}

func (f Formatter) zoneFor(fu *Fusion) *time.Location {
	if f.Zone != nil {
		return f.Zone
	}
	switch {
	case fu.OneCall != nil:
		return time.FixedZone(fu.OneCall.Timezone, fu.OneCall.TimezoneOffset)
	case fu.Current != nil:
		return time.FixedZone("", fu.Current.Timezone)
	}
	return time.UTC
}

func (f Formatter) temperature(v float64) string {
	return fmt.Sprintf("%d %s", int(v), f.tempSuffix())
}

func (f Formatter) tempSuffix() string {
	switch f.Units {
	case UnitsImperial:
		return "°F"
	case UnitsStandard:
		return "K"
	}
	return "°C"
}

// wind converts the provider's speed (m/s, or mph for imperial) to a display string.
func (f Formatter) wind(speed float64) string {
	if f.Units == UnitsImperial {
		return fmt.Sprintf("%d mph", int(speed))
	}
	return fmt.Sprintf("%d km/h", int(speed*3.6))
}

func details(c Condition) string {
	return fmt.Sprintf("%s / %s", c.Main, c.Description)
}
