package weatherservice

// Coord is a latitude/longitude pair as returned by the provider.
type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Condition is one entry of the provider's "weather" array.
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type MainReadings struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

type Wind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}

type Sys struct {
	Country string `json:"country"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
}

// Current is the body of the "weather" endpoint (current conditions for one town).
type Current struct {
	Coord    *Coord        `json:"coord"`
	Weather  []Condition   `json:"weather"`
	Main     *MainReadings `json:"main"`
	Wind     *Wind         `json:"wind"`
	Sys      *Sys          `json:"sys"`
	Timezone int           `json:"timezone"`
	ID       int64         `json:"id"`
	Name     string        `json:"name"`
	Dt       int64         `json:"dt"`
}

// CurrentDay is the "current" block of the one-call endpoint.
type CurrentDay struct {
	Dt         int64       `json:"dt"`
	Sunrise    int64       `json:"sunrise"`
	Sunset     int64       `json:"sunset"`
	Temp       float64     `json:"temp"`
	FeelsLike  float64     `json:"feels_like"`
	Pressure   int         `json:"pressure"`
	Humidity   int         `json:"humidity"`
	DewPoint   float64     `json:"dew_point"`
	UVI        float64     `json:"uvi"`
	Clouds     int         `json:"clouds"`
	Visibility int         `json:"visibility"`
	WindSpeed  float64     `json:"wind_speed"`
	WindDeg    int         `json:"wind_deg"`
	Weather    []Condition `json:"weather"`
}

type Temp struct {
	Day   float64 `json:"day"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Night float64 `json:"night"`
	Eve   float64 `json:"eve"`
	Morn  float64 `json:"morn"`
}

type FeelsLike struct {
	Day   float64 `json:"day"`
	Night float64 `json:"night"`
	Eve   float64 `json:"eve"`
	Morn  float64 `json:"morn"`
}

// Daily is one day of the one-call forecast.
type Daily struct {
	Dt        int64       `json:"dt"`
	Sunrise   int64       `json:"sunrise"`
	Sunset    int64       `json:"sunset"`
	Temp      *Temp       `json:"temp"`
	FeelsLike *FeelsLike  `json:"feels_like"`
	Pressure  int         `json:"pressure"`
	Humidity  int         `json:"humidity"`
	DewPoint  float64     `json:"dew_point"`
	WindSpeed float64     `json:"wind_speed"`
	WindDeg   int         `json:"wind_deg"`
	Weather   []Condition `json:"weather"`
	Clouds    int         `json:"clouds"`
	Pop       float64     `json:"pop"`
	UVI       float64     `json:"uvi"`
	Rain      float64     `json:"rain"`
}

// OneCall is the body of the "onecall" endpoint.
type OneCall struct {
	Lat            float64     `json:"lat"`
	Lon            float64     `json:"lon"`
	Timezone       string      `json:"timezone"`
	TimezoneOffset int         `json:"timezone_offset"`
	Current        *CurrentDay `json:"current"`
	Daily          []Daily     `json:"daily"`
}

// Fusion zips a current-conditions response with the matching one-call forecast.
// OneCall is nil when the town came back without usable coordinates.
type Fusion struct {
	Current *Current `json:"current"`
	OneCall *OneCall `json:"onecall,omitempty"`
}

func firstCondition(conds []Condition) (Condition, bool) {
	if len(conds) == 0 {
		return Condition{}, false
	}
	return conds[0], true
}
