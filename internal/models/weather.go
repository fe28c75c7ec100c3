package models

import "time"

// Location is a resolved pair of coordinates with an optional display name.
// Name is empty when the coordinates were specified by the user.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name,omitempty"`
}

// CurrentConditions is the normalized current-weather block.
type CurrentConditions struct {
	Time          time.Time `json:"time"`
	Timezone      string    `json:"timezone"`
	Location      string    `json:"location"`
	Condition     string    `json:"condition"`
	Code          int       `json:"code"`
	Temperature   float64   `json:"temperature"`
	FeelsLike     float64   `json:"feels_like"`
	Precipitation float64   `json:"precipitation"`
	IsDay         bool      `json:"is_day"`
}

// HourlyEntry is one normalized hourly forecast row, ordered by timestamp
// ascending as received from the source.
type HourlyEntry struct {
	Time          time.Time `json:"time"`
	Temperature   float64   `json:"temperature"`
	PoP           int       `json:"pop"`
	Precipitation float64   `json:"precipitation"`
	Code          int       `json:"code"`
	IsDay         bool      `json:"is_day"`
}

// DailyEntry is one normalized daily forecast row. Sunrise/Sunset are zero
// when the source carried no parseable timestamp.
type DailyEntry struct {
	Date      time.Time `json:"date"`
	TempMax   float64   `json:"temp_max"`
	TempMin   float64   `json:"temp_min"`
	Code      int       `json:"code"`
	PrecipSum float64   `json:"precip_sum"`
	PoPMax    int       `json:"pop_max"`
	Sunrise   time.Time `json:"sunrise,omitzero"`
	Sunset    time.Time `json:"sunset,omitzero"`
}

// ThreeHourRow is one row of the detailed week view: a 3-hour-interval
// forecast entry on a strictly future date.
type ThreeHourRow struct {
	Date          string    `json:"date"`
	Time          time.Time `json:"time"`
	Temperature   float64   `json:"temperature"`
	PoP           int       `json:"pop"`
	Precipitation float64   `json:"precipitation"`
	Code          int       `json:"code"`
	IsDay         bool      `json:"is_day"`
}

// SunTimes is a formatted sunrise/sunset pair for one calendar day. Either
// field may be empty when the source timestamp was missing.
type SunTimes struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

// WeatherData is the full normalized forecast: current conditions plus the
// complete ordered hourly and daily lists. Windowed selections (next hours,
// next days, 3-hour rows) are derived from these lists at render time.
type WeatherData struct {
	Current CurrentConditions `json:"current"`
	Hourly  []HourlyEntry     `json:"hourly"`
	Daily   []DailyEntry      `json:"daily"`
}
