package models

import (
	"encoding/json"
	"strconv"
)

// ForecastResponse mirrors the Open-Meteo /v1/forecast payload: a current
// conditions block plus hourly and daily blocks of parallel arrays indexed
// by position.
type ForecastResponse struct {
	Timezone             string       `json:"timezone"`
	TimezoneAbbreviation string       `json:"timezone_abbreviation"`
	Current              CurrentBlock `json:"current"`
	Hourly               HourlyBlock  `json:"hourly"`
	Daily                DailyBlock   `json:"daily"`
}

// CurrentBlock holds the raw current-conditions values. Numeric fields are
// untyped so a single malformed value degrades to zero instead of failing
// the whole decode.
type CurrentBlock struct {
	Time          string `json:"time"`
	Temperature   any    `json:"temperature_2m"`
	FeelsLike     any    `json:"apparent_temperature"`
	Precipitation any    `json:"precipitation"`
	WeatherCode   any    `json:"weather_code"`
	IsDay         any    `json:"is_day"`
}

// HourlyBlock holds the raw hourly parallel arrays.
type HourlyBlock struct {
	Time          []string `json:"time"`
	Temperature   []any    `json:"temperature_2m"`
	PoP           []any    `json:"precipitation_probability"`
	Precipitation []any    `json:"precipitation"`
	WeatherCode   []any    `json:"weather_code"`
	IsDay         []any    `json:"is_day"`
}

// DailyBlock holds the raw daily parallel arrays.
type DailyBlock struct {
	Time        []string `json:"time"`
	TempMax     []any    `json:"temperature_2m_max"`
	TempMin     []any    `json:"temperature_2m_min"`
	WeatherCode []any    `json:"weather_code"`
	PrecipSum   []any    `json:"precipitation_sum"`
	PoPMax      []any    `json:"precipitation_probability_max"`
	Sunrise     []string `json:"sunrise"`
	Sunset      []string `json:"sunset"`
}

// GeoIPResponse is the ip-api.com geolocation payload, used only when the
// configured location is "auto".
type GeoIPResponse struct {
	Status  string  `json:"status"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
	Region  string  `json:"regionName"`
	Country string  `json:"country"`
}

// Float coerces a raw JSON value to a float64. Anything that is not cleanly
// numeric (missing, null, non-numeric string) yields 0.
func Float(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int:
		return float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Int coerces a raw JSON value to an int, defaulting to 0.
func Int(v any) int {
	return int(Float(v))
}

// FloatAt reads index i from a raw parallel array, defaulting to 0 when the
// array is shorter than its time column.
func FloatAt(arr []any, i int) float64 {
	if i < 0 || i >= len(arr) {
		return 0
	}
	return Float(arr[i])
}

// IntAt reads index i from a raw parallel array as an int.
func IntAt(arr []any, i int) int {
	return int(FloatAt(arr, i))
}

// StringAt reads index i from a string array, defaulting to "".
func StringAt(arr []string, i int) string {
	if i < 0 || i >= len(arr) {
		return ""
	}
	return arr[i]
}
