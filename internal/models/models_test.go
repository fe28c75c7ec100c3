package models

import (
	"encoding/json"
	"testing"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "Clear sky"},
		{61, "Slight rain"},
		{95, "Thunderstorm"},
		{42, "Unknown"},
		{-1, "Unknown"},
	}
	for _, tc := range tests {
		if got := Describe(tc.code); got != tc.want {
			t.Errorf("Describe(%d) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestIconNightFallback(t *testing.T) {
	if got := Icon("emoji", 0, false); got != "🌙" {
		t.Errorf("Clear night should use the night glyph, got %q", got)
	}
	// Code 61 has no night variant; the day glyph serves both.
	if day, night := Icon("emoji", 61, true), Icon("emoji", 61, false); day != night {
		t.Errorf("Codes without a night variant should not change at night: day %q night %q", day, night)
	}
	if got := Icon("emoji", 42, true); got != "?" {
		t.Errorf("Unknown codes get the placeholder glyph, got %q", got)
	}
}

func TestIconAsciiStyle(t *testing.T) {
	if got := Icon("ascii", 61, true); got != "(//)" {
		t.Errorf("Icon(ascii, 61) = %q, want (//)", got)
	}
	if got := Icon("ascii", 42, false); got != "?" {
		t.Errorf("Unknown ascii codes get the placeholder glyph, got %q", got)
	}
}

func TestFloatCoercion(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"float", 18.5, 18.5},
		{"int", 3, 3},
		{"numeric string", "2.5", 2.5},
		{"garbage string", "n/a", 0},
		{"nil", nil, 0},
		{"object", map[string]any{}, 0},
	}
	for _, tc := range tests {
		if got := Float(tc.in); got != tc.want {
			t.Errorf("Float(%s) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestParallelArrayAccessors(t *testing.T) {
	arr := []any{1.5, nil, "3"}
	if got := FloatAt(arr, 0); got != 1.5 {
		t.Errorf("FloatAt(0) = %v", got)
	}
	if got := FloatAt(arr, 1); got != 0 {
		t.Errorf("Null element should read as zero, got %v", got)
	}
	if got := IntAt(arr, 2); got != 3 {
		t.Errorf("Numeric string should coerce, got %v", got)
	}
	if got := FloatAt(arr, 9); got != 0 {
		t.Errorf("Out-of-range index should read as zero, got %v", got)
	}
	if got := StringAt([]string{"a"}, 3); got != "" {
		t.Errorf("Out-of-range string index should read as empty, got %q", got)
	}
}

func TestForecastResponseDecodesPartialPayload(t *testing.T) {
	raw := `{
		"timezone": "Europe/Berlin",
		"current": {"time": "2026-07-14T11:00", "temperature_2m": "broken", "weather_code": 2},
		"hourly": {"time": ["2026-07-14T12:00"], "temperature_2m": [18.5]},
		"daily": {"time": ["2026-07-14"], "temperature_2m_max": [22.1]}
	}`

	var resp ForecastResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("A malformed numeric field must not fail the decode: %v", err)
	}
	if Float(resp.Current.Temperature) != 0 {
		t.Errorf("Malformed temperature should coerce to zero, got %v", resp.Current.Temperature)
	}
	if Int(resp.Current.WeatherCode) != 2 {
		t.Errorf("Sibling fields should survive, got %v", resp.Current.WeatherCode)
	}
	if FloatAt(resp.Hourly.Temperature, 0) != 18.5 {
		t.Errorf("Hourly values should decode, got %v", resp.Hourly.Temperature)
	}
}
