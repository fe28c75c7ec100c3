package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/sethvargo/go-envconfig"
	"github.com/tidwall/jsonc"
)

// Limits imposed by the upstream forecast API.
const (
	MaxHoursAhead   = 24
	MaxForecastDays = 16
)

// Settings holds the resolved widget configuration: fixed defaults merged
// with the user's JSONC config file, then METEOBAR_* environment overrides.
// Built once per run and immutable afterward.
type Settings struct {
	Unit           string `json:"unit" env:"METEOBAR_UNIT"`
	TimeFormat     string `json:"time_format" env:"METEOBAR_TIME_FORMAT"`
	IconStyle      string `json:"icon_style" env:"METEOBAR_ICON_STYLE"`
	IconPosition   string `json:"icon_position" env:"METEOBAR_ICON_POSITION"`
	FontSize       int    `json:"font_size" env:"METEOBAR_FONT_SIZE"`
	HoursAhead     int    `json:"hours_ahead" env:"METEOBAR_HOURS_AHEAD"`
	ForecastDays   int    `json:"forecast_days" env:"METEOBAR_FORECAST_DAYS"`
	Latitude       string `json:"latitude" env:"METEOBAR_LATITUDE"`
	Longitude      string `json:"longitude" env:"METEOBAR_LONGITUDE"`
	RefreshSeconds int    `json:"refresh_seconds" env:"METEOBAR_REFRESH_SECONDS"`
	SeasonalBias   bool   `json:"seasonal_bias" env:"METEOBAR_SEASONAL_BIAS"`
	Debug          bool   `json:"debug" env:"METEOBAR_DEBUG"`

	// Colors maps the fixed set of palette keys to hex colors. Missing keys
	// fall back to the built-in palette via Color.
	Colors map[string]string `json:"colors"`
}

// defaultColors is the built-in palette. Every key consulted by the
// renderer and the band classifiers has an entry here.
var defaultColors = map[string]string{
	"cold":          "#7eb8da",
	"neutral":       "#a6d189",
	"warm":          "#e5c890",
	"hot":           "#e78284",
	"precip_low":    "#8caaee",
	"precip_medium": "#85c1dc",
	"precip_high":   "#e5c890",
	"precip_severe": "#e78284",
	"sun":           "#e5c890",
	"dim":           "#949cbb",
}

// Defaults returns the fixed default settings.
func Defaults() *Settings {
	return &Settings{
		Unit:           "celsius",
		TimeFormat:     "24h",
		IconStyle:      "emoji",
		IconPosition:   "left",
		FontSize:       12,
		HoursAhead:     8,
		ForecastDays:   5,
		Latitude:       "auto",
		Longitude:      "auto",
		RefreshSeconds: 1800,
		SeasonalBias:   true,
		Colors:         map[string]string{},
	}
}

// Load builds the settings: defaults, then the JSONC config file (if any),
// then environment variable overrides.
func Load(ctx context.Context) (*Settings, error) {
	cfg := Defaults()

	if path, err := configPath(); err == nil {
		if err := mergeFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to process config environment: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// configPath resolves the per-user config file location.
func configPath() (string, error) {
	return xdg.SearchConfigFile(filepath.Join("meteobar", "config.jsonc"))
}

// mergeFile overlays the JSONC config file onto cfg. The file may carry
// comments and trailing commas; it is translated to plain JSON first.
func mergeFile(cfg *Settings, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := json.Unmarshal(jsonc.ToJSON(raw), cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// normalize canonicalizes enum-ish fields and floors obviously broken
// numeric values. Window sizes are clamped at their use sites.
func (s *Settings) normalize() {
	s.Unit = strings.ToLower(strings.TrimSpace(s.Unit))
	if s.Unit != "fahrenheit" {
		s.Unit = "celsius"
	}
	s.TimeFormat = strings.ToLower(strings.TrimSpace(s.TimeFormat))
	if s.TimeFormat != "12h" {
		s.TimeFormat = "24h"
	}
	if s.IconPosition != "right" {
		s.IconPosition = "left"
	}
	if s.HoursAhead < 1 {
		s.HoursAhead = 1
	}
	if s.ForecastDays < 1 {
		s.ForecastDays = 1
	}
	if s.RefreshSeconds < 60 {
		s.RefreshSeconds = 60
	}
	if s.Colors == nil {
		s.Colors = map[string]string{}
	}
}

// HourWindow returns the hours-ahead window clamped to the API maximum.
func (s *Settings) HourWindow() int {
	if s.HoursAhead > MaxHoursAhead {
		return MaxHoursAhead
	}
	return s.HoursAhead
}

// DayWindow returns the forecast-days window clamped to the API maximum.
func (s *Settings) DayWindow() int {
	if s.ForecastDays > MaxForecastDays {
		return MaxForecastDays
	}
	return s.ForecastDays
}

// Color resolves a palette key, falling back to the built-in palette and
// finally to plain white for unknown keys.
func (s *Settings) Color(key string) string {
	if c, ok := s.Colors[key]; ok && c != "" {
		return c
	}
	if c, ok := defaultColors[key]; ok {
		return c
	}
	return "#ffffff"
}

// AutoLocation reports whether the location must be resolved by IP
// geolocation rather than taken from the config.
func (s *Settings) AutoLocation() bool {
	return strings.EqualFold(s.Latitude, "auto") || strings.EqualFold(s.Longitude, "auto")
}

// TempUnitLabel returns the display suffix for temperatures.
func (s *Settings) TempUnitLabel() string {
	if s.Unit == "fahrenheit" {
		return "°F"
	}
	return "°C"
}

// PrecipUnit returns the API precipitation unit matching the temperature
// unit system.
func (s *Settings) PrecipUnit() string {
	if s.Unit == "fahrenheit" {
		return "inch"
	}
	return "mm"
}

// PrecipUnitLabel returns the display suffix for precipitation amounts.
func (s *Settings) PrecipUnitLabel() string {
	if s.Unit == "fahrenheit" {
		return "in"
	}
	return "mm"
}
