// Package bands classifies temperature and precipitation-probability values
// into ordered display bands: each band is an upper bound paired with a
// glyph and a palette color, evaluated as "first upper bound exceeding the
// value wins".
package bands

import (
	"math"
	"time"
)

// ColorFunc resolves a palette key to a hex color.
type ColorFunc func(key string) string

// Band is one classification range. Upper is exclusive; the final band of a
// table carries +Inf.
type Band struct {
	Upper float64
	Name  string
	Glyph string
	Color string
}

// Classifier is an ordered band table.
type Classifier struct {
	bands []Band
}

// Classify returns the first band whose upper bound is strictly greater
// than v. ok is false only for an empty table.
func (c Classifier) Classify(v float64) (Band, bool) {
	for _, b := range c.bands {
		if b.Upper > v {
			return b, true
		}
	}
	if len(c.bands) == 0 {
		return Band{}, false
	}
	// Unreachable when the final band is unbounded; kept for safety with
	// hand-built tables.
	return c.bands[len(c.bands)-1], true
}

// Rank returns the index of the band v falls into, or -1 for an empty
// table. Ranks are monotonic non-decreasing in v.
func (c Classifier) Rank(v float64) int {
	for i, b := range c.bands {
		if b.Upper > v {
			return i
		}
	}
	return len(c.bands) - 1
}

// ColdThreshold returns the upper bound of the "cold" temperature band for
// the given unit system and month. With seasonal bias enabled the Celsius
// threshold is 10° in months 5-9, 8° in months 3, 4 and 10, and 5°
// otherwise; disabled it is fixed at 5°C. Fahrenheit values are derived by
// converting the Celsius threshold so the two unit systems cannot drift.
func ColdThreshold(unit string, month time.Month, seasonalBias bool) float64 {
	c := 5.0
	if seasonalBias {
		switch {
		case month >= time.May && month <= time.September:
			c = 10
		case month == time.March || month == time.April || month == time.October:
			c = 8
		}
	}
	if unit == "fahrenheit" {
		return math.Round(c*9/5 + 32)
	}
	return c
}

// NewTemperature builds the four-band temperature table for the given unit
// system and month: cold, neutral (20°C/68°F), warm (28°C/82°F), hot.
func NewTemperature(unit string, month time.Month, seasonalBias bool, color ColorFunc) Classifier {
	neutral, warm := 20.0, 28.0
	if unit == "fahrenheit" {
		neutral, warm = 68, 82
	}
	return Classifier{bands: []Band{
		{Upper: ColdThreshold(unit, month, seasonalBias), Name: "cold", Glyph: "🧊", Color: color("cold")},
		{Upper: neutral, Name: "neutral", Glyph: "🌡️", Color: color("neutral")},
		{Upper: warm, Name: "warm", Glyph: "🌡️", Color: color("warm")},
		{Upper: math.Inf(1), Name: "hot", Glyph: "🔥", Color: color("hot")},
	}}
}

// AlertThreshold is the probability at which the precipitation glyph
// switches to the alert icon, independent of the four color bands.
const AlertThreshold = 60

// NewPrecipitation builds the probability-of-precipitation color table:
// <30 low, <60 medium, <80 high, else severe.
func NewPrecipitation(color ColorFunc) Classifier {
	return Classifier{bands: []Band{
		{Upper: 30, Name: "low", Glyph: "💧", Color: color("precip_low")},
		{Upper: 60, Name: "medium", Glyph: "💧", Color: color("precip_medium")},
		{Upper: 80, Name: "high", Glyph: "☔", Color: color("precip_high")},
		{Upper: math.Inf(1), Name: "severe", Glyph: "☔", Color: color("precip_severe")},
	}}
}

// ClampPoP clamps a probability-of-precipitation value to 0-100.
func ClampPoP(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// AlertGlyph returns the binary precipitation icon for a probability.
func AlertGlyph(p int) string {
	if ClampPoP(p) >= AlertThreshold {
		return "☔"
	}
	return "💧"
}
