package models

// conditionDescriptions maps WMO weather interpretation codes to display
// text. Codes outside this table degrade to "Unknown".
var conditionDescriptions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	56: "Light freezing drizzle",
	57: "Dense freezing drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	66: "Light freezing rain",
	67: "Heavy freezing rain",
	71: "Slight snow fall",
	73: "Moderate snow fall",
	75: "Heavy snow fall",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

// Describe resolves a WMO condition code to its display text.
func Describe(code int) string {
	if desc, ok := conditionDescriptions[code]; ok {
		return desc
	}
	return "Unknown"
}

// emojiIcons maps condition codes to day glyphs for the emoji icon style.
var emojiIcons = map[int]string{
	0:  "☀️",
	1:  "🌤️",
	2:  "⛅",
	3:  "☁️",
	45: "🌫️",
	48: "🌫️",
	51: "🌦️",
	53: "🌦️",
	55: "🌧️",
	56: "🌧️",
	57: "🌧️",
	61: "🌧️",
	63: "🌧️",
	65: "🌧️",
	66: "🌧️",
	67: "🌧️",
	71: "🌨️",
	73: "🌨️",
	75: "❄️",
	77: "❄️",
	80: "🌦️",
	81: "🌧️",
	82: "🌧️",
	85: "🌨️",
	86: "🌨️",
	95: "⛈️",
	96: "⛈️",
	99: "⛈️",
}

// emojiNightIcons overrides day glyphs for night where a distinct variant
// exists. Lookup policy: night glyph if present, else the bare glyph.
var emojiNightIcons = map[int]string{
	0: "🌙",
	1: "🌙",
	2: "☁️",
}

// asciiIcons is a plain-text fallback style for hosts without emoji fonts.
var asciiIcons = map[int]string{
	0:  "(  )",
	1:  "(- )",
	2:  "(~~)",
	3:  "(==)",
	45: "(::)",
	48: "(::)",
	51: "(.,)",
	53: "(.,)",
	55: "(,,)",
	56: "(,*)",
	57: "(,*)",
	61: "(//)",
	63: "(//)",
	65: "(//)",
	66: "(/*)",
	67: "(/*)",
	71: "(**)",
	73: "(**)",
	75: "(**)",
	77: "(**)",
	80: "(//)",
	81: "(//)",
	82: "(//)",
	85: "(**)",
	86: "(**)",
	95: "(!!)",
	96: "(!!)",
	99: "(!!)",
}

const unknownIcon = "?"

// Icon resolves a condition code and day/night flag to a display glyph for
// the requested icon style.
func Icon(style string, code int, isDay bool) string {
	switch style {
	case "ascii":
		if g, ok := asciiIcons[code]; ok {
			return g
		}
		return unknownIcon
	default:
		if !isDay {
			if g, ok := emojiNightIcons[code]; ok {
				return g
			}
		}
		if g, ok := emojiIcons[code]; ok {
			return g
		}
		return unknownIcon
	}
}
