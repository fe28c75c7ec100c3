// Package render turns normalized forecast data into the two widget
// surfaces: the short status text and the Pango-markup tooltip. Tooltip
// tables use fixed column widths so they line up as monospace tables in
// the bar's tooltip renderer.
package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"meteobar/internal/bands"
	"meteobar/internal/config"
	"meteobar/internal/fetchers"
	"meteobar/internal/models"
	"meteobar/internal/state"
)

// weekDetailDays is the number of distinct future dates shown in the
// detailed week view.
const weekDetailDays = 3

// emDash is the placeholder for missing sunrise/sunset times.
const emDash = "—"

// Fixed column widths. The hour column is 5 characters in 24h format
// ("15:00") and 4 in 12h (" 3PM").
const (
	tempColWidth = 4
	popColWidth  = 4
	dayColWidth  = 6
)

// Renderer holds the settings and the band tables built for this run.
type Renderer struct {
	cfg    *config.Settings
	temp   bands.Classifier
	precip bands.Classifier
}

// New builds a renderer with band tables derived from the unit system,
// the current month and the seasonal-bias flag.
func New(cfg *config.Settings, now time.Time) *Renderer {
	return &Renderer{
		cfg:    cfg,
		temp:   bands.NewTemperature(cfg.Unit, now.Month(), cfg.SeasonalBias, cfg.Color),
		precip: bands.NewPrecipitation(cfg.Color),
	}
}

// StatusText renders the bar text: a styled condition glyph and the
// rounded current temperature, glyph left or right per settings.
func (r *Renderer) StatusText(cur models.CurrentConditions) string {
	glyph := models.Icon(r.cfg.IconStyle, cur.Code, cur.IsDay)
	if r.cfg.FontSize > 0 {
		glyph = fmt.Sprintf("<span font='%d'>%s</span>", r.cfg.FontSize, glyph)
	}
	temp := fmt.Sprintf("%d%s", round(cur.Temperature), r.cfg.TempUnitLabel())

	if r.cfg.IconPosition == "right" {
		return temp + " " + glyph
	}
	return glyph + " " + temp
}

// PrecipClass returns the CSS-like severity token for a probability, used
// in the output's class list.
func (r *Renderer) PrecipClass(pop int) string {
	band, ok := r.precip.Classify(float64(bands.ClampPoP(pop)))
	if !ok {
		return "precip-low"
	}
	return "precip-" + band.Name
}

// NowPoP returns the probability and amount of precipitation for the
// nearest upcoming hour. ok is false when no hourly data exists at all.
func (r *Renderer) NowPoP(data *models.WeatherData, now time.Time) (pop int, amount float64, ok bool) {
	window := fetchers.NextHours(data.Hourly, now, 1)
	if len(window) == 0 {
		return 0, 0, false
	}
	return window[0].PoP, window[0].Precipitation, true
}

// Tooltip renders the full tooltip markup for the given display mode.
func (r *Renderer) Tooltip(data *models.WeatherData, mode state.Mode, now time.Time) string {
	lines := r.header(data, now)

	if mode == state.ModeWeek {
		lines = append(lines, r.weekView(data, now)...)
	} else {
		lines = append(lines, r.defaultView(data, now)...)
	}
	return strings.Join(lines, "\n")
}

// header builds the shared tooltip top: location, current conditions, the
// optional sunrise/sunset and now-precipitation lines, and a divider.
func (r *Renderer) header(data *models.WeatherData, now time.Time) []string {
	cur := data.Current

	name := cur.Location
	if name == "" {
		name = cur.Timezone
	}
	if name == "" {
		name = "Local"
	}

	unit := r.cfg.TempUnitLabel()
	tb, _ := r.temp.Classify(cur.Temperature)
	glyph := models.Icon(r.cfg.IconStyle, cur.Code, cur.IsDay)

	lines := []string{
		Bold(Escape(name)),
		fmt.Sprintf("%s %s  %s %d%s (feels %d%s)",
			glyph, Escape(cur.Condition),
			Colored(tb.Color, tb.Glyph),
			round(cur.Temperature), unit,
			round(cur.FeelsLike), unit),
	}

	sun := fetchers.TodaySunTimes(data.Daily, now)
	if sun.Sunrise != "" && sun.Sunset != "" {
		lines = append(lines, fmt.Sprintf("🌅 %s  🌇 %s",
			Colored(r.cfg.Color("sun"), sun.Sunrise),
			Colored(r.cfg.Color("sun"), sun.Sunset)))
	}

	if pop, amount, ok := r.NowPoP(data, now); ok {
		pop = bands.ClampPoP(pop)
		pb, _ := r.precip.Classify(float64(pop))
		lines = append(lines, fmt.Sprintf("%s %s %.1f%s",
			bands.AlertGlyph(pop),
			Colored(pb.Color, fmt.Sprintf("%d%%", pop)),
			amount, r.cfg.PrecipUnitLabel()))
	}

	return append(lines, Divider())
}

// defaultView appends the next-hours and next-days tables.
func (r *Renderer) defaultView(data *models.WeatherData, now time.Time) []string {
	lines := []string{Bold(fmt.Sprintf("Next %d hours", r.cfg.HourWindow()))}
	lines = append(lines, r.hourlyTable(fetchers.NextHours(data.Hourly, now, r.cfg.HourWindow()))...)
	lines = append(lines, Divider())
	lines = append(lines, Bold(fmt.Sprintf("Next %d days", r.cfg.DayWindow())))
	lines = append(lines, r.dailyTable(fetchers.NextDays(data.Daily, r.cfg.DayWindow()))...)
	return lines
}

// weekView appends the sunrise/sunset table and the 3-hour detail table.
func (r *Renderer) weekView(data *models.WeatherData, now time.Time) []string {
	rows := fetchers.ThreeHourRows(data.Hourly, now, weekDetailDays)
	sunTimes := fetchers.SunTimes(data.Daily)

	lines := []string{Bold(Escape("Sunrise & sunset"))}
	lines = append(lines, r.sunTable(rows, sunTimes)...)
	lines = append(lines, Divider())
	lines = append(lines, Bold(fmt.Sprintf("Next %d days, 3-hour intervals", weekDetailDays)))
	lines = append(lines, r.threeHourTable(rows)...)
	return lines
}

// hourlyTable renders the next-hours rows: hour, temperature, PoP,
// precipitation amount, condition.
func (r *Renderer) hourlyTable(entries []models.HourlyEntry) []string {
	if len(entries) == 0 {
		return []string{"No hourly data"}
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, mono(strings.Join([]string{
			r.hourLabel(e.Time),
			r.tempCell(e.Temperature),
			r.popCell(e.PoP),
			r.precipCell(e.Precipitation),
			r.conditionCell(e.Code, e.IsDay),
		}, " ")))
	}
	return lines
}

// dailyTable renders the next-days rows: day, high, low, PoP,
// precipitation sum, condition.
func (r *Renderer) dailyTable(entries []models.DailyEntry) []string {
	if len(entries) == 0 {
		return []string{"No daily data"}
	}
	lines := make([]string, 0, len(entries))
	for _, d := range entries {
		lines = append(lines, mono(strings.Join([]string{
			PadRight(d.Date.Format("Mon 02"), dayColWidth),
			r.tempCell(d.TempMax),
			r.tempCell(d.TempMin),
			r.popCell(d.PoPMax),
			r.precipCell(d.PrecipSum),
			r.conditionCell(d.Code, true),
		}, " ")))
	}
	return lines
}

// sunTable renders one sunrise/sunset row per distinct date present in
// the 3-hour rows, with em-dash placeholders for missing times.
func (r *Renderer) sunTable(rows []models.ThreeHourRow, sunTimes map[string]models.SunTimes) []string {
	if len(rows) == 0 {
		return []string{"No sunrise data"}
	}

	lines := make([]string, 0, weekDetailDays)
	seen := make(map[string]struct{})
	for _, row := range rows {
		if _, ok := seen[row.Date]; ok {
			continue
		}
		seen[row.Date] = struct{}{}

		rise, set := emDash, emDash
		if st, ok := sunTimes[row.Date]; ok {
			if st.Sunrise != "" {
				rise = st.Sunrise
			}
			if st.Sunset != "" {
				set = st.Sunset
			}
		}
		lines = append(lines, mono(fmt.Sprintf("%s 🌅 %s  🌇 %s",
			PadRight(row.Time.Format("Mon 02"), dayColWidth),
			Colored(r.cfg.Color("sun"), PadLeft(rise, 5)),
			Colored(r.cfg.Color("sun"), PadLeft(set, 5)))))
	}
	return lines
}

// threeHourTable renders the detailed week-view rows: date, hour,
// temperature, PoP, precipitation, condition.
func (r *Renderer) threeHourTable(rows []models.ThreeHourRow) []string {
	if len(rows) == 0 {
		return []string{"No forecast data"}
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, mono(strings.Join([]string{
			PadRight(row.Time.Format("Mon 02"), dayColWidth),
			r.hourLabel(row.Time),
			r.tempCell(row.Temperature),
			r.popCell(row.PoP),
			r.precipCell(row.Precipitation),
			r.conditionCell(row.Code, row.IsDay),
		}, " ")))
	}
	return lines
}

// hourLabel formats an hour cell: 5 characters in 24h format, 4 in 12h.
func (r *Renderer) hourLabel(t time.Time) string {
	if r.cfg.TimeFormat == "12h" {
		h := t.Hour() % 12
		suffix := "AM"
		if t.Hour() >= 12 {
			suffix = "PM"
		}
		if h == 0 {
			h = 12
		}
		return fmt.Sprintf("%2d%s", h, suffix)
	}
	return t.Format("15:04")
}

// tempCell renders a right-aligned, band-colored temperature.
func (r *Renderer) tempCell(v float64) string {
	band, _ := r.temp.Classify(v)
	return Colored(band.Color, PadLeft(fmt.Sprintf("%d°", round(v)), tempColWidth))
}

// popCell renders a right-aligned, band-colored probability percentage.
func (r *Renderer) popCell(pop int) string {
	pop = bands.ClampPoP(pop)
	band, _ := r.precip.Classify(float64(pop))
	return Colored(band.Color, PadLeft(fmt.Sprintf("%d%%", pop), popColWidth))
}

// precipCell renders a precipitation amount with its unit.
func (r *Renderer) precipCell(amount float64) string {
	return PadLeft(fmt.Sprintf("%.1f", amount), 4) + r.cfg.PrecipUnitLabel()
}

// conditionCell renders the condition glyph and escaped description.
func (r *Renderer) conditionCell(code int, isDay bool) string {
	return models.Icon(r.cfg.IconStyle, code, isDay) + " " + Escape(models.Describe(code))
}

// mono wraps a table row in monospace markup so its fixed-width cells
// align in the tooltip.
func mono(row string) string {
	return "<tt>" + row + "</tt>"
}

func round(v float64) int {
	return int(math.Round(v))
}
