package fetchers

import (
	"sort"
	"time"

	"meteobar/internal/models"
)

// Timestamp layouts used by the forecast API. All times are local to the
// requested location and carry no zone information.
const (
	layoutMinute = "2006-01-02T15:04"
	layoutSecond = "2006-01-02T15:04:05"
	layoutDate   = "2006-01-02"
)

// Normalizer converts the raw payload's column-oriented parallel arrays
// into row-oriented entity lists.
type Normalizer struct{}

// NewNormalizer creates a new normalizer instance.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize builds the full normalized weather data from a raw forecast
// response. Individual malformed numeric fields degrade to zero values;
// only structurally missing blocks are rejected upstream by the client.
func (n *Normalizer) Normalize(resp *models.ForecastResponse, locationName string) *models.WeatherData {
	data := &models.WeatherData{
		Current: n.normalizeCurrent(&resp.Current, resp.Timezone, locationName),
		Hourly:  n.normalizeHourly(&resp.Hourly),
		Daily:   n.normalizeDaily(&resp.Daily),
	}
	return data
}

// normalizeCurrent extracts the single current-conditions row.
func (n *Normalizer) normalizeCurrent(cur *models.CurrentBlock, timezone, locationName string) models.CurrentConditions {
	code := models.Int(cur.WeatherCode)
	return models.CurrentConditions{
		Time:          parseLocalTime(cur.Time),
		Timezone:      timezone,
		Location:      locationName,
		Condition:     models.Describe(code),
		Code:          code,
		Temperature:   models.Float(cur.Temperature),
		FeelsLike:     models.Float(cur.FeelsLike),
		Precipitation: models.Float(cur.Precipitation),
		IsDay:         models.Int(cur.IsDay) == 1,
	}
}

// normalizeHourly builds the full ordered hourly list. The time column
// drives the row count; short sibling arrays yield zero values.
func (n *Normalizer) normalizeHourly(h *models.HourlyBlock) []models.HourlyEntry {
	entries := make([]models.HourlyEntry, 0, len(h.Time))
	for i := range h.Time {
		entries = append(entries, models.HourlyEntry{
			Time:          parseLocalTime(h.Time[i]),
			Temperature:   models.FloatAt(h.Temperature, i),
			PoP:           models.IntAt(h.PoP, i),
			Precipitation: models.FloatAt(h.Precipitation, i),
			Code:          models.IntAt(h.WeatherCode, i),
			IsDay:         models.IntAt(h.IsDay, i) == 1,
		})
	}
	return entries
}

// normalizeDaily builds the full ordered daily list.
func (n *Normalizer) normalizeDaily(d *models.DailyBlock) []models.DailyEntry {
	entries := make([]models.DailyEntry, 0, len(d.Time))
	for i := range d.Time {
		entries = append(entries, models.DailyEntry{
			Date:      parseLocalTime(d.Time[i]),
			TempMax:   models.FloatAt(d.TempMax, i),
			TempMin:   models.FloatAt(d.TempMin, i),
			Code:      models.IntAt(d.WeatherCode, i),
			PrecipSum: models.FloatAt(d.PrecipSum, i),
			PoPMax:    models.IntAt(d.PoPMax, i),
			Sunrise:   parseLocalTime(models.StringAt(d.Sunrise, i)),
			Sunset:    parseLocalTime(models.StringAt(d.Sunset, i)),
		})
	}
	return entries
}

// NextHours selects the first n hourly entries at or after now. When every
// timestamp is already in the past (clock or timezone edge) it falls back
// to the first n entries of the unfiltered list, so a non-empty source
// never produces an empty window.
func NextHours(hourly []models.HourlyEntry, now time.Time, n int) []models.HourlyEntry {
	selected := make([]models.HourlyEntry, 0, n)
	for _, e := range hourly {
		if len(selected) == n {
			break
		}
		if !e.Time.Before(now) {
			selected = append(selected, e)
		}
	}
	if len(selected) == 0 && len(hourly) > 0 {
		if n > len(hourly) {
			n = len(hourly)
		}
		return hourly[:n]
	}
	return selected
}

// NextDays selects the first n daily entries. The source already returns
// forward-looking days starting today, so no date filtering is applied.
func NextDays(daily []models.DailyEntry, n int) []models.DailyEntry {
	if n > len(daily) {
		n = len(daily)
	}
	return daily[:n]
}

// ThreeHourRows builds the detailed-view rows: 3-hour-interval entries on
// dates strictly after now's date, capped at days distinct future dates,
// sorted by (date, timestamp).
func ThreeHourRows(hourly []models.HourlyEntry, now time.Time, days int) []models.ThreeHourRow {
	today := now.Format(layoutDate)
	seen := make(map[string]struct{})
	rows := make([]models.ThreeHourRow, 0, days*8)

	for _, e := range hourly {
		date := e.Time.Format(layoutDate)
		if date <= today {
			continue
		}
		if e.Time.Hour()%3 != 0 {
			continue
		}
		if _, ok := seen[date]; !ok {
			if len(seen) == days {
				break
			}
			seen[date] = struct{}{}
		}
		rows = append(rows, models.ThreeHourRow{
			Date:          date,
			Time:          e.Time,
			Temperature:   e.Temperature,
			PoP:           e.PoP,
			Precipitation: e.Precipitation,
			Code:          e.Code,
			IsDay:         e.IsDay,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}
		return rows[i].Time.Before(rows[j].Time)
	})
	return rows
}

// SunTimes builds a date to formatted sunrise/sunset lookup from the daily
// list. Missing timestamps yield empty strings.
func SunTimes(daily []models.DailyEntry) map[string]models.SunTimes {
	lookup := make(map[string]models.SunTimes, len(daily))
	for _, d := range daily {
		if d.Date.IsZero() {
			continue
		}
		lookup[d.Date.Format(layoutDate)] = models.SunTimes{
			Sunrise: formatClock(d.Sunrise),
			Sunset:  formatClock(d.Sunset),
		}
	}
	return lookup
}

// TodaySunTimes returns the formatted sunrise/sunset pair for now's date,
// defaulting to empty strings when today is not present.
func TodaySunTimes(daily []models.DailyEntry, now time.Time) models.SunTimes {
	today := now.Format(layoutDate)
	for _, d := range daily {
		if !d.Date.IsZero() && d.Date.Format(layoutDate) == today {
			return models.SunTimes{
				Sunrise: formatClock(d.Sunrise),
				Sunset:  formatClock(d.Sunset),
			}
		}
	}
	return models.SunTimes{}
}

// NaiveNow strips the zone from a wall-clock time so it compares against
// the API's zone-less local timestamps.
func NaiveNow(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// parseLocalTime parses the API's zone-less timestamps, returning the zero
// time on failure.
func parseLocalTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{layoutMinute, layoutSecond, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// formatClock renders an hour:minute label, empty for the zero time.
func formatClock(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("15:04")
}
