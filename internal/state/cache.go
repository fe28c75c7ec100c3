package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"meteobar/internal/config"
	"meteobar/internal/logger"
	"meteobar/internal/models"
)

const cacheFile = "cache.json"

// Snapshot is the persisted result of the last successful forecast fetch.
// Latitude/Longitude/Unit/TimeFormat record the settings fingerprint the
// fetch was made under; Location is the resolved location used.
type Snapshot struct {
	FetchedAt  time.Time          `json:"fetched_at"`
	Latitude   string             `json:"latitude"`
	Longitude  string             `json:"longitude"`
	Unit       string             `json:"unit"`
	TimeFormat string             `json:"time_format"`
	Location   models.Location    `json:"location"`
	Weather    models.WeatherData `json:"weather"`
	TempUnit   string             `json:"temp_unit"`
	PrecipUnit string             `json:"precip_unit"`
}

// Fresh reports whether the snapshot is younger than maxAge. A snapshot
// aged exactly maxAge is stale.
func (s *Snapshot) Fresh(now time.Time, maxAge time.Duration) bool {
	if s == nil || s.FetchedAt.IsZero() {
		return false
	}
	return now.Sub(s.FetchedAt) < maxAge
}

// SettingsMatch reports whether the snapshot was captured under the same
// location, unit and time format as the current settings. Values are
// compared in canonical string form so numeric-vs-string representation
// differences between persisted and live settings do not invalidate the
// cache.
func (s *Snapshot) SettingsMatch(cfg *config.Settings) bool {
	if s == nil {
		return false
	}
	return canonical(s.Latitude) == canonical(cfg.Latitude) &&
		canonical(s.Longitude) == canonical(cfg.Longitude) &&
		canonical(s.Unit) == canonical(cfg.Unit) &&
		canonical(s.TimeFormat) == canonical(cfg.TimeFormat)
}

// canonical normalizes a fingerprint component: numeric values get one
// canonical float rendering, everything else is compared case-folded.
func canonical(v string) string {
	v = strings.TrimSpace(v)
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strings.ToLower(v)
}

// CacheStore persists the snapshot. The cache is an optimization, never a
// correctness requirement: read errors mean "absent", write errors are
// swallowed.
type CacheStore struct {
	path string
}

// NewCacheStore creates a cache store under the given state directory.
func NewCacheStore(dir string) *CacheStore {
	return &CacheStore{path: filepath.Join(dir, cacheFile)}
}

// Load returns the parsed snapshot, or (nil, false) on any read or parse
// error.
func (c *CacheStore) Load() (*Snapshot, bool) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		return nil, false
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		logger.Debugf("cache snapshot unreadable, treating as miss: %v", err)
		return nil, false
	}
	return &snap, true
}

// Save overwrites the snapshot. Failures are logged at debug level only.
func (c *CacheStore) Save(snap *Snapshot) {
	raw, err := json.Marshal(snap)
	if err != nil {
		logger.Debugf("failed to encode cache snapshot: %v", err)
		return
	}
	if err := os.WriteFile(c.path, raw, 0o644); err != nil {
		logger.Debugf("failed to write cache snapshot: %v", err)
	}
}

// NewSnapshot captures the fingerprint of the current settings together
// with the fetched data.
func NewSnapshot(now time.Time, cfg *config.Settings, loc models.Location, weather models.WeatherData) *Snapshot {
	return &Snapshot{
		FetchedAt:  now,
		Latitude:   cfg.Latitude,
		Longitude:  cfg.Longitude,
		Unit:       cfg.Unit,
		TimeFormat: cfg.TimeFormat,
		Location:   loc,
		Weather:    weather,
		TempUnit:   cfg.TempUnitLabel(),
		PrecipUnit: cfg.PrecipUnitLabel(),
	}
}
