package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"meteobar/internal/config"
	"meteobar/internal/models"
)

func testSettings() *config.Settings {
	cfg := config.Defaults()
	cfg.Latitude = "52.52"
	cfg.Longitude = "13.405"
	return cfg
}

func testWeather() models.WeatherData {
	return models.WeatherData{
		Current: models.CurrentConditions{
			Condition:   "Partly cloudy",
			Code:        2,
			Temperature: 18.5,
		},
		Hourly: []models.HourlyEntry{
			{Time: time.Date(2026, 7, 14, 12, 0, 0, 0, time.UTC), Temperature: 18.5, PoP: 20},
		},
		Daily: []models.DailyEntry{
			{Date: time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC), TempMax: 22, TempMin: 12},
		},
	}
}

func TestCacheRoundTrip(t *testing.T) {
	store := NewCacheStore(t.TempDir())
	cfg := testSettings()
	now := time.Now()
	loc := models.Location{Latitude: 52.52, Longitude: 13.405, Name: "Berlin, Germany"}

	store.Save(NewSnapshot(now, cfg, loc, testWeather()))

	snap, ok := store.Load()
	if !ok {
		t.Fatal("Load after Save should succeed")
	}
	if !snap.Fresh(now.Add(5*time.Minute), 30*time.Minute) {
		t.Error("Snapshot aged 5m should be fresh within a 30m interval")
	}
	if !snap.SettingsMatch(cfg) {
		t.Error("Unchanged settings should match the snapshot fingerprint")
	}
	if snap.Location.Name != "Berlin, Germany" {
		t.Errorf("Location did not round-trip: %+v", snap.Location)
	}
	if len(snap.Weather.Hourly) != 1 || snap.Weather.Hourly[0].PoP != 20 {
		t.Errorf("Weather data did not round-trip: %+v", snap.Weather)
	}
}

func TestCacheFreshBoundary(t *testing.T) {
	now := time.Now()
	snap := &Snapshot{FetchedAt: now}

	interval := 30 * time.Minute
	if snap.Fresh(now.Add(interval), interval) {
		t.Error("Snapshot aged exactly at the interval must not be fresh")
	}
	if !snap.Fresh(now.Add(interval-time.Second), interval) {
		t.Error("Snapshot just inside the interval should be fresh")
	}
}

func TestCacheFreshMissingTimestamp(t *testing.T) {
	var nilSnap *Snapshot
	if nilSnap.Fresh(time.Now(), time.Hour) {
		t.Error("Nil snapshot must not be fresh")
	}
	if (&Snapshot{}).Fresh(time.Now(), time.Hour) {
		t.Error("Snapshot without timestamp must not be fresh")
	}
}

func TestCacheSettingsMismatchOnUnitChange(t *testing.T) {
	store := NewCacheStore(t.TempDir())
	cfg := testSettings()
	store.Save(NewSnapshot(time.Now(), cfg, models.Location{}, testWeather()))

	snap, ok := store.Load()
	if !ok {
		t.Fatal("Load failed")
	}

	changed := testSettings()
	changed.Unit = "fahrenheit"
	if snap.SettingsMatch(changed) {
		t.Error("Changing the unit must invalidate the settings match")
	}
}

func TestCacheSettingsMatchCanonicalCoords(t *testing.T) {
	snap := &Snapshot{
		Latitude:   "52.520",
		Longitude:  "13.4050",
		Unit:       "Celsius",
		TimeFormat: "24h",
	}

	cfg := testSettings()
	if !snap.SettingsMatch(cfg) {
		t.Error("Numerically equal coordinates in different string forms should match")
	}
}

func TestCacheLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, cacheFile), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewCacheStore(dir)
	if _, ok := store.Load(); ok {
		t.Error("Corrupt cache file should load as absent")
	}
}

func TestCacheLoadMissingFile(t *testing.T) {
	store := NewCacheStore(t.TempDir())
	if _, ok := store.Load(); ok {
		t.Error("Missing cache file should load as absent")
	}
}
