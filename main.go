// meteobar is a status-bar weather widget. Each invocation resolves the
// location, fetches or reuses a cached forecast, and prints exactly one
// JSON line for the bar to display. Mode flags flip the persisted tooltip
// view without producing output.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"strconv"
	"time"

	"meteobar/internal/config"
	"meteobar/internal/fetchers"
	"meteobar/internal/logger"
	"meteobar/internal/models"
	"meteobar/internal/render"
	"meteobar/internal/state"
)

const version = "1.2.0"

const (
	// fetchTimeout bounds one full network round trip. The bar blocks on
	// the widget's stdout, so hanging is worse than failing.
	fetchTimeout = 15 * time.Second

	// networkBackoff is the pause before emitting degraded output after a
	// network failure, so a bar that repolls immediately does not hammer a
	// link that just went down.
	networkBackoff = 2 * time.Second
)

// Output is the single JSON line consumed by the status bar.
type Output struct {
	Text    string   `json:"text"`
	Tooltip string   `json:"tooltip"`
	Alt     string   `json:"alt"`
	Class   []string `json:"class"`
}

// Widget wires together the settings, the HTTP client and the persisted
// state for one invocation.
type Widget struct {
	cfg    *config.Settings
	client *fetchers.Client
	modes  *state.ModeStore
	cache  *state.CacheStore
}

// NewWidget creates a widget instance over the given state directory.
func NewWidget(cfg *config.Settings, stateDir string) *Widget {
	return &Widget{
		cfg:    cfg,
		client: fetchers.NewClient(fetchTimeout),
		modes:  state.NewModeStore(stateDir),
		cache:  state.NewCacheStore(stateDir),
	}
}

func main() {
	var (
		next        = flag.Bool("next", false, "cycle the tooltip view forward and exit")
		prev        = flag.Bool("prev", false, "cycle the tooltip view backward and exit")
		toggle      = flag.Bool("toggle", false, "alias for -next")
		setMode     = flag.String("set", "", "set the tooltip view (default|weekview) and exit")
		force       = flag.Bool("force", false, "bypass the forecast cache")
		showVersion = flag.Bool("version", false, "print the version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println("meteobar " + version)
		return
	}

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Errorf("failed to load configuration: %v", err)
		emit(errorOutput(fmt.Sprintf("config error: %v", err)))
		return
	}
	logger.Init(cfg.Debug)

	stateDir, err := state.Dir()
	if err != nil {
		// Mode and cache become per-boot instead of per-user; the widget
		// still works.
		logger.Warnf("state directory unavailable, using temp dir: %v", err)
		stateDir = os.TempDir()
	}

	w := NewWidget(cfg, stateDir)

	// Mode flags are fired by bar click handlers. They mutate the persisted
	// view and exit silently; the bar's next poll picks up the change.
	switch {
	case *setMode != "":
		if err := w.modes.Set(state.Mode(*setMode)); err != nil {
			logger.Errorf("failed to set display mode: %v", err)
		}
		return
	case *next || *toggle:
		if _, err := w.modes.Cycle(state.Next); err != nil {
			logger.Errorf("failed to cycle display mode: %v", err)
		}
		return
	case *prev:
		if _, err := w.modes.Cycle(state.Prev); err != nil {
			logger.Errorf("failed to cycle display mode: %v", err)
		}
		return
	}

	emit(w.Run(ctx, *force))
}

// Run produces the output payload for one poll. It never fails: every
// error path degrades to a well-formed payload.
func (w *Widget) Run(ctx context.Context, force bool) (out Output) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("panic recovered: %v\n%s", r, debug.Stack())
			out = errorOutput(fmt.Sprintf("unexpected error: %v", r))
		}
	}()

	now := time.Now()
	// Forecast timestamps are zone-less local time, so windowing compares
	// against a zone-stripped clock.
	localNow := fetchers.NaiveNow(now)
	mode := w.modes.Get()
	renderer := render.New(w.cfg, now)

	refresh := time.Duration(w.cfg.RefreshSeconds) * time.Second
	snap, _ := w.cache.Load()

	if !force && snap.Fresh(now, refresh) && snap.SettingsMatch(w.cfg) {
		logger.Debugf("serving cached forecast from %s", snap.FetchedAt.Format(time.RFC3339))
		return w.present(renderer, &snap.Weather, mode, localNow, nil)
	}

	loc, err := w.resolveLocation(ctx, snap)
	if err != nil {
		return w.degraded(renderer, snap, mode, localNow, err)
	}

	resp, err := w.client.FetchForecast(ctx, loc, w.cfg)
	if err != nil {
		return w.degraded(renderer, snap, mode, localNow, err)
	}

	data := fetchers.NewNormalizer().Normalize(resp, loc.Name)
	w.cache.Save(state.NewSnapshot(now, w.cfg, loc, *data))

	return w.present(renderer, data, mode, localNow, nil)
}

// resolveLocation picks the forecast coordinates: explicit settings first,
// then the cached resolution of the same settings, then IP geolocation.
func (w *Widget) resolveLocation(ctx context.Context, snap *state.Snapshot) (models.Location, error) {
	if !w.cfg.AutoLocation() {
		lat, latErr := strconv.ParseFloat(w.cfg.Latitude, 64)
		lon, lonErr := strconv.ParseFloat(w.cfg.Longitude, 64)
		if latErr == nil && lonErr == nil {
			return models.Location{Latitude: lat, Longitude: lon}, nil
		}
		logger.Warnf("unparseable coordinates %q,%q, falling back to geolocation",
			w.cfg.Latitude, w.cfg.Longitude)
	}

	// A stale snapshot's location is still valid as long as the settings
	// fingerprint matches; skipping the geolocation call saves a round trip.
	if snap.SettingsMatch(w.cfg) && (snap.Location.Latitude != 0 || snap.Location.Longitude != 0) {
		return snap.Location, nil
	}

	return w.client.FetchIPLocation(ctx)
}

// present renders a payload from forecast data. extraClass tags degraded
// payloads (e.g. "stale").
func (w *Widget) present(r *render.Renderer, data *models.WeatherData, mode state.Mode, now time.Time, extraClass []string) Output {
	classes := []string{"weather", string(mode)}
	if pop, _, ok := r.NowPoP(data, now); ok {
		classes = append(classes, r.PrecipClass(pop))
	}
	classes = append(classes, extraClass...)

	return Output{
		Text:    r.StatusText(data.Current),
		Tooltip: r.Tooltip(data, mode, now),
		Alt:     data.Current.Condition,
		Class:   classes,
	}
}

// degraded produces the payload for a failed refresh: stale cached data
// when available, a placeholder otherwise. Exit status stays zero either
// way; the bar must always receive one parseable line.
func (w *Widget) degraded(r *render.Renderer, snap *state.Snapshot, mode state.Mode, now time.Time, err error) Output {
	if errors.Is(err, fetchers.ErrNetwork) {
		logger.Warnf("forecast refresh failed: %v", err)
		time.Sleep(networkBackoff)
	}

	var parseErr *fetchers.ParseError
	if errors.As(err, &parseErr) {
		logger.Errorf("forecast response unreadable: %v (body: %s)", parseErr.Err, parseErr.Excerpt)
	}

	if snap != nil {
		logger.Infof("serving stale forecast from %s", snap.FetchedAt.Format(time.RFC3339))
		return w.present(r, &snap.Weather, mode, now, []string{"stale"})
	}

	if errors.As(err, &parseErr) {
		return errorOutput(fmt.Sprintf("weather data unreadable: %v (body: %s)", parseErr.Err, parseErr.Excerpt))
	}
	return errorOutput(fmt.Sprintf("weather unavailable: %v", err))
}

// errorOutput is the placeholder payload used when no forecast data exists
// at all.
func errorOutput(reason string) Output {
	return Output{
		Text:    "⛅ --",
		Tooltip: render.Escape(reason),
		Alt:     "error",
		Class:   []string{"weather", "error"},
	}
}

// emit prints the payload as one JSON line on stdout. Nothing else in the
// process writes to stdout; logs go to stderr.
func emit(out Output) {
	raw, err := json.Marshal(out)
	if err != nil {
		// Marshal of plain strings cannot realistically fail; keep the
		// contract anyway.
		fmt.Println(`{"text":"⛅ --","tooltip":"encoding error","alt":"error","class":["weather","error"]}`)
		return
	}
	fmt.Println(string(raw))
}
