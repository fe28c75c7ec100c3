package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"meteobar/internal/config"
	"meteobar/internal/logger"
	"meteobar/internal/models"

	"github.com/go-resty/resty/v2"
)

const (
	forecastURL = "https://api.open-meteo.com/v1/forecast"
	geoIPURL    = "http://ip-api.com/json"
)

// Field sets requested from the forecast API. Order matches the parallel
// arrays the normalizer indexes into.
const (
	currentFields = "temperature_2m,apparent_temperature,precipitation,weather_code,is_day"
	hourlyFields  = "temperature_2m,precipitation_probability,precipitation,weather_code,is_day"
	dailyFields   = "temperature_2m_max,temperature_2m_min,weather_code,precipitation_sum,precipitation_probability_max,sunrise,sunset"
)

// Client fetches forecast and geolocation data over HTTP.
type Client struct {
	http *resty.Client
}

// NewClient creates a fetch client. Retrying is left to the host's poll
// cycle; the only back-off lives in the orchestrator's degraded path.
func NewClient(timeout time.Duration) *Client {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("Accept", "application/json")

	return &Client{http: client}
}

// FetchForecast requests the multi-day forecast for a location. Transport
// failures and non-success statuses wrap ErrNetwork; structurally invalid
// bodies come back as a *ParseError.
func (c *Client) FetchForecast(ctx context.Context, loc models.Location, cfg *config.Settings) (*models.ForecastResponse, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"latitude":           strconv.FormatFloat(loc.Latitude, 'f', -1, 64),
			"longitude":          strconv.FormatFloat(loc.Longitude, 'f', -1, 64),
			"current":            currentFields,
			"hourly":             hourlyFields,
			"daily":              dailyFields,
			"temperature_unit":   cfg.Unit,
			"precipitation_unit": cfg.PrecipUnit(),
			"timezone":           "auto",
			"forecast_days":      strconv.Itoa(cfg.DayWindow()),
		}).
		Get(forecastURL)

	if err != nil {
		return nil, fmt.Errorf("%w: forecast request: %v", ErrNetwork, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("%w: forecast API returned status %d", ErrNetwork, resp.StatusCode())
	}

	var data models.ForecastResponse
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		return nil, &ParseError{Err: err, Excerpt: excerpt(resp.Body())}
	}
	if len(data.Hourly.Time) == 0 || len(data.Daily.Time) == 0 {
		return nil, &ParseError{
			Err:     fmt.Errorf("response missing hourly/daily blocks"),
			Excerpt: excerpt(resp.Body()),
		}
	}

	logger.Debugf("fetched forecast: %d hourly, %d daily entries", len(data.Hourly.Time), len(data.Daily.Time))
	return &data, nil
}

// FetchIPLocation resolves the machine's location via IP geolocation. Used
// only when the configured location is "auto".
func (c *Client) FetchIPLocation(ctx context.Context) (models.Location, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(geoIPURL)

	if err != nil {
		return models.Location{}, fmt.Errorf("%w: geolocation request: %v", ErrNetwork, err)
	}
	if resp.StatusCode() != 200 {
		return models.Location{}, fmt.Errorf("%w: geolocation API returned status %d", ErrNetwork, resp.StatusCode())
	}

	var geo models.GeoIPResponse
	if err := json.Unmarshal(resp.Body(), &geo); err != nil {
		return models.Location{}, &ParseError{Err: err, Excerpt: excerpt(resp.Body())}
	}
	if geo.Status != "" && geo.Status != "success" {
		return models.Location{}, fmt.Errorf("%w: geolocation lookup failed: %s", ErrNetwork, geo.Status)
	}

	name := geo.City
	if name != "" && geo.Country != "" {
		name += ", " + geo.Country
	} else if name == "" {
		name = geo.Country
	}

	logger.Debugf("geolocated to %s (%.4f, %.4f)", name, geo.Lat, geo.Lon)
	return models.Location{Latitude: geo.Lat, Longitude: geo.Lon, Name: name}, nil
}
