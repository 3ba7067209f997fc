package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultBaseURL = "https://api.open-meteo.com/v1/forecast"
	requestTimeout = 10 * time.Second
	cacheTTL       = time.Hour
	cacheKey       = "current"
)

// OpenMeteo fetches the current weather from the open-meteo forecast API.
type OpenMeteo struct {
	baseURL string
	lat     float64
	lon     float64
	client  *http.Client
	cache   *expirable.LRU[string, Report]
}

// Option configures the OpenMeteo provider.
type Option func(*OpenMeteo)

// WithBaseURL overrides the API endpoint, used in tests.
func WithBaseURL(u string) Option {
	return func(o *OpenMeteo) { o.baseURL = u }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *OpenMeteo) { o.client = c }
}

// NewOpenMeteo creates a provider for the given coordinates.
func NewOpenMeteo(lat, lon float64, opts ...Option) *OpenMeteo {
	o := &OpenMeteo{
		baseURL: defaultBaseURL,
		lat:     lat,
		lon:     lon,
		client:  &http.Client{Timeout: requestTimeout},
		cache:   expirable.NewLRU[string, Report](1, nil, cacheTTL),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
}

// Current returns the cached report or fetches a fresh one.
func (o *OpenMeteo) Current(ctx context.Context) (Report, error) {
	if r, ok := o.cache.Get(cacheKey); ok {
		return r, nil
	}

	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", o.lat))
	q.Set("longitude", fmt.Sprintf("%.4f", o.lon))
	q.Set("current", "temperature_2m,weather_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Report{}, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Report{}, fmt.Errorf("fetch weather: unexpected status %d", resp.StatusCode)
	}

	var body forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Report{}, fmt.Errorf("decode weather response: %w", err)
	}

	r := Report{
		Temperature: body.Current.Temperature,
		Condition:   ConditionFromWMO(body.Current.WeatherCode),
	}
	o.cache.Add(cacheKey, r)
	return r, nil
}
