// Package services implements the external data collaborators (weather,
// mandi prices, schemes, soil, satellite) and the rule-based chatbot engine.
package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"krishi-nirnay/internal/httpclient"
	"krishi-nirnay/internal/types"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// CurrentWeather holds the normalized current conditions. Pointer fields are
// nil when the upstream omits the value.
type CurrentWeather struct {
	Temperature    *float64 `json:"temperature"`
	Humidity       *float64 `json:"humidity"`
	Precipitation  *float64 `json:"precipitation"`
	WindSpeed      *float64 `json:"wind_speed"`
	WeatherCode    *int64   `json:"weather_code"`
	Condition      string   `json:"condition"`
	ConditionLabel string   `json:"condition_label,omitempty"`
}

// DailyForecast holds 3-day forecast arrays in open-meteo column layout.
type DailyForecast struct {
	Time             []string  `json:"time"`
	TemperatureMax   []float64 `json:"temperature_2m_max"`
	TemperatureMin   []float64 `json:"temperature_2m_min"`
	PrecipitationSum []float64 `json:"precipitation_sum"`
	WeatherCode      []int64   `json:"weather_code"`
}

// WeatherData is the normalized weather payload.
type WeatherData struct {
	Current *CurrentWeather `json:"current"`
	Daily   *DailyForecast  `json:"daily"`
	Lat     float64         `json:"lat"`
	Lon     float64         `json:"lon"`
}

// forecastDays limits the daily arrays.
const forecastDays = 3

// WeatherService fetches current weather and a short forecast from the
// open-meteo API. A single attempt is made per call; failures are returned
// to the caller, which degrades to its own fallback.
type WeatherService struct {
	baseURL    string
	defaultLat float64
	defaultLon float64
	client     *http.Client
}

// NewWeatherService creates a WeatherService from the upstream configuration.
func NewWeatherService(configManager types.ConfigManager, clients *httpclient.Manager) *WeatherService {
	upstream := configManager.GetUpstreamConfig()
	return &WeatherService{
		baseURL:    upstream.WeatherBaseURL,
		defaultLat: upstream.DefaultLatitude,
		defaultLon: upstream.DefaultLongitude,
		client:     clients.GetClient(httpclient.DefaultConfig(time.Duration(upstream.WeatherTimeoutSeconds) * time.Second)),
	}
}

// Fetch returns current weather and the 3-day forecast for the coordinates.
// Zero coordinates fall back to the configured defaults.
func (s *WeatherService) Fetch(ctx context.Context, lat, lon float64) (*WeatherData, error) {
	if lat == 0 {
		lat = s.defaultLat
	}
	if lon == 0 {
		lon = s.defaultLon
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.forecastURL(lat, lon), nil)
	if err != nil {
		return nil, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		logrus.WithError(err).Debug("Weather upstream request failed")
		return nil, fmt.Errorf("weather upstream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather upstream returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read weather response: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("weather upstream returned invalid JSON")
	}

	return normalizeWeather(body, lat, lon), nil
}

func (s *WeatherService) forecastURL(lat, lon float64) string {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%g", lat))
	q.Set("longitude", fmt.Sprintf("%g", lon))
	q.Set("current", "temperature_2m,relative_humidity_2m,precipitation,weather_code,wind_speed_10m")
	q.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum,weather_code")
	q.Set("timezone", "Asia/Kolkata")
	return s.baseURL + "/forecast?" + q.Encode()
}

// normalizeWeather reshapes the open-meteo response into WeatherData.
func normalizeWeather(body []byte, lat, lon float64) *WeatherData {
	doc := gjson.ParseBytes(body)
	current := doc.Get("current")
	daily := doc.Get("daily")

	weatherCode := optInt(current.Get("weather_code"))
	return &WeatherData{
		Current: &CurrentWeather{
			Temperature:   optFloat(current.Get("temperature_2m")),
			Humidity:      optFloat(current.Get("relative_humidity_2m")),
			Precipitation: optFloat(current.Get("precipitation")),
			WindSpeed:     optFloat(current.Get("wind_speed_10m")),
			WeatherCode:   weatherCode,
			Condition:     ConditionForCode(weatherCode),
		},
		Daily: &DailyForecast{
			Time:             takeStrings(daily.Get("time"), forecastDays),
			TemperatureMax:   takeFloats(daily.Get("temperature_2m_max"), forecastDays),
			TemperatureMin:   takeFloats(daily.Get("temperature_2m_min"), forecastDays),
			PrecipitationSum: takeFloats(daily.Get("precipitation_sum"), forecastDays),
			WeatherCode:      takeInts(daily.Get("weather_code"), forecastDays),
		},
		Lat: lat,
		Lon: lon,
	}
}

// ConditionForCode maps a WMO weather interpretation code (0-99) onto the
// closed condition label set used by the locale documents.
func ConditionForCode(code *int64) string {
	if code == nil {
		return "unknown"
	}
	switch *code {
	case 0:
		return "sunny"
	case 1, 2, 3, 45, 48:
		return "cloudy"
	case 61, 63, 65, 80, 81, 82:
		return "rainy"
	case 95, 96, 99:
		return "stormy"
	default:
		return "cloudy"
	}
}

func optFloat(r gjson.Result) *float64 {
	if !r.Exists() || r.Type == gjson.Null {
		return nil
	}
	f := r.Float()
	return &f
}

func optInt(r gjson.Result) *int64 {
	if !r.Exists() || r.Type == gjson.Null {
		return nil
	}
	n := r.Int()
	return &n
}

func takeStrings(r gjson.Result, n int) []string {
	out := make([]string, 0, n)
	for _, item := range r.Array() {
		if len(out) >= n {
			break
		}
		out = append(out, item.String())
	}
	return out
}

func takeFloats(r gjson.Result, n int) []float64 {
	out := make([]float64, 0, n)
	for _, item := range r.Array() {
		if len(out) >= n {
			break
		}
		out = append(out, item.Float())
	}
	return out
}

func takeInts(r gjson.Result, n int) []int64 {
	out := make([]int64, 0, n)
	for _, item := range r.Array() {
		if len(out) >= n {
			break
		}
		out = append(out, item.Int())
	}
	return out
}
