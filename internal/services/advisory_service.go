package services

import (
	"context"
	"fmt"
	"strings"

	"krishi-nirnay/internal/i18n"
)

// Advisory is the composed "today's advisory" payload.
type Advisory struct {
	Text    string          `json:"text"`
	SoilTip string          `json:"soil_tip"`
	Weather *CurrentWeather `json:"weather"`
}

// AdvisoryService composes weather and soil data into a short localized
// advisory text.
type AdvisoryService struct {
	translator *i18n.Translator
	weather    WeatherSource
	soil       SoilSource
}

// NewAdvisoryService creates an AdvisoryService.
func NewAdvisoryService(translator *i18n.Translator, weather WeatherSource, soil SoilSource) *AdvisoryService {
	return &AdvisoryService{translator: translator, weather: weather, soil: soil}
}

// Get builds the advisory for a language and location. A weather failure
// drops the weather fragment; the soil advisory is always present.
func (s *AdvisoryService) Get(ctx context.Context, language string, lat, lon float64, state string) *Advisory {
	soil := s.soil.Advisory(state, "", language)

	var parts []string
	var current *CurrentWeather

	weather, err := s.weather.Fetch(ctx, lat, lon)
	if err == nil && weather.Current != nil {
		current = weather.Current
		condition := current.Condition
		if condition == "" {
			condition = "sunny"
		}
		label := s.translator.T(language, "common", "weather.conditions."+condition)
		if current.Temperature != nil {
			parts = append(parts, fmt.Sprintf("%s, %.0f°C.", label, *current.Temperature))
		} else {
			parts = append(parts, label+".")
		}
	}
	parts = append(parts, soil.Summary)

	return &Advisory{
		Text:    strings.Join(parts, " "),
		SoilTip: soil.NPKTip,
		Weather: current,
	}
}
