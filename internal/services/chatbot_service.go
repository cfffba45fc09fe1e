package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"krishi-nirnay/internal/i18n"

	"github.com/tidwall/gjson"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Collaborator interfaces consumed by the chatbot engine. The concrete
// services satisfy them; tests substitute fakes.
type (
	// WeatherSource fetches normalized weather data.
	WeatherSource interface {
		Fetch(ctx context.Context, lat, lon float64) (*WeatherData, error)
	}
	// MandiSource fetches wholesale price records.
	MandiSource interface {
		Fetch(ctx context.Context, limit int) (*MandiResult, error)
	}
	// SchemeSource lists localized government schemes.
	SchemeSource interface {
		List(language string) []LocalizedScheme
	}
	// SoilSource provides localized soil advisories.
	SoilSource interface {
		Advisory(state, district, language string) *SoilAdvisory
	}
)

// chatbotPriceLines limits price lines in a mandi reply.
const chatbotPriceLines = 5

// keywordRule pairs trigger substrings with a response function. Rules are
// evaluated in declaration order and the first match wins, so the rule list
// is the visible priority order of the chatbot.
type keywordRule struct {
	name     string
	triggers []string
	respond  func(ctx context.Context, language string) string
}

// ChatbotEngine answers free-text agricultural queries by matching ordered
// keyword groups and resolving locale templates, augmented with live data
// for weather, mandi and soil queries. Reply never fails; the worst case is
// a literal translation key from the resolver's never-fail contract.
type ChatbotEngine struct {
	translator *i18n.Translator
	weather    WeatherSource
	mandi      MandiSource
	schemes    SchemeSource
	soil       SoilSource
	printer    *message.Printer
	rules      []keywordRule
}

// NewChatbotEngine creates a ChatbotEngine with the fixed rule priority:
// greeting, weather, mandi, scheme, soil, pest.
func NewChatbotEngine(translator *i18n.Translator, weather WeatherSource, mandi MandiSource, schemes SchemeSource, soil SoilSource) *ChatbotEngine {
	e := &ChatbotEngine{
		translator: translator,
		weather:    weather,
		mandi:      mandi,
		schemes:    schemes,
		soil:       soil,
		printer:    message.NewPrinter(language.English),
	}
	// Keyword lists mix transliterated and native-script variants because
	// matching happens on a naive lower-cased message.
	e.rules = []keywordRule{
		{
			name:     "greeting",
			triggers: []string{"hi", "hello", "namaste", "hey", "help", "start", "kaise", "कैसे", "नमस्ते"},
			respond:  e.greetingReply,
		},
		{
			name:     "weather",
			triggers: []string{"weather", "mausam", "मौसम", "तापमान", "temperature", "barish", "बारिश", "rain"},
			respond:  e.weatherReply,
		},
		{
			name:     "mandi",
			triggers: []string{"mandi", "bhav", "भाव", "price", "कीमत", "market", "मंडी"},
			respond:  e.mandiReply,
		},
		{
			name:     "scheme",
			triggers: []string{"scheme", "yojana", "योजना", "pm kisan", "kcc", "bima", "बीमा", "insurance"},
			respond:  e.schemeReply,
		},
		{
			name:     "soil",
			triggers: []string{"soil", "mitti", "मिट्टी", "मृदा", "soil health", "npk"},
			respond:  e.soilReply,
		},
		{
			name:     "pest",
			triggers: []string{"pest", "keet", "कीट", "disease", "रोग", "crop", "fasal", "फसल", "photo", "फोटो"},
			respond:  e.pestReply,
		},
	}
	return e
}

// Reply returns the chatbot answer for a message in the given language.
func (e *ChatbotEngine) Reply(ctx context.Context, msg, lang string) string {
	normalized := strings.ToLower(strings.TrimSpace(msg))
	if normalized == "" {
		return e.translator.T(lang, "chatbot", "default_reply")
	}

	for _, rule := range e.rules {
		if containsAny(normalized, rule.triggers) {
			return rule.respond(ctx, lang)
		}
	}
	return e.translator.T(lang, "chatbot", "default_reply")
}

func containsAny(msg string, triggers []string) bool {
	for _, t := range triggers {
		if strings.Contains(msg, t) {
			return true
		}
	}
	return false
}

func (e *ChatbotEngine) greetingReply(_ context.Context, lang string) string {
	return e.translator.T(lang, "chatbot", "help_prompt")
}

// weatherReply composes the weather template with current conditions:
// condition label, rounded temperature and humidity percentage.
func (e *ChatbotEngine) weatherReply(ctx context.Context, lang string) string {
	prefix := e.translator.T(lang, "chatbot", "weather_reply")

	data, err := e.weather.Fetch(ctx, 0, 0)
	if err != nil {
		return prefix + e.translator.T(lang, "common", "messages.error")
	}

	var parts []string
	if cur := data.Current; cur != nil {
		if cur.Condition != "" {
			parts = append(parts, e.translator.T(lang, "common", "weather.conditions."+cur.Condition))
		}
		if cur.Temperature != nil {
			parts = append(parts, fmt.Sprintf("%d°C", int(math.Round(*cur.Temperature))))
		}
		if cur.Humidity != nil {
			parts = append(parts, strconv.FormatFloat(*cur.Humidity, 'f', -1, 64)+"% "+e.translator.T(lang, "common", "weather.humidity"))
		}
	}
	if len(parts) == 0 {
		return prefix + e.translator.T(lang, "common", "messages.no_data")
	}
	return prefix + strings.Join(parts, ", ")
}

// mandiReply composes the mandi template with up to five localized price
// lines, "crop: ₹price/q" joined by "; ".
func (e *ChatbotEngine) mandiReply(ctx context.Context, lang string) string {
	prefix := e.translator.T(lang, "chatbot", "mandi_reply")

	result, err := e.mandi.Fetch(ctx, chatbotPriceLines)
	if err != nil || result == nil || len(result.Prices) == 0 {
		return prefix + e.translator.T(lang, "common", "messages.no_data")
	}

	var lines []string
	for _, rec := range result.Prices {
		if len(lines) >= chatbotPriceLines {
			break
		}
		commodity := gjson.GetBytes(rec, "commodity").String()
		name := e.translator.ResolveCrop(commodity, lang)
		if name == "" {
			name = commodity
		}
		modal := gjson.GetBytes(rec, "modal_price")
		if !modal.Exists() || modal.Type == gjson.Null {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: ₹%s/q", name, e.printer.Sprintf("%d", int64(modal.Float()))))
	}
	if len(lines) == 0 {
		return prefix + e.translator.T(lang, "common", "messages.no_data")
	}
	return prefix + strings.Join(lines, "; ")
}

func (e *ChatbotEngine) schemeReply(_ context.Context, lang string) string {
	// Scheme data is fetched but not used in the text reply; the reply
	// template points users at the schemes dashboard instead.
	_ = e.schemes.List(lang)
	return e.translator.T(lang, "chatbot", "schemes_reply")
}

func (e *ChatbotEngine) soilReply(_ context.Context, lang string) string {
	prefix := e.translator.T(lang, "chatbot", "soil_reply")

	advisory := e.soil.Advisory("", "", lang)
	if advisory == nil || advisory.Summary == "" {
		return prefix + e.translator.T(lang, "common", "messages.no_data")
	}
	return prefix + advisory.Summary
}

func (e *ChatbotEngine) pestReply(_ context.Context, lang string) string {
	return e.translator.T(lang, "chatbot", "pest_tip")
}
