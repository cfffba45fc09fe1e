package handler_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"krishi-nirnay/internal/handler"
	"krishi-nirnay/internal/i18n"
	"krishi-nirnay/internal/router"
	"krishi-nirnay/internal/services"
	"krishi-nirnay/internal/store"
	"krishi-nirnay/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fakeWeather struct {
	data    *services.WeatherData
	err     error
	gotLat  float64
	gotLon  float64
	invoked bool
}

func (f *fakeWeather) Fetch(_ context.Context, lat, lon float64) (*services.WeatherData, error) {
	f.invoked = true
	f.gotLat, f.gotLon = lat, lon
	return f.data, f.err
}

type fakeMandi struct {
	result   *services.MandiResult
	err      error
	gotLimit int
}

func (f *fakeMandi) Fetch(_ context.Context, limit int) (*services.MandiResult, error) {
	f.gotLimit = limit
	return f.result, f.err
}

type fakeSchemes struct{}

func (f *fakeSchemes) List(language string) []services.LocalizedScheme {
	return []services.LocalizedScheme{{ID: "pm_kisan", Name: "PM-KISAN"}}
}

type fakeSoil struct{}

func (f *fakeSoil) Advisory(state, district, language string) *services.SoilAdvisory {
	return &services.SoilAdvisory{Summary: "summary", NPKTip: "tip", SoilHealthCardLink: "https://soilhealth.dac.gov.in"}
}

// testEnv bundles the server under test with its fakes.
type testEnv struct {
	engine    *gin.Engine
	weather   *fakeWeather
	mandi     *fakeMandi
	localeDir string
}

// setupTestServer builds a full router backed by fake services and fixture
// locale documents.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	writeTestLocale(t, dir, "hi", "common", `{
		"weather": {"conditions": {"sunny": "धूप", "rainy": "बारिश"}},
		"crops": {"paddy": "धान", "wheat": "गेहूं"}
	}`)
	writeTestLocale(t, dir, "en", "common", `{
		"weather": {"conditions": {"sunny": "Sunny"}}
	}`)

	memStore := store.NewMemoryStore()
	t.Cleanup(func() { memStore.Close() })

	locales := i18n.NewLocaleStore(dir, memStore)
	translator := i18n.NewTranslator(locales)

	weather := &fakeWeather{data: &services.WeatherData{
		Current: &services.CurrentWeather{Condition: "sunny"},
		Daily:   &services.DailyForecast{},
	}}
	mandi := &fakeMandi{result: &services.MandiResult{
		Prices: []json.RawMessage{
			json.RawMessage(`{"commodity":"Rice","modal_price":3200}`),
			json.RawMessage(`{"commodity":"Turmeric","modal_price":9000}`),
		},
		Source: services.SourceFallback,
	}}
	schemes := &fakeSchemes{}
	soil := &fakeSoil{}

	satellite := services.NewSatelliteService()
	advisory := services.NewAdvisoryService(translator, weather, soil)
	chatbot := services.NewChatbotEngine(translator, weather, mandi, schemes, soil)

	server := handler.NewServer(handler.ServerParams{
		Config:     &stubConfig{},
		Translator: translator,
		Locales:    locales,
		Weather:    weather,
		Mandi:      mandi,
		Schemes:    schemes,
		Soil:       soil,
		Satellite:  satellite,
		Advisory:   advisory,
		Chatbot:    chatbot,
	})

	return &testEnv{
		engine:    router.NewRouter(server, &stubConfig{}),
		weather:   weather,
		mandi:     mandi,
		localeDir: dir,
	}
}

func writeTestLocale(t *testing.T, dir, lang, module, content string) {
	t.Helper()
	langDir := filepath.Join(dir, lang)
	require.NoError(t, os.MkdirAll(langDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(langDir, module+".json"), []byte(content), 0o644))
}

// doRequest performs a request against the test router and returns the
// recorder.
func (e *testEnv) doRequest(method, target, body string) *httptest.ResponseRecorder {
	return e.doRequestWithHeader(method, target, body, "", "")
}

func (e *testEnv) doRequestWithHeader(method, target, body, headerKey, headerValue string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if headerKey != "" {
		req.Header.Set(headerKey, headerValue)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

// stubConfig implements types.ConfigManager for handler tests.
type stubConfig struct{}

func (c *stubConfig) GetEffectiveServerConfig() types.ServerConfig {
	return types.ServerConfig{Port: 8080, Host: "127.0.0.1"}
}
func (c *stubConfig) GetLogConfig() types.LogConfig   { return types.LogConfig{Level: "error"} }
func (c *stubConfig) GetCORSConfig() types.CORSConfig { return types.CORSConfig{} }
func (c *stubConfig) GetPerformanceConfig() types.PerformanceConfig {
	return types.PerformanceConfig{MaxConcurrentRequests: 50}
}
func (c *stubConfig) GetLocaleConfig() types.LocaleConfig {
	return types.LocaleConfig{Dir: "locales", StaticDir: "web"}
}
func (c *stubConfig) GetUpstreamConfig() types.UpstreamConfig { return types.UpstreamConfig{} }
func (c *stubConfig) Validate() error      { return nil }
func (c *stubConfig) DisplayServerConfig() {}
func (c *stubConfig) ReloadConfig() error  { return nil }
