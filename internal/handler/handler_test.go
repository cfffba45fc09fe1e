package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestHealth(t *testing.T) {
	t.Parallel()

	env := setupTestServer(t)

	w := env.doRequest(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response["status"])
	assert.Contains(t, response, "timestamp")
	assert.Contains(t, response, "uptime")
}

func TestWeather_InjectsConditionLabel(t *testing.T) {
	t.Parallel()

	env := setupTestServer(t)

	w := env.doRequest(http.MethodGet, "/api/weather?lang=hi", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Equal(t, "sunny", gjson.Get(body, "current.condition").String())
	assert.Equal(t, "धूप", gjson.Get(body, "current.condition_label").String())
}

func TestWeather_PassesCoordinates(t *testing.T) {
	t.Parallel()

	env := setupTestServer(t)

	w := env.doRequest(http.MethodGet, "/api/weather?lat=12.9&lon=77.5", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 12.9, env.weather.gotLat)
	assert.Equal(t, 77.5, env.weather.gotLon)
}

func TestWeather_UpstreamFailure(t *testing.T) {
	t.Parallel()

	env := setupTestServer(t)
	env.weather.data = nil
	env.weather.err = errors.New("timeout")

	w := env.doRequest(http.MethodGet, "/api/weather", "")
	// Degrades to an error marker in the body, never a transport-level error.
	assert.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.NotEmpty(t, gjson.Get(body, "error").String())
	assert.Equal(t, gjson.Null, gjson.Get(body, "current").Type)
	assert.Equal(t, gjson.Null, gjson.Get(body, "daily").Type)
}

func TestMandi_LimitClamping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		query         string
		expectedLimit int
	}{
		{name: "default", query: "", expectedLimit: 15},
		{name: "explicit", query: "?limit=5", expectedLimit: 5},
		{name: "above maximum", query: "?limit=500", expectedLimit: 50},
		{name: "below minimum", query: "?limit=0", expectedLimit: 1},
		{name: "negative", query: "?limit=-3", expectedLimit: 1},
		{name: "malformed", query: "?limit=abc", expectedLimit: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := setupTestServer(t)
			w := env.doRequest(http.MethodGet, "/api/mandi"+tt.query, "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.expectedLimit, env.mandi.gotLimit)
		})
	}
}

func TestMandi_InjectsLocalizedCommodity(t *testing.T) {
	t.Parallel()

	env := setupTestServer(t)

	w := env.doRequest(http.MethodGet, "/api/mandi?lang=hi", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Equal(t, "fallback", gjson.Get(body, "source").String())
	assert.Equal(t, "Rice", gjson.Get(body, "prices.0.commodity").String())
	assert.Equal(t, "धान", gjson.Get(body, "prices.0.commodity_local").String())
	// Unmapped commodities pass through unchanged.
	assert.Equal(t, "Turmeric", gjson.Get(body, "prices.1.commodity_local").String())
}

func TestSchemes(t *testing.T) {
	t.Parallel()

	env := setupTestServer(t)

	w := env.doRequest(http.MethodGet, "/api/schemes", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Equal(t, "pm_kisan", gjson.Get(body, "schemes.0.id").String())
}

func TestSoil(t *testing.T) {
	t.Parallel()

	env := setupTestServer(t)

	w := env.doRequest(http.MethodGet, "/api/soil?state=Punjab", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Equal(t, "summary", gjson.Get(body, "summary").String())
	assert.Equal(t, "https://soilhealth.dac.gov.in", gjson.Get(body, "soil_health_card_link").String())
}

func TestSatellite_LocalizedDescription(t *testing.T) {
	t.Parallel()

	env := setupTestServer(t)

	w := env.doRequest(http.MethodGet, "/api/satellite?lang=hi", "")
	require.Equal(t, http.StatusOK, w.Code)
	desc := gjson.Get(w.Body.String(), "description").String()
	assert.Equal(t, gjson.Get(w.Body.String(), "description_hi").String(), desc)

	w = env.doRequest(http.MethodGet, "/api/satellite?lang=ta", "")
	require.Equal(t, http.StatusOK, w.Code)
	desc = gjson.Get(w.Body.String(), "description").String()
	assert.Equal(t, gjson.Get(w.Body.String(), "description_en").String(), desc)
}

func TestAdvisory(t *testing.T) {
	t.Parallel()

	env := setupTestServer(t)

	w := env.doRequest(http.MethodGet, "/api/advisory?lang=hi", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, gjson.Get(body, "text").String(), "summary")
	assert.Equal(t, "tip", gjson.Get(body, "soil_tip").String())
}

func TestChatMessage(t *testing.T) {
	t.Parallel()

	env := setupTestServer(t)

	w := env.doRequest(http.MethodPost, "/api/chatbot/message?lang=hi", `{"message":"pest problem"}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Equal(t, "hi", gjson.Get(body, "language").String())
	assert.NotEmpty(t, gjson.Get(body, "reply").String())
}

func TestChatMessage_InvalidJSON(t *testing.T) {
	t.Parallel()

	env := setupTestServer(t)

	w := env.doRequest(http.MethodPost, "/api/chatbot/message", `{"message":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeImage_Defaults(t *testing.T) {
	t.Parallel()

	env := setupTestServer(t)

	w := env.doRequest(http.MethodPost, "/api/chatbot/analyze-image?lang=hi", `{}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Equal(t, "गुलाबी सुंडी", gjson.Get(body, "pest_name").String())
	assert.Equal(t, "नीम का तेल छिड़कें", gjson.Get(body, "treatment").String())
	assert.Equal(t, "hi", gjson.Get(body, "language").String())
}

func TestAnalyzeImage_ExplicitNames(t *testing.T) {
	t.Parallel()

	env := setupTestServer(t)

	w := env.doRequest(http.MethodPost, "/api/chatbot/analyze-image?lang=bn", `{"pest_name_en":"Whitefly"}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Equal(t, "সাদা মাছি", gjson.Get(body, "pest_name").String())
}

func TestUpdateLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedLang   string
	}{
		{name: "valid code", body: `{"language":"ta"}`, expectedStatus: http.StatusOK, expectedLang: "ta"},
		{name: "code with whitespace", body: `{"language":" ta "}`, expectedStatus: http.StatusOK, expectedLang: "ta"},
		{name: "three letter code", body: `{"language":"mai"}`, expectedStatus: http.StatusOK, expectedLang: "mai"},
		{name: "unsupported code", body: `{"language":"fr"}`, expectedStatus: http.StatusBadRequest},
		{name: "oversized code", body: `{"language":"hindi-IN"}`, expectedStatus: http.StatusBadRequest},
		{name: "empty code", body: `{"language":""}`, expectedStatus: http.StatusBadRequest},
		{name: "missing field", body: `{}`, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := setupTestServer(t)
			w := env.doRequest(http.MethodPost, "/api/user/update-language", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				body := w.Body.String()
				assert.True(t, gjson.Get(body, "success").Bool())
				assert.Equal(t, tt.expectedLang, gjson.Get(body, "language").String())
			}
		})
	}
}

func TestLocale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		target         string
		expectedStatus int
	}{
		{name: "existing document", target: "/locales/hi/common.json", expectedStatus: http.StatusOK},
		{name: "missing document", target: "/locales/ta/common.json", expectedStatus: http.StatusNotFound},
		{name: "unknown language", target: "/locales/fr/common.json", expectedStatus: http.StatusNotFound},
		{name: "unknown module", target: "/locales/hi/secrets.json", expectedStatus: http.StatusNotFound},
		{name: "wrong extension", target: "/locales/hi/common.yaml", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := setupTestServer(t)
			w := env.doRequest(http.MethodGet, tt.target, "")
			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusNotFound {
				assert.JSONEq(t, "{}", w.Body.String())
			} else {
				assert.True(t, gjson.Valid(w.Body.String()))
				assert.NotEqual(t, "{}", w.Body.String())
			}
		})
	}
}

func TestLocale_ServesDocumentAddedAfterMiss(t *testing.T) {
	t.Parallel()

	env := setupTestServer(t)

	// A chat request in Tamil populates the translator's negative cache for
	// the missing Tamil documents.
	w := env.doRequest(http.MethodPost, "/api/chatbot/message?lang=ta", `{"message":"hello"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.doRequest(http.MethodGet, "/locales/ta/common.json", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	writeTestLocale(t, env.localeDir, "ta", "common", `{"messages": {"welcome": "வணக்கம்"}}`)

	w = env.doRequest(http.MethodGet, "/locales/ta/common.json", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "வணக்கம்", gjson.Get(w.Body.String(), "messages.welcome").String())
}

func TestLocale_ServesEmptyObjectDocument(t *testing.T) {
	t.Parallel()

	env := setupTestServer(t)

	// A document that legitimately contains an empty object is still present
	// on disk and must be served, not reported missing.
	writeTestLocale(t, env.localeDir, "hi", "dashboard", `{}`)

	w := env.doRequest(http.MethodGet, "/locales/hi/dashboard.json", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "{}", w.Body.String())
}

func TestLanguageNegotiation_HeaderFallback(t *testing.T) {
	t.Parallel()

	env := setupTestServer(t)

	req := env.doRequestWithHeader(http.MethodPost, "/api/chatbot/message", `{"message":"hello"}`, "Accept-Language", "en-US,en;q=0.9")
	require.Equal(t, http.StatusOK, req.Code)
	assert.Equal(t, "en", gjson.Get(req.Body.String(), "language").String())
}
