package services

import (
	"context"
	"encoding/json"
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

// Price sources reported in MandiResult.
const (
	SourceExternal = "external"
	SourceFallback = "fallback"
)

// MandiResult holds wholesale price records. Records from data.gov.in keep
// their upstream shape, so they are carried as raw JSON objects.
type MandiResult struct {
	Prices []json.RawMessage `json:"prices"`
	Source string            `json:"source"`
}

// PriceRecord mirrors the government mandi price record structure; used for
// the fallback table.
type PriceRecord struct {
	Commodity  string `json:"commodity"`
	Market     string `json:"market"`
	ModalPrice int    `json:"modal_price"`
	MinPrice   int    `json:"min_price"`
	MaxPrice   int    `json:"max_price"`
	Unit       string `json:"unit"`
}

// fallbackPrices holds representative mandi prices mirroring the government
// data structure; served whenever the upstream is unavailable.
var fallbackPrices = []PriceRecord{
	{Commodity: "Rice", Market: "Delhi", ModalPrice: 3200, MinPrice: 3100, MaxPrice: 3350, Unit: "Quintal"},
	{Commodity: "Wheat", Market: "Delhi", ModalPrice: 2400, MinPrice: 2350, MaxPrice: 2480, Unit: "Quintal"},
	{Commodity: "Cotton", Market: "Gujarat", ModalPrice: 6200, MinPrice: 6000, MaxPrice: 6400, Unit: "Quintal"},
	{Commodity: "Soybean", Market: "Madhya Pradesh", ModalPrice: 4200, MinPrice: 4100, MaxPrice: 4350, Unit: "Quintal"},
	{Commodity: "Groundnut", Market: "Gujarat", ModalPrice: 5800, MinPrice: 5600, MaxPrice: 6000, Unit: "Quintal"},
	{Commodity: "Chickpea", Market: "Rajasthan", ModalPrice: 5200, MinPrice: 5000, MaxPrice: 5400, Unit: "Quintal"},
	{Commodity: "Sugarcane", Market: "Uttar Pradesh", ModalPrice: 340, MinPrice: 320, MaxPrice: 360, Unit: "Quintal"},
	{Commodity: "Maize", Market: "Karnataka", ModalPrice: 2200, MinPrice: 2100, MaxPrice: 2300, Unit: "Quintal"},
}

// MandiService fetches wholesale commodity prices from the data.gov.in mandi
// resource, degrading to the static fallback table on any failure. A single
// attempt is made per call, no retries.
type MandiService struct {
	baseURL    string
	apiKey     string
	resourceID string
	client     *http.Client
}

// NewMandiService creates a MandiService from the upstream configuration.
func NewMandiService(configManager types.ConfigManager, clients *httpclient.Manager) *MandiService {
	upstream := configManager.GetUpstreamConfig()
	return &MandiService{
		baseURL:    upstream.MandiBaseURL,
		apiKey:     upstream.MandiAPIKey,
		resourceID: upstream.MandiResourceID,
		client:     clients.GetClient(httpclient.DefaultConfig(time.Duration(upstream.MandiTimeoutSeconds) * time.Second)),
	}
}

// Fetch returns up to limit price records. Without an API key, or when the
// upstream fails or returns no records, the fallback table is served.
func (s *MandiService) Fetch(ctx context.Context, limit int) (*MandiResult, error) {
	if s.apiKey == "" {
		return fallbackResult(), nil
	}

	records, err := s.fetchExternal(ctx, limit)
	if err != nil {
		logrus.WithError(err).Debug("Mandi upstream unavailable, serving fallback prices")
		return fallbackResult(), nil
	}
	if len(records) == 0 {
		return fallbackResult(), nil
	}
	return &MandiResult{Prices: records, Source: SourceExternal}, nil
}

func (s *MandiService) fetchExternal(ctx context.Context, limit int) ([]json.RawMessage, error) {
	q := url.Values{}
	q.Set("api-key", s.apiKey)
	q.Set("format", "json")
	q.Set("limit", fmt.Sprintf("%d", limit))
	endpoint := fmt.Sprintf("%s/%s?%s", s.baseURL, s.resourceID, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build mandi request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mandi upstream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mandi upstream returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read mandi response: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("mandi upstream returned invalid JSON")
	}

	doc := gjson.ParseBytes(body)
	records := doc.Get("records")
	if !records.IsArray() {
		records = doc.Get("Records")
	}
	if !records.IsArray() {
		records = doc.Get("data")
	}
	if !records.IsArray() {
		return nil, nil
	}

	out := make([]json.RawMessage, 0, limit)
	for _, rec := range records.Array() {
		if len(out) >= limit {
			break
		}
		out = append(out, json.RawMessage(rec.Raw))
	}
	return out, nil
}

// fallbackResult marshals the static price table into raw records so the
// result shape is identical to the external path.
func fallbackResult() *MandiResult {
	prices := make([]json.RawMessage, 0, len(fallbackPrices))
	for _, p := range fallbackPrices {
		raw, err := json.Marshal(p)
		if err != nil {
			continue
		}
		prices = append(prices, raw)
	}
	return &MandiResult{Prices: prices, Source: SourceFallback}
}
