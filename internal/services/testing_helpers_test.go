package services

import (
	"context"

	"krishi-nirnay/internal/types"
)

// stubConfig implements types.ConfigManager with fixed values for tests.
type stubConfig struct {
	upstream types.UpstreamConfig
}

func (c *stubConfig) GetEffectiveServerConfig() types.ServerConfig {
	return types.ServerConfig{Port: 8080, Host: "127.0.0.1"}
}
func (c *stubConfig) GetLogConfig() types.LogConfig   { return types.LogConfig{Level: "error"} }
func (c *stubConfig) GetCORSConfig() types.CORSConfig { return types.CORSConfig{} }
func (c *stubConfig) GetPerformanceConfig() types.PerformanceConfig {
	return types.PerformanceConfig{MaxConcurrentRequests: 10}
}
func (c *stubConfig) GetLocaleConfig() types.LocaleConfig     { return types.LocaleConfig{} }
func (c *stubConfig) GetUpstreamConfig() types.UpstreamConfig { return c.upstream }
func (c *stubConfig) Validate() error                         { return nil }
func (c *stubConfig) DisplayServerConfig()                    {}
func (c *stubConfig) ReloadConfig() error                     { return nil }

// Fake collaborators for the chatbot and advisory engines.

type fakeWeather struct {
	data *WeatherData
	err  error
}

func (f *fakeWeather) Fetch(_ context.Context, _, _ float64) (*WeatherData, error) {
	return f.data, f.err
}

type fakeMandi struct {
	result *MandiResult
	err    error
}

func (f *fakeMandi) Fetch(_ context.Context, _ int) (*MandiResult, error) {
	return f.result, f.err
}

type fakeSchemes struct {
	listed bool
}

func (f *fakeSchemes) List(language string) []LocalizedScheme {
	f.listed = true
	return nil
}

type fakeSoil struct {
	advisory *SoilAdvisory
}

func (f *fakeSoil) Advisory(_, _, _ string) *SoilAdvisory {
	return f.advisory
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int64) *int64       { return &v }
