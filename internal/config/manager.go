// Package config provides environment-backed configuration management.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"krishi-nirnay/internal/types"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Constants for configuration defaults
const (
	defaultPort                    = 8080
	defaultHost                    = "0.0.0.0"
	defaultReadTimeout             = 60
	defaultWriteTimeout            = 60
	defaultIdleTimeout             = 120
	defaultGracefulShutdownTimeout = 10
	defaultMaxConcurrentRequests   = 100

	defaultLocalesDir = "locales"
	defaultStaticDir  = "web"

	defaultWeatherBaseURL = "https://api.open-meteo.com/v1"
	defaultWeatherTimeout = 10
	defaultMandiBaseURL   = "https://api.data.gov.in/resource"
	defaultMandiTimeout   = 15

	// Delhi; used when a request carries no coordinates.
	defaultLatitude  = 28.6139
	defaultLongitude = 77.2090

	// data.gov.in resource id for "Current daily price of various commodities
	// from various markets (Mandi)".
	defaultMandiResourceID = "9ef84268-d583-4a30-b979-715d3eec5311"
)

// Manager implements types.ConfigManager backed by environment variables.
type Manager struct {
	mu          sync.RWMutex
	server      types.ServerConfig
	log         types.LogConfig
	cors        types.CORSConfig
	performance types.PerformanceConfig
	locale      types.LocaleConfig
	upstream    types.UpstreamConfig
}

// NewManager creates a configuration manager from the environment.
// A .env file in the working directory is loaded first when present.
func NewManager() (types.ConfigManager, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using system environment variables")
	}

	m := &Manager{}
	if err := m.ReloadConfig(); err != nil {
		return nil, err
	}
	return m, nil
}

// ReloadConfig re-reads all configuration from the environment.
func (m *Manager) ReloadConfig() error {
	server := types.ServerConfig{
		Port:                    parseInteger(os.Getenv("PORT"), defaultPort),
		Host:                    getEnvOrDefault("HOST", defaultHost),
		ReadTimeout:             parseInteger(os.Getenv("SERVER_READ_TIMEOUT"), defaultReadTimeout),
		WriteTimeout:            parseInteger(os.Getenv("SERVER_WRITE_TIMEOUT"), defaultWriteTimeout),
		IdleTimeout:             parseInteger(os.Getenv("SERVER_IDLE_TIMEOUT"), defaultIdleTimeout),
		GracefulShutdownTimeout: parseInteger(os.Getenv("SERVER_GRACEFUL_SHUTDOWN_TIMEOUT"), defaultGracefulShutdownTimeout),
	}

	log := types.LogConfig{
		Level:      getEnvOrDefault("LOG_LEVEL", "info"),
		Format:     getEnvOrDefault("LOG_FORMAT", "text"),
		EnableFile: parseBoolean(os.Getenv("LOG_ENABLE_FILE"), false),
		FilePath:   getEnvOrDefault("LOG_FILE_PATH", "logs/app.log"),
	}

	cors := types.CORSConfig{
		Enabled:          parseBoolean(os.Getenv("ENABLE_CORS"), true),
		AllowedOrigins:   parseArray(os.Getenv("ALLOWED_ORIGINS"), []string{"*"}),
		AllowedMethods:   parseArray(os.Getenv("ALLOWED_METHODS"), []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		AllowedHeaders:   parseArray(os.Getenv("ALLOWED_HEADERS"), []string{"*"}),
		AllowCredentials: parseBoolean(os.Getenv("ALLOW_CREDENTIALS"), false),
	}

	performance := types.PerformanceConfig{
		MaxConcurrentRequests: parseInteger(os.Getenv("MAX_CONCURRENT_REQUESTS"), defaultMaxConcurrentRequests),
	}

	locale := types.LocaleConfig{
		Dir:       getEnvOrDefault("LOCALES_DIR", defaultLocalesDir),
		StaticDir: getEnvOrDefault("STATIC_DIR", defaultStaticDir),
	}

	upstream := types.UpstreamConfig{
		WeatherBaseURL:        getEnvOrDefault("WEATHER_BASE_URL", defaultWeatherBaseURL),
		WeatherTimeoutSeconds: parseInteger(os.Getenv("WEATHER_TIMEOUT_SECONDS"), defaultWeatherTimeout),
		DefaultLatitude:       parseFloat(os.Getenv("WEATHER_LAT"), defaultLatitude),
		DefaultLongitude:      parseFloat(os.Getenv("WEATHER_LON"), defaultLongitude),
		MandiBaseURL:          getEnvOrDefault("MANDI_BASE_URL", defaultMandiBaseURL),
		MandiTimeoutSeconds:   parseInteger(os.Getenv("MANDI_TIMEOUT_SECONDS"), defaultMandiTimeout),
		MandiAPIKey:           strings.TrimSpace(os.Getenv("DATA_GOV_IN_API_KEY")),
		MandiResourceID:       getEnvOrDefault("DATA_GOV_IN_MANDI_RESOURCE_ID", defaultMandiResourceID),
	}

	m.mu.Lock()
	m.server = server
	m.log = log
	m.cors = cors
	m.performance = performance
	m.locale = locale
	m.upstream = upstream
	m.mu.Unlock()

	return m.Validate()
}

// Validate checks the configuration for invalid values.
func (m *Manager) Validate() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var errs []string

	if m.server.Port < 1 || m.server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("port must be between 1-65535, got: %d", m.server.Port))
	}
	if m.performance.MaxConcurrentRequests < 1 {
		errs = append(errs, "max concurrent requests cannot be less than 1")
	}
	if m.locale.Dir == "" {
		errs = append(errs, "locales directory cannot be empty")
	}
	if m.upstream.WeatherTimeoutSeconds < 1 {
		errs = append(errs, "weather timeout cannot be less than 1 second")
	}
	if m.upstream.MandiTimeoutSeconds < 1 {
		errs = append(errs, "mandi timeout cannot be less than 1 second")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// GetEffectiveServerConfig returns the server configuration.
func (m *Manager) GetEffectiveServerConfig() types.ServerConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.server
}

// GetLogConfig returns the logging configuration.
func (m *Manager) GetLogConfig() types.LogConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.log
}

// GetCORSConfig returns the CORS configuration.
func (m *Manager) GetCORSConfig() types.CORSConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cors
}

// GetPerformanceConfig returns the performance configuration.
func (m *Manager) GetPerformanceConfig() types.PerformanceConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.performance
}

// GetLocaleConfig returns the locale configuration.
func (m *Manager) GetLocaleConfig() types.LocaleConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.locale
}

// GetUpstreamConfig returns the upstream data source configuration.
func (m *Manager) GetUpstreamConfig() types.UpstreamConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.upstream
}

// DisplayServerConfig logs the effective configuration at startup.
func (m *Manager) DisplayServerConfig() {
	m.mu.RLock()
	defer m.mu.RUnlock()

	logrus.Info("")
	logrus.Info("======= KrishiNirnay Configuration =======")
	logrus.Infof("  Listen address: %s:%d", m.server.Host, m.server.Port)
	logrus.Infof("  Locales dir: %s", m.locale.Dir)
	logrus.Infof("  Weather upstream: %s (timeout %ds)", m.upstream.WeatherBaseURL, m.upstream.WeatherTimeoutSeconds)
	if m.upstream.MandiAPIKey != "" {
		logrus.Infof("  Mandi upstream: %s (resource %s)", m.upstream.MandiBaseURL, m.upstream.MandiResourceID)
	} else {
		logrus.Info("  Mandi upstream: disabled (no DATA_GOV_IN_API_KEY), serving fallback prices")
	}
	logrus.Infof("  CORS enabled: %t", m.cors.Enabled)
	logrus.Infof("  Max concurrent requests: %d", m.performance.MaxConcurrentRequests)
	logrus.Infof("  Log level: %s", m.log.Level)
	logrus.Info("==========================================")
	logrus.Info("")
}

// getEnvOrDefault returns the environment value or a default when unset.
func getEnvOrDefault(value, defaultValue string) string {
	if v := os.Getenv(value); v != "" {
		return v
	}
	return defaultValue
}

// parseInteger parses an integer environment value with a default.
func parseInteger(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		logrus.Warnf("Invalid integer value %q, using default %d", value, defaultValue)
		return defaultValue
	}
	return n
}

// parseFloat parses a float environment value with a default.
func parseFloat(value string, defaultValue float64) float64 {
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.Warnf("Invalid float value %q, using default %g", value, defaultValue)
		return defaultValue
	}
	return f
}

// parseBoolean parses a boolean environment value with a default.
func parseBoolean(value string, defaultValue bool) bool {
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

// parseArray parses a comma-separated environment value with a default.
func parseArray(value string, defaultValue []string) []string {
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
