// Package types defines shared configuration types and interfaces.
package types

// ConfigManager defines the interface for configuration management
type ConfigManager interface {
	GetEffectiveServerConfig() ServerConfig
	GetLogConfig() LogConfig
	GetCORSConfig() CORSConfig
	GetPerformanceConfig() PerformanceConfig
	GetLocaleConfig() LocaleConfig
	GetUpstreamConfig() UpstreamConfig
	Validate() error
	DisplayServerConfig()
	ReloadConfig() error
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port                    int    `json:"port"`
	Host                    string `json:"host"`
	ReadTimeout             int    `json:"read_timeout"`
	WriteTimeout            int    `json:"write_timeout"`
	IdleTimeout             int    `json:"idle_timeout"`
	GracefulShutdownTimeout int    `json:"graceful_shutdown_timeout"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level      string `json:"level"`
	Format     string `json:"format"`
	EnableFile bool   `json:"enable_file"`
	FilePath   string `json:"file_path"`
}

// CORSConfig represents CORS configuration
type CORSConfig struct {
	Enabled          bool     `json:"enabled"`
	AllowedOrigins   []string `json:"allowed_origins"`
	AllowedMethods   []string `json:"allowed_methods"`
	AllowedHeaders   []string `json:"allowed_headers"`
	AllowCredentials bool     `json:"allow_credentials"`
}

// PerformanceConfig represents performance configuration
type PerformanceConfig struct {
	MaxConcurrentRequests int `json:"max_concurrent_requests"`
}

// LocaleConfig represents locale document configuration
type LocaleConfig struct {
	Dir       string `json:"dir"`
	StaticDir string `json:"static_dir"`
}

// UpstreamConfig represents external data source configuration.
// Weather data comes from open-meteo; mandi prices from data.gov.in.
type UpstreamConfig struct {
	WeatherBaseURL        string  `json:"weather_base_url"`
	WeatherTimeoutSeconds int     `json:"weather_timeout_seconds"`
	DefaultLatitude       float64 `json:"default_latitude"`
	DefaultLongitude      float64 `json:"default_longitude"`
	MandiBaseURL          string  `json:"mandi_base_url"`
	MandiTimeoutSeconds   int     `json:"mandi_timeout_seconds"`
	MandiAPIKey           string  `json:"-"`
	MandiResourceID       string  `json:"mandi_resource_id"`
}
