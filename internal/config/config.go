package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Output OutputConfig
	Detect DetectConfig
	Batch  BatchConfig
	CORS   CORSConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// OutputConfig holds output file settings.
type OutputConfig struct {
	Dir             string `mapstructure:"dir"`
	TimestampFormat string `mapstructure:"timestamp_format"`
	Overwrite       bool   `mapstructure:"overwrite"`
}

// DetectConfig holds format-detection settings.
type DetectConfig struct {
	SniffLines int `mapstructure:"sniff_lines"`
}

// BatchConfig holds batch runner settings.
type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the AEROXFER_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("AEROXFER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// Output defaults
	v.SetDefault("output.dir", ".")
	v.SetDefault("output.timestamp_format", "20060102_150405")
	v.SetDefault("output.overwrite", false)

	// Detection defaults
	v.SetDefault("detect.sniff_lines", 50)

	// Batch defaults
	v.SetDefault("batch.concurrency", 4)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "AEROXFER_SERVER_PORT",
		"server.read_timeout":     "AEROXFER_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "AEROXFER_SERVER_WRITE_TIMEOUT",
		"server.environment":      "AEROXFER_SERVER_ENVIRONMENT",
		"output.dir":              "AEROXFER_OUTPUT_DIR",
		"output.timestamp_format": "AEROXFER_OUTPUT_TIMESTAMP_FORMAT",
		"output.overwrite":        "AEROXFER_OUTPUT_OVERWRITE",
		"detect.sniff_lines":      "AEROXFER_DETECT_SNIFF_LINES",
		"batch.concurrency":       "AEROXFER_BATCH_CONCURRENCY",
		"log.level":               "AEROXFER_LOG_LEVEL",
		"log.format":              "AEROXFER_LOG_FORMAT",
		"cors.allowed_origins":    "AEROXFER_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Platform-provided PORT wins unless AEROXFER_SERVER_PORT is set explicitly.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("AEROXFER_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Output = OutputConfig{
		Dir:             v.GetString("output.dir"),
		TimestampFormat: v.GetString("output.timestamp_format"),
		Overwrite:       v.GetBool("output.overwrite"),
	}
	cfg.Detect = DetectConfig{
		SniffLines: v.GetInt("detect.sniff_lines"),
	}
	cfg.Batch = BatchConfig{
		Concurrency: v.GetInt("batch.concurrency"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
