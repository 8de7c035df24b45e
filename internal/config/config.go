package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Gemini    GeminiConfig
	Log       LogConfig
	Portfolio PortfolioConfig

	// EnvFileLoaded reports whether a .env file was found and applied.
	EnvFileLoaded bool
}

type ServerConfig struct {
	Port         string
	Env          string
	BodyLimit    int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	AllowOrigins string
}

type GeminiConfig struct {
	APIKey       string
	APIKeyFile   string
	Model        string
	Temperature  float32
	MaxLogLength int
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

type PortfolioConfig struct {
	File          string
	MaxResumeSize int64
}

func Load() *Config {
	loaded := godotenv.Load() == nil

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "3000"),
			Env:          getEnv("ENV", "development"),
			BodyLimit:    getEnvAsInt("BODY_LIMIT", 4*1024*1024),
			ReadTimeout:  getEnvAsDuration("READ_TIMEOUT", "30s"),
			WriteTimeout: getEnvAsDuration("WRITE_TIMEOUT", "60s"),
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
		Gemini: GeminiConfig{
			APIKey:       getEnv("GEMINI_API_KEY", ""),
			APIKeyFile:   getEnv("GEMINI_API_KEY_FILE", ""),
			Model:        getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Temperature:  getEnvAsFloat32("GEMINI_TEMPERATURE", 0.2),
			MaxLogLength: getEnvAsInt("GEMINI_MAX_LOG_LENGTH", 200),
		},
		Log: LogConfig{
			JSON:  getEnvAsBool("LOG_JSON", false),
			Debug: getEnvAsBool("LOG_DEBUG", false),
		},
		Portfolio: PortfolioConfig{
			File:          getEnv("PORTFOLIO_FILE", ""),
			MaxResumeSize: getEnvAsInt64("MAX_RESUME_SIZE", 2*1024*1024),
		},
		EnvFileLoaded: loaded,
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 32); err == nil {
		return float32(value)
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
