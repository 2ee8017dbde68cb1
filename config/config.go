package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultBaseURL = "https://weather.visualcrossing.com/VisualCrossingWebServices/rest/services/timeline"

type Config struct {
	APIKey             string
	BaseURL            string
	ServerPort         string
	LogLevel           string
	RequestRate        float64 // запросов в секунду, 0 отключает ограничение
	RequestBurst       int
	HTTPTimeoutSeconds int // 0 - таймаут транспорта по умолчанию
}

func Load() (*Config, error) {
	// Загружаем .env файл если существует
	godotenv.Load()

	config := &Config{
		APIKey:             getEnv("VISUALCROSSING_API_KEY", ""),
		BaseURL:            getEnv("VISUALCROSSING_BASE_URL", defaultBaseURL),
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		RequestRate:        getEnvAsFloat("REQUEST_RATE", 1),
		RequestBurst:       getEnvAsInt("REQUEST_BURST", 3),
		HTTPTimeoutSeconds: getEnvAsInt("HTTP_TIMEOUT_SECONDS", 0),
	}

	if config.APIKey == "" {
		return nil, fmt.Errorf("не задан API ключ (VISUALCROSSING_API_KEY)")
	}
	if config.RequestBurst < 1 {
		config.RequestBurst = 1
	}

	return config, nil
}

// Debug сообщает, включено ли подробное логирование
func (c *Config) Debug() bool {
	return c.LogLevel == "debug"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}

	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil || floatValue < 0 {
		return defaultValue
	}
	return floatValue
}
