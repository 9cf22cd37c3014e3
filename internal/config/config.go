package config

import (
	"os"
	"strconv"
)

type Config struct {
	APIPort  string
	LogLevel string

	NERBaseURL string
	NERModel   string

	OCRLanguage  string
	OCRWorkers   int
	PDFRasterDPI int

	RulesPath string

	MaxUploadBytes        int64
	AnalyzeTimeoutSeconds int

	NATSURL     string
	NATSSubject string

	APIRateLimitRPS   int
	APIRateLimitBurst int
	APIMaxInFlight    int
}

func Load() Config {
	return Config{
		APIPort:  mustEnv("API_PORT", "8080"),
		LogLevel: mustEnv("LOG_LEVEL", "info"),

		NERBaseURL: mustEnv("NER_BASE_URL", "http://localhost:8090"),
		NERModel:   mustEnv("NER_MODEL", "dslim/bert-base-NER"),

		OCRLanguage:  mustEnv("OCR_LANGUAGE", "eng"),
		OCRWorkers:   mustEnvInt("OCR_WORKERS", 2),
		PDFRasterDPI: mustEnvInt("PDF_RASTER_DPI", 300),

		RulesPath: mustEnv("RULES_PATH", ""),

		MaxUploadBytes:        mustEnvInt64("MAX_UPLOAD_BYTES", 10<<20),
		AnalyzeTimeoutSeconds: mustEnvInt("ANALYZE_TIMEOUT_SECONDS", 60),

		NATSURL:     mustEnv("NATS_URL", ""),
		NATSSubject: mustEnv("NATS_SUBJECT", "analysis.completed"),

		APIRateLimitRPS:   mustEnvInt("API_RATE_LIMIT_RPS", 0),
		APIRateLimitBurst: mustEnvInt("API_RATE_LIMIT_BURST", 10),
		APIMaxInFlight:    mustEnvInt("API_MAX_IN_FLIGHT", 32),
	}
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
