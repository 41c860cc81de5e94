package main

import (
	"log"
	"os"
	"strconv"
)

type R2Config struct {
	AccountID string
	Bucket    string
	AccessKey string
	SecretKey string
}

type AIConfig struct {
	APIKey            string
	Model             string
	RequestsPerSecond float64
}

// IsConfigured reports whether the optional AI reviewer can run.
func (c AIConfig) IsConfigured() bool {
	return c.APIKey != ""
}

type Config struct {
	DBURL             string
	RabbitURL         string
	R2                R2Config
	AI                AIConfig
	WorkerCount       int
	ResumeConcurrency int
}

// LoadConfig reads the worker configuration from the environment and
// exits on anything missing or malformed.
func LoadConfig() *Config {
	return &Config{
		DBURL:     getEnvRequired("DB_URL"),
		RabbitURL: getEnvRequired("RABBITMQ_URL"),
		R2: R2Config{
			AccountID: getEnvRequired("R2_ACCOUNT_ID"),
			Bucket:    getEnvRequired("R2_BUCKET"),
			AccessKey: getEnvRequired("R2_ACCESS_KEY"),
			SecretKey: getEnvRequired("R2_SECRET_KEY"),
		},
		AI: AIConfig{
			APIKey:            os.Getenv("GOOGLE_API_KEY"),
			Model:             getEnvWithDefault("AI_MODEL", "gemini-2.5-pro"),
			RequestsPerSecond: getEnvFloat("AI_REQUESTS_PER_SECOND", 1),
		},
		WorkerCount:       getEnvInt("WORKER_COUNT", 3),
		ResumeConcurrency: getEnvInt("RESUME_CONCURRENCY", 4),
	}
}

func getEnvRequired(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("empty %s in environment", key)
	}
	return v
}

func getEnvWithDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		log.Fatalf("invalid %s: %q", key, v)
	}
	return n
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		log.Fatalf("invalid %s: %q", key, v)
	}
	return f
}
