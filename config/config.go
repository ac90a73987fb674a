package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Port              string
	Env               string
	MongoURI          string
	MongoDB           string
	RazorpayKeyID     string
	RazorpayKeySecret string // server-only, never sent to the client
	Currency          string
	AllowedOrigins    []string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("APP_ENV", "development"),
		MongoURI:          os.Getenv("MONGO_URI"),
		MongoDB:           getEnv("MONGO_DB", "checkout"),
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		Currency:          getEnv("CURRENCY", "INR"),
		AllowedOrigins:    strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
	}

	if cfg.MongoURI == "" || cfg.RazorpayKeyID == "" || cfg.RazorpayKeySecret == "" {
		return nil, fmt.Errorf("missing required environment variables")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
