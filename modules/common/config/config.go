package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config - all environment-driven settings in one place
type Config struct {
	// Gemini API
	GeminiAPIKey string
	GeminiModel  string
	ImagenModel  string

	// Redis (optional - history snapshots are disabled when host is empty)
	RedisHost     string
	RedisPort     string
	RedisUsername string
	RedisPassword string
	RedisUseTLS   bool

	// Disk mirror
	MirrorWebP    bool
	MirrorQuality float32

	// Server
	Port string
}

var globalConfig *Config

// LoadConfig - load environment variables (.env file supported)
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using environment variables")
	}

	useTLS := false
	if tlsStr := os.Getenv("REDIS_USE_TLS"); tlsStr != "" {
		if parsed, err := strconv.ParseBool(tlsStr); err == nil {
			useTLS = parsed
		}
	}

	mirrorWebP := false
	if webpStr := os.Getenv("MIRROR_SAVE_WEBP"); webpStr != "" {
		if parsed, err := strconv.ParseBool(webpStr); err == nil {
			mirrorWebP = parsed
		}
	}

	mirrorQuality := float32(90)
	if qStr := os.Getenv("MIRROR_WEBP_QUALITY"); qStr != "" {
		if parsed, err := strconv.ParseFloat(qStr, 32); err == nil && parsed > 0 && parsed <= 100 {
			mirrorQuality = float32(parsed)
		}
	}

	globalConfig = &Config{
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash-image"),
		ImagenModel:  getEnv("IMAGEN_MODEL", "imagen-4.0-generate-001"),

		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisUsername: getEnv("REDIS_USERNAME", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisUseTLS:   useTLS,

		MirrorWebP:    mirrorWebP,
		MirrorQuality: mirrorQuality,

		Port: getEnv("PORT", "8080"),
	}

	if err := globalConfig.validate(); err != nil {
		return nil, err
	}

	log.Println("✅ Configuration loaded successfully")
	log.Printf("   Gemini model: %s", globalConfig.GeminiModel)
	log.Printf("   Imagen model: %s", globalConfig.ImagenModel)
	if globalConfig.RedisHost != "" {
		log.Printf("   Redis: %s:%s (TLS: %v)", globalConfig.RedisHost, globalConfig.RedisPort, globalConfig.RedisUseTLS)
	} else {
		log.Printf("   Redis: disabled (history kept in memory only)")
	}
	log.Printf("   Mirror WebP: %v", globalConfig.MirrorWebP)

	return globalConfig, nil
}

// GetConfig - fetch the loaded config
func GetConfig() *Config {
	if globalConfig == nil {
		log.Fatal("❌ Config not loaded. Call LoadConfig() first.")
	}
	return globalConfig
}

// validate - required environment variables
func (c *Config) validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetRedisAddr - Redis connection string
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// RedisEnabled - history snapshots are only active with a configured host
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}
