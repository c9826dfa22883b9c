package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	// DefaultTranslateTimeout bounds a single provider call. The provider is
	// the only blocking step in a translation request, so a hung call would
	// otherwise hang the request indefinitely.
	DefaultTranslateTimeout = 30 * time.Second

	// DefaultAIRateLimit is the provider request ceiling per minute.
	DefaultAIRateLimit = 60
)

type Config struct {
	Addr      string
	DataDir   string
	DBPath    string
	StaticDir string
	LogLevel  string
	JWTSecret string

	SnowflakeNode int64

	AIProvider string
	AIAPIKey   string
	AIBaseURL  string
	AIModel    string

	AIRateLimit      int
	TranslateTimeout time.Duration
}

func Load() Config {
	addr := getenv("CHATTY_ADDR", ":8080")
	dataDir := getenv("CHATTY_DATA_DIR", "data")
	dbPath := os.Getenv("CHATTY_DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "chatty.db")
	}

	return Config{
		Addr:             addr,
		DataDir:          dataDir,
		DBPath:           filepath.Clean(dbPath),
		StaticDir:        getenv("CHATTY_STATIC_DIR", detectStaticDir()),
		LogLevel:         getenv("CHATTY_LOG_LEVEL", "info"),
		JWTSecret:        os.Getenv("CHATTY_JWT_SECRET"),
		SnowflakeNode:    getenvInt64("CHATTY_SNOWFLAKE_NODE", 0),
		AIProvider:       getenv("CHATTY_AI_PROVIDER", "openai"),
		AIAPIKey:         os.Getenv("CHATTY_AI_API_KEY"),
		AIBaseURL:        os.Getenv("CHATTY_AI_BASE_URL"),
		AIModel:          getenv("CHATTY_AI_MODEL", "gpt-4o-mini"),
		AIRateLimit:      getenvInt("CHATTY_AI_RATE_LIMIT", DefaultAIRateLimit),
		TranslateTimeout: getenvDuration("CHATTY_TRANSLATE_TIMEOUT", DefaultTranslateTimeout),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func getenvInt64(key string, fallback int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return value
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func detectStaticDir() string {
	candidates := []string{
		"./frontend/dist",
		"../frontend/dist",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}
