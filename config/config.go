package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// AppConfig holds environment driven configuration values. Sensitive data
// (JWT secret, database password, Gemini API key) must be provided via
// config/config.json or the environment, never defaulted in code.
type AppConfig struct {
	AppPort            string
	JWTSecret          string
	GinMode            string
	RateLimitPerMinute int
	AllowedOrigins     []string

	// Blog presentation
	BlogTitle       string
	BlogDescription string

	// Database
	DatabaseURI string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	// Redis for token revocation
	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string

	// Gemini generation backend. Temperature 0 is a valid (deterministic)
	// setting; a negative value means "not configured" and lets the client
	// pick its default.
	GeminiAPIKey          string
	GeminiModel           string
	GeminiTemperature     float64
	GeminiMaxOutputTokens int
	GeminiTimeoutSec      int
	GeminiMaxContextBytes int

	// SMTP for newsletter welcome mail
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string
	SMTPTLS      bool

	// Featured-image uploads
	UploadDir        string
	UploadMaxMB      int
	UploadAllowedExt []string

	// Logging
	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
}

var cfg AppConfig
var loaded bool

// Load reads configuration once during boot. Precedence:
// config/config.json -> defaults -> environment variable overrides.
func Load() AppConfig {
	if loaded {
		return cfg
	}

	// Seeded before the file read so an explicit Temperature of 0 is
	// distinguishable from the key being absent.
	cfg.GeminiTemperature = -1

	if err := loadJSONConfig(filepath.Join("config", "config.json"), &cfg); err != nil {
		log.Fatalf("invalid config file: %v", err)
	}
	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set in config or environment")
	}

	loaded = true
	return cfg
}

// Get returns the cached configuration, loading it if necessary.
func Get() AppConfig {
	if !loaded {
		return Load()
	}
	return cfg
}

// SetForTesting replaces the cached configuration. Test helper only.
func SetForTesting(c AppConfig) {
	cfg = c
	loaded = true
}

// loadJSONConfig reads the grouped JSON config into out when present.
// A missing file is fine; invalid JSON is not.
func loadJSONConfig(path string, out *AppConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var raw map[string]map[string]any
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return err
	}

	if app, ok := raw["app"]; ok {
		out.AppPort = getString(app, "Port")
		out.JWTSecret = getString(app, "JWTSecret")
		out.GinMode = getString(app, "GinMode")
		out.RateLimitPerMinute = getInt(app, "RateLimitPerMinute")
		out.AllowedOrigins = getStringSlice(app, "AllowedOrigins")
	}
	if blog, ok := raw["blog"]; ok {
		out.BlogTitle = getString(blog, "Title")
		out.BlogDescription = getString(blog, "Description")
	}
	if dbs, ok := raw["database"]; ok {
		out.DatabaseURI = getString(dbs, "URI")
		out.DBHost = getString(dbs, "Host")
		out.DBPort = getString(dbs, "Port")
		out.DBUser = getString(dbs, "User")
		out.DBPassword = getString(dbs, "Password")
		out.DBName = getString(dbs, "Name")
	}
	if rds, ok := raw["redis"]; ok {
		out.RedisHost = getString(rds, "Host")
		out.RedisPort = getInt(rds, "Port")
		out.RedisDB = getInt(rds, "DB")
		out.RedisPassword = getString(rds, "Password")
	}
	if gm, ok := raw["gemini"]; ok {
		out.GeminiAPIKey = getString(gm, "APIKey")
		out.GeminiModel = getString(gm, "Model")
		if _, present := gm["Temperature"]; present {
			out.GeminiTemperature = getFloat(gm, "Temperature")
		}
		out.GeminiMaxOutputTokens = getInt(gm, "MaxOutputTokens")
		out.GeminiTimeoutSec = getInt(gm, "TimeoutSec")
		out.GeminiMaxContextBytes = getInt(gm, "MaxContextBytes")
	}
	if sm, ok := raw["smtp"]; ok {
		out.SMTPHost = getString(sm, "Host")
		out.SMTPPort = getInt(sm, "Port")
		out.SMTPUsername = getString(sm, "Username")
		out.SMTPPassword = getString(sm, "Password")
		out.SMTPFrom = getString(sm, "From")
		out.SMTPFromName = getString(sm, "FromName")
		out.SMTPTLS = getBool(sm, "TLS")
	}
	if up, ok := raw["uploads"]; ok {
		out.UploadDir = getString(up, "Dir")
		out.UploadMaxMB = getInt(up, "MaxMB")
		out.UploadAllowedExt = getStringSlice(up, "AllowedExt")
	}
	if lg, ok := raw["log"]; ok {
		out.LogLevel = getString(lg, "Level")
		out.LogPath = getString(lg, "Path")
		out.LogMaxSizeMB = getInt(lg, "MaxSizeMB")
		out.LogMaxBackups = getInt(lg, "MaxBackups")
		out.LogMaxAgeDays = getInt(lg, "MaxAgeDays")
		out.LogCompress = getBool(lg, "Compress")
	}
	return nil
}

func applyDefaults(c *AppConfig) {
	if c.AppPort == "" {
		c.AppPort = "8080"
	}
	if c.GinMode == "" {
		c.GinMode = "release"
	}
	if c.RateLimitPerMinute == 0 {
		c.RateLimitPerMinute = 60
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	if c.BlogTitle == "" {
		c.BlogTitle = "Modern Blog"
	}
	if c.BlogDescription == "" {
		c.BlogDescription = "A modern, minimalist blog"
	}
	if c.DBHost == "" {
		c.DBHost = "127.0.0.1"
	}
	if c.DBPort == "" {
		c.DBPort = "3306"
	}
	if c.DBUser == "" {
		c.DBUser = "root"
	}
	if c.DBName == "" {
		c.DBName = "modernblog"
	}
	if c.RedisHost == "" {
		c.RedisHost = "127.0.0.1"
	}
	if c.RedisPort == 0 {
		c.RedisPort = 6379
	}
	if c.GeminiModel == "" {
		c.GeminiModel = "gemini-2.5-flash"
	}
	if c.GeminiMaxOutputTokens == 0 {
		c.GeminiMaxOutputTokens = 4096
	}
	if c.GeminiTimeoutSec == 0 {
		c.GeminiTimeoutSec = 30
	}
	if c.GeminiMaxContextBytes == 0 {
		c.GeminiMaxContextBytes = 200_000
	}
	if c.SMTPPort == 0 {
		c.SMTPPort = 587
	}
	if c.UploadDir == "" {
		c.UploadDir = filepath.Join("static", "uploads")
	}
	if c.UploadMaxMB == 0 {
		c.UploadMaxMB = 16
	}
	if len(c.UploadAllowedExt) == 0 {
		c.UploadAllowedExt = []string{"png", "jpg", "jpeg", "gif", "webp"}
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogMaxSizeMB == 0 {
		c.LogMaxSizeMB = 100
	}
	if c.LogMaxBackups == 0 {
		c.LogMaxBackups = 3
	}
	if c.LogMaxAgeDays == 0 {
		c.LogMaxAgeDays = 7
	}
}

func applyEnvOverrides(c *AppConfig) {
	setString(&c.AppPort, "APP_PORT")
	setString(&c.JWTSecret, "JWT_SECRET")
	setString(&c.GinMode, "GIN_MODE")
	setInt(&c.RateLimitPerMinute, "RATE_LIMIT_PER_MINUTE")
	setList(&c.AllowedOrigins, "CORS_ALLOWED_ORIGINS")
	setString(&c.BlogTitle, "BLOG_TITLE")
	setString(&c.BlogDescription, "BLOG_DESCRIPTION")
	setString(&c.DatabaseURI, "DATABASE_URI")
	setString(&c.DBHost, "DB_HOST")
	setString(&c.DBPort, "DB_PORT")
	setString(&c.DBUser, "DB_USER")
	setString(&c.DBPassword, "DB_PASSWORD")
	setString(&c.DBName, "DB_NAME")
	setString(&c.RedisHost, "REDIS_HOST")
	setInt(&c.RedisPort, "REDIS_PORT")
	setInt(&c.RedisDB, "REDIS_DB")
	setString(&c.RedisPassword, "REDIS_PASSWORD")
	setString(&c.GeminiAPIKey, "GEMINI_API_KEY")
	setString(&c.GeminiModel, "GEMINI_MODEL")
	setFloat(&c.GeminiTemperature, "GEMINI_TEMPERATURE")
	setInt(&c.GeminiMaxOutputTokens, "GEMINI_MAX_OUTPUT_TOKENS")
	setInt(&c.GeminiTimeoutSec, "GEMINI_TIMEOUT_SEC")
	setInt(&c.GeminiMaxContextBytes, "GEMINI_MAX_CONTEXT_BYTES")
	setString(&c.SMTPHost, "SMTP_HOST")
	setInt(&c.SMTPPort, "SMTP_PORT")
	setString(&c.SMTPUsername, "SMTP_USERNAME")
	setString(&c.SMTPPassword, "SMTP_PASSWORD")
	setString(&c.SMTPFrom, "SMTP_FROM")
	setString(&c.SMTPFromName, "SMTP_FROM_NAME")
	setBool(&c.SMTPTLS, "SMTP_TLS")
	setString(&c.UploadDir, "UPLOAD_DIR")
	setInt(&c.UploadMaxMB, "UPLOAD_MAX_MB")
	setList(&c.UploadAllowedExt, "UPLOAD_ALLOWED_EXT")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.LogPath, "LOG_PATH")
	setInt(&c.LogMaxSizeMB, "LOG_MAX_SIZE_MB")
	setInt(&c.LogMaxBackups, "LOG_MAX_BACKUPS")
	setInt(&c.LogMaxAgeDays, "LOG_MAX_AGE_DAYS")
	setBool(&c.LogCompress, "LOG_COMPRESS")
}

// JSON section readers.

func getString(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func getInt(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func getFloat(m map[string]any, key string) float64 {
	if v, ok := m[key].(float64); ok {
		return v
	}
	return 0
}

func getBool(m map[string]any, key string) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return false
}

func getStringSlice(m map[string]any, key string) []string {
	arr, ok := m[key].([]any)
	if !ok {
		return nil
	}
	res := make([]string, 0, len(arr))
	for _, it := range arr {
		if s, ok := it.(string); ok {
			res = append(res, s)
		}
	}
	return res
}

// Environment overrides.

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s: %q", key, v)
		}
		*dst = n
	}
}

func setFloat(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Fatalf("invalid float value for %s: %q", key, v)
		}
		*dst = f
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v == "true" || v == "1"
	}
}

func setList(dst *[]string, key string) {
	raw := os.Getenv(key)
	if raw == "" {
		return
	}
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) > 0 {
		*dst = items
	}
}
