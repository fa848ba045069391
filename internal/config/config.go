package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/bowerhall/sisters/internal/logger"
)

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	dbPath := os.Getenv("SISTERS_DB")
	if dbPath == "" {
		dbPath = "sisters_data.db"
	}

	timezone := os.Getenv("TZ")
	if timezone == "" {
		timezone = "UTC"
	}

	return &Config{
		Port:         port,
		DatabasePath: dbPath,
		Timezone:     timezone,
		PersonaFile:  os.Getenv("PERSONA_FILE"),
		LLM:          loadLLMConfig(),
		Retention:    loadRetentionConfig(),
		Backup:       loadBackupConfig(),
	}, nil
}

func loadLLMConfig() LLMConfig {
	provider := os.Getenv("LLM_PROVIDER")
	if provider == "" {
		provider = "gemini"
	}

	apiKey := apiKeyForProvider(provider)
	if apiKey == "" {
		// startup proceeds; the chat endpoint fails at call time instead
		logger.Warn("no API key configured for provider", "provider", provider)
	}

	return LLMConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    os.Getenv("LLM_MODEL"),
		BaseURL:  os.Getenv("LLM_BASE_URL"),
	}
}

func apiKeyForProvider(provider string) string {
	if key := os.Getenv("LLM_API_KEY"); key != "" {
		return key
	}

	switch provider {
	case "gemini":
		return os.Getenv("GEMINI_API_KEY")
	case "claude":
		return os.Getenv("ANTHROPIC_API_KEY")
	case "openai":
		return os.Getenv("OPENAI_API_KEY")
	default:
		return os.Getenv(strings.ToUpper(provider) + "_API_KEY")
	}
}

func loadRetentionConfig() RetentionConfig {
	days := 30
	if d, err := strconv.Atoi(os.Getenv("RETENTION_DAYS")); err == nil && d > 0 {
		days = d
	}

	schedule := os.Getenv("RETENTION_SCHEDULE")
	if schedule == "" {
		schedule = "0 4 * * *"
	}

	return RetentionConfig{
		Days:     days,
		Schedule: schedule,
	}
}

func loadBackupConfig() BackupConfig {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		endpoint = "minio:9000"
	}

	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "sisters-backups"
	}

	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	secretKey := os.Getenv("MINIO_SECRET_KEY")

	return BackupConfig{
		Enabled:   accessKey != "" && secretKey != "",
		Endpoint:  endpoint,
		AccessKey: accessKey,
		SecretKey: secretKey,
		Bucket:    bucket,
		UseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
	}
}
