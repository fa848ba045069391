package config

// Config holds all runtime settings, loaded from the environment.
type Config struct {
	Port         string
	DatabasePath string
	Timezone     string
	PersonaFile  string

	LLM       LLMConfig
	Retention RetentionConfig
	Backup    BackupConfig
}

type LLMConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

// RetentionConfig controls the periodic purge of old conversation turns.
type RetentionConfig struct {
	Days     int
	Schedule string // cron expression, local to Timezone
}

type BackupConfig struct {
	Enabled   bool
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}
