package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DiscordToken string
	GuildID      string

	MongoURI    string
	MongoDB     string
	MongoDBTest string

	CalendarID      string
	CredentialsFile string
	CalendarTZ      string

	StorageBackend string
	RootFolder     string

	MinioHost     string
	MinioPort     string
	MinioUsername string
	MinioPassword string
	BucketName    string
	LinkTTL       time.Duration

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	ContextStore  string
	ContextMaxAge time.Duration

	HTTPAddr      string
	PublicBaseURL string

	AttachmentFetchRate  float64
	AttachmentFetchBurst int
}

var AppConfig Config

// getEnv returns the environment value or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// InitConfig loads configuration from the environment.
func InitConfig() {
	AppConfig = Config{
		DiscordToken: getEnv("DISCORD_TOKEN", ""),
		GuildID:      getEnv("GUILD_ID", ""),

		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "academic_notes"),
		MongoDBTest: getEnv("MONGO_DB_TEST", "academic_notes_test"),

		CalendarID:      getEnv("CALENDAR_ID", ""),
		CredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
		CalendarTZ:      getEnv("CALENDAR_TIMEZONE", "Asia/Kolkata"),

		StorageBackend: getEnv("STORAGE_BACKEND", "minio"),
		RootFolder:     getEnv("ROOT_FOLDER", "StudyVault"),

		MinioHost:     getEnv("MINIO_HOST", "localhost"),
		MinioPort:     getEnv("MINIO_PORT", "9000"),
		MinioUsername: getEnv("MINIO_USERNAME", "minioadmin"),
		MinioPassword: getEnv("MINIO_PASSWORD", "minioadmin"),
		BucketName:    getEnv("BUCKET_NAME", "study-vault"),
		LinkTTL:       getEnvDuration("LINK_TTL", 7*24*time.Hour),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		ContextStore:  getEnv("CONTEXT_STORE", "memory"),
		ContextMaxAge: getEnvDuration("CONTEXT_MAX_AGE", 0),

		HTTPAddr:      getEnv("HTTP_ADDR", ":8000"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8000"),

		AttachmentFetchRate:  getEnvFloat("ATTACHMENT_FETCH_RATE", 4),
		AttachmentFetchBurst: getEnvInt("ATTACHMENT_FETCH_BURST", 8),
	}
}
