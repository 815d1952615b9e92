package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig
	AI          AIConfig
	Preferences PreferenceConfig
	Kafka       KafkaConfig
	Schedule    ScheduleConfig
	LogLevel    string
}

type ServerConfig struct {
	Addr      string
	ClientURL string
}

type AIConfig struct {
	Provider     string // gemini or openai
	GeminiAPIKey string
	OpenAIAPIKey string
	Model        string
	Timeout      time.Duration
}

// APIKey returns the credential for the configured provider.
func (a AIConfig) APIKey() string {
	if a.Provider == "openai" {
		return a.OpenAIAPIKey
	}
	return a.GeminiAPIKey
}

type PreferenceConfig struct {
	Backend             string // sqlite, redis, firestore or memory
	SQLitePath          string
	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	FirebaseCredentials string // base64 encoded service account JSON
	FirestoreCollection string
}

type KafkaConfig struct {
	Brokers           []string
	TopicNotification string
}

type ScheduleConfig struct {
	AlertRotationPeriod  time.Duration
	MetricDriftPeriod    time.Duration
	NotificationPeriod   time.Duration
	NotificationLifetime time.Duration
	DashboardIdle        time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("client_url", "http://localhost:5173")

	v.SetDefault("ai_provider", "gemini")
	v.SetDefault("ai_model", "")
	v.SetDefault("ai_timeout", 60*time.Second)

	v.SetDefault("preference_backend", "sqlite")
	v.SetDefault("sqlite_path", "healthwatch.db")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_db", 0)
	v.SetDefault("firestore_collection", "preferences")

	v.SetDefault("kafka_brokers", "")
	v.SetDefault("kafka_topic_notifications", "healthwatch.notifications")

	v.SetDefault("alert_rotation_period", 15*time.Second)
	v.SetDefault("metric_drift_period", 2*time.Second)
	v.SetDefault("notification_period", 15*time.Second)
	v.SetDefault("notification_lifetime", 10*time.Second)
	v.SetDefault("dashboard_idle", time.Minute)

	v.SetDefault("log_level", "info")
}

// Load reads .env if present, then the environment, over built-in defaults.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not present)
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// API_KEY is the name the dashboard has always used for the Gemini key.
	geminiKey := v.GetString("gemini_api_key")
	if geminiKey == "" {
		geminiKey = v.GetString("api_key")
	}

	var brokers []string
	for _, b := range strings.Split(v.GetString("kafka_brokers"), ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}

	return &Config{
		Server: ServerConfig{
			Addr:      v.GetString("http_addr"),
			ClientURL: v.GetString("client_url"),
		},
		AI: AIConfig{
			Provider:     strings.ToLower(v.GetString("ai_provider")),
			GeminiAPIKey: geminiKey,
			OpenAIAPIKey: v.GetString("openai_api_key"),
			Model:        v.GetString("ai_model"),
			Timeout:      v.GetDuration("ai_timeout"),
		},
		Preferences: PreferenceConfig{
			Backend:             strings.ToLower(v.GetString("preference_backend")),
			SQLitePath:          v.GetString("sqlite_path"),
			RedisAddr:           v.GetString("redis_addr"),
			RedisPassword:       v.GetString("redis_password"),
			RedisDB:             v.GetInt("redis_db"),
			FirebaseCredentials: v.GetString("firebase_credentials"),
			FirestoreCollection: v.GetString("firestore_collection"),
		},
		Kafka: KafkaConfig{
			Brokers:           brokers,
			TopicNotification: v.GetString("kafka_topic_notifications"),
		},
		Schedule: ScheduleConfig{
			AlertRotationPeriod:  v.GetDuration("alert_rotation_period"),
			MetricDriftPeriod:    v.GetDuration("metric_drift_period"),
			NotificationPeriod:   v.GetDuration("notification_period"),
			NotificationLifetime: v.GetDuration("notification_lifetime"),
			DashboardIdle:        v.GetDuration("dashboard_idle"),
		},
		LogLevel: v.GetString("log_level"),
	}, nil
}
