package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	TaskStore      TaskStoreConfig
	GoogleCalendar GoogleCalendarConfig
	Scheduler      SchedulerConfig
	RateLimit      RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// TaskStoreConfig points at the dashboard backend that owns tasks and ventures.
type TaskStoreConfig struct {
	URL         string
	AccessToken string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// SchedulerConfig holds the scheduling core's tunables.
type SchedulerConfig struct {
	Timezone           string
	VentureCacheTTLMin int
	SessionTTLMin      int
	SessionCapacity    int
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.TaskStore.URL = viper.GetString("task_store.url")
	cfg.TaskStore.AccessToken = viper.GetString("task_store.access_token")
	if storeURL := viper.GetString("task_store_url"); storeURL != "" {
		cfg.TaskStore.URL = storeURL
	}
	if storeToken := viper.GetString("task_store_access_token"); storeToken != "" {
		cfg.TaskStore.AccessToken = storeToken
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Scheduler.Timezone = viper.GetString("scheduler.timezone")
	cfg.Scheduler.VentureCacheTTLMin = viper.GetInt("scheduler.venture_cache_ttl_min")
	cfg.Scheduler.SessionTTLMin = viper.GetInt("scheduler.session_ttl_min")
	cfg.Scheduler.SessionCapacity = viper.GetInt("scheduler.session_capacity")

	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	if cfg.TaskStore.URL == "" {
		return nil, fmt.Errorf("task_store.url is required")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("scheduler.timezone", "UTC")
	viper.SetDefault("scheduler.venture_cache_ttl_min", 10)
	viper.SetDefault("scheduler.session_ttl_min", 30)
	viper.SetDefault("scheduler.session_capacity", 128)
	viper.SetDefault("rate_limit.requests_per_min", 120)
}
