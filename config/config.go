package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Shift Calendar Sync specifics
	Roster RosterConfig
	Google GoogleConfig

	// Rate limiting
	RateLimit RateLimitConfig
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

// RosterConfig points at the upstream scheduling service. Credentials
// are only needed by the one-shot sync script; the server receives
// them per-request via POST /login.
type RosterConfig struct {
	BaseURL  string
	Company  string
	Username string
	Password string
	StateDir string
}

type GoogleConfig struct {
	ClientID        string
	ClientSecret    string
	RedirectURI     string
	CalendarID      string
	CredentialsPath string
	TokenDir        string
	Timezone        string
	DashboardURL    string
}

type RateLimitConfig struct {
	PerMin int
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

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Roster service
	cfg.Roster.BaseURL = viper.GetString("roster.base_url")
	cfg.Roster.Company = viper.GetString("roster.company")
	cfg.Roster.Username = viper.GetString("roster.username")
	cfg.Roster.Password = viper.GetString("roster.password")
	cfg.Roster.StateDir = viper.GetString("roster.state_dir")
	if company := viper.GetString("roster_company"); company != "" {
		cfg.Roster.Company = company
	}
	if username := viper.GetString("roster_username"); username != "" {
		cfg.Roster.Username = username
	}
	if password := viper.GetString("roster_password"); password != "" {
		cfg.Roster.Password = password
	}

	// Google Calendar
	cfg.Google.ClientID = viper.GetString("google.client_id")
	cfg.Google.ClientSecret = viper.GetString("google.client_secret")
	cfg.Google.RedirectURI = viper.GetString("google.redirect_uri")
	cfg.Google.CalendarID = viper.GetString("google.calendar_id")
	cfg.Google.CredentialsPath = viper.GetString("google.credentials_path")
	cfg.Google.TokenDir = viper.GetString("google.token_dir")
	cfg.Google.Timezone = viper.GetString("google.timezone")
	cfg.Google.DashboardURL = viper.GetString("google.dashboard_url")
	if clientID := viper.GetString("google_client_id"); clientID != "" {
		cfg.Google.ClientID = clientID
	}
	if clientSecret := viper.GetString("google_client_secret"); clientSecret != "" {
		cfg.Google.ClientSecret = clientSecret
	}
	if creds := viper.GetString("google_credentials_path"); creds != "" {
		cfg.Google.CredentialsPath = creds
	}

	// Rate limiting
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

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
	viper.SetDefault("roster.base_url", "https://app.shiftorganizer.com")
	viper.SetDefault("roster.state_dir", ".state")
	viper.SetDefault("google.calendar_id", "primary")
	viper.SetDefault("google.token_dir", ".tokens")
	viper.SetDefault("google.timezone", "Asia/Jerusalem")
	viper.SetDefault("google.redirect_uri", "http://localhost:8080/auth/callback")
	viper.SetDefault("google.dashboard_url", "http://localhost:3000/dashboard")
	viper.SetDefault("rate_limit.per_min", 120)
}
