package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Database   Database
	Auth       Auth
	CodeRunner CodeRunner
	LogLevel   string
}

type Server struct {
	Port             string
	Mode             string
	CORSAllowOrigins []string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type Auth struct {
	JWTSecret string
}

// CodeRunner selects and configures the remote code execution provider.
type CodeRunner struct {
	Provider            string // "jdoodle" or "gemini"
	Timeout             time.Duration
	JDoodleClientID     string
	JDoodleClientSecret string
	JDoodleEndpoint     string
	GeminiApiKey        string
	GeminiModel         string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("CODE_RUNNER", "jdoodle")
	viper.SetDefault("CODE_RUNNER_TIMEOUT", "15s")
	viper.SetDefault("JDOODLE_ENDPOINT", "https://api.jdoodle.com/v1/execute")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.Mode = viper.GetString("GIN_MODE")
	config.Server.CORSAllowOrigins = splitCSV(viper.GetString("CORS_ALLOW_ORIGINS"))
	config.LogLevel = viper.GetString("LOG_LEVEL")

	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")

	config.CodeRunner.Provider = strings.ToLower(viper.GetString("CODE_RUNNER"))
	config.CodeRunner.Timeout = viper.GetDuration("CODE_RUNNER_TIMEOUT")
	config.CodeRunner.JDoodleClientID = viper.GetString("JDOODLE_CLIENT_ID")
	config.CodeRunner.JDoodleClientSecret = viper.GetString("JDOODLE_CLIENT_SECRET")
	config.CodeRunner.JDoodleEndpoint = viper.GetString("JDOODLE_ENDPOINT")
	config.CodeRunner.GeminiApiKey = viper.GetString("GEMINI_API_KEY")
	config.CodeRunner.GeminiModel = viper.GetString("GEMINI_MODEL")

	if config.Auth.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is not set. Every authenticated request will be rejected.")
	}

	log.Info().
		Str("port", config.Server.Port).
		Str("mode", config.Server.Mode).
		Str("databaseHost", config.Database.Host).
		Str("databaseName", config.Database.Name).
		Str("codeRunner", config.CodeRunner.Provider).
		Msg("Config loaded")
	return &config, nil
}

// DSN builds the postgres connection string for gorm.
func (d Database) DSN() string {
	return "host=" + d.Host +
		" user=" + d.User +
		" password=" + d.Password +
		" dbname=" + d.Name +
		" port=" + d.Port +
		" sslmode=" + d.SSLMode +
		" TimeZone=UTC"
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
