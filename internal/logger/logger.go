package logger

import (
	"os"
	"time"

	"github.com/lshigami/classroom-portal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger. It runs before the config is
// loaded, so it always starts at info level with a console writer.
func Init() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger()
}

// Configure applies the loaded config: structured JSON output in release
// mode and the configured level.
func Configure(cfg *config.Config) {
	if cfg.Server.Mode == "release" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		log.Warn().Str("logLevel", cfg.LogLevel).Msg("Unknown LOG_LEVEL, keeping info")
		return
	}
	zerolog.SetGlobalLevel(level)
}
