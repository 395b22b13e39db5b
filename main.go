package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	app "github.com/rocketscienceinc/tictactoe/internal"
	"github.com/rocketscienceinc/tictactoe/internal/config"
)

const defaultConfigPath = "./config.yml"

// main loads the config, builds the logger and runs the selected front end until it exits.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", defaultConfigPath, "path to the YAML config file")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	logger := newLogger(conf.LogLevel).With("frontend", conf.Frontend)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// newLogger writes JSON to stderr so the terminal front end keeps stdout for the board.
// Unknown levels fall back to info.
func newLogger(levelName string) *slog.Logger {
	var level slog.Level
	levelErr := level.UnmarshalText([]byte(levelName))

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if levelErr != nil {
		logger.Warn("unknown log level, using info", "log_level", levelName)
	}

	return logger
}
