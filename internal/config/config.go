package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	FrontendGUI      = "gui"
	FrontendTerminal = "terminal"
)

var ErrUnknownFrontend = errors.New("unknown frontend")

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Frontend string   `yaml:"frontend" env:"TICTACTOE_FRONTEND" env-default:"gui"`
	Window   Window   `yaml:"window"`
	Terminal Terminal `yaml:"terminal"`
}

type Window struct {
	Title        string        `yaml:"title" env:"TICTACTOE_WINDOW_TITLE" env-default:"Tic-Tac-Toe"`
	CellSize     int           `yaml:"cell-size" env:"TICTACTOE_CELL_SIZE" env-default:"200"`
	WinAnimation time.Duration `yaml:"win-animation" env:"TICTACTOE_WIN_ANIMATION" env-default:"1s"`
}

type Terminal struct {
	// Plain disables colors and text styles.
	Plain bool `yaml:"plain" env:"TICTACTOE_PLAIN"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads path with environment overrides. A missing file falls back to the environment and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read env: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to stat config: %w", err)
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Frontend {
	case FrontendGUI, FrontendTerminal:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFrontend, that.Frontend)
	}

	if that.Window.CellSize <= 0 {
		return fmt.Errorf("invalid cell size: %d", that.Window.CellSize)
	}

	return nil
}
