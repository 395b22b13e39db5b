package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe/transport/gui"
	"github.com/rocketscienceinc/tictactoe/transport/terminal"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameController := tictactoe.NewGameController(logger)
	log.Info("Match started", "match_id", gameController.State().MatchID, "frontend", conf.Frontend)

	switch conf.Frontend {
	case config.FrontendTerminal:
		console := terminal.New(logger, gameController, os.Stdin, os.Stdout, conf.Terminal.Plain)
		gameController.Subscribe(console)

		if err := console.Run(ctx); err != nil {
			return fmt.Errorf("terminal error: %w", err)
		}
	case config.FrontendGUI:
		window := gui.New(logger, gameController, conf.Window)
		gameController.Subscribe(window)

		if err := window.Run(); err != nil {
			return fmt.Errorf("window error: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", config.ErrUnknownFrontend, conf.Frontend)
	}

	log.Info("Application stopped")

	return nil
}
