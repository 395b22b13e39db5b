package suite

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Controller *tictactoe.GameController
	Events     *Recorder
}

// New builds a fresh controller with a recording listener attached.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	recorder := &Recorder{}
	controller := tictactoe.NewGameController(logger, recorder)

	return ctx, &Suite{
		T:          t,
		Logger:     logger,
		Controller: controller,
		Events:     recorder,
	}
}

// Recorder is a listener that keeps every event it receives.
type Recorder struct {
	mu     sync.Mutex
	events []tictactoe.Event
}

func (that *Recorder) Notify(event tictactoe.Event) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.events = append(that.events, event)
}

func (that *Recorder) All() []tictactoe.Event {
	that.mu.Lock()
	defer that.mu.Unlock()

	events := make([]tictactoe.Event, len(that.events))
	copy(events, that.events)

	return events
}

// Last returns the most recent event or nil.
func (that *Recorder) Last() tictactoe.Event {
	that.mu.Lock()
	defer that.mu.Unlock()

	if len(that.events) == 0 {
		return nil
	}
	return that.events[len(that.events)-1]
}
