package suite

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
)

const maxWaitDuration = 5 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	// Output collects everything written to the console.
	Output *bytes.Buffer
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Output: &bytes.Buffer{},
	}
}

// Input returns a reader that yields the lines as typed at the console.
func (that *Suite) Input(lines ...string) io.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}

	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// Printed returns the console output collected so far.
func (that *Suite) Printed() string {
	return that.Output.String()
}
