package session_test

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/plus3/tetrion/engine"
	"github.com/plus3/tetrion/session"
	"github.com/stretchr/testify/require"
)

// testConfig has no gravity and no delays so tests drive every step explicitly
func testConfig() session.Config {
	return session.Config{
		Gravity:      0,
		LockDelay:    0,
		SpawnDelay:   0,
		Seed:         1,
		HistoryLimit: 1024,
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// orderedBag deals the given shapes first in every cycle, the rest in canonical order
func orderedBag(first ...engine.Shape) engine.Bag {
	order := append([]engine.Shape{}, first...)
	for _, s := range engine.Shapes {
		seen := false
		for _, f := range first {
			seen = seen || f == s
		}
		if !seen {
			order = append(order, s)
		}
	}
	return engine.NewBagWithShuffler(func(cycle uint64, shapes []engine.Shape) {
		copy(shapes, order)
	})
}

func newSession(t *testing.T, cfg session.Config, opts ...session.Option) *session.Session {
	t.Helper()
	opts = append([]session.Option{session.WithLogger(quietLogger())}, opts...)
	s, err := session.New(cfg, opts...)
	require.NoError(t, err)
	return s
}

func fieldWith(t *testing.T, blocks ...engine.Block) engine.Playfield {
	t.Helper()
	locked := make([]engine.LockedBlock, 0, len(blocks))
	for _, b := range blocks {
		locked = append(locked, engine.LockedBlock{Block: b, Shape: engine.ShapeZ})
	}
	field, err := engine.NewPlayfield(locked...)
	require.NoError(t, err)
	return field
}

func piece(t *testing.T, s *session.Session) engine.Tetromino {
	t.Helper()
	p, ok := s.Current().FallingPiece()
	require.True(t, ok, "expected a falling piece")
	return p
}
