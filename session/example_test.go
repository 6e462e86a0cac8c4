package session_test

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/plus3/tetrion/engine"
	"github.com/plus3/tetrion/session"
)

// ExampleSession drives a game frame by frame. Queued commands run at the start of the next frame,
// then gravity, lock delay and spawning take their turn.
func ExampleSession() {
	cfg := session.DefaultConfig()
	cfg.Seed = 1
	cfg.SpawnDelay = 0

	s, err := session.New(cfg,
		session.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		session.WithGame(engine.New(engine.Bag{})))
	if err != nil {
		panic(err)
	}

	s.Once(0.016)
	p, _ := s.Current().FallingPiece()
	fmt.Printf("falling: %s\n", p.Shape)

	s.Enqueue(session.CommandHardDrop)
	s.Once(0.016)
	p, _ = s.Current().FallingPiece()
	fmt.Printf("falling: %s, locked blocks: %d\n", p.Shape, s.Current().Playfield().Len())

	stats := s.Stats()
	fmt.Printf("frames=%d spawned=%d locked=%d\n", stats.Frames, stats.PiecesSpawned, stats.PiecesLocked)
	for _, system := range stats.Systems {
		fmt.Println(system.Name, system.ExecutionCount)
	}

	// Output:
	// falling: I
	// falling: O, locked blocks: 4
	// frames=2 spawned=2 locked=1
	// GravitySystem 2
	// LockDelaySystem 2
	// SpawnSystem 2
}
