// Package session drives an engine.Tetrion through time: it queues player commands, applies gravity,
// lock delay and spawning each frame, detects block out, and keeps a bounded snapshot history
// for undo and replay.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/plus3/tetrion/engine"
)

// Session owns a game in progress. It is not safe for concurrent use, except for Enqueue which
// may be called from any goroutine.
type Session struct {
	cfg    Config
	logger *slog.Logger

	current engine.Tetrion
	history []engine.Tetrion
	over    bool

	mu     sync.Mutex
	queued []Command

	systems     []System
	systemStats []*systemStatsInternal
	stats       Stats
}

// Option customizes a new session
type Option func(*Session)

// WithLogger sets the logger used for game events
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithGame starts the session from an existing snapshot instead of a fresh game
func WithGame(game engine.Tetrion) Option {
	return func(s *Session) {
		s.current = game
	}
}

// WithoutDefaultSystems leaves the system list empty so callers can register their own
func WithoutDefaultSystems() Option {
	return func(s *Session) {
		s.systems = nil
		s.systemStats = nil
	}
}

// New creates a session from configuration. Gravity, lock delay and spawn systems are registered
// in that order unless WithoutDefaultSystems is given.
func New(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		var err error
		if seed, err = NewSeed(); err != nil {
			return nil, err
		}
		cfg.Seed = seed
	}

	s := &Session{
		cfg:     cfg,
		logger:  slog.Default(),
		current: engine.New(engine.NewBag(seed)),
	}
	s.Register(&GravitySystem{})
	s.Register(&LockDelaySystem{})
	s.Register(&SpawnSystem{})

	for _, opt := range opts {
		opt(s)
	}

	s.history = []engine.Tetrion{s.current}
	s.over = s.current.BlockedOut()
	return s, nil
}

// Config returns the session configuration, with the seed actually in use
func (s *Session) Config() Config { return s.cfg }

// Current returns the latest snapshot
func (s *Session) Current() engine.Tetrion { return s.current }

// Over reports whether a spawned piece blocked out
func (s *Session) Over() bool { return s.over }

// History returns the retained snapshots, oldest first. The last one is Current.
func (s *Session) History() []engine.Tetrion {
	return slices.Clone(s.history)
}

// Enqueue queues a command for the next frame
func (s *Session) Enqueue(commands ...Command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queued = append(s.queued, commands...)
}

func (s *Session) drain() []Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	commands := s.queued
	s.queued = nil
	return commands
}

// Apply runs a command immediately. A move the rules reject is not an error; the snapshot simply
// does not change. Commands that need a falling piece fail with engine.ErrNoFallingPiece when
// there is none, and every command fails with ErrGameOver once the game has ended.
func (s *Session) Apply(cmd Command) error {
	if s.over {
		return ErrGameOver
	}
	if int(cmd) >= len(commandFuncs) {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}

	prev := s.current
	if cmd == CommandSpawn {
		if prev.HasFallingPiece() {
			return fmt.Errorf("%s: %w", cmd, ErrPieceInPlay)
		}
		next := prev.Spawn()
		s.stats.PiecesSpawned++
		s.commit(next)

		piece, _ := next.FallingPiece()
		if next.BlockedOut() {
			s.over = true
			s.logger.Info("game over",
				"shape", piece.Shape,
				"pieces", s.stats.PiecesLocked,
				"lines", s.stats.LinesCleared)
			return nil
		}
		s.logger.Debug("spawned piece", "shape", piece.Shape)
		return nil
	}

	if !prev.HasFallingPiece() {
		return fmt.Errorf("%s: %w", cmd, engine.ErrNoFallingPiece)
	}
	if (cmd == CommandLock || cmd == CommandHardDrop) && prev.BlockedOut() {
		return fmt.Errorf("%s: %w", cmd, engine.ErrLockCollision)
	}

	next := cmd.apply(prev)
	if unchanged(prev, next) {
		return nil
	}

	switch cmd {
	case CommandSoftDrop:
		s.stats.SoftDropRows++
	case CommandHardDrop:
		s.stats.HardDrops++
	}

	if !next.HasFallingPiece() {
		piece, _ := prev.FallingPiece()
		s.stats.PiecesLocked++
		s.stats.LinesCleared += int64(next.LastCleared())
		s.logger.Debug("locked piece",
			"shape", piece.Shape,
			"orientation", piece.Orientation,
			"x", piece.Origin.X,
			"y", piece.Origin.Y,
			"cleared", next.LastCleared())
	}

	s.commit(next)
	return nil
}

// unchanged reports whether a transform was rejected
func unchanged(prev, next engine.Tetrion) bool {
	a, aok := prev.FallingPiece()
	b, bok := next.FallingPiece()
	return aok == bok && a == b
}

func (s *Session) commit(next engine.Tetrion) {
	s.current = next
	s.history = append(s.history, next)
	if over := len(s.history) - s.cfg.HistoryLimit; over > 0 {
		s.history = slices.Delete(s.history, 0, over)
	}
}

// Undo reverts to the previous snapshot
func (s *Session) Undo() error {
	if len(s.history) < 2 {
		return ErrNothingToUndo
	}
	s.history = s.history[:len(s.history)-1]
	s.current = s.history[len(s.history)-1]
	s.over = s.current.BlockedOut()
	return nil
}

// Register appends a system to the frame pipeline
func (s *Session) Register(system System) {
	s.systems = append(s.systems, system)
	s.systemStats = append(s.systemStats, newSystemStats(system))
}

// Once runs a single frame of dt seconds: queued commands first, in order, then every system.
func (s *Session) Once(dt float64) {
	if s.over {
		return
	}
	s.stats.Frames++

	for _, cmd := range s.drain() {
		if err := s.Apply(cmd); err != nil {
			s.logger.Debug("dropped command", "command", cmd, "error", err)
		}
	}

	frame := &Frame{DeltaTime: dt, Session: s}
	for i, system := range s.systems {
		if s.over {
			break
		}
		start := time.Now()
		system.Execute(frame)
		s.systemStats[i].record(time.Since(start))
	}
}

// Run executes frames at the given interval until the context is cancelled or the game ends.
// It returns ErrGameOver when the game ended and the context error otherwise.
func (s *Session) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
			if s.over {
				return ErrGameOver
			}
		}
	}
}
