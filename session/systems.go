package session

import "time"

// Frame is passed to every system once per Session.Once call
type Frame struct {
	DeltaTime float64
	Session   *Session
}

// Elapsed returns the frame duration
func (f *Frame) Elapsed() time.Duration {
	return time.Duration(f.DeltaTime * float64(time.Second))
}

// System is a step of the frame pipeline. Systems change the game through Session.Apply and may
// keep their own state between frames.
type System interface {
	Execute(frame *Frame)
}

// GravitySystem moves the falling piece down Config.Gravity rows per second
type GravitySystem struct {
	Accumulator float64
}

func (s *GravitySystem) Execute(frame *Frame) {
	session := frame.Session
	if !session.Current().HasFallingPiece() {
		s.Accumulator = 0
		return
	}

	s.Accumulator += frame.DeltaTime * session.Config().Gravity
	for s.Accumulator >= 1 {
		s.Accumulator--
		if session.Current().Resting() {
			s.Accumulator = 0
			return
		}
		if err := session.Apply(CommandMoveDown); err != nil {
			return
		}
	}
}

// LockDelaySystem locks the falling piece once it has rested for Config.LockDelay
type LockDelaySystem struct {
	Grounded time.Duration
}

func (s *LockDelaySystem) Execute(frame *Frame) {
	session := frame.Session
	if !session.Current().Resting() {
		s.Grounded = 0
		return
	}

	s.Grounded += frame.Elapsed()
	if s.Grounded < session.Config().LockDelay {
		return
	}

	s.Grounded = 0
	if err := session.Apply(CommandLock); err != nil {
		session.logger.Warn("lock delay expired but piece could not lock", "error", err)
	}
}

// SpawnSystem puts the next piece in play Config.SpawnDelay after the previous one locked.
// A spawn that blocks out ends the session.
type SpawnSystem struct {
	Timer time.Duration
}

func (s *SpawnSystem) Execute(frame *Frame) {
	session := frame.Session
	if session.Over() || session.Current().HasFallingPiece() {
		s.Timer = 0
		return
	}

	s.Timer += frame.Elapsed()
	if s.Timer < session.Config().SpawnDelay {
		return
	}

	s.Timer = 0
	if err := session.Apply(CommandSpawn); err != nil {
		session.logger.Warn("spawn failed", "error", err)
	}
}
