package engine

import "errors"

var (
	// ErrNoFallingPiece is raised when a piece command is issued while nothing is falling
	ErrNoFallingPiece = errors.New("no falling piece")
	// ErrLockCollision is raised when locking a piece that overlaps the playfield
	ErrLockCollision  = errors.New("falling piece collides with playfield")
	ErrOutOfBounds    = errors.New("block out of bounds")
	ErrDuplicateBlock = errors.New("duplicate block")
)
