// Package engine implements the rules of a falling-block puzzle game as pure state transitions.
//
// A Tetrion is an immutable snapshot of the whole game: the bag, the playfield, and the falling
// piece with its ghost projection. Every command returns a new Tetrion; a command the rules reject
// returns the receiver unchanged. Issuing a piece command while nothing is falling, or locking a
// piece that overlaps the playfield, is a programming error and panics.
package engine

import "fmt"

// Tetrion is the game state. It is a value: copies share nothing mutable.
type Tetrion struct {
	bag         Bag
	playfield   Playfield
	falling     *Tetromino
	ghost       *Tetromino
	lastCleared int
}

// New returns a game with an empty playfield, the given bag and no falling piece
func New(bag Bag) Tetrion {
	return NewWithPlayfield(bag, EmptyPlayfield())
}

// NewWithPlayfield returns a game starting from a prepared playfield
func NewWithPlayfield(bag Bag, playfield Playfield) Tetrion {
	return Tetrion{bag: bag, playfield: playfield}
}

func (t Tetrion) Bag() Bag             { return t.bag }
func (t Tetrion) Playfield() Playfield { return t.playfield }

// LastCleared returns the number of rows cleared by the lock that produced this snapshot
func (t Tetrion) LastCleared() int { return t.lastCleared }

// HasFallingPiece reports whether a piece is in play
func (t Tetrion) HasFallingPiece() bool { return t.falling != nil }

// FallingPiece returns the piece in play
func (t Tetrion) FallingPiece() (Tetromino, bool) {
	if t.falling == nil {
		return Tetromino{}, false
	}
	return *t.falling, true
}

// GhostPiece returns where the falling piece would come to rest
func (t Tetrion) GhostPiece() (Tetromino, bool) {
	if t.ghost == nil {
		return Tetromino{}, false
	}
	return *t.ghost, true
}

// BlockedOut reports whether the falling piece overlaps the playfield, which after a spawn means
// the game is over
func (t Tetrion) BlockedOut() bool {
	return t.falling != nil && Collide(*t.falling, t.playfield)
}

// Resting reports whether the falling piece sits on the floor or on locked blocks
func (t Tetrion) Resting() bool {
	return t.falling != nil && Resting(*t.falling, t.playfield)
}

// WithFallingPiece returns the game with piece in play and its ghost recomputed. The piece is not
// checked for collision.
func (t Tetrion) WithFallingPiece(piece Tetromino) Tetrion {
	return t.withFalling(piece)
}

func (t Tetrion) withBag(bag Bag) Tetrion {
	t.bag = bag
	return t
}

func (t Tetrion) withPlayfield(playfield Playfield, cleared int) Tetrion {
	t.playfield = playfield
	t.lastCleared = cleared
	return t
}

// withFalling places piece in play and recomputes its ghost
func (t Tetrion) withFalling(piece Tetromino) Tetrion {
	ghost := Drop(piece, t.playfield)
	t.falling = &piece
	t.ghost = &ghost
	t.lastCleared = 0
	return t
}

func (t Tetrion) withoutFalling() Tetrion {
	t.falling = nil
	t.ghost = nil
	return t
}

func (t Tetrion) mustFalling(op string) Tetromino {
	if t.falling == nil {
		panic(fmt.Errorf("engine: %s: %w", op, ErrNoFallingPiece))
	}
	return *t.falling
}

// Spawn draws the next shape from the bag and puts it in play at its spawn position.
// It does not check for block out; see BlockedOut.
func (t Tetrion) Spawn() Tetrion {
	shape, bag := t.bag.Draw()
	return t.withBag(bag).withFalling(Spawn(shape))
}

// Transform applies tr to the falling piece using the first candidate that does not collide.
// If every candidate collides the receiver is returned unchanged.
func (t Tetrion) Transform(tr Transform) Tetrion {
	piece := t.mustFalling("transform")
	for _, candidate := range piece.Candidates(tr) {
		next := piece.Apply(candidate)
		if !Collide(next, t.playfield) {
			return t.withFalling(next)
		}
	}
	return t
}

func (t Tetrion) MoveLeft() Tetrion  { return t.Transform(MoveLeft) }
func (t Tetrion) MoveRight() Tetrion { return t.Transform(MoveRight) }
func (t Tetrion) MoveDown() Tetrion  { return t.Transform(MoveDown) }

// SoftDrop moves the falling piece down one row. It only differs from MoveDown for callers that
// score or record it separately.
func (t Tetrion) SoftDrop() Tetrion { return t.Transform(MoveDown) }

func (t Tetrion) RotateLeft() Tetrion  { return t.Transform(RotateLeftTransform) }
func (t Tetrion) RotateRight() Tetrion { return t.Transform(RotateRightTransform) }

// FirmDrop moves the falling piece to its resting row without locking it
func (t Tetrion) FirmDrop() Tetrion {
	piece := t.mustFalling("firm drop")
	return t.withFalling(Drop(piece, t.playfield))
}

// HardDrop moves the falling piece to its resting row and locks it
func (t Tetrion) HardDrop() Tetrion {
	return t.FirmDrop().Lock()
}

// Lock merges the falling piece into the playfield wherever it currently is and clears complete
// rows. Locking a piece that overlaps the playfield panics.
func (t Tetrion) Lock() Tetrion {
	piece := t.mustFalling("lock")
	blocks := piece.Blocks()
	playfield, cleared, err := t.playfield.Lock(blocks[:], piece.Shape)
	if err != nil {
		panic(fmt.Errorf("engine: lock %s at (%d,%d): %w", piece.Shape, piece.Origin.X, piece.Origin.Y, err))
	}
	return t.withPlayfield(playfield, len(cleared)).withoutFalling()
}
