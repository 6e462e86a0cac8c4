package engine

// Collide reports whether the piece overlaps a locked block or leaves the playfield
func Collide(piece Tetromino, playfield Playfield) bool {
	blocks := piece.Blocks()
	return playfield.Collides(blocks[:])
}

// Drop moves the piece down until the next step would collide and returns the resting piece.
// A piece that already collides is returned unchanged.
func Drop(piece Tetromino, playfield Playfield) Tetromino {
	if Collide(piece, playfield) {
		return piece
	}
	for {
		next := piece.Apply(MoveDown)
		if Collide(next, playfield) {
			return piece
		}
		piece = next
	}
}

// Resting reports whether the piece cannot move down any further
func Resting(piece Tetromino, playfield Playfield) bool {
	return Collide(piece.Apply(MoveDown), playfield)
}
