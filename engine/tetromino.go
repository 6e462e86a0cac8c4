package engine

// Tetromino is a piece: a shape in one orientation placed at an origin.
// It is a value; transforms return a new Tetromino.
type Tetromino struct {
	Shape       Shape
	Orientation Orientation
	Origin      Vector
}

// Spawn returns a tetromino of the given shape in spawn orientation at its spawn origin
func Spawn(shape Shape) Tetromino {
	return Tetromino{
		Shape:       shape,
		Orientation: OrientationSpawn,
		Origin:      SpawnOrigin(shape),
	}
}

// Blocks returns the four cells the tetromino occupies
func (t Tetromino) Blocks() [4]Block {
	var blocks [4]Block
	for i, v := range blockTable[t.Shape][t.Orientation] {
		blocks[i] = Block{X: t.Origin.X, Y: t.Origin.Y}.Offset(v)
	}
	return blocks
}

// Apply returns the tetromino after the transform, without any collision check
func (t Tetromino) Apply(tr Transform) Tetromino {
	return Tetromino{
		Shape:       t.Shape,
		Orientation: t.Orientation.Rotate(tr.Rotation),
		Origin:      t.Origin.Add(tr.Offset),
	}
}

// Candidates returns the transforms to try, in priority order, when tr is requested.
// A translation has a single candidate. A rotation is tried unkicked first and then composed with
// each SRS kick offset for the transition it causes.
func (t Tetromino) Candidates(tr Transform) []Transform {
	if !tr.IsRotation() {
		return []Transform{tr}
	}

	kicks := Kicks(t.Shape, t.Orientation, t.Orientation.Rotate(tr.Rotation))
	candidates := make([]Transform, 0, len(kicks)+1)
	candidates = append(candidates, tr)
	for _, kick := range kicks {
		candidates = append(candidates, tr.Compose(Translate(kick)))
	}
	return candidates
}
