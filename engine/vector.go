package engine

// Vector is a displacement in playfield space. Y grows upward.
type Vector struct {
	X, Y int
}

// Add returns the sum of two vectors
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Neg returns the vector pointing the other way
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Rotation is a number of quarter turns. Positive values turn clockwise.
type Rotation int

const (
	RotateNone Rotation = 0
	RotateCW   Rotation = 1
	RotateCCW  Rotation = -1
)

// Transform describes a change applied to a tetromino: a rotation followed by a translation.
// A pure translation has Rotation == RotateNone. A rotation composed with an offset is how a
// wall kick candidate is expressed.
type Transform struct {
	Offset   Vector
	Rotation Rotation
}

var (
	MoveLeft  = Transform{Offset: Vector{X: -1}}
	MoveRight = Transform{Offset: Vector{X: 1}}
	MoveDown  = Transform{Offset: Vector{Y: -1}}

	RotateLeftTransform  = Transform{Rotation: RotateCCW}
	RotateRightTransform = Transform{Rotation: RotateCW}
)

// Translate returns a pure translation by v
func Translate(v Vector) Transform {
	return Transform{Offset: v}
}

// Compose returns the transform equivalent to applying t and then o.
// Rotation acts on the orientation and translation on the origin, so the two commute.
func (t Transform) Compose(o Transform) Transform {
	return Transform{
		Offset:   t.Offset.Add(o.Offset),
		Rotation: t.Rotation + o.Rotation,
	}
}

// IsRotation reports whether the transform changes orientation
func (t Transform) IsRotation() bool {
	return t.Rotation%4 != 0
}
