package engine

// transition is a rotation between two orientations
type transition struct {
	from, to Orientation
}

// Kick offsets from the Super Rotation System, in the order they are tried. The unkicked rotation
// is always tried first and is not listed. Y grows upward.
var jlstzKicks = map[transition][]Vector{
	{OrientationSpawn, OrientationRight}:   {{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{OrientationRight, OrientationSpawn}:   {{1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{OrientationRight, OrientationFlipped}: {{1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{OrientationFlipped, OrientationRight}: {{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{OrientationFlipped, OrientationLeft}:  {{1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{OrientationLeft, OrientationFlipped}:  {{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{OrientationLeft, OrientationSpawn}:    {{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{OrientationSpawn, OrientationLeft}:    {{1, 0}, {1, 1}, {0, -2}, {1, -2}},
}

var iKicks = map[transition][]Vector{
	{OrientationSpawn, OrientationRight}:   {{-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{OrientationRight, OrientationSpawn}:   {{2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{OrientationRight, OrientationFlipped}: {{-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	{OrientationFlipped, OrientationRight}: {{1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{OrientationFlipped, OrientationLeft}:  {{2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{OrientationLeft, OrientationFlipped}:  {{-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{OrientationLeft, OrientationSpawn}:    {{1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{OrientationSpawn, OrientationLeft}:    {{-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
}

// Kicks returns the ordered wall kick offsets for rotating shape from one orientation to another.
// The O piece never kicks, and neither does any transition that is not a single quarter turn.
// The returned slice is shared and must not be modified.
func Kicks(shape Shape, from, to Orientation) []Vector {
	switch shape {
	case ShapeO:
		return nil
	case ShapeI:
		return iKicks[transition{from, to}]
	default:
		return jlstzKicks[transition{from, to}]
	}
}
