package engine

import "fmt"

// Shape identifies one of the seven tetrominoes
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// Shapes lists every shape in canonical order
var Shapes = [...]Shape{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}

var shapeNames = [...]string{"I", "O", "T", "S", "Z", "J", "L"}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// Valid reports whether s is one of the seven shapes
func (s Shape) Valid() bool {
	return int(s) < len(Shapes)
}

// Orientation is one of the four rotation states of a tetromino
type Orientation uint8

const (
	OrientationSpawn Orientation = iota
	OrientationRight
	OrientationFlipped
	OrientationLeft
)

var orientationNames = [...]string{"0", "R", "2", "L"}

func (o Orientation) String() string {
	if int(o) < len(orientationNames) {
		return orientationNames[o]
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// Rotate returns the orientation reached by turning r quarter turns
func (o Orientation) Rotate(r Rotation) Orientation {
	return Orientation(((int(o)+int(r))%4 + 4) % 4)
}

// shapeBox is the spawn-orientation layout of a shape inside its bounding box
type shapeBox struct {
	size   int
	blocks [4]Vector
	spawn  Vector
}

// Spawn layouts use the guideline bounding boxes. Spawn origins place every piece in the two
// buffer rows above a 20-row field, centered with a left bias.
var shapeBoxes = [...]shapeBox{
	ShapeI: {size: 4, blocks: [4]Vector{{0, 2}, {1, 2}, {2, 2}, {3, 2}}, spawn: Vector{3, 18}},
	ShapeO: {size: 2, blocks: [4]Vector{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, spawn: Vector{4, 20}},
	ShapeT: {size: 3, blocks: [4]Vector{{0, 1}, {1, 1}, {2, 1}, {1, 2}}, spawn: Vector{3, 19}},
	ShapeS: {size: 3, blocks: [4]Vector{{0, 1}, {1, 1}, {1, 2}, {2, 2}}, spawn: Vector{3, 19}},
	ShapeZ: {size: 3, blocks: [4]Vector{{0, 2}, {1, 2}, {1, 1}, {2, 1}}, spawn: Vector{3, 19}},
	ShapeJ: {size: 3, blocks: [4]Vector{{0, 2}, {0, 1}, {1, 1}, {2, 1}}, spawn: Vector{3, 19}},
	ShapeL: {size: 3, blocks: [4]Vector{{2, 2}, {0, 1}, {1, 1}, {2, 1}}, spawn: Vector{3, 19}},
}

// blockTable maps (shape, orientation) to block offsets relative to the tetromino origin
var blockTable = buildBlockTable()

func buildBlockTable() [len(Shapes)][4][4]Vector {
	var table [len(Shapes)][4][4]Vector
	for _, shape := range Shapes {
		box := shapeBoxes[shape]
		offsets := box.blocks
		for o := range 4 {
			table[shape][o] = offsets
			// clockwise quarter turn inside the box
			for i, v := range offsets {
				offsets[i] = Vector{X: v.Y, Y: box.size - 1 - v.X}
			}
		}
	}
	return table
}

// ShapeOffsets returns the block offsets of a shape in the given orientation
func ShapeOffsets(shape Shape, orientation Orientation) [4]Vector {
	return blockTable[shape][orientation]
}

// SpawnOrigin returns the origin a freshly spawned piece of the given shape starts at
func SpawnOrigin(shape Shape) Vector {
	return shapeBoxes[shape].spawn
}
