package engine

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/kamstrup/intmap"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 20
	DefaultBuffer = 2

	// MaxDimension bounds width and height+buffer so coordinates fit a block key
	MaxDimension = 1 << 16
)

// LockedBlock is a playfield cell together with the shape that locked there
type LockedBlock struct {
	Block
	Shape Shape
}

// Playfield is the grid of locked blocks. Rows [0, Height) are visible and the Buffer rows above
// them hold freshly spawned pieces. A Playfield is never modified once built; Lock returns a new one.
type Playfield struct {
	width  int
	height int
	buffer int
	cells  *intmap.Map[blockKey, Shape]
}

// EmptyPlayfield returns a standard 10x20 playfield with two buffer rows and nothing locked
func EmptyPlayfield() Playfield {
	return Playfield{
		width:  DefaultWidth,
		height: DefaultHeight,
		buffer: DefaultBuffer,
	}
}

// NewPlayfield returns a standard-size playfield pre-filled with the given blocks
func NewPlayfield(blocks ...LockedBlock) (Playfield, error) {
	return NewPlayfieldSize(DefaultWidth, DefaultHeight, DefaultBuffer, blocks...)
}

// NewPlayfieldSize returns a playfield of arbitrary dimensions pre-filled with the given blocks
func NewPlayfieldSize(width, height, buffer int, blocks ...LockedBlock) (Playfield, error) {
	if width <= 0 || height <= 0 || buffer < 0 || width > MaxDimension || height+buffer > MaxDimension {
		return Playfield{}, fmt.Errorf("invalid playfield size %dx%d+%d", width, height, buffer)
	}

	p := Playfield{width: width, height: height, buffer: buffer}
	if len(blocks) == 0 {
		return p, nil
	}

	p.cells = intmap.New[blockKey, Shape](len(blocks))
	for _, b := range blocks {
		if !p.InBounds(b.Block) {
			return Playfield{}, fmt.Errorf("block (%d,%d): %w", b.X, b.Y, ErrOutOfBounds)
		}
		if _, added := p.cells.PutIfNotExists(keyOf(b.Block), b.Shape); !added {
			return Playfield{}, fmt.Errorf("block (%d,%d): %w", b.X, b.Y, ErrDuplicateBlock)
		}
	}
	return p, nil
}

func (p Playfield) Width() int  { return p.width }
func (p Playfield) Height() int { return p.height }
func (p Playfield) Buffer() int { return p.buffer }

// Rows is the total number of rows including the buffer
func (p Playfield) Rows() int { return p.height + p.buffer }

// Len returns the number of locked blocks
func (p Playfield) Len() int {
	return p.cells.Len()
}

// InBounds reports whether b lies inside the grid, buffer rows included
func (p Playfield) InBounds(b Block) bool {
	return b.X >= 0 && b.X < p.width && b.Y >= 0 && b.Y < p.Rows()
}

// Occupied reports whether a locked block sits at b
func (p Playfield) Occupied(b Block) bool {
	return p.InBounds(b) && p.cells.Has(keyOf(b))
}

// ShapeAt returns the shape that locked at b, if any
func (p Playfield) ShapeAt(b Block) (Shape, bool) {
	if !p.InBounds(b) {
		return 0, false
	}
	return p.cells.Get(keyOf(b))
}

// Collides reports whether any of the blocks is out of bounds or overlaps a locked block
func (p Playfield) Collides(blocks []Block) bool {
	for _, b := range blocks {
		if !p.InBounds(b) || p.cells.Has(keyOf(b)) {
			return true
		}
	}
	return false
}

// Blocks returns every locked block ordered by row, then column
func (p Playfield) Blocks() []LockedBlock {
	blocks := make([]LockedBlock, 0, p.cells.Len())
	for k, shape := range p.cells.All() {
		blocks = append(blocks, LockedBlock{Block: k.Block(), Shape: shape})
	}
	slices.SortFunc(blocks, func(a, b LockedBlock) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return blocks
}

// RowCount returns how many cells of row y are occupied
func (p Playfield) RowCount(y int) int {
	count := 0
	for x := range p.width {
		if p.Occupied(Block{X: x, Y: y}) {
			count++
		}
	}
	return count
}

// Lock merges blocks tagged with shape into the playfield, then removes every complete visible row
// and drops the rows above by the number of removed rows beneath them.
// It returns the new playfield and the indices of the cleared rows in ascending order.
// Blocks that overlap the playfield fail with ErrLockCollision, a block listed twice with
// ErrDuplicateBlock.
func (p Playfield) Lock(blocks []Block, shape Shape) (Playfield, []int, error) {
	if p.Collides(blocks) {
		return p, nil, ErrLockCollision
	}

	merged := intmap.New[blockKey, Shape](p.cells.Len() + len(blocks))
	rowCounts := make([]int, p.Rows())
	for k, s := range p.cells.All() {
		merged.Put(k, s)
		rowCounts[k.Block().Y]++
	}
	for _, b := range blocks {
		if _, added := merged.PutIfNotExists(keyOf(b), shape); !added {
			return p, nil, fmt.Errorf("block (%d,%d): %w", b.X, b.Y, ErrDuplicateBlock)
		}
		rowCounts[b.Y]++
	}

	var cleared []int
	for y := range p.height {
		if rowCounts[y] == p.width {
			cleared = append(cleared, y)
		}
	}

	next := Playfield{width: p.width, height: p.height, buffer: p.buffer, cells: merged}
	if len(cleared) == 0 {
		return next, nil, nil
	}

	// below[y] is the number of cleared rows under row y
	below := make([]int, p.Rows())
	full := make([]bool, p.Rows())
	for _, y := range cleared {
		full[y] = true
	}
	count := 0
	for y := range p.Rows() {
		below[y] = count
		if full[y] {
			count++
		}
	}

	compacted := intmap.New[blockKey, Shape](merged.Len())
	for k, s := range merged.All() {
		b := k.Block()
		if full[b.Y] {
			continue
		}
		compacted.Put(keyOf(Block{X: b.X, Y: b.Y - below[b.Y]}), s)
	}

	next.cells = compacted
	return next, cleared, nil
}
