package engine_test

import (
	"strings"
	"testing"

	"github.com/plus3/tetrion/engine"
	"github.com/stretchr/testify/require"
)

var shapeByRune = map[rune]engine.Shape{
	'#': engine.ShapeI,
	'I': engine.ShapeI,
	'O': engine.ShapeO,
	'T': engine.ShapeT,
	'S': engine.ShapeS,
	'Z': engine.ShapeZ,
	'J': engine.ShapeJ,
	'L': engine.ShapeL,
}

// parseField builds a standard playfield from rows drawn top to bottom; the last row is y=0.
// '.' is empty, '#' or a shape letter is a locked block.
func parseField(t testing.TB, rows ...string) engine.Playfield {
	t.Helper()

	var blocks []engine.LockedBlock
	for i, row := range rows {
		y := len(rows) - 1 - i
		for x, r := range strings.ReplaceAll(row, " ", "") {
			if r == '.' {
				continue
			}
			shape, ok := shapeByRune[r]
			require.Truef(t, ok, "unknown cell %q", r)
			blocks = append(blocks, engine.LockedBlock{Block: engine.Block{X: x, Y: y}, Shape: shape})
		}
	}

	field, err := engine.NewPlayfield(blocks...)
	require.NoError(t, err)
	return field
}

// fixedOrder returns a shuffler that deals shapes in the given order every cycle
func fixedOrder(order ...engine.Shape) engine.Shuffler {
	return func(cycle uint64, shapes []engine.Shape) {
		copy(shapes, order)
	}
}

// bagStartingWith returns a bag whose first shape is first, followed by the remaining shapes in
// canonical order
func bagStartingWith(first engine.Shape) engine.Bag {
	order := []engine.Shape{first}
	for _, s := range engine.Shapes {
		if s != first {
			order = append(order, s)
		}
	}
	return engine.NewBagWithShuffler(fixedOrder(order...))
}

func blocksOf(piece engine.Tetromino) []engine.Block {
	blocks := piece.Blocks()
	return blocks[:]
}

func falling(t testing.TB, game engine.Tetrion) engine.Tetromino {
	t.Helper()
	piece, ok := game.FallingPiece()
	require.True(t, ok, "expected a falling piece")
	return piece
}
