package engine_test

import (
	"testing"

	"github.com/plus3/tetrion/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTetrion(t *testing.T) {
	game := engine.New(engine.NewBag(1))

	assert.False(t, game.HasFallingPiece())
	_, ok := game.GhostPiece()
	assert.False(t, ok)
	assert.Equal(t, 0, game.Playfield().Len())
	assert.False(t, game.BlockedOut())
}

func TestSpawn(t *testing.T) {
	bag := engine.NewBag(9)
	expected, _ := bag.Draw()

	game := engine.New(bag).Spawn()
	piece := falling(t, game)

	assert.Equal(t, expected, piece.Shape)
	assert.Equal(t, engine.Spawn(expected), piece)
	assert.Equal(t, 6, game.Bag().Remaining())

	ghost, ok := game.GhostPiece()
	require.True(t, ok)
	assert.Equal(t, engine.Drop(piece, game.Playfield()), ghost)
}

func TestMoveLeftToTheWall(t *testing.T) {
	game := engine.New(bagStartingWith(engine.ShapeI)).Spawn()
	assert.ElementsMatch(t,
		[]engine.Block{{X: 3, Y: 20}, {X: 4, Y: 20}, {X: 5, Y: 20}, {X: 6, Y: 20}},
		blocksOf(falling(t, game)))

	for range 9 {
		game = game.MoveLeft()
	}
	atWall := falling(t, game)
	assert.ElementsMatch(t,
		[]engine.Block{{X: 0, Y: 20}, {X: 1, Y: 20}, {X: 2, Y: 20}, {X: 3, Y: 20}},
		blocksOf(atWall))

	game = game.MoveLeft()
	assert.Equal(t, atWall, falling(t, game), "tenth move must be rejected")
}

func TestMoveRightIsBounded(t *testing.T) {
	game := engine.New(bagStartingWith(engine.ShapeO)).Spawn()

	for range 4 {
		game = game.MoveRight()
	}
	atWall := falling(t, game)
	assert.ElementsMatch(t,
		[]engine.Block{{X: 8, Y: 20}, {X: 9, Y: 20}, {X: 8, Y: 21}, {X: 9, Y: 21}},
		blocksOf(atWall))

	assert.Equal(t, atWall, falling(t, game.MoveRight()))
}

func TestMoveDownAndSoftDrop(t *testing.T) {
	game := engine.New(bagStartingWith(engine.ShapeT)).Spawn()

	down := falling(t, game.MoveDown())
	soft := falling(t, game.SoftDrop())
	assert.Equal(t, down, soft)
	assert.Equal(t, 18, down.Origin.Y)

	// the ghost does not move when the piece only falls
	before, _ := game.GhostPiece()
	after, _ := game.MoveDown().GhostPiece()
	assert.Equal(t, before, after)
}

func TestRotate(t *testing.T) {
	game := engine.New(bagStartingWith(engine.ShapeT)).Spawn()

	right := falling(t, game.RotateRight())
	assert.Equal(t, engine.OrientationRight, right.Orientation)
	assert.Equal(t, engine.SpawnOrigin(engine.ShapeT), right.Origin, "free rotation is unkicked")

	left := falling(t, game.RotateLeft())
	assert.Equal(t, engine.OrientationLeft, left.Orientation)

	back := falling(t, game.RotateRight().RotateLeft())
	assert.Equal(t, falling(t, game), back)
}

func TestWallKickAgainstLeftWall(t *testing.T) {
	game := engine.New(bagStartingWith(engine.ShapeT)).Spawn().RotateRight()
	for range 5 {
		game = game.MoveLeft()
	}
	piece := falling(t, game)
	require.Equal(t, engine.Vector{X: -1, Y: 19}, piece.Origin, "vertical T hugs the wall")

	// rotating back to spawn without a kick would push a block through the wall
	unkicked := piece.Apply(engine.RotateLeftTransform)
	require.True(t, engine.Collide(unkicked, game.Playfield()))

	rotated := falling(t, game.RotateLeft())
	assert.Equal(t, engine.OrientationSpawn, rotated.Orientation)
	assert.Equal(t, engine.Vector{X: 0, Y: 19}, rotated.Origin, "first R->0 kick is (+1, 0)")
}

func TestWallKickOrder(t *testing.T) {
	piece := engine.Tetromino{Shape: engine.ShapeT, Origin: engine.Vector{X: 4, Y: 0}}

	t.Run("first working kick wins", func(t *testing.T) {
		// (5,0) blocks the unkicked rotation, (4,0) blocks the first kick (-1,0);
		// the second kick (-1,+1) fits, and so would others further down the list.
		field := parseField(t, "....##....")
		game := engine.NewWithPlayfield(engine.NewBag(1), field).WithFallingPiece(piece)
		require.False(t, game.BlockedOut())

		rotated := falling(t, game.RotateRight())
		assert.Equal(t, engine.OrientationRight, rotated.Orientation)
		assert.Equal(t, engine.Vector{X: 3, Y: 1}, rotated.Origin)
		assert.ElementsMatch(t,
			[]engine.Block{{X: 4, Y: 3}, {X: 4, Y: 2}, {X: 4, Y: 1}, {X: 5, Y: 2}},
			blocksOf(rotated))
	})

	t.Run("rejected when no candidate fits", func(t *testing.T) {
		field := parseField(t,
			"....#.....",
			"..........",
			"..........",
			"....##....",
		)
		game := engine.NewWithPlayfield(engine.NewBag(1), field).WithFallingPiece(piece)
		require.False(t, game.BlockedOut())

		assert.Equal(t, piece, falling(t, game.RotateRight()))
	})
}

func TestFirmDrop(t *testing.T) {
	game := engine.New(bagStartingWith(engine.ShapeL)).Spawn().FirmDrop()

	piece := falling(t, game)
	ghost, _ := game.GhostPiece()
	assert.Equal(t, ghost, piece)
	assert.True(t, game.Resting())
	assert.Equal(t, 0, game.Playfield().Len(), "firm drop does not lock")

	// the piece can still slide along the floor
	assert.Equal(t, piece.Origin.X-1, falling(t, game.MoveLeft()).Origin.X)
}

func TestHardDrop(t *testing.T) {
	game := engine.New(bagStartingWith(engine.ShapeL)).Spawn().HardDrop()

	assert.False(t, game.HasFallingPiece())
	_, ok := game.GhostPiece()
	assert.False(t, ok)
	assert.Equal(t, []engine.LockedBlock{
		{Block: engine.Block{X: 3, Y: 0}, Shape: engine.ShapeL},
		{Block: engine.Block{X: 4, Y: 0}, Shape: engine.ShapeL},
		{Block: engine.Block{X: 5, Y: 0}, Shape: engine.ShapeL},
		{Block: engine.Block{X: 5, Y: 1}, Shape: engine.ShapeL},
	}, game.Playfield().Blocks())
}

func TestLockClearsCompletedRow(t *testing.T) {
	field := parseField(t,
		"#.........",
		"#########.",
	)
	game := engine.NewWithPlayfield(bagStartingWith(engine.ShapeI), field).Spawn().RotateRight()
	for range 4 {
		game = game.MoveRight()
	}
	require.Equal(t, 9, blocksOf(falling(t, game))[0].X)

	before := game.Playfield().Len()
	game = game.HardDrop()

	assert.Equal(t, 1, game.LastCleared())
	assert.Equal(t, before+4-10, game.Playfield().Len())
	assert.Equal(t, []engine.LockedBlock{
		{Block: engine.Block{X: 0, Y: 0}, Shape: engine.ShapeI},
		{Block: engine.Block{X: 9, Y: 0}, Shape: engine.ShapeI},
		{Block: engine.Block{X: 9, Y: 1}, Shape: engine.ShapeI},
		{Block: engine.Block{X: 9, Y: 2}, Shape: engine.ShapeI},
	}, game.Playfield().Blocks())

	assert.Equal(t, 0, game.Spawn().LastCleared())
}

func TestLockMidAir(t *testing.T) {
	game := engine.New(bagStartingWith(engine.ShapeO)).Spawn().Lock()

	assert.False(t, game.HasFallingPiece())
	assert.Equal(t, 2, game.Playfield().RowCount(20))
	assert.Equal(t, 2, game.Playfield().RowCount(21))

	// the next piece spawns on top of it
	assert.True(t, game.Spawn().BlockedOut())
}

func TestInvalidCallSequence(t *testing.T) {
	empty := engine.New(engine.NewBag(1))

	commands := map[string]func(engine.Tetrion) engine.Tetrion{
		"MoveLeft":    engine.Tetrion.MoveLeft,
		"MoveRight":   engine.Tetrion.MoveRight,
		"MoveDown":    engine.Tetrion.MoveDown,
		"SoftDrop":    engine.Tetrion.SoftDrop,
		"RotateLeft":  engine.Tetrion.RotateLeft,
		"RotateRight": engine.Tetrion.RotateRight,
		"FirmDrop":    engine.Tetrion.FirmDrop,
		"HardDrop":    engine.Tetrion.HardDrop,
		"Lock":        engine.Tetrion.Lock,
	}
	for name, command := range commands {
		t.Run(name, func(t *testing.T) {
			assert.PanicsWithError(t, "engine: "+panicOp(name)+": no falling piece", func() {
				command(empty)
			})
		})
	}

	t.Run("lock while colliding", func(t *testing.T) {
		field := parseField(t, "....#.....")
		game := engine.NewWithPlayfield(engine.NewBag(1), field).
			WithFallingPiece(engine.Tetromino{Shape: engine.ShapeO, Origin: engine.Vector{X: 4, Y: 0}})
		require.True(t, game.BlockedOut())

		assert.Panics(t, func() { game.Lock() })
		assert.Panics(t, func() { game.HardDrop() })
	})
}

func panicOp(command string) string {
	switch command {
	case "FirmDrop", "HardDrop":
		return "firm drop"
	case "Lock":
		return "lock"
	default:
		return "transform"
	}
}

func TestSnapshotsAreIndependent(t *testing.T) {
	start := engine.New(bagStartingWith(engine.ShapeT)).Spawn()
	startPiece := falling(t, start)
	startGhost, _ := start.GhostPiece()

	moved := start.MoveLeft().RotateRight().MoveDown()
	locked := moved.HardDrop()

	assert.Equal(t, startPiece, falling(t, start))
	ghost, _ := start.GhostPiece()
	assert.Equal(t, startGhost, ghost)
	assert.Equal(t, 0, start.Playfield().Len())
	assert.Equal(t, 0, moved.Playfield().Len())
	assert.Equal(t, 4, locked.Playfield().Len())
	assert.Equal(t, start.Bag().Preview(7), moved.Bag().Preview(7))
}
