package session

import "errors"

var (
	ErrGameOver       = errors.New("game over")
	ErrPieceInPlay    = errors.New("a piece is already falling")
	ErrNothingToUndo  = errors.New("nothing to undo")
	ErrUnknownCommand = errors.New("unknown command")
)
