package board

import "errors"

var (
	// ErrInvalidMove is returned when a move is not legal in the current position.
	ErrInvalidMove = errors.New("invalid move")
	// ErrInconsistentState is returned when a board breaks a structural invariant
	// (king count, pawns on a back rank, side not to move in check).
	ErrInconsistentState = errors.New("inconsistent board state")
	// ErrNoSuchSquare is returned for coordinates outside the 8x8 board.
	ErrNoSuchSquare = errors.New("no such square")
)
