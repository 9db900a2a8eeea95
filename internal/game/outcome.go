package game

import "github.com/hailam/chessrules/internal/board"

// Status is the state of a game.
type Status uint8

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	DrawByRepetition
	DrawByFiftyMove
	DrawByInsufficientMaterial
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Ongoing:
		return "Ongoing"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case DrawByRepetition:
		return "DrawByRepetition"
	case DrawByFiftyMove:
		return "DrawByFiftyMove"
	case DrawByInsufficientMaterial:
		return "DrawByInsufficientMaterial"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether no further moves may be played.
func (s Status) IsTerminal() bool {
	return s != Ongoing
}

// IsDraw reports whether the status is a drawn result.
func (s Status) IsDraw() bool {
	return s == Stalemate || s == DrawByRepetition || s == DrawByFiftyMove || s == DrawByInsufficientMaterial
}

// Outcome is the result of a game. Winner is only meaningful for Checkmate
// and is board.NoColor otherwise.
type Outcome struct {
	Status Status
	Winner board.Color
}

// String returns a short description such as "Checkmate(Black)".
func (o Outcome) String() string {
	if o.Status == Checkmate {
		return o.Status.String() + "(" + o.Winner.String() + ")"
	}
	return o.Status.String()
}

var ongoing = Outcome{Status: Ongoing, Winner: board.NoColor}

// Evaluate determines the outcome of a single position. Repetition needs the
// game history and is handled by Game; count is the number of times the
// current position has occurred (pass 1 when unknown).
func Evaluate(b *board.Board, count int) Outcome {
	us := b.SideToMove()

	if !b.HasLegalMoves(us) {
		if b.InCheck(us) {
			return Outcome{Status: Checkmate, Winner: us.Other()}
		}
		return Outcome{Status: Stalemate, Winner: board.NoColor}
	}

	if b.HalfMoveClock() >= 100 {
		return Outcome{Status: DrawByFiftyMove, Winner: board.NoColor}
	}

	if count >= 3 {
		return Outcome{Status: DrawByRepetition, Winner: board.NoColor}
	}

	if InsufficientMaterial(b) {
		return Outcome{Status: DrawByInsufficientMaterial, Winner: board.NoColor}
	}

	return ongoing
}

// InsufficientMaterial returns true if neither side can deliver checkmate:
// no pawns, rooks or queens, and either a single knight with no bishops or
// any number of bishops all standing on one square colour.
func InsufficientMaterial(b *board.Board) bool {
	for c := board.White; c <= board.Black; c++ {
		if b.Pieces(c, board.Pawn)|b.Pieces(c, board.Rook)|b.Pieces(c, board.Queen) != 0 {
			return false
		}
	}

	knights := b.Pieces(board.White, board.Knight) | b.Pieces(board.Black, board.Knight)
	bishops := b.Pieces(board.White, board.Bishop) | b.Pieces(board.Black, board.Bishop)

	switch {
	case knights == 0:
		return bishops&board.DarkSquares == 0 || bishops&board.LightSquares == 0
	case knights.PopCount() == 1:
		return bishops == 0
	default:
		return false
	}
}
