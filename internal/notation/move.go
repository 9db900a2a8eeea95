package notation

import (
	"fmt"

	"github.com/hailam/chessrules/internal/board"
)

// ParseMove resolves a UCI move string (e.g. "e2e4", "e7e8q", "e1g1") to the
// matching legal move of the side to move.
func ParseMove(s string, b *board.Board) (board.Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return board.NoMove, fmt.Errorf("%w: %q", ErrInvalidMoveText, s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return board.NoMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return board.NoMove, err
	}

	promo := board.NoPieceType
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			promo = board.Knight
		case 'b':
			promo = board.Bishop
		case 'r':
			promo = board.Rook
		case 'q':
			promo = board.Queen
		default:
			return board.NoMove, fmt.Errorf("%w: promotion piece %q", ErrInvalidMoveText, s[4])
		}
	}

	for _, m := range b.LegalMoves(b.SideToMove()) {
		if m.From == from && m.To == to && m.Promotion == promo {
			return m, nil
		}
	}
	return board.NoMove, fmt.Errorf("%w: %s is not legal", ErrInvalidMoveText, s)
}
