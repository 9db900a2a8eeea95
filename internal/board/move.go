package board

// Move is a fully described move as produced by the generator.
// Moves are comparable values; two moves are the same move iff they are equal.
type Move struct {
	From      Square
	To        Square
	Piece     Piece     // the moving piece
	Captured  Piece     // NoPiece if the move captures nothing
	Promotion PieceType // NoPieceType unless the move promotes

	IsCastle    bool
	IsEnPassant bool
}

// NoMove represents the absence of a move.
var NoMove = Move{From: NoSquare, To: NoSquare, Piece: NoPiece, Captured: NoPiece, Promotion: NoPieceType}

// IsCapture returns true if this move captures a piece.
func (m Move) IsCapture() bool {
	return m.Captured != NoPiece
}

// IsPromotion returns true if this is a promotion move.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// String returns the UCI format of the move (e.g., "e2e4", "e7e8q").
// Castling is written as the king's move.
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Char())
	}
	return s
}

// Undo is the state needed to revert a move exactly. Apply returns it and
// Undo consumes it; it is not derivable from the Move alone.
type Undo struct {
	Captured       Piece
	CapturedOn     Square // differs from Move.To for en passant
	CastlingRights CastlingRights
	EnPassant      Square
	HalfMoveClock  int
	FullMoveNumber int
	SideToMove     Color
	Hash           uint64
}
