package board

// Setup is an externally supplied position. Notation layers fill it in and
// FromSetup turns it into a Board.
//
// A Setup holding only Pieces is usable: the zero EnPassant (a1, which can
// never be a target) means none and a zero FullMoveNumber means 1.
type Setup struct {
	Pieces         map[Square]Piece
	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Square // NoSquare (or a1) if none
	HalfMoveClock  int
	FullMoveNumber int
}

// NewSetup returns a Setup for pieces with White to move, no castling
// rights and no en-passant target.
func NewSetup(pieces map[Square]Piece) Setup {
	return Setup{Pieces: pieces, SideToMove: White, EnPassant: NoSquare, FullMoveNumber: 1}
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StandardSetup returns the standard starting position.
func StandardSetup() Setup {
	s := Setup{
		Pieces:         make(map[Square]Piece, 32),
		SideToMove:     White,
		CastlingRights: AllCastling,
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}
	for file, pt := range backRank {
		s.Pieces[NewSquare(file, 0)] = NewPiece(pt, White)
		s.Pieces[NewSquare(file, 1)] = WhitePawn
		s.Pieces[NewSquare(file, 6)] = BlackPawn
		s.Pieces[NewSquare(file, 7)] = NewPiece(pt, Black)
	}
	return s
}

// NewStandard creates the standard starting position.
func NewStandard() *Board {
	return Build(StandardSetup())
}

// NewEmpty creates a board with no pieces, White to move.
func NewEmpty() *Board {
	return Build(NewSetup(nil))
}

// FromSetup builds a board and checks its invariants.
func FromSetup(s Setup) (*Board, error) {
	b := Build(s)
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Build creates a board from a setup without validating it. Invalid squares
// and NoPiece entries are ignored. Used for positions under construction.
func Build(s Setup) *Board {
	b := &Board{
		sideToMove:     s.SideToMove,
		castlingRights: s.CastlingRights & AllCastling,
		enPassant:      s.EnPassant,
		halfMoveClock:  s.HalfMoveClock,
		fullMoveNumber: s.FullMoveNumber,
	}
	for i := range b.squares {
		b.squares[i] = NoPiece
	}
	if b.sideToMove >= NoColor {
		b.sideToMove = White
	}
	if !b.enPassant.IsValid() || b.enPassant == A1 {
		b.enPassant = NoSquare
	}
	if b.fullMoveNumber == 0 {
		b.fullMoveNumber = 1
	}
	for sq, p := range s.Pieces {
		if sq.IsValid() && p < NoPiece {
			b.put(p, sq)
		}
	}
	b.hash = b.ComputeHash()
	return b
}

// Setup exports the board as a Setup.
func (b *Board) Setup() Setup {
	s := Setup{
		Pieces:         make(map[Square]Piece),
		SideToMove:     b.sideToMove,
		CastlingRights: b.castlingRights,
		EnPassant:      b.enPassant,
		HalfMoveClock:  b.halfMoveClock,
		FullMoveNumber: b.fullMoveNumber,
	}
	for sq, p := range b.squares {
		if p != NoPiece {
			s.Pieces[Square(sq)] = p
		}
	}
	return s
}

// SupportedCastling returns the subset of CastlingRights whose king and rook
// still stand on their home squares.
func (s Setup) SupportedCastling() CastlingRights {
	rights := s.CastlingRights
	for _, cs := range castles {
		if s.Pieces[cs.kingFrom] != NewPiece(King, cs.color) || s.Pieces[cs.rookFrom] != NewPiece(Rook, cs.color) {
			rights &^= cs.right
		}
	}
	return rights
}
