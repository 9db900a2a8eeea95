package board

import "fmt"

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle returns true if the given side can castle in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr&WhiteKingSideCastle != 0
		}
		return cr&WhiteQueenSideCastle != 0
	}
	if kingSide {
		return cr&BlackKingSideCastle != 0
	}
	return cr&BlackQueenSideCastle != 0
}

// Board is a complete chess position: a 64-square mailbox plus the game
// state needed to generate moves. A Board is owned by one goroutine at a time;
// use Copy for independent branches.
//
// The zero value is not usable; build boards with NewStandard, NewEmpty or
// FromSetup.
type Board struct {
	squares [64]Piece

	// Derived from squares, kept in sync by put/remove.
	pieces   [2][6]Bitboard
	occupied [2]Bitboard

	sideToMove     Color
	castlingRights CastlingRights
	enPassant      Square // target square, NoSquare if none
	halfMoveClock  int    // plies since last pawn move or capture
	fullMoveNumber int    // starts at 1, incremented after Black moves

	hash uint64
}

// PositionKey identifies a position for repetition purposes:
// placement, side to move, castling rights and en-passant target.
type PositionKey struct {
	Squares        [64]Piece
	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Square
}

// Copy creates an independent copy of the board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return b.squares[sq]
}

// IsEmpty returns true if the square is empty. Invalid squares are not.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.IsValid() && b.squares[sq] == NoPiece
}

// SideToMove returns the colour to move.
func (b *Board) SideToMove() Color { return b.sideToMove }

// CastlingRights returns the remaining castling rights.
func (b *Board) CastlingRights() CastlingRights { return b.castlingRights }

// EnPassant returns the en-passant target square, or NoSquare.
func (b *Board) EnPassant() Square { return b.enPassant }

// HalfMoveClock returns the number of plies since the last pawn move or capture.
func (b *Board) HalfMoveClock() int { return b.halfMoveClock }

// FullMoveNumber returns the full-move counter.
func (b *Board) FullMoveNumber() int { return b.fullMoveNumber }

// Hash returns the Zobrist hash of the position.
func (b *Board) Hash() uint64 { return b.hash }

// Pieces returns the squares holding pieces of the given type and colour.
func (b *Board) Pieces(c Color, pt PieceType) Bitboard {
	return b.pieces[c][pt]
}

// Occupied returns the squares holding pieces of the given colour.
func (b *Board) Occupied(c Color) Bitboard {
	return b.occupied[c]
}

// KingSquare returns the square of the king of colour c, or NoSquare.
func (b *Board) KingSquare(c Color) Square {
	return b.pieces[c][King].LSB()
}

// Key returns the repetition key of the position.
func (b *Board) Key() PositionKey {
	return PositionKey{
		Squares:        b.squares,
		SideToMove:     b.sideToMove,
		CastlingRights: b.castlingRights,
		EnPassant:      b.enPassant,
	}
}

// put places a piece on an empty square and updates derived state.
func (b *Board) put(piece Piece, sq Square) {
	if piece == NoPiece {
		return
	}
	c, pt := piece.Color(), piece.Type()
	bb := SquareBB(sq)
	b.squares[sq] = piece
	b.pieces[c][pt] |= bb
	b.occupied[c] |= bb
	b.hash ^= zobristPiece[c][pt][sq]
}

// remove clears a square and returns the piece that was there.
func (b *Board) remove(sq Square) Piece {
	piece := b.squares[sq]
	if piece == NoPiece {
		return NoPiece
	}
	c, pt := piece.Color(), piece.Type()
	bb := SquareBB(sq)
	b.squares[sq] = NoPiece
	b.pieces[c][pt] &^= bb
	b.occupied[c] &^= bb
	b.hash ^= zobristPiece[c][pt][sq]
	return piece
}

// String returns a visual representation of the board.
func (b *Board) String() string {
	s := "\n"
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			piece := b.squares[NewSquare(file, rank)]
			if piece == NoPiece {
				s += ". "
			} else {
				s += piece.String() + " "
			}
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n\n"
	s += fmt.Sprintf("Side to move: %s\n", b.sideToMove)
	s += fmt.Sprintf("Castling: %s\n", b.castlingRights)
	s += fmt.Sprintf("En passant: %s\n", b.enPassant)
	s += fmt.Sprintf("Half-move clock: %d\n", b.halfMoveClock)
	s += fmt.Sprintf("Full move: %d\n", b.fullMoveNumber)
	s += fmt.Sprintf("Hash: %016x\n", b.hash)
	return s
}

// Validate checks the structural invariants of the position.
func (b *Board) Validate() error {
	for c := White; c <= Black; c++ {
		if n := b.pieces[c][King].PopCount(); n != 1 {
			return fmt.Errorf("%w: %s has %d kings", ErrInconsistentState, c, n)
		}
	}

	if (b.pieces[White][Pawn]|b.pieces[Black][Pawn])&(Rank1|Rank8) != 0 {
		return fmt.Errorf("%w: pawn on rank 1 or 8", ErrInconsistentState)
	}

	for _, cs := range castles {
		if b.castlingRights&cs.right == 0 {
			continue
		}
		if b.squares[cs.kingFrom] != NewPiece(King, cs.color) || b.squares[cs.rookFrom] != NewPiece(Rook, cs.color) {
			return fmt.Errorf("%w: castling right %s without king and rook at home", ErrInconsistentState, cs.right)
		}
	}

	if b.enPassant != NoSquare {
		if err := b.validateEnPassant(); err != nil {
			return err
		}
	}

	if b.halfMoveClock < 0 || b.fullMoveNumber < 1 {
		return fmt.Errorf("%w: bad move counters %d/%d", ErrInconsistentState, b.halfMoveClock, b.fullMoveNumber)
	}

	if b.InCheck(b.sideToMove.Other()) {
		return fmt.Errorf("%w: %s to move can capture the king", ErrInconsistentState, b.sideToMove)
	}

	return nil
}

// validateEnPassant checks that the target sits behind a pawn that just
// made a double step.
func (b *Board) validateEnPassant() error {
	mover := b.sideToMove.Other()
	ep := b.enPassant
	if ep.RelativeRank(mover) != enPassantRank {
		return fmt.Errorf("%w: en-passant target %s on wrong rank", ErrInconsistentState, ep)
	}
	pawnSq := NewSquare(ep.File(), ep.Rank()+pawnForward(mover))
	origin := NewSquare(ep.File(), ep.Rank()-pawnForward(mover))
	if b.squares[pawnSq] != NewPiece(Pawn, mover) || !b.IsEmpty(ep) || !b.IsEmpty(origin) {
		return fmt.Errorf("%w: en-passant target %s without a double-stepped pawn", ErrInconsistentState, ep)
	}
	return nil
}
