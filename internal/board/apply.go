package board

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Apply validates m against the legal moves of the side to move and applies
// it. The returned Undo restores the board exactly.
func (b *Board) Apply(m Move) (Undo, error) {
	if err := b.Validate(); err != nil {
		return Undo{}, err
	}
	if m.Piece.Color() != b.sideToMove || !slices.Contains(b.LegalMoves(b.sideToMove), m) {
		return Undo{}, fmt.Errorf("%w: %s", ErrInvalidMove, m)
	}
	return b.ApplyUnchecked(m), nil
}

// ApplyUnchecked applies a generator-produced move without validation.
// Passing any other move corrupts the board.
func (b *Board) ApplyUnchecked(m Move) Undo {
	undo := Undo{
		Captured:       NoPiece,
		CapturedOn:     NoSquare,
		CastlingRights: b.castlingRights,
		EnPassant:      b.enPassant,
		HalfMoveClock:  b.halfMoveClock,
		FullMoveNumber: b.fullMoveNumber,
		SideToMove:     b.sideToMove,
		Hash:           b.hash,
	}

	us := m.Piece.Color()
	them := us.Other()

	b.hash ^= zobristCastling[b.castlingRights]
	if b.enPassant != NoSquare {
		b.hash ^= zobristEnPassant[b.enPassant.File()]
	}
	b.enPassant = NoSquare

	// Captures. The en-passant victim sits beside the mover, not on To.
	capSq := m.To
	if m.IsEnPassant {
		capSq = NewSquare(m.To.File(), m.From.Rank())
	}
	if b.squares[capSq] != NoPiece {
		undo.Captured = b.remove(capSq)
		undo.CapturedOn = capSq
	}

	b.remove(m.From)
	placed := m.Piece
	if m.IsPromotion() {
		placed = NewPiece(m.Promotion, us)
	}
	b.put(placed, m.To)

	if m.IsCastle {
		if cs, ok := castleFor(m.From, m.To); ok {
			b.put(b.remove(cs.rookFrom), cs.rookTo)
		}
	}

	b.castlingRights &^= castlingMask[m.From] | castlingMask[m.To]
	b.hash ^= zobristCastling[b.castlingRights]

	if m.Piece.Type() == Pawn && abs(m.To.Rank()-m.From.Rank()) == 2 {
		b.enPassant = NewSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
		b.hash ^= zobristEnPassant[b.enPassant.File()]
	}

	if m.Piece.Type() == Pawn || undo.Captured != NoPiece {
		b.halfMoveClock = 0
	} else {
		b.halfMoveClock++
	}

	if us == Black {
		b.fullMoveNumber++
	}

	if b.sideToMove != them {
		b.hash ^= zobristSideToMove
	}
	b.sideToMove = them

	return undo
}

// Undo reverts m using the token returned when it was applied.
func (b *Board) Undo(m Move, undo Undo) {
	if m.IsCastle {
		if cs, ok := castleFor(m.From, m.To); ok {
			b.put(b.remove(cs.rookTo), cs.rookFrom)
		}
	}

	b.remove(m.To)
	b.put(m.Piece, m.From)
	if undo.Captured != NoPiece {
		b.put(undo.Captured, undo.CapturedOn)
	}

	b.castlingRights = undo.CastlingRights
	b.enPassant = undo.EnPassant
	b.halfMoveClock = undo.HalfMoveClock
	b.fullMoveNumber = undo.FullMoveNumber
	b.sideToMove = undo.SideToMove
	b.hash = undo.Hash
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
