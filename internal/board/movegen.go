package board

// castle describes one castling option.
type castle struct {
	right    CastlingRights
	color    Color
	kingFrom Square
	kingTo   Square
	rookFrom Square
	rookTo   Square
	vacant   Bitboard // squares between king and rook
	transit  [3]Square // king's start, crossed and destination squares
}

// castles lists the castling options, kingside before queenside.
var castles = [4]castle{
	{WhiteKingSideCastle, White, E1, G1, H1, F1, SquareBB(F1) | SquareBB(G1), [3]Square{E1, F1, G1}},
	{WhiteQueenSideCastle, White, E1, C1, A1, D1, SquareBB(B1) | SquareBB(C1) | SquareBB(D1), [3]Square{E1, D1, C1}},
	{BlackKingSideCastle, Black, E8, G8, H8, F8, SquareBB(F8) | SquareBB(G8), [3]Square{E8, F8, G8}},
	{BlackQueenSideCastle, Black, E8, C8, A8, D8, SquareBB(B8) | SquareBB(C8) | SquareBB(D8), [3]Square{E8, D8, C8}},
}

// castlingMask holds the rights lost when a piece leaves or lands on a square.
var castlingMask [64]CastlingRights

func init() {
	for _, cs := range castles {
		castlingMask[cs.kingFrom] |= cs.right
		castlingMask[cs.rookFrom] |= cs.right
	}
}

// castleFor returns the castling option whose king lands on kingTo.
func castleFor(kingFrom, kingTo Square) (castle, bool) {
	for _, cs := range castles {
		if cs.kingFrom == kingFrom && cs.kingTo == kingTo {
			return cs, true
		}
	}
	return castle{}, false
}

// LegalMoves generates all legal moves for colour c.
// Each pseudo-legal move is applied and kept only if it does not leave the
// mover's king attacked.
func (b *Board) LegalMoves(c Color) []Move {
	moves := b.PseudoLegalMoves(c)
	legal := moves[:0]
	for _, m := range moves {
		if b.isLegal(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if colour c has at least one legal move.
func (b *Board) HasLegalMoves(c Color) bool {
	for _, m := range b.PseudoLegalMoves(c) {
		if b.isLegal(m) {
			return true
		}
	}
	return false
}

// isLegal applies m, tests the mover's king and reverts.
func (b *Board) isLegal(m Move) bool {
	us := m.Piece.Color()
	undo := b.ApplyUnchecked(m)
	attacked := b.InCheck(us)
	b.Undo(m, undo)
	return !attacked
}

// PseudoLegalMoves generates all pseudo-legal moves for colour c (may leave
// the king in check). Pieces are visited from a1 to h8 and abilities in
// table order, so the result is deterministic.
func (b *Board) PseudoLegalMoves(c Color) []Move {
	if c >= NoColor {
		return nil
	}
	moves := make([]Move, 0, 64)
	own := b.occupied[c]
	for own != 0 {
		from := own.PopLSB()
		piece := b.squares[from]
		if piece.Type() == Pawn {
			moves = b.appendPawnMoves(moves, from, piece)
			continue
		}
		moves = b.appendPieceMoves(moves, from, piece)
		if piece.Type() == King {
			moves = b.appendCastlingMoves(moves, from, c)
		}
	}
	return moves
}

// appendPieceMoves expands the abilities of a non-pawn piece.
func (b *Board) appendPieceMoves(moves []Move, from Square, piece Piece) []Move {
	c := piece.Color()
	for _, a := range abilities[c][piece.Type()] {
		cur := from
		for i := 0; i < a.Steps(); i++ {
			to, ok := cur.Offset(a.Direction.DF, a.Direction.DR)
			if !ok {
				break
			}
			target := b.squares[to]
			if target != NoPiece {
				if target.Color() != c {
					moves = append(moves, newMove(from, to, piece, target))
				}
				break
			}
			moves = append(moves, newMove(from, to, piece, NoPiece))
			cur = to
		}
	}
	return moves
}

// appendPawnMoves expands pawn abilities. Pushes need vacant squares,
// captures need an opposing piece and en passant needs the target square.
func (b *Board) appendPawnMoves(moves []Move, from Square, piece Piece) []Move {
	c := piece.Color()
	for _, a := range abilities[c][Pawn] {
		switch a.Circumstance {
		case Anytime, FirstMoveOnly:
			if a.Circumstance == FirstMoveOnly && from.RelativeRank(c) != pawnHomeRank {
				continue
			}
			to, ok := b.vacantRun(from, a)
			if ok {
				moves = appendPawnMove(moves, newMove(from, to, piece, NoPiece))
			}
		case MustCapture:
			to, ok := from.Offset(a.Direction.DF, a.Direction.DR)
			if !ok {
				continue
			}
			if target := b.squares[to]; target != NoPiece && target.Color() != c {
				moves = appendPawnMove(moves, newMove(from, to, piece, target))
			}
		case EnPassantOnly:
			to, ok := from.Offset(a.Direction.DF, a.Direction.DR)
			if !ok || b.enPassant == NoSquare || to != b.enPassant {
				continue
			}
			capSq := NewSquare(to.File(), from.Rank())
			if victim := b.squares[capSq]; victim == NewPiece(Pawn, c.Other()) && b.IsEmpty(to) {
				m := newMove(from, to, piece, victim)
				m.IsEnPassant = true
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// vacantRun walks MaxUnits steps of a push and returns the final square if
// every square on the way is vacant.
func (b *Board) vacantRun(from Square, a MovementAbility) (Square, bool) {
	cur := from
	for i := 0; i < a.Steps(); i++ {
		next, ok := cur.Offset(a.Direction.DF, a.Direction.DR)
		if !ok || !b.IsEmpty(next) {
			return NoSquare, false
		}
		cur = next
	}
	return cur, true
}

// appendPawnMove adds m, expanded into the four promotions when it reaches
// the last rank.
func appendPawnMove(moves []Move, m Move) []Move {
	if m.To.RelativeRank(m.Piece.Color()) != pawnPromotionRank {
		return append(moves, m)
	}
	for _, pt := range PromotionTypes {
		m.Promotion = pt
		moves = append(moves, m)
	}
	return moves
}

// appendCastlingMoves adds castling moves for the king on from.
func (b *Board) appendCastlingMoves(moves []Move, from Square, c Color) []Move {
	them := c.Other()
	for _, cs := range castles {
		if cs.color != c || cs.kingFrom != from || b.castlingRights&cs.right == 0 {
			continue
		}
		if b.squares[cs.rookFrom] != NewPiece(Rook, c) {
			continue
		}
		if (b.occupied[White]|b.occupied[Black])&cs.vacant != 0 {
			continue
		}
		// King may not start in, pass through or land in check.
		safe := true
		for _, sq := range cs.transit {
			if b.IsAttacked(sq, them) {
				safe = false
				break
			}
		}
		if !safe {
			continue
		}
		m := newMove(from, cs.kingTo, NewPiece(King, c), NoPiece)
		m.IsCastle = true
		moves = append(moves, m)
	}
	return moves
}

func newMove(from, to Square, piece, captured Piece) Move {
	return Move{From: from, To: to, Piece: piece, Captured: captured, Promotion: NoPieceType}
}
