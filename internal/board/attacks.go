package board

// IsAttacked returns true if the square is attacked by the given color.
// Each capture-capable ability is walked backwards from sq; the first
// occupied square on the ray decides. Pins are ignored.
func (b *Board) IsAttacked(sq Square, by Color) bool {
	if !sq.IsValid() || by >= NoColor {
		return false
	}
	for pt := Pawn; pt <= King; pt++ {
		if b.pieces[by][pt] == 0 {
			continue
		}
		for _, a := range abilities[by][pt] {
			if a.Circumstance == EnPassantOnly || !a.CanCapture(pt) {
				continue
			}
			if b.attackerAlong(sq, a, NewPiece(pt, by)) != NoSquare {
				return true
			}
		}
	}
	return false
}

// attackerAlong returns the square of an attacker of kind piece that reaches
// sq using ability a, or NoSquare.
func (b *Board) attackerAlong(sq Square, a MovementAbility, piece Piece) Square {
	cur := sq
	for i := 0; i < a.Steps(); i++ {
		next, ok := cur.Offset(-a.Direction.DF, -a.Direction.DR)
		if !ok {
			return NoSquare
		}
		if p := b.squares[next]; p != NoPiece {
			if p == piece {
				return next
			}
			return NoSquare
		}
		cur = next
	}
	return NoSquare
}

// AttackersOf returns the pieces of colour by attacking sq.
func (b *Board) AttackersOf(sq Square, by Color) Bitboard {
	var attackers Bitboard
	if !sq.IsValid() || by >= NoColor {
		return attackers
	}
	for pt := Pawn; pt <= King; pt++ {
		if b.pieces[by][pt] == 0 {
			continue
		}
		for _, a := range abilities[by][pt] {
			if a.Circumstance == EnPassantOnly || !a.CanCapture(pt) {
				continue
			}
			if from := b.attackerAlong(sq, a, NewPiece(pt, by)); from != NoSquare {
				attackers |= SquareBB(from)
			}
		}
	}
	return attackers
}

// AttackedSquares enumerates every square attacked by colour by, walking
// abilities forward from each piece. A blocker on a ray is attacked and
// ends the ray.
func (b *Board) AttackedSquares(by Color) Bitboard {
	var attacked Bitboard
	own := b.occupied[by]
	for own != 0 {
		from := own.PopLSB()
		pt := b.squares[from].Type()
		for _, a := range abilities[by][pt] {
			if a.Circumstance == EnPassantOnly || !a.CanCapture(pt) {
				continue
			}
			cur := from
			for i := 0; i < a.Steps(); i++ {
				to, ok := cur.Offset(a.Direction.DF, a.Direction.DR)
				if !ok {
					break
				}
				attacked |= SquareBB(to)
				if b.squares[to] != NoPiece {
					break
				}
				cur = to
			}
		}
	}
	return attacked
}

// InCheck returns true if the king of colour c is attacked.
// A board without that king is never in check.
func (b *Board) InCheck(c Color) bool {
	ksq := b.KingSquare(c)
	if ksq == NoSquare {
		return false
	}
	return b.IsAttacked(ksq, c.Other())
}

// Checkers returns the pieces giving check to the king of colour c.
func (b *Board) Checkers(c Color) Bitboard {
	ksq := b.KingSquare(c)
	if ksq == NoSquare {
		return Empty
	}
	return b.AttackersOf(ksq, c.Other())
}
