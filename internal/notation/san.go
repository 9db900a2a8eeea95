package notation

import (
	"fmt"
	"strings"

	"github.com/hailam/chessrules/internal/board"
)

// SAN converts a legal move to Standard Algebraic Notation.
func SAN(b *board.Board, m board.Move) string {
	if m == board.NoMove {
		return "-"
	}

	var sb strings.Builder

	if m.IsCastle {
		if m.To > m.From {
			sb.WriteString("O-O")
		} else {
			sb.WriteString("O-O-O")
		}
	} else {
		pt := m.Piece.Type()

		if pt != board.Pawn {
			sb.WriteByte("PNBRQK"[pt])
			sb.WriteString(disambiguation(b, m))
		}

		if m.IsCapture() {
			if pt == board.Pawn {
				sb.WriteByte('a' + byte(m.From.File()))
			}
			sb.WriteByte('x')
		}

		sb.WriteString(m.To.String())

		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte("PNBRQK"[m.Promotion])
		}
	}

	after := b.Copy()
	after.ApplyUnchecked(m)
	them := m.Piece.Color().Other()
	if after.InCheck(them) {
		if after.HasLegalMoves(them) {
			sb.WriteByte('+')
		} else {
			sb.WriteByte('#')
		}
	}

	return sb.String()
}

// disambiguation returns the origin file, rank or square needed to tell m
// apart from other legal moves of the same piece type to the same square.
func disambiguation(b *board.Board, m board.Move) string {
	var candidates []board.Square
	for _, other := range b.LegalMoves(m.Piece.Color()) {
		if other.To != m.To || other.From == m.From || other.Piece != m.Piece {
			continue
		}
		candidates = append(candidates, other.From)
	}

	if len(candidates) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range candidates {
		if sq.File() == m.From.File() {
			sameFile = true
		}
		if sq.Rank() == m.From.Rank() {
			sameRank = true
		}
	}

	if !sameFile {
		return string(rune('a' + m.From.File()))
	}
	if !sameRank {
		return string(rune('1' + m.From.Rank()))
	}
	return m.From.String()
}

// ParseSAN resolves a SAN string to the matching legal move of the side to move.
func ParseSAN(s string, b *board.Board) (board.Move, error) {
	text := strings.TrimSpace(s)
	text = strings.TrimRight(text, "+#!?")

	us := b.SideToMove()
	legal := b.LegalMoves(us)

	if text == "O-O" || text == "0-0" || text == "O-O-O" || text == "0-0-0" {
		kingSide := len(text) == 3
		for _, m := range legal {
			if m.IsCastle && (m.To > m.From) == kingSide {
				return m, nil
			}
		}
		return board.NoMove, fmt.Errorf("%w: %q", ErrInvalidMoveText, s)
	}

	promo := board.NoPieceType
	if idx := strings.IndexByte(text, '='); idx >= 0 {
		if idx+1 >= len(text) {
			return board.NoMove, fmt.Errorf("%w: %q", ErrInvalidMoveText, s)
		}
		promo = board.PieceFromChar(text[idx+1]).Type()
		if promo == board.NoPieceType || promo == board.Pawn || promo == board.King {
			return board.NoMove, fmt.Errorf("%w: promotion in %q", ErrInvalidMoveText, s)
		}
		text = text[:idx]
	}

	isCapture := strings.Contains(text, "x")
	text = strings.ReplaceAll(text, "x", "")

	pt := board.Pawn
	if len(text) > 0 && text[0] >= 'A' && text[0] <= 'Z' {
		pt = board.PieceFromChar(text[0]).Type()
		if pt == board.NoPieceType || pt == board.Pawn {
			return board.NoMove, fmt.Errorf("%w: piece letter in %q", ErrInvalidMoveText, s)
		}
		text = text[1:]
	}

	if len(text) < 2 {
		return board.NoMove, fmt.Errorf("%w: %q", ErrInvalidMoveText, s)
	}
	dest, err := ParseSquare(text[len(text)-2:])
	if err != nil {
		return board.NoMove, fmt.Errorf("%w: %q", ErrInvalidMoveText, s)
	}
	text = text[:len(text)-2]

	fromFile, fromRank := -1, -1
	for _, c := range text {
		switch {
		case c >= 'a' && c <= 'h':
			fromFile = int(c - 'a')
		case c >= '1' && c <= '8':
			fromRank = int(c - '1')
		default:
			return board.NoMove, fmt.Errorf("%w: %q", ErrInvalidMoveText, s)
		}
	}

	found := board.NoMove
	for _, m := range legal {
		if m.To != dest || m.Piece.Type() != pt || m.IsCastle || m.Promotion != promo {
			continue
		}
		if fromFile >= 0 && m.From.File() != fromFile {
			continue
		}
		if fromRank >= 0 && m.From.Rank() != fromRank {
			continue
		}
		if isCapture && !m.IsCapture() {
			continue
		}
		if found != board.NoMove {
			return board.NoMove, fmt.Errorf("%w: %q is ambiguous", ErrInvalidMoveText, s)
		}
		found = m
	}

	if found == board.NoMove {
		return board.NoMove, fmt.Errorf("%w: %q is not legal", ErrInvalidMoveText, s)
	}
	return found, nil
}

// MovesToSAN converts a sequence of moves played from b to SAN. b is not modified.
func MovesToSAN(b *board.Board, moves []board.Move) []string {
	result := make([]string, len(moves))
	p := b.Copy()
	for i, m := range moves {
		result[i] = SAN(p, m)
		p.ApplyUnchecked(m)
	}
	return result
}
