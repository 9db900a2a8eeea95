// Package notation converts between the rules core and text: FEN positions,
// UCI move strings and Standard Algebraic Notation.
package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hailam/chessrules/internal/board"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var (
	// ErrInvalidFEN is returned for FEN strings that cannot be parsed.
	ErrInvalidFEN = errors.New("invalid FEN")
	// ErrInvalidMoveText is returned for move strings that do not name a legal move.
	ErrInvalidMoveText = errors.New("invalid move text")
)

// ParseFEN parses a FEN string and returns a validated board.
func ParseFEN(fen string) (*board.Board, error) {
	s, err := ParseSetup(fen)
	if err != nil {
		return nil, err
	}
	return board.FromSetup(s)
}

// ParseSetup parses a FEN string into a Setup without checking position
// invariants. The clocks are optional and default to 0 and 1.
func ParseSetup(fen string) (board.Setup, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return board.Setup{}, fmt.Errorf("%w: need 4 to 6 fields, got %d", ErrInvalidFEN, len(parts))
	}

	s := board.Setup{
		Pieces:         make(map[board.Square]board.Piece, 32),
		EnPassant:      board.NoSquare,
		FullMoveNumber: 1,
	}

	if err := parsePiecePlacement(&s, parts[0]); err != nil {
		return board.Setup{}, err
	}

	switch parts[1] {
	case "w":
		s.SideToMove = board.White
	case "b":
		s.SideToMove = board.Black
	default:
		return board.Setup{}, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, parts[1])
	}

	if err := parseCastlingRights(&s, parts[2]); err != nil {
		return board.Setup{}, err
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return board.Setup{}, fmt.Errorf("%w: en passant square %q", ErrInvalidFEN, parts[3])
		}
		s.EnPassant = sq
	}

	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil || hmc < 0 {
			return board.Setup{}, fmt.Errorf("%w: half-move clock %q", ErrInvalidFEN, parts[4])
		}
		s.HalfMoveClock = hmc
	}

	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil || fmn < 1 {
			return board.Setup{}, fmt.Errorf("%w: full-move number %q", ErrInvalidFEN, parts[5])
		}
		s.FullMoveNumber = fmn
	}

	return s, nil
}

// parsePiecePlacement parses the piece placement section of a FEN string.
func parsePiecePlacement(s *board.Setup, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: need 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i // FEN starts from rank 8
		file := 0

		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("%w: too many squares in rank %d", ErrInvalidFEN, rank+1)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			piece := board.PieceFromChar(byte(c))
			if piece == board.NoPiece {
				return fmt.Errorf("%w: piece character %q", ErrInvalidFEN, c)
			}
			s.Pieces[board.NewSquare(file, rank)] = piece
			file++
		}

		if file != 8 {
			return fmt.Errorf("%w: rank %d has %d squares", ErrInvalidFEN, rank+1, file)
		}
	}

	return nil
}

// parseCastlingRights parses the castling rights section of a FEN string.
func parseCastlingRights(s *board.Setup, castling string) error {
	if castling == "-" {
		s.CastlingRights = board.NoCastling
		return nil
	}

	for _, c := range castling {
		switch c {
		case 'K':
			s.CastlingRights |= board.WhiteKingSideCastle
		case 'Q':
			s.CastlingRights |= board.WhiteQueenSideCastle
		case 'k':
			s.CastlingRights |= board.BlackKingSideCastle
		case 'q':
			s.CastlingRights |= board.BlackQueenSideCastle
		default:
			return fmt.Errorf("%w: castling character %q", ErrInvalidFEN, c)
		}
	}

	return nil
}

// FEN returns the FEN representation of the board.
func FEN(b *board.Board) string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := b.PieceAt(board.NewSquare(file, rank))
			if piece == board.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.SideToMove() == board.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(b.CastlingRights().String())

	sb.WriteByte(' ')
	sb.WriteString(b.EnPassant().String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.HalfMoveClock()))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.FullMoveNumber()))

	return sb.String()
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (board.Square, error) {
	if len(s) != 2 {
		return board.NoSquare, fmt.Errorf("%w: %q", board.ErrNoSuchSquare, s)
	}
	return board.SquareOf(int(s[0])-'a', int(s[1])-'1')
}
