package board_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hailam/chessrules/internal/board"
)

func TestUndoRestoresBoard(t *testing.T) {
	for i, fen := range sampleFENs {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			walk(t, fen, uint64(300+i), 30, func(b *board.Board) {
				for _, m := range b.LegalMoves(b.SideToMove()) {
					before := *b
					undo := b.ApplyUnchecked(m)
					if b.Hash() != b.ComputeHash() {
						t.Fatalf("incremental hash drifted after %s\n%s", m, b)
					}
					b.Undo(m, undo)
					if *b != before {
						t.Fatalf("undo of %s did not restore the board\n got %s\nwant %s", m, b, &before)
					}
				}
			})
		})
	}
}

func TestApplyRejectsIllegalMoves(t *testing.T) {
	b := board.NewStandard()
	legal, _ := findMove(b.LegalMoves(board.White), "e2e4")

	tests := []struct {
		name string
		move board.Move
	}{
		{"TooFar", board.Move{From: board.E2, To: board.E5, Piece: board.WhitePawn, Captured: board.NoPiece, Promotion: board.NoPieceType}},
		{"WrongSide", board.Move{From: board.E7, To: board.E5, Piece: board.BlackPawn, Captured: board.NoPiece, Promotion: board.NoPieceType}},
		{"WrongPiece", func() board.Move { m := legal; m.Piece = board.WhiteQueen; return m }()},
		{"FakeCapture", func() board.Move { m := legal; m.Captured = board.BlackPawn; return m }()},
		{"FakePromotion", func() board.Move { m := legal; m.Promotion = board.Queen; return m }()},
		{"NoMove", board.NoMove},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			before := *b
			if _, err := b.Apply(tc.move); !errors.Is(err, board.ErrInvalidMove) {
				t.Errorf("Apply(%s) error = %v, want ErrInvalidMove", tc.move, err)
			}
			if *b != before {
				t.Error("rejected move changed the board")
			}
		})
	}
}

func TestApplyOnInconsistentBoard(t *testing.T) {
	tests := []struct {
		name  string
		setup board.Setup
	}{
		{"Empty", board.Setup{EnPassant: board.NoSquare, FullMoveNumber: 1}},
		{"TwoWhiteKings", board.Setup{
			Pieces:         map[board.Square]board.Piece{board.E1: board.WhiteKing, board.D1: board.WhiteKing, board.E8: board.BlackKing},
			EnPassant:      board.NoSquare,
			FullMoveNumber: 1,
		}},
		{"PawnOnLastRank", board.Setup{
			Pieces:         map[board.Square]board.Piece{board.E1: board.WhiteKing, board.E8: board.BlackKing, board.A8: board.WhitePawn},
			EnPassant:      board.NoSquare,
			FullMoveNumber: 1,
		}},
		{"OpponentInCheck", board.Setup{
			Pieces:         map[board.Square]board.Piece{board.E1: board.WhiteKing, board.E8: board.BlackKing, board.E4: board.WhiteRook},
			EnPassant:      board.NoSquare,
			FullMoveNumber: 1,
		}},
		{"CastlingWithoutRook", board.Setup{
			Pieces:         map[board.Square]board.Piece{board.E1: board.WhiteKing, board.E8: board.BlackKing},
			CastlingRights: board.WhiteKingSideCastle,
			EnPassant:      board.NoSquare,
			FullMoveNumber: 1,
		}},
		{"StrayEnPassant", board.Setup{
			Pieces:         map[board.Square]board.Piece{board.E1: board.WhiteKing, board.E8: board.BlackKing},
			EnPassant:      board.D6,
			FullMoveNumber: 1,
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := board.FromSetup(tc.setup); !errors.Is(err, board.ErrInconsistentState) {
				t.Errorf("FromSetup error = %v, want ErrInconsistentState", err)
			}

			b := board.Build(tc.setup)
			m := board.Move{From: board.E1, To: board.F1, Piece: board.WhiteKing, Captured: board.NoPiece, Promotion: board.NoPieceType}
			if _, err := b.Apply(m); !errors.Is(err, board.ErrInconsistentState) {
				t.Errorf("Apply error = %v, want ErrInconsistentState", err)
			}
		})
	}
}

func TestCastlingMovesRook(t *testing.T) {
	b := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	play(t, b, "e1g1", "e8c8")

	want := map[board.Square]board.Piece{
		board.G1: board.WhiteKing, board.F1: board.WhiteRook, board.H1: board.NoPiece, board.E1: board.NoPiece,
		board.C8: board.BlackKing, board.D8: board.BlackRook, board.A8: board.NoPiece, board.E8: board.NoPiece,
	}
	for sq, p := range want {
		if got := b.PieceAt(sq); got != p {
			t.Errorf("%s = %v, want %v", sq, got, p)
		}
	}
	if b.CastlingRights() != board.NoCastling {
		t.Errorf("castling rights = %s, want none", b.CastlingRights())
	}
}

func TestCastlingRightsLost(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  board.CastlingRights
	}{
		{"KingMove", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"e1e2"},
			board.BlackKingSideCastle | board.BlackQueenSideCastle},
		{"RookMove", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"h1h2"},
			board.WhiteQueenSideCastle | board.BlackKingSideCastle | board.BlackQueenSideCastle},
		{"RookCaptured", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"h1h8"},
			board.WhiteQueenSideCastle | board.BlackQueenSideCastle},
		{"KingReturns", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"e1f1", "a8b8", "f1e1"},
			board.BlackKingSideCastle},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustFEN(t, tc.fen)
			play(t, b, tc.moves...)
			if got := b.CastlingRights(); got != tc.want {
				t.Errorf("castling rights = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestPromotionReplacesPawn(t *testing.T) {
	b := mustFEN(t, "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	play(t, b, "b7b8n")
	if got := b.PieceAt(board.B8); got != board.WhiteKnight {
		t.Errorf("b8 = %v, want white knight", got)
	}
	if b.Pieces(board.White, board.Pawn) != board.Empty {
		t.Error("promoted pawn still on the board")
	}
}

func TestClocks(t *testing.T) {
	b := board.NewStandard()

	play(t, b, "g1f3")
	if b.HalfMoveClock() != 1 || b.FullMoveNumber() != 1 {
		t.Errorf("after g1f3: clocks %d/%d, want 1/1", b.HalfMoveClock(), b.FullMoveNumber())
	}
	if b.SideToMove() != board.Black {
		t.Errorf("side to move = %s, want black", b.SideToMove())
	}

	play(t, b, "g8f6")
	if b.HalfMoveClock() != 2 || b.FullMoveNumber() != 2 {
		t.Errorf("after g8f6: clocks %d/%d, want 2/2", b.HalfMoveClock(), b.FullMoveNumber())
	}

	play(t, b, "e2e4")
	if b.HalfMoveClock() != 0 {
		t.Errorf("pawn move left half-move clock at %d", b.HalfMoveClock())
	}
	if b.EnPassant() != board.E3 {
		t.Errorf("en-passant target = %s, want e3", b.EnPassant())
	}

	play(t, b, "b8c6", "f1b5", "f6e4")
	if b.HalfMoveClock() != 0 {
		t.Errorf("capture left half-move clock at %d", b.HalfMoveClock())
	}
	if b.EnPassant() != board.NoSquare {
		t.Errorf("en-passant target = %s, want none", b.EnPassant())
	}
}
