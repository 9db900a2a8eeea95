package notation_test

import (
	"errors"
	"testing"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/notation"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		notation.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
		"4k3/8/8/8/8/8/8/4K3 b - - 99 120",
	}

	for _, fen := range fens {
		b, err := notation.ParseFEN(fen)
		if err != nil {
			t.Errorf("ParseFEN(%q): %v", fen, err)
			continue
		}
		if got := notation.FEN(b); got != fen {
			t.Errorf("FEN round trip:\n got %q\nwant %q", got, fen)
		}
	}
}

func TestParseFENDefaultsClocks(t *testing.T) {
	b, err := notation.ParseFEN("4k3/8/8/8/8/8/8/4K3 w - -")
	if err != nil {
		t.Fatal(err)
	}
	if b.HalfMoveClock() != 0 || b.FullMoveNumber() != 1 {
		t.Errorf("clocks = %d/%d, want 0/1", b.HalfMoveClock(), b.FullMoveNumber())
	}
}

func TestParseFENStandardMatchesNewStandard(t *testing.T) {
	b, err := notation.ParseFEN(notation.StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	if *b != *board.NewStandard() {
		t.Error("parsed start position differs from NewStandard")
	}
	if got := notation.FEN(board.NewStandard()); got != notation.StartFEN {
		t.Errorf("FEN(NewStandard()) = %q", got)
	}
}

func TestParseFENErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want error
	}{
		{"Empty", "", notation.ErrInvalidFEN},
		{"TooFewFields", "8/8/8/8/8/8/8/8 w", notation.ErrInvalidFEN},
		{"SevenRanks", "8/8/8/8/8/8/8 w - - 0 1", notation.ErrInvalidFEN},
		{"ShortRank", "4k3/8/8/8/8/8/8/4K2 w - - 0 1", notation.ErrInvalidFEN},
		{"LongRank", "4k3/8/8/8/8/8/8/4K4 w - - 0 1", notation.ErrInvalidFEN},
		{"BadPiece", "4k3/8/8/8/8/8/8/4X3 w - - 0 1", notation.ErrInvalidFEN},
		{"BadSide", "4k3/8/8/8/8/8/8/4K3 x - - 0 1", notation.ErrInvalidFEN},
		{"BadCastling", "4k3/8/8/8/8/8/8/4K3 w X - 0 1", notation.ErrInvalidFEN},
		{"BadEnPassant", "4k3/8/8/8/8/8/8/4K3 w - z9 0 1", notation.ErrInvalidFEN},
		{"NegativeClock", "4k3/8/8/8/8/8/8/4K3 w - - -1 1", notation.ErrInvalidFEN},
		{"ZeroMoveNumber", "4k3/8/8/8/8/8/8/4K3 w - - 0 0", notation.ErrInvalidFEN},
		{"NoKings", "8/8/8/8/8/8/8/8 w - - 0 1", board.ErrInconsistentState},
		{"CastlingWithoutRook", "4k3/8/8/8/8/8/8/4K3 w K - 0 1", board.ErrInconsistentState},
		{"StrayEnPassant", "4k3/8/8/8/8/8/8/4K3 w - e6 0 1", board.ErrInconsistentState},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := notation.ParseFEN(tc.fen); !errors.Is(err, tc.want) {
				t.Errorf("ParseFEN(%q) error = %v, want %v", tc.fen, err, tc.want)
			}
		})
	}
}

func TestParseSetupSkipsValidation(t *testing.T) {
	s, err := notation.ParseSetup("8/8/8/8/8/8/8/8 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseSetup: %v", err)
	}
	if len(s.Pieces) != 0 {
		t.Errorf("got %d pieces, want 0", len(s.Pieces))
	}
}

func TestParseSquare(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want board.Square
	}{
		{"a1", board.A1}, {"e4", board.E4}, {"h8", board.H8},
	} {
		got, err := notation.ParseSquare(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseSquare(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
	}

	for _, in := range []string{"", "e", "i1", "a9", "a0", "e44"} {
		if _, err := notation.ParseSquare(in); !errors.Is(err, board.ErrNoSuchSquare) {
			t.Errorf("ParseSquare(%q) error = %v, want ErrNoSuchSquare", in, err)
		}
	}
}
