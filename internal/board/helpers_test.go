package board_test

import (
	"sort"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/notation"
)

// Well-known perft positions.
const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

func mustFEN(t *testing.T, fen string) *board.Board {
	t.Helper()
	b, err := notation.ParseFEN(fen)
	if err != nil {
		t.Fatalf("Failed to parse FEN %q: %v", fen, err)
	}
	return b
}

// play applies a sequence of UCI moves, failing the test on the first illegal one.
func play(t *testing.T, b *board.Board, moves ...string) {
	t.Helper()
	for _, s := range moves {
		m, err := notation.ParseMove(s, b)
		if err != nil {
			t.Fatalf("move %s: %v\n%s", s, err, b)
		}
		if _, err := b.Apply(m); err != nil {
			t.Fatalf("apply %s: %v", s, err)
		}
	}
}

func moveStrings(moves []board.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

func findMove(moves []board.Move, uci string) (board.Move, bool) {
	for _, m := range moves {
		if m.String() == uci {
			return m, true
		}
	}
	return board.NoMove, false
}

func perft(b *board.Board, depth int) int64 {
	if depth == 0 {
		return 1
	}
	moves := b.LegalMoves(b.SideToMove())
	if depth == 1 {
		return int64(len(moves))
	}
	var nodes int64
	for _, m := range moves {
		undo := b.ApplyUnchecked(m)
		nodes += perft(b, depth-1)
		b.Undo(m, undo)
	}
	return nodes
}

// sampleFENs seeds the random walks.
var sampleFENs = []string{
	notation.StartFEN,
	kiwipeteFEN,
	position3FEN,
	position4FEN,
	position5FEN,
	"8/8/8/K2pP2r/8/8/8/7k w - d6 0 1",
	"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
	"4k3/1P6/8/8/8/8/6p1/4K3 w - - 0 1",
}

// walk plays random legal moves from fen and calls visit on every position
// reached, including the first. It stops early when the side to move has no
// legal moves.
func walk(t *testing.T, fen string, seed uint64, plies int, visit func(b *board.Board)) {
	t.Helper()
	b := mustFEN(t, fen)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; ; i++ {
		visit(b)
		if i == plies {
			return
		}
		moves := b.LegalMoves(b.SideToMove())
		if len(moves) == 0 {
			return
		}
		if _, err := b.Apply(moves[rng.Intn(len(moves))]); err != nil {
			t.Fatalf("Apply during walk from %q: %v", fen, err)
		}
	}
}
