package board_test

import (
	"errors"
	"testing"

	"github.com/hailam/chessrules/internal/board"
)

func TestAbilityCounts(t *testing.T) {
	tests := []struct {
		pt       board.PieceType
		count    int
		maxUnits int
	}{
		{board.King, 8, 1},
		{board.Queen, 8, board.UntilBlocked},
		{board.Rook, 4, board.UntilBlocked},
		{board.Bishop, 4, board.UntilBlocked},
		{board.Knight, 8, 1},
	}

	for _, tc := range tests {
		for _, c := range []board.Color{board.White, board.Black} {
			got := board.AbilitiesFor(tc.pt, c)
			if len(got) != tc.count {
				t.Errorf("%s/%s: %d abilities, want %d", c, tc.pt, len(got), tc.count)
			}
			for _, a := range got {
				if a.MaxUnits != tc.maxUnits || a.Circumstance != board.Anytime {
					t.Errorf("%s/%s: unexpected ability %+v", c, tc.pt, a)
				}
			}
		}
	}
}

func TestKnightJumps(t *testing.T) {
	seen := make(map[board.Direction]bool)
	for _, a := range board.AbilitiesFor(board.Knight, board.White) {
		d := a.Direction
		df, dr := abs(d.DF), abs(d.DR)
		if !(df == 1 && dr == 2) && !(df == 2 && dr == 1) {
			t.Errorf("not a knight jump: %+v", d)
		}
		if seen[d] {
			t.Errorf("duplicate jump %+v", d)
		}
		seen[d] = true
	}
}

func TestPawnAbilitiesFollowColour(t *testing.T) {
	for _, c := range []board.Color{board.White, board.Black} {
		want := 1
		if c == board.Black {
			want = -1
		}
		abilities := board.AbilitiesFor(board.Pawn, c)
		if len(abilities) != 6 {
			t.Fatalf("%s pawn: %d abilities, want 6", c, len(abilities))
		}
		counts := make(map[board.Circumstance]int)
		for _, a := range abilities {
			if a.Direction.DR != want {
				t.Errorf("%s pawn ability %+v moves the wrong way", c, a)
			}
			counts[a.Circumstance]++
		}
		if counts[board.Anytime] != 1 || counts[board.FirstMoveOnly] != 1 ||
			counts[board.MustCapture] != 2 || counts[board.EnPassantOnly] != 2 {
			t.Errorf("%s pawn circumstances: %v", c, counts)
		}
	}
}

func TestAbilitiesForReturnsCopy(t *testing.T) {
	a := board.AbilitiesFor(board.Rook, board.White)
	a[0].MaxUnits = 3
	if b := board.AbilitiesFor(board.Rook, board.White); b[0].MaxUnits != board.UntilBlocked {
		t.Error("mutating the result changed the table")
	}
	if got := board.AbilitiesFor(board.NoPieceType, board.White); got != nil {
		t.Errorf("NoPieceType abilities = %v, want nil", got)
	}
}

func TestSquareColour(t *testing.T) {
	tests := []struct {
		sq   board.Square
		want board.Color
	}{
		{board.A1, board.Black},
		{board.H1, board.White},
		{board.D1, board.White},
		{board.E1, board.Black},
		{board.H8, board.Black},
		{board.A8, board.White},
	}
	for _, tc := range tests {
		if got := tc.sq.Color(); got != tc.want {
			t.Errorf("%s colour = %s, want %s", tc.sq, got, tc.want)
		}
	}
}

func TestSquareOf(t *testing.T) {
	sq, err := board.SquareOf(4, 3)
	if err != nil || sq != board.E4 {
		t.Errorf("SquareOf(4,3) = %s, %v; want e4", sq, err)
	}
	for _, c := range [][2]int{{-1, 0}, {8, 0}, {0, 8}, {3, -2}} {
		if _, err := board.SquareOf(c[0], c[1]); !errors.Is(err, board.ErrNoSuchSquare) {
			t.Errorf("SquareOf(%d,%d) error = %v, want ErrNoSuchSquare", c[0], c[1], err)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestRelativeRank(t *testing.T) {
	tests := []struct {
		sq   board.Square
		c    board.Color
		want int
	}{
		{board.E2, board.White, 1},
		{board.E7, board.Black, 1},
		{board.D3, board.White, 2},
		{board.D6, board.Black, 2},
		{board.A8, board.White, 7},
		{board.A1, board.Black, 7},
		{board.H1, board.White, 0},
	}

	for _, tc := range tests {
		if got := tc.sq.RelativeRank(tc.c); got != tc.want {
			t.Errorf("%s.RelativeRank(%s) = %d, want %d", tc.sq, tc.c, got, tc.want)
		}
	}
}
