package board

import "golang.org/x/exp/slices"

// Circumstance restricts when a movement ability may be used.
type Circumstance uint8

const (
	// Anytime abilities apply whenever the path allows.
	Anytime Circumstance = iota
	// FirstMoveOnly abilities apply only from the pawn's home rank.
	FirstMoveOnly
	// MustCapture abilities apply only onto an opposing piece.
	MustCapture
	// EnPassantOnly abilities apply only onto the en-passant target.
	EnPassantOnly
)

// String returns the circumstance name.
func (c Circumstance) String() string {
	switch c {
	case Anytime:
		return "None"
	case FirstMoveOnly:
		return "FirstMoveOnly"
	case MustCapture:
		return "MustCapture"
	case EnPassantOnly:
		return "EnPassantOnly"
	default:
		return "Unknown"
	}
}

// UntilBlocked is the MaxUnits value of sliding abilities.
const UntilBlocked = -1

// Direction is a unit step in file (DF) and rank (DR).
// Knight jumps are a single step of (1,2)-shaped offsets.
type Direction struct {
	DF, DR int
}

// MovementAbility describes one way a piece may move.
type MovementAbility struct {
	MaxUnits     int
	Direction    Direction
	Circumstance Circumstance
}

// Steps returns the maximum number of steps along Direction.
func (a MovementAbility) Steps() int {
	if a.MaxUnits == UntilBlocked {
		return 7
	}
	return a.MaxUnits
}

// CanCapture reports whether the ability can land on an opposing piece.
// Pawn pushes never capture; en-passant captures land on an empty square.
func (a MovementAbility) CanCapture(pt PieceType) bool {
	if pt != Pawn {
		return true
	}
	return a.Circumstance == MustCapture
}

var (
	orthogonal = []Direction{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	diagonal   = []Direction{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	allAround  = []Direction{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	knightJump = []Direction{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
)

// abilities is the fixed movement table: [Color][PieceType].
// Only pawns differ between colours.
var abilities [2][6][]MovementAbility

func init() {
	for c := White; c <= Black; c++ {
		abilities[c][Knight] = repeat(knightJump, 1)
		abilities[c][Bishop] = repeat(diagonal, UntilBlocked)
		abilities[c][Rook] = repeat(orthogonal, UntilBlocked)
		abilities[c][Queen] = repeat(allAround, UntilBlocked)
		abilities[c][King] = repeat(allAround, 1)
		abilities[c][Pawn] = pawnAbilities(c)
	}
}

func repeat(dirs []Direction, maxUnits int) []MovementAbility {
	out := make([]MovementAbility, len(dirs))
	for i, d := range dirs {
		out[i] = MovementAbility{MaxUnits: maxUnits, Direction: d, Circumstance: Anytime}
	}
	return out
}

func pawnAbilities(c Color) []MovementAbility {
	fwd := pawnForward(c)
	return []MovementAbility{
		{MaxUnits: 1, Direction: Direction{0, fwd}, Circumstance: Anytime},
		{MaxUnits: 2, Direction: Direction{0, fwd}, Circumstance: FirstMoveOnly},
		{MaxUnits: 1, Direction: Direction{-1, fwd}, Circumstance: MustCapture},
		{MaxUnits: 1, Direction: Direction{1, fwd}, Circumstance: MustCapture},
		{MaxUnits: 1, Direction: Direction{-1, fwd}, Circumstance: EnPassantOnly},
		{MaxUnits: 1, Direction: Direction{1, fwd}, Circumstance: EnPassantOnly},
	}
}

// pawnForward returns the rank step of a pawn of colour c.
func pawnForward(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

// AbilitiesFor returns the movement abilities of a piece type in table order.
// The colour only matters for pawns. The returned slice is a copy.
func AbilitiesFor(pt PieceType, c Color) []MovementAbility {
	if pt >= NoPieceType || c >= NoColor {
		return nil
	}
	return slices.Clone(abilities[c][pt])
}

// Pawn ranks relative to the pawn's own side.
const (
	pawnHomeRank      = 1
	enPassantRank     = 2
	pawnPromotionRank = 7
)
