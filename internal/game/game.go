// Package game tracks a single chess game: the board, the move history and
// the outcome, re-evaluated after every move.
package game

import (
	"errors"
	"fmt"

	"github.com/hailam/chessrules/internal/board"
)

var (
	// ErrGameOver is returned when a move or takeback is attempted in a
	// terminal state. Start a new game instead.
	ErrGameOver = errors.New("game is over")
	// ErrNoHistory is returned by Takeback when no move has been played.
	ErrNoHistory = errors.New("no move to take back")
	// ErrGameStarted is returned when editing a game that already has moves.
	ErrGameStarted = errors.New("game already started")
	// ErrUnknownStart is returned for an unrecognised starting position kind.
	ErrUnknownStart = errors.New("unknown starting position")
)

// StartKind selects how the initial board is built.
type StartKind uint8

const (
	Standard StartKind = iota
	Empty
	Custom
)

// StartingPosition is the one configuration option of a game.
// Setup is only read for Custom.
type StartingPosition struct {
	Kind  StartKind
	Setup board.Setup
}

// CustomPosition is shorthand for a Custom starting position.
func CustomPosition(s board.Setup) StartingPosition {
	return StartingPosition{Kind: Custom, Setup: s}
}

type ply struct {
	move board.Move
	undo board.Undo
}

// Game owns one board. It is not safe for concurrent use.
type Game struct {
	board   *board.Board
	plies   []ply
	seen    map[board.PositionKey]int
	outcome Outcome
}

// New creates a game from a starting position.
func New(start StartingPosition) (*Game, error) {
	var b *board.Board
	switch start.Kind {
	case Standard:
		b = board.NewStandard()
	case Empty:
		b = board.NewEmpty()
	case Custom:
		var err error
		if b, err = board.FromSetup(start.Setup); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStart, start.Kind)
	}

	g := &Game{}
	g.reset(b)
	return g, nil
}

// reset installs b as a fresh board with no history.
func (g *Game) reset(b *board.Board) {
	g.board = b
	g.plies = nil
	g.seen = map[board.PositionKey]int{b.Key(): 1}
	g.evaluate()
}

// evaluate recomputes the outcome. Boards that break invariants (for example
// an empty board being set up) stay Ongoing; Play rejects them.
func (g *Game) evaluate() {
	if g.board.Validate() != nil {
		g.outcome = ongoing
		return
	}
	g.outcome = Evaluate(g.board, g.seen[g.board.Key()])
}

// Board returns a copy of the current board.
func (g *Game) Board() *board.Board {
	return g.board.Copy()
}

// Outcome returns the current outcome.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// LegalMoves returns the legal moves of the side to move, or nil once the
// game is over.
func (g *Game) LegalMoves() []board.Move {
	if g.outcome.Status.IsTerminal() {
		return nil
	}
	return g.board.LegalMoves(g.board.SideToMove())
}

// Play applies a legal move and re-evaluates the outcome.
func (g *Game) Play(m board.Move) error {
	if g.outcome.Status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrGameOver, g.outcome)
	}
	undo, err := g.board.Apply(m)
	if err != nil {
		return err
	}
	g.plies = append(g.plies, ply{move: m, undo: undo})
	g.seen[g.board.Key()]++
	g.evaluate()
	return nil
}

// Takeback reverts the last move of an ongoing game.
func (g *Game) Takeback() error {
	if g.outcome.Status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrGameOver, g.outcome)
	}
	if len(g.plies) == 0 {
		return ErrNoHistory
	}
	last := g.plies[len(g.plies)-1]
	key := g.board.Key()
	if g.seen[key]--; g.seen[key] <= 0 {
		delete(g.seen, key)
	}
	g.board.Undo(last.move, last.undo)
	g.plies = g.plies[:len(g.plies)-1]
	g.evaluate()
	return nil
}

// History returns the moves played so far.
func (g *Game) History() []board.Move {
	moves := make([]board.Move, len(g.plies))
	for i, p := range g.plies {
		moves[i] = p.move
	}
	return moves
}

// RepetitionCount returns how often the current position has occurred.
func (g *Game) RepetitionCount() int {
	return g.seen[g.board.Key()]
}

// Place puts a piece on a square of a game with no moves played.
// board.NoPiece clears the square.
func (g *Game) Place(sq board.Square, p board.Piece) error {
	if len(g.plies) > 0 {
		return ErrGameStarted
	}
	if !sq.IsValid() {
		return fmt.Errorf("%w: %d", board.ErrNoSuchSquare, sq)
	}
	s := g.board.Setup()
	if p == board.NoPiece {
		delete(s.Pieces, sq)
	} else {
		s.Pieces[sq] = p
	}
	s.CastlingRights = s.SupportedCastling()
	s.EnPassant = board.NoSquare
	g.reset(board.Build(s))
	return nil
}

// Clear empties a square of a game with no moves played.
func (g *Game) Clear(sq board.Square) error {
	return g.Place(sq, board.NoPiece)
}
