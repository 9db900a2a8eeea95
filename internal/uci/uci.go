// Package uci drives a game over a line based text protocol. It follows the
// Universal Chess Interface for position setup and adds debug commands for
// inspecting and playing the game; there is no search.
package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/hailam/chessrules/internal/game"
	"github.com/hailam/chessrules/internal/notation"
	"github.com/hailam/chessrules/internal/perft"
)

// UCI implements the protocol handler.
type UCI struct {
	in  io.Reader
	out io.Writer

	game *game.Game

	// Perft configuration
	perftCache   perft.Cache
	perftWorkers int
}

// New creates a protocol handler reading commands from in and writing
// responses to out. It starts from the standard position.
func New(in io.Reader, out io.Writer) *UCI {
	u := &UCI{in: in, out: out}
	u.handleNewGame()
	return u
}

// SetPerftCache makes perft commands use cache. It must be safe for
// concurrent use when workers > 0.
func (u *UCI) SetPerftCache(cache perft.Cache, workers int) {
	u.perftCache = cache
	u.perftWorkers = workers
}

// Game returns the game being driven.
func (u *UCI) Game() *game.Game {
	return u.game
}

// Run reads commands until quit or end of input.
func (u *UCI) Run() error {
	scanner := bufio.NewScanner(u.in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			fmt.Fprintln(u.out, "readyok")
		case "ucinewgame":
			u.handleNewGame()
		case "position":
			u.handlePosition(args)
		case "go":
			if len(args) > 0 && args[0] == "perft" {
				u.handlePerft(args[1:])
			} else {
				u.info("only go perft is supported")
			}
		case "quit":
			return nil
		// Debug commands
		case "d":
			u.handleDisplay()
		case "moves":
			u.handleMoves()
		case "play":
			u.handlePlay(args)
		case "takeback":
			u.handleTakeback()
		case "perft":
			u.handlePerft(args)
		default:
			u.info("unknown command: %s", cmd)
		}
	}
	return scanner.Err()
}

func (u *UCI) info(format string, args ...any) {
	fmt.Fprintf(u.out, "info string "+format+"\n", args...)
}

// handleUCI responds to the "uci" command.
func (u *UCI) handleUCI() {
	fmt.Fprintln(u.out, "id name ChessRules")
	fmt.Fprintln(u.out, "id author ChessRules Team")
	fmt.Fprintln(u.out, "uciok")
}

// handleNewGame starts over from the standard position.
func (u *UCI) handleNewGame() {
	g, err := game.New(game.StartingPosition{Kind: game.Standard})
	if err != nil {
		// The standard position is always valid.
		panic(err)
	}
	u.game = g
}

// handlePosition parses and sets up a position.
// Formats:
//   - position startpos
//   - position startpos moves e2e4 e7e5
//   - position fen <fen>
//   - position fen <fen> moves e2e4
//
// On error the previous game is kept.
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	setupEnd, moveStart := len(args), len(args)
	for i, arg := range args {
		if arg == "moves" {
			setupEnd, moveStart = i, i+1
			break
		}
	}

	var start game.StartingPosition
	switch args[0] {
	case "startpos":
		start = game.StartingPosition{Kind: game.Standard}
	case "fen":
		s, err := notation.ParseSetup(strings.Join(args[1:setupEnd], " "))
		if err != nil {
			u.info("Invalid FEN: %v", err)
			return
		}
		start = game.CustomPosition(s)
	default:
		u.info("Invalid position: %s", args[0])
		return
	}

	g, err := game.New(start)
	if err != nil {
		u.info("Invalid position: %v", err)
		return
	}

	for _, moveStr := range args[moveStart:] {
		if err := playText(g, moveStr); err != nil {
			u.info("Invalid move: %s: %v", moveStr, err)
			return
		}
	}
	u.game = g
}

// playText plays a move written in UCI or SAN notation.
func playText(g *game.Game, text string) error {
	b := g.Board()
	m, err := notation.ParseMove(text, b)
	if err != nil {
		var sanErr error
		if m, sanErr = notation.ParseSAN(text, b); sanErr != nil {
			return err
		}
	}
	return g.Play(m)
}

// handleDisplay prints the board and its state.
func (u *UCI) handleDisplay() {
	b := u.game.Board()
	fmt.Fprintln(u.out, b.String())
	fmt.Fprintf(u.out, "Fen: %s\n", notation.FEN(b))
	fmt.Fprintf(u.out, "Key: %016X\n", b.Hash())

	var checkers []string
	for _, sq := range b.Checkers(b.SideToMove()).Squares() {
		checkers = append(checkers, sq.String())
	}
	fmt.Fprintf(u.out, "Checkers: %s\n", strings.Join(checkers, " "))
	fmt.Fprintf(u.out, "Outcome: %s\n", u.game.Outcome())
}

// handleMoves lists the legal moves in SAN.
func (u *UCI) handleMoves() {
	b := u.game.Board()
	moves := u.game.LegalMoves()
	sans := make([]string, len(moves))
	for i, m := range moves {
		sans[i] = notation.SAN(b, m)
	}
	fmt.Fprintf(u.out, "Legal moves (%d): %s\n", len(moves), strings.Join(sans, " "))
}

// handlePlay plays moves on the current game.
func (u *UCI) handlePlay(args []string) {
	for _, moveStr := range args {
		if err := playText(u.game, moveStr); err != nil {
			u.info("Invalid move: %s: %v", moveStr, err)
			return
		}
	}
	if out := u.game.Outcome(); out.Status.IsTerminal() {
		fmt.Fprintf(u.out, "Outcome: %s\n", out)
	}
}

// handleTakeback reverts the last move.
func (u *UCI) handleTakeback() {
	if err := u.game.Takeback(); err != nil {
		u.info("Takeback failed: %v", err)
	}
}

// handlePerft runs a perft test with per-move output.
func (u *UCI) handlePerft(args []string) {
	depth := 5
	if len(args) > 0 {
		d, err := strconv.Atoi(args[0])
		if err != nil || d < 1 {
			u.info("Invalid depth: %s", args[0])
			return
		}
		depth = d
	}

	b := u.game.Board()
	start := time.Now()

	var results []perft.Result
	if u.perftWorkers > 0 {
		var err error
		if _, results, err = perft.CountParallel(context.Background(), b, depth, u.perftWorkers, u.perftCache); err != nil {
			u.info("perft failed: %v", err)
			return
		}
	} else {
		results = perft.Divide(b, depth, u.perftCache)
	}

	var nodes int64
	for _, r := range results {
		fmt.Fprintf(u.out, "%s: %d\n", r.Move, r.Nodes)
		nodes += r.Nodes
	}
	elapsed := time.Since(start)

	fmt.Fprintln(u.out)
	fmt.Fprintf(u.out, "Nodes searched: %d\n", nodes)
	fmt.Fprintf(u.out, "Time: %v\n", elapsed.Round(time.Millisecond))
}
