// Package perft counts the leaf nodes of the legal move tree. It is the
// standard way to verify move generation against published node counts.
package perft

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/hailam/chessrules/internal/board"
)

// Cache stores node counts keyed by position hash and depth.
type Cache interface {
	Lookup(hash uint64, depth int) (nodes int64, ok bool)
	Store(hash uint64, depth int, nodes int64)
}

// Count returns the number of leaf nodes at the given depth. cache may be nil.
// b is restored before Count returns.
func Count(b *board.Board, depth int, cache Cache) int64 {
	if depth <= 0 {
		return 1
	}

	if cache != nil && depth > 1 {
		if nodes, ok := cache.Lookup(b.Hash(), depth); ok {
			return nodes
		}
	}

	moves := b.LegalMoves(b.SideToMove())
	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for _, m := range moves {
		undo := b.ApplyUnchecked(m)
		nodes += Count(b, depth-1, cache)
		b.Undo(m, undo)
	}

	if cache != nil {
		cache.Store(b.Hash(), depth, nodes)
	}
	return nodes
}

// Result is the node count below one root move.
type Result struct {
	Move  board.Move
	Nodes int64
}

// Divide returns the node count below each root move, sorted by UCI string.
func Divide(b *board.Board, depth int, cache Cache) []Result {
	if depth <= 0 {
		return nil
	}
	moves := b.LegalMoves(b.SideToMove())
	results := make([]Result, 0, len(moves))
	for _, m := range moves {
		undo := b.ApplyUnchecked(m)
		results = append(results, Result{Move: m, Nodes: Count(b, depth-1, cache)})
		b.Undo(m, undo)
	}
	sortResults(results)
	return results
}

// CountParallel splits the root moves across goroutines, each working on its
// own copy of b. At most workers goroutines run at once; workers <= 0 means
// one per root move. cache must be safe for concurrent use when non-nil.
func CountParallel(ctx context.Context, b *board.Board, depth, workers int, cache Cache) (int64, []Result, error) {
	if depth <= 0 {
		return 1, nil, nil
	}

	moves := b.LegalMoves(b.SideToMove())
	results := make([]Result, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			branch := b.Copy()
			branch.ApplyUnchecked(m)
			results[i] = Result{Move: m, Nodes: Count(branch, depth-1, cache)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, nil, err
	}

	var total int64
	for _, r := range results {
		total += r.Nodes
	}
	sortResults(results)
	return total, results, nil
}

func sortResults(results []Result) {
	sort.Slice(results, func(i, j int) bool {
		return results[i].Move.String() < results[j].Move.String()
	})
}
