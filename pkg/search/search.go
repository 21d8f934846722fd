// Package search contains the alpha-beta game tree search and its supporting tables.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
)

// ErrHalted is returned by a Search invocation that was cancelled mid-flight via ctx.
var ErrHalted = errors.New("search halted")

// PV represents the principal variation found for some search depth.
type PV struct {
	Depth int           // depth of search
	Moves []board.Move  // principal variation, best move first
	Score eval.Score    // evaluation at depth, White-positive
	Nodes uint64        // interior/leaf nodes searched
	Time  time.Duration // time taken by search
	Hash  float64       // transposition table utilization [0;1]
}

func (p PV) String() string {
	pv := board.PrintMoves(p.Moves)
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v hash=%v%% pv=%v", p.Depth, p.Score, p.Nodes, p.Time, int(100*p.Hash), pv)
}

// Context carries the per-search-call dependencies threaded through the recursion: the
// transposition table, the killer/history move-ordering tables, evaluation noise, the root
// alpha/beta window and an optional ponder line to explore first regardless of ordering.
type Context struct {
	Alpha, Beta eval.Score

	TT      TranspositionTable
	Killers *KillerTable
	History *HistoryTable
	Book    Book
	Noise   eval.Random

	Ponder []board.Move
}

// Book is the minimal opening-book surface the negamax core splices into its move ordering.
// It is declared here, so pkg/search does not import pkg/book; pkg/book.Book satisfies it
// structurally.
type Book interface {
	Lookup(ctx context.Context, position string) (board.Move, bool)
}

// Search implements game tree search to a fixed depth. Thread-safe iff the supplied TT,
// KillerTable and HistoryTable are each used by a single Search call at a time.
type Search interface {
	// Search returns the White-positive score and principal variation for the given board at
	// the given depth.
	Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (nodes uint64, score eval.Score, pv []board.Move, err error)
}
