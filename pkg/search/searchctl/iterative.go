package searchctl

import (
	"context"
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"github.com/seekerror/stdlib/pkg/util/iox"
	"sync"
	"time"
)

// aspirationWindow is the initial half-width of the window centered on the previous
// iteration's score; it widens by the same amount each time a depth fails outside it.
const aspirationWindow = 50

// scoreBound clamps aspiration window edges so a mate-adjacent prev_score cannot push α/β
// into the mate-score range itself.
const scoreBound = 999_999

// Iterative is a search harness for iterative deepening search with aspiration windows. It
// clears killer moves and history once per Launch and reuses them across depths within that
// call, per the opening book and iterative deepening protocol for this engine.
type Iterative struct {
	Root search.Search
	Book search.Book
}

func (i *Iterative) Launch(ctx context.Context, b *board.Board, tt search.TranspositionTable, noise eval.Random, opt Options) (Handle, <-chan search.PV) {
	out := make(chan search.PV, 1)
	h := &handle{
		init: iox.NewAsyncCloser(),
		quit: iox.NewAsyncCloser(),
	}
	go h.process(ctx, i.Root, i.Book, b, tt, noise, opt, out)

	return h, out
}

type handle struct {
	init, quit iox.AsyncCloser

	pv search.PV
	mu sync.Mutex
}

func (h *handle) process(ctx context.Context, root search.Search, book search.Book, b *board.Board, tt search.TranspositionTable, noise eval.Random, opt Options, out chan search.PV) {
	defer h.init.Close()
	defer close(out)

	killers := search.NewKillerTable()
	history := search.NewHistoryTable()

	var soft time.Duration
	var useSoft bool
	if limit, ok := opt.TimeLimit.V(); ok {
		soft, useSoft = EnforceTimeLimit(ctx, h, limit)
	} else {
		soft, useSoft = EnforceTimeControl(ctx, h, opt.TimeControl, b.Turn())
	}

	wctx, cancel := contextx.WithQuitCancel(ctx, h.quit.Closed())
	defer cancel()

	prevScore := eval.ZeroScore
	searchStart := time.Now()

	for depth := 1; !h.quit.IsClosed(); depth++ {
		if limit, ok := opt.DepthLimit.V(); ok && limit > 0 && uint(depth) > limit {
			return // halt: reached max depth
		}

		start := time.Now()

		window := eval.Score(aspirationWindow)
		var pv search.PV

		for {
			alpha := clampScore(prevScore - window)
			beta := clampScore(prevScore + window)

			sctx := &search.Context{
				Alpha:   alpha,
				Beta:    beta,
				TT:      tt,
				Killers: killers,
				History: history,
				Book:    book,
				Noise:   noise,
			}

			nodes, score, moves, err := root.Search(wctx, sctx, b, depth)
			if err != nil {
				if err == search.ErrHalted {
					return // Halt was called, or time expired mid-iteration.
				}
				logw.Errorf(ctx, "Search failed on %v at depth=%v: %v", b, depth, err)
				return
			}

			pv = search.PV{
				Depth: depth,
				Nodes: nodes,
				Score: score,
				Moves: moves,
				Time:  time.Since(start),
			}
			if tt != nil {
				pv.Hash = tt.Used()
			}

			if score <= alpha || score >= beta {
				window += aspirationWindow
				continue
			}

			break
		}

		prevScore = pv.Score

		logw.Debugf(ctx, "Searched %v: %v", b.Position(), pv)

		h.mu.Lock()
		h.pv = pv
		h.mu.Unlock()

		select {
		case <-out:
		default:
		}
		out <- pv

		h.init.Close()
		if md, ok := pv.Score.MateDistance(); ok && int(md) <= depth {
			return // halt: forced mate found within full width search. Exact result.
		}
		if useSoft && soft < time.Since(searchStart) {
			return // halt: exceeded soft time limit. Do not start new search.
		}
	}
}

func clampScore(s eval.Score) eval.Score {
	switch {
	case s < -scoreBound:
		return -scoreBound
	case s > scoreBound:
		return scoreBound
	default:
		return s
	}
}

func (h *handle) Halt() search.PV {
	<-h.init.Closed()
	h.quit.Close()

	h.mu.Lock()
	defer h.mu.Unlock()

	return h.pv
}
