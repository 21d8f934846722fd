package search

import (
	"context"
	"strings"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// nullMoveMinDepth is the minimum remaining depth at which null-move pruning is attempted.
const nullMoveMinDepth = 3

// bookMaxDepth and bookMaxFullmove bound where the opening book may still splice a move into
// the search: deep in a line, or well past the opening, book moves are no longer relevant.
const (
	bookMaxDepth    = 6
	bookMaxFullmove = 10
)

// Negamax implements iterative-deepening-friendly alpha-beta search with quiescence,
// transposition-table cutoffs, null-move pruning, late-move reduction, killer/history move
// ordering and an opening-book splice near the root. It is the Search driven by a
// searchctl.Launcher for one depth at a time.
type Negamax struct {
	Eval eval.Evaluator
}

func (n Negamax) Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (uint64, eval.Score, []board.Move, error) {
	run := &runNegamax{
		eval:  orDefault(n.Eval),
		sctx:  sctx,
		b:     b,
		fullm: b.FullMoves(),
	}

	low, high := eval.NegInf, eval.Inf
	if !sctx.Alpha.IsInvalid() {
		low = sctx.Alpha
	}
	if !sctx.Beta.IsInvalid() {
		high = sctx.Beta
	}

	color := eval.Unit(b.Turn())
	score, pv := run.search(ctx, depth, low, high, color)
	if contextx.IsCancelled(ctx) {
		return 0, eval.InvalidScore, nil, ErrHalted
	}
	return run.nodes, color * score, pv, nil
}

func orDefault(e eval.Evaluator) eval.Evaluator {
	if e == nil {
		return eval.Default{}
	}
	return e
}

type runNegamax struct {
	eval  eval.Evaluator
	sctx  *Context
	b     *board.Board
	nodes uint64
	fullm int

	ponder []board.Move
}

// search returns the score from the perspective of color (1 == White to move, -1 == Black to
// move at this node), fail-hard within [alpha;beta].
func (r *runNegamax) search(ctx context.Context, depth int, alpha, beta eval.Score, color eval.Score) (eval.Score, []board.Move) {
	if contextx.IsCancelled(ctx) {
		return eval.InvalidScore, nil
	}

	// (1) Repetition cut: treat a position seen twice before as a draw by contempt.
	if r.b.IsRepetition(3) {
		return eval.ZeroScore, nil
	}

	// (2) Horizon: drop into quiescence search.
	if depth <= 0 || r.b.IsGameOver() {
		nodes, score := quiescence(ctx, r.eval, r.sctx.Noise, r.b, alpha, beta, color, 0)
		r.nodes += nodes
		return score, nil
	}

	r.nodes++
	alphaOrig := alpha

	// (3) TT probe.
	var ttBest board.Move
	tt := r.sctx.TT
	if tt == nil {
		tt = NoTranspositionTable{}
	}
	if bound, d, score, move, ok := tt.Read(r.b.Hash()); ok {
		ttBest = move
		if d >= depth {
			switch bound {
			case ExactBound:
				return score, nil
			case LowerBound:
				if score > alpha {
					alpha = score
				}
			case UpperBound:
				if score < beta {
					beta = score
				}
			}
			if alpha >= beta {
				return score, nil
			}
		}
	}

	turn := r.b.Turn()
	inCheck := r.b.Position().IsChecked(turn)

	// (4) Check extension.
	if inCheck {
		depth++
	}

	// (5) Null-move pruning.
	if depth >= nullMoveMinDepth && !inCheck && hasNonPawnMaterial(r.b.Position(), turn) {
		reduction := 1
		if depth >= 4 {
			reduction = 2
		}

		r.b.PushNullMove()
		score, _ := r.search(ctx, depth-1-reduction, beta.Negate(), beta.Negate()+1, -color)
		r.b.PopMove()

		score = eval.IncrementMateDistance(score).Negate()
		if !score.IsInvalid() && score >= beta {
			return beta, nil
		}
	}

	// (6) Move generation & ordering, with TT best-move hint.
	moves := r.b.Position().LegalMoves(turn)
	if len(moves) == 0 {
		if result := r.b.AdjudicateNoLegalMoves(); result.Reason == board.Checkmate {
			return eval.NegInf, nil // side to move (== color's perspective) is mated
		}
		return eval.ZeroScore, nil
	}

	phase := eval.ComputePhase(r.b.Position())
	moves = Order(moves, depth, ttBest, r.sctx.Killers, r.sctx.History, phase, r.fullm)

	// (7) Opening-book splice.
	if r.sctx.Book != nil && depth <= bookMaxDepth && r.fullm <= bookMaxFullmove {
		if bm, ok := r.sctx.Book.Lookup(ctx, positionFingerprint(r.b)); ok {
			moves = moveToFront(moves, bm)
		}
	}

	if len(r.ponder) > 0 {
		bm := r.ponder[0]
		r.ponder = r.ponder[1:]
		moves = moveToFront(moves, bm)
	}

	var best board.Move
	bestScore := eval.NegInf
	var pv []board.Move
	bound := UpperBound

	for i, m := range moves {
		quiet := m.IsQuiet()

		var score eval.Score
		var rem []board.Move

		if i > 1 && depth >= 3 && quiet && !inCheck {
			reduction := 0
			if i > 4 {
				reduction = 1
			}
			r.b.PushMove(m)
			score, rem = r.search(ctx, depth-1-reduction, beta.Negate(), alpha.Negate(), -color)
			r.b.PopMove()
			score = eval.IncrementMateDistance(score).Negate()

			if !score.IsInvalid() && score > alpha {
				// Re-search at full depth: the reduced search found something promising.
				r.b.PushMove(m)
				score, rem = r.search(ctx, depth-1, beta.Negate(), alpha.Negate(), -color)
				r.b.PopMove()
				score = eval.IncrementMateDistance(score).Negate()
			}
		} else {
			r.b.PushMove(m)
			score, rem = r.search(ctx, depth-1, beta.Negate(), alpha.Negate(), -color)
			r.b.PopMove()
			score = eval.IncrementMateDistance(score).Negate()
		}

		if score.IsInvalid() {
			return eval.InvalidScore, nil
		}

		if score > bestScore {
			bestScore = score
			best = m
			pv = append([]board.Move{m}, rem...)
		}
		if bestScore > alpha {
			alpha = bestScore
		}

		if alpha >= beta {
			if quiet {
				if r.sctx.Killers != nil {
					r.sctx.Killers.Record(depth, m)
				}
				if r.sctx.History != nil {
					r.sctx.History.Record(depth, m)
				}
			}
			tt.Write(r.b.Hash(), LowerBound, depth, beta, m)
			return beta, pv
		}
	}

	switch {
	case bestScore <= alphaOrig:
		bound = UpperBound
	case bestScore >= beta:
		bound = LowerBound
	default:
		bound = ExactBound
	}
	tt.Write(r.b.Hash(), bound, depth, bestScore, best)

	return bestScore, pv
}

func hasNonPawnMaterial(pos *board.Position, c board.Color) bool {
	return pos.Piece(c, board.Knight) != 0 || pos.Piece(c, board.Bishop) != 0 ||
		pos.Piece(c, board.Rook) != 0 || pos.Piece(c, board.Queen) != 0
}

// positionFingerprint returns the first four space-separated FEN fields (piece placement,
// active color, castling availability, en passant target) identifying a position for opening
// book lookups, ignoring the halfmove clock and fullmove counter.
func positionFingerprint(b *board.Board) string {
	full := fen.Encode(b.Position(), b.Turn(), b.NoProgress(), b.FullMoves())
	parts := strings.SplitN(full, " ", 5)
	if len(parts) < 4 {
		return full
	}
	return strings.Join(parts[:4], " ")
}

func moveToFront(moves []board.Move, m board.Move) []board.Move {
	for i, cur := range moves {
		if cur.Equals(m) {
			if i == 0 {
				return moves
			}
			out := make([]board.Move, 0, len(moves))
			out = append(out, cur)
			out = append(out, moves[:i]...)
			out = append(out, moves[i+1:]...)
			return out
		}
	}
	return moves
}
