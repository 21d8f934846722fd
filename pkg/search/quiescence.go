package search

import (
	"context"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// qsearchDepthCap bounds quiescence recursion: captures/checks chains terminate eventually in
// any legal position, but the cap guards against pathological positions and keeps worst-case
// work bounded.
const qsearchDepthCap = 8

// quiescence resolves the horizon effect by only searching "loud" moves: captures,
// promotions and checks. Returns the score from the perspective of color (1 for White to
// move, -1 for Black), fail-hard within [alpha;beta].
func quiescence(ctx context.Context, ev eval.Evaluator, noise eval.Random, b *board.Board, alpha, beta eval.Score, color eval.Score, d int) (uint64, eval.Score) {
	if contextx.IsCancelled(ctx) {
		return 0, eval.InvalidScore
	}

	standPat := color*ev.Evaluate(ctx, b) + noise.Evaluate(ctx, b)
	if d >= qsearchDepthCap {
		return 1, standPat
	}
	if standPat >= beta {
		return 1, beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	var nodes uint64 = 1

	loud := loudMoves(b.Position(), b.Turn())
	loud = orderByMVVLVA(loud)

	for _, m := range loud {
		if !b.PushMove(m) {
			continue
		}

		n, score := quiescence(ctx, ev, noise, b, beta.Negate(), alpha.Negate(), -color, d+1)
		score = eval.IncrementMateDistance(score).Negate()
		nodes += n

		b.PopMove()

		if score.IsInvalid() {
			return nodes, eval.InvalidScore
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			return nodes, beta
		}
	}

	return nodes, alpha
}

// loudMoves returns the captures, promotions and checks among the side's legal moves.
func loudMoves(pos *board.Position, turn board.Color) []board.Move {
	var out []board.Move
	for _, m := range pos.LegalMoves(turn) {
		if m.IsCapture() || m.IsPromotion() || m.GivesCheck {
			out = append(out, m)
		}
	}
	return out
}

// orderByMVVLVA orders loud moves by victim value minus a tenth of the aggressor's value,
// descending.
func orderByMVVLVA(moves []board.Move) []board.Move {
	board.SortByPriority(moves, func(m board.Move) board.MovePriority {
		return board.MovePriority(eval.NominalValue(m.Capture) - eval.NominalValue(m.Piece)/10)
	})
	return moves
}
