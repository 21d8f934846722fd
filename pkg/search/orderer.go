package search

import (
	"sort"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
)

type scoredMove struct {
	m     board.Move
	score int32
}

// Order sorts moves by descending move-ordering score: the TT/previous-best hint, promotions,
// MVV-LVA captures, killer moves at this depth, checks, the history heuristic, a one-time
// piece-diversity bonus per piece instance, central destinations, and opening-phase minor
// piece development. Sorting is stable on ties, and the same move may accumulate several of
// these signals.
func Order(moves []board.Move, depth int, prevBest board.Move, killers *KillerTable, history *HistoryTable, phase eval.Phase, fullmoves int) []board.Move {
	seenPiece := map[board.Square]bool{}

	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		var s int32

		if !prevBest.IsNull() && prevBest.Equals(m) {
			s += 100000
		}
		if m.IsPromotion() {
			s += 10000
		}
		if m.IsCapture() {
			s += 5000 + 10*int32(eval.NominalValue(m.Capture)) - int32(eval.NominalValue(m.Piece))
		}
		if killers != nil && killers.IsKiller(depth, m) {
			s += 4500
		}
		if m.GivesCheck {
			s += 3000
		}
		if history != nil {
			s += history.Value(m)
		}
		if !seenPiece[m.From] {
			seenPiece[m.From] = true
			s += diversityBonus(m.Piece, isCentralFile(m.From))
		}
		if isCentral4x4(m.To) {
			s += 1500
		}
		if phase.IsOpening() && fullmoves <= 15 && isMinorStartSquare(m.Color, m.Piece, m.From) {
			s += 3000
		}

		scored[i] = scoredMove{m: m, score: s}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	ordered := make([]board.Move, len(scored))
	for i, sm := range scored {
		ordered[i] = sm.m
	}
	return ordered
}

// diversityBonus rewards the first candidate move seen for a given piece instance, to
// encourage trying a different piece before exhausting one piece's destinations.
func diversityBonus(p board.Piece, centralPawn bool) int32 {
	switch p {
	case board.Bishop:
		return 3500
	case board.Queen:
		return 3000
	case board.Rook:
		return 2500
	case board.Pawn:
		if centralPawn {
			return 2000
		}
		return 1500
	case board.Knight:
		return 1000
	default:
		return 0
	}
}

func isCentralFile(sq board.Square) bool {
	return sq.File() == board.FileD || sq.File() == board.FileE
}

// isCentral4x4 reports whether sq lies in the central 4x4 block: files c-f, ranks 3-6.
func isCentral4x4(sq board.Square) bool {
	f, r := sq.File().V(), sq.Rank().V()
	return f >= 2 && f <= 5 && r >= 2 && r <= 5
}

func isMinorStartSquare(c board.Color, p board.Piece, sq board.Square) bool {
	switch {
	case p == board.Bishop && c == board.White:
		return sq == board.C1 || sq == board.F1
	case p == board.Bishop && c == board.Black:
		return sq == board.C8 || sq == board.F8
	case p == board.Knight && c == board.White:
		return sq == board.B1 || sq == board.G1
	case p == board.Knight && c == board.Black:
		return sq == board.B8 || sq == board.G8
	default:
		return false
	}
}
