package eval

import "github.com/corvidchess/corvid/pkg/board"

// Phase is a continuous measure of game progression, expressed on a fixed-point scale of
// 0..phaseUnit: phaseUnit means opening (full non-pawn material on board), 0 means endgame.
// Keeping it integer keeps the evaluator deterministic across platforms, per the convention
// documented for phase blending throughout this engine's evaluation.
type Phase int32

const phaseUnit Phase = 24

// ComputePhase derives the phase from the non-pawn material remaining for both colors. Each
// missing queen counts 4, each missing rook 2, each missing bishop or knight 1, against the
// full starting complement (2 queens, 4 rooks, 4 bishops, 4 knights); extra promoted pieces
// push the raw value above phaseUnit, so the result is clamped to [0;phaseUnit].
func ComputePhase(pos *board.Position) Phase {
	missing := Phase(0)
	missing += Phase(2-totalCount(pos, board.Queen)) * 4
	missing += Phase(4-totalCount(pos, board.Rook)) * 2
	missing += Phase(4 - totalCount(pos, board.Bishop))
	missing += Phase(4 - totalCount(pos, board.Knight))

	raw := phaseUnit - missing
	return clampPhase(raw)
}

func totalCount(pos *board.Position, p board.Piece) int {
	return pos.Piece(board.White, p).PopCount() + pos.Piece(board.Black, p).PopCount()
}

func clampPhase(p Phase) Phase {
	switch {
	case p < 0:
		return 0
	case p > phaseUnit:
		return phaseUnit
	default:
		return p
	}
}

// Float returns phase as phi in [0;1]: 1 is opening, 0 is endgame.
func (p Phase) Float() float64 {
	return float64(p) / float64(phaseUnit)
}

// IsOpening reports phi > 0.7.
func (p Phase) IsOpening() bool {
	return p.Float() > 0.7
}

// IsEndgame reports phi <= 0.3.
func (p Phase) IsEndgame() bool {
	return p.Float() <= 0.3
}

// IsMiddlegame reports 0.3 < phi <= 0.7.
func (p Phase) IsMiddlegame() bool {
	return !p.IsOpening() && !p.IsEndgame()
}

// scale multiplies a score by a weight expressed as a float, truncating towards zero.
func scale(s int32, weight float64) int32 {
	return int32(float64(s) * weight)
}
