package eval

import (
	"context"

	"github.com/corvidchess/corvid/pkg/board"
)

// weights holds the phase-dependent multiplier for a scored feature. A zero weight means the
// feature does not contribute in that phase.
type weights struct {
	opening, middlegame, endgame float64
}

func (w weights) forPhase(phase Phase) float64 {
	switch {
	case phase.IsOpening():
		return w.opening
	case phase.IsEndgame():
		return w.endgame
	default:
		return w.middlegame
	}
}

var (
	mobilityWeight       = weights{0.8, 2.0, 1.8}
	developmentWeight    = weights{2.5, 0, 0}
	kingSafetyWeight     = weights{2.0, 2.0, 0}
	centerControlWeight  = weights{2.0, 1.5, 0}
	pawnStructureWeight  = weights{0.7, 1.2, 2.5}
	castlingWeight       = weights{2.0, 0, 0}
	activationWeight     = weights{2.5, 0, 0}
	pawnAdvanceWeight    = weights{1.5, 0, 0.5}
	keySquareWeight      = weights{1.8, 1.2, 0}
	queenTradeWeight     = weights{0.1, 0.5, 0}
	attackWeightFactor   = weights{0.7, 1.0, 0.8}
	defenseWeightFactor  = weights{1.2, 1.3, 1.3}
	tacticalThreatWeight = weights{0, 1.8, 0}
	tacticalPatternW     = weights{0, 1.5, 0}
	rookOpenFileWeight   = weights{0, 1.5, 1.8}
	endgameAdvantageW    = weights{0, 0, 2.0}
	passedPawnWeight     = weights{0, 0, 3.0}
	kingEndgameWeight    = weights{0, 0, 3.0}
)

// Default is the phased, weighted positional evaluator described for this engine: material
// and piece-square tables plus 16 scored features, blended across opening/middlegame/endgame
// by a continuous phase parameter. Always White-positive.
type Default struct{}

func (Default) Evaluate(ctx context.Context, b *board.Board) Score {
	if b.IsCheckmate() {
		if b.Turn() == board.White {
			return NegInf
		}
		return Inf
	}
	if b.IsStalemate() || b.IsInsufficientMaterial() {
		return ZeroScore
	}

	pos := b.Position()
	phase := ComputePhase(pos)
	phi := phase.Float()
	turn := b.Turn()

	var score Score
	score += materialAndPST(pos, phi)

	score += Score(weighted(mobility(pos, board.White)-mobility(pos, board.Black), mobilityWeight.forPhase(phase)))
	score += Score(weighted(kingSafety(pos, board.White)-kingSafety(pos, board.Black), kingSafetyWeight.forPhase(phase)))
	score += Score(weighted(pawnStructure(pos, board.White, phase)-pawnStructure(pos, board.Black, phase), pawnStructureWeight.forPhase(phase)))
	score += Score(weighted(centerControl(pos, board.White)-centerControl(pos, board.Black), centerControlWeight.forPhase(phase)))
	score += Score(weighted(development(pos, board.White, b.FullMoves())-development(pos, board.Black, b.FullMoves()), developmentWeight.forPhase(phase)))
	score += Score(weighted(castlingStatus(b, board.White)-castlingStatus(b, board.Black), castlingWeight.forPhase(phase)))
	score += Score(weighted(pieceActivation(pos, board.White)-pieceActivation(pos, board.Black), activationWeight.forPhase(phase)))
	score += Score(weighted(pawnAdvances(pos, board.White)-pawnAdvances(pos, board.Black), pawnAdvanceWeight.forPhase(phase)))
	score += Score(weighted(keySquareControl(pos, board.White)-keySquareControl(pos, board.Black), keySquareWeight.forPhase(phase)))
	score += Score(weighted(queenTrade(pos, board.White)-queenTrade(pos, board.Black), queenTradeWeight.forPhase(phase)))
	score += Score(weighted(attackStrength(pos, board.White)-attackStrength(pos, board.Black), attackWeightFactor.forPhase(phase)))
	score += Score(weighted(defenseStrength(pos, board.White)-defenseStrength(pos, board.Black), defenseWeightFactor.forPhase(phase)))
	score += Score(weighted(rookActivity(pos, board.White)-rookActivity(pos, board.Black), rookOpenFileWeight.forPhase(phase)))

	if phase.IsMiddlegame() {
		score += Score(weighted(tacticalThreats(pos, board.White)-tacticalThreats(pos, board.Black), tacticalThreatWeight.forPhase(phase)))
		score += Score(weighted(tacticalPatterns(pos, board.White)-tacticalPatterns(pos, board.Black), tacticalPatternW.forPhase(phase)))
	}

	if phase.IsEndgame() {
		score += Score(weighted(passedPawnEndgame(pos, board.White, turn)-passedPawnEndgame(pos, board.Black, turn), passedPawnWeight.forPhase(phase)))
		score += Score(weighted(kingActivity(pos, board.White)-kingActivity(pos, board.Black), kingEndgameWeight.forPhase(phase)))
		score += Score(weighted(detectEndgameAdvantage(pos, board.White)-detectEndgameAdvantage(pos, board.Black), endgameAdvantageW.forPhase(phase)))
	}

	return score
}

func weighted(diff int32, weight float64) int32 {
	return scale(diff, weight)
}

// materialAndPST sums material value and piece-square-table value for every piece on the
// board, White-positive (feature 1).
func materialAndPST(pos *board.Position, phi float64) Score {
	var score Score
	for c := board.ZeroColor; c < board.NumColors; c++ {
		unit := Unit(c)
		for p := board.ZeroPiece; p < board.NumPieces; p++ {
			for _, sq := range pos.Piece(c, p).ToSquares() {
				score += unit * (NominalValue(p) + Score(pieceSquareValue(c, p, sq, phi)))
			}
		}
	}
	return score
}

