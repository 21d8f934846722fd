// Package eval contains static position evaluation logic and utilities.
package eval

import (
	"context"

	"github.com/corvidchess/corvid/pkg/board"
)

// Evaluator is a static position evaluator. It returns a White-positive centipawn score,
// regardless of the side to move. Callers in the search tree apply the side-to-move sign
// themselves (see eval.Unit).
type Evaluator interface {
	Evaluate(ctx context.Context, b *board.Board) Score
}

// Material returns the nominal material balance, White minus Black. Useful as a cheap
// baseline and for move ordering comparisons.
type Material struct{}

func (Material) Evaluate(ctx context.Context, b *board.Board) Score {
	pos := b.Position()

	var score Score
	for p := board.ZeroPiece; p < board.NumPieces; p++ {
		score += Score(pos.Piece(board.White, p).PopCount()-pos.Piece(board.Black, p).PopCount()) * NominalValue(p)
	}
	return score
}

// NominalValue is the absolute nominal value in centipawns of a piece.
func NominalValue(p board.Piece) Score {
	switch p {
	case board.Pawn:
		return 100
	case board.Bishop, board.Knight:
		return 320
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	case board.King:
		return 20000
	default:
		return 0
	}
}

// NominalValueGain is the nominal material gain in centipawns for a move.
func NominalValueGain(m board.Move) Score {
	switch m.Type {
	case board.CapturePromotion:
		return NominalValue(m.Capture) + NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Promotion:
		return NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Capture:
		return NominalValue(m.Capture)
	case board.EnPassant:
		return NominalValue(board.Pawn)
	default:
		return 0
	}
}
