package eval_test

import (
	"context"
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, position string) *board.Board {
	t.Helper()

	pos, turn, noprogress, fullmoves, err := fen.Decode(position)
	require.NoError(t, err)
	return board.NewBoard(board.NewZobristTable(1), pos, turn, noprogress, fullmoves)
}

func TestMaterial(t *testing.T) {
	tests := []struct {
		fen      string
		expected eval.Score
	}{
		{fen.Initial, 0},
		{"k7/8/8/8/8/8/8/7K w - - 0 1", 0},
		{"kq6/8/8/8/8/8/8/7K w - - 0 1", -900},
		{"kb6/8/8/8/8/8/8/6QK w - - 0 1", 580},
	}

	for _, tt := range tests {
		b := newTestBoard(t, tt.fen)
		actual := eval.Material{}.Evaluate(context.Background(), b)
		assert.Equal(t, tt.expected, actual, "fen=%v", tt.fen)
	}
}

func TestDefaultSymmetricPositionIsZero(t *testing.T) {
	b := newTestBoard(t, fen.Initial)
	score := eval.Default{}.Evaluate(context.Background(), b)
	assert.Equal(t, eval.ZeroScore, score, "initial position must be exactly balanced")
}

func TestDefaultFavorsMaterialAdvantage(t *testing.T) {
	// White is up a whole queen with everything else level; the evaluator must reflect it.
	up := newTestBoard(t, "4k3/8/8/8/8/8/8/4K2Q w - - 0 1")
	even := newTestBoard(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")

	upScore := eval.Default{}.Evaluate(context.Background(), up)
	evenScore := eval.Default{}.Evaluate(context.Background(), even)

	assert.Greater(t, upScore, evenScore)
}

func TestDefaultRecognizesCheckmate(t *testing.T) {
	// Fool's mate: Black has just delivered checkmate, White to move.
	b := newTestBoard(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.True(t, b.IsCheckmate())

	score := eval.Default{}.Evaluate(context.Background(), b)
	assert.Equal(t, eval.NegInf, score, "White to move and mated must score as a loss for White")
}

func TestComputePhase(t *testing.T) {
	full := newTestBoard(t, fen.Initial)
	assert.True(t, eval.ComputePhase(full.Position()).IsOpening())

	bare := newTestBoard(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.True(t, eval.ComputePhase(bare.Position()).IsEndgame())
}

func TestNoiseIsBounded(t *testing.T) {
	b := newTestBoard(t, fen.Initial)

	noisy := eval.NewRandom(50, 1)
	for i := 0; i < 100; i++ {
		n := noisy.Evaluate(context.Background(), b)
		assert.LessOrEqual(t, n, eval.Score(25))
		assert.GreaterOrEqual(t, n, eval.Score(-25))
	}
}

func TestZeroValueRandomIsAlwaysZero(t *testing.T) {
	b := newTestBoard(t, fen.Initial)
	var z eval.Random
	assert.Equal(t, eval.Score(0), z.Evaluate(context.Background(), b))
}
