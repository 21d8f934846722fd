package search_test

import (
	"context"
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, position string) *board.Board {
	t.Helper()

	pos, turn, noprogress, fullmoves, err := fen.Decode(position)
	require.NoError(t, err)
	return board.NewBoard(board.NewZobristTable(1), pos, turn, noprogress, fullmoves)
}

// TestNegamaxFindsMateInOne checks that a mate-in-one position is recognized as such: two
// White rooks deliver back-rank mate against a lone Black King.
func TestNegamaxFindsMateInOne(t *testing.T) {
	ctx := context.Background()
	b := newTestBoard(t, "k7/7R/6R1/8/8/8/8/7K w - - 0 1")

	n := search.Negamax{Eval: eval.Default{}}
	sctx := &search.Context{Alpha: eval.InvalidScore, Beta: eval.InvalidScore}

	_, score, pv, err := n.Search(ctx, sctx, b, 2)
	require.NoError(t, err)
	require.NotEmpty(t, pv)

	d, ok := score.MateDistance()
	require.True(t, ok, "expected a mate score, got %v", score)
	require.Equal(t, 1, d)
}

// TestNegamaxStartingPositionHasNoMate checks that a shallow search of the initial position
// reports no forced mate for either side.
func TestNegamaxStartingPositionHasNoMate(t *testing.T) {
	ctx := context.Background()
	b := newTestBoard(t, fen.Initial)

	n := search.Negamax{Eval: eval.Default{}}
	sctx := &search.Context{Alpha: eval.InvalidScore, Beta: eval.InvalidScore}

	_, score, _, err := n.Search(ctx, sctx, b, 2)
	require.NoError(t, err)
	require.False(t, score.IsMate())
}

// TestNegamaxHonorsTranspositionTable exercises the TT-probe cutoff path by running the same
// search twice through a shared table and checking the second pass reuses cached entries.
func TestNegamaxHonorsTranspositionTable(t *testing.T) {
	ctx := context.Background()
	b := newTestBoard(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")

	tt := search.NewTranspositionTable(ctx, 1<<20)
	n := search.Negamax{Eval: eval.Default{}}

	sctx1 := &search.Context{Alpha: eval.InvalidScore, Beta: eval.InvalidScore, TT: tt}
	nodes1, score1, _, err := n.Search(ctx, sctx1, b, 3)
	require.NoError(t, err)

	sctx2 := &search.Context{Alpha: eval.InvalidScore, Beta: eval.InvalidScore, TT: tt}
	nodes2, score2, _, err := n.Search(ctx, sctx2, b, 3)
	require.NoError(t, err)

	require.Equal(t, score1, score2)
	require.Greater(t, nodes1, uint64(0))
	require.LessOrEqual(t, nodes2, nodes1, "a warm TT should not need more nodes than the cold search")
}
