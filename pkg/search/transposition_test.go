package search_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestTranspositionTable(t *testing.T) {
	ctx := context.Background()

	// Size rounds down to the nearest power-of-two entry count.
	tt := search.NewTranspositionTable(ctx, 0x1000)
	assert.Equal(t, uint64(0x1000), tt.Size())
	tt2 := search.NewTranspositionTable(ctx, 0x1f00)
	assert.Equal(t, uint64(0x1000), tt2.Size())

	a := board.ZobristHash(rand.Uint64())

	_, _, _, _, ok := tt.Read(a)
	assert.False(t, ok)

	m := board.Move{From: board.G4, To: board.G8, Promotion: board.Queen}
	tt.Write(a, search.ExactBound, 5, eval.Score(200), m)

	bound, depth, score, move, ok := tt.Read(a)
	assert.True(t, ok)
	assert.Equal(t, search.ExactBound, bound)
	assert.Equal(t, 5, depth)
	assert.Equal(t, eval.Score(200), score)
	assert.Equal(t, m, move)

	// A different hash colliding on the same slot index is not mistaken for a, since Read
	// compares the full stored hash.
	_, _, _, _, ok = tt.Read(a ^ 0xff0000)
	assert.False(t, ok)

	// Last-writer-wins: a second write to the same hash always replaces the prior entry,
	// regardless of depth.
	tt.Write(a, search.LowerBound, 1, eval.Score(-50), m)
	bound, depth, _, _, ok = tt.Read(a)
	assert.True(t, ok)
	assert.Equal(t, search.LowerBound, bound)
	assert.Equal(t, 1, depth)
}

func TestNoTranspositionTable(t *testing.T) {
	var tt search.NoTranspositionTable

	_, _, _, _, ok := tt.Read(board.ZobristHash(1))
	assert.False(t, ok)
	assert.Equal(t, uint64(0), tt.Size())
	assert.Equal(t, float64(0), tt.Used())

	tt.Write(board.ZobristHash(1), search.ExactBound, 3, eval.Score(1), board.Move{})
	_, _, _, _, ok = tt.Read(board.ZobristHash(1))
	assert.False(t, ok, "NoTranspositionTable must not retain writes")
}
