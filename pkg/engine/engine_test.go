package engine_test

import (
	"context"
	"testing"

	"github.com/corvidchess/corvid/pkg/engine"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, name string) *engine.Engine {
	t.Helper()

	root := search.Negamax{Eval: eval.Default{}}
	return engine.New(context.Background(), name, "test", root, engine.WithOptions(engine.Options{Depth: 3}))
}

// TestPredictMoveReturnsLegalMoveAndRestoresPosition exercises spec properties 1 and 2: a
// legal move is returned and the board is left exactly as it started.
func TestPredictMoveReturnsLegalMoveAndRestoresPosition(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, "corvid-test")

	before := e.Position()
	mv, err := e.PredictMove(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "0000", mv.String())
	assert.Equal(t, before, e.Position())
}

func TestNewEngineStartsAtInitialRating(t *testing.T) {
	e := newTestEngine(t, "corvid-test")
	assert.Equal(t, 1000.0, e.Rating())
}

// TestRecordResultUpdatesBothRatings checks the Elo update against the textbook case of two
// equally-rated players, where a win moves the winner up by half of K and the loser down by
// the same amount.
func TestRecordResultUpdatesBothRatings(t *testing.T) {
	ctx := context.Background()
	winner := newTestEngine(t, "corvid-winner")
	loser := newTestEngine(t, "corvid-loser")

	winner.RecordResult(ctx, loser, 1.0)

	assert.InDelta(t, 1016.0, winner.Rating(), 0.001)
	assert.InDelta(t, 984.0, loser.Rating(), 0.001)
}

func TestRecordResultDrawLeavesEqualRatingsUnchanged(t *testing.T) {
	ctx := context.Background()
	a := newTestEngine(t, "corvid-a")
	b := newTestEngine(t, "corvid-b")

	a.RecordResult(ctx, b, 0.5)

	assert.InDelta(t, 1000.0, a.Rating(), 0.001)
	assert.InDelta(t, 1000.0, b.Rating(), 0.001)
}

func TestResetToCheckmatePositionPredictsNoMove(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, "corvid-test")

	// Fool's mate: Black has delivered checkmate, White has no legal move.
	require.NoError(t, e.Reset(ctx, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"))
	_, err := e.PredictMove(ctx)
	assert.Error(t, err)
}
