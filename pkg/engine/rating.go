package engine

import (
	"context"
	"math"

	"github.com/seekerror/logw"
)

// initialRating is the rating a freshly constructed Engine starts at.
const initialRating = 1000.0

// Rating returns the engine's current Elo-style rating.
func (e *Engine) Rating() float64 {
	return e.rating.Load()
}

// SetRating overrides the engine's current rating, e.g. to seed an opponent stand-in for a
// recorded result against a known external rating.
func (e *Engine) SetRating(rating float64) {
	e.rating.Store(rating)
}

// RecordResult updates this engine's and opponent's ratings for a single game outcome: result
// is 1.0 for a win, 0.5 for a draw, 0.0 for a loss, from this engine's perspective. Both
// ratings are updated using the standard logistic expectation E = 1/(1+10^((Ro-Rs)/400)) and
// R' = R + K(S-E), with K chosen from each engine's own rating band (32 below 2000, 24 below
// 2400, else 16).
func (e *Engine) RecordResult(ctx context.Context, opponent *Engine, result float64) {
	self := e.rating.Load()
	other := opponent.rating.Load()

	expected := 1 / (1 + math.Pow(10, (other-self)/400))

	selfNext := self + kFactor(self)*(result-expected)
	otherNext := other + kFactor(other)*((1-result)-(1-expected))

	e.rating.Store(selfNext)
	opponent.rating.Store(otherNext)

	logw.Infof(ctx, "Recorded result %v: %v %v->%v, %v %v->%v", result, e.Name(), int(self), int(selfNext), opponent.Name(), int(other), int(otherNext))
}

func kFactor(rating float64) float64 {
	switch {
	case rating < 2000:
		return 32
	case rating < 2400:
		return 24
	default:
		return 16
	}
}
