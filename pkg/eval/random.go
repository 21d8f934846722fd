package eval

import (
	"context"
	"github.com/corvidchess/corvid/pkg/board"
	"math/rand"
)

// Random is a randomized noise generator. It adds a small amount of randomness to evaluations so
// that repeated games between the same two configurations don't always follow the identical
// line. The limit specifies how many centipawns to add/remove in the range [-limit/2; limit/2].
// The zero value always returns zero, and is safe to use unseeded.
type Random struct {
	rand  *rand.Rand
	limit int
}

func NewRandom(limit int, seed int64) Random {
	return Random{
		limit: limit,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

func (n Random) Evaluate(ctx context.Context, b *board.Board) Score {
	if n.limit <= 0 || n.rand == nil {
		return 0
	}
	return Score(n.rand.Intn(n.limit) - n.limit/2)
}
