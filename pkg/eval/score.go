package eval

import (
	"fmt"

	"github.com/corvidchess/corvid/pkg/board"
)

// Score is a signed position or move score in centipawns. Positive favors White. Mate scores
// are encoded as a magnitude close to Inf, decreasing by one per ply away from the mating move,
// so that shorter mates sort as more favorable than longer ones.
type Score int32

const (
	Inf    Score = 999999
	NegInf Score = -999999

	// MateScore is the magnitude at or above which a Score represents a forced mate rather than
	// a material/positional evaluation.
	MateScore Score = 999000

	ZeroScore Score = 0

	// InvalidScore marks a search result that was abandoned (context cancellation). Never stored
	// in the transposition table or returned as a move's score to a caller.
	InvalidScore Score = -2000000
)

func (s Score) String() string {
	if s == InvalidScore {
		return "invalid"
	}
	if d, ok := s.MateDistance(); ok {
		return fmt.Sprintf("mate(%v)", d)
	}
	return fmt.Sprintf("%v", int32(s))
}

func (s Score) IsInvalid() bool {
	return s == InvalidScore
}

// Negate flips the score to the other side's perspective, preserving mate-distance encoding.
func (s Score) Negate() Score {
	if s.IsInvalid() {
		return s
	}
	return -s
}

func (s Score) Less(o Score) bool {
	return s < o
}

// IsMate reports whether the score represents a forced mate.
func (s Score) IsMate() bool {
	return s >= MateScore || s <= -MateScore
}

// MateDistance returns the number of plies to the mating move, if the score encodes a mate.
// Positive means the side to move delivers mate; negative means it is mated.
func (s Score) MateDistance() (int, bool) {
	switch {
	case s >= MateScore:
		return int(Inf - s), true
	case s <= -MateScore:
		return -int(Inf + s), true
	default:
		return 0, false
	}
}

// IncrementMateDistance ages a mate score by one ply as it is passed up the search tree.
func IncrementMateDistance(s Score) Score {
	switch {
	case s.IsInvalid():
		return s
	case s >= MateScore:
		return s - 1
	case s <= -MateScore:
		return s + 1
	default:
		return s
	}
}

// Crop clamps a Score into [NegInf;Inf].
func Crop(s Score) Score {
	switch {
	case s > Inf:
		return Inf
	case s < NegInf:
		return NegInf
	default:
		return s
	}
}

// Max returns the largest of the given scores.
func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

// Min returns the smallest of the given scores.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}

// Unit returns the signed unit for the color: 1 for White and -1 for Black.
func Unit(c board.Color) Score {
	if c == board.White {
		return 1
	}
	return -1
}
