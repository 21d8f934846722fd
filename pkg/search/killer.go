package search

import "github.com/corvidchess/corvid/pkg/board"

// killerCap is the number of killer moves retained per ply.
const killerCap = 2

// KillerTable records quiet moves that caused a beta cutoff at a given ply, for move
// ordering. Not thread-safe: owned by a single in-flight search. Cleared once per top-level
// iterative-deepening call; it is not reset between depths within that call, on the
// assumption that a killer for one depth often remains a good try at the next.
type KillerTable struct {
	byDepth map[int][killerCap]board.Move
}

// NewKillerTable returns an empty KillerTable.
func NewKillerTable() *KillerTable {
	return &KillerTable{byDepth: map[int][killerCap]board.Move{}}
}

// Record stores m as a killer at the given depth, FIFO-evicting the oldest entry if full. A
// move already present is not duplicated.
func (k *KillerTable) Record(depth int, m board.Move) {
	slots := k.byDepth[depth]
	if slots[0].Equals(m) || slots[1].Equals(m) {
		return
	}
	slots[1] = slots[0]
	slots[0] = m
	k.byDepth[depth] = slots
}

// IsKiller reports whether m is a recorded killer at the given depth.
func (k *KillerTable) IsKiller(depth int, m board.Move) bool {
	slots := k.byDepth[depth]
	return slots[0].Equals(m) || slots[1].Equals(m)
}
