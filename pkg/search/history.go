package search

import "github.com/corvidchess/corvid/pkg/board"

// historyKey identifies a quiet move by its from/to squares only, per the usual history
// heuristic convention (piece identity is not part of the key).
type historyKey struct {
	from, to board.Square
}

// HistoryTable accumulates a heuristic value per (from,to) square pair: the deeper the
// subtree in which a quiet move caused a beta cutoff, the larger its bonus. Not thread-safe:
// owned by a single in-flight search, and cleared once per top-level iterative-deepening call.
type HistoryTable struct {
	value map[historyKey]int32
}

// NewHistoryTable returns an empty HistoryTable.
func NewHistoryTable() *HistoryTable {
	return &HistoryTable{value: map[historyKey]int32{}}
}

// Record adds depth^2 to the (from,to) bucket for m, rewarding cutoffs found deeper in the tree.
func (h *HistoryTable) Record(depth int, m board.Move) {
	k := historyKey{from: m.From, to: m.To}
	h.value[k] += int32(depth * depth)
}

// Value returns the accumulated history score for m, zero if never recorded.
func (h *HistoryTable) Value(m board.Move) int32 {
	return h.value[historyKey{from: m.From, to: m.To}]
}
