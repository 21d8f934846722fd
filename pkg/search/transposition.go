package search

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/seekerror/logw"
	"go.uber.org/atomic"
)

// Bound represents the bound of a -- possibly inexact -- search score stored in the
// transposition table.
type Bound uint8

const (
	ExactBound Bound = iota
	LowerBound
	UpperBound
)

func (b Bound) String() string {
	switch b {
	case ExactBound:
		return "Exact"
	case LowerBound:
		return "Lower"
	case UpperBound:
		return "Upper"
	default:
		return "?"
	}
}

// TranspositionTable caches search results keyed by position hash. Must be safe for
// concurrent Read/Write, though the search harness here only ever drives one search at a
// time. Caveat: entries are keyed by position hash alone, while the default evaluator also
// reads game history (whether a King has castled, the fullmove counter); the table applies
// no guard for that, so a cached score may reflect a different history.
type TranspositionTable interface {
	// Read returns the bound, depth, score and best move for the given position hash, if present.
	Read(hash board.ZobristHash) (Bound, int, eval.Score, board.Move, bool)
	// Write stores the entry into the table. Replacement policy is last-writer-wins.
	Write(hash board.ZobristHash, bound Bound, depth int, score eval.Score, move board.Move)

	// Size returns the size of the table in bytes.
	Size() uint64
	// Used returns the utilization as a fraction [0;1].
	Used() float64
}

// TranspositionTableFactory creates a TranspositionTable sized in bytes.
type TranspositionTableFactory func(ctx context.Context, size uint64) TranspositionTable

// entry is a stored search result. Immutable once constructed: replaced wholesale on write.
type entry struct {
	hash  board.ZobristHash
	score eval.Score
	from  board.Square
	to    board.Square
	promo board.Piece
	depth int16
	bound Bound
}

// table is a fixed-size transposition table with last-writer-wins replacement: the newest
// search result for a slot always overwrites whatever was there, favoring the freshest
// iteration of iterative deepening over raw depth/ply priority. Entries are swapped with a
// lock-free atomic pointer per slot.
type table struct {
	slots []atomic.Pointer[entry]
	mask  uint64
	used  atomic.Uint64
}

// NewTranspositionTable allocates a table sized to the largest power-of-two entry count that
// fits in size bytes.
func NewTranspositionTable(ctx context.Context, size uint64) TranspositionTable {
	const entrySize = 32 // 24-byte entry + 8-byte slot pointer
	slots := size / entrySize
	if slots == 0 {
		slots = 1
	}
	n := uint64(1) << (63 - bits.LeadingZeros64(slots))

	logw.Infof(ctx, "Allocating %vMB TT with %v entries", size>>20, n)

	return &table{
		slots: make([]atomic.Pointer[entry], n),
		mask:  n - 1,
	}
}

func (t *table) Size() uint64 {
	return uint64(len(t.slots)) * 32
}

func (t *table) Used() float64 {
	return float64(t.used.Load()) / float64(len(t.slots))
}

func (t *table) Read(hash board.ZobristHash) (Bound, int, eval.Score, board.Move, bool) {
	key := uint64(hash) & t.mask
	e := t.slots[key].Load()
	if e == nil || e.hash != hash {
		return 0, 0, 0, board.Move{}, false
	}
	move := board.Move{From: e.from, To: e.to, Promotion: e.promo}
	return e.bound, int(e.depth), e.score, move, true
}

func (t *table) Write(hash board.ZobristHash, bound Bound, depth int, score eval.Score, move board.Move) {
	key := uint64(hash) & t.mask

	fresh := &entry{
		hash:  hash,
		score: score,
		from:  move.From,
		to:    move.To,
		promo: move.Promotion,
		depth: int16(depth),
		bound: bound,
	}

	old := t.slots[key].Swap(fresh)
	if old == nil {
		t.used.Inc()
	}
}

func (t *table) String() string {
	return fmt.Sprintf("TT[%v @ %v%%]", t.Size(), int(100*t.Used()))
}

// NoTranspositionTable is a Nop implementation, used when the engine is configured without a
// hash table.
type NoTranspositionTable struct{}

func (NoTranspositionTable) Read(hash board.ZobristHash) (Bound, int, eval.Score, board.Move, bool) {
	return 0, 0, 0, board.Move{}, false
}

func (NoTranspositionTable) Write(hash board.ZobristHash, bound Bound, depth int, score eval.Score, move board.Move) {
}

func (NoTranspositionTable) Size() uint64 {
	return 0
}

func (NoTranspositionTable) Used() float64 {
	return 0
}
