// Package book implements the static opening book consulted by the negamax core near the
// root (spec component C8): a position fingerprint -> move lookup table, immutable once built.
package book

import (
	"context"
	"fmt"
	"strings"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
)

// Line is a named opening line in long algebraic notation: e2e4 e7e5 g1f3 b8c6.
type Line []string

func (l Line) String() string {
	return strings.Join(l, " ")
}

// Book is a static position fingerprint -> move table. A fingerprint is the first four
// space-separated FEN fields (placement, side to move, castling, en passant), so entries are
// insensitive to the halfmove clock and move counter the way the negamax core's splice does.
type Book struct {
	moves map[string]board.Move
}

// Empty is an opening book with no entries. Lookup always misses.
var Empty = &Book{moves: map[string]board.Move{}}

// New builds a book by replaying each line from the starting position. Each prefix position's
// fingerprint maps to its first-seen continuation; later lines sharing a prefix do not
// overwrite an earlier recommendation. A notation is resolved first as long algebraic
// ("e2e4"), then as short algebraic ("Nf3", "O-O"), matching spec §4.7; an unresolvable or
// illegal move fails the whole line so a malformed book is caught at construction, not at
// search time.
func New(lines []Line) (*Book, error) {
	m := map[string]board.Move{}
	for _, line := range lines {
		pos, turn, _, fullmoves, err := fen.Decode(fen.Initial)
		if err != nil {
			return nil, fmt.Errorf("book: %v", err)
		}

		for _, notation := range line {
			mv, ok := board.ParseLongAlgebraic(pos, turn, notation)
			if !ok {
				mv, ok = board.ParseShortAlgebraic(pos, turn, notation)
			}
			if !ok {
				return nil, fmt.Errorf("book line %v: move %q not legal", line, notation)
			}

			key := fingerprint(fen.Encode(pos, turn, 0, fullmoves))
			if _, exists := m[key]; !exists {
				m[key] = mv
			}

			next, ok := pos.Move(mv)
			if !ok {
				return nil, fmt.Errorf("book line %v: move %q not legal", line, notation)
			}
			if turn == board.Black {
				fullmoves++
			}
			pos, turn = next, turn.Opponent()
		}
	}
	return &Book{moves: m}, nil
}

// Lookup returns the recommended move for the position identified by fingerprint, if any.
// It is a plain map lookup with no per-game state: a miss does not affect later lookups, and
// the negamax core probes it at every node within its depth and move-number bounds.
func (b *Book) Lookup(ctx context.Context, fingerprint string) (board.Move, bool) {
	mv, ok := b.moves[fingerprint]
	return mv, ok
}

func fingerprint(full string) string {
	parts := strings.SplitN(full, " ", 5)
	if len(parts) < 4 {
		return full
	}
	return strings.Join(parts[:4], " ")
}
