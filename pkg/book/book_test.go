package book_test

import (
	"context"
	"strings"
	"testing"

	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/book"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fingerprintOf(pos string) string {
	parts := strings.SplitN(pos, " ", 5)
	return strings.Join(parts[:4], " ")
}

func TestBookLookup(t *testing.T) {
	ctx := context.Background()

	b, err := book.New([]book.Line{
		{"e2e4", "d7d5", "d2d4"},
		{"e2e4", "d7d6"},
		{"d2d4", "d7d6"},
	})
	require.NoError(t, err)

	mv, ok := b.Lookup(ctx, fingerprintOf(fen.Initial))
	require.True(t, ok)
	assert.Equal(t, "E2E4", mv.String())

	after := "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2"
	mv, ok = b.Lookup(ctx, fingerprintOf(after))
	require.True(t, ok)
	assert.Equal(t, "D2D4", mv.String())
}

func TestBookLookupMiss(t *testing.T) {
	ctx := context.Background()

	b, err := book.New([]book.Line{{"e2e4"}})
	require.NoError(t, err)

	_, ok := b.Lookup(ctx, fingerprintOf("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1"))
	assert.False(t, ok)
}

func TestEmptyBookAlwaysMisses(t *testing.T) {
	ctx := context.Background()

	_, ok := book.Empty.Lookup(ctx, fingerprintOf(fen.Initial))
	assert.False(t, ok)
}
