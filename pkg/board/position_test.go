package board_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every fixture below places both Kings far from the action so that neither the piece under
// test nor its target squares interferes with check legality, letting the expected move set
// be compared directly to LegalMoves.

func TestLegalMoves_Pawns(t *testing.T) {
	tests := []struct {
		name     string
		turn     board.Color
		pieces   []board.Placement
		ep       board.Square
		expected []string
	}{
		{
			"push and jump",
			board.White,
			withKings(board.Placement{Square: board.E2, Color: board.White, Piece: board.Pawn}),
			board.ZeroSquare,
			[]string{"E2E3", "E2E4"},
		},
		{
			"blocked jump, open push",
			board.Black,
			append(withKings(board.Placement{Square: board.C7, Color: board.Black, Piece: board.Pawn}),
				board.Placement{Square: board.C5, Color: board.White, Piece: board.Pawn}),
			board.ZeroSquare,
			[]string{"C7C6"},
		},
		{
			"captures",
			board.White,
			append(withKings(board.Placement{Square: board.E2, Color: board.White, Piece: board.Pawn}),
				board.Placement{Square: board.D3, Color: board.Black, Piece: board.Knight},
				board.Placement{Square: board.F3, Color: board.Black, Piece: board.Rook}),
			board.ZeroSquare,
			[]string{"E2D3", "E2E3", "E2E4", "E2F3"},
		},
		{
			"promotion",
			board.White,
			withKings(board.Placement{Square: board.D7, Color: board.White, Piece: board.Pawn}),
			board.ZeroSquare,
			[]string{"D7D8q", "D7D8r", "D7D8b", "D7D8n"},
		},
		{
			"en passant",
			board.Black,
			append(withKings(board.Placement{Square: board.E4, Color: board.Black, Piece: board.Pawn}),
				board.Placement{Square: board.D4, Color: board.White, Piece: board.Pawn}),
			board.D3,
			[]string{"E4D3", "E4E3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := board.NewPosition(tt.pieces, board.NoCastlingRights, tt.ep)
			require.NoError(t, err)

			actual := filterByPiece(pos.LegalMoves(tt.turn), board.Pawn)
			assert.Equal(t, sortedStrings(tt.expected), printMoves(actual))
		})
	}
}

func TestLegalMoves_Officers(t *testing.T) {
	tests := []struct {
		name     string
		piece    board.Piece
		pieces   []board.Placement
		expected []string
	}{
		{
			"knight",
			board.Knight,
			append(withKings(board.Placement{Square: board.A3, Color: board.White, Piece: board.Knight}),
				board.Placement{Square: board.B1, Color: board.Black, Piece: board.Bishop},
				board.Placement{Square: board.C2, Color: board.Black, Piece: board.Queen}),
			[]string{"A3B1", "A3B5", "A3C2", "A3C4"},
		},
		{
			"bishop partly obstructed",
			board.Bishop,
			append(withKings(board.Placement{Square: board.G3, Color: board.White, Piece: board.Bishop}),
				board.Placement{Square: board.F2, Color: board.Black, Piece: board.Rook},
				board.Placement{Square: board.E5, Color: board.Black, Piece: board.Rook}),
			[]string{"G3E5", "G3F2", "G3F4", "G3H2", "G3H4"},
		},
		{
			"rook",
			board.Rook,
			append(withKings(board.Placement{Square: board.D3, Color: board.White, Piece: board.Rook}),
				board.Placement{Square: board.B3, Color: board.Black, Piece: board.Rook},
				board.Placement{Square: board.E3, Color: board.Black, Piece: board.Bishop},
				board.Placement{Square: board.D5, Color: board.Black, Piece: board.Queen}),
			[]string{"D3B3", "D3C3", "D3D1", "D3D2", "D3D4", "D3D5", "D3E3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := board.NewPosition(tt.pieces, board.NoCastlingRights, board.ZeroSquare)
			require.NoError(t, err)

			actual := filterByPiece(pos.LegalMoves(board.White), tt.piece)
			assert.Equal(t, sortedStrings(tt.expected), printMoves(actual))
		})
	}
}

func TestLegalMoves_Castling(t *testing.T) {
	tests := []struct {
		name     string
		turn     board.Color
		pieces   []board.Placement
		castling board.Castling
		expected []string
	}{
		{
			"no rights",
			board.White,
			[]board.Placement{
				{Square: board.E1, Color: board.White, Piece: board.King},
				{Square: board.H1, Color: board.White, Piece: board.Rook},
				{Square: board.A1, Color: board.White, Piece: board.Rook},
				{Square: board.E8, Color: board.Black, Piece: board.King},
			},
			board.NoCastlingRights,
			nil,
		},
		{
			"full rights",
			board.White,
			[]board.Placement{
				{Square: board.E1, Color: board.White, Piece: board.King},
				{Square: board.H1, Color: board.White, Piece: board.Rook},
				{Square: board.A1, Color: board.White, Piece: board.Rook},
				{Square: board.E8, Color: board.Black, Piece: board.King},
			},
			board.FullCastlingRights,
			[]string{"E1C1", "E1G1"},
		},
		{
			"kingside obstructed",
			board.Black,
			[]board.Placement{
				{Square: board.E8, Color: board.Black, Piece: board.King},
				{Square: board.H8, Color: board.Black, Piece: board.Rook},
				{Square: board.G8, Color: board.White, Piece: board.Bishop},
				{Square: board.A8, Color: board.Black, Piece: board.Rook},
				{Square: board.E1, Color: board.White, Piece: board.King},
			},
			board.FullCastlingRights,
			[]string{"E8C8"},
		},
		{
			"partial rights",
			board.Black,
			[]board.Placement{
				{Square: board.E8, Color: board.Black, Piece: board.King},
				{Square: board.H8, Color: board.Black, Piece: board.Rook},
				{Square: board.A8, Color: board.Black, Piece: board.Rook},
				{Square: board.E1, Color: board.White, Piece: board.King},
			},
			board.BlackQueenSideCastle | board.WhiteKingSideCastle,
			[]string{"E8C8"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := board.NewPosition(tt.pieces, tt.castling, board.ZeroSquare)
			require.NoError(t, err)

			actual := filterMoves(pos.LegalMoves(tt.turn), func(m board.Move) bool {
				return m.IsCastle()
			})
			assert.Equal(t, sortedStrings(tt.expected), printMoves(actual))
		})
	}
}

func TestPerft(t *testing.T) {
	// Known perft counts; see https://www.chessprogramming.org/Perft_Results.
	tests := []struct {
		fen      string
		depth    int
		expected int
	}{
		{fen.Initial, 1, 20},
		{fen.Initial, 2, 400},
		{"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/1PB1P1b1/P1NP1N2/2P1QPPP/R4RK1 b - b3 0 10", 1, 45},
	}

	for _, tt := range tests {
		pos, turn, _, _, err := fen.Decode(tt.fen)
		require.NoError(t, err)

		assert.Equal(t, tt.expected, perft(pos, turn, tt.depth))
	}
}

func perft(pos *board.Position, turn board.Color, depth int) int {
	if depth == 0 {
		return 1
	}
	nodes := 0
	for _, m := range pos.LegalMoves(turn) {
		next, ok := pos.Move(m)
		if !ok {
			continue
		}
		nodes += perft(next, turn.Opponent(), depth-1)
	}
	return nodes
}

func withKings(extra ...board.Placement) []board.Placement {
	ret := []board.Placement{
		{Square: board.A1, Color: board.White, Piece: board.King},
		{Square: board.A8, Color: board.Black, Piece: board.King},
	}
	for _, p := range extra {
		if p.Piece == board.King {
			continue
		}
		ret = append(ret, p)
	}
	return ret
}

func filterByPiece(ms []board.Move, piece board.Piece) []board.Move {
	return filterMoves(ms, func(m board.Move) bool {
		return m.Piece == piece
	})
}

func filterMoves(ms []board.Move, fn func(move board.Move) bool) []board.Move {
	var list []board.Move
	for _, m := range ms {
		if fn(m) {
			list = append(list, m)
		}
	}
	return list
}

func printMoves(ms []board.Move) string {
	var list []string
	for _, m := range ms {
		list = append(list, m.String())
	}
	sort.Strings(list)
	return strings.Join(list, "\n")
}

func sortedStrings(ss []string) string {
	cp := append([]string{}, ss...)
	sort.Strings(cp)
	return strings.Join(cp, "\n")
}
