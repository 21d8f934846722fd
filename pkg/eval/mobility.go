package eval

import "github.com/corvidchess/corvid/pkg/board"

// isCentral4x4 reports whether sq lies in the central 4x4 block: files c-f, ranks 3-6.
func isCentral4x4(sq board.Square) bool {
	f, r := sq.File().V(), sq.Rank().V()
	return f >= 2 && f <= 5 && r >= 2 && r <= 5
}

// mobility sums per-legal-move weights for the given color: the move count, weighted by
// piece type, plus bonuses for central destinations and captures. Position.LegalMoves takes
// the color explicitly, so no side-to-move mutation (and restoration) is needed.
func mobility(pos *board.Position, c board.Color) int32 {
	var total int32
	for _, m := range pos.LegalMoves(c) {
		switch m.Piece {
		case board.Pawn:
			total += 10
		case board.Knight:
			total += 25
		case board.Bishop:
			total += 30
		case board.Rook:
			total += 40
		case board.Queen:
			total += 50
		default:
			continue // King mobility is not scored.
		}

		if isCentral4x4(m.To) {
			total += 10
		}
		if m.IsCapture() {
			if m.Piece == board.Knight {
				total += 10
			} else {
				total += 20
			}
		}
	}
	return total
}
