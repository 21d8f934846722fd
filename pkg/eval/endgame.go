package eval

import "github.com/corvidchess/corvid/pkg/board"

// kingActivity rewards King centralization in the endgame and penalizes a King stuck on its
// back two ranks (feature 14).
func kingActivity(pos *board.Position, c board.Color) int32 {
	king := pos.KingSquare(c)

	dist := distanceToCenter(king)
	total := int32(7-dist) * 20

	rank := king.Rank().V()
	stuck := (c == board.White && rank <= 1) || (c == board.Black && rank >= 6)
	if stuck {
		total -= 100
	}
	return total
}

// distanceToCenter returns the nearest Manhattan distance from sq to one of the four
// center squares.
func distanceToCenter(sq board.Square) int {
	best := 99
	for _, c := range centerSquares {
		if d := manhattan(sq, c); d < best {
			best = d
		}
	}
	return best
}

// detectEndgameAdvantage rewards a side reduced to a single pawn once the board is down to at
// most 4 pieces in total: a narrow near-king-and-pawn-endgame detector, not a general material
// count (feature "Endgame advantage").
func detectEndgameAdvantage(pos *board.Position, c board.Color) int32 {
	if pos.All().PopCount() > 4 {
		return 0
	}
	if pos.Piece(c, board.Pawn).PopCount() == 1 {
		return 100
	}
	return 0
}

// queenTrade rewards the side ahead on material by more than 200 centipawns when both Queens
// remain on the board (feature 15): keeping queens on favors the side already ahead.
func queenTrade(pos *board.Position, c board.Color) int32 {
	if pos.Piece(board.White, board.Queen) == 0 || pos.Piece(board.Black, board.Queen) == 0 {
		return 0
	}

	material := func(side board.Color) int32 {
		var total int32
		for p := board.ZeroPiece; p < board.NumPieces; p++ {
			total += int32(NominalValue(p)) * int32(pos.Piece(side, p).PopCount())
		}
		return total
	}

	own, opp := material(c), material(c.Opponent())
	if own-opp > 200 {
		return 500
	}
	return 0
}

var attackWeight = map[board.Piece]int32{board.Queen: 5000, board.Rook: 4000, board.Bishop: 3500, board.Knight: 3000, board.Pawn: 2000}
var defenseWeight = map[board.Piece]int32{board.Pawn: 1000, board.Knight: 1500, board.Bishop: 1750, board.Rook: 2000, board.Queen: 2500, board.King: 3000}

// attackStrength sums per-piece attack weights for the given color's own pieces, plus a bonus
// for each enemy piece under attack (feature 16, attack half).
func attackStrength(pos *board.Position, c board.Color) int32 {
	var total int32
	for p, w := range attackWeight {
		total += w * int32(pos.Piece(c, p).PopCount())
	}

	for p := board.ZeroPiece; p < board.NumPieces; p++ {
		for _, sq := range pos.Piece(c.Opponent(), p).ToSquares() {
			if pos.IsAttacked(c, sq) {
				total += int32(NominalValue(p)) / 5
			}
		}
	}
	return total
}

// defenseStrength sums per-piece defense weights for the given color's own pieces (feature 16,
// defense half).
func defenseStrength(pos *board.Position, c board.Color) int32 {
	var total int32
	for p, w := range defenseWeight {
		total += w * int32(pos.Piece(c, p).PopCount())
	}
	return total
}
