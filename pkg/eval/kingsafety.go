package eval

import "github.com/corvidchess/corvid/pkg/board"

// kingSafety scores the pawn shield and open files around the given color's King: an empty
// file (of that color's own pawns) among the King's file and its two neighbors is penalized,
// and a friendly pawn one rank in front of the King is rewarded.
func kingSafety(pos *board.Position, c board.Color) int32 {
	king := pos.KingSquare(c)
	ownPawns := pos.Piece(c, board.Pawn)

	var total int32
	kf := king.File().V()
	for df := -1; df <= 1; df++ {
		f := kf + df
		if f < 0 || f > 7 {
			continue
		}
		if ownPawns&board.BitFile(board.File(f)) == 0 {
			total -= 500 // open file next to the King
		}
	}

	shieldRank := king.Rank().V() + 1
	if c == board.Black {
		shieldRank = king.Rank().V() - 1
	}
	if shieldRank >= 0 && shieldRank <= 7 {
		for df := -1; df <= 1; df++ {
			f := kf + df
			if f < 0 || f > 7 {
				continue
			}
			sq := board.NewSquare(board.File(f), board.Rank(shieldRank))
			if ownPawns.IsSet(sq) {
				total += 300
			}
		}
	}
	return total
}
