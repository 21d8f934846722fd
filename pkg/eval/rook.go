package eval

import "github.com/corvidchess/corvid/pkg/board"

// rookActivity rewards rooks on open/semi-open files and on the 7th (or 2nd, for Black) rank.
func rookActivity(pos *board.Position, c board.Color) int32 {
	ownPawns := pos.Piece(c, board.Pawn)
	enemyPawns := pos.Piece(c.Opponent(), board.Pawn)

	seventh := board.Rank7
	if c == board.Black {
		seventh = board.Rank2
	}

	var total int32
	for _, sq := range pos.Piece(c, board.Rook).ToSquares() {
		file := board.BitFile(sq.File())
		hasOwn := ownPawns&file != 0
		hasEnemy := enemyPawns&file != 0

		switch {
		case !hasOwn && !hasEnemy:
			total += 100 // open file
		case !hasOwn:
			total += 50 // semi-open file
		}

		if sq.Rank() == seventh {
			total += 100
		}
	}
	return total
}
