package eval

import "github.com/corvidchess/corvid/pkg/board"

func startSquares(c board.Color) (knights, bishops [2]board.Square, queen, kingHome board.Square, rooks [2]board.Square) {
	if c == board.White {
		return [2]board.Square{board.B1, board.G1}, [2]board.Square{board.C1, board.F1}, board.D1, board.E1, [2]board.Square{board.A1, board.H1}
	}
	return [2]board.Square{board.B8, board.G8}, [2]board.Square{board.C8, board.F8}, board.D8, board.E8, [2]board.Square{board.A8, board.H8}
}

// development penalizes minor pieces and the queen still on their starting square, and
// rewards own pawns occupying the center. Only scored through move 15 (feature 6).
func development(pos *board.Position, c board.Color, fullmoves int) int32 {
	if fullmoves > 15 {
		return 0
	}
	knights, bishops, queen, _, _ := startSquares(c)

	var total int32
	for _, sq := range bishops {
		if onStartSquare(pos, c, board.Bishop, sq) {
			total -= 45
		}
	}
	for _, sq := range knights {
		if onStartSquare(pos, c, board.Knight, sq) {
			total -= 30
		}
	}

	queenMoveThreshold := 8
	if c == board.Black {
		queenMoveThreshold = 5
	}
	if fullmoves > queenMoveThreshold && onStartSquare(pos, c, board.Queen, queen) {
		total -= 20
	}

	for _, sq := range centerSquares {
		if color, piece, ok := pos.Square(sq); ok && color == c && piece == board.Pawn {
			total += 35
		}
	}
	return total
}

// castlingStatus scores whether the King has castled, or penalizes leaving castling rights
// unused on the home square (feature 7).
func castlingStatus(b *board.Board, c board.Color) int32 {
	if b.HasCastled(c) {
		return 1000
	}

	_, _, _, kingHome, _ := startSquares(c)
	pos := b.Position()
	if color, piece, ok := pos.Square(kingHome); ok && color == c && piece == board.King {
		if hasAnyCastlingRight(pos, c) {
			return -3000
		}
	}
	return 0
}

func hasAnyCastlingRight(pos *board.Position, c board.Color) bool {
	rights := board.CastlingRights(c)
	return pos.Castling()&rights != 0
}

// pieceActivation rewards minor pieces, rooks and the queen for having left their starting
// square (feature 8).
func pieceActivation(pos *board.Position, c board.Color) int32 {
	knights, bishops, queen, _, rooks := startSquares(c)

	var total int32
	for _, sq := range bishops {
		if !onStartSquare(pos, c, board.Bishop, sq) {
			total += 50
		}
	}
	for _, sq := range knights {
		if !onStartSquare(pos, c, board.Knight, sq) {
			total += 45
		}
	}
	for _, sq := range rooks {
		if !onStartSquare(pos, c, board.Rook, sq) {
			total += 40
		}
	}
	if !onStartSquare(pos, c, board.Queen, queen) {
		total += 35
	}
	return total
}

// pawnAdvances rewards central pawns for advancing, more so once they reach the 4th rank, and
// flank pawns for simply having moved (feature 9).
func pawnAdvances(pos *board.Position, c board.Color) int32 {
	var total int32
	for f := board.ZeroFile; f < board.NumFiles; f++ {
		startRank := board.Rank2
		fourthRank := board.Rank4
		if c == board.Black {
			startRank = board.Rank7
			fourthRank = board.Rank5
		}

		startSq := board.NewSquare(f, startRank)
		central := f == board.FileD || f == board.FileE

		if color, piece, ok := pos.Square(startSq); ok && color == c && piece == board.Pawn {
			continue // hasn't moved
		}

		pawns := pos.Piece(c, board.Pawn) & board.BitFile(f)
		if pawns == 0 {
			continue // captured or promoted, not "advanced" for this bonus
		}

		if central {
			total += 30
			for _, sq := range pawns.ToSquares() {
				if sq.Rank() == fourthRank {
					total += 50
				}
			}
		} else {
			total += 10
		}
	}
	return total
}

func onStartSquare(pos *board.Position, c board.Color, p board.Piece, sq board.Square) bool {
	color, piece, ok := pos.Square(sq)
	return ok && color == c && piece == p
}
