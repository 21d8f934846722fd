package eval

import "github.com/corvidchess/corvid/pkg/board"

// tacticalThreats walks the legal moves for the given color and rewards profitable captures,
// forks, checks, pins and promotions (feature 11). Forks and pins look one ply ahead (after
// the candidate move); pin detection runs only for bishop, rook and queen moves.
func tacticalThreats(pos *board.Position, c board.Color) int32 {
	var total int32
	for _, m := range pos.LegalMoves(c) {
		if m.IsCapture() {
			gain := NominalValueGain(m)
			cost := NominalValue(m.Piece)
			if gain > cost {
				total += int32(gain - cost)
			}
		}
		if m.IsPromotion() {
			total += 1000
		}
		if m.GivesCheck {
			total += 200
		}

		next, ok := pos.Move(m)
		if !ok {
			continue
		}

		if forksEnemy(next, c, m) {
			total += 1500
		}
		if (m.Piece == board.Bishop || m.Piece == board.Rook || m.Piece == board.Queen) && createsPin(next, c, m) {
			total += 1000
		}
	}
	return total
}

// forksEnemy reports whether the moved piece now attacks at least two enemy pieces each worth
// at least 300 centipawns.
func forksEnemy(next *board.Position, c board.Color, m board.Move) bool {
	piece := m.Piece
	if m.IsPromotion() {
		piece = m.Promotion
	}

	attacks := board.PawnCaptureboard(c, board.BitMask(m.To))
	if piece != board.Pawn {
		attacks = board.Attackboard(next.Rotated(), m.To, piece)
	}

	attacked := 0
	for p := board.ZeroPiece; p < board.NumPieces; p++ {
		if NominalValue(p) < 300 {
			continue
		}
		for _, sq := range next.Piece(c.Opponent(), p).ToSquares() {
			if attacks&board.BitMask(sq) != 0 {
				attacked++
			}
		}
	}
	return attacked >= 2
}

// createsPin reports whether the moved piece, from its destination, pins an enemy piece against
// an enemy bishop, rook, queen, knight or pawn behind it. Pins against the enemy King are not
// counted.
func createsPin(next *board.Position, c board.Color, m board.Move) bool {
	for _, target := range []board.Piece{board.Bishop, board.Rook, board.Queen, board.Knight, board.Pawn} {
		for _, pin := range FindPins(next, c.Opponent(), target) {
			if pin.Attacker == m.To {
				return true
			}
		}
	}
	return false
}

// tacticalPatterns is the cheaper pattern pass in feature 11: it rewards a capture of a
// higher-value piece and moves that attack two or more squares, without the one-ply lookahead
// used by tacticalThreats.
func tacticalPatterns(pos *board.Position, c board.Color) int32 {
	var total int32
	for _, m := range pos.LegalMoves(c) {
		if m.IsCapture() && NominalValue(m.Capture) > NominalValue(m.Piece) {
			total += 50
		}
		attacks := board.PawnCaptureboard(c, board.BitMask(m.To))
		if m.Piece != board.Pawn {
			attacks = board.Attackboard(pos.Rotated(), m.To, m.Piece)
		}
		if attacks.PopCount() >= 2 {
			total += 20
		}
	}
	return total
}
