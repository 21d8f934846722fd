package eval

import "github.com/corvidchess/corvid/pkg/board"

// Pin represents a pinned piece: Pinned cannot move off the Attacker-Target line without
// exposing Target to capture.
type Pin struct {
	Attacker, Pinned, Target board.Square
}

// FindPins returns every pin against one of side's pieces of the given type, checking rook/
// queen lines and bishop/queen lines separately since they use different attack boards.
func FindPins(pos *board.Position, side board.Color, piece board.Piece) []Pin {
	var ret []Pin

	for _, target := range pos.Piece(side, piece).ToSquares() {
		ret = append(ret, findLinePins(pos, side, target, board.RookAttackboard, board.Rook)...)
		ret = append(ret, findLinePins(pos, side, target, board.BishopAttackboard, board.Bishop)...)
	}
	return ret
}

// findLinePins finds pins against target along one line type (rook or bishop), where slider is
// the matching attack-board generator and slidingPiece is the non-Queen piece that can pin
// along that line.
func findLinePins(pos *board.Position, side board.Color, target board.Square, slider func(board.RotatedBitboard, board.Square) board.Bitboard, slidingPiece board.Piece) []Pin {
	var ret []Pin

	attackers := pos.Piece(side.Opponent(), board.Queen) | pos.Piece(side.Opponent(), slidingPiece)
	line := slider(pos.Rotated(), target)

	for _, pinned := range (line & pos.Color(side)).ToSquares() {
		behind := slider(pos.Rotated().Xor(pinned), target) &^ line
		if candidate := behind & attackers; candidate != 0 {
			ret = append(ret, Pin{Attacker: candidate.LastPopSquare(), Pinned: pinned, Target: target})
		}
	}
	return ret
}
