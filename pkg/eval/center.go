package eval

import "github.com/corvidchess/corvid/pkg/board"

var centerSquares = []board.Square{board.D4, board.D5, board.E4, board.E5}

// keySquares are the 12 squares feature 10 scores: the 4 center squares, 4 extended-center
// squares, and the 4 development squares (d3/e3/d6/e6).
var keySquares = []board.Square{
	board.D4, board.D5, board.E4, board.E5, // center
	board.C3, board.C6, board.F3, board.F6, // extended center
	board.D3, board.E3, board.D6, board.E6, // development squares
}

// centerControl scores occupation and attacks on d4/d5/e4/e5, with a penalty for a side that
// attacks fewer than 2 of them.
func centerControl(pos *board.Position, c board.Color) int32 {
	var total int32
	attacked := 0
	for _, sq := range centerSquares {
		if color, _, ok := pos.Square(sq); ok && color == c {
			total += 1000
		}
		n := pos.Attackers(c, sq).PopCount()
		if n > 0 {
			attacked++
		}
		total += int32(n) * 20
	}
	if attacked < 2 {
		total -= 100
	}
	return total
}

// keySquareControl scores attacks on and occupation of the 12 key squares (feature 10).
func keySquareControl(pos *board.Position, c board.Color) int32 {
	var total int32
	for _, sq := range keySquares {
		total += int32(pos.Attackers(c, sq).PopCount()) * 15
		if color, _, ok := pos.Square(sq); ok && color == c {
			total += 25
		}
	}
	return total
}
