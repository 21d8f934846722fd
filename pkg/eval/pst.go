package eval

import "github.com/corvidchess/corvid/pkg/board"

// Piece-square tables are given from White's perspective, rank 1 through rank 8, file a
// through file h. Black's value for a square is read from the vertically mirrored rank, per
// the convention used throughout the reference material this engine's evaluation is modeled on.

type pst [8][8]int32

var pawnMG = pst{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{5, 10, 10, -20, -20, 10, 10, 5},
	{5, -5, -10, 0, 0, -10, -5, 5},
	{0, 0, 0, 20, 20, 0, 0, 0},
	{5, 5, 10, 25, 25, 10, 5, 5},
	{10, 10, 20, 30, 30, 20, 10, 10},
	{50, 50, 50, 50, 50, 50, 50, 50},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var pawnEG = pst{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{10, 10, 10, 10, 10, 10, 10, 10},
	{10, 10, 10, 10, 10, 10, 10, 10},
	{20, 20, 20, 20, 20, 20, 20, 20},
	{35, 35, 35, 35, 35, 35, 35, 35},
	{60, 60, 60, 60, 60, 60, 60, 60},
	{90, 90, 90, 90, 90, 90, 90, 90},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var knightPST = pst{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
}

var bishopPST = pst{
	{-20, -10, -10, -10, -10, -10, -10, -20},
	{-10, 5, 0, 0, 0, 0, 5, -10},
	{-10, 10, 10, 10, 10, 10, 10, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{-10, 5, 5, 10, 10, 5, 5, -10},
	{-10, 0, 5, 10, 10, 5, 0, -10},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-20, -10, -10, -10, -10, -10, -10, -20},
}

var rookPST = pst{
	{0, 0, 0, 5, 5, 0, 0, 0},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{5, 10, 10, 10, 10, 10, 10, 5},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var queenPST = pst{
	{-20, -10, -10, -5, -5, -10, -10, -20},
	{-10, 0, 5, 0, 0, 0, 0, -10},
	{-10, 5, 5, 5, 5, 5, 0, -10},
	{0, 0, 5, 5, 5, 5, 0, -5},
	{-5, 0, 5, 5, 5, 5, 0, -5},
	{-10, 0, 5, 5, 5, 5, 0, -10},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-20, -10, -10, -5, -5, -10, -10, -20},
}

var kingMG = pst{
	{20, 30, 10, 0, 0, 10, 30, 20},
	{20, 20, 0, 0, 0, 0, 20, 20},
	{-10, -20, -20, -20, -20, -20, -20, -10},
	{-20, -30, -30, -40, -40, -30, -30, -20},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
}

var kingEG = pst{
	{-50, -30, -30, -30, -30, -30, -30, -50},
	{-30, -30, 0, 0, 0, 0, -30, -30},
	{-30, -10, 20, 30, 30, 20, -10, -30},
	{-30, -10, 30, 40, 40, 30, -10, -30},
	{-30, -10, 30, 40, 40, 30, -10, -30},
	{-30, -10, 20, 30, 30, 20, -10, -30},
	{-30, -20, -10, 0, 0, -10, -20, -30},
	{-50, -40, -30, -20, -20, -30, -40, -50},
}

func (t pst) at(c board.Color, sq board.Square) int32 {
	file := 7 - sq.File().V() // FileA=0 .. FileH=7
	rank := sq.Rank().V()     // Rank1=0 .. Rank8=7
	if c == board.Black {
		rank = 7 - rank
	}
	return t[rank][file]
}

// pieceSquareValue returns the phase-blended piece-square value for a piece, in centipawns,
// from the perspective of its own color.
func pieceSquareValue(c board.Color, p board.Piece, sq board.Square, phi float64) int32 {
	switch p {
	case board.Pawn:
		return blend(pawnMG.at(c, sq), pawnEG.at(c, sq), phi)
	case board.Knight:
		return knightPST.at(c, sq)
	case board.Bishop:
		return bishopPST.at(c, sq)
	case board.Rook:
		return rookPST.at(c, sq)
	case board.Queen:
		return queenPST.at(c, sq)
	case board.King:
		return blend(kingMG.at(c, sq), kingEG.at(c, sq), phi)
	default:
		return 0
	}
}

func blend(mg, eg int32, phi float64) int32 {
	return int32(float64(mg)*phi + float64(eg)*(1-phi))
}
