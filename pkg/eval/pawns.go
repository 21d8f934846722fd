package eval

import "github.com/corvidchess/corvid/pkg/board"

// pawnStructure scores doubled and isolated pawns (penalties) and passed pawns (a phase-scaled
// bonus) for the given color.
func pawnStructure(pos *board.Position, c board.Color, phase Phase) int32 {
	var total int32

	own := pos.Piece(c, board.Pawn)
	enemy := pos.Piece(c.Opponent(), board.Pawn)

	for f := board.ZeroFile; f < board.NumFiles; f++ {
		onFile := own & board.BitFile(f)
		n := onFile.PopCount()
		if n == 0 {
			continue
		}
		if n > 1 {
			total -= int32(n-1) * 30
		}
		if !hasAdjacentFilePawn(own, f) {
			total -= int32(n) * 25
		}
	}

	for _, sq := range own.ToSquares() {
		if isPassedPawn(sq, enemy, c) {
			total += int32(float64(50+advancedRanks(sq, c)*10) * phase.Float())
		}
	}
	return total
}

func hasAdjacentFilePawn(pawns board.Bitboard, f board.File) bool {
	for _, df := range []int{-1, 1} {
		nf := f.V() + df
		if nf < 0 || nf > 7 {
			continue
		}
		if pawns&board.BitFile(board.File(nf)) != 0 {
			return true
		}
	}
	return false
}

// advancedRanks returns how many ranks the pawn has advanced from its own starting rank.
func advancedRanks(sq board.Square, c board.Color) int {
	if c == board.White {
		return sq.Rank().V() - board.Rank2.V()
	}
	return board.Rank7.V() - sq.Rank().V()
}

// isPassedPawn reports whether no enemy pawn sits on the same or an adjacent file, on a
// square ahead of sq (from c's perspective).
func isPassedPawn(sq board.Square, enemy board.Bitboard, c board.Color) bool {
	f := sq.File().V()
	for df := -1; df <= 1; df++ {
		nf := f + df
		if nf < 0 || nf > 7 {
			continue
		}
		col := enemy & board.BitFile(board.File(nf))
		for _, esq := range col.ToSquares() {
			if isAhead(esq, sq, c) {
				return false
			}
		}
	}
	return true
}

// isAhead reports whether sq lies strictly ahead of ref from c's perspective.
func isAhead(sq, ref board.Square, c board.Color) bool {
	if c == board.White {
		return sq.Rank() > ref.Rank()
	}
	return sq.Rank() < ref.Rank()
}

// manhattan returns the Manhattan distance used by the passed-pawn and endgame king-activity
// features: the sum of the file and rank deltas.
func manhattan(a, b board.Square) int {
	df := abs(a.File().V() - b.File().V())
	dr := abs(a.Rank().V() - b.Rank().V())
	return df + dr
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// passedPawnEndgame is the stronger endgame-only passed-pawn term (feature 12): it rewards
// advancement, king proximity, and an unstoppable runner more heavily than the middlegame term.
func passedPawnEndgame(pos *board.Position, c board.Color, turn board.Color) int32 {
	own := pos.Piece(c, board.Pawn)
	enemy := pos.Piece(c.Opponent(), board.Pawn)
	ownKing := pos.KingSquare(c)
	enemyKing := pos.KingSquare(c.Opponent())

	var total int32
	for _, sq := range own.ToSquares() {
		if !isPassedPawn(sq, enemy, c) {
			continue
		}

		ranks := advancedRanks(sq, c)
		base := int32(20 * (ranks + 1))

		rank := sq.Rank().V()
		on67 := (c == board.White && (rank == board.Rank6.V() || rank == board.Rank7.V())) ||
			(c == board.Black && (rank == board.Rank3.V() || rank == board.Rank2.V()))
		if on67 {
			base *= 2
		}

		base += int32((7 - manhattan(ownKing, sq)) * 10)

		if isUnstoppable(sq, enemyKing, c, turn) {
			base *= 3
		}
		total += base
	}
	return total
}

// isUnstoppable compares the pawn's distance to its promotion square against the defending
// King's distance, adjusted by whose turn it is to move.
func isUnstoppable(sq, enemyKing board.Square, c, turn board.Color) bool {
	promo := board.Rank8
	if c == board.Black {
		promo = board.Rank1
	}
	pawnDist := abs(promo.V() - sq.Rank().V())

	promoSq := board.NewSquare(sq.File(), promo)
	kingDist := manhattan(enemyKing, promoSq)
	if turn == c.Opponent() {
		kingDist-- // defender moves first
	}
	return pawnDist < kingDist
}
