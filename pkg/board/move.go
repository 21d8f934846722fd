package board

import "fmt"

// MoveType indicates the type of move. The no-progress counter is reset with any non-Normal move.
type MoveType uint8

const (
	Normal    MoveType = iota
	Push               // Pawn single-square move
	Jump               // Pawn 2-square move
	EnPassant          // Implicitly a pawn capture
	QueenSideCastle
	KingSideCastle
	Capture
	Promotion
	CapturePromotion

	nullMoveType // NullMove sentinel, never a legal move
)

// NullMove is the distinguished null move used for null-move pruning: it passes the turn
// without moving a piece.
var NullMove = Move{Type: nullMoveType}

// Move represents a not-necessarily-legal move along with contextual metadata needed to make
// and unmake it cheaply and to order it without re-probing the position.
type Move struct {
	Type       MoveType
	From, To   Square
	Color      Color // color making the move (undefined for NullMove)
	Piece      Piece // piece being moved (NoPiece for NullMove)
	Promotion  Piece // desired piece for promotion, if any
	Capture    Piece // captured piece, if any
	GivesCheck bool  // true iff the move gives check (filled in by move generation)
}

// IsNull reports whether the move is the null move.
func (m Move) IsNull() bool {
	return m.Type == nullMoveType
}

// IsCapture reports whether the move captures a piece, including en passant.
func (m Move) IsCapture() bool {
	return m.Type == Capture || m.Type == CapturePromotion || m.Type == EnPassant
}

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Type == EnPassant
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Type == Promotion || m.Type == CapturePromotion
}

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool {
	return m.Type == QueenSideCastle || m.Type == KingSideCastle
}

// IsQuiet reports whether the move is neither a capture nor a promotion: the kind of move
// tracked by killer moves and the history heuristic.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// ParseMove parses a move in pure algebraic coordinate notation, such as "a2a4" or "a7a8q".
// The parsed move carries no contextual information (capture, check, castling); use
// Position.ParseLongAlgebraic to resolve it against a position.
func ParseMove(str string) (Move, error) {
	runes := []rune(str)

	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("invalid move: %q", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return Move{}, fmt.Errorf("invalid from in %q: %w", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return Move{}, fmt.Errorf("invalid to in %q: %w", str, err)
	}

	m := Move{From: from, To: to}
	if len(runes) == 5 {
		promo, ok := ParsePiece(runes[4])
		if !ok || promo == Pawn || promo == King {
			return Move{}, fmt.Errorf("invalid promotion in %q", str)
		}
		m.Promotion = promo
	}
	return m, nil
}

// Equals compares moves by from/to/promotion, which is sufficient to disambiguate any two
// legal moves from the same position.
func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	if m.Promotion.IsValid() {
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.Promotion)
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}

// EnPassantCapture returns the square of the pawn captured en passant, if this is such a move.
func (m Move) EnPassantCapture() (Square, bool) {
	if m.Type != EnPassant {
		return ZeroSquare, false
	}
	return NewSquare(m.To.File(), m.From.Rank()), true
}

// EnPassantTarget returns the en passant target square created by this move, if it is a Jump.
func (m Move) EnPassantTarget() (Square, bool) {
	if m.Type != Jump {
		return ZeroSquare, false
	}
	mid := Rank3
	if m.Color == Black {
		mid = Rank6
	}
	return NewSquare(m.From.File(), mid), true
}

// CastlingRookMove returns the rook's from/to squares for a castling move.
func (m Move) CastlingRookMove() (from, to Square, ok bool) {
	if !m.IsCastle() {
		return ZeroSquare, ZeroSquare, false
	}
	rank := Rank1
	if m.Color == Black {
		rank = Rank8
	}
	if m.Type == KingSideCastle {
		return NewSquare(FileH, rank), NewSquare(FileF, rank), true
	}
	return NewSquare(FileA, rank), NewSquare(FileD, rank), true
}

// CastlingRightsLost returns the castling rights this move revokes: the mover's own rights if
// the King moved or a Rook left its home square, and the opponent's corresponding right if a
// Rook was captured on its home square.
func (m Move) CastlingRightsLost() Castling {
	var lost Castling
	if m.Piece == King {
		lost |= CastlingRights(m.Color)
	}
	if m.Piece == Rook {
		lost |= rookCastlingRight(m.Color, m.From)
	}
	if m.IsCapture() && m.Capture == Rook {
		lost |= rookCastlingRight(m.Color.Opponent(), m.To)
	}
	return lost
}

func rookCastlingRight(c Color, sq Square) Castling {
	switch {
	case c == White && sq == A1:
		return WhiteQueenSideCastle
	case c == White && sq == H1:
		return WhiteKingSideCastle
	case c == Black && sq == A8:
		return BlackQueenSideCastle
	case c == Black && sq == H8:
		return BlackKingSideCastle
	default:
		return NoCastlingRights
	}
}

// PrintMoves formats a move sequence space-separated, e.g. "E2E4 E7E5".
func PrintMoves(moves []Move) string {
	var out []byte
	for i, m := range moves {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, []byte(m.String())...)
	}
	return string(out)
}
