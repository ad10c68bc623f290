/*
position.go applies one (piece, from, to, movekind) to a Position to
produce a new Position, never mutating the one it started from.
*/
package corvid

// Position is a complete, value-semantic chess position: the twelve
// occupancy bitboards, side to move, remaining castling rights, the current
// en-passant target (NoSquare if none), and the two FEN clocks.
type Position struct {
	Bitboard
	SideToMove Color
	Castling   CastlingRights
	EPTarget   Square
	Halfmove   int
	Fullmove   int
}

// epBehind returns the square a double push's en-passant target sits on: one
// rank behind the pushed pawn's destination, from the mover's perspective.
func epBehind(mover Color, to Square) Square {
	if mover == White {
		return Square(to.RankIndex()+1)*8 + Square(to.File())
	}
	return Square(to.RankIndex()-1)*8 + Square(to.File())
}

// epCapturedPawnSquare returns the square of the pawn actually removed by an
// en-passant capture landing on to.
func epCapturedPawnSquare(mover Color, to Square) Square {
	return epBehind(mover, to)
}

// castleRookSquares returns the rook's (from, to) squares for a castling
// move, given the mover's color and whether it is kingside.
func castleRookSquares(mover Color, kingside bool) (from, to Square) {
	if mover == White {
		if kingside {
			return SH1, SF1
		}
		return SA1, SD1
	}
	if kingside {
		return SH8, SF8
	}
	return SA8, SD8
}

// homeRookRight reports the castling-rights bit that a rook move from sq
// would forfeit, and whether sq is in fact one of the four rook home squares.
func homeRookRight(sq Square) (CastlingRights, bool) {
	switch sq {
	case SA1:
		return WhiteQueenside, true
	case SH1:
		return WhiteKingside, true
	case SA8:
		return BlackQueenside, true
	case SH8:
		return BlackKingside, true
	default:
		return 0, false
	}
}

// MakeMove applies m to p and returns the resulting Position. p itself is
// left untouched: the receiver is a value, so every field is copied.
func (p Position) MakeMove(m Move) Position {
	next := p
	us := p.SideToMove
	them := us.Opponent()
	from, to := m.From(), m.To()
	kind := m.Kind()

	mover, _, _ := p.PieceAt(from.Mask())

	next.Remove(us, mover, from)

	switch kind {
	case KingCastle, QueenCastle:
		next.Place(us, King, to)
		rf, rt := castleRookSquares(us, kind == KingCastle)
		next.Remove(us, Rook, rf)
		next.Place(us, Rook, rt)
		next.Castling &^= KingsideFor(us) | QueensideFor(us)

	case EPCapture:
		next.Remove(them, Pawn, epCapturedPawnSquare(us, to))
		next.Place(us, Pawn, to)

	default:
		if kind.IsCapture() {
			next.RemoveAnyAt(them, to.Mask())
		}
		if kind.IsPromotion() {
			next.Place(us, kind.PromotionKind(), to)
		} else {
			next.Place(us, mover, to)
		}
	}

	// Castling-rights bookkeeping for king and rook moves not already
	// handled above (castling itself already cleared both of the mover's
	// rights).
	if mover == King && kind != KingCastle && kind != QueenCastle {
		next.Castling &^= KingsideFor(us) | QueensideFor(us)
	}
	if mover == Rook {
		if right, ok := homeRookRight(from); ok {
			next.Castling &^= right
		}
	}

	switch {
	case kind == DoublePush:
		next.Halfmove = 0
		next.EPTarget = epBehind(us, to)
	case kind == KingCastle || kind == QueenCastle:
		next.Halfmove++
		next.EPTarget = NoSquare
	case kind == Quiet && mover != Pawn:
		next.Halfmove++
		next.EPTarget = NoSquare
	default:
		next.Halfmove = 0
		next.EPTarget = NoSquare
	}

	if us == Black {
		next.Fullmove++
	}
	next.SideToMove = them

	return next
}

// NewStartPosition returns the standard chess starting position.
func NewStartPosition() Position {
	p := Position{
		SideToMove: White,
		Castling:   WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside,
		EPTarget:   NoSquare,
		Halfmove:   0,
		Fullmove:   1,
	}
	for _, s := range []Square{SA2, SB2, SC2, SD2, SE2, SF2, SG2, SH2} {
		p.Place(White, Pawn, s)
	}
	for _, s := range []Square{SA7, SB7, SC7, SD7, SE7, SF7, SG7, SH7} {
		p.Place(Black, Pawn, s)
	}
	backWhite := []struct {
		s Square
		k PieceKind
	}{
		{SA1, Rook}, {SB1, Knight}, {SC1, Bishop}, {SD1, Queen},
		{SE1, King}, {SF1, Bishop}, {SG1, Knight}, {SH1, Rook},
	}
	for _, e := range backWhite {
		p.Place(White, e.k, e.s)
	}
	backBlack := []struct {
		s Square
		k PieceKind
	}{
		{SA8, Rook}, {SB8, Knight}, {SC8, Bishop}, {SD8, Queen},
		{SE8, King}, {SF8, Bishop}, {SG8, Knight}, {SH8, Rook},
	}
	for _, e := range backBlack {
		p.Place(Black, e.k, e.s)
	}
	return p
}
