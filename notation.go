/*
notation.go implements the UCI long-algebraic move-string codec: two squares
concatenated, plus an optional promotion letter in {n,b,r,q}.
*/
package corvid

// MoveToUCI renders m as UCI long algebraic notation, e.g. "e2e4", "e7e8q".
func MoveToUCI(m Move) string {
	s := m.From().String() + m.To().String()
	if m.Kind().IsPromotion() {
		switch m.Kind().PromotionKind() {
		case Knight:
			s += "n"
		case Bishop:
			s += "b"
		case Rook:
			s += "r"
		case Queen:
			s += "q"
		}
	}
	return s
}

// MoveFromUCI resolves a UCI move string against the legal moves available
// in pos, disambiguating promotion push vs. promotion capture by file (a
// push keeps the same file; a capture changes it), and matching against the
// legal list rather than re-deriving move kind from scratch -- en-passant
// and castling in particular are not recoverable from the four-character
// string alone.
func MoveFromUCI(s string, legal []LegalMove) (Move, bool) {
	if len(s) != 4 && len(s) != 5 {
		return 0, false
	}
	from, ok := SquareFromString(s[0:2])
	if !ok {
		return 0, false
	}
	to, ok := SquareFromString(s[2:4])
	if !ok {
		return 0, false
	}
	var wantPromo PieceKind = -1
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			wantPromo = Knight
		case 'b':
			wantPromo = Bishop
		case 'r':
			wantPromo = Rook
		case 'q':
			wantPromo = Queen
		default:
			return 0, false
		}
	}

	for _, lm := range legal {
		m := lm.Move
		if m.From() != from || m.To() != to {
			continue
		}
		if m.Kind().IsPromotion() {
			if wantPromo == -1 || m.Kind().PromotionKind() != wantPromo {
				continue
			}
		} else if wantPromo != -1 {
			continue
		}
		return m, true
	}
	return 0, false
}
