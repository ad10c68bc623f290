/*
legality.go wraps the pseudo-legal generator and the position transformer,
discarding any move that leaves the mover's king attacked, or any castle
that passes the king through an attacked square.
*/
package corvid

// LegalMove pairs a legal move with the Position that results from playing it.
type LegalMove struct {
	Move   Move
	Result Position
}

// AttackMask returns the bitwise OR of every square attacker could move a
// piece onto from pos, excluding pawn quiet pushes, pawn double pushes,
// pawn push-promotions, and castling moves -- none of those threaten a
// square the way a capture does. Quiet is the shared zero code for every
// non-capturing move, so only a pawn's quiet destination is excluded; a
// knight/bishop/rook/queen/king's Quiet move still threatens its
// destination and must stay in the mask. En-passant capture destinations
// (the EP target square) are not special-cased out: they fall out of
// genPawnMoves naturally and so are correctly included.
func AttackMask(pos Position, mt *MoveTable, attacker Color) uint64 {
	shadow := pos
	shadow.SideToMove = attacker

	var list MoveList
	GenPseudoLegalMoves(&shadow, mt, &list)

	var mask uint64
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i]
		switch m.Kind() {
		case DoublePush, KingCastle, QueenCastle, PromoteN, PromoteB, PromoteR, PromoteQ:
			continue
		case Quiet:
			if kind, _, _ := shadow.PieceAt(m.From().Mask()); kind == Pawn {
				continue
			}
		}
		mask |= m.To().Mask()
	}
	return mask
}

// castleTransitSquares returns the squares the king occupies or crosses
// during a castle, all of which must be un-attacked both before and after
// the move.
func castleTransitSquares(mover Color, kingside bool) uint64 {
	if mover == White {
		if kingside {
			return SE1.Mask() | SF1.Mask() | SG1.Mask()
		}
		return SE1.Mask() | SD1.Mask() | SC1.Mask()
	}
	if kingside {
		return SE8.Mask() | SF8.Mask() | SG8.Mask()
	}
	return SE8.Mask() | SD8.Mask() | SC8.Mask()
}

// GenLegalMoves returns every legal move from pos, each paired with the
// Position it leads to.
func GenLegalMoves(pos Position, mt *MoveTable) []LegalMove {
	var pseudo MoveList
	GenPseudoLegalMoves(&pos, mt, &pseudo)

	us := pos.SideToMove
	them := us.Opponent()
	currentAttack := AttackMask(pos, mt, them)

	out := make([]LegalMove, 0, pseudo.Count)
	for i := 0; i < pseudo.Count; i++ {
		m := pseudo.Moves[i]
		kind := m.Kind()

		if kind == KingCastle || kind == QueenCastle {
			transit := castleTransitSquares(us, kind == KingCastle)
			if transit&currentAttack != 0 {
				continue
			}
		}

		result := pos.MakeMove(m)
		enemyAttack := AttackMask(result, mt, them)

		if kind == KingCastle || kind == QueenCastle {
			transit := castleTransitSquares(us, kind == KingCastle)
			if transit&enemyAttack != 0 {
				continue
			}
		}

		if result.Board(us, King)&enemyAttack != 0 {
			continue
		}

		out = append(out, LegalMove{Move: m, Result: result})
	}
	return out
}

// InCheck reports whether color c's king is presently attacked in pos.
func InCheck(pos Position, mt *MoveTable, c Color) bool {
	return pos.Board(c, King)&AttackMask(pos, mt, c.Opponent()) != 0
}
