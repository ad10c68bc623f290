/*
movegen.go implements the pseudo-legal move generator: every move that
respects movement geometry, blockers, capture rules, pawn-direction rules,
en-passant eligibility, and castling preconditions on occupancy and rights
-- but does not yet check whether the mover's king ends up attacked. That
check lives in legality.go.
*/
package corvid

// GenPseudoLegalMoves fills list with every pseudo-legal move available to
// pos.SideToMove.
func GenPseudoLegalMoves(pos *Position, mt *MoveTable, list *MoveList) {
	us := pos.SideToMove
	friendly := pos.Side(us)
	enemy := pos.Side(us.Opponent())

	for _, kind := range [...]PieceKind{Knight, Bishop, Rook, Queen, King} {
		bb := pos.Board(us, kind)
		for bb != 0 {
			originMask := bb & -bb
			origin := SquareFromMask(originMask)
			bb &= bb - 1

			for _, ray := range mt.Rays(us, kind, origin) {
				for _, destMask := range ray {
					if destMask&friendly != 0 {
						break
					}
					dest := SquareFromMask(destMask)
					if destMask&enemy != 0 {
						list.Push(NewMove(origin, dest, Capture))
						break
					}
					list.Push(NewMove(origin, dest, Quiet))
				}
			}
		}
	}

	genCastling(pos, list)
	genPawnMoves(pos, mt, list)
}

// genCastling appends the pseudo-legal castling moves: geometry and rights
// only, no attack-square checks (those live exclusively in the legality
// filter).
func genCastling(pos *Position, list *MoveList) {
	us := pos.SideToMove
	occ := pos.Occupied()
	rookHome := pos.Board(us, Rook)

	kingFrom, kSideTo := SE1, SG1
	qSideTo := SC1
	kSideEmpty := SF1.Mask() | SG1.Mask()
	qSideEmpty := SB1.Mask() | SC1.Mask() | SD1.Mask()
	if us == Black {
		kingFrom, kSideTo, qSideTo = SE8, SG8, SC8
		kSideEmpty = SF8.Mask() | SG8.Mask()
		qSideEmpty = SB8.Mask() | SC8.Mask() | SD8.Mask()
	}

	kRookFrom, _ := castleRookSquares(us, true)
	qRookFrom, _ := castleRookSquares(us, false)

	if pos.Castling&KingsideFor(us) != 0 && occ&kSideEmpty == 0 && rookHome&kRookFrom.Mask() != 0 {
		list.Push(NewMove(kingFrom, kSideTo, KingCastle))
	}
	if pos.Castling&QueensideFor(us) != 0 && occ&qSideEmpty == 0 && rookHome&qRookFrom.Mask() != 0 {
		list.Push(NewMove(kingFrom, qSideTo, QueenCastle))
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// genPawnMoves appends pseudo-legal pawn moves, expanding destinations on
// the promotion rank into their four promotion variants.
func genPawnMoves(pos *Position, mt *MoveTable, list *MoveList) {
	us := pos.SideToMove
	occ := pos.Occupied()
	enemy := pos.Side(us.Opponent())
	promoRank := 0
	if us == Black {
		promoRank = 7
	}

	bb := pos.Board(us, Pawn)
	for bb != 0 {
		originMask := bb & -bb
		origin := SquareFromMask(originMask)
		bb &= bb - 1

		for _, ray := range mt.Rays(us, Pawn, origin) {
			dest := SquareFromMask(ray[0])
			if dest.File() == origin.File() {
				distance := absInt(dest.RankIndex() - origin.RankIndex())
				if distance == 1 {
					if occ&dest.Mask() == 0 {
						emitPawnMove(list, origin, dest, false, dest.RankIndex() == promoRank)
					}
				} else {
					midRank := (origin.RankIndex() + dest.RankIndex()) / 2
					mid := Square(midRank*8 + dest.File())
					if occ&mid.Mask() == 0 && occ&dest.Mask() == 0 {
						list.Push(NewMove(origin, dest, DoublePush))
					}
				}
				continue
			}

			// Diagonal: capture, promotion-capture, or en-passant.
			if enemy&dest.Mask() != 0 {
				emitPawnMove(list, origin, dest, true, dest.RankIndex() == promoRank)
			} else if pos.EPTarget != NoSquare && dest == pos.EPTarget {
				list.Push(NewMove(origin, dest, EPCapture))
			}
		}
	}
}

// emitPawnMove appends a single pawn push/capture, expanding it into four
// promotion variants when onPromoRank is true.
func emitPawnMove(list *MoveList, from, to Square, isCapture, onPromoRank bool) {
	if !onPromoRank {
		if isCapture {
			list.Push(NewMove(from, to, Capture))
		} else {
			list.Push(NewMove(from, to, Quiet))
		}
		return
	}
	if isCapture {
		list.Push(NewMove(from, to, PromoCaptureN))
		list.Push(NewMove(from, to, PromoCaptureB))
		list.Push(NewMove(from, to, PromoCaptureR))
		list.Push(NewMove(from, to, PromoCaptureQ))
	} else {
		list.Push(NewMove(from, to, PromoteN))
		list.Push(NewMove(from, to, PromoteB))
		list.Push(NewMove(from, to, PromoteR))
		list.Push(NewMove(from, to, PromoteQ))
	}
}
