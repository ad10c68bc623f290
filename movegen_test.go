package corvid

import (
	"math/bits"
	"testing"
)

// From startpos, each side has exactly 20 legal first moves.
func TestStartposHasTwentyLegalMoves(t *testing.T) {
	mt := BuildMoveTable()
	pos := NewStartPosition()
	legal := GenLegalMoves(pos, mt)
	if len(legal) != 20 {
		t.Fatalf("got %d legal moves from startpos, want 20", len(legal))
	}

	knightMoves, pawnMoves := 0, 0
	for _, lm := range legal {
		kind, _, _ := pos.PieceAt(lm.Move.From().Mask())
		switch kind {
		case Knight:
			knightMoves++
		case Pawn:
			pawnMoves++
		}
	}
	if knightMoves != 4 || pawnMoves != 16 {
		t.Fatalf("got %d knight + %d pawn moves, want 4 + 16", knightMoves, pawnMoves)
	}
}

// perft(1) == 20, perft(2) == 400 from startpos.
func perft(pos Position, mt *MoveTable, depth int) int {
	legal := GenLegalMoves(pos, mt)
	if depth == 1 {
		return len(legal)
	}
	nodes := 0
	for _, lm := range legal {
		nodes += perft(lm.Result, mt, depth-1)
	}
	return nodes
}

func TestPerftStartpos(t *testing.T) {
	mt := BuildMoveTable()
	pos := NewStartPosition()
	if n := perft(pos, mt, 1); n != 20 {
		t.Errorf("perft(1) = %d, want 20", n)
	}
	if n := perft(pos, mt, 2); n != 400 {
		t.Errorf("perft(2) = %d, want 400", n)
	}
}

// En-passant capture updates the white-pawn bitboard correctly.
func TestEnPassantCapture(t *testing.T) {
	mt := BuildMoveTable()
	pos := ParseFEN("6k1/5p2/4p3/2p1P3/1pP2P2/1P6/8/6K1 b - c3 0 1")

	legal := GenLegalMoves(pos, mt)
	var found *LegalMove
	for i := range legal {
		if legal[i].Move.From() == SB4 && legal[i].Move.To() == SC3 && legal[i].Move.Kind() == EPCapture {
			found = &legal[i]
			break
		}
	}
	if found == nil {
		t.Fatal("b4c3 en-passant capture not found among legal moves")
	}

	want := ParseFEN("6k1/5p2/4p3/2p1P3/5P2/1Pp5/8/6K1 w - - 0 1")
	if found.Result.Board(White, Pawn) != want.Board(White, Pawn) {
		t.Errorf("white pawn bitboard after EP capture = %x, want %x",
			found.Result.Board(White, Pawn), want.Board(White, Pawn))
	}
}

// A king that would pass through an attacked square may not castle.
func TestCastlingThroughCheckRefused(t *testing.T) {
	mt := BuildMoveTable()
	// Black king e8, rook h8, white bishop on a3 attacking f8.
	pos := ParseFEN("4k2r/8/8/8/8/B7/8/4K3 b k - 0 1")

	legal := GenLegalMoves(pos, mt)
	for _, lm := range legal {
		if lm.Move.Kind() == KingCastle {
			t.Fatalf("kingside castle should be illegal while f8 is attacked, got move %s", MoveToUCI(lm.Move))
		}
	}
}

// From a7, White has exactly four promotion moves to a8.
func TestPromotionChoices(t *testing.T) {
	mt := BuildMoveTable()
	pos := ParseFEN("8/P7/8/8/8/8/8/k6K w - - 0 1")

	legal := GenLegalMoves(pos, mt)
	var promos []LegalMove
	for _, lm := range legal {
		if lm.Move.From() == SA7 {
			promos = append(promos, lm)
		}
	}
	if len(promos) != 4 {
		t.Fatalf("got %d promotion moves from a7, want 4", len(promos))
	}
	seen := map[PieceKind]bool{}
	for _, lm := range promos {
		if lm.Move.To() != SA8 {
			t.Errorf("promotion move goes to %s, want a8", lm.Move.To())
		}
		if !lm.Move.Kind().IsPromotion() {
			t.Errorf("move %s is not flagged as a promotion", MoveToUCI(lm.Move))
		}
		seen[lm.Move.Kind().PromotionKind()] = true
	}
	for _, k := range []PieceKind{Knight, Bishop, Rook, Queen} {
		if !seen[k] {
			t.Errorf("missing promotion to %v", k)
		}
	}
}

// Both king bitboards stay powers of two in every reachable position.
func TestKingBitboardsArePowersOfTwo(t *testing.T) {
	mt := BuildMoveTable()
	pos := NewStartPosition()
	legal := GenLegalMoves(pos, mt)
	for _, lm := range legal {
		for _, c := range []Color{White, Black} {
			kb := lm.Result.Board(c, King)
			if bits.OnesCount64(kb) != 1 {
				t.Fatalf("king bitboard for %v has %d bits set after %s, want 1",
					c, bits.OnesCount64(kb), MoveToUCI(lm.Move))
			}
		}
	}
}

// A pseudo-legal move never has from == to, and never lands on a
// friendly-occupied square.
func TestPseudoLegalNeverSelfCaptures(t *testing.T) {
	mt := BuildMoveTable()
	pos := NewStartPosition()
	var list MoveList
	GenPseudoLegalMoves(&pos, mt, &list)

	friendly := pos.Side(pos.SideToMove)
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i]
		if m.From() == m.To() {
			t.Fatalf("move %s has from == to", MoveToUCI(m))
		}
		if m.To().Mask()&friendly != 0 && m.Kind() != KingCastle && m.Kind() != QueenCastle {
			t.Fatalf("move %s lands on a friendly-occupied square", MoveToUCI(m))
		}
	}
}

// Every legal move leaves the mover's king off the opponent's attack mask.
func TestLegalMovesLeaveKingSafe(t *testing.T) {
	mt := BuildMoveTable()
	pos := ParseFEN("r3k2r/p1pp1pb1/bn2Qnp1/2qPN3/1p2P3/2N5/PPPBBPPP/R3K2R b KQkq - 3 2")
	for _, lm := range GenLegalMoves(pos, mt) {
		enemyAttack := AttackMask(lm.Result, mt, lm.Result.SideToMove)
		if lm.Result.Board(pos.SideToMove, King)&enemyAttack != 0 {
			t.Fatalf("move %s leaves mover's king in check", MoveToUCI(lm.Move))
		}
	}
}

// AttackMask must include a non-pawn's quiet destinations, not just its
// captures: only a pawn's quiet push is excluded from the mask.
func TestAttackMaskIncludesNonPawnQuietDestinations(t *testing.T) {
	mt := BuildMoveTable()
	// White bishop alone on a3: its empty-board diagonal reaches b4-c5-d6-e7-f8
	// and b2-c1, every one of them a Quiet move that must still threaten its
	// destination.
	pos := ParseFEN("8/8/8/8/8/B7/8/4K3 w - - 0 1")
	mask := AttackMask(pos, mt, White)

	for _, sq := range []Square{SB4, SC5, SD6, SE7, SF8, SB2, SC1} {
		if mask&sq.Mask() == 0 {
			t.Errorf("AttackMask missing %s, a quiet bishop destination from a3", sq)
		}
	}
}
