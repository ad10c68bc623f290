package corvid

import (
	"math/bits"
	"testing"
)

// Every ray in the MoveTable consists of single-bit masks, each on a
// distinct square, ordered nearest-first.
func TestMoveTableRaysAreSingleBitAndOrdered(t *testing.T) {
	mt := BuildMoveTable()

	check := func(label string, rays [64][]Ray) {
		for origin := 0; origin < 64; origin++ {
			for _, ray := range rays[origin] {
				seen := map[Square]bool{}
				prevDist := -1
				for _, mask := range ray {
					if bits.OnesCount64(mask) != 1 {
						t.Fatalf("%s origin %d: ray mask %x is not single-bit", label, origin, mask)
					}
					sq := SquareFromMask(mask)
					if seen[sq] {
						t.Fatalf("%s origin %d: square %s repeated within a ray", label, origin, sq)
					}
					seen[sq] = true
					dist := absInt(sq.File()-Square(origin).File()) + absInt(sq.RankIndex()-Square(origin).RankIndex())
					if prevDist >= 0 && dist < prevDist {
						t.Fatalf("%s origin %d: ray not nearest-first (dist %d after %d)", label, origin, dist, prevDist)
					}
					prevDist = dist
				}
			}
		}
	}

	check("knight", mt.knight)
	check("bishop", mt.bishop)
	check("rook", mt.rook)
	check("queen", mt.queen)
	check("king", mt.king)
	check("super", mt.super)
	check("white pawn", mt.pawn[White])
	check("black pawn", mt.pawn[Black])
}
