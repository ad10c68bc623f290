/*
evaluate.go implements the Evaluator: material plus a movekind bonus plus
piece-square tables blended by an endgame weight, scored from the
perspective of the side that just moved.

Piece-square lookups are done directly by square index via popLSB (see
DESIGN.md for why this is more correct than indexing by raw bit position).
*/
package corvid

import "math/bits"

// startMassValue is the opening material of one side: Q + 2R + 2B + 2N + 8P.
// Computed at package init rather than as a const, since Go constant
// expressions can't call methods.
var startMassValue = Queen.Weight() + 2*Rook.Weight() + 2*Bishop.Weight() + 2*Knight.Weight() + 8*Pawn.Weight()

func moveKindBonus(mk MoveKind) int {
	switch mk {
	case PromoteN, PromoCaptureN:
		if mk == PromoCaptureN {
			return Knight.Weight() + 50
		}
		return Knight.Weight()
	case PromoteB, PromoCaptureB:
		if mk == PromoCaptureB {
			return Bishop.Weight() + 50
		}
		return Bishop.Weight()
	case PromoteR, PromoCaptureR:
		if mk == PromoCaptureR {
			return Rook.Weight() + 50
		}
		return Rook.Weight()
	case PromoteQ, PromoCaptureQ:
		if mk == PromoCaptureQ {
			return Queen.Weight() + 50
		}
		return Queen.Weight()
	case EPCapture:
		return Pawn.Weight()
	case Capture:
		return 400
	default:
		return 0
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func materialSum(pos *Position, c Color) int {
	sum := 0
	for _, k := range [...]PieceKind{Pawn, Knight, Bishop, Rook, Queen} {
		sum += bits.OnesCount64(pos.Board(c, k)) * k.Weight()
	}
	return sum
}

func sumHeatmap(table [64]int, bb uint64) int {
	score := 0
	for bb != 0 {
		sq := SquareFromMask(bb & -bb)
		bb &= bb - 1
		score += table[int(sq)]
	}
	return score
}

// Evaluate scores pos from the perspective of the side that just moved,
// given the kind of move that produced pos. Higher is better for that side.
func Evaluate(pos *Position, lastMove MoveKind) int {
	mover := pos.SideToMove.Opponent()

	material := materialSum(pos, mover) + moveKindBonus(lastMove)
	w := clamp(material*100/startMassValue, 0, 100)

	tables := heatmapFor(mover)

	base := sumHeatmap(tables[hmKnights], pos.Board(mover, Knight)) +
		sumHeatmap(tables[hmBishops], pos.Board(mover, Bishop)) +
		sumHeatmap(tables[hmRooks], pos.Board(mover, Rook)) +
		sumHeatmap(tables[hmQueens], pos.Board(mover, Queen))

	blended := sumHeatmap(tables[hmPawnsOpening], pos.Board(mover, Pawn))*(100-w) +
		sumHeatmap(tables[hmPawnsEndgame], pos.Board(mover, Pawn))*w +
		sumHeatmap(tables[hmKingsOpening], pos.Board(mover, King))*(100-w) +
		sumHeatmap(tables[hmKingsEndgame], pos.Board(mover, King))*w

	return material + base + blended
}
