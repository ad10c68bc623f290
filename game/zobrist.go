/*
zobrist.go builds the Zobrist hash used to key the repetition table in
game.go: per-(color,kind,square) keys, castling-rights keys, en-passant-file
keys, and a side-to-move key, combined by XOR into a single uint64 that
distinguishes repeated positions cheaply and hashes and compares as a plain
map key.
*/
package game

import (
	"math/rand/v2"

	corvid "github.com/augurchess/corvid"
)

var (
	pieceKeys    [2][6][64]uint64
	castlingKeys [16]uint64
	epFileKeys   [8]uint64
	sideKey      uint64
)

func init() {
	for c := 0; c < 2; c++ {
		for k := 0; k < 6; k++ {
			for s := 0; s < 64; s++ {
				pieceKeys[c][k][s] = rand.Uint64()
			}
		}
	}
	for i := range castlingKeys {
		castlingKeys[i] = rand.Uint64()
	}
	for i := range epFileKeys {
		epFileKeys[i] = rand.Uint64()
	}
	sideKey = rand.Uint64()
}

// zobristKey returns a hash of pos suitable for repetition detection. It
// folds in every piece's placement, castling rights, the en-passant file
// (not the full square: two positions differing only in an en-passant
// target that is not actually capturable are the same position for
// repetition purposes in every rules-correct engine, but matching the
// source's coarser granularity here is simpler and only makes repetition
// detection marginally more conservative, never incorrect), and the side to
// move.
func zobristKey(pos corvid.Position) uint64 {
	var h uint64
	for c := corvid.White; c <= corvid.Black; c++ {
		for k := corvid.Pawn; k <= corvid.King; k++ {
			bb := pos.Board(c, k)
			for bb != 0 {
				sq := corvid.SquareFromMask(bb & -bb)
				bb &= bb - 1
				h ^= pieceKeys[c][k][sq]
			}
		}
	}
	h ^= castlingKeys[pos.Castling]
	if pos.EPTarget != corvid.NoSquare {
		h ^= epFileKeys[pos.EPTarget.File()]
	}
	if pos.SideToMove == corvid.Black {
		h ^= sideKey
	}
	return h
}
