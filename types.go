/*
types.go defines the board-level vocabulary shared by every other file in this
package: squares and their bijection to single-bit masks, colors, piece kinds
and their material weights, move kinds, and the packed Move representation.

Square indices run a8=0, b8=1, ..., h8=7, a7=8, ..., h1=63, not file-major
little-endian order. The corresponding bit mask places a8 on the most
significant bit and h1 on the least significant bit.
*/
package corvid

import "math/bits"

// Square is a board square, indexed a8=0 ... h1=63.
type Square int

// NoSquare marks the absence of an en-passant target.
const NoSquare Square = -1

const (
	SA8 Square = iota
	SB8
	SC8
	SD8
	SE8
	SF8
	SG8
	SH8
	SA7
	SB7
	SC7
	SD7
	SE7
	SF7
	SG7
	SH7
	SA6
	SB6
	SC6
	SD6
	SE6
	SF6
	SG6
	SH6
	SA5
	SB5
	SC5
	SD5
	SE5
	SF5
	SG5
	SH5
	SA4
	SB4
	SC4
	SD4
	SE4
	SF4
	SG4
	SH4
	SA3
	SB3
	SC3
	SD3
	SE3
	SF3
	SG3
	SH3
	SA2
	SB2
	SC2
	SD2
	SE2
	SF2
	SG2
	SH2
	SA1
	SB1
	SC1
	SD1
	SE1
	SF1
	SG1
	SH1
)

// File returns the square's file, 0 (a) through 7 (h).
func (s Square) File() int { return int(s) % 8 }

// RankIndex returns the square's enumeration rank row, 0 (rank 8) through 7 (rank 1).
func (s Square) RankIndex() int { return int(s) / 8 }

// Mask returns the single-bit bitboard mask for this square: a8 is bit 63, h1 is bit 0.
func (s Square) Mask() uint64 {
	return uint64(1) << (63 - uint(s))
}

// SquareFromMask returns the square whose mask has exactly one bit set equal to m.
// The caller must ensure m has exactly one bit set.
func SquareFromMask(m uint64) Square {
	return Square(63 - bits.TrailingZeros64(m))
}

// String renders the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	if s < 0 || s > 63 {
		return "-"
	}
	file := byte('a' + s.File())
	rank := byte('8' - s.RankIndex())
	return string([]byte{file, rank})
}

// SquareFromString parses algebraic notation ("e4") into a Square. ok is false
// for anything that isn't a well-formed square string.
func SquareFromString(s string) (sq Square, ok bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, false
	}
	rankIdx := '8' - rank
	return Square(int(rankIdx)*8 + int(file-'a')), true
}

// Color identifies the side to move or the owner of a piece.
type Color int

const (
	White Color = iota
	Black
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	return c ^ 1
}

// PieceKind identifies a kind of chess piece. Super exists only inside the
// MoveTable, as the union of queen and knight rays used to probe king safety;
// it is never produced by the move generator.
type PieceKind int

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	Super
)

// Weight returns the material value of the piece kind, in centipawns. King
// carries a value well above any realistic material sum so it dominates any
// accidental inclusion in a material sum, but kings are never captured in
// normal play and this constant is not relied upon by the evaluator.
func (pk PieceKind) Weight() int {
	switch pk {
	case Pawn:
		return 100
	case Knight:
		return 300
	case Bishop:
		return 320
	case Rook:
		return 500
	case Queen:
		return 1000
	case King:
		return 20000
	default:
		return 0
	}
}

// MoveKind is a 4-bit code identifying a move's special behavior (quiet,
// capture, castle, en passant, promotion, ...).
type MoveKind uint8

const (
	Quiet         MoveKind = 0x0
	DoublePush    MoveKind = 0x1
	KingCastle    MoveKind = 0x2
	QueenCastle   MoveKind = 0x3
	Capture       MoveKind = 0x4
	EPCapture     MoveKind = 0x5
	PromoteN      MoveKind = 0x8
	PromoteB      MoveKind = 0x9
	PromoteR      MoveKind = 0xA
	PromoteQ      MoveKind = 0xB
	PromoCaptureN MoveKind = 0xC
	PromoCaptureB MoveKind = 0xD
	PromoCaptureR MoveKind = 0xE
	PromoCaptureQ MoveKind = 0xF
)

// IsPromotion reports whether the move kind is any promotion or promo-capture.
func (mk MoveKind) IsPromotion() bool {
	return mk&0x8 != 0
}

// IsCapture reports whether the move kind removes an enemy piece.
func (mk MoveKind) IsCapture() bool {
	return mk == Capture || mk == EPCapture || (mk.IsPromotion() && mk&0x4 != 0)
}

// PromotionKind returns the piece kind a promotion/promo-capture move produces.
// Only valid when IsPromotion() is true.
func (mk MoveKind) PromotionKind() PieceKind {
	switch mk & 0x3 {
	case 0x0:
		return Knight
	case 0x1:
		return Bishop
	case 0x2:
		return Rook
	default:
		return Queen
	}
}

// Move packs a (from, to, kind) triple into 16 bits: from in bits 0-5, to in
// bits 6-11, kind in bits 12-15.
type Move uint16

// NewMove builds a Move from its parts.
func NewMove(from, to Square, kind MoveKind) Move {
	return Move(uint16(from) | uint16(to)<<6 | uint16(kind)<<12)
}

// From returns the move's origin square.
func (m Move) From() Square { return Square(m & 0x3F) }

// To returns the move's destination square.
func (m Move) To() Square { return Square((m >> 6) & 0x3F) }

// Kind returns the move's kind code.
func (m Move) Kind() MoveKind { return MoveKind((m >> 12) & 0xF) }

// MaxLegalMoves bounds the number of legal moves reachable from any position.
// See https://www.chessprogramming.org/Chess_Position#Maximum_number_of_moves.
const MaxLegalMoves = 218

// MoveList is a fixed-capacity move buffer, avoiding an allocation per call
// to the move generator.
type MoveList struct {
	Moves [MaxLegalMoves]Move
	Count int
}

// Push appends a move to the list.
func (l *MoveList) Push(m Move) {
	l.Moves[l.Count] = m
	l.Count++
}

// CastlingRights packs both sides' remaining castling rights into one byte.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// KingsideFor returns the kingside-castling bit for color c.
func KingsideFor(c Color) CastlingRights {
	if c == White {
		return WhiteKingside
	}
	return BlackKingside
}

// QueensideFor returns the queenside-castling bit for color c.
func QueensideFor(c Color) CastlingRights {
	if c == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// pieceSymbols renders FEN piece letters, indexed [color][kind].
var pieceSymbols = [2][6]byte{
	White: {'P', 'N', 'B', 'R', 'Q', 'K'},
	Black: {'p', 'n', 'b', 'r', 'q', 'k'},
}
