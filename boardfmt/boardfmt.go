/*
Package boardfmt prints a Position as a colorized ASCII board: letters
colored by side via github.com/fatih/color, so white and black pieces stay
visually distinct even in a plain terminal font that renders unicode chess
glyphs poorly.
*/
package boardfmt

import (
	"strings"

	corvid "github.com/augurchess/corvid"
	"github.com/fatih/color"
)

var (
	whitePiece = color.New(color.FgHiWhite, color.Bold)
	blackPiece = color.New(color.FgCyan, color.Bold)
	lightDot   = color.New(color.FgHiBlack)
)

var letters = [6]byte{'P', 'N', 'B', 'R', 'Q', 'K'}

// Position renders pos as an eight-rank board with file/rank labels, a
// trailing summary line of side to move, en-passant target, and castling
// rights, colorizing white pieces and black pieces differently.
func Position(pos corvid.Position) string {
	var b strings.Builder

	for rankIdx := 0; rankIdx < 8; rankIdx++ {
		b.WriteString(string(rune('8' - rankIdx)))
		b.WriteString("  ")
		for file := 0; file < 8; file++ {
			sq := corvid.Square(rankIdx*8 + file)
			kind, c, ok := pos.PieceAt(sq.Mask())
			if !ok {
				b.WriteString(lightDot.Sprint("."))
			} else if c == corvid.White {
				b.WriteString(whitePiece.Sprint(string(letters[kind])))
			} else {
				b.WriteString(blackPiece.Sprint(string(letters[kind])))
			}
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\n")

	b.WriteString("Side to move: ")
	if pos.SideToMove == corvid.White {
		b.WriteString("white")
	} else {
		b.WriteString("black")
	}

	b.WriteString("  En passant: ")
	if pos.EPTarget == corvid.NoSquare {
		b.WriteString("-")
	} else {
		b.WriteString(pos.EPTarget.String())
	}

	b.WriteString("  Castling: ")
	b.WriteString(castlingString(pos.Castling))
	b.WriteByte('\n')

	return b.String()
}

func castlingString(cr corvid.CastlingRights) string {
	var b strings.Builder
	if cr&corvid.WhiteKingside != 0 {
		b.WriteByte('K')
	}
	if cr&corvid.WhiteQueenside != 0 {
		b.WriteByte('Q')
	}
	if cr&corvid.BlackKingside != 0 {
		b.WriteByte('k')
	}
	if cr&corvid.BlackQueenside != 0 {
		b.WriteByte('q')
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}
