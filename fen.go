/*
fen.go converts six-field Forsyth-Edwards Notation to an equivalent Position
and back. A malformed FEN string does not panic: it logs a warning and falls
back to the start position.
*/
package corvid

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// InitialPositionFEN is the standard chess starting position.
const InitialPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string into a Position. A malformed string never
// panics: it is logged at WARNING and the start position is returned instead.
func ParseFEN(fen string) Position {
	pos, err := parseFENStrict(fen)
	if err != nil {
		log.Warningf("malformed FEN %q (%v); defaulting to start position", fen, err)
		return NewStartPosition()
	}
	return pos
}

func parseFENStrict(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return Position{}, fmt.Errorf("expected 6 fields, got %d", len(fields))
	}

	var pos Position
	if err := parsePlacement(fields[0], &pos); err != nil {
		return Position{}, err
	}

	switch fields[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return Position{}, fmt.Errorf("bad active color %q", fields[1])
	}

	cr, err := parseCastlingRights(fields[2])
	if err != nil {
		return Position{}, err
	}
	pos.Castling = cr

	if fields[3] == "-" {
		pos.EPTarget = NoSquare
	} else {
		sq, ok := SquareFromString(fields[3])
		if !ok {
			return Position{}, fmt.Errorf("bad en passant target %q", fields[3])
		}
		pos.EPTarget = sq
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil {
		return Position{}, fmt.Errorf("bad halfmove clock %q: %w", fields[4], err)
	}
	pos.Halfmove = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil {
		return Position{}, fmt.Errorf("bad fullmove number %q: %w", fields[5], err)
	}
	pos.Fullmove = fullmove

	return pos, nil
}

func parsePlacement(field string, pos *Position) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("expected 8 ranks, got %d", len(ranks))
	}
	for rankIdx, rankStr := range ranks {
		file := 0
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			kind, ok := pieceKindFromLetter(c)
			if !ok {
				return fmt.Errorf("bad piece letter %q", c)
			}
			if file > 7 {
				return fmt.Errorf("rank %d overflows 8 files", rankIdx)
			}
			color := White
			if unicode.IsLower(c) {
				color = Black
			}
			pos.Place(color, kind, Square(rankIdx*8+file))
			file++
		}
		if file != 8 {
			return fmt.Errorf("rank %d covers %d files, want 8", rankIdx, file)
		}
	}
	return nil
}

func pieceKindFromLetter(c rune) (PieceKind, bool) {
	switch unicode.ToUpper(c) {
	case 'P':
		return Pawn, true
	case 'N':
		return Knight, true
	case 'B':
		return Bishop, true
	case 'R':
		return Rook, true
	case 'Q':
		return Queen, true
	case 'K':
		return King, true
	default:
		return 0, false
	}
}

func parseCastlingRights(field string) (CastlingRights, error) {
	if field == "-" {
		return 0, nil
	}
	var cr CastlingRights
	for _, c := range field {
		switch c {
		case 'K':
			cr |= WhiteKingside
		case 'Q':
			cr |= WhiteQueenside
		case 'k':
			cr |= BlackKingside
		case 'q':
			cr |= BlackQueenside
		default:
			return 0, fmt.Errorf("bad castling rights letter %q", c)
		}
	}
	return cr, nil
}

// SerializeFEN renders pos back into a FEN string. For any Position produced
// by ParseFEN or MakeMove, SerializeFEN(pos) re-parses to an equal Position.
func SerializeFEN(pos Position) string {
	var b strings.Builder
	b.Grow(64)

	for rankIdx := 0; rankIdx < 8; rankIdx++ {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := Square(rankIdx*8 + file)
			kind, color, ok := pos.PieceAt(sq.Mask())
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte(byte('0' + empty))
				empty = 0
			}
			b.WriteByte(pieceSymbols[color][kind])
		}
		if empty > 0 {
			b.WriteByte(byte('0' + empty))
		}
		if rankIdx != 7 {
			b.WriteByte('/')
		}
	}

	b.WriteByte(' ')
	if pos.SideToMove == White {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}

	b.WriteByte(' ')
	if pos.Castling == 0 {
		b.WriteByte('-')
	} else {
		if pos.Castling&WhiteKingside != 0 {
			b.WriteByte('K')
		}
		if pos.Castling&WhiteQueenside != 0 {
			b.WriteByte('Q')
		}
		if pos.Castling&BlackKingside != 0 {
			b.WriteByte('k')
		}
		if pos.Castling&BlackQueenside != 0 {
			b.WriteByte('q')
		}
	}

	b.WriteByte(' ')
	if pos.EPTarget == NoSquare {
		b.WriteByte('-')
	} else {
		b.WriteString(pos.EPTarget.String())
	}

	fmt.Fprintf(&b, " %d %d", pos.Halfmove, pos.Fullmove)

	return b.String()
}
