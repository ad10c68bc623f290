/*
san.go renders a Move as Standard Algebraic Notation, adapted from the
teacher's san.go Move2SAN/disambiguate pair to corvid's Position/Move/
LegalMove types. The disambiguation rule is unchanged: prefer a file letter,
fall back to a rank digit, and only fall back to the full origin square when
other same-kind pieces reaching the same destination share both the file
and the rank of the origin -- which takes at least three such pieces, so
in practice only happens after a promotion.
*/
package game

import (
	"strings"

	corvid "github.com/augurchess/corvid"
)

// MoveToSAN renders m, played from prePos against preLegal (the legal moves
// available before m was played), as SAN. movedKind, isCapture, isCheck and
// isCheckmate describe the move and its result and must be computed by the
// caller, since SAN needs the position before the move (for disambiguation)
// and the position after it (for the check/checkmate suffix).
func MoveToSAN(m corvid.Move, prePos corvid.Position, preLegal []corvid.LegalMove, movedKind corvid.PieceKind, isCapture, isCheck, isCheckmate bool) string {
	if m.Kind() == corvid.KingCastle {
		return sanSuffix("O-O", isCheck, isCheckmate)
	}
	if m.Kind() == corvid.QueenCastle {
		return sanSuffix("O-O-O", isCheck, isCheckmate)
	}

	var b strings.Builder

	switch movedKind {
	case corvid.Knight:
		b.WriteByte('N')
	case corvid.Bishop:
		b.WriteByte('B')
	case corvid.Rook:
		b.WriteByte('R')
	case corvid.Queen:
		b.WriteByte('Q')
	case corvid.King:
		b.WriteByte('K')
	}

	if movedKind != corvid.Pawn {
		sameFile, sameRank, ambiguous := false, false, false
		for _, cand := range preLegal {
			other := cand.Move
			if other == m || other.To() != m.To() {
				continue
			}
			kind, _, ok := prePos.PieceAt(other.From().Mask())
			if !ok || kind != movedKind {
				continue
			}
			ambiguous = true
			if other.From().File() == m.From().File() {
				sameFile = true
			}
			if other.From().RankIndex() == m.From().RankIndex() {
				sameRank = true
			}
		}
		if ambiguous {
			switch {
			case !sameFile:
				b.WriteByte(byte('a' + m.From().File()))
			case !sameRank:
				b.WriteByte(byte('8' - m.From().RankIndex()))
			default:
				b.WriteString(m.From().String())
			}
		}
	}

	if isCapture {
		if movedKind == corvid.Pawn {
			b.WriteByte(byte('a' + m.From().File()))
		}
		b.WriteByte('x')
	}

	b.WriteString(m.To().String())

	if m.Kind().IsPromotion() {
		b.WriteByte('=')
		switch m.Kind().PromotionKind() {
		case corvid.Knight:
			b.WriteByte('N')
		case corvid.Bishop:
			b.WriteByte('B')
		case corvid.Rook:
			b.WriteByte('R')
		case corvid.Queen:
			b.WriteByte('Q')
		}
	}

	return sanSuffix(b.String(), isCheck, isCheckmate)
}

func sanSuffix(s string, isCheck, isCheckmate bool) string {
	switch {
	case isCheckmate:
		return s + "#"
	case isCheck:
		return s + "+"
	default:
		return s
	}
}
