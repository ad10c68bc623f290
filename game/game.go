/*
Package game layers rules-adjacent bookkeeping on top of the corvid core:
threefold repetition, the fifty-move and insufficient-material draws,
checkmate/stalemate, and move notation (SAN, PGN, and Huffman move-index
compression), none of which belong in the core package's move generator or
search.

Checkmate and stalemate are both "zero legal moves", distinguished only by
whether the side to move is in check.
*/
package game

import (
	"fmt"
	"math/bits"

	corvid "github.com/augurchess/corvid"
)

// Result is the game's outcome, valid once Over reports true.
type Result int

const (
	Ongoing Result = iota
	WhiteWins
	BlackWins
	Draw
)

// Game tracks a position together with the history needed to detect
// repetition, alongside the move list the UCI adapter and SAN renderer both
// need.
type Game struct {
	mt      *corvid.MoveTable
	pos     corvid.Position
	legal   []corvid.LegalMove
	history map[uint64]int
	sans    []string
	indices []int
}

// New starts a Game from the standard starting position.
func New(mt *corvid.MoveTable) *Game {
	return FromPosition(mt, corvid.NewStartPosition())
}

// FromFEN starts a Game from a FEN string, via corvid.ParseFEN's graceful
// fallback-to-startpos behavior on malformed input.
func FromFEN(mt *corvid.MoveTable, fen string) *Game {
	return FromPosition(mt, corvid.ParseFEN(fen))
}

// FromPosition starts a Game from an already-built Position, e.g. one
// reached by replaying a UCI "position ... moves ..." command.
func FromPosition(mt *corvid.MoveTable, pos corvid.Position) *Game {
	g := &Game{
		mt:      mt,
		pos:     pos,
		history: make(map[uint64]int, 64),
	}
	g.legal = corvid.GenLegalMoves(g.pos, g.mt)
	g.history[zobristKey(g.pos)] = 1
	return g
}

// Position returns the current position.
func (g *Game) Position() corvid.Position { return g.pos }

// LegalMoves returns the legal moves available from the current position.
func (g *Game) LegalMoves() []corvid.LegalMove { return g.legal }

// InCheck reports whether the side to move is presently in check.
func (g *Game) InCheck() bool {
	return corvid.InCheck(g.pos, g.mt, g.pos.SideToMove)
}

// IsCheckmate reports whether the side to move has no legal move and is in
// check.
func (g *Game) IsCheckmate() bool {
	return len(g.legal) == 0 && g.InCheck()
}

// IsStalemate reports whether the side to move has no legal move and is not
// in check.
func (g *Game) IsStalemate() bool {
	return len(g.legal) == 0 && !g.InCheck()
}

// IsFiftyMoveRule reports whether the halfmove clock has reached the
// fifty-move (100 halfmove) threshold.
func (g *Game) IsFiftyMoveRule() bool {
	return g.pos.Halfmove >= 100
}

// IsThreefoldRepetition reports whether the current position has occurred
// three or more times in this game's history.
func (g *Game) IsThreefoldRepetition() bool {
	return g.history[zobristKey(g.pos)] >= 3
}

func squareColor(sq corvid.Square) int {
	return (sq.File() + sq.RankIndex()) % 2
}

// IsInsufficientMaterial reports whether neither side has enough material
// left to force checkmate: bare kings, king and minor against bare king,
// king and bishop against king and same-colored bishop, or king and knight
// against king and knight.
func (g *Game) IsInsufficientMaterial() bool {
	p := &g.pos
	if p.Board(corvid.White, corvid.Pawn) != 0 || p.Board(corvid.Black, corvid.Pawn) != 0 {
		return false
	}
	if p.Board(corvid.White, corvid.Rook) != 0 || p.Board(corvid.Black, corvid.Rook) != 0 {
		return false
	}
	if p.Board(corvid.White, corvid.Queen) != 0 || p.Board(corvid.Black, corvid.Queen) != 0 {
		return false
	}

	wn := bits.OnesCount64(p.Board(corvid.White, corvid.Knight))
	bn := bits.OnesCount64(p.Board(corvid.Black, corvid.Knight))
	wb := bits.OnesCount64(p.Board(corvid.White, corvid.Bishop))
	bb := bits.OnesCount64(p.Board(corvid.Black, corvid.Bishop))
	minors := wn + bn + wb + bb

	switch {
	case minors == 0:
		return true
	case minors == 1:
		return true
	case minors == 2 && wn == 0 && bn == 0 && wb == 1 && bb == 1:
		wsq := corvid.SquareFromMask(p.Board(corvid.White, corvid.Bishop))
		bsq := corvid.SquareFromMask(p.Board(corvid.Black, corvid.Bishop))
		return squareColor(wsq) == squareColor(bsq)
	case minors == 2 && wn == 1 && bn == 1 && wb == 0 && bb == 0:
		return true
	default:
		return false
	}
}

// Over reports whether the game has concluded, and if so, how.
func (g *Game) Over() (over bool, result Result) {
	switch {
	case g.IsCheckmate():
		if g.pos.SideToMove == corvid.White {
			return true, BlackWins
		}
		return true, WhiteWins
	case g.IsStalemate(), g.IsFiftyMoveRule(), g.IsThreefoldRepetition(), g.IsInsufficientMaterial():
		return true, Draw
	default:
		return false, Ongoing
	}
}

// Push plays m, which must be present in LegalMoves, and returns its SAN
// rendering. The halfmove clock resetting to zero (a pawn move or a
// capture) discards repetition history older than the reset, matching the
// rule that repetition is only checked within the current fifty-move
// window.
func (g *Game) Push(m corvid.Move) (string, error) {
	idx := -1
	var lm corvid.LegalMove
	for i, cand := range g.legal {
		if cand.Move == m {
			idx = i
			lm = cand
			break
		}
	}
	if idx < 0 {
		return "", fmt.Errorf("game: move %s is not legal in this position", corvid.MoveToUCI(m))
	}

	movedKind, _, _ := g.pos.PieceAt(m.From().Mask())
	isCapture := m.Kind().IsCapture()
	preLegal := g.legal
	prePos := g.pos

	if lm.Result.Halfmove == 0 {
		g.history = make(map[uint64]int, 64)
	}

	g.pos = lm.Result
	g.legal = corvid.GenLegalMoves(g.pos, g.mt)
	g.history[zobristKey(g.pos)]++

	isCheck := g.InCheck()
	isMate := isCheck && len(g.legal) == 0
	san := MoveToSAN(m, prePos, preLegal, movedKind, isCapture, isCheck, isMate)

	g.sans = append(g.sans, san)
	g.indices = append(g.indices, idx)
	return san, nil
}

// SANHistory returns the SAN of every move played so far, in order.
func (g *Game) SANHistory() []string { return g.sans }

// MoveIndices returns, for every move played so far, its index into the
// legal-move list active at the time it was played. Compress consumes this
// to build a packed move-index encoding of the game.
func (g *Game) MoveIndices() []int { return g.indices }
