package game

import (
	"testing"

	corvid "github.com/augurchess/corvid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameHasTwentyRootMoves(t *testing.T) {
	mt := corvid.BuildMoveTable()
	g := New(mt)
	assert.Len(t, g.LegalMoves(), 20)
	over, _ := g.Over()
	assert.False(t, over)
}

func TestPushRejectsIllegalMove(t *testing.T) {
	mt := corvid.BuildMoveTable()
	g := New(mt)
	bogus := corvid.NewMove(corvid.SE2, corvid.SE5, corvid.Quiet)
	_, err := g.Push(bogus)
	require.Error(t, err)
}

func TestFoolsMateIsCheckmate(t *testing.T) {
	mt := corvid.BuildMoveTable()
	g := New(mt)

	play := func(from, to corvid.Square) {
		for _, lm := range g.LegalMoves() {
			if lm.Move.From() == from && lm.Move.To() == to {
				_, err := g.Push(lm.Move)
				require.NoError(t, err)
				return
			}
		}
		t.Fatalf("no legal move %s-%s", from, to)
	}

	play(corvid.SF2, corvid.SF3)
	play(corvid.SE7, corvid.SE5)
	play(corvid.SG2, corvid.SG4)
	play(corvid.SD8, corvid.SH4)

	assert.True(t, g.IsCheckmate())
	over, result := g.Over()
	assert.True(t, over)
	assert.Equal(t, BlackWins, result)
}

func TestInsufficientMaterialBareKings(t *testing.T) {
	mt := corvid.BuildMoveTable()
	g := FromFEN(mt, "8/8/4k3/8/8/4K3/8/8 w - - 0 1")
	assert.True(t, g.IsInsufficientMaterial())
}

func TestInsufficientMaterialOpposingKnights(t *testing.T) {
	mt := corvid.BuildMoveTable()
	g := FromFEN(mt, "8/8/4k3/2n5/8/4K3/2N5/8 w - - 0 1")
	assert.True(t, g.IsInsufficientMaterial())
}

func TestSANCastling(t *testing.T) {
	mt := corvid.BuildMoveTable()
	g := FromFEN(mt, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	for _, lm := range g.LegalMoves() {
		if lm.Move.Kind() == corvid.KingCastle {
			san, err := g.Push(lm.Move)
			require.NoError(t, err)
			assert.Equal(t, "O-O", san)
			return
		}
	}
	t.Fatal("no kingside castle among legal moves")
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	mt := corvid.BuildMoveTable()
	g := New(mt)
	lm := g.LegalMoves()[0]
	_, err := g.Push(lm.Move)
	require.NoError(t, err)

	packed := Compress(g.MoveIndices())
	got := Decompress(packed, len(g.MoveIndices()))
	assert.Equal(t, g.MoveIndices(), got)
}
