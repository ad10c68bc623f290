// Command perft walks the legal-move tree to a fixed depth and counts leaf
// nodes. Profiling uses github.com/pkg/profile, which collapses CPU and
// memory profiling behind one defer instead of separate open-file-and-
// defer-Stop blocks.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	corvid "github.com/augurchess/corvid"
	"github.com/pkg/profile"
)

type counters struct {
	nodes      int
	captures   int
	epCaptures int
	castles    int
	promotions int
	checks     int
}

// perft counts leaf nodes of the legal-move tree rooted at pos, to the given
// depth, without recording any per-move breakdown. depth 1 counts the
// immediate legal moves without descending further.
func perft(pos corvid.Position, mt *corvid.MoveTable, depth int) int {
	legal := corvid.GenLegalMoves(pos, mt)
	if depth == 1 {
		return len(legal)
	}
	nodes := 0
	for _, lm := range legal {
		nodes += perft(lm.Result, mt, depth-1)
	}
	return nodes
}

// perftVerbose follows perft but also tallies capture/en-passant/castle/
// promotion/check counts, and at the root, logs each move's subtree count --
// useful for diffing against a reference perft to find a bad branch.
func perftVerbose(pos corvid.Position, mt *corvid.MoveTable, depth int, c *counters, isRoot bool) int {
	legal := corvid.GenLegalMoves(pos, mt)
	if depth == 1 {
		for _, lm := range legal {
			tallyLeaf(lm.Move.Kind(), c)
		}
		return len(legal)
	}

	nodes := 0
	for _, lm := range legal {
		cnt := perftVerbose(lm.Result, mt, depth-1, c, false)
		if isRoot {
			log.Printf("%s %d", corvid.MoveToUCI(lm.Move), cnt)
		}
		if corvid.InCheck(lm.Result, mt, lm.Result.SideToMove) {
			c.checks++
		}
		nodes += cnt
	}
	return nodes
}

func tallyLeaf(kind corvid.MoveKind, c *counters) {
	switch kind {
	case corvid.Capture:
		c.captures++
	case corvid.EPCapture:
		c.epCaptures++
		c.captures++
	case corvid.KingCastle, corvid.QueenCastle:
		c.castles++
	}
	if kind.IsPromotion() {
		c.promotions++
	}
	if kind.IsPromotion() && kind.IsCapture() {
		c.captures++
	}
}

func formatPosition(pos corvid.Position) string {
	var b strings.Builder
	for rank := 0; rank < 8; rank++ {
		fmt.Fprintf(&b, "%d  ", 8-rank)
		for file := 0; file < 8; file++ {
			sq := corvid.Square(rank*8 + file)
			symbol := byte('.')
			if kind, color, ok := pos.PieceAt(sq.Mask()); ok {
				symbol = pieceLetter(kind, color)
			}
			b.WriteByte(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\n")
	return b.String()
}

func pieceLetter(kind corvid.PieceKind, color corvid.Color) byte {
	letters := "PNBRQK"
	l := letters[kind]
	if color == corvid.Black {
		l += 'a' - 'A'
	}
	return l
}

func main() {
	depth := flag.Int("depth", 2, "perft depth")
	verbose := flag.Bool("verbose", false, "print per-move subtree counts and a breakdown")
	fen := flag.String("fen", corvid.InitialPositionFEN, "FEN of the root position")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile via pkg/profile")
	memProfile := flag.Bool("memprofile", false, "write a memory profile via pkg/profile")
	flag.Parse()

	switch {
	case *cpuProfile:
		defer profile.Start(profile.CPUProfile).Stop()
	case *memProfile:
		defer profile.Start(profile.MemProfile).Stop()
	}

	mt := corvid.BuildMoveTable()
	pos := corvid.ParseFEN(*fen)

	start := time.Now()
	c := &counters{}
	if *verbose {
		log.Printf("Root position:\n%s\n%s\n", formatPosition(pos), *fen)
		c.nodes = perftVerbose(pos, mt, *depth, c, true)
		log.Printf("depth=%d nodes=%d captures=%d ep=%d castles=%d promotions=%d checks=%d",
			*depth, c.nodes, c.captures, c.epCaptures, c.castles, c.promotions, c.checks)
	} else {
		c.nodes = perft(pos, mt, *depth)
		log.Printf("Nodes reached: %d", c.nodes)
	}
	log.Printf("Elapsed: %s", time.Since(start))
}
