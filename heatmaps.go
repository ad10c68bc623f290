/*
heatmaps.go holds eight fixed 64-entry piece-square tables, one per piece
kind plus a separate opening/endgame pair for pawns and kings. Every table
is indexed by square enumeration order (a8=0 ... h1=63) and oriented for
White; Black's orientation is the same table read end-to-end in reverse,
via reverseHeatmap.
*/
package corvid

var pawnsOpeningHeatmap = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0, 50, 50, 50, 50, 50, 50, 50, 50, 10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5, 0, 0, 0, 20, 20, 0, 0, 0, 5, -5, -10, 0, 0, -10, -5, 5, 5,
	10, 10, -20, -20, 10, 10, 5, 0, 0, 0, 0, 0, 0, 0, 0,
}

var pawnsEndgameHeatmap = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0, 80, 80, 80, 80, 80, 80, 80, 80, 50, 50, 50, 50, 50, 50, 50, 50,
	30, 30, 30, 30, 30, 30, 30, 30, 20, 20, 20, 20, 20, 20, 20, 20, 10, 10, 10, 10, 10, 10,
	10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 0, 0, 0, 0, 0, 0, 0, 0,
}

var knightsHeatmap = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50, -40, -20, 0, 0, 0, 0, -20, -40, -30, 0, 10, 15,
	15, 10, 0, -30, -30, 5, 15, 20, 20, 15, 5, -30, -30, 0, 15, 20, 20, 15, 0, -30, -30, 5,
	10, 15, 15, 10, 5, -30, -40, -20, 0, 5, 5, 0, -20, -40, -50, -40, -30, -30, -30, -30,
	-40, -50,
}

var bishopsHeatmap = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20, -10, 0, 0, 0, 0, 0, 0, -10, -10, 0, 5, 10, 10,
	5, 0, -10, -10, 5, 5, 10, 10, 5, 5, -10, -10, 0, 10, 10, 10, 10, 0, -10, -10, 10, 10,
	10, 10, 10, 10, -10, -10, 5, 0, 0, 0, 0, 5, -10, -20, -10, -10, -10, -10, -10, -10,
	-20,
}

var rooksHeatmap = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0, 5, 10, 10, 10, 10, 10, 10, 5, -5, 0, 0, 0, 0, 0, 0, -5, -5, 0,
	0, 0, 0, 0, 0, -5, -5, 0, 0, 0, 0, 0, 0, -5, -5, 0, 0, 0, 0, 0, 0, -5, -5, 0, 0, 0, 0,
	0, 0, -5, 0, 0, 0, 5, 5, 0, 0, 0,
}

var queensHeatmap = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20, -10, 0, 0, 0, 0, 0, 0, -10, -10, 0, 5, 5, 5, 5,
	0, -10, -5, 0, 5, 5, 5, 5, 0, -5, 0, 0, 5, 5, 5, 5, 0, -5, -10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10, -20, -10, -10, -5, -5, -10, -10, -20,
}

var kingsOpeningHeatmap = [64]int{
	-80, -70, -70, -70, -70, -70, -70, -80, -60, -60, -60, -60, -60, -60, -60, -60, -40,
	-50, -50, -60, -60, -50, -50, -40, -30, -40, -40, -50, -50, -40, -40, -30, -20, -30,
	-30, -40, -40, -30, -30, -20, -10, -20, -20, -20, -20, -20, -20, -10, 20, 20, -5, -5,
	-5, -5, 20, 20, 20, 30, 10, 0, 0, 10, 30, 20,
}

var kingsEndgameHeatmap = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20, -5, 0, 5, 5, 5, 5, 0, -5, -10, -5, 20, 30, 30,
	20, -5, -10, -15, -10, 35, 45, 45, 35, -10, -15, -20, -15, 30, 40, 40, 30, -15, -20,
	-25, -20, 20, 25, 25, 20, -20, -25, -30, -25, 0, 0, 0, 0, -25, -30, -50, -30, -30, -30,
	-30, -30, -30, -50,
}

// reverseHeatmap returns t read end-to-end in reverse, which re-orients a
// White table for Black. Seven of the eight tables above are symmetric about
// the board's central vertical axis, so for them this is a plain rank flip;
// the queens table is not, so Black's queen table is also mirrored between
// the a- and h-files.
func reverseHeatmap(t [64]int) [64]int {
	var out [64]int
	for i := 0; i < 64; i++ {
		out[i] = t[63-i]
	}
	return out
}

// heatmapFor returns the eight-table set oriented for color c.
func heatmapFor(c Color) [8][64]int {
	tables := [8][64]int{
		pawnsOpeningHeatmap, pawnsEndgameHeatmap, knightsHeatmap, bishopsHeatmap,
		rooksHeatmap, queensHeatmap, kingsOpeningHeatmap, kingsEndgameHeatmap,
	}
	if c == White {
		return tables
	}
	for i := range tables {
		tables[i] = reverseHeatmap(tables[i])
	}
	return tables
}

const (
	hmPawnsOpening = iota
	hmPawnsEndgame
	hmKnights
	hmBishops
	hmRooks
	hmQueens
	hmKingsOpening
	hmKingsEndgame
)
