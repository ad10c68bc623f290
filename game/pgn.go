/*
pgn.go renders a finished or in-progress Game as PGN movetext with the seven
Seven Tag Roster pairs (Event, Site, Date, Round, White, Black, Result)
followed by the move list in numbered pairs.
*/
package game

import (
	"fmt"
	"strings"
)

// Tags holds six of the PGN "Seven Tag Roster" pairs, rendered by
// SerializePGN ahead of the movetext; the seventh, Result, is taken from the
// game's own outcome.
type Tags struct {
	Event, Site, Date, Round, White, Black string
}

func resultString(r Result) string {
	switch r {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// SerializePGN renders g as a PGN game record: tag pairs followed by
// movetext with move numbers, using the SAN history recorded by Push.
func (g *Game) SerializePGN(tags Tags) string {
	_, result := g.Over()

	var b strings.Builder
	fmt.Fprintf(&b, "[Event %q]\n", orDefault(tags.Event, "?"))
	fmt.Fprintf(&b, "[Site %q]\n", orDefault(tags.Site, "?"))
	fmt.Fprintf(&b, "[Date %q]\n", orDefault(tags.Date, "????.??.??"))
	fmt.Fprintf(&b, "[Round %q]\n", orDefault(tags.Round, "?"))
	fmt.Fprintf(&b, "[White %q]\n", orDefault(tags.White, "?"))
	fmt.Fprintf(&b, "[Black %q]\n", orDefault(tags.Black, "?"))
	fmt.Fprintf(&b, "[Result %q]\n\n", resultString(result))

	for i, san := range g.sans {
		if i%2 == 0 {
			fmt.Fprintf(&b, "%d. ", i/2+1)
		}
		b.WriteString(san)
		b.WriteByte(' ')
	}
	b.WriteString(resultString(result))

	return b.String()
}
