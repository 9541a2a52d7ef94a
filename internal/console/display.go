// Package console runs the interactive contest on a terminal.
package console

import (
	"fmt"
	"io"

	"github.com/xtding233/threept/internal/contest"
)

// RenderRack prints one rack line and, for starry racks, the starry line.
// The rack line shows the score before the starry bonus.
func RenderRack(w io.Writer, l contest.RackLog) {
	fmt.Fprint(w, "Rack: ")
	for _, o := range l.Rack.Shots {
		fmt.Fprintf(w, "%c ", o.Symbol())
	}
	fmt.Fprintf(w, "| %d pts\n", l.Rack.Score)

	if l.Starry != nil {
		fmt.Fprintf(w, "Starry: %c | %d pts\n", l.Starry.Outcome.Symbol(), l.Starry.Points())
	}
}

// RenderRound prints every rack of a round followed by the player's total.
func RenderRound(w io.Writer, r contest.Round) {
	for _, l := range r.Racks {
		RenderRack(w, l)
	}
	fmt.Fprintf(w, "Total score for Player %d: %d pts\n", r.Player, r.Total)
}

// RenderHighest prints the winning score. The winner's seat is not shown.
func RenderHighest(w io.Writer, score int) {
	fmt.Fprintf(w, "Highest score is: %d\n", score)
}
