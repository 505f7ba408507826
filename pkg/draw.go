package pkg

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/qnkhuat/hotseat/pkg/engine"
)

var (
	lightSquare = color.New(color.BgHiWhite, color.FgBlack)
	darkSquare  = color.New(color.BgHiBlack, color.FgHiWhite)
	coordStyle  = color.New(color.FgHiBlack)
	winStyle    = color.New(color.FgGreen, color.Bold)
	quitStyle   = color.New(color.FgYellow)
)

// Draw prints the board to w, rank 8 first, with coloured squares.
func Draw(w io.Writer, b engine.Board) {
	for r := 0; r < engine.Size; r++ {
		coordStyle.Fprintf(w, "%d ", engine.Size-r)
		for c := 0; c < engine.Size; c++ {
			p, _ := b.Get(engine.Pos(r, c))
			sq := lightSquare
			if (r+c)%2 == 1 {
				sq = darkSquare
			}
			sq.Fprintf(w, " %s ", p.Symbol())
		}
		fmt.Fprintln(w)
	}
	coordStyle.Fprintln(w, "   a  b  c  d  e  f  g  h")
}

// PrintResult reports how a session ended once the UI is gone.
func PrintResult(w io.Writer, g *engine.Game, players Players) {
	if winner, ok := g.Winner(); ok {
		winStyle.Fprintln(w, VictoryText(winner, players))
		return
	}
	quitStyle.Fprintf(w, "Game left unfinished after %d moves, %s to move\n", len(g.History()), g.Turn())
}
