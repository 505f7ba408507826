package gui

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/hotseat/pkg"
	"github.com/qnkhuat/hotseat/pkg/engine"
)

const (
	numrows    = engine.Size
	numcols    = engine.Size
	movesShown = 8
)

// tableToBoard converts a table cell to board coordinates. Column 0 holds
// the rank labels and row 8 the file labels, so those map off the board.
func tableToBoard(row, col int) (int, int) {
	return row, col - 1
}

// squareBg returns the theme's color corresponding to the square
func squareBg(g *engine.Game, pos engine.Position, t Theme) tcell.Color {
	if sel, ok := g.Selection(); ok && sel == pos {
		return t.SquareSelected
	}
	if g.IsDestination(pos) {
		return t.SquareTarget
	}
	if p, ok := g.Occupant(pos.Row, pos.Col); ok && p.Kind == engine.King && g.InCheck(p.Color) {
		return t.SquareCheck
	}
	if last, ok := g.LastMove(); ok && (last.From == pos || last.To == pos) {
		return t.SquareLast
	}
	if (pos.Row+pos.Col)%2 == 0 {
		return t.SquareLight
	}
	return t.SquareDark
}

func pieceFg(p engine.Piece, t Theme) tcell.Color {
	if p.Color == engine.White {
		return t.White
	}
	return t.Black
}

// animation is a piece sliding from one square to another after a move.
// The board already holds the result; the overlay hides it until done.
type animation struct {
	move engine.MoveRecord
	step int
}

func lerp(a, b, step int) int {
	return a + int(math.Round(float64(b-a)*float64(step)/animSteps))
}

func (a *animation) at() engine.Position {
	return engine.Pos(lerp(a.move.From.Row, a.move.To.Row, a.step), lerp(a.move.From.Col, a.move.To.Col, a.step))
}

// overlay returns what the square shows while the animation runs.
func (a *animation) overlay(pos engine.Position, p engine.Piece) engine.Piece {
	if a == nil {
		return p
	}
	if pos == a.at() {
		return a.move.Moved
	}
	if pos == a.move.To {
		return a.move.Captured
	}
	return p
}

func labelCell(text string, fg tcell.Color) *tview.TableCell {
	return tview.NewTableCell(text).
		SetAlign(tview.AlignCenter).
		SetTextColor(fg).
		SetSelectable(false)
}

// renderBoard fills table with the ranks, files and squares of g. click
// receives board coordinates for every cell, labels included.
func renderBoard(table *tview.Table, g *engine.Game, t Theme, anim *animation, click func(row, col int)) {
	for r := 0; r <= numrows; r++ {
		for f := 0; f <= numcols; f++ {
			var cell *tview.TableCell
			switch {
			case f == 0 && r < numrows: // rank labels
				cell = labelCell(fmt.Sprintf("%d ", numrows-r), t.Rank)
			case r == numrows && f > 0: // file labels
				cell = labelCell(string(rune('a'+f-1)), t.File)
			case r == numrows && f == 0:
				cell = labelCell("", t.File)
			default:
				pos := engine.Pos(tableToBoard(r, f))
				p, _ := g.Occupant(pos.Row, pos.Col)
				p = anim.overlay(pos, p)
				cell = tview.NewTableCell(" " + p.Symbol() + " ").
					SetAlign(tview.AlignCenter).
					SetBackgroundColor(squareBg(g, pos, t)).
					SetTextColor(pieceFg(p, t))
			}

			row, col := tableToBoard(r, f)
			cell.SetClickedFunc(func() bool {
				click(row, col)
				return false
			})
			table.SetCell(r, f, cell)
		}
	}
}

func colorTag(c tcell.Color) string {
	if c == tcell.ColorDefault {
		return "[-]"
	}
	return fmt.Sprintf("[#%06x]", c.Hex())
}

// moveRows pairs the history into numbered rows, keeping the most recent
// movesShown of them.
func moveRows(history []engine.MoveRecord, first engine.Color) []string {
	texts := make([]string, 0, len(history)+1)
	if first == engine.Black {
		texts = append(texts, "...")
	}
	for _, m := range history {
		texts = append(texts, pkg.MoveText(m))
	}

	var rows []string
	for i := 0; i < len(texts); i += 2 {
		black := ""
		if i+1 < len(texts) {
			black = texts[i+1]
		}
		row := fmt.Sprintf("%3d. %-9s %s", i/2+1, texts[i], black)
		rows = append(rows, strings.TrimRight(row, " "))
	}

	if len(rows) > movesShown {
		rows = rows[len(rows)-movesShown:]
	}
	return rows
}

// sideText is the panel next to the board: players, whose move it is,
// recent moves and the position as FEN.
func sideText(g *engine.Game, players pkg.Players, first engine.Color, t Theme) string {
	var b strings.Builder
	msg := colorTag(t.Msg)

	fmt.Fprintf(&b, "%s %s\n", engine.Piece{Kind: engine.King, Color: engine.Black}.Symbol(), tview.Escape(players.Black))
	fmt.Fprintf(&b, "%s %s\n\n", engine.Piece{Kind: engine.King, Color: engine.White}.Symbol(), tview.Escape(players.White))

	if winner, ok := g.Winner(); ok {
		fmt.Fprintf(&b, "%s%s[-]\n", msg, tview.Escape(pkg.VictoryText(winner, players)))
	} else {
		fmt.Fprintf(&b, "[::r] %s to Move [::-]\n", g.Turn())
		if g.InCheck(g.Turn()) {
			fmt.Fprintf(&b, "%sCheck![-]", msg)
		}
		b.WriteString("\n")
	}

	history := g.History()
	b.WriteString("\nMoves\n")
	for _, row := range moveRows(history, first) {
		b.WriteString(row)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n%s\n", pkg.FEN(g.Board(), g.Turn(), pkg.Ply(first, len(history))))
	b.WriteString("\nclick or Enter: select / move\nu, Ctrl-Z: undo   r: restart   q: quit")
	return b.String()
}
