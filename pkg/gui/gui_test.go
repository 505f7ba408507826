package gui

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/hotseat/pkg"
	"github.com/qnkhuat/hotseat/pkg/engine"
)

func newTestShell(g *engine.Game) *Shell {
	return NewShell(Config{
		Game:    g,
		Players: pkg.Players{White: "alice", Black: "bob"},
		Theme:   ThemeBasic,
	})
}

func bg(s *Shell, row, col int) tcell.Color {
	return s.Board.GetCell(row, col+1).BackgroundColor
}

func TestRenderInitialBoard(t *testing.T) {
	s := newTestShell(nil)

	if text := s.Board.GetCell(0, 1).Text; !strings.Contains(text, "♜") {
		t.Errorf("wanted black rook in the corner got %q", text)
	}
	if text := s.Board.GetCell(7, 5).Text; !strings.Contains(text, "♔") {
		t.Errorf("wanted white king on e1 got %q", text)
	}
	if text := s.Board.GetCell(0, 0).Text; text != "8 " {
		t.Errorf("wanted rank label 8 got %q", text)
	}
	if text := s.Board.GetCell(numrows, 1).Text; text != "a" {
		t.Errorf("wanted file label a got %q", text)
	}
	if bg(s, 0, 0) != ThemeBasic.SquareLight || bg(s, 0, 1) != ThemeBasic.SquareDark {
		t.Error("squares are not coloured in a checkerboard")
	}

	side := s.Side.GetText(false)
	for _, want := range []string{"alice", "bob", "White to Move", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"} {
		if !strings.Contains(side, want) {
			t.Errorf("side panel missing %q:\n%s", want, side)
		}
	}
}

func TestClickHighlightsAndMoves(t *testing.T) {
	s := newTestShell(nil)

	s.Click(6, 4)
	if bg(s, 6, 4) != ThemeBasic.SquareSelected {
		t.Error("selected square is not highlighted")
	}
	for _, p := range []engine.Position{{Row: 5, Col: 4}, {Row: 4, Col: 4}} {
		if bg(s, p.Row, p.Col) != ThemeBasic.SquareTarget {
			t.Errorf("destination %s is not highlighted", p)
		}
	}

	s.Click(4, 4)
	if bg(s, 4, 4) != ThemeBasic.SquareLast || bg(s, 6, 4) != ThemeBasic.SquareLast {
		t.Error("last move is not highlighted")
	}
	if bg(s, 5, 4) == ThemeBasic.SquareTarget {
		t.Error("destinations should be cleared after the move")
	}
	if text := s.Board.GetCell(4, 5).Text; !strings.Contains(text, "♙") {
		t.Errorf("wanted white pawn on e4 got %q", text)
	}

	side := s.Side.GetText(false)
	if !strings.Contains(side, "Black to Move") || !strings.Contains(side, "e2-e4") {
		t.Errorf("side panel not updated after the move:\n%s", side)
	}
}

func TestCellClickForwardsBoardCoordinates(t *testing.T) {
	s := newTestShell(nil)

	s.Board.GetCell(0, 0).Clicked()
	s.Board.GetCell(numrows, 3).Clicked()
	if s.Game.State() != engine.Idle {
		t.Fatal("clicking a label should not select anything")
	}

	s.Board.GetCell(7, 2).Clicked()
	if sel, ok := s.Game.Selection(); !ok || sel != engine.Pos(7, 1) {
		t.Fatalf("wanted knight on (7,1) selected got %s", sel)
	}
	s.Board.GetCell(5, 1).Clicked()
	if p, _ := s.Game.Occupant(5, 0); p.Kind != engine.Knight {
		t.Fatalf("failed to move knight through cell clicks, (5,0) holds %v", p)
	}
}

func TestLabelClickKeepsSelection(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	s := newTestShell(nil)
	s.Click(6, 4)
	s.Board.GetCell(0, 0).Clicked()
	s.Board.GetCell(numrows, 4).Clicked()

	if sel, ok := s.Game.Selection(); !ok || sel != engine.Pos(6, 4) {
		t.Fatalf("label clicks should keep the selection, got %s %v", sel, ok)
	}
	if strings.Contains(buf.String(), "selection cleared") {
		t.Errorf("logged a cleared selection that was kept:\n%s", buf.String())
	}

	s.Click(3, 0)
	if !strings.Contains(buf.String(), "no move to a5, selection cleared") {
		t.Errorf("failed to log the rejected destination:\n%s", buf.String())
	}
}

func TestFENMoveNumberWhenBlackOpens(t *testing.T) {
	s := newTestShell(engine.NewGameFrom(engine.NewBoard(), engine.Black))
	if side := s.Side.GetText(false); !strings.Contains(side, " b - - 0 1") {
		t.Errorf("wanted move 1 with black to move:\n%s", side)
	}

	s.Click(1, 3)
	s.Click(3, 3)
	if side := s.Side.GetText(false); !strings.Contains(side, " w - - 0 2") {
		t.Errorf("wanted move 2 after black's opening move:\n%s", side)
	}
}

func TestVictoryAndUndo(t *testing.T) {
	var b engine.Board
	b.Place(engine.Pos(7, 0), engine.Piece{Kind: engine.Rook, Color: engine.White})
	b.Place(engine.Pos(7, 4), engine.Piece{Kind: engine.King, Color: engine.White})
	b.Place(engine.Pos(0, 0), engine.Piece{Kind: engine.King, Color: engine.Black})
	s := newTestShell(engine.NewGameFrom(b, engine.White))

	if bg(s, 0, 0) != ThemeBasic.SquareCheck {
		t.Error("king in check is not highlighted")
	}

	s.Click(7, 0)
	s.Click(0, 0)
	if !s.Pages.HasPage(victoryPage) {
		t.Fatal("failed to show the victory banner")
	}
	if side := s.Side.GetText(false); !strings.Contains(side, "alice (White) wins!") {
		t.Errorf("side panel does not name the winner:\n%s", side)
	}

	s.Undo()
	if s.Pages.HasPage(victoryPage) {
		t.Fatal("undo should hide the victory banner")
	}
	if _, ok := s.Game.Winner(); ok {
		t.Fatal("undo should clear the winner")
	}

	s.Click(7, 0)
	s.Click(0, 0)
	s.Restart()
	if s.Pages.HasPage(victoryPage) || s.Game.Turn() != engine.White || len(s.Game.History()) != 0 {
		t.Fatal("restart should reset the game and hide the banner")
	}
}

func TestKeys(t *testing.T) {
	s := newTestShell(nil)
	s.Click(6, 0)
	s.Click(5, 0)

	if ev := s.handleKey(tcell.NewEventKey(tcell.KeyRune, 'u', tcell.ModNone)); ev != nil {
		t.Error("undo key should be consumed")
	}
	if len(s.Game.History()) != 0 {
		t.Fatal("u should undo the move")
	}

	s.Click(6, 0)
	s.Click(5, 0)
	s.handleKey(tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl))
	if len(s.Game.History()) != 0 {
		t.Fatal("Ctrl-Z should undo the move")
	}

	s.Click(6, 0)
	s.Click(4, 0)
	s.handleKey(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if s.Game.Board() != engine.NewBoard() {
		t.Fatal("r should restart the game")
	}

	ev := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	if got := s.handleKey(ev); got != ev {
		t.Error("unbound keys should pass through")
	}
}

func TestMoveRows(t *testing.T) {
	g := engine.NewGame()
	for _, m := range [][4]int{{6, 4, 4, 4}, {1, 4, 3, 4}, {7, 6, 5, 5}} {
		g.HandleClick(m[0], m[1])
		g.HandleClick(m[2], m[3])
	}

	rows := moveRows(g.History(), engine.White)
	want := []string{"  1. e2-e4     e7-e5", "  2. Ng1-f3"}
	if len(rows) != len(want) {
		t.Fatalf("wanted %d rows got %d: %q", len(want), len(rows), rows)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d: wanted %q got %q", i, want[i], rows[i])
		}
	}

	g = engine.NewGameFrom(engine.NewBoard(), engine.Black)
	g.HandleClick(1, 3)
	g.HandleClick(3, 3)
	rows = moveRows(g.History(), engine.Black)
	if len(rows) != 1 || rows[0] != "  1. ...       d7-d5" {
		t.Errorf("wanted black to open the first row got %q", rows)
	}
}

func TestMoveRowsWindow(t *testing.T) {
	g := engine.NewGame()
	for i := 0; i < 10; i++ {
		g.HandleClick(7, 6)
		g.HandleClick(5, 5)
		g.HandleClick(0, 6)
		g.HandleClick(2, 5)
		g.HandleClick(5, 5)
		g.HandleClick(7, 6)
		g.HandleClick(2, 5)
		g.HandleClick(0, 6)
	}
	if n := len(g.History()); n != 40 {
		t.Fatalf("failed to shuffle knights, history %d", n)
	}
	rows := moveRows(g.History(), engine.White)
	if len(rows) != movesShown || !strings.HasPrefix(rows[0], " 13.") {
		t.Errorf("wanted the last %d rows starting at move 13 got %q", movesShown, rows)
	}
}

func TestAnimationOverlay(t *testing.T) {
	m := engine.MoveRecord{
		From:     engine.Pos(6, 4),
		Moved:    engine.Piece{Kind: engine.Queen, Color: engine.White},
		To:       engine.Pos(2, 4),
		Captured: engine.Piece{Kind: engine.Pawn, Color: engine.Black},
	}
	a := &animation{move: m}

	if a.at() != m.From {
		t.Fatalf("animation should start on the origin, got %s", a.at())
	}
	if p := a.overlay(m.To, m.Moved); p != m.Captured {
		t.Errorf("destination should show the captured piece until the end, got %v", p)
	}

	a.step = animSteps / 2
	if a.at() != engine.Pos(4, 4) {
		t.Errorf("wanted half way at (4,4) got %s", a.at())
	}
	if p := a.overlay(engine.Pos(4, 4), engine.Piece{}); p != m.Moved {
		t.Errorf("wanted moving queen at (4,4) got %v", p)
	}

	a.step = animSteps
	if a.at() != m.To {
		t.Errorf("animation should end on the destination, got %s", a.at())
	}

	var none *animation
	if p := none.overlay(m.To, m.Moved); p != m.Moved {
		t.Error("no animation should leave squares untouched")
	}
}
