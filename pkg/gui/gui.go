// Package gui is the terminal front end: a tview board that turns clicks and
// key presses into engine calls and redraws from engine state.
package gui

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/hotseat/pkg"
	"github.com/qnkhuat/hotseat/pkg/engine"
)

const (
	mainPage    = "main"
	victoryPage = "victory"
)

type Config struct {
	Game    *engine.Game
	Players pkg.Players
	Theme   Theme
	Animate bool
}

// Shell owns the widgets and the one Game they display. Every method must
// run on the tview event goroutine, or before Run.
type Shell struct {
	App   *tview.Application
	Pages *tview.Pages
	Board *tview.Table
	Side  *tview.TextView

	Game    *engine.Game
	Players pkg.Players
	Theme   Theme

	first   engine.Color
	animate bool
	anim    *animation
	animGen int
}

func NewShell(cfg Config) *Shell {
	if cfg.Game == nil {
		cfg.Game = engine.NewGame()
	}
	if cfg.Theme.Name == "" {
		cfg.Theme = ThemeBasic
	}

	s := &Shell{
		App:     tview.NewApplication(),
		Pages:   tview.NewPages(),
		Board:   tview.NewTable(),
		Side:    tview.NewTextView(),
		Game:    cfg.Game,
		Players: cfg.Players,
		Theme:   cfg.Theme,
		first:   cfg.Game.Turn(),
		animate: cfg.Animate,
	}

	s.Side.SetDynamicColors(true).
		SetWrap(false).
		SetScrollable(false)

	undoBtn := tview.NewButton(string(pkg.ActionUndo)).SetSelectedFunc(s.Undo)
	restartBtn := tview.NewButton(string(pkg.ActionRestart)).SetSelectedFunc(s.Restart)
	quitBtn := tview.NewButton(string(pkg.ActionQuit)).SetSelectedFunc(s.App.Stop)

	gameOptions := tview.NewGrid().
		SetColumns(10, 1, 10, 1, 10).
		SetRows(1, 1, -1).
		AddItem(undoBtn, 0, 0, 1, 1, 0, 0, false).
		AddItem(restartBtn, 0, 2, 1, 1, 0, 0, false).
		AddItem(quitBtn, 0, 4, 1, 1, 0, 0, false).
		AddItem(s.Side, 2, 0, 1, 5, 0, 0, false)

	layout := tview.NewGrid().
		SetRows(-1, 26, -1).
		SetColumns(-1, 30, 44, -1).
		AddItem(tview.NewTextView(), 0, 0, 1, 4, 0, 0, false).
		AddItem(tview.NewTextView(), 1, 0, 1, 1, 0, 0, false).
		AddItem(s.Board, 1, 1, 1, 1, 0, 0, true).
		AddItem(gameOptions, 1, 2, 1, 1, 0, 0, false).
		AddItem(tview.NewTextView(), 1, 3, 1, 1, 0, 0, false).
		AddItem(tview.NewTextView(), 2, 0, 1, 4, 0, 0, false)

	s.Pages.AddPage(mainPage, layout, true, true)

	s.Board.SetSelectable(true, true)
	s.Board.SetSelectedFunc(func(row, col int) {
		s.Click(tableToBoard(row, col))
	})

	s.App.SetInputCapture(s.handleKey)
	s.render()

	return s
}

func (s *Shell) Run() error {
	return s.App.SetRoot(s.Pages, true).SetFocus(s.Board).EnableMouse(true).Run()
}

// Click forwards a click on board coordinates (row, col) to the game.
func (s *Shell) Click(row, col int) {
	_, wasSelected := s.Game.Selection()
	before := len(s.Game.History())

	s.Game.HandleClick(row, col)

	if last, ok := s.Game.LastMove(); ok && len(s.Game.History()) > before {
		log.Printf("%s: %s", last.Moved.Color, pkg.MoveText(last))
		s.startAnimation(last)
	} else if _, still := s.Game.Selection(); wasSelected && !still {
		log.Printf("no move to %s, selection cleared", pkg.SquareName(engine.Pos(row, col)))
	}

	if winner, ok := s.Game.Winner(); ok && !s.Pages.HasPage(victoryPage) {
		log.Printf("%s wins", winner)
		s.showVictory(winner)
	}
	s.render()
}

func (s *Shell) Undo() {
	s.stopAnimation()
	s.Game.Undo()
	s.hideVictory()
	s.render()
}

func (s *Shell) Restart() {
	s.stopAnimation()
	s.Game.Restart()
	s.hideVictory()
	s.render()
}

func (s *Shell) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	switch ev.Key() {
	case tcell.KeyCtrlZ:
		s.Undo()
		return nil
	case tcell.KeyEscape:
		if !s.Pages.HasPage(victoryPage) {
			s.App.Stop()
			return nil
		}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'u', 'U':
			s.Undo()
			return nil
		case 'r', 'R':
			s.Restart()
			return nil
		case 'q', 'Q':
			s.App.Stop()
			return nil
		}
	}
	return ev
}

func (s *Shell) showVictory(winner engine.Color) {
	modal := tview.NewModal().
		SetText(pkg.VictoryText(winner, s.Players)).
		AddButtons([]string{string(pkg.ActionRestart), string(pkg.ActionUndo), string(pkg.ActionQuit)}).
		SetDoneFunc(func(_ int, label string) {
			switch pkg.Action(label) {
			case pkg.ActionRestart:
				s.Restart()
			case pkg.ActionUndo:
				s.Undo()
			case pkg.ActionQuit:
				s.App.Stop()
			}
		})
	s.Pages.AddPage(victoryPage, modal, false, true)
	s.App.SetFocus(modal)
}

func (s *Shell) hideVictory() {
	if !s.Pages.HasPage(victoryPage) {
		return
	}
	s.Pages.RemovePage(victoryPage)
	s.App.SetFocus(s.Board)
}

func (s *Shell) render() {
	renderBoard(s.Board, s.Game, s.Theme, s.anim, s.Click)
	s.Side.SetText(sideText(s.Game, s.Players, s.first, s.Theme))
}
