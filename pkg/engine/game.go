package engine

import (
	"log"
)

type State int

const (
	Idle State = iota
	PieceSelected
	Terminal
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case PieceSelected:
		return "PieceSelected"
	case Terminal:
		return "Terminal"
	default:
		return "Unknown"
	}
}

// MoveRecord holds what is needed to take a move back.
type MoveRecord struct {
	From     Position
	Moved    Piece
	To       Position
	Captured Piece // zero when the destination was empty
}

// Game is the click-driven state machine for one hot-seat game. It is not
// safe for concurrent use; callers drive it from a single goroutine.
type Game struct {
	board Board
	start Board

	initialTurns [2]Color
	turns        [2]Color

	selected    Position
	hasSelected bool
	legal       []Position

	history []MoveRecord

	winner   Color
	terminal bool

	logger *log.Logger
}

// NewGame returns a game on the standard layout with White to move.
func NewGame() *Game {
	return NewGameFrom(NewBoard(), White)
}

// NewGameFrom starts a game from an arbitrary layout. Restart returns to
// this layout with first to move.
func NewGameFrom(b Board, first Color) *Game {
	g := &Game{
		start:        b,
		initialTurns: [2]Color{first, first.Opposite()},
	}
	g.Restart()
	return g
}

// SetLogger enables one line of output per applied move, undo, restart and
// win. A nil logger silences the game.
func (g *Game) SetLogger(l *log.Logger) {
	g.logger = l
}

func (g *Game) logf(format string, a ...interface{}) {
	if g.logger == nil {
		return
	}
	g.logger.Printf(format, a...)
}

// HandleClick advances the state machine for a click on (row, col).
// Out-of-bounds clicks and clicks after the game has been won are ignored.
func (g *Game) HandleClick(row, col int) {
	pos := Pos(row, col)
	if g.terminal || !pos.InBounds() {
		return
	}

	if !g.hasSelected {
		p, ok := g.board.Get(pos)
		if ok && p.Color == g.Turn() {
			g.selected = pos
			g.hasSelected = true
			g.legal = RuleFor(p.Kind)(&g.board, pos, p.Color)
		}
		return
	}

	if g.IsDestination(pos) {
		g.apply(g.selected, pos)
	}
	g.clearSelection()
}

func (g *Game) apply(from, to Position) {
	mover, _ := g.board.Get(from)
	target, _ := g.board.Get(to)

	g.history = append(g.history, MoveRecord{From: from, Moved: mover, To: to, Captured: target})
	g.board.Remove(from)
	g.board.Place(to, mover)
	g.turns[0], g.turns[1] = g.turns[1], g.turns[0]

	g.logf("%s %s %s -> %s", mover.Color, mover.Kind, from, to)

	if target.Kind == King {
		g.winner = mover.Color
		g.terminal = true
		g.logf("%s wins by capturing the king", mover.Color)
	}
}

// Undo takes back the most recent move. It does nothing without history.
func (g *Game) Undo() {
	if len(g.history) == 0 {
		return
	}
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	g.board.Place(last.From, last.Moved)
	g.board.Place(last.To, last.Captured)
	g.turns[0], g.turns[1] = g.turns[1], g.turns[0]

	g.clearSelection()
	g.terminal = false
	g.winner = White

	g.logf("undo %s %s %s -> %s", last.Moved.Color, last.Moved.Kind, last.From, last.To)
}

// Restart puts the starting layout back and forgets everything else.
func (g *Game) Restart() {
	g.board = g.start
	g.turns = g.initialTurns
	g.history = nil
	g.clearSelection()
	g.terminal = false
	g.winner = White

	g.logf("new game, %s to move", g.Turn())
}

func (g *Game) clearSelection() {
	g.selected = Position{}
	g.hasSelected = false
	g.legal = nil
}

func (g *Game) State() State {
	switch {
	case g.terminal:
		return Terminal
	case g.hasSelected:
		return PieceSelected
	default:
		return Idle
	}
}

// Occupant returns the piece on (row, col). Out-of-bounds squares are empty.
func (g *Game) Occupant(row, col int) (Piece, bool) {
	pos := Pos(row, col)
	if !pos.InBounds() {
		return Piece{}, false
	}
	return g.board.Get(pos)
}

func (g *Game) Selection() (Position, bool) {
	return g.selected, g.hasSelected
}

// LegalDestinations returns a copy of the destinations cached for the
// current selection, in rule order.
func (g *Game) LegalDestinations() []Position {
	if len(g.legal) == 0 {
		return nil
	}
	res := make([]Position, len(g.legal))
	copy(res, g.legal)
	return res
}

func (g *Game) IsDestination(pos Position) bool {
	for _, p := range g.legal {
		if p == pos {
			return true
		}
	}
	return false
}

// Turn returns the colour to move.
func (g *Game) Turn() Color {
	return g.turns[0]
}

// Winner returns the colour that captured a king, if any.
func (g *Game) Winner() (Color, bool) {
	return g.winner, g.terminal
}

func (g *Game) Board() Board {
	return g.board
}

func (g *Game) History() []MoveRecord {
	res := make([]MoveRecord, len(g.history))
	copy(res, g.history)
	return res
}

func (g *Game) LastMove() (MoveRecord, bool) {
	if len(g.history) == 0 {
		return MoveRecord{}, false
	}
	return g.history[len(g.history)-1], true
}

func (g *Game) InCheck(c Color) bool {
	return g.board.InCheck(c)
}
