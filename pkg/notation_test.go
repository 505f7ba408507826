package pkg

import (
	"errors"
	"testing"

	"github.com/qnkhuat/hotseat/pkg/engine"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

func TestSquareName(t *testing.T) {
	t.Parallel()
	cases := map[engine.Position]string{
		engine.Pos(6, 4): "e2",
		engine.Pos(0, 0): "a8",
		engine.Pos(7, 7): "h1",
		engine.Pos(3, 2): "c5",
		engine.Pos(8, 0): "-",
	}
	for pos, want := range cases {
		if got := SquareName(pos); got != want {
			t.Errorf("SquareName(%s): wanted %s got %s", pos, want, got)
		}
	}
}

func TestMoveText(t *testing.T) {
	t.Parallel()
	wp := engine.Piece{Kind: engine.Pawn, Color: engine.White}
	wn := engine.Piece{Kind: engine.Knight, Color: engine.White}
	bq := engine.Piece{Kind: engine.Queen, Color: engine.Black}
	bk := engine.Piece{Kind: engine.King, Color: engine.Black}

	cases := []struct {
		m    engine.MoveRecord
		want string
	}{
		{engine.MoveRecord{From: engine.Pos(6, 4), Moved: wp, To: engine.Pos(4, 4)}, "e2-e4"},
		{engine.MoveRecord{From: engine.Pos(7, 6), Moved: wn, To: engine.Pos(5, 5)}, "Ng1-f3"},
		{engine.MoveRecord{From: engine.Pos(0, 3), Moved: bq, To: engine.Pos(6, 3), Captured: wp}, "Qd8xd2"},
		{engine.MoveRecord{From: engine.Pos(2, 3), Moved: wp, To: engine.Pos(1, 4), Captured: bk}, "d6xe7#"},
	}
	for _, c := range cases {
		if got := MoveText(c.m); got != c.want {
			t.Errorf("wanted %s got %s", c.want, got)
		}
	}
}

func TestFENStartingPosition(t *testing.T) {
	t.Parallel()
	if got := FEN(engine.NewBoard(), engine.White, 0); got != startFEN {
		t.Fatalf("wanted %s got %s", startFEN, got)
	}

	b, turn, err := BoardFromFEN(startFEN)
	if err != nil {
		t.Fatal(err)
	}
	if b != engine.NewBoard() || turn != engine.White {
		t.Error("failed to decode the starting position")
	}
}

func TestFENRoundTrip(t *testing.T) {
	t.Parallel()
	g := engine.NewGame()
	for _, m := range [][4]int{{6, 4, 4, 4}, {1, 3, 3, 3}, {4, 4, 3, 3}} {
		g.HandleClick(m[0], m[1])
		g.HandleClick(m[2], m[3])
	}

	fen := FEN(g.Board(), g.Turn(), len(g.History()))
	want := "rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR b - - 0 2"
	if fen != want {
		t.Fatalf("wanted %s got %s", want, fen)
	}

	b, turn, err := BoardFromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	if b != g.Board() || turn != engine.Black {
		t.Error("position changed through FEN")
	}
}

func TestFENWhenBlackOpens(t *testing.T) {
	t.Parallel()
	g := engine.NewGameFrom(engine.NewBoard(), engine.Black)
	if got := FEN(g.Board(), g.Turn(), Ply(engine.Black, 0)); got != "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b - - 0 1" {
		t.Errorf("wrong FEN before black's first move: %s", got)
	}

	g.HandleClick(1, 3)
	g.HandleClick(3, 3)
	want := "rnbqkbnr/ppp1pppp/8/3p4/8/8/PPPPPPPP/RNBQKBNR w - - 0 2"
	if got := FEN(g.Board(), g.Turn(), Ply(engine.Black, len(g.History()))); got != want {
		t.Errorf("wanted %s got %s", want, got)
	}

	if Ply(engine.White, 3) != 3 || Ply(engine.Black, 3) != 4 {
		t.Error("Ply should only shift games opened by black")
	}
}

func TestBoardFromFENPartial(t *testing.T) {
	t.Parallel()
	b, turn, err := BoardFromFEN("4k3/8/8/8/8/8/8/4K3")
	if err != nil {
		t.Fatal(err)
	}
	if turn != engine.White {
		t.Error("missing side to move should default to White")
	}
	if b.Count() != 2 {
		t.Errorf("wanted two kings got %d pieces", b.Count())
	}
	if p, _ := b.Get(engine.Pos(0, 4)); p != (engine.Piece{Kind: engine.King, Color: engine.Black}) {
		t.Errorf("wanted black king on e8 got %v", p)
	}

	_, turn, err = BoardFromFEN("4k3/8/8/8/8/8/8/4K3 b")
	if err != nil || turn != engine.Black {
		t.Errorf("failed to read side to move: %v", err)
	}
}

func TestBoardFromFENErrors(t *testing.T) {
	t.Parallel()
	for _, fen := range []string{
		"",
		"   ",
		"not a fen",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1 extra",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 x",
	} {
		if _, _, err := BoardFromFEN(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Errorf("BoardFromFEN(%q): wanted ErrInvalidFEN got %v", fen, err)
		}
	}
}
