package pkg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/notnil/chess"

	"github.com/qnkhuat/hotseat/pkg/engine"
)

var ErrInvalidFEN = errors.New("invalid FEN")

var toChess = map[engine.Piece]chess.Piece{
	{Kind: engine.King, Color: engine.White}:   chess.WhiteKing,
	{Kind: engine.Queen, Color: engine.White}:  chess.WhiteQueen,
	{Kind: engine.Rook, Color: engine.White}:   chess.WhiteRook,
	{Kind: engine.Bishop, Color: engine.White}: chess.WhiteBishop,
	{Kind: engine.Knight, Color: engine.White}: chess.WhiteKnight,
	{Kind: engine.Pawn, Color: engine.White}:   chess.WhitePawn,
	{Kind: engine.King, Color: engine.Black}:   chess.BlackKing,
	{Kind: engine.Queen, Color: engine.Black}:  chess.BlackQueen,
	{Kind: engine.Rook, Color: engine.Black}:   chess.BlackRook,
	{Kind: engine.Bishop, Color: engine.Black}: chess.BlackBishop,
	{Kind: engine.Knight, Color: engine.Black}: chess.BlackKnight,
	{Kind: engine.Pawn, Color: engine.Black}:   chess.BlackPawn,
}

var fromChess = func() map[chess.Piece]engine.Piece {
	m := make(map[chess.Piece]engine.Piece, len(toChess))
	for k, v := range toChess {
		m[v] = k
	}
	return m
}()

func getSquare(f chess.File, r chess.Rank) chess.Square {
	return chess.Square((int(r) * 8) + int(f))
}

// posToSquare maps an engine position, row 0 at the top (rank 8), to a chess square.
func posToSquare(pos engine.Position) chess.Square {
	return getSquare(chess.File(pos.Col), chess.Rank(engine.Size-pos.Row-1))
}

func squareToPos(sq chess.Square) engine.Position {
	return engine.Pos(engine.Size-int(sq.Rank())-1, int(sq.File()))
}

// SquareName returns the algebraic name of pos, e.g. "e2" for (6,4).
func SquareName(pos engine.Position) string {
	if !pos.InBounds() {
		return "-"
	}
	return posToSquare(pos).String()
}

// MoveText renders a move in long algebraic form, e.g. "e2-e4" or "Nb1xc3".
func MoveText(m engine.MoveRecord) string {
	var b strings.Builder
	if m.Moved.Kind != engine.Pawn {
		b.WriteRune(m.Moved.Kind.Letter())
	}
	b.WriteString(SquareName(m.From))
	if m.Captured.Empty() {
		b.WriteRune('-')
	} else {
		b.WriteRune('x')
	}
	b.WriteString(SquareName(m.To))
	if m.Captured.Kind == engine.King {
		b.WriteRune('#')
	}
	return b.String()
}

// Ply counts half moves as if the game had opened with White, so a game
// started with Black to move is one ply ahead.
func Ply(first engine.Color, moves int) int {
	if first == engine.Black {
		return moves + 1
	}
	return moves
}

// FEN encodes the board with the side to move. ply is the number of half
// moves since a White-to-move start, see Ply. Castling and en passant
// fields are always empty since the rules here have neither.
func FEN(b engine.Board, turn engine.Color, ply int) string {
	m := make(map[chess.Square]chess.Piece)
	for r := 0; r < engine.Size; r++ {
		for c := 0; c < engine.Size; c++ {
			p, ok := b.Get(engine.Pos(r, c))
			if !ok {
				continue
			}
			m[posToSquare(engine.Pos(r, c))] = toChess[p]
		}
	}

	side := "w"
	if turn == engine.Black {
		side = "b"
	}
	return fmt.Sprintf("%s %s - - 0 %d", chess.NewBoard(m).String(), side, ply/2+1)
}

// BoardFromFEN decodes a FEN record. Only the placement field is required;
// a missing side to move means White.
func BoardFromFEN(fen string) (engine.Board, engine.Color, error) {
	var board engine.Board

	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return board, engine.White, fmt.Errorf("%w: empty", ErrInvalidFEN)
	}
	full := []string{fields[0], "w", "-", "-", "0", "1"}
	copy(full, fields)
	if len(fields) > len(full) {
		return board, engine.White, fmt.Errorf("%w: too many fields in %q", ErrInvalidFEN, fen)
	}
	if _, err := strconv.Atoi(full[5]); err != nil {
		return board, engine.White, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}

	opt, err := chess.FEN(strings.Join(full, " "))
	if err != nil {
		return board, engine.White, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	pos := chess.NewGame(opt).Position()

	for sq, p := range pos.Board().SquareMap() {
		board.Place(squareToPos(sq), fromChess[p])
	}

	turn := engine.White
	if pos.Turn() == chess.Black {
		turn = engine.Black
	}
	return board, turn, nil
}
