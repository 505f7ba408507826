// Package engine holds the board, the per-piece move rules and the
// click-driven game state of a two-player chess game.
package engine

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Unknown"
	}
}

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return ""
	}
}

// Letter returns the upper case FEN letter of the kind.
func (k Kind) Letter() rune {
	switch k {
	case Pawn:
		return 'P'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	default:
		return ' '
	}
}

// Piece is a value; the zero Piece means an empty square.
type Piece struct {
	Kind  Kind
	Color Color
}

func (p Piece) Empty() bool {
	return p.Kind == NoKind
}

func (p Piece) String() string {
	if p.Empty() {
		return ""
	}
	return p.Color.String() + " " + p.Kind.String()
}

// Symbol returns the Unicode figurine of the piece, or a space for an empty square.
func (p Piece) Symbol() string {
	if p.Empty() {
		return " "
	}
	if p.Color == White {
		return whiteSymbols[p.Kind]
	}
	return blackSymbols[p.Kind]
}

var whiteSymbols = map[Kind]string{
	Pawn:   "♙",
	Knight: "♘",
	Bishop: "♗",
	Rook:   "♖",
	Queen:  "♕",
	King:   "♔",
}

var blackSymbols = map[Kind]string{
	Pawn:   "♟",
	Knight: "♞",
	Bishop: "♝",
	Rook:   "♜",
	Queen:  "♛",
	King:   "♚",
}
