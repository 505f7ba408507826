package engine

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is the panic value raised when a caller hands Board an
// unchecked position.
var ErrOutOfBounds = errors.New("position out of bounds")

// Board is an 8x8 grid of pieces indexed [row][col]. The zero Board is empty.
type Board [Size][Size]Piece

var backRank = [Size]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard starting layout.
func NewBoard() Board {
	var b Board
	for c := 0; c < Size; c++ {
		b[1][c] = Piece{Kind: Pawn, Color: Black}
		b[6][c] = Piece{Kind: Pawn, Color: White}
		b[0][c] = Piece{Kind: backRank[c], Color: Black}
		b[7][c] = Piece{Kind: backRank[c], Color: White}
	}
	return b
}

func (b *Board) InBounds(pos Position) bool {
	return pos.InBounds()
}

func (b *Board) IsEmpty(pos Position) bool {
	return pos.InBounds() && b[pos.Row][pos.Col].Empty()
}

func (b *Board) IsFriendly(pos Position, c Color) bool {
	if !pos.InBounds() {
		return false
	}
	p := b[pos.Row][pos.Col]
	return !p.Empty() && p.Color == c
}

func (b *Board) IsEnemy(pos Position, c Color) bool {
	if !pos.InBounds() {
		return false
	}
	p := b[pos.Row][pos.Col]
	return !p.Empty() && p.Color != c
}

// SlidingMoves walks each direction in order until it leaves the board or
// meets a piece. Enemy squares are included, friendly squares are not.
func (b *Board) SlidingMoves(from Position, c Color, dirs []Direction) []Position {
	var res []Position
	for _, d := range dirs {
		for p := from.Add(d); p.InBounds(); p = p.Add(d) {
			if b.IsEmpty(p) {
				res = append(res, p)
				continue
			}
			if b.IsEnemy(p, c) {
				res = append(res, p)
			}
			break
		}
	}
	return res
}

func (b *Board) Get(pos Position) (Piece, bool) {
	mustBeInBounds(pos)
	p := b[pos.Row][pos.Col]
	return p, !p.Empty()
}

func (b *Board) Place(pos Position, p Piece) {
	mustBeInBounds(pos)
	b[pos.Row][pos.Col] = p
}

// Remove empties the square and returns what was on it.
func (b *Board) Remove(pos Position) (Piece, bool) {
	p, ok := b.Get(pos)
	b[pos.Row][pos.Col] = Piece{}
	return p, ok
}

// Find returns the first square, scanning rows then columns, holding p.
func (b *Board) Find(p Piece) (Position, bool) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == p {
				return Pos(r, c), true
			}
		}
	}
	return Position{}, false
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if !b[r][c].Empty() {
				n++
			}
		}
	}
	return n
}

func mustBeInBounds(pos Position) {
	if !pos.InBounds() {
		panic(fmt.Errorf("%w: %s", ErrOutOfBounds, pos))
	}
}
