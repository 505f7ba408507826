package engine

import (
	"strconv"
	"strings"
)

const Size = 8

// Position addresses a square. Row 0 is Black's back rank, row 7 is White's.
type Position struct {
	Row, Col int
}

type Direction struct {
	DR, DC int
}

func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

func (p Position) Add(d Direction) Position {
	return Position{Row: p.Row + d.DR, Col: p.Col + d.DC}
}

func (p Position) String() string {
	var b strings.Builder
	b.WriteRune('(')
	b.WriteString(strconv.Itoa(p.Row))
	b.WriteRune(',')
	b.WriteString(strconv.Itoa(p.Col))
	b.WriteRune(')')

	return b.String()
}

var (
	diagonals  = []Direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	orthogonal = []Direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	allDirs    = append(append([]Direction{}, diagonals...), orthogonal...)

	knightOffsets = []Direction{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
)
