package engine

// Rule lists the pseudo-legal destinations of a piece of color c standing on
// from. Rules never check whether the mover's own king is left attacked.
type Rule func(b *Board, from Position, c Color) []Position

var rules = [...]Rule{
	NoKind: func(*Board, Position, Color) []Position { return nil },
	Pawn:   pawnMoves,
	Knight: knightMoves,
	Bishop: bishopMoves,
	Rook:   rookMoves,
	Queen:  queenMoves,
	King:   kingMoves,
}

func RuleFor(k Kind) Rule {
	if int(k) >= len(rules) {
		return rules[NoKind]
	}
	return rules[k]
}

// Moves returns the destinations of whatever stands on from, nil when the
// square is empty.
func (b *Board) Moves(from Position) []Position {
	p, ok := b.Get(from)
	if !ok {
		return nil
	}
	return RuleFor(p.Kind)(b, from, p.Color)
}

func forward(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

func startRank(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

func pawnMoves(b *Board, from Position, c Color) []Position {
	var res []Position
	dir := forward(c)

	one := from.Add(Direction{dir, 0})
	if b.IsEmpty(one) {
		res = append(res, one)

		two := one.Add(Direction{dir, 0})
		if from.Row == startRank(c) && b.IsEmpty(two) {
			res = append(res, two)
		}
	}

	for _, dc := range []int{-1, 1} {
		diag := from.Add(Direction{dir, dc})
		if b.IsEnemy(diag, c) {
			res = append(res, diag)
		}
	}
	return res
}

func knightMoves(b *Board, from Position, c Color) []Position {
	return stepMoves(b, from, c, knightOffsets)
}

var kingOffsets = func() []Direction {
	var res []Direction
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			res = append(res, Direction{dr, dc})
		}
	}
	return res
}()

func kingMoves(b *Board, from Position, c Color) []Position {
	return stepMoves(b, from, c, kingOffsets)
}

// stepMoves keeps every in-bounds offset square not held by a friendly piece.
func stepMoves(b *Board, from Position, c Color, offsets []Direction) []Position {
	var res []Position
	for _, d := range offsets {
		p := from.Add(d)
		if p.InBounds() && !b.IsFriendly(p, c) {
			res = append(res, p)
		}
	}
	return res
}

func bishopMoves(b *Board, from Position, c Color) []Position {
	return b.SlidingMoves(from, c, diagonals)
}

func rookMoves(b *Board, from Position, c Color) []Position {
	return b.SlidingMoves(from, c, orthogonal)
}

func queenMoves(b *Board, from Position, c Color) []Position {
	return b.SlidingMoves(from, c, allDirs)
}

// Attacked reports whether any piece of color by has a pseudo-legal move
// onto pos.
func (b *Board) Attacked(pos Position, by Color) bool {
	for r := 0; r < Size; r++ {
		for col := 0; col < Size; col++ {
			p := b[r][col]
			if p.Empty() || p.Color != by {
				continue
			}
			for _, dst := range RuleFor(p.Kind)(b, Pos(r, col), by) {
				if dst == pos {
					return true
				}
			}
		}
	}
	return false
}

// InCheck reports whether c's king is attacked. It is false when c has no
// king left on the board.
func (b *Board) InCheck(c Color) bool {
	king, ok := b.Find(Piece{Kind: King, Color: c})
	if !ok {
		return false
	}
	return b.Attacked(king, c.Opposite())
}
