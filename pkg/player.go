package pkg

import (
	petname "github.com/dustinkirkland/golang-petname"

	"github.com/qnkhuat/hotseat/pkg/engine"
)

// Players holds the display names of the two people sharing the board.
type Players struct {
	White string
	Black string
}

// NewPlayers fills any blank name with a generated one.
func NewPlayers(white, black string) Players {
	if white == "" {
		white = petname.Generate(2, "-")
	}
	if black == "" {
		black = petname.Generate(2, "-")
	}
	return Players{White: white, Black: black}
}

func (p Players) Name(c engine.Color) string {
	if c == engine.Black {
		return p.Black
	}
	return p.White
}
