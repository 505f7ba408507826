package pkg

import (
	"fmt"

	"github.com/qnkhuat/hotseat/pkg/engine"
)

type Action string

const (
	ActionUndo    Action = "Undo"
	ActionRestart Action = "Restart"
	ActionQuit    Action = "Quit"
)

// VictoryText is the banner shown once a king has been taken.
func VictoryText(winner engine.Color, players Players) string {
	return fmt.Sprintf("%s (%s) wins!", players.Name(winner), winner)
}
