package gui

import (
	"time"

	"github.com/qnkhuat/hotseat/pkg/engine"
)

const (
	animSteps    = 10
	animInterval = 30 * time.Millisecond
)

// startAnimation slides the moved piece across the board. Frames are queued
// onto the event goroutine; a newer animation, undo or restart makes the
// pending frames of this one no-ops.
func (s *Shell) startAnimation(m engine.MoveRecord) {
	if !s.animate {
		return
	}
	s.animGen++
	gen := s.animGen
	s.anim = &animation{move: m}

	go func() {
		tick := time.NewTicker(animInterval)
		defer tick.Stop()

		for i := 1; i <= animSteps; i++ {
			<-tick.C
			step := i
			s.App.QueueUpdateDraw(func() {
				if s.animGen != gen || s.anim == nil {
					return
				}
				if step == animSteps {
					s.anim = nil
				} else {
					s.anim.step = step
				}
				s.render()
			})
		}
	}()
}

func (s *Shell) stopAnimation() {
	s.animGen++
	s.anim = nil
}
