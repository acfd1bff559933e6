package easel

import (
	"errors"
	"fmt"
	"time"
)

// ErrStepperRunning is returned by NewStepper while the game's loops are
// running on their own goroutines.
var ErrStepperRunning = errors.New("game loops are running")

// Stepper drives a Game's logic and draw ticks on the caller's goroutine.
// Advance runs every tick that falls due in deadline order, so the frame a
// script observes after Advance returns is fully drawn. When a logic tick
// and a draw tick share a deadline the logic tick runs first.
type Stepper struct {
	game      *Game
	now       time.Time
	nextLogic time.Time
	nextDraw  time.Time
}

// NewStepper returns a stepper whose clock reads start. The game must not be
// running.
func (g *Game) NewStepper(start time.Time) (*Stepper, error) {
	if g.Running() {
		return nil, fmt.Errorf("easel: new stepper: %w", ErrStepperRunning)
	}
	g.lastLogic = start
	return &Stepper{
		game:      g,
		now:       start,
		nextLogic: start.Add(g.logic.Interval()),
		nextDraw:  start.Add(g.draw.Interval()),
	}, nil
}

// Now returns the stepper's current time.
func (s *Stepper) Now() time.Time { return s.now }

// Advance moves time forward by d and runs the ticks that fall due. It stops
// at the first scene error.
func (s *Stepper) Advance(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("easel: advance: negative duration %v", d)
	}
	target := s.now.Add(d)
	for {
		logicDue := !s.nextLogic.After(target)
		drawDue := !s.nextDraw.After(target)
		switch {
		case logicDue && !s.nextLogic.After(s.nextDraw):
			s.now = s.nextLogic
			s.nextLogic = s.nextLogic.Add(s.game.logic.Interval())
			if err := s.game.logicTick(s.now); err != nil {
				return fmt.Errorf("easel: logic tick: %w", err)
			}
		case drawDue:
			s.now = s.nextDraw
			s.nextDraw = s.nextDraw.Add(s.game.draw.Interval())
			if err := s.game.drawTick(s.now); err != nil {
				return fmt.Errorf("easel: draw tick: %w", err)
			}
		default:
			s.now = target
			return nil
		}
	}
}
