// Package bowling scores ten-pin bowling games.
//
// A Game records balls one at a time. It rejects any ball that knocks
// down more pins than are standing, knows when the tenth frame (fill
// balls included) is over, and totals the score with the standard
// strike and spare bonuses:
//
//	game := bowling.NewGame()
//	for game.Roll(10) == nil {
//	}
//	score, _ := game.Score() // 300
//
// A Game is meant to be owned by a single caller. Callers sharing one
// across goroutines must serialize access themselves.
package bowling

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNotEnoughPinsLeft indicates a ball knocked down more pins than
	// were standing, or a pin count outside 0..10.
	ErrNotEnoughPinsLeft = errors.New("not enough pins left")

	// ErrGameComplete indicates a ball was rolled after the final frame ended.
	ErrGameComplete = errors.New("game complete")
)

// Game is the roll history of one player's game. Create one with NewGame.
type Game struct {
	frames []Frame
	rolls  []int
}

// NewGame returns an empty game.
func NewGame() *Game {
	return &Game{
		frames: make([]Frame, 0, Frames),
		rolls:  make([]int, 0, MaxRolls),
	}
}

// Roll records one ball. A rejected ball leaves the game unchanged.
func (self *Game) Roll(pins int) error {
	if self.IsComplete() {
		return ErrGameComplete
	}

	frame := self.current()
	if pins < 0 || pins > Pins {
		return fmt.Errorf("%w: %d is not a pin count (frame %d)", ErrNotEnoughPinsLeft, pins, frame.Number)
	}
	if standing := frame.PinsStanding(); pins > standing {
		return fmt.Errorf("%w: rolled %d with %d standing (frame %d)", ErrNotEnoughPinsLeft, pins, standing, frame.Number)
	}

	if len(frame.Rolls) == 0 {
		self.frames = append(self.frames, Frame{Number: frame.Number})
	}
	last := &self.frames[len(self.frames)-1]
	last.Rolls = append(last.Rolls, pins)
	self.rolls = append(self.rolls, pins)
	return nil
}

// Score returns the final score. It reports false until the game is complete.
func (self *Game) Score() (int, bool) {
	if !self.IsComplete() {
		return 0, false
	}
	card := self.Scorecard()
	return card[len(card)-1].Total, true
}

// IsComplete reports whether the tenth frame, fill balls included, is over.
func (self *Game) IsComplete() bool {
	return len(self.frames) == Frames && self.frames[Frames-1].Finished()
}

// CurrentFrame returns the 1-based number of the frame the next ball
// belongs to. It stays at 10 once the game is complete.
func (self *Game) CurrentFrame() int {
	return min(self.current().Number, Frames)
}

// Rolls returns a copy of every ball recorded so far, in order.
func (self *Game) Rolls() []int {
	return slices.Clone(self.rolls)
}

// current returns the frame in progress, or an empty frame numbered one
// past the last finished frame. It does not modify the game.
func (self *Game) current() Frame {
	if count := len(self.frames); count > 0 && !self.frames[count-1].Finished() {
		return self.frames[count-1]
	}
	return Frame{Number: len(self.frames) + 1}
}
