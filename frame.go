package bowling

import "slices"

const (
	// Pins is the number of pins racked at the start of every frame.
	Pins = 10

	// Frames is the number of frames in a game.
	Frames = 10

	// MaxRolls is the most balls a game can take: nine open frames
	// plus a tenth frame with a fill ball.
	MaxRolls = 2*(Frames-1) + 3
)

// Kind classifies a frame by how its first ball or two cleared the rack.
type Kind int

const (
	Open Kind = iota
	Spare
	Strike
)

func (self Kind) String() string {
	switch self {
	case Open:
		return "Open"
	case Spare:
		return "Spare"
	case Strike:
		return "Strike"
	default:
		return "Unknown"
	}
}

// Frame holds the balls thrown in one frame. The tenth frame also holds
// its fill balls, so it may carry up to three rolls.
type Frame struct {
	Number int
	Rolls  []int
}

// IsTenth reports whether fill-ball rules apply to this frame.
func (self Frame) IsTenth() bool {
	return self.Number == Frames
}

func (self Frame) Kind() Kind {
	switch {
	case len(self.Rolls) > 0 && self.Rolls[0] == Pins:
		return Strike
	case len(self.Rolls) > 1 && self.Rolls[0]+self.Rolls[1] == Pins:
		return Spare
	default:
		return Open
	}
}

// FillBalls returns the bonus balls thrown after a tenth-frame strike or
// spare. It is empty for every other frame.
func (self Frame) FillBalls() []int {
	if !self.IsTenth() {
		return nil
	}
	switch kind := self.Kind(); {
	case kind == Strike && len(self.Rolls) > 1:
		return slices.Clone(self.Rolls[1:])
	case kind == Spare && len(self.Rolls) > 2:
		return slices.Clone(self.Rolls[2:])
	}
	return nil
}

// Finished reports whether the frame accepts no further balls.
func (self Frame) Finished() bool {
	count := len(self.Rolls)
	if !self.IsTenth() {
		return count == 2 || (count == 1 && self.Kind() == Strike)
	}
	if count == 2 && self.Kind() == Open {
		return true
	}
	return count == 3
}

// PinsStanding returns how many pins the next ball of this frame faces.
// A strike or spare in the tenth frame resets the rack for the fill
// balls; a fill ball that is not a strike leaves the rest standing for
// the next one.
func (self Frame) PinsStanding() int {
	if self.Finished() {
		return 0
	}
	count := len(self.Rolls)
	if count == 0 {
		return Pins
	}
	last := self.Rolls[count-1]
	if last == Pins || (count == 2 && self.Kind() == Spare) {
		return Pins
	}
	return Pins - last
}

func (self Frame) clone() Frame {
	return Frame{Number: self.Number, Rolls: slices.Clone(self.Rolls)}
}

func sum(rolls []int) (total int) {
	for _, pins := range rolls {
		total += pins
	}
	return total
}
