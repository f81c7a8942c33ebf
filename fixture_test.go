package bowling

import "github.com/smartystreets/assertions"

// roll records every ball given and returns the first rejection.
func (self *Game) roll(pins ...int) error {
	for _, p := range pins {
		if err := self.Roll(p); err != nil {
			return err
		}
	}
	return nil
}

func (self *Game) rollMany(pins, times int) error {
	for x := 0; x < times; x++ {
		if err := self.Roll(pins); err != nil {
			return err
		}
	}
	return nil
}

// final returns the score, or -1 while the game is still in progress.
func (self *Game) final() int {
	if score, ok := self.Score(); ok {
		return score
	}
	return -1
}

//////////////////////////////////////////////////////////////////////////////

var (
	ShouldEqual    = assertions.ShouldEqual
	ShouldResemble = assertions.ShouldResemble
	ShouldBeNil    = assertions.ShouldBeNil
	ShouldNotBeNil = assertions.ShouldNotBeNil
	ShouldBeTrue   = assertions.ShouldBeTrue
	ShouldBeFalse  = assertions.ShouldBeFalse
	ShouldBeEmpty  = assertions.ShouldBeEmpty
)
