package bowling

// FrameScore is one line of a scorecard.
//
// A frame is Scored once every ball its bonus depends on has been
// rolled. Score and Total stay zero until then. Total is the running
// score through this frame.
type FrameScore struct {
	Frame  Frame
	Score  int
	Total  int
	Scored bool
}

// Scorecard breaks the game down frame by frame, including frames that
// are still in progress or waiting on bonus balls. It may be called at
// any point in the game.
func (self *Game) Scorecard() []FrameScore {
	card := make([]FrameScore, 0, len(self.frames))
	first, total := 0, 0
	for _, frame := range self.frames {
		line := FrameScore{Frame: frame.clone()}
		if score, ok := self.frameScore(frame, first); ok {
			total += score
			line.Score, line.Total, line.Scored = score, total, true
		}
		card = append(card, line)
		first += len(frame.Rolls)
	}
	return card
}

// frameScore totals a frame whose first ball sits at index first of the
// roll log. Strikes take the next two balls as a bonus, spares the next
// one. The tenth frame is worth exactly the pins it knocked down, since
// its fill balls are already part of it.
func (self *Game) frameScore(frame Frame, first int) (int, bool) {
	if !frame.Finished() {
		return 0, false
	}
	if frame.IsTenth() {
		return sum(frame.Rolls), true
	}

	end := first + len(frame.Rolls)
	switch frame.Kind() {
	case Strike:
		end += 2
	case Spare:
		end += 1
	}
	if end > len(self.rolls) {
		return 0, false
	}
	return sum(self.rolls[first:end]), true
}
