package rhythm

import "time"

type KeyEventKind int

const (
	// KeyDown means the key changed to down on this input.
	KeyDown KeyEventKind = iota
	// KeyUp means the key changed to up on this input.
	KeyUp
)

// KeyEvent is one lane input, timestamped with the rhythm clock
// position at the moment of the press.
type KeyEvent struct {
	Timestamp time.Duration
	Lane      int
	Kind      KeyEventKind
}

// Judgement grades one note.
type Judgement struct {
	Note *Note

	// Offset is positive when the press was early, negative when it
	// was late. Meaningless when Missed.
	Offset time.Duration

	Missed bool
}

// Judge matches key events against the next note of their lane.
//
// Events must be in time order. A note is hit when the event lands
// within window of the note's position and the event kind matches what
// the note wants: taps and slider begins want key down, slider ends
// want key up. Hits advance the lane. Events that match nothing are
// dropped here; notes whose window has passed get picked up by
// SweepMissed instead.
func Judge(lanes []*Lane, events []KeyEvent, clock *Clock, window time.Duration) []Judgement {
	var judgements []Judgement

	for _, ev := range events {
		if ev.Lane < 0 || ev.Lane >= len(lanes) {
			continue
		}
		lane := lanes[ev.Lane]

		next := lane.NextNote()
		if next == nil {
			continue
		}

		// while a slider is pending, raw key state drives its hold flag
		if slider := next.Slider(); slider != nil {
			slider.SetDown(ev.Kind == KeyDown)
		}

		diff := clock.BeatPosition(next.Beat) - ev.Timestamp
		if absDuration(diff) > window {
			continue
		}

		wantsDown := next.Kind == NoteTap || next.Kind == NoteSliderBegin
		if wantsDown != (ev.Kind == KeyDown) {
			continue
		}

		judgements = append(judgements, Judgement{Note: next, Offset: diff})
		lane.AdvanceNote()
	}

	return judgements
}

// SweepMissed reports notes whose hit window has already passed and
// skips them, so dropped notes can't clog a lane.
func SweepMissed(lanes []*Lane, clock *Clock, window time.Duration) []Judgement {
	var judgements []Judgement

	for _, lane := range lanes {
		skipped := 0

		for _, note := range lane.AllNextNotes() {
			late := clock.Position() - clock.BeatPosition(note.Beat)
			if late <= window {
				break
			}

			judgements = append(judgements, Judgement{Note: note, Missed: true})
			skipped++
		}

		lane.SkipNotes(skipped)
	}

	return judgements
}

type Grade int

const (
	GradeMiss Grade = iota
	GradeGood
	GradePerfect
)

func (g Grade) String() string {
	switch g {
	case GradeMiss:
		return "MISS"
	case GradeGood:
		return "GOOD"
	case GradePerfect:
		return "PERFECT"
	default:
		return "UNKNOWN"
	}
}

// Grade buckets the judgement for display. Offsets within a third of
// the window read as perfect.
func (j Judgement) Grade(window time.Duration) Grade {
	if j.Missed {
		return GradeMiss
	}
	if absDuration(j.Offset) <= window/3 {
		return GradePerfect
	}
	return GradeGood
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
