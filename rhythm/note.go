package rhythm

import "sort"

type NoteKind int

const (
	NoteTap NoteKind = iota
	NoteSliderBegin
	NoteSliderEnd
)

// Note is one instantiated note inside a lane.
type Note struct {
	Beat float64
	Kind NoteKind
	Lane int

	index  int
	slider *Slider
}

// Index is the note's position inside its lane's note order.
func (n *Note) Index() int {
	return n.index
}

// Slider returns the slider this note begins or ends, nil for taps.
func (n *Note) Slider() *Slider {
	return n.slider
}

// Slider links the begin and end notes of a hold and tracks whether
// the player currently holds its lane's key down.
type Slider struct {
	Begin *Note
	End   *Note

	down bool
}

func (s *Slider) SetDown(down bool) {
	s.down = down
}

func (s *Slider) Down() bool {
	return s.down
}

// Lane manages the note that needs to be hit next.
type Lane struct {
	number  int
	notes   []*Note
	current int
}

func NewLane(number int) *Lane {
	return &Lane{number: number}
}

func (l *Lane) Number() int {
	return l.number
}

// Notes are all of the lane's notes in beat order, including ones
// already hit or missed.
func (l *Lane) Notes() []*Note {
	return l.notes
}

// NextIndex is the index of the note that needs to be hit next. It is
// len(Notes()) or more when the lane is spent.
func (l *Lane) NextIndex() int {
	return l.current
}

// NextNote returns the note that needs to be hit next, nil when the
// lane is spent. The cursor doesn't move.
func (l *Lane) NextNote() *Note {
	if l.current >= len(l.notes) {
		return nil
	}
	return l.notes[l.current]
}

// AllNextNotes returns every note from the next one on.
func (l *Lane) AllNextNotes() []*Note {
	if l.current >= len(l.notes) {
		return nil
	}
	return l.notes[l.current:]
}

// AdvanceNote moves the cursor forward and returns the note it moved
// past, nil when the lane is spent.
func (l *Lane) AdvanceNote() *Note {
	note := l.NextNote()
	l.current++
	return note
}

// SkipNotes moves the cursor past count notes without judging them.
func (l *Lane) SkipNotes(count int) {
	l.current += count
}

// BuildLanes instantiates a beatmap's notes into lanes.
//
// A BeatmapNote with an EndBeat expands into a SliderBegin plus a
// SliderEnd note sharing one Slider. Each lane's notes end up sorted
// by beat.
func BuildLanes(bm *Beatmap) []*Lane {
	lanes := make([]*Lane, bm.LaneCount)
	for i := range lanes {
		lanes[i] = NewLane(i)
	}

	for _, placed := range bm.Notes() {
		lane := lanes[placed.Lane]

		if placed.EndBeat == nil {
			lane.notes = append(lane.notes, &Note{
				Beat: placed.Beat,
				Kind: NoteTap,
				Lane: placed.Lane,
			})
			continue
		}

		begin := &Note{
			Beat: placed.Beat,
			Kind: NoteSliderBegin,
			Lane: placed.Lane,
		}
		end := &Note{
			Beat: *placed.EndBeat,
			Kind: NoteSliderEnd,
			Lane: placed.Lane,
		}

		slider := &Slider{Begin: begin, End: end}
		begin.slider = slider
		end.slider = slider

		lane.notes = append(lane.notes, begin, end)
	}

	for _, lane := range lanes {
		sort.SliceStable(lane.notes, func(a, b int) bool {
			return lane.notes[a].Beat < lane.notes[b].Beat
		})
		for i, note := range lane.notes {
			note.index = i
		}
	}

	return lanes
}
