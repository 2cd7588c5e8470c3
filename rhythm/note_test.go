package rhythm

import (
	"testing"
)

func testLanes(t *testing.T) []*Lane {
	t.Helper()

	bm, err := ParseBeatmap([]byte(testBeatmapDoc))
	if err != nil {
		t.Fatal(err)
	}

	return BuildLanes(bm)
}

func TestBuildLanes(t *testing.T) {
	lanes := testLanes(t)

	if len(lanes) != 2 {
		t.Fatalf("len(lanes) = %d, want 2", len(lanes))
	}

	// lane 0: slider begin at 2, slider end at 3.5, tap at 4
	lane0 := lanes[0].Notes()
	if len(lane0) != 3 {
		t.Fatalf("lane 0 has %d notes, want 3", len(lane0))
	}

	wantKinds := []NoteKind{NoteSliderBegin, NoteSliderEnd, NoteTap}
	wantBeats := []float64{2, 3.5, 4}
	for i, note := range lane0 {
		if note.Kind != wantKinds[i] || note.Beat != wantBeats[i] {
			t.Errorf("lane 0 note %d = kind %d at beat %v, want kind %d at beat %v",
				i, note.Kind, note.Beat, wantKinds[i], wantBeats[i])
		}
		if note.Index() != i {
			t.Errorf("lane 0 note %d: Index = %d", i, note.Index())
		}
		if note.Lane != 0 {
			t.Errorf("lane 0 note %d: Lane = %d", i, note.Lane)
		}
	}

	// slider begin and end share one Slider that points back at them
	slider := lane0[0].Slider()
	if slider == nil || slider != lane0[1].Slider() {
		t.Fatal("slider notes do not share a slider")
	}
	if slider.Begin != lane0[0] || slider.End != lane0[1] {
		t.Error("slider does not point back at its notes")
	}
	if lane0[2].Slider() != nil {
		t.Error("tap note has a slider")
	}

	// lane 1: just the tap at 1
	lane1 := lanes[1].Notes()
	if len(lane1) != 1 || lane1[0].Kind != NoteTap || lane1[0].Beat != 1 {
		t.Errorf("lane 1 notes = %+v, want one tap at beat 1", lane1)
	}
}

func TestLaneCursor(t *testing.T) {
	lanes := testLanes(t)
	lane := lanes[0]

	if got := lane.NextNote(); got == nil || got.Beat != 2 {
		t.Fatalf("NextNote = %+v, want the beat-2 note", got)
	}
	if got := lane.NextIndex(); got != 0 {
		t.Fatalf("NextIndex = %d, want 0", got)
	}
	if got := len(lane.AllNextNotes()); got != 3 {
		t.Fatalf("len(AllNextNotes) = %d, want 3", got)
	}

	first := lane.AdvanceNote()
	if first == nil || first.Beat != 2 {
		t.Fatalf("AdvanceNote = %+v, want the beat-2 note", first)
	}
	if got := lane.NextNote(); got == nil || got.Beat != 3.5 {
		t.Fatalf("NextNote after advance = %+v, want the beat-3.5 note", got)
	}

	lane.SkipNotes(2)
	if got := lane.NextNote(); got != nil {
		t.Fatalf("NextNote on a spent lane = %+v, want nil", got)
	}
	if got := lane.AllNextNotes(); got != nil {
		t.Fatalf("AllNextNotes on a spent lane = %+v, want nil", got)
	}
	if got := lane.AdvanceNote(); got != nil {
		t.Fatalf("AdvanceNote on a spent lane = %+v, want nil", got)
	}
}

func TestLaneSlidersDoNotCrossTaps(t *testing.T) {
	// a tap placed inside another lane's slider must not end up in the
	// slider's lane
	doc := `{
        "LaneCount": 2,
        "Song": {"Path": "x.ogg", "Bpm": 100},
        "Notes": [
            { "Beat": 1, "EndBeat": 5, "Lane": 0 },
            { "Beat": 2, "Lane": 1 }
        ]
    }`

	bm, err := ParseBeatmap([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	lanes := BuildLanes(bm)

	if got := len(lanes[0].Notes()); got != 2 {
		t.Errorf("lane 0 has %d notes, want begin+end", got)
	}
	if got := len(lanes[1].Notes()); got != 1 {
		t.Errorf("lane 1 has %d notes, want the lone tap", got)
	}
}
