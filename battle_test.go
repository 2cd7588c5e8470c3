package beatlane

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"testing"

	"beatlane/rhythm"
)

func TestNoteWorldY(t *testing.T) {
	cases := []struct {
		beat       float64
		beatNumber float64
		want       float64
	}{
		{0, 0, 0},
		{2, 0, 2 * WorldUnitsPerBeat},
		{4, 4, 0},
		{4, 5, -WorldUnitsPerBeat},
		{1.5, 1, 0.5 * WorldUnitsPerBeat},
	}

	for _, c := range cases {
		if got := NoteWorldY(c.beat, c.beatNumber); got != c.want {
			t.Errorf("NoteWorldY(%v, %v) = %v, want %v", c.beat, c.beatNumber, got, c.want)
		}
	}
}

func TestNewBattleFromDemoBeatmap(t *testing.T) {
	bm, err := rhythm.ParseBeatmap(demoBeatmapJson)
	if err != nil {
		t.Fatalf("parsing demo beatmap: %v", err)
	}

	b, err := NewBattle(bm, nil)
	if err != nil {
		t.Fatalf("NewBattle: %v", err)
	}

	if b.scrollSpeed != -0.6 {
		t.Errorf("scrollSpeed = %v, want -0.6", b.scrollSpeed)
	}

	if b.tint != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("tint = %v, want opaque white", b.tint)
	}

	// first lane color in the demo beatmap is #3a86ff
	if b.laneColors[0] != (color.NRGBA{0x3a, 0x86, 0xff, 255}) {
		t.Errorf("laneColors[0] = %v, want #3a86ff", b.laneColors[0])
	}

	wantHalfW := f64(bm.LaneCount) * LaneWorldWidth * 0.5
	if b.Camera.HalfW != wantHalfW {
		t.Errorf("Camera.HalfW = %v, want %v", b.Camera.HalfW, wantHalfW)
	}

	// every slider placement becomes a begin plus an end note
	sliderCount := 0
	for _, note := range bm.Notes() {
		if note.EndBeat != nil {
			sliderCount++
		}
	}
	wantNotes := len(bm.Notes()) + sliderCount
	if got := b.NoteCount(); got != wantNotes {
		t.Errorf("NoteCount = %d, want %d", got, wantNotes)
	}

	if b.Clock.BPM() != bm.Song.Bpm {
		t.Errorf("clock bpm = %d, want %d", b.Clock.BPM(), bm.Song.Bpm)
	}
}

func TestNewBattleRejectsTooManyLanes(t *testing.T) {
	bm, err := rhythm.ParseBeatmap([]byte(`{
		"LaneCount": 32,
		"Song": { "Bpm": 120 }
	}`))
	if err != nil {
		t.Fatalf("parsing beatmap: %v", err)
	}

	if _, err := NewBattle(bm, nil); err == nil {
		t.Error("expected an error for a beatmap with more lanes than bound keys")
	}
}

func TestNewBattleRejectsBadColors(t *testing.T) {
	bm, err := rhythm.ParseBeatmap([]byte(`{
		"LaneCount": 2,
		"Song": { "Bpm": 120 },
		"Tint": "definitely not a color"
	}`))
	if err != nil {
		t.Fatalf("parsing beatmap: %v", err)
	}

	if _, err := NewBattle(bm, nil); err == nil {
		t.Error("expected an error for an unparsable tint")
	}
}

func TestLaneFallbackColors(t *testing.T) {
	bm, err := rhythm.ParseBeatmap([]byte(`{
		"LaneCount": 2,
		"Song": { "Bpm": 120 }
	}`))
	if err != nil {
		t.Fatalf("parsing beatmap: %v", err)
	}

	b, err := NewBattle(bm, nil)
	if err != nil {
		t.Fatalf("NewBattle: %v", err)
	}

	// no accents in the beatmap, so lanes get evenly spaced hues
	for i := range b.laneColors {
		hue := 2 * math.Pi * f64(i) / f64(bm.LaneCount)
		want := ColorFromHSV(hue, 0.35, 0.8)
		if b.laneColors[i] != want {
			t.Errorf("laneColors[%d] = %v, want %v", i, b.laneColors[i], want)
		}
	}
	if b.laneColors[0] == b.laneColors[1] {
		t.Error("fallback lane colors should differ between lanes")
	}
}

func TestNewBattlePersistsBattleInfo(t *testing.T) {
	dm := &TheDebugPrintManager
	dm.PersistentDebugMsgs = dm.PersistentDebugMsgs[:0]

	bm, err := rhythm.ParseBeatmap(demoBeatmapJson)
	if err != nil {
		t.Fatalf("parsing demo beatmap: %v", err)
	}

	b, err := NewBattle(bm, nil)
	if err != nil {
		t.Fatalf("NewBattle: %v", err)
	}

	find := func(key string) string {
		for _, msg := range dm.PersistentDebugMsgs {
			if msg.Key == key {
				return msg.Value
			}
		}
		t.Fatalf("no persistent debug message for %q", key)
		return ""
	}

	if got, want := find("Lanes"), fmt.Sprintf("%d", bm.LaneCount); got != want {
		t.Errorf("Lanes = %q, want %q", got, want)
	}
	if got, want := find("Tint"), ColorToString(b.tint); got != want {
		t.Errorf("Tint = %q, want %q", got, want)
	}
}

func TestResultsSummaryFreshBattle(t *testing.T) {
	bm, err := rhythm.ParseBeatmap(demoBeatmapJson)
	if err != nil {
		t.Fatalf("parsing demo beatmap: %v", err)
	}

	b, err := NewBattle(bm, nil)
	if err != nil {
		t.Fatalf("NewBattle: %v", err)
	}

	summary := b.ResultsSummary()
	for _, want := range []string{"hit: 0", "missed: 0", "mean offset: 0s"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary %q doesn't contain %q", summary, want)
		}
	}
}
