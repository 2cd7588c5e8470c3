package rhythm

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"
)

// DefaultNoteWindow is the hit window used when a beatmap doesn't set
// its own.
const DefaultNoteWindow = 120 * time.Millisecond

// Beatmap is one parsed beatmap file.
type Beatmap struct {
	LaneCount int
	Song      BeatmapSong

	// NoteWindow is how far off a press can be and still count.
	NoteWindow time.Duration

	// Visual overrides. The game falls back to its defaults when Tint
	// is empty, LaneColors is nil or ScrollSpeed is nil. Color strings
	// are in css notation and parsed by the game's color layer.
	Tint        string
	LaneColors  []string
	ScrollSpeed *float64

	notes []BeatmapNote
}

// Notes are sorted by the beat they start on. The slice is shared, do
// not reorder it.
func (bm *Beatmap) Notes() []BeatmapNote {
	return bm.notes
}

type BeatmapSong struct {
	// Path of the song file, relative to the beatmap.
	Path string

	Bpm          int
	OffsetMillis int
}

// Offset is where the first beat sits in the song file.
func (s BeatmapSong) Offset() time.Duration {
	return time.Duration(s.OffsetMillis) * time.Millisecond
}

// BeatmapNote is a single note placement.
type BeatmapNote struct {
	Beat float64

	// EndBeat is nil for tap notes. Sliders hold from Beat to EndBeat.
	EndBeat *float64

	Lane int
}

type beatmapJson struct {
	LaneCount int
	Song      BeatmapSong

	NoteWindowMillis int

	Tint        string
	LaneColors  []string
	ScrollSpeed *float64

	Notes []BeatmapNote
}

// ParseBeatmap parses and validates a beatmap file.
func ParseBeatmap(data []byte) (*Beatmap, error) {
	var parsed beatmapJson

	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parsing beatmap: %w", err)
	}

	if parsed.LaneCount < 1 {
		return nil, fmt.Errorf("beatmap needs at least 1 lane, got %d", parsed.LaneCount)
	}
	if parsed.Song.Bpm < 1 {
		return nil, fmt.Errorf("song bpm must be positive, got %d", parsed.Song.Bpm)
	}
	if parsed.Song.OffsetMillis < 0 {
		return nil, fmt.Errorf("song offset must not be negative, got %d", parsed.Song.OffsetMillis)
	}

	for i, note := range parsed.Notes {
		if badBeat(note.Beat) {
			return nil, fmt.Errorf("note %d: bad beat %v", i, note.Beat)
		}
		if note.EndBeat != nil {
			if badBeat(*note.EndBeat) {
				return nil, fmt.Errorf("note %d: bad end beat %v", i, *note.EndBeat)
			}
			if *note.EndBeat <= note.Beat {
				return nil, fmt.Errorf(
					"note %d: end beat %v is not after beat %v", i, *note.EndBeat, note.Beat)
			}
		}
		if note.Lane < 0 || note.Lane >= parsed.LaneCount {
			return nil, fmt.Errorf(
				"note %d: lane %d out of range (beatmap has %d)", i, note.Lane, parsed.LaneCount)
		}
	}

	window := DefaultNoteWindow
	if parsed.NoteWindowMillis > 0 {
		window = time.Duration(parsed.NoteWindowMillis) * time.Millisecond
	}

	bm := &Beatmap{
		LaneCount:   parsed.LaneCount,
		Song:        parsed.Song,
		NoteWindow:  window,
		Tint:        parsed.Tint,
		LaneColors:  parsed.LaneColors,
		ScrollSpeed: parsed.ScrollSpeed,
		notes:       parsed.Notes,
	}

	sort.SliceStable(bm.notes, func(a, b int) bool {
		return bm.notes[a].Beat < bm.notes[b].Beat
	})

	return bm, nil
}

func badBeat(beat float64) bool {
	return math.IsNaN(beat) || math.IsInf(beat, 0)
}
