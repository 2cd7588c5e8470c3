package rhythm

import "time"

// Clock tracks where we are in a song.
//
// The clock advances every frame by the frame delta but never past the
// audio playhead. Frame deltas keep it smooth at the game's update
// rate, the playhead keeps it from drifting away from what's actually
// coming out of the speakers.
type Clock struct {
	bpm      int
	crotchet time.Duration
	offset   time.Duration

	now   time.Duration
	audio time.Duration
}

// NewClock creates a clock for a song. bpm must be positive.
func NewClock(bpm int, offset time.Duration) *Clock {
	return &Clock{
		bpm:      bpm,
		crotchet: time.Minute / time.Duration(bpm),
		offset:   offset,
	}
}

func (c *Clock) BPM() int {
	return c.bpm
}

// Crotchet is the time between two beats.
func (c *Clock) Crotchet() time.Duration {
	return c.crotchet
}

// Offset is where the first beat sits in the song file.
func (c *Clock) Offset() time.Duration {
	return c.offset
}

// Now is the raw clock time since the start of the song file.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Position is the clock time past the start offset. While the clock is
// still inside the offset it reports zero.
func (c *Clock) Position() time.Duration {
	if c.now < c.offset {
		return 0
	}
	return c.now - c.offset
}

// SetAudioPosition feeds the clock the playhead reported by the song's
// player.
func (c *Clock) SetAudioPosition(pos time.Duration) {
	c.audio = pos
}

// Advance moves the clock forward by delta, but not past the audio
// playhead and never backward.
func (c *Clock) Advance(delta time.Duration) {
	next := c.now + delta
	if next > c.audio {
		next = c.audio
	}
	if next > c.now {
		c.now = next
	}
}

// BeatNumber is the beat the song is on, 0 being the first beat. It is
// negative while the clock hasn't reached the start offset yet.
func (c *Clock) BeatNumber() float64 {
	return (c.now - c.offset).Seconds() / c.crotchet.Seconds()
}

// BeatPosition is the Position at which a beat occurs.
func (c *Clock) BeatPosition(beat float64) time.Duration {
	return time.Duration(beat * float64(c.crotchet))
}
