package sound

import (
	"testing"
	"time"
)

func TestByteLengthToDuration(t *testing.T) {
	cases := []struct {
		byteLength int64
		sampleRate int
		want       time.Duration
	}{
		{0, 44100, 0},
		{frameBytes, 44100, time.Second / 44100},
		{44100 * frameBytes, 44100, time.Second},
		{48000 * frameBytes * 2, 48000, time.Second * 2},
	}

	for _, c := range cases {
		got := byteLengthToDuration(c.byteLength, c.sampleRate)
		if got != c.want {
			t.Errorf("byteLengthToDuration(%d, %d) = %v, want %v",
				c.byteLength, c.sampleRate, got, c.want)
		}
	}
}
