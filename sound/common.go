package sound

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	eba "github.com/hajimehoshi/ebiten/v2/audio"
)

var errLogger = log.New(os.Stderr, "[ FAIL ]: ", log.Lshortfile)

// bytes per interleaved stereo f32 frame
const frameBytes = 8

// byteLengthToDuration is how long a decoded buffer of interleaved
// stereo f32 samples plays for.
func byteLengthToDuration(byteLength int64, sampleRate int) time.Duration {
	frames := byteLength / frameBytes
	return time.Duration(frames) * time.Second / time.Duration(sampleRate)
}

type decodeStream interface {
	io.ReadSeeker
	Length() int64
	SampleRate() int
}

// decodeAudioF32 decodes an audio file to interleaved stereo f32
// samples at the context sample rate.
func decodeAudioF32(
	audioFile []byte,
	audioFileType string,
	sampleRate int,
) ([]byte, error) {
	var stream decodeStream
	var err error

	// NOTE: this is not a perfect way to determine the audio file type
	// since audio file can be in different container.
	//
	// But it is good enough for what we are trying to do
	switch strings.ToLower(audioFileType) {
	case ".ogg":
		stream, err = vorbis.DecodeF32(bytes.NewReader(audioFile))
	case ".wav":
		stream, err = wav.DecodeF32(bytes.NewReader(audioFile))
	case ".mp3":
		stream, err = mp3.DecodeF32(bytes.NewReader(audioFile))
	default:
		return nil, fmt.Errorf("unsupported audio file type %s", audioFileType)
	}
	if err != nil {
		return nil, err
	}

	resampled := eba.ResampleF32(
		stream, stream.Length(), stream.SampleRate(), sampleRate)

	decoded, err := io.ReadAll(resampled)
	if err != nil {
		return nil, err
	}

	return decoded, nil
}
