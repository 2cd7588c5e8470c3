package beatlane

import (
	"bytes"
	"encoding/binary"
	"math"
	"time"
)

// GenerateDemoSong synthesizes a metronome track as a 16 bit stereo
// wav file: one click per beat, a brighter click every fourth beat,
// silence during the lead-in offset. It stands in for a real song file
// so the demo beatmap doesn't need an audio binary.
func GenerateDemoSong(
	bpm int,
	beats int,
	offset time.Duration,
	sampleRate int,
) []byte {
	crotchet := time.Minute / time.Duration(bpm)
	total := offset + crotchet*time.Duration(beats) + time.Second

	frameCount := int(total.Seconds() * f64(sampleRate))
	samples := make([]float64, frameCount)

	const clickLen = 0.06

	for beat := 0; beat < beats; beat++ {
		at := offset + crotchet*time.Duration(beat)
		start := int(at.Seconds() * f64(sampleRate))

		freq := 660.0
		if beat%4 == 0 {
			freq = 990.0
		}

		for i := 0; i < int(clickLen*f64(sampleRate)); i++ {
			frame := start + i
			if frame >= frameCount {
				break
			}

			t := f64(i) / f64(sampleRate)
			decay := math.Exp(-t * 60)

			samples[frame] += 0.5 * decay * math.Sin(2*math.Pi*freq*t)
		}
	}

	return encodeWav(samples, sampleRate)
}

// encodeWav packs mono float samples into a pcm16 stereo wav file.
func encodeWav(samples []float64, sampleRate int) []byte {
	const channels = 2
	const bytesPerSample = 2

	dataSize := len(samples) * channels * bytesPerSample

	buf := new(bytes.Buffer)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1)) // pcm
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate*channels*bytesPerSample))
	binary.Write(buf, binary.LittleEndian, uint16(channels*bytesPerSample))
	binary.Write(buf, binary.LittleEndian, uint16(16))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(dataSize))

	for _, sample := range samples {
		s := Clamp(sample, -1, 1)
		pcm := int16(s * math.MaxInt16)

		// same sample on both channels
		binary.Write(buf, binary.LittleEndian, pcm)
		binary.Write(buf, binary.LittleEndian, pcm)
	}

	return buf.Bytes()
}
