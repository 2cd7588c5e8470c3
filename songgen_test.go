package beatlane

import (
	"encoding/binary"
	"testing"
	"time"
)

func TestGenerateDemoSongWavLayout(t *testing.T) {
	const sampleRate = 44100

	song := GenerateDemoSong(120, 8, time.Second, sampleRate)

	if len(song) < 44 {
		t.Fatalf("wav is only %d bytes", len(song))
	}

	if string(song[0:4]) != "RIFF" || string(song[8:12]) != "WAVE" {
		t.Fatalf("bad riff header % x", song[0:12])
	}
	if string(song[12:16]) != "fmt " || string(song[36:40]) != "data" {
		t.Fatalf("unexpected chunk layout")
	}

	if rate := binary.LittleEndian.Uint32(song[24:28]); rate != sampleRate {
		t.Errorf("sample rate = %d, want %d", rate, sampleRate)
	}
	if channels := binary.LittleEndian.Uint16(song[22:24]); channels != 2 {
		t.Errorf("channels = %d, want 2", channels)
	}
	if bits := binary.LittleEndian.Uint16(song[34:36]); bits != 16 {
		t.Errorf("bits per sample = %d, want 16", bits)
	}

	dataSize := binary.LittleEndian.Uint32(song[40:44])
	if int(dataSize) != len(song)-44 {
		t.Errorf("data size = %d, want %d", dataSize, len(song)-44)
	}

	// 1s offset + 8 beats at 120bpm (4s) + 1s tail
	frames := int(dataSize) / 4
	wantFrames := 6 * sampleRate
	if frames != wantFrames {
		t.Errorf("frames = %d, want %d", frames, wantFrames)
	}
}

func TestGenerateDemoSongLeadInIsSilent(t *testing.T) {
	const sampleRate = 44100

	song := GenerateDemoSong(120, 4, time.Second/2, sampleRate)

	// every sample before the offset must be zero
	leadInFrames := sampleRate / 2
	data := song[44:]

	for frame := 0; frame < leadInFrames; frame++ {
		for ch := 0; ch < 2; ch++ {
			at := frame*4 + ch*2
			if sample := int16(binary.LittleEndian.Uint16(data[at : at+2])); sample != 0 {
				t.Fatalf("frame %d channel %d = %d, want silence", frame, ch, sample)
			}
		}
	}

	// and the first beat must actually make noise
	clickStart := leadInFrames * 4
	loud := false
	for frame := 0; frame < sampleRate/10; frame++ {
		at := clickStart + frame*4
		if sample := int16(binary.LittleEndian.Uint16(data[at : at+2])); sample != 0 {
			loud = true
			break
		}
	}
	if !loud {
		t.Error("no audible click after the lead-in")
	}
}
