//go:build !js

package sound

import (
	"bytes"
	"sync"
	"time"

	eba "github.com/hajimehoshi/ebiten/v2/audio"
)

type Context struct {
	sampleRate int
	context    *eba.Context

	buffers     map[string][]byte
	buffersLock sync.Mutex
}

func NewContext(sampleRate int) (*Context, chan struct{}, error) {
	c := new(Context)
	c.sampleRate = sampleRate
	c.buffers = make(map[string][]byte)

	var readyChan = make(chan struct{})

	// it'll be ready on start since it's not on browser
	close(readyChan)

	c.context = eba.NewContext(sampleRate)

	return c, readyChan, nil
}

func (c *Context) SampleRate() int {
	return c.sampleRate
}

// RegisterAudio decodes an audio file on a background goroutine and
// stores it under audioName. The returned channel reports the decode
// result once.
func (c *Context) RegisterAudio(
	audioName string,
	audioFile []byte,
	audioFileType string,
) <-chan error {
	errChan := make(chan error)

	go func() {
		decoded, err := decodeAudioF32(audioFile, audioFileType, c.SampleRate())
		if err != nil {
			errChan <- err
			close(errChan)
			return
		}

		c.buffersLock.Lock()
		c.buffers[audioName] = decoded
		c.buffersLock.Unlock()

		errChan <- nil
		close(errChan)
	}()

	return errChan
}

// NewPlayer creates a player for a registered audio. Registering must
// have finished; asking for an unknown name is a programming error and
// kills the process.
func (c *Context) NewPlayer(audioName string) *Player {
	c.buffersLock.Lock()
	audioBytes, ok := c.buffers[audioName]
	c.buffersLock.Unlock()

	if !ok {
		errLogger.Fatalf("no audio registered as %s", audioName)
	}

	p := new(Player)
	var err error
	p.player, err = c.context.NewPlayerF32(bytes.NewReader(audioBytes))

	if err != nil {
		errLogger.Fatalf("NewPlayer failed for %s : %v", audioName, err)
	}

	p.sampleRate = c.SampleRate()
	p.byteLength = int64(len(audioBytes))

	return p
}

type Player struct {
	player     *eba.Player
	sampleRate int
	byteLength int64
}

func (p *Player) IsPlaying() bool {
	return p.player.IsPlaying()
}

func (p *Player) Pause() {
	p.player.Pause()
}

func (p *Player) Play() {
	p.player.Play()
}

// Position is the current playhead. It only moves when the audio
// thread consumes a buffer, so it's jumpy; smooth it before showing it
// to anything that cares.
func (p *Player) Position() time.Duration {
	return p.player.Position()
}

func (p *Player) SetPosition(offset time.Duration) {
	p.player.SetPosition(offset)
}

// Duration is the total length of the audio.
func (p *Player) Duration() time.Duration {
	return byteLengthToDuration(p.byteLength, p.sampleRate)
}

func (p *Player) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	p.player.SetVolume(volume)
}

func (p *Player) Volume() float64 {
	return p.player.Volume()
}
