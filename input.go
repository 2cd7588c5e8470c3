package beatlane

import (
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"
)

var TheInputManager struct {
	// below fields are updated by TheInputManager
	// only public for convinience
	// don't write in to it

	JustPressedMap  map[eb.Key]bool
	JustReleasedMap map[eb.Key]bool

	JustPressedBuf  []eb.Key
	JustReleasedBuf []eb.Key
}

func InitInputManager() {
	im := &TheInputManager

	im.JustPressedMap = make(map[eb.Key]bool)
	im.JustReleasedMap = make(map[eb.Key]bool)
}

func UpdateInput() {
	im := &TheInputManager

	// =============================
	// update key buffers
	// =============================
	im.JustPressedBuf = ebi.AppendJustPressedKeys(im.JustPressedBuf[:0])
	im.JustReleasedBuf = ebi.AppendJustReleasedKeys(im.JustReleasedBuf[:0])

	// =============================
	// update key maps
	// =============================
	clear(im.JustPressedMap)
	clear(im.JustReleasedMap)

	for _, key := range im.JustPressedBuf {
		im.JustPressedMap[key] = true
	}
	for _, key := range im.JustReleasedBuf {
		im.JustReleasedMap[key] = true
	}
}

func IsKeyPressed(key eb.Key) bool {
	return eb.IsKeyPressed(key)
}

func IsKeyJustPressed(key eb.Key) bool {
	return ebi.IsKeyJustPressed(key)
}

func IsKeyJustReleased(key eb.Key) bool {
	return ebi.IsKeyJustReleased(key)
}

var keyRepeatMap = make(map[eb.Key]time.Duration)

func HandleKeyRepeat(
	firstRate, repeatRate time.Duration,
	key eb.Key,
) bool {
	if !IsKeyPressed(key) {
		keyRepeatMap[key] = 0
		return false
	}

	if IsKeyJustPressed(key) {
		keyRepeatMap[key] = GlobalTimerNow() + firstRate
		return true
	}

	time, ok := keyRepeatMap[key]

	if !ok {
		keyRepeatMap[key] = GlobalTimerNow() + firstRate
		return true
	} else {
		now := GlobalTimerNow()
		if now-time > repeatRate {
			keyRepeatMap[key] = now
			return true
		}
	}

	return false
}
