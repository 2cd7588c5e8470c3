package beatlane

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

// LaneKeys maps lanes to keyboard keys. Beatmaps with more lanes than
// this are rejected at battle setup.
var LaneKeys = []eb.Key{
	eb.KeyD,
	eb.KeyF,
	eb.KeyJ,
	eb.KeyK,
	eb.KeyL,
	eb.KeySemicolon,
}

const (
	ShowDebugConsoleKey eb.Key = eb.KeyF1

	RestartBattleKey eb.Key = eb.KeyR
	CopyResultsKey   eb.Key = eb.KeyC

	MuteSongKey   eb.Key = eb.KeyM
	VolumeUpKey   eb.Key = eb.KeyArrowUp
	VolumeDownKey eb.Key = eb.KeyArrowDown
)
