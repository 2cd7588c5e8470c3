package beatlane

import (
	"fmt"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebu "github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"beatlane/material"
	"beatlane/rhythm"
	"beatlane/sound"
)

var (
	ScreenWidth  float64 = 600
	ScreenHeight float64 = 800
)

const SampleRate = 44100

const songAudioName = "song"

type GameState int

const (
	GameStateSplash GameState = iota
	GameStateLoadingBattle
	GameStateInBattle
)

func (s GameState) String() string {
	switch s {
	case GameStateSplash:
		return "Splash"
	case GameStateLoadingBattle:
		return "LoadingBattle"
	case GameStateInBattle:
		return "InBattle"
	default:
		return "Unknown"
	}
}

type App struct {
	ShowDebugConsole bool

	State GameState

	Beatmap *rhythm.Beatmap

	SoundContext *sound.Context
	Battle       *Battle

	songFile     []byte
	songFileType string

	soundReady   chan struct{}
	isSoundReady bool

	songLoad <-chan error

	splashTimer Timer
}

// NewApp sets up the app around one beatmap and its song file.
// songFileType is the file extension (".wav", ".ogg", ".mp3");
// decoding starts once the sound context is ready.
func NewApp(bm *rhythm.Beatmap, songFile []byte, songFileType string) (*App, error) {
	a := new(App)

	a.Beatmap = bm
	a.songFile = songFile
	a.songFileType = songFileType

	a.splashTimer = Timer{Duration: time.Millisecond * 1500}

	var err error
	a.SoundContext, a.soundReady, err = sound.NewContext(SampleRate)
	if err != nil {
		return nil, fmt.Errorf("creating sound context: %w", err)
	}

	return a, nil
}

func (a *App) Update() error {
	ClearDebugMsgs()

	// ==========================
	// update global managers
	// ==========================
	UpdateGlobalTimer()
	UpdateInput()

	fpsStr := fmt.Sprintf("%.2f", eb.ActualFPS())
	tpsStr := fmt.Sprintf("%.2f", eb.ActualTPS())

	// ==========================
	// update windows title
	// ==========================
	eb.SetWindowTitle("Beatlane FPS: " + fpsStr + " TPS: " + tpsStr)

	// ==========================
	// DebugPrint
	// ==========================
	DebugPrint("FPS", fpsStr)
	DebugPrint("TPS", tpsStr)
	DebugPrint("State", a.State.String())

	// ==========================
	// debug showing
	// ==========================
	if IsKeyJustPressed(ShowDebugConsoleKey) {
		a.ShowDebugConsole = !a.ShowDebugConsole
	}

	switch a.State {
	case GameStateSplash:
		a.updateSplash()
	case GameStateLoadingBattle:
		if err := a.updateLoading(); err != nil {
			return err
		}
	case GameStateInBattle:
		if err := a.updateBattle(); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) updateSplash() {
	a.splashTimer.TickUp()

	// any key skips the splash
	skip := len(TheInputManager.JustPressedBuf) > 0

	if skip || a.splashTimer.Normalize() >= 1 {
		a.State = GameStateLoadingBattle
	}
}

func (a *App) updateLoading() error {
	// the sound context readiness matters on browsers where audio
	// needs a user gesture first
	if !a.isSoundReady {
		select {
		case <-a.soundReady:
			a.isSoundReady = true
			a.songLoad = a.SoundContext.RegisterAudio(
				songAudioName, a.songFile, a.songFileType)
			InfoLogger.Print("decoding song")
		default:
			return nil
		}
	}

	select {
	case err := <-a.songLoad:
		if err != nil {
			return fmt.Errorf("decoding song: %w", err)
		}
	default:
		return nil
	}

	player := a.SoundContext.NewPlayer(songAudioName)

	battle, err := NewBattle(a.Beatmap, player)
	if err != nil {
		return fmt.Errorf("setting up battle: %w", err)
	}
	a.Battle = battle
	a.State = GameStateInBattle

	return nil
}

func (a *App) updateBattle() error {
	if IsKeyJustPressed(RestartBattleKey) {
		a.Battle.SongPlayer.Pause()
		a.Battle.SongPlayer.SetPosition(0)

		battle, err := NewBattle(a.Beatmap, a.Battle.SongPlayer)
		if err != nil {
			return fmt.Errorf("restarting battle: %w", err)
		}
		a.Battle = battle
	}

	a.Battle.Update()

	DebugPrintf("Beat", "%.2f", a.Battle.Clock.BeatNumber())
	DebugPrintf("Song", "%v / %v",
		a.Battle.SongPlayer.Position().Round(time.Millisecond*10),
		a.Battle.SongPlayer.Duration().Round(time.Millisecond*10),
	)

	return nil
}

func (a *App) Draw(dst *eb.Image) {
	dst.Fill(ColorTable[ColorBg])

	switch a.State {
	case GameStateSplash:
		a.drawSplashBanner(dst)
		ebu.DebugPrintAt(
			dst, "BEATLANE",
			int(ScreenWidth)/2-24, int(ScreenHeight)/2-8,
		)
	case GameStateLoadingBattle:
		ebu.DebugPrintAt(
			dst, "loading...",
			int(ScreenWidth)/2-30, int(ScreenHeight)/2-8,
		)
	case GameStateInBattle:
		a.Battle.Draw(dst)
	}

	if a.ShowDebugConsole {
		DrawDebugMsgs(dst)
	}
}

// drawSplashBanner scrolls the slider material across a band behind
// the title. A rect draw carries no per-vertex world y, so the whole
// band samples one texture row and cycles through rows over time.
func (a *App) drawSplashBanner(dst *eb.Image) {
	if SliderShader == nil {
		return
	}

	imgW, imgH := ImageSizeF(SliderTextureImage)

	op := &DrawRectShaderOptions{}
	op.Images[0] = SliderTextureImage
	op.Uniforms = map[string]any{
		"Color":             ColorNormalized(ColorTable[ColorSliderTint], false),
		"ScrollSpeed":       DefaultScrollSpeed,
		"Time":              GlobalTimerNow().Seconds(),
		"WorldUnitsPerTile": material.DefaultWorldUnitsPerTile,
	}
	op.GeoM.Scale(ScreenWidth/imgW, ScreenHeight*0.2/imgH)
	op.GeoM.Translate(0, ScreenHeight*0.4)

	DrawRectShader(dst, int(imgW), int(imgH), SliderShader, op)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	ScreenWidth = f64(outsideWidth)
	ScreenHeight = f64(outsideHeight)

	return outsideWidth, outsideHeight
}
