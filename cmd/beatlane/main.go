package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"

	_ "github.com/silbinarywolf/preferdiscretegpu"

	eb "github.com/hajimehoshi/ebiten/v2"

	"beatlane"
	"beatlane/rhythm"
)

var FlagPProf bool
var FlagBeatmap string
var FlagNoAntiAlias bool

func init() {
	flag.BoolVar(&FlagPProf, "pprof", false, "enable pprof")
	flag.StringVar(&FlagBeatmap, "beatmap", "", "play a beatmap file instead of the built in demo")
	flag.BoolVar(&FlagNoAntiAlias, "noaa", false, "disable antialiasing")
}

func main() {
	flag.Parse()

	if FlagPProf {
		go func() {
			beatlane.InfoLogger.Print("initializing pprof")
			beatlane.InfoLogger.Print(http.ListenAndServe("localhost:6060", nil))
		}()
		beatlane.DebugPrintPersist("pprof", true)
	}

	if FlagNoAntiAlias {
		beatlane.SetAntiAlias(false)
	}

	beatlane.InitClipboardManager()
	beatlane.InitInputManager()

	beatlane.LoadAssets()

	bm, songFile, songFileType := loadBeatmapAndSong()

	app, err := beatlane.NewApp(bm, songFile, songFileType)
	if err != nil {
		beatlane.ErrorLogger.Fatalf("failed to set up : %v", err)
	}

	eb.SetVsyncEnabled(true)
	eb.SetWindowSize(int(beatlane.ScreenWidth), int(beatlane.ScreenHeight))
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetWindowTitle("Beatlane")

	if err := eb.RunGame(app); err != nil {
		panic(err)
	}
}

// loadBeatmapAndSong picks the beatmap from the -beatmap flag or falls
// back to the embedded demo. Beatmaps with an empty song path get a
// generated metronome track.
func loadBeatmapAndSong() (*rhythm.Beatmap, []byte, string) {
	bm := beatlane.DemoBeatmap

	beatmapDir := ""

	if FlagBeatmap != "" {
		data, err := os.ReadFile(FlagBeatmap)
		if err != nil {
			beatlane.ErrorLogger.Fatalf("failed to read beatmap : %v", err)
		}

		bm, err = rhythm.ParseBeatmap(data)
		if err != nil {
			beatlane.ErrorLogger.Fatalf("failed to parse beatmap : %v", err)
		}

		beatmapDir = filepath.Dir(FlagBeatmap)
	}

	var songFile []byte
	songFileType := ".wav"

	if bm.Song.Path == "" {
		lastBeat := 0.0
		for _, note := range bm.Notes() {
			lastBeat = max(lastBeat, note.Beat)
			if note.EndBeat != nil {
				lastBeat = max(lastBeat, *note.EndBeat)
			}
		}

		songFile = beatlane.GenerateDemoSong(
			bm.Song.Bpm,
			int(lastBeat)+4,
			bm.Song.Offset(),
			beatlane.SampleRate,
		)
	} else {
		var err error
		songFile, err = os.ReadFile(filepath.Join(beatmapDir, bm.Song.Path))
		if err != nil {
			beatlane.ErrorLogger.Fatalf("failed to read song : %v", err)
		}
		songFileType = filepath.Ext(bm.Song.Path)
	}

	return bm, songFile, songFileType
}
