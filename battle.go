package beatlane

import (
	"fmt"
	"image/color"
	"math"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebu "github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"beatlane/material"
	"beatlane/rhythm"
	"beatlane/sound"
)

// world layout
const (
	// LaneWorldWidth is how wide one lane is in world units.
	LaneWorldWidth = 100.0

	// WorldUnitsPerBeat is how far apart two consecutive beats sit on
	// a lane.
	WorldUnitsPerBeat = 48.0

	NoteWorldHeight = 14.0

	// DefaultScrollSpeed is the slider texture scroll when the beatmap
	// doesn't set one. Negative scrolls toward the judgement line.
	DefaultScrollSpeed = -0.6
)

// NoteWorldY is a note's vertical world position: positive above the
// judgement line before its time, 0 exactly when it should be hit.
func NoteWorldY(beat, beatNumber float64) float64 {
	return WorldUnitsPerBeat * (beat - beatNumber)
}

type JudgementPopup struct {
	Grade rhythm.Grade
	Lane  int

	Timer Timer
}

type Battle struct {
	Beatmap *rhythm.Beatmap
	Clock   *rhythm.Clock
	Lanes   []*rhythm.Lane

	SongPlayer *sound.Player

	Camera Camera

	// SliderMaterial is the cpu twin of the slider shader uniforms.
	// The gpu draws the slider meshes, this one colors held-lane
	// overlays so both paths stay honest about the same math.
	SliderMaterial material.ScrollingTexture

	laneColors  []color.NRGBA
	tint        color.NRGBA
	scrollSpeed float64

	keyEvents []rhythm.KeyEvent

	popups CircularQueue[JudgementPopup]

	hitCount  int
	missCount int
	offsetSum time.Duration

	started  bool
	muted    bool
	finished bool

	// scratch buffers reused every draw
	vertices []eb.Vertex
	indices  []uint16
}

func NewBattle(bm *rhythm.Beatmap, songPlayer *sound.Player) (*Battle, error) {
	if bm.LaneCount > len(LaneKeys) {
		return nil, fmt.Errorf(
			"beatmap has %d lanes but only %d keys are bound",
			bm.LaneCount, len(LaneKeys))
	}

	b := new(Battle)

	b.Beatmap = bm
	b.Clock = rhythm.NewClock(bm.Song.Bpm, bm.Song.Offset())
	b.Lanes = rhythm.BuildLanes(bm)
	b.SongPlayer = songPlayer

	b.popups = NewCircularQueue[JudgementPopup](16)

	// visual overrides from the beatmap
	b.tint = ColorTable[ColorSliderTint]
	if bm.Tint != "" {
		clr, err := ParseColorString(bm.Tint)
		if err != nil {
			return nil, fmt.Errorf("parsing beatmap tint: %w", err)
		}
		b.tint = clr
	}

	// without beatmap accents, lanes get evenly spaced hues
	b.laneColors = make([]color.NRGBA, bm.LaneCount)
	for i := range b.laneColors {
		hue := 2 * math.Pi * f64(i) / f64(bm.LaneCount)
		b.laneColors[i] = ColorFromHSV(hue, 0.35, 0.8)
	}
	for i, str := range bm.LaneColors {
		if i >= len(b.laneColors) {
			break
		}
		clr, err := ParseColorString(str)
		if err != nil {
			return nil, fmt.Errorf("parsing lane %d color: %w", i, err)
		}
		b.laneColors[i] = clr
	}

	b.scrollSpeed = DefaultScrollSpeed
	if bm.ScrollSpeed != nil {
		b.scrollSpeed = *bm.ScrollSpeed
	}

	b.SliderMaterial = material.ScrollingTexture{
		Color:       material.FromColor(b.tint),
		Texture:     SliderTexture,
		Sampler:     material.Sampler{Filter: material.FilterLinear},
		ScrollSpeed: b.scrollSpeed,
	}

	// judgement line at world y 0, lanes centered on x 0,
	// most of the view above the line
	worldW := f64(bm.LaneCount) * LaneWorldWidth
	b.Camera = Camera{
		HalfW: worldW * 0.5,
		HalfH: worldW * 0.7,
	}
	b.Camera.Y = b.Camera.HalfH * 0.72

	// these don't change during a battle, so they go on the
	// persistent side of the debug console
	DebugPrintfPersist("Lanes", "%d", bm.LaneCount)
	DebugPutsPersist("Tint", ColorToString(b.tint))

	return b, nil
}

func (b *Battle) Update() {
	// =============================
	// song start and clock
	// =============================
	if !b.started {
		b.SongPlayer.Play()
		b.started = true
		InfoLogger.Print("song started")
	}

	b.Clock.SetAudioPosition(b.SongPlayer.Position())
	b.Clock.Advance(UpdateDelta())

	// =============================
	// collect lane key events
	// =============================
	b.keyEvents = b.keyEvents[:0]

	for lane := 0; lane < b.Beatmap.LaneCount; lane++ {
		key := LaneKeys[lane]

		if IsKeyJustPressed(key) {
			b.keyEvents = append(b.keyEvents, rhythm.KeyEvent{
				Timestamp: b.Clock.Position(),
				Lane:      lane,
				Kind:      rhythm.KeyDown,
			})
		}
		if IsKeyJustReleased(key) {
			b.keyEvents = append(b.keyEvents, rhythm.KeyEvent{
				Timestamp: b.Clock.Position(),
				Lane:      lane,
				Kind:      rhythm.KeyUp,
			})
		}
	}

	// =============================
	// judge
	// =============================
	window := b.Beatmap.NoteWindow

	for _, j := range rhythm.Judge(b.Lanes, b.keyEvents, b.Clock, window) {
		b.recordJudgement(j, window)
	}
	for _, j := range rhythm.SweepMissed(b.Lanes, b.Clock, window) {
		b.recordJudgement(j, window)
	}

	// =============================
	// popups
	// =============================
	for i := 0; i < b.popups.Length; i++ {
		popup := b.popups.At(i)
		popup.Timer.TickUp()
		popup.Timer.ClampCurrent()
		b.popups.Data[(b.popups.Start+i)%len(b.popups.Data)] = popup
	}
	for !b.popups.IsEmpty() {
		popup := b.popups.At(0)
		if popup.Timer.Normalize() < 1 {
			break
		}
		b.popups.Dequeue()
	}

	// =============================
	// hotkeys
	// =============================
	if IsKeyJustPressed(CopyResultsKey) {
		ClipboardWriteText(b.ResultsSummary())
		InfoLogger.Print("copied results to clipboard")
	}

	if HandleKeyRepeat(time.Millisecond*200, time.Millisecond*50, VolumeUpKey) {
		b.SongPlayer.SetVolume(b.SongPlayer.Volume() + 0.05)
	}
	if HandleKeyRepeat(time.Millisecond*200, time.Millisecond*50, VolumeDownKey) {
		b.SongPlayer.SetVolume(b.SongPlayer.Volume() - 0.05)
	}

	if IsKeyJustPressed(MuteSongKey) {
		b.muted = !b.muted
		if b.muted {
			b.SongPlayer.SetVolume(0)
		} else {
			b.SongPlayer.SetVolume(1)
		}
	}

	// =============================
	// song end
	// =============================
	if b.started && !b.SongPlayer.IsPlaying() && b.lanesSpent() {
		b.finished = true
	}
}

func (b *Battle) recordJudgement(j rhythm.Judgement, window time.Duration) {
	if j.Missed {
		b.missCount++
	} else {
		b.hitCount++
		b.offsetSum += absDuration(j.Offset)
	}

	b.popups.Enqueue(JudgementPopup{
		Grade: j.Grade(window),
		Lane:  j.Note.Lane,
		Timer: Timer{Duration: time.Millisecond * 600},
	})
}

func (b *Battle) lanesSpent() bool {
	for _, lane := range b.Lanes {
		if lane.NextNote() != nil {
			return false
		}
	}
	return true
}

func (b *Battle) IsFinished() bool {
	return b.finished
}

// NoteCount is how many notes the battle judges in total.
func (b *Battle) NoteCount() int {
	count := 0
	for _, lane := range b.Lanes {
		count += len(lane.Notes())
	}
	return count
}

// MeanHitOffset is the average absolute offset of the hits so far.
func (b *Battle) MeanHitOffset() time.Duration {
	if b.hitCount == 0 {
		return 0
	}
	return b.offsetSum / time.Duration(b.hitCount)
}

func (b *Battle) ResultsSummary() string {
	return fmt.Sprintf(
		"notes: %d  hit: %d  missed: %d  mean offset: %v",
		b.NoteCount(), b.hitCount, b.missCount, b.MeanHitOffset(),
	)
}

// =================================
// drawing
// =================================

func (b *Battle) Draw(dst *eb.Image) {
	screenW, screenH := ScreenWidth, ScreenHeight
	beatNumber := b.Clock.BeatNumber()

	laneWorldX := func(lane int) float64 {
		return -b.Camera.HalfW + f64(lane)*LaneWorldWidth
	}

	// =============================
	// lane backdrops
	// =============================
	for lane := 0; lane < b.Beatmap.LaneCount; lane++ {
		minPt := b.Camera.ToScreen(screenW, screenH,
			FPt(laneWorldX(lane), b.Camera.Y+b.Camera.HalfH))
		maxPt := b.Camera.ToScreen(screenW, screenH,
			FPt(laneWorldX(lane)+LaneWorldWidth, b.Camera.Y-b.Camera.HalfH))

		rect := FRectangle{Min: minPt, Max: maxPt}.Canon()

		laneColor := ColorTable[ColorLane1]
		if lane%2 != 0 {
			laneColor = ColorTable[ColorLane2]
		}
		DrawFilledRect(dst, rect, laneColor, false)

		// held lanes glow with the slider material's current output,
		// sampled at the judgement line
		if IsKeyPressed(LaneKeys[lane]) {
			shaded := b.SliderMaterial.Shade(
				material.Vec2{X: 0.5},
				0,
				GlobalTimerNow().Seconds(),
			)
			held := ColorTable[ColorLaneHeld]
			overlay := LerpColorRGBA(held, shaded.NRGBA(), 0.3)
			DrawFilledRect(dst, rect.Inset(2), ColorFade(overlay, 0.5), false)
		}

		// beatmaps can give each lane an accent color
		StrokeRect(dst, rect, 1, b.laneColors[lane], false)
	}

	// =============================
	// judgement line
	// =============================
	{
		left := b.Camera.ToScreen(screenW, screenH, FPt(-b.Camera.HalfW, 0))
		right := b.Camera.ToScreen(screenW, screenH, FPt(b.Camera.HalfW, 0))

		StrokeLine(
			dst,
			left.X, left.Y, right.X, right.Y,
			3, ColorTable[ColorJudgementLine], IsAntiAliasOn(),
		)
	}

	// =============================
	// lane receptors
	// =============================
	for lane := 0; lane < b.Beatmap.LaneCount; lane++ {
		center := b.Camera.ToScreen(screenW, screenH,
			FPt(laneWorldX(lane)+LaneWorldWidth*0.5, 0))
		radius := LaneWorldWidth * 0.28 * b.Camera.ScaleX(screenW)

		if IsKeyPressed(LaneKeys[lane]) {
			DrawFilledCircle(
				dst, center.X, center.Y, radius,
				ColorFade(b.laneColors[lane], 0.4), IsAntiAliasOn(),
			)
		}
		StrokeCircle(
			dst, center.X, center.Y, radius,
			2, b.laneColors[lane], IsAntiAliasOn(),
		)
	}

	// =============================
	// sliders
	// =============================
	for _, lane := range b.Lanes {
		for _, note := range lane.Notes() {
			if note.Kind != rhythm.NoteSliderBegin {
				continue
			}
			b.drawSlider(dst, lane, note, beatNumber)
		}
	}

	// =============================
	// notes
	// =============================
	BeginFilter(eb.FilterNearest) // keep the sprite pixels crisp
	for _, lane := range b.Lanes {
		for _, note := range lane.AllNextNotes() {
			noteY := NoteWorldY(note.Beat, beatNumber)
			if noteY > b.Camera.Y+b.Camera.HalfH+NoteWorldHeight {
				break // notes are sorted, the rest are higher still
			}

			b.drawNote(dst, note, noteY, beatNumber)
		}
	}
	EndFilter()

	// =============================
	// judgement popups
	// =============================
	for i := 0; i < b.popups.Length; i++ {
		popup := b.popups.At(i)

		rise := popup.Timer.Normalize() * 24

		pos := b.Camera.ToScreen(screenW, screenH, FPt(
			laneWorldX(popup.Lane)+LaneWorldWidth*0.5,
			NoteWorldHeight*2,
		))

		gradeColor := ColorTable[ColorGradeMiss]
		switch popup.Grade {
		case rhythm.GradePerfect:
			gradeColor = ColorTable[ColorGradePerfect]
		case rhythm.GradeGood:
			gradeColor = ColorTable[ColorGradeGood]
		}

		fade := 1 - popup.Timer.Normalize()
		bar := CenterFRectangle(FRectWH(40, 4), pos.X, pos.Y-rise+10)

		// additive so overlapping popups brighten instead of stack
		BeginBlend(eb.BlendLighter)
		op := &DrawImageOptions{}
		op.GeoM.Scale(bar.Dx(), bar.Dy())
		op.GeoM.Translate(bar.Min.X, bar.Min.Y)
		op.ColorScale.ScaleWithColor(ColorFade(gradeColor, fade))
		DrawImage(dst, WhiteImage, op)
		EndBlend()

		ebu.DebugPrintAt(
			dst, popup.Grade.String(),
			int(pos.X)-len(popup.Grade.String())*3, int(pos.Y-rise)-8,
		)
	}

	// =============================
	// hud
	// =============================
	ebu.DebugPrintAt(dst, b.ResultsSummary(), 10, int(screenH)-20)
	if b.finished {
		ebu.DebugPrintAt(
			dst,
			"song over - press R to restart, C to copy results",
			10, int(screenH)-36,
		)
	}
}

func (b *Battle) drawNote(
	dst *eb.Image, note *rhythm.Note, noteY float64, beatNumber float64,
) {
	screenW, screenH := ScreenWidth, ScreenHeight

	// pulse the sprite on the beat
	phase := beatNumber - math.Floor(beatNumber)
	if phase < 0 {
		phase += 1
	}
	frame := int(phase*f64(NoteSprite.Count)) % NoteSprite.Count

	laneCenterX := -b.Camera.HalfW + (f64(note.Lane)+0.5)*LaneWorldWidth

	center := b.Camera.ToScreen(screenW, screenH, FPt(laneCenterX, noteY))

	noteW := LaneWorldWidth * 0.84 * b.Camera.ScaleX(screenW)
	noteH := NoteWorldHeight * b.Camera.ScaleY(screenH)

	sub := SpriteSubImage(NoteSprite, frame)

	op := &DrawImageOptions{}
	op.GeoM = TransformToCenter(
		f64(NoteSprite.Width), f64(NoteSprite.Height),
		noteW/f64(NoteSprite.Width), noteH/f64(NoteSprite.Height),
		0,
	)
	op.GeoM.Translate(center.X, center.Y)

	if note.Kind == rhythm.NoteSliderEnd {
		// slider ends read as lighter markers
		op.ColorScale.ScaleAlpha(0.6)
	}

	DrawImage(dst, sub, op)
}

// drawSlider draws the held body between a slider's begin and end
// notes with the scrolling texture shader.
//
// The body shrinks as it is consumed: untouched sliders span begin to
// end, begun ones span the judgement line to the end, finished ones
// disappear.
func (b *Battle) drawSlider(
	dst *eb.Image, lane *rhythm.Lane, begin *rhythm.Note, beatNumber float64,
) {
	slider := begin.Slider()
	end := slider.End

	if end.Index() < lane.NextIndex() {
		return // fully consumed
	}

	bottomY := NoteWorldY(begin.Beat, beatNumber)
	topY := NoteWorldY(end.Beat, beatNumber)

	if begin.Index() < lane.NextIndex() {
		// begin consumed: the held part rides the judgement line
		bottomY = Clamp(0, bottomY, topY)
	}

	if topY <= bottomY {
		return
	}

	screenW, screenH := ScreenWidth, ScreenHeight

	laneLeft := -b.Camera.HalfW + f64(begin.Lane)*LaneWorldWidth
	inset := LaneWorldWidth * 0.12

	topLeft := b.Camera.ToScreen(screenW, screenH, FPt(laneLeft+inset, topY))
	bottomRight := b.Camera.ToScreen(screenW, screenH,
		FPt(laneLeft+LaneWorldWidth-inset, bottomY))

	bodyRect := FRectangle{Min: topLeft, Max: bottomRight}.Canon()
	if !bodyRect.Overlaps(RectToFRect(dst.Bounds())) {
		return
	}

	srcW := f32(SliderTextureImage.Bounds().Dx())
	srcH := f32(SliderTextureImage.Bounds().Dy())

	// mesh uv covers the texture horizontally; the vertical sample
	// coordinate comes from the world y each vertex carries in Custom0
	makeVertex := func(dstX, dstY, srcX float64, worldY float64) eb.Vertex {
		return eb.Vertex{
			DstX: f32(dstX), DstY: f32(dstY),
			SrcX: f32(srcX) * srcW, SrcY: srcH * 0.5,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
			Custom0: f32(worldY),
		}
	}

	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]

	b.vertices = append(b.vertices,
		makeVertex(topLeft.X, topLeft.Y, 0, topY),
		makeVertex(bottomRight.X, topLeft.Y, 1, topY),
		makeVertex(bottomRight.X, bottomRight.Y, 1, bottomY),
		makeVertex(topLeft.X, bottomRight.Y, 0, bottomY),
	)
	b.indices = append(b.indices, 0, 1, 2, 0, 2, 3)

	op := &DrawTrianglesShaderOptions{}
	op.Images[0] = SliderTextureImage
	op.Uniforms = map[string]any{
		"Color":             ColorNormalized(b.tint, false),
		"ScrollSpeed":       b.scrollSpeed,
		"Time":              GlobalTimerNow().Seconds(),
		"WorldUnitsPerTile": material.DefaultWorldUnitsPerTile,
	}

	DrawTrianglesShader(dst, b.vertices, b.indices, SliderShader, op)

	StrokeRect(dst, bodyRect, 1, ColorTable[ColorLaneStroke], false)
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
