package beatlane

import (
	"bytes"
	_ "embed"
	"image"
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"

	"beatlane/material"
	"beatlane/rhythm"
)

var (
	//go:embed assets/slider_shader.go
	sliderShaderCode []byte
	SliderShader     *eb.Shader
)

var (
	//go:embed assets/beatmap.json
	demoBeatmapJson []byte
	DemoBeatmap     *rhythm.Beatmap
)

var (
	//go:embed assets/note_sprite.json
	noteSpriteJson []byte
	NoteSprite     Sprite
)

// slider texture size in pixels, one vertical repeat
const (
	SliderTextureWidth  = 64
	SliderTextureHeight = 64
)

// SliderTextureImage is what the gpu samples, SliderTexture is the
// same texels for the cpu material path.
var (
	SliderTextureImage *eb.Image
	SliderTexture      *material.Texture
)

var WhiteImage *eb.Image

func init() {
	whiteImg := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for x := range 3 {
		for y := range 3 {
			whiteImg.Set(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	wholeWhiteImage := eb.NewImageFromImage(whiteImg)
	WhiteImage = wholeWhiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*eb.Image)
}

func LoadAssets() {
	defer NewProfTimer("LoadAssets").Report()

	// compile slider shader
	{
		var err error
		SliderShader, err = eb.NewShader(sliderShaderCode)
		if err != nil {
			ErrorLogger.Fatalf("failed to compile slider shader : %v", err)
		}
	}

	// parse demo beatmap
	{
		var err error
		DemoBeatmap, err = rhythm.ParseBeatmap(demoBeatmapJson)
		if err != nil {
			ErrorLogger.Fatalf("failed to load demo beatmap : %v", err)
		}
	}

	// generate slider texture
	{
		img := GenerateSliderTexture(
			SliderTextureWidth, SliderTextureHeight,
			ColorTable[ColorSliderTint],
		)
		SliderTextureImage = eb.NewImageFromImage(img)
		SliderTexture = material.TextureFromImage(img)
	}

	// load note sprite
	{
		var err error
		NoteSprite, err = ParseSpriteJsonMetadata(bytes.NewReader(noteSpriteJson))
		if err != nil {
			ErrorLogger.Fatalf("failed to load sprite : %v", err)
		}

		sheet := GenerateNoteSpriteSheet(
			NoteSprite.Width, NoteSprite.Height, NoteSprite.Count)
		NoteSprite.Image = eb.NewImageFromImage(sheet)
	}
}
