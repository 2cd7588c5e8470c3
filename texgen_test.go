package beatlane

import (
	"image/color"
	"testing"

	"beatlane/material"
)

func TestGenerateCheckerTexture(t *testing.T) {
	c1 := color.NRGBA{255, 255, 255, 255}
	c2 := color.NRGBA{0, 0, 0, 255}

	img := GenerateCheckerTexture(4, 4, 2, 2, c1, c2)

	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Fatalf("bounds = %v, want 4x4", img.Bounds())
	}

	if got := img.NRGBAAt(0, 0); got != c1 {
		t.Errorf("(0,0) = %v, want %v", got, c1)
	}
	if got := img.NRGBAAt(2, 0); got != c2 {
		t.Errorf("(2,0) = %v, want %v", got, c2)
	}
	if got := img.NRGBAAt(2, 2); got != c1 {
		t.Errorf("(2,2) = %v, want %v", got, c1)
	}
}

// the generated checker has to survive the trip into the cpu material
// untouched, since tests and previews sample it there
func TestCheckerTextureThroughMaterial(t *testing.T) {
	c1 := color.NRGBA{255, 255, 255, 255}
	c2 := color.NRGBA{0, 0, 0, 255}

	tex := material.TextureFromImage(GenerateCheckerTexture(2, 2, 1, 1, c1, c2))

	sampler := material.Sampler{Filter: material.FilterNearest}

	white := material.RGBA{R: 1, G: 1, B: 1, A: 1}
	black := material.RGBA{A: 1}

	if got := sampler.Sample(tex, material.Vec2{X: 0.25, Y: 0.25}); got != white {
		t.Errorf("top left sample = %v, want white", got)
	}
	if got := sampler.Sample(tex, material.Vec2{X: 0.75, Y: 0.25}); got != black {
		t.Errorf("top right sample = %v, want black", got)
	}
}

func TestGenerateSliderTexture(t *testing.T) {
	tint := color.NRGBA{255, 255, 255, 255}

	img := GenerateSliderTexture(SliderTextureWidth, SliderTextureHeight, tint)

	if img.Bounds().Dx() != SliderTextureWidth || img.Bounds().Dy() != SliderTextureHeight {
		t.Fatalf("bounds = %v, want %dx%d",
			img.Bounds(), SliderTextureWidth, SliderTextureHeight)
	}

	centerX := SliderTextureWidth / 2
	center := img.NRGBAAt(centerX, SliderTextureHeight/2)
	edge := img.NRGBAAt(0, SliderTextureHeight/2)

	if center.A == 0 {
		t.Error("slider body center is fully transparent")
	}
	if edge.A >= center.A {
		t.Errorf("edge alpha %d should fall below center alpha %d", edge.A, center.A)
	}

	// the band brightens toward the tile bottom
	top := img.NRGBAAt(centerX, 2)
	bottom := img.NRGBAAt(centerX, SliderTextureHeight-1)
	if bottom.R <= top.R {
		t.Errorf("bottom %v should be brighter than top %v", bottom, top)
	}
}

func TestGenerateNoteSpriteSheet(t *testing.T) {
	const frameW, frameH, count = 16, 8, 4

	img := GenerateNoteSpriteSheet(frameW, frameH, count)

	if img.Bounds().Dx() != frameW*count || img.Bounds().Dy() != frameH {
		t.Fatalf("bounds = %v, want %dx%d", img.Bounds(), frameW*count, frameH)
	}

	stroke := ColorTable[ColorNoteStroke]

	for n := 0; n < count; n++ {
		if got := img.NRGBAAt(n*frameW, 0); got != stroke {
			t.Errorf("frame %d corner = %v, want stroke %v", n, got, stroke)
		}
	}
}
