package beatlane

import (
	"image"
	"image/color"
	"math"
)

// Textures are generated at load instead of shipping image files.

// GenerateCheckerTexture fills an image with a checker of two colors.
func GenerateCheckerTexture(
	width, height int,
	checkerW, checkerH int,
	color1, color2 color.NRGBA,
) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			clr := color1
			if (x/checkerW+y/checkerH)%2 != 0 {
				clr = color2
			}
			img.SetNRGBA(x, y, clr)
		}
	}

	return img
}

// GenerateSliderTexture draws one vertical repeat of the slider body:
// a soft horizontal falloff toward the lane edges and a bright band at
// the bottom of the tile so scrolling reads as motion.
func GenerateSliderTexture(width, height int, tint color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		// band peaks at the tile bottom and fades going up
		bandT := f64(y) / f64(height)
		band := Lerp(0.45, 1.0, bandT*bandT)

		for x := 0; x < width; x++ {
			// distance from the horizontal center, 0 at center 1 at edge
			edge := math.Abs(f64(x)-f64(width-1)*0.5) / (f64(width) * 0.5)
			fade := Clamp(1.2-edge*edge*1.6, 0, 1)

			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(f64(tint.R) * band * fade),
				G: uint8(f64(tint.G) * band * fade),
				B: uint8(f64(tint.B) * band * fade),
				A: uint8(f64(tint.A) * fade),
			})
		}
	}

	return img
}

// GenerateNoteSpriteSheet lays out pulse frames of the note sprite in
// one row. Frame n is the note at pulse phase n/count.
func GenerateNoteSpriteSheet(frameW, frameH, count int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, frameW*count, frameH))

	for n := 0; n < count; n++ {
		phase := f64(n) / f64(count)
		pulse := 0.5 + 0.5*math.Cos(phase*2*math.Pi)

		body := LerpColorRGBA(
			ColorTable[ColorNoteStroke], ColorTable[ColorNote], 0.6+0.4*pulse)

		for y := 0; y < frameH; y++ {
			for x := 0; x < frameW; x++ {
				onStroke := x == 0 || x == frameW-1 || y == 0 || y == frameH-1

				clr := body
				if onStroke {
					clr = ColorTable[ColorNoteStroke]
				}
				img.SetNRGBA(n*frameW+x, y, clr)
			}
		}
	}

	return img
}
