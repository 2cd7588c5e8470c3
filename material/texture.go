package material

import (
	"image"
	"image/color"
)

// RGBA is an unclamped, non-premultiplied float color.
type RGBA struct {
	R, G, B, A float64
}

// Mul multiplies component-wise.
func (c RGBA) Mul(o RGBA) RGBA {
	return RGBA{
		R: c.R * o.R,
		G: c.G * o.G,
		B: c.B * o.B,
		A: c.A * o.A,
	}
}

func (c RGBA) scale(s float64) RGBA {
	return RGBA{c.R * s, c.G * s, c.B * s, c.A * s}
}

func (c RGBA) add(o RGBA) RGBA {
	return RGBA{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

// FromColor converts a color.Color to an RGBA in [0, 1].
func FromColor(clr color.Color) RGBA {
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	return RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

// NRGBA clamps to [0, 1] and converts to 8-bit non-premultiplied color.
func (c RGBA) NRGBA() color.NRGBA {
	clamp01 := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}

	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// Texture holds CPU-side texel data for a 2d texture.
//
// Texels are row-major with (0, 0) at the top left, same as image.Image.
type Texture struct {
	width  int
	height int
	texels []RGBA
}

// NewTexture creates a texture filled with transparent black.
func NewTexture(width, height int) *Texture {
	if width <= 0 || height <= 0 {
		panic("material: texture dimensions must be positive")
	}

	return &Texture{
		width:  width,
		height: height,
		texels: make([]RGBA, width*height),
	}
}

// TextureFromImage copies an image into a texture.
func TextureFromImage(img image.Image) *Texture {
	bounds := img.Bounds()
	t := NewTexture(bounds.Dx(), bounds.Dy())

	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			t.texels[y*t.width+x] = FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}

	return t
}

func (t *Texture) Width() int {
	return t.width
}

func (t *Texture) Height() int {
	return t.height
}

// Texel returns the texel at (x, y). Panics when out of bounds, like a
// slice access would.
func (t *Texture) Texel(x, y int) RGBA {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		panic("material: texel access out of bounds")
	}
	return t.texels[y*t.width+x]
}

// SetTexel sets the texel at (x, y).
func (t *Texture) SetTexel(x, y int, clr RGBA) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		panic("material: texel access out of bounds")
	}
	t.texels[y*t.width+x] = clr
}

// Image renders the texture to an 8-bit image, clamping texels.
func (t *Texture) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, t.width, t.height))

	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			img.SetNRGBA(x, y, t.texels[y*t.width+x].NRGBA())
		}
	}

	return img
}
