package material

import (
	"math"
	"testing"
)

// 2x2 checker: white at (0,0) and (1,1), black at the other two.
func checkerTexture() *Texture {
	t := NewTexture(2, 2)

	white := RGBA{1, 1, 1, 1}
	black := RGBA{0, 0, 0, 1}

	t.SetTexel(0, 0, white)
	t.SetTexel(1, 0, black)
	t.SetTexel(0, 1, black)
	t.SetTexel(1, 1, white)

	return t
}

func TestScrollUVHandComputed(t *testing.T) {
	m := ScrollingTexture{
		Color:       RGBA{1, 1, 1, 1},
		Texture:     checkerTexture(),
		ScrollSpeed: 2,
	}

	// uv.x = 0.3, worldY = 16, speed = 2, t = 1.0:
	// uvInt = (0.3, 16/32) = (0.3, 0.5)
	// offset = (0, 1.0*2) -> uvScroll = (0.3, 2.5) -> wrapped (0.3, 0.5)
	got := m.ScrollUV(Vec2{X: 0.3, Y: 0.7}, 16, 1.0)
	want := Vec2{X: 0.3, Y: 0.5}

	if got != want {
		t.Errorf("ScrollUV = %v, want %v", got, want)
	}

	// the checker texel under (0.3, 0.5) is the black one
	shaded := m.Shade(Vec2{X: 0.3, Y: 0.7}, 16, 1.0)
	if (shaded != RGBA{0, 0, 0, 1}) {
		t.Errorf("Shade = %v, want black", shaded)
	}
}

func TestShadeStaticWhenScrollSpeedZero(t *testing.T) {
	m := ScrollingTexture{
		Color:       RGBA{1, 0.5, 0.25, 1},
		Texture:     checkerTexture(),
		ScrollSpeed: 0,
	}

	uv := Vec2{X: 0.6, Y: 0.1}

	for _, worldY := range []float64{-40, 0, 7, 16, 100.5} {
		first := m.Shade(uv, worldY, 0)
		for _, elapsed := range []float64{0.25, 1, 60, 12345.678} {
			if got := m.Shade(uv, worldY, elapsed); got != first {
				t.Errorf("worldY=%v t=%v: Shade = %v, want %v (static texture must ignore time)",
					worldY, elapsed, got, first)
			}
		}
	}
}

func TestScrollUVStaysInOpenUnitRange(t *testing.T) {
	m := ScrollingTexture{
		Texture:     checkerTexture(),
		ScrollSpeed: -0.6,
	}

	uvs := []float64{-3.7, -1, -0.001, 0, 0.3, 0.999, 1, 42.42}
	worldYs := []float64{-1000, -32, -0.5, 0, 16, 31.9, 32, 12345}
	times := []float64{0, 0.016, 1, 59.94, 3600}

	for _, u := range uvs {
		for _, wy := range worldYs {
			for _, elapsed := range times {
				got := m.ScrollUV(Vec2{X: u, Y: 0}, wy, elapsed)

				// truncation wrap lands strictly inside (-1, 1); it does
				// NOT remap negatives into [0, 1)
				if got.X <= -1 || got.X >= 1 || got.Y <= -1 || got.Y >= 1 {
					t.Fatalf("ScrollUV(%v, %v, %v) = %v, outside (-1, 1)", u, wy, elapsed, got)
				}
			}
		}
	}
}

func TestWrapTruncateKeepsNegativeFraction(t *testing.T) {
	cases := []struct {
		in        float64
		wantTrunc float64
		wantFloor float64
	}{
		{0, 0, 0},
		{0.25, 0.25, 0.25},
		{2.5, 0.5, 0.5},
		{-0.25, -0.25, 0.75},
		{-2.5, -0.5, 0.5},
		{-1, 0, 0},
	}

	for _, c := range cases {
		if got := WrapTruncate(c.in); got != c.wantTrunc {
			t.Errorf("WrapTruncate(%v) = %v, want %v", c.in, got, c.wantTrunc)
		}
		if got := WrapFloor(c.in); got != c.wantFloor {
			t.Errorf("WrapFloor(%v) = %v, want %v", c.in, got, c.wantFloor)
		}
	}
}

func TestShadeWithFloorWrapUsesCorrectedCoordinate(t *testing.T) {
	tex := checkerTexture()

	faithful := ScrollingTexture{Color: RGBA{1, 1, 1, 1}, Texture: tex}
	corrected := ScrollingTexture{Color: RGBA{1, 1, 1, 1}, Texture: tex, Wrap: WrapFloor}

	// a negative world Y where the two wraps pick different texels
	uv := Vec2{X: 0.3}
	worldY := -8.0 // -0.25 before wrapping

	if got := faithful.ScrollUV(uv, worldY, 0); got.Y != -0.25 {
		t.Fatalf("faithful ScrollUV.Y = %v, want -0.25", got.Y)
	}
	if got := corrected.ScrollUV(uv, worldY, 0); got.Y != 0.75 {
		t.Fatalf("corrected ScrollUV.Y = %v, want 0.75", got.Y)
	}
}

func TestShadeMultipliesMaterialColor(t *testing.T) {
	tex := NewTexture(1, 1)
	tex.SetTexel(0, 0, RGBA{0.5, 1, 0.25, 0.8})

	m := ScrollingTexture{
		Color:   RGBA{2, 0.5, 1, 1}, // over-driven red is intentional
		Texture: tex,
	}

	got := m.Shade(Vec2{}, 0, 0)
	want := RGBA{1, 0.5, 0.25, 0.8}

	if got != want {
		t.Errorf("Shade = %v, want %v (no clamping)", got, want)
	}
}

func TestShadeZeroColorIsTransparentBlack(t *testing.T) {
	tex := NewTexture(1, 1)
	tex.SetTexel(0, 0, RGBA{3, 3, 3, 3})

	m := ScrollingTexture{Texture: tex} // zero Color

	if got := m.Shade(Vec2{X: 0.9, Y: 0.9}, 123, 456); (got != RGBA{}) {
		t.Errorf("Shade = %v, want transparent black", got)
	}
}

func TestShadeIsDeterministic(t *testing.T) {
	m := ScrollingTexture{
		Color:       RGBA{0.9, 0.8, 0.7, 1},
		Texture:     checkerTexture(),
		Sampler:     Sampler{Filter: FilterLinear},
		ScrollSpeed: math.Pi, // irrational on purpose
	}

	uv := Vec2{X: 0.123, Y: 0.456}

	a := m.Shade(uv, 17.3, 2.718)
	b := m.Shade(uv, 17.3, 2.718)

	if a != b {
		t.Errorf("two identical invocations differ: %v vs %v", a, b)
	}
}

func TestWorldUnitsPerTileOverride(t *testing.T) {
	tex := checkerTexture()

	def := ScrollingTexture{Texture: tex}
	if got := def.ScrollUV(Vec2{}, 16, 0); got.Y != 0.5 {
		t.Errorf("default tiling: ScrollUV.Y = %v, want 0.5 (16/%v)", got.Y, DefaultWorldUnitsPerTile)
	}

	scaled := ScrollingTexture{Texture: tex, WorldUnitsPerTile: 64}
	if got := scaled.ScrollUV(Vec2{}, 16, 0); got.Y != 0.25 {
		t.Errorf("64-unit tiling: ScrollUV.Y = %v, want 0.25", got.Y)
	}
}
