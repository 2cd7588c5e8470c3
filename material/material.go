// Package material implements the CPU side of beatlane's 2d materials.
//
// The GPU renders slider meshes with the Kage shader in
// assets/slider_shader.go. This package evaluates the exact same
// per-fragment math on the CPU, which is what previews and tests use.
// Keep the two in sync.
package material

import "math"

// DefaultWorldUnitsPerTile is how many world units one vertical repeat
// of the texture covers when a material doesn't override it.
const DefaultWorldUnitsPerTile = 32.0

// Vec2 is a 2d texture coordinate.
type Vec2 struct {
	X, Y float64
}

// WrapFunc wraps one scrolled texture coordinate into the unit interval.
type WrapFunc func(float64) float64

// WrapTruncate subtracts the integer truncation, matching the shader.
// Negative inputs keep a negative fractional part, so results lie in
// (-1, 1) rather than [0, 1).
func WrapTruncate(x float64) float64 {
	return x - math.Trunc(x)
}

// WrapFloor is the floor-modulo alternative that lands in [0, 1) for
// every input, including negatives.
func WrapFloor(x float64) float64 {
	return x - math.Floor(x)
}

// ScrollingTexture scrolls a texture vertically over time and tints it.
//
// It is a plain value: evaluating it never mutates anything, and two
// calls with the same inputs return the same color.
type ScrollingTexture struct {
	// Color multiplies the sampled texel component-wise. Components
	// outside [0, 1] are legal and over/under-drive the output.
	Color RGBA

	Texture *Texture
	Sampler Sampler

	// ScrollSpeed is how many texture repeats the vertical coordinate
	// advances per second. Zero keeps the texture static.
	ScrollSpeed float64

	// WorldUnitsPerTile is the world height one vertical repeat covers.
	// Zero means DefaultWorldUnitsPerTile.
	WorldUnitsPerTile float64

	// Wrap wraps the scrolled coordinate before sampling.
	// Nil means WrapTruncate.
	Wrap WrapFunc
}

// ScrollUV returns the wrapped texture coordinate for a fragment.
//
// The horizontal coordinate is the mesh UV as-is. The vertical
// coordinate is the fragment's world Y divided by WorldUnitsPerTile,
// scrolled by elapsed seconds times ScrollSpeed. Both components are
// then wrapped.
func (m ScrollingTexture) ScrollUV(uv Vec2, worldY, t float64) Vec2 {
	tile := m.WorldUnitsPerTile
	if tile == 0 {
		tile = DefaultWorldUnitsPerTile
	}

	wrap := m.Wrap
	if wrap == nil {
		wrap = WrapTruncate
	}

	scrolled := Vec2{
		X: uv.X,
		Y: worldY/tile + t*m.ScrollSpeed,
	}

	return Vec2{wrap(scrolled.X), wrap(scrolled.Y)}
}

// Shade evaluates the material for one fragment: sample the texture at
// the scrolled coordinate and multiply by Color. No clamping happens at
// any step.
func (m ScrollingTexture) Shade(uv Vec2, worldY, t float64) RGBA {
	return m.Sampler.Sample(m.Texture, m.ScrollUV(uv, worldY, t)).Mul(m.Color)
}
