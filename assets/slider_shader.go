//go:build ignore

//kage:unit pixels

package main

// Uniform variables.
var Color vec4
var ScrollSpeed float
var Time float
var WorldUnitsPerTile float

// truncate keeps the fractional part the way a cast to int would:
// toward zero. Negative inputs keep a negative fraction.
// material.WrapTruncate is the CPU twin, keep them matching.
func truncate(v vec2) vec2 {
	return sign(v) * floor(abs(v))
}

func imageSrc0At01(at vec2) vec4 {
	origin0 := imageSrc0Origin()
	imgSize := imageSrc0Size()
	return imageSrc0At(mod(imgSize*at, imgSize) + origin0)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4, custom vec4) vec4 {
	// custom.x carries the fragment's world y, fed per vertex
	worldY := custom.x

	uv := (srcPos - imageSrc0Origin()) / imageSrc0Size()

	uvInt := vec2(uv.x, worldY/WorldUnitsPerTile)
	uvScroll := uvInt + vec2(0, Time)*ScrollSpeed
	uvWrapped := uvScroll - truncate(uvScroll)

	return imageSrc0At01(uvWrapped) * Color
}
