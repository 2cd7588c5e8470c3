package material

import "math"

type Filter int

const (
	FilterNearest Filter = iota
	FilterLinear
)

// Address decides how texel fetches outside the texture behave.
// The names follow ebiten's texture addressing.
type Address int

const (
	AddressRepeat Address = iota
	AddressClampToEdge
	AddressMirroredRepeat
)

// Sampler pairs a filter with an addressing mode, like the sampler
// object a render pipeline binds next to a texture.
type Sampler struct {
	Filter  Filter
	Address Address
}

// Sample reads the texture at a normalized coordinate. Coordinates
// outside [0, 1) are resolved by the addressing mode, so negative
// values coming out of a truncation wrap are fine.
func (s Sampler) Sample(t *Texture, uv Vec2) RGBA {
	if s.Filter == FilterLinear {
		return s.sampleLinear(t, uv)
	}
	return s.sampleNearest(t, uv)
}

func (s Sampler) sampleNearest(t *Texture, uv Vec2) RGBA {
	x := addressTexel(int(math.Floor(uv.X*float64(t.width))), t.width, s.Address)
	y := addressTexel(int(math.Floor(uv.Y*float64(t.height))), t.height, s.Address)

	return t.Texel(x, y)
}

func (s Sampler) sampleLinear(t *Texture, uv Vec2) RGBA {
	// half texel shift so texel centers interpolate exactly
	fx := uv.X*float64(t.width) - 0.5
	fy := uv.Y*float64(t.height) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	dx := fx - math.Floor(fx)
	dy := fy - math.Floor(fy)

	c00 := t.Texel(addressTexel(x0, t.width, s.Address), addressTexel(y0, t.height, s.Address))
	c10 := t.Texel(addressTexel(x0+1, t.width, s.Address), addressTexel(y0, t.height, s.Address))
	c01 := t.Texel(addressTexel(x0, t.width, s.Address), addressTexel(y0+1, t.height, s.Address))
	c11 := t.Texel(addressTexel(x0+1, t.width, s.Address), addressTexel(y0+1, t.height, s.Address))

	top := c00.scale(1 - dx).add(c10.scale(dx))
	bottom := c01.scale(1 - dx).add(c11.scale(dx))

	return top.scale(1 - dy).add(bottom.scale(dy))
}

func addressTexel(i, n int, address Address) int {
	switch address {
	case AddressClampToEdge:
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i

	case AddressMirroredRepeat:
		period := 2 * n
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - 1 - i
		}
		return i

	default: // AddressRepeat
		i %= n
		if i < 0 {
			i += n
		}
		return i
	}
}
